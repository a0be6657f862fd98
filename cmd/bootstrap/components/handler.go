package components

import (
	"slot-booking-api/internal/handler"
	"slot-booking-api/internal/handler/api"
	"slot-booking-api/internal/handler/middleware"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewSlotHandler,
		api.NewBookingHandler,
		api.NewHealthHandler,
		NewStorePinger,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewStorePinger(pool *pgxpool.Pool) api.StorePinger {
	return pool
}
