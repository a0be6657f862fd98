package components

import (
	"slot-booking-api/internal/infra/db"
	"slot-booking-api/internal/infra/repository"
	"slot-booking-api/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewQuerier,
		fx.Annotate(
			repository.NewSlotRepository,
			fx.As(new(usecase.SlotRepository)),
		),
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(usecase.BookingRepository)),
		),
	),
)

func NewQuerier(pool *pgxpool.Pool) db.Querier {
	return pool
}
