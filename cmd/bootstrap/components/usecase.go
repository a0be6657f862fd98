package components

import (
	"slot-booking-api/internal/pkg/clock"
	"slot-booking-api/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewReservationUseCase,
		usecase.NewSessionRegistry,
	),
)
