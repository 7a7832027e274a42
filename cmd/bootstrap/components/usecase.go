package components

import (
	"hotel-reservation-api/internal/pkg/clock"
	"hotel-reservation-api/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewReservationUseCase,
	),
)
