package components

import (
	"venue-pricing/internal/domain/money"
	"venue-pricing/internal/domain/pricing"
	"venue-pricing/internal/pkg/clock"
	"venue-pricing/internal/pkg/config"
	"venue-pricing/internal/pkg/idgen"
	"venue-pricing/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		idgen.NewNanoID,
		NewPolicy,
		pricing.NewPricer,
		usecase.NewEstimateUseCase,
	),
)

func NewPolicy(cfg config.Config) pricing.Policy {
	return pricing.Policy{
		EveningBoundaryHour:     cfg.Pricing.EveningBoundaryHour,
		OpeningHour:             cfg.Pricing.OpeningHour,
		EarlyOpenRate:           money.FromCents(cfg.Pricing.EarlyOpenRateCents),
		ParkingLotRoomID:        cfg.Pricing.ParkingLotRoomID,
		BartenderCompAttendance: cfg.Pricing.BartenderCompAttendance,
		AudioTechBaseHours:      cfg.Pricing.AudioTechBaseHours,
		TaxRate:                 cfg.Pricing.TaxRate,
	}
}
