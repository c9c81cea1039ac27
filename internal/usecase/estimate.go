package usecase

import (
	"context"
	"errors"
	"sort"

	"venue-pricing/internal/domain/catalog"
	"venue-pricing/internal/domain/pricing"
	"venue-pricing/internal/pkg/clock"
	"venue-pricing/internal/pkg/errs"
)

var ErrCatalogUnavailable = errors.New("catalog unavailable")

// CatalogRepository resolves a consistent catalog snapshot for one
// pricing run. Retry and backoff live behind this interface.
type CatalogRepository interface {
	Snapshot(ctx context.Context) (*catalog.Snapshot, error)
}

type EstimateUseCase interface {
	PriceBatch(ctx context.Context, req pricing.BatchRequest) (*BatchView, error)
	ListRooms(ctx context.Context) ([]RoomRulesView, error)
}

type estimateUseCaseImpl struct {
	catalogRepo CatalogRepository
	pricer      *pricing.Pricer
	clock       clock.Clock
}

func NewEstimateUseCase(catalogRepo CatalogRepository, pricer *pricing.Pricer, clock clock.Clock) EstimateUseCase {
	return &estimateUseCaseImpl{
		catalogRepo: catalogRepo,
		pricer:      pricer,
		clock:       clock,
	}
}

// PriceBatch loads one catalog snapshot and prices the whole request
// against it. Catalog load failure is fatal for the batch; per-booking
// failures are already folded into the batch by the pricer.
func (u *estimateUseCaseImpl) PriceBatch(ctx context.Context, req pricing.BatchRequest) (*BatchView, error) {
	snap, err := u.catalogRepo.Snapshot(ctx)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "loading catalog snapshot"), ErrCatalogUnavailable)
	}

	batch := u.pricer.PriceBatch(req, snap)

	return NewBatchView(batch, u.clock.Now()), nil
}

func (u *estimateUseCaseImpl) ListRooms(ctx context.Context) ([]RoomRulesView, error) {
	snap, err := u.catalogRepo.Snapshot(ctx)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "loading catalog snapshot"), ErrCatalogUnavailable)
	}

	ids := snap.RoomIDs()
	sort.Strings(ids)

	views := make([]RoomRulesView, 0, len(ids))
	for _, id := range ids {
		rs, err := snap.RulesFor(id)
		if err != nil {
			continue
		}
		days := make([]string, 0, len(rs))
		for day := range rs {
			days = append(days, day)
		}
		sort.Strings(days)
		views = append(views, RoomRulesView{RoomID: id, PricedWeekdays: days})
	}
	return views, nil
}
