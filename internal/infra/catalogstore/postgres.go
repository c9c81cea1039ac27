package catalogstore

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"venue-pricing/internal/domain/catalog"
	"venue-pricing/internal/infra"
)

// Store loads the rule catalog from Postgres. Rule payloads are JSONB
// documents keyed by room and weekday; the pricing core receives an
// immutable snapshot and never touches the database itself.
type Store struct {
	pool    *pgxpool.Pool
	logger  *slog.Logger
	retries int
	backoff time.Duration
}

func New(pool *pgxpool.Pool, logger *slog.Logger, retries int, backoff time.Duration) *Store {
	if retries < 1 {
		retries = 1
	}
	return &Store{pool: pool, logger: logger, retries: retries, backoff: backoff}
}

// Snapshot loads a full catalog, retrying transient failures up to the
// configured budget. Exhausting the budget is fatal for the caller's
// batch.
func (s *Store) Snapshot(ctx context.Context) (*catalog.Snapshot, error) {
	var lastErr error
	for attempt := 1; attempt <= s.retries; attempt++ {
		snap, err := s.load(ctx)
		if err == nil {
			return snap, nil
		}
		lastErr = err
		s.logger.Warn("catalog snapshot load failed",
			"attempt", attempt,
			"retries", s.retries,
			"error", err.Error(),
		)
		if attempt < s.retries {
			select {
			case <-ctx.Done():
				return nil, infra.WrapRepoErr(infra.KindDBFailure, "catalog load canceled", ctx.Err())
			case <-time.After(s.backoff):
			}
		}
	}
	return nil, lastErr
}

func (s *Store) load(ctx context.Context) (*catalog.Snapshot, error) {
	roomRules, err := s.loadRoomRules(ctx)
	if err != nil {
		return nil, err
	}
	resources, err := s.loadResources(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.NewSnapshot(roomRules, resources), nil
}

func (s *Store) loadRoomRules(ctx context.Context) (map[string]catalog.RoomRuleSet, error) {
	rows, err := s.pool.Query(ctx, `SELECT room_id, weekday, rule FROM room_rules`)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to query room rules", err)
	}
	defer rows.Close()

	ruleSets := map[string]catalog.RoomRuleSet{}
	for rows.Next() {
		var roomID, weekday string
		var payload []byte
		if err := rows.Scan(&roomID, &weekday, &payload); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan room rule row", err)
		}
		rule, err := decodeDayRule(payload)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindBadConfig, "invalid day rule for room "+roomID, err)
		}
		if ruleSets[roomID] == nil {
			ruleSets[roomID] = catalog.RoomRuleSet{}
		}
		ruleSets[roomID][weekday] = rule
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read room rules", err)
	}
	return ruleSets, nil
}

func (s *Store) loadResources(ctx context.Context) (map[string]catalog.Resource, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, config FROM resources`)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to query resources", err)
	}
	defer rows.Close()

	resources := map[string]catalog.Resource{}
	for rows.Next() {
		var id string
		var payload []byte
		if err := rows.Scan(&id, &payload); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan resource row", err)
		}
		res, err := decodeResource(id, payload)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindBadConfig, "invalid resource config "+id, err)
		}
		resources[id] = res
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read resources", err)
	}
	return resources, nil
}
