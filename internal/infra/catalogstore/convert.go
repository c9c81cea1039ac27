package catalogstore

import (
	"encoding/json"

	"venue-pricing/internal/domain/catalog"
	"venue-pricing/internal/domain/money"
	"venue-pricing/internal/pkg/errs"
)

// JSONB payload shapes. Rates are integer cents.

type periodRulePayload struct {
	PublicRateCents    int64  `json:"publicRateCents"`
	PrivateRateCents   int64  `json:"privateRateCents"`
	Type               string `json:"type"`
	MinimumHours       int    `json:"minimumHours"`
	CrossoverRateCents *int64 `json:"crossoverRateCents"`
}

type fullDayRulePayload struct {
	PublicRateCents  int64  `json:"publicRateCents"`
	PrivateRateCents int64  `json:"privateRateCents"`
	Type             string `json:"type"`
	MinimumHours     int    `json:"minimumHours"`
}

type dayRulePayload struct {
	FullDay      *fullDayRulePayload `json:"fullDay"`
	Daytime      *periodRulePayload  `json:"daytime"`
	Evening      *periodRulePayload  `json:"evening"`
	MinimumHours int                 `json:"minimumHours"`
}

type roomOverridePayload struct {
	CostCents         *int64 `json:"costCents"`
	Description       string `json:"description"`
	IncludesProjector bool   `json:"includesProjector"`
}

type resourcePayload struct {
	CostCents         int64                          `json:"costCents"`
	Type              string                         `json:"type"`
	Description       string                         `json:"description"`
	SubDescription    string                         `json:"subDescription"`
	Rooms             map[string]roomOverridePayload `json:"rooms"`
	BaseHours         int                            `json:"baseHours"`
	OvertimeRateCents int64                          `json:"overtimeRateCents"`
}

func decodeDayRule(payload []byte) (catalog.DayRule, error) {
	var p dayRulePayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return catalog.DayRule{}, errs.Wrap(err, "unmarshaling day rule")
	}

	rule := catalog.DayRule{MinimumHours: p.MinimumHours}

	if p.FullDay != nil {
		kind, err := catalog.ParseRateKind(p.FullDay.Type)
		if err != nil {
			return catalog.DayRule{}, errs.Wrap(err, "full-day rule")
		}
		rule.FullDay = &catalog.FullDayRule{
			PublicRate:   money.FromCents(p.FullDay.PublicRateCents),
			PrivateRate:  money.FromCents(p.FullDay.PrivateRateCents),
			Kind:         kind,
			MinimumHours: p.FullDay.MinimumHours,
		}
	}

	if p.Daytime != nil {
		period, err := decodePeriodRule(*p.Daytime)
		if err != nil {
			return catalog.DayRule{}, errs.Wrap(err, "daytime rule")
		}
		rule.Daytime = period
	}

	if p.Evening != nil {
		period, err := decodePeriodRule(*p.Evening)
		if err != nil {
			return catalog.DayRule{}, errs.Wrap(err, "evening rule")
		}
		rule.Evening = period
	}

	return rule, nil
}

func decodePeriodRule(p periodRulePayload) (*catalog.PeriodRule, error) {
	kind, err := catalog.ParseRateKind(p.Type)
	if err != nil {
		return nil, err
	}
	rule := &catalog.PeriodRule{
		PublicRate:   money.FromCents(p.PublicRateCents),
		PrivateRate:  money.FromCents(p.PrivateRateCents),
		Kind:         kind,
		MinimumHours: p.MinimumHours,
	}
	if p.CrossoverRateCents != nil {
		crossover := money.FromCents(*p.CrossoverRateCents)
		rule.CrossoverRate = &crossover
	}
	return rule, nil
}

func decodeResource(id string, payload []byte) (catalog.Resource, error) {
	var p resourcePayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return catalog.Resource{}, errs.Wrap(err, "unmarshaling resource config")
	}

	kind, err := catalog.ParseResourceKind(p.Type)
	if err != nil {
		return catalog.Resource{}, err
	}

	res := catalog.Resource{
		ID:             id,
		Kind:           kind,
		Cost:           money.FromCents(p.CostCents),
		Description:    p.Description,
		SubDescription: p.SubDescription,
		BaseHours:      p.BaseHours,
		OvertimeRate:   money.FromCents(p.OvertimeRateCents),
	}

	if len(p.Rooms) > 0 {
		res.RoomOverrides = make(map[string]catalog.RoomOverride, len(p.Rooms))
		for roomID, ov := range p.Rooms {
			domainOv := catalog.RoomOverride{
				Description:       ov.Description,
				IncludesProjector: ov.IncludesProjector,
			}
			if ov.CostCents != nil {
				cost := money.FromCents(*ov.CostCents)
				domainOv.Cost = &cost
			}
			res.RoomOverrides[roomID] = domainOv
		}
	}

	return res, nil
}
