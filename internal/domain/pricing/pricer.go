package pricing

import (
	"github.com/google/uuid"

	"venue-pricing/internal/domain/catalog"
	"venue-pricing/internal/domain/money"
	"venue-pricing/internal/pkg/errs"
	"venue-pricing/internal/pkg/idgen"
)

// Pricer turns bookings plus a catalog snapshot into estimates. Pricing
// is a pure computation over immutable inputs; the only injected
// capability is the line-item id generator.
type Pricer struct {
	policy Policy
	ids    idgen.Generator
}

func NewPricer(policy Policy, ids idgen.Generator) *Pricer {
	return &Pricer{policy: policy, ids: ids}
}

func (p *Pricer) Policy() Policy {
	return p.policy
}

// PriceBooking validates the booking, resolves each room's day rule and
// produces the itemized estimate. Failures carry the booking id.
func (p *Pricer) PriceBooking(b Booking, snap *catalog.Snapshot) (*BookingEstimate, error) {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}

	if err := b.validate(); err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "booking %s", b.ID), ErrValidation)
	}

	start, end, _ := b.Window()
	totalHours := wholeHours(start, end)
	split := SplitAtBoundary(start, end, p.policy.EveningBoundaryHour)

	surcharges := ResolveSurcharges(b, snap, p.policy, p.ids)

	rooms := make([]RoomEstimate, 0, len(b.RoomIDs))
	var roomsTotal money.Money
	for _, roomID := range b.RoomIDs {
		ruleSet, err := snap.RulesFor(roomID)
		if err != nil {
			return nil, errs.Mark(errs.Wrapf(err, "booking %s room %s", b.ID, roomID), ErrRuleNotFound)
		}
		rule, err := ruleSet.RuleFor(start.Weekday())
		if err != nil {
			return nil, errs.Mark(errs.Wrapf(err, "booking %s room %s on %s", b.ID, roomID, start.Weekday()), ErrRuleNotFound)
		}

		rp := PriceRoom(rule, split, totalHours, b.Private)
		items := surcharges.RoomItems(roomID)
		total := rp.BasePrice.Add(sumItems(items))

		rooms = append(rooms, RoomEstimate{
			RoomID:          roomID,
			BasePrice:       rp.BasePrice,
			DaytimeHours:    rp.DaytimeHours,
			DaytimePrice:    rp.DaytimePrice,
			EveningHours:    rp.EveningHours,
			EveningPrice:    rp.EveningPrice,
			FullDay:         rp.FullDay,
			FullDayPrice:    rp.FullDayPrice,
			AppliedRate:     rp.AppliedRate,
			RateKind:        rp.RateKind,
			AdditionalItems: items,
			TotalCost:       total,
		})
		roomsTotal = roomsTotal.Add(total)
	}

	slotTotal := roomsTotal.
		Add(sumItems(surcharges.Slot)).
		Add(sumItems(surcharges.Custom))

	return &BookingEstimate{
		BookingID:   b.ID,
		Date:        b.Date,
		Start:       start,
		End:         end,
		Rooms:       rooms,
		SlotItems:   surcharges.Slot,
		CustomItems: surcharges.Custom,
		SlotTotal:   slotTotal,
	}, nil
}
