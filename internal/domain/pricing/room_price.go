package pricing

import (
	"venue-pricing/internal/domain/catalog"
	"venue-pricing/internal/domain/money"
)

// RoomPricing is the base-price fragment for one room, before room
// surcharges are attached.
type RoomPricing struct {
	BasePrice money.Money

	DaytimeHours int
	DaytimePrice money.Money
	EveningHours int
	EveningPrice money.Money

	FullDay      bool
	FullDayPrice money.Money

	AppliedRate money.Money
	RateKind    catalog.RateKind

	CrossoverApplied bool
	MinimumApplied   bool
}

// PriceRoom applies a resolved day rule to a time split. A rule with no
// applicable period prices to zero; a missing period is a catalog gap,
// not an error, so batch runs stay robust.
func PriceRoom(rule catalog.DayRule, split TimeSplit, totalHours int, isPrivate bool) RoomPricing {
	if rule.FullDay != nil {
		return priceFullDay(*rule.FullDay, totalHours, isPrivate)
	}

	var rp RoomPricing

	// Segments are priced on positive duration, not whole hours: a flat
	// rate is owed for any non-empty segment, while hourly math stays on
	// truncated whole hours.
	daytimePriced := false
	if split.DaytimeEnd.After(split.DaytimeStart) && rule.Daytime != nil {
		day := *rule.Daytime
		rate := day.Rate(isPrivate)
		hours := split.DaytimeHours()

		// A defined crossover rate replaces the daytime rate when the
		// window runs past the boundary, and suspends the daytime
		// minimum-hour floor. The two are mutually exclusive.
		if split.Crosses && day.CrossoverRate != nil {
			rate = *day.CrossoverRate
			rp.CrossoverApplied = true
		}

		billed := hours
		if !rp.CrossoverApplied && day.MinimumHours > billed {
			billed = day.MinimumHours
		}

		rp.DaytimeHours = hours
		rp.DaytimePrice = periodPrice(rate, day.Kind, billed)
		rp.AppliedRate = rate
		rp.RateKind = day.Kind
		daytimePriced = true
	}

	if split.EveningEnd.After(split.EveningStart) && rule.Evening != nil {
		eve := *rule.Evening
		rate := eve.Rate(isPrivate)
		hours := split.EveningHours()

		billed := hours
		if eve.MinimumHours > billed {
			billed = eve.MinimumHours
		}

		rp.EveningHours = hours
		rp.EveningPrice = periodPrice(rate, eve.Kind, billed)
		if !daytimePriced {
			rp.AppliedRate = rate
			rp.RateKind = eve.Kind
		}
	}

	rp.BasePrice = rp.DaytimePrice.Add(rp.EveningPrice)

	applyBookingMinimum(&rp, rule.MinimumHours, totalHours)

	return rp
}

func priceFullDay(rule catalog.FullDayRule, totalHours int, isPrivate bool) RoomPricing {
	rate := rule.Rate(isPrivate)

	price := rate
	if rule.Kind == catalog.RateHourly {
		billed := totalHours
		if rule.MinimumHours > billed {
			billed = rule.MinimumHours
		}
		price = rate.MulHours(billed)
	}

	return RoomPricing{
		BasePrice:    price,
		FullDay:      true,
		FullDayPrice: price,
		AppliedRate:  rate,
		RateKind:     rule.Kind,
	}
}

// applyBookingMinimum enforces the whole-booking floor: scale the base
// price as if the booking were minimumHours long, redistributing across
// the period components for display. Never combined with a crossover
// rate, and never applied to a zero-hour booking.
func applyBookingMinimum(rp *RoomPricing, minimumHours, totalHours int) {
	if minimumHours <= 0 || totalHours <= 0 || totalHours >= minimumHours || rp.CrossoverApplied {
		return
	}

	scaled := rp.BasePrice.Scale(minimumHours, totalHours)
	if !scaled.GreaterThan(rp.BasePrice) {
		return
	}

	rp.DaytimePrice = rp.DaytimePrice.Scale(minimumHours, totalHours)
	rp.EveningPrice = scaled.Sub(rp.DaytimePrice)
	rp.BasePrice = scaled
	rp.MinimumApplied = true
}

func periodPrice(rate money.Money, kind catalog.RateKind, hours int) money.Money {
	if kind == catalog.RateFlat {
		return rate
	}
	return rate.MulHours(hours)
}
