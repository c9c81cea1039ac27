package catalog

import (
	"errors"
	"strings"
	"time"

	"venue-pricing/internal/domain/money"
)

var (
	ErrNoRuleForWeekday = errors.New("no day rule for weekday")
	ErrInvalidRateKind  = errors.New("invalid rate kind")
)

// RateKind discriminates how a rate is applied to a booking window.
type RateKind string

const (
	RateFlat   RateKind = "flat"
	RateHourly RateKind = "hourly"
)

func (k RateKind) String() string {
	return string(k)
}

func (k RateKind) IsValid() bool {
	switch k {
	case RateFlat, RateHourly:
		return true
	default:
		return false
	}
}

func ParseRateKind(s string) (RateKind, error) {
	k := RateKind(strings.ToLower(strings.TrimSpace(s)))
	if !k.IsValid() {
		return "", ErrInvalidRateKind
	}
	return k, nil
}

// PeriodRule prices one sub-window of a day (daytime or evening).
// CrossoverRate is meaningful only on the daytime rule: it substitutes
// the daytime rate when the booking runs past the evening boundary.
type PeriodRule struct {
	PublicRate    money.Money
	PrivateRate   money.Money
	Kind          RateKind
	MinimumHours  int
	CrossoverRate *money.Money
}

func (r PeriodRule) Rate(isPrivate bool) money.Money {
	if isPrivate {
		return r.PrivateRate
	}
	return r.PublicRate
}

// FullDayRule overrides the daytime/evening split for the whole day.
type FullDayRule struct {
	PublicRate   money.Money
	PrivateRate  money.Money
	Kind         RateKind
	MinimumHours int
}

func (r FullDayRule) Rate(isPrivate bool) money.Money {
	if isPrivate {
		return r.PrivateRate
	}
	return r.PublicRate
}

// DayRule is the pricing configuration for one room on one weekday.
// FullDay always wins when present; Daytime/Evening are evaluated only
// in its absence. MinimumHours is the whole-booking billing floor.
type DayRule struct {
	FullDay      *FullDayRule
	Daytime      *PeriodRule
	Evening      *PeriodRule
	MinimumHours int
}

// WeekdayAll is the fallback key matching any weekday without an exact
// entry.
const WeekdayAll = "all"

// RoomRuleSet maps lowercase weekday names (or WeekdayAll) to day rules.
type RoomRuleSet map[string]DayRule

// RuleFor resolves the rule for a weekday: exact match first, then the
// "all" fallback. Absence is a hard error for the room.
func (rs RoomRuleSet) RuleFor(day time.Weekday) (DayRule, error) {
	if rule, ok := rs[strings.ToLower(day.String())]; ok {
		return rule, nil
	}
	if rule, ok := rs[WeekdayAll]; ok {
		return rule, nil
	}
	return DayRule{}, ErrNoRuleForWeekday
}
