package money

import (
	"errors"
	"fmt"
	"math"
)

// Money is an amount in integer cents. All catalog rates and computed
// prices use this representation; fractional results round to the
// nearest cent.
type Money struct {
	cents int64
}

func FromCents(cents int64) Money {
	return Money{cents: cents}
}

func NonNegative(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errors.New("money cannot be negative")
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Dollars() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) Sub(other Money) Money {
	return Money{cents: m.cents - other.cents}
}

func (m Money) GreaterThan(other Money) bool {
	return m.cents > other.cents
}

// MulHours bills an hourly rate over a whole-hour duration.
func (m Money) MulHours(hours int) Money {
	return Money{cents: m.cents * int64(hours)}
}

// Scale multiplies by num/den, rounding to the nearest cent. A zero
// denominator yields the amount unchanged so callers never divide by a
// zero-hour booking.
func (m Money) Scale(num, den int) Money {
	if den == 0 {
		return m
	}
	scaled := float64(m.cents) * float64(num) / float64(den)
	return Money{cents: int64(math.Round(scaled))}
}

// ApplyRate computes a fractional charge such as tax, rounded to the
// nearest cent.
func (m Money) ApplyRate(rate float64) Money {
	return Money{cents: int64(math.Round(float64(m.cents) * rate))}
}

func (m Money) String() string {
	return fmt.Sprintf("$%.2f", m.Dollars())
}
