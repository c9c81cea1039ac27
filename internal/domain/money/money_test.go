//go:build unit

package money_test

import (
	"testing"

	"venue-pricing/internal/domain/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney(t *testing.T) {
	t.Run("arithmetic", func(t *testing.T) {
		a := money.FromCents(2500)
		b := money.FromCents(1000)

		assert.Equal(t, int64(3500), a.Add(b).Cents())
		assert.Equal(t, int64(1500), a.Sub(b).Cents())
		assert.Equal(t, int64(7500), a.MulHours(3).Cents())
		assert.True(t, a.GreaterThan(b))
		assert.Equal(t, 25.0, a.Dollars())
	})

	t.Run("scale rounds to the nearest cent", func(t *testing.T) {
		cases := []struct {
			name     string
			cents    int64
			num, den int
			want     int64
		}{
			{name: "exact ratio", cents: 8000, num: 4, den: 2, want: 16000},
			{name: "rounds up", cents: 1001, num: 1, den: 3, want: 334},
			{name: "rounds down", cents: 1000, num: 1, den: 3, want: 333},
			{name: "zero denominator is identity", cents: 5000, num: 3, den: 0, want: 5000},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				got := money.FromCents(c.cents).Scale(c.num, c.den)
				assert.Equal(t, c.want, got.Cents())
			})
		}
	})

	t.Run("apply rate rounds to the nearest cent", func(t *testing.T) {
		assert.Equal(t, int64(2063), money.FromCents(25000).ApplyRate(0.0825).Cents())
		assert.Equal(t, int64(0), money.FromCents(0).ApplyRate(0.0825).Cents())
	})

	t.Run("non-negative constructor rejects negatives", func(t *testing.T) {
		_, err := money.NonNegative(-1)
		require.Error(t, err)

		m, err := money.NonNegative(100)
		require.NoError(t, err)
		assert.Equal(t, int64(100), m.Cents())
	})

	t.Run("string formats dollars", func(t *testing.T) {
		assert.Equal(t, "$12.34", money.FromCents(1234).String())
	})
}
