//go:build unit

package catalog_test

import (
	"testing"
	"time"

	"venue-pricing/internal/domain/catalog"
	"venue-pricing/internal/domain/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomRuleSetRuleFor(t *testing.T) {
	monday := catalog.DayRule{Daytime: &catalog.PeriodRule{
		PublicRate: money.FromCents(5000), PrivateRate: money.FromCents(6000), Kind: catalog.RateHourly,
	}}
	fallback := catalog.DayRule{Daytime: &catalog.PeriodRule{
		PublicRate: money.FromCents(4000), PrivateRate: money.FromCents(4500), Kind: catalog.RateHourly,
	}}

	t.Run("exact weekday wins over the fallback", func(t *testing.T) {
		rs := catalog.RoomRuleSet{"monday": monday, catalog.WeekdayAll: fallback}

		rule, err := rs.RuleFor(time.Monday)
		require.NoError(t, err)
		assert.Equal(t, int64(5000), rule.Daytime.PublicRate.Cents())
	})

	t.Run("missing weekday falls back to all", func(t *testing.T) {
		rs := catalog.RoomRuleSet{"monday": monday, catalog.WeekdayAll: fallback}

		rule, err := rs.RuleFor(time.Thursday)
		require.NoError(t, err)
		assert.Equal(t, int64(4000), rule.Daytime.PublicRate.Cents())
	})

	t.Run("no entry at all is a hard error", func(t *testing.T) {
		rs := catalog.RoomRuleSet{"monday": monday}

		_, err := rs.RuleFor(time.Friday)
		require.ErrorIs(t, err, catalog.ErrNoRuleForWeekday)
	})
}

func TestPeriodRuleRate(t *testing.T) {
	rule := catalog.PeriodRule{
		PublicRate:  money.FromCents(5000),
		PrivateRate: money.FromCents(6000),
		Kind:        catalog.RateHourly,
	}

	assert.Equal(t, int64(5000), rule.Rate(false).Cents())
	assert.Equal(t, int64(6000), rule.Rate(true).Cents())
}

func TestParseRateKind(t *testing.T) {
	cases := []struct {
		input   string
		want    catalog.RateKind
		wantErr bool
	}{
		{input: "flat", want: catalog.RateFlat},
		{input: "hourly", want: catalog.RateHourly},
		{input: " Hourly ", want: catalog.RateHourly},
		{input: "daily", wantErr: true},
		{input: "", wantErr: true},
	}
	for _, c := range cases {
		t.Run("input "+c.input, func(t *testing.T) {
			got, err := catalog.ParseRateKind(c.input)
			if c.wantErr {
				require.ErrorIs(t, err, catalog.ErrInvalidRateKind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestParseResourceKind(t *testing.T) {
	for _, valid := range []string{"flat", "hourly", "base", "custom"} {
		got, err := catalog.ParseResourceKind(valid)
		require.NoError(t, err)
		assert.Equal(t, catalog.ResourceKind(valid), got)
	}

	_, err := catalog.ParseResourceKind("weekly")
	require.ErrorIs(t, err, catalog.ErrInvalidResourceKind)
}

func TestSnapshot(t *testing.T) {
	snap := catalog.NewSnapshot(
		map[string]catalog.RoomRuleSet{
			"main-hall": {catalog.WeekdayAll: catalog.DayRule{}},
		},
		map[string]catalog.Resource{
			"projector": {ID: "projector", Kind: catalog.ResourceFlat, Cost: money.FromCents(10000)},
		},
	)

	t.Run("room lookup", func(t *testing.T) {
		_, err := snap.RulesFor("main-hall")
		require.NoError(t, err)

		_, err = snap.RulesFor("ballroom")
		require.ErrorIs(t, err, catalog.ErrRoomNotFound)
	})

	t.Run("resource lookup misses are not errors", func(t *testing.T) {
		res, ok := snap.Resource("projector")
		require.True(t, ok)
		assert.Equal(t, int64(10000), res.Cost.Cents())

		_, ok = snap.Resource("fog_machine")
		assert.False(t, ok)
	})

	t.Run("nil maps are tolerated", func(t *testing.T) {
		empty := catalog.NewSnapshot(nil, nil)
		assert.Empty(t, empty.RoomIDs())
	})
}
