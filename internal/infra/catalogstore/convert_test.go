//go:build unit

package catalogstore

import (
	"testing"

	"venue-pricing/internal/domain/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDayRule(t *testing.T) {
	t.Run("split rule with crossover", func(t *testing.T) {
		payload := []byte(`{
			"daytime": {"publicRateCents": 5000, "privateRateCents": 6000, "type": "hourly", "crossoverRateCents": 7000},
			"evening": {"publicRateCents": 50000, "privateRateCents": 50000, "type": "flat"},
			"minimumHours": 4
		}`)

		rule, err := decodeDayRule(payload)
		require.NoError(t, err)

		assert.Nil(t, rule.FullDay)
		assert.Equal(t, 4, rule.MinimumHours)

		require.NotNil(t, rule.Daytime)
		assert.Equal(t, int64(5000), rule.Daytime.PublicRate.Cents())
		assert.Equal(t, int64(6000), rule.Daytime.PrivateRate.Cents())
		assert.Equal(t, catalog.RateHourly, rule.Daytime.Kind)
		require.NotNil(t, rule.Daytime.CrossoverRate)
		assert.Equal(t, int64(7000), rule.Daytime.CrossoverRate.Cents())

		require.NotNil(t, rule.Evening)
		assert.Equal(t, catalog.RateFlat, rule.Evening.Kind)
		assert.Nil(t, rule.Evening.CrossoverRate)
	})

	t.Run("full-day rule", func(t *testing.T) {
		payload := []byte(`{
			"fullDay": {"publicRateCents": 100000, "privateRateCents": 120000, "type": "flat", "minimumHours": 8}
		}`)

		rule, err := decodeDayRule(payload)
		require.NoError(t, err)

		require.NotNil(t, rule.FullDay)
		assert.Equal(t, int64(100000), rule.FullDay.PublicRate.Cents())
		assert.Equal(t, 8, rule.FullDay.MinimumHours)
	})

	t.Run("invalid rate kind is rejected", func(t *testing.T) {
		payload := []byte(`{"daytime": {"publicRateCents": 5000, "privateRateCents": 5000, "type": "weekly"}}`)

		_, err := decodeDayRule(payload)
		require.Error(t, err)
	})

	t.Run("malformed json is rejected", func(t *testing.T) {
		_, err := decodeDayRule([]byte(`{`))
		require.Error(t, err)
	})
}

func TestDecodeResource(t *testing.T) {
	t.Run("resource with room overrides", func(t *testing.T) {
		payload := []byte(`{
			"costCents": 20000,
			"type": "flat",
			"description": "Backline",
			"rooms": {
				"living-room": {"costCents": 25000, "description": "House backline package", "includesProjector": true},
				"main-hall": {"description": "Stage backline"}
			}
		}`)

		res, err := decodeResource("backline", payload)
		require.NoError(t, err)

		assert.Equal(t, "backline", res.ID)
		assert.Equal(t, catalog.ResourceFlat, res.Kind)
		assert.Equal(t, int64(20000), res.Cost.Cents())

		ov, ok := res.OverrideFor("living-room")
		require.True(t, ok)
		require.NotNil(t, ov.Cost)
		assert.Equal(t, int64(25000), ov.Cost.Cents())
		assert.True(t, ov.IncludesProjector)

		ov, ok = res.OverrideFor("main-hall")
		require.True(t, ok)
		assert.Nil(t, ov.Cost)
		assert.Equal(t, "Stage backline", ov.Description)
	})

	t.Run("base-kind resource with overtime", func(t *testing.T) {
		payload := []byte(`{
			"costCents": 70000,
			"type": "base",
			"description": "Audio technician",
			"baseHours": 7,
			"overtimeRateCents": 10000
		}`)

		res, err := decodeResource("audio_technician", payload)
		require.NoError(t, err)

		assert.Equal(t, catalog.ResourceBase, res.Kind)
		assert.Equal(t, 7, res.BaseHours)
		assert.Equal(t, int64(10000), res.OvertimeRate.Cents())
	})

	t.Run("invalid resource kind is rejected", func(t *testing.T) {
		_, err := decodeResource("x", []byte(`{"costCents": 1, "type": "weekly"}`))
		require.ErrorIs(t, err, catalog.ErrInvalidResourceKind)
	})
}
