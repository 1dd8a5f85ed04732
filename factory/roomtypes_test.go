package factory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spark/occupancy-engine/factory"
)

func TestParseRoomTypes(t *testing.T) {
	data := []byte(`[
		{"code": "1B", "total_supply": 40, "area_sqm": 55.5},
		{"code": "2B", "total_supply": 25, "area_sqm": 82}
	]`)

	config, err := factory.ParseRoomTypes(data)
	require.NoError(t, err)
	require.Len(t, config, 2)

	oneB := config.Get("1B")
	assert.Equal(t, 40, oneB.TotalSupply)
	assert.True(t, decimal.NewFromFloat(55.5).Equal(oneB.AreaSqm))
	assert.Equal(t, 65, config.TotalSupply())
}

func TestParseRoomTypes_Invalid(t *testing.T) {
	cases := map[string]string{
		"not json":        `{`,
		"missing code":    `[{"total_supply": 1, "area_sqm": 10}]`,
		"duplicate code":  `[{"code": "1B", "total_supply": 1, "area_sqm": 1}, {"code": "1B", "total_supply": 2, "area_sqm": 2}]`,
		"negative supply": `[{"code": "1B", "total_supply": -1, "area_sqm": 10}]`,
		"negative area":   `[{"code": "1B", "total_supply": 1, "area_sqm": -10}]`,
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := factory.ParseRoomTypes([]byte(data))
			assert.Error(t, err)
		})
	}
}

func TestParseRoomTypes_UnknownCodeDefaultsToZero(t *testing.T) {
	config, err := factory.ParseRoomTypes([]byte(`[]`))
	require.NoError(t, err)

	cfg := config.Get("PH")
	assert.Equal(t, "PH", cfg.Code)
	assert.Zero(t, cfg.TotalSupply)
	assert.True(t, cfg.AreaSqm.IsZero())
}
