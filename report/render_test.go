package report_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spark/occupancy-engine/occupancy"
	"github.com/spark/occupancy-engine/report"
)

func d(day int) occupancy.Date { return occupancy.NewDate(2025, time.August, day) }

func sampleEngine(t *testing.T) *occupancy.Engine {
	t.Helper()
	records := []occupancy.StayRecord{
		{
			RecordID: "r-1", RoomNumber: "A101", RoomType: "1B",
			Arrival: d(1), Departure: d(11),
			Status: occupancy.StatusInHouse, MonthlyRate: decimal.NewFromInt(3000),
		},
	}
	cfg := occupancy.RoomTypeConfigMap{
		"1B": {Code: "1B", TotalSupply: 10, AreaSqm: decimal.NewFromInt(50)},
	}
	return occupancy.NewEngine(records, cfg)
}

func TestRender_FullReport(t *testing.T) {
	engine := sampleEngine(t)
	result, err := engine.Query(occupancy.QueryInput{Start: d(1), End: d(10)})
	require.NoError(t, err)

	text := report.Render(result)

	assert.Contains(t, text, "Occupancy report [2025-08-01, 2025-08-10] (10 days)")
	assert.Contains(t, text, "[1B] supply=10 area=50 sqm")
	assert.Contains(t, text, "paid nights=10")
	assert.Contains(t, text, "avg daily=100.00")
	assert.Contains(t, text, "avg monthly=3000.00")
	assert.Contains(t, text, "efficiency=2.00/sqm/day")
	assert.Contains(t, text, "max booking: r-1")
	assert.NotContains(t, text, "skipped")
}

func TestRender_NotApplicableBookings(t *testing.T) {
	engine := occupancy.NewEngine(nil, occupancy.RoomTypeConfigMap{
		"1B": {Code: "1B", TotalSupply: 10, AreaSqm: decimal.NewFromInt(50)},
	})
	result, err := engine.Query(occupancy.QueryInput{Start: d(1), End: d(10)})
	require.NoError(t, err)

	text := report.Render(result)

	assert.Contains(t, text, "max booking: n/a")
	assert.Contains(t, text, "min booking: n/a")
	assert.Contains(t, text, "vacancy=100.0%")
}

func TestRenderBuilding_DailyLog(t *testing.T) {
	engine := sampleEngine(t)
	result, err := engine.BuildingOccupancy(occupancy.BuildingQueryInput{
		Start: d(1), End: d(3), DailyLog: true,
	})
	require.NoError(t, err)

	text := report.RenderBuilding(result)

	assert.Contains(t, text, "Building occupancy [2025-08-01, 2025-08-03] (3 days)")
	assert.Equal(t, 3, strings.Count(text, "    2025-08-"), "one breakdown line per day")
	assert.Contains(t, text, "2025-08-02  occupied=1 paid=1 rent=100.00")
}
