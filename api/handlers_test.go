package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spark/occupancy-engine/api"
	"github.com/spark/occupancy-engine/occupancy"
	"github.com/spark/occupancy-engine/store"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func aug(day int) occupancy.Date { return occupancy.NewDate(2025, time.August, day) }

func testRecords() []occupancy.StayRecord {
	created := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
	return []occupancy.StayRecord{
		{
			RecordID: "r-1", RoomNumber: "A101", RoomType: "1B",
			Arrival: aug(1), Departure: aug(11),
			Status: occupancy.StatusInHouse, MonthlyRate: decimal.NewFromInt(3000), CreatedAt: created,
		},
		{
			RecordID: "r-2", RoomNumber: "A102", RoomType: "1B",
			Arrival: aug(1), Departure: aug(11),
			Status: occupancy.StatusReserved, MonthlyRate: decimal.Zero, CreatedAt: created,
		},
	}
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	config := occupancy.RoomTypeConfigMap{
		"1B": {Code: "1B", TotalSupply: 10, AreaSqm: decimal.NewFromInt(50)},
	}
	h := api.NewHandler(store.NewMemory(testRecords()...), config)
	require.NoError(t, h.LoadRecords(context.Background()))

	srv := httptest.NewServer(api.NewRouter(h))
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, out any) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

// =============================================================================
// METRICS ENDPOINT
// =============================================================================

func TestGetMetrics_FullReport(t *testing.T) {
	srv := newTestServer(t)

	var dto struct {
		DaysInWindow int `json:"days_in_window"`
		PerType      []struct {
			RoomType           string `json:"room_type"`
			OccupiedRoomNights int    `json:"occupied_room_nights"`
			PaidRoomNights     int    `json:"paid_room_nights"`
			AvgDailyRate       string `json:"avg_daily_rate"`
			PeriodVacancyRate  string `json:"period_vacancy_rate"`
			MaxRentBooking     *struct {
				RecordID string `json:"record_id"`
			} `json:"max_rent_booking"`
		} `json:"per_type"`
		Overall struct {
			PaidRoomNights int    `json:"paid_room_nights"`
			AvgDailyRate   string `json:"avg_daily_rate"`
		} `json:"overall"`
	}
	resp := getJSON(t, srv.URL+"/api/metrics?start=2025-08-01&end=2025-08-10", &dto)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 10, dto.DaysInWindow)
	require.Len(t, dto.PerType, 1)

	m := dto.PerType[0]
	assert.Equal(t, "1B", m.RoomType)
	assert.Equal(t, 20, m.OccupiedRoomNights)
	assert.Equal(t, 10, m.PaidRoomNights)
	assert.Equal(t, "100", m.AvgDailyRate)
	assert.Equal(t, "0.8", m.PeriodVacancyRate)
	require.NotNil(t, m.MaxRentBooking)
	assert.Equal(t, "r-1", m.MaxRentBooking.RecordID)

	assert.Equal(t, 10, dto.Overall.PaidRoomNights)
	assert.Equal(t, "100", dto.Overall.AvgDailyRate)
}

func TestGetMetrics_ValidationErrors(t *testing.T) {
	srv := newTestServer(t)

	cases := []string{
		"/api/metrics?start=2025-08-10&end=2025-08-01",       // reversed window
		"/api/metrics?start=bogus&end=2025-08-01",            // bad date
		"/api/metrics?end=2025-08-01",                        // missing start
		"/api/metrics?start=2025-08-01&end=2025-08-10&statuses=lounging", // unknown status
	}
	for _, path := range cases {
		resp := getJSON(t, srv.URL+path, nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, path)
	}
}

func TestGetMetrics_TextFormat(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/metrics?start=2025-08-01&end=2025-08-10&format=text")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/plain")
}

// =============================================================================
// BUILDING-WIDE ENDPOINT
// =============================================================================

func TestGetBuildingOccupancy_WithDailyLog(t *testing.T) {
	srv := newTestServer(t)

	var dto struct {
		OccupiedNights int `json:"occupied_room_nights"`
		Daily          []struct {
			Date          string `json:"date"`
			OccupiedRooms int    `json:"occupied_rooms"`
		} `json:"daily"`
	}
	resp := getJSON(t, srv.URL+"/api/occupancy?start=2025-08-01&end=2025-08-05&daily=true", &dto)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 10, dto.OccupiedNights)
	require.Len(t, dto.Daily, 5)
	assert.Equal(t, "2025-08-01", dto.Daily[0].Date)
	assert.Equal(t, 2, dto.Daily[0].OccupiedRooms)
}

func TestGetBuildingOccupancy_NoDailyByDefault(t *testing.T) {
	srv := newTestServer(t)

	var dto struct {
		Daily []any `json:"daily"`
	}
	resp := getJSON(t, srv.URL+"/api/occupancy?start=2025-08-01&end=2025-08-05", &dto)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, dto.Daily)
}

// =============================================================================
// SUPPORTING ENDPOINTS
// =============================================================================

func TestListRoomTypes(t *testing.T) {
	srv := newTestServer(t)

	var dtos []struct {
		Code        string `json:"code"`
		TotalSupply int    `json:"total_supply"`
	}
	resp := getJSON(t, srv.URL+"/api/roomtypes", &dtos)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, dtos, 1)
	assert.Equal(t, "1B", dtos[0].Code)
	assert.Equal(t, 10, dtos[0].TotalSupply)
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	var dto struct {
		Status  string `json:"status"`
		Records int    `json:"records"`
	}
	resp := getJSON(t, srv.URL+"/api/health", &dto)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", dto.Status)
	assert.Equal(t, 2, dto.Records)
}

func TestLoadScenario_SeedsAndReloads(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/scenarios/messy-rebooking", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// 2 fixture records plus the 5 seeded ones
	var health struct {
		Records int `json:"records"`
	}
	getJSON(t, srv.URL+"/api/health", &health)
	assert.Equal(t, 7, health.Records)
}

func TestLoadScenario_Unknown(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/scenarios/nope", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
