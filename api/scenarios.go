/*
scenarios.go - Demo data loaders for testing and demonstrations

PURPOSE:
  Seeds the record store with realistic stay data so the metrics endpoints
  have something to show in a fresh environment. Each scenario exercises a
  specific engine behavior: overlapping duplicates, mixed paid/unpaid stays,
  a fully vacant building.

AVAILABLE SCENARIOS:
  quiet-month:     no records at all (all-zero metrics, n/a bookings)
  steady-august:   non-overlapping paid and unpaid stays across two types
  messy-rebooking: overlapping duplicates for the same rooms, where the
                   dedup priority rule decides the winners

NOTE:
  Seeding appends records and rebuilds the engine. Only use in development
  and demo environments; scenario IDs are generated fresh on every load.

SEE ALSO:
  - handlers.go: LoadScenario endpoint
*/
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spark/occupancy-engine/occupancy"
)

type scenario struct {
	ID          string
	Name        string
	Description string
	Build       func() []occupancy.StayRecord
}

var scenarios = []scenario{
	{
		ID:          "quiet-month",
		Name:        "Quiet month",
		Description: "No stays at all: every metric is zero, bookings are n/a",
		Build:       func() []occupancy.StayRecord { return nil },
	},
	{
		ID:          "steady-august",
		Name:        "Steady August",
		Description: "Non-overlapping paid and unpaid stays across two room types",
		Build:       buildSteadyAugust,
	},
	{
		ID:          "messy-rebooking",
		Name:        "Messy rebooking",
		Description: "Overlapping duplicates for the same rooms, resolved by dedup priority",
		Build:       buildMessyRebooking,
	},
}

// ListScenarios returns the available demo scenarios.
// GET /api/scenarios
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	dtos := make([]ScenarioDTO, 0, len(scenarios))
	for _, s := range scenarios {
		dtos = append(dtos, ScenarioDTO{
			ID:          s.ID,
			Name:        s.Name,
			Description: s.Description,
			Records:     len(s.Build()),
		})
	}
	writeJSON(w, http.StatusOK, dtos)
}

// LoadScenario seeds the store with a named scenario and reloads the engine.
// POST /api/scenarios/{id}
func (h *Handler) LoadScenario(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	for _, s := range scenarios {
		if s.ID != id {
			continue
		}
		if err := h.seed(r.Context(), s.Build()); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to load scenario", err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"loaded":  s.ID,
			"records": h.currentEngine().RecordCount(),
		})
		return
	}
	writeError(w, http.StatusNotFound, "Unknown scenario", nil)
}

func (h *Handler) seed(ctx context.Context, records []occupancy.StayRecord) error {
	if len(records) > 0 {
		if err := h.store.InsertRecords(ctx, records); err != nil {
			return err
		}
	}
	return h.LoadRecords(ctx)
}

// =============================================================================
// SCENARIO BUILDERS
// =============================================================================

func demoStay(room, roomType string, arrival, departure occupancy.Date, status occupancy.Status, rate int64, created time.Time) occupancy.StayRecord {
	return occupancy.StayRecord{
		RecordID:    uuid.NewString(),
		RoomNumber:  room,
		RoomType:    roomType,
		Arrival:     arrival,
		Departure:   departure,
		Status:      status,
		MonthlyRate: decimal.NewFromInt(rate),
		CreatedAt:   created,
	}
}

func buildSteadyAugust() []occupancy.StayRecord {
	aug := func(day int) occupancy.Date { return occupancy.NewDate(2025, time.August, day) }
	created := time.Date(2025, time.July, 15, 9, 0, 0, 0, time.UTC)

	return []occupancy.StayRecord{
		demoStay("A101", "1B", aug(1), aug(15), occupancy.StatusInHouse, 5200, created),
		demoStay("A102", "1B", aug(3), aug(28), occupancy.StatusInHouse, 4800, created),
		demoStay("A103", "1B", aug(10), aug(20), occupancy.StatusReserved, 0, created),
		demoStay("B201", "2B", aug(1), aug(31), occupancy.StatusInHouse, 9600, created),
		demoStay("B202", "2B", aug(5), aug(12), occupancy.StatusCheckedOut, 8800, created),
	}
}

func buildMessyRebooking() []occupancy.StayRecord {
	aug := func(day int) occupancy.Date { return occupancy.NewDate(2025, time.August, day) }
	early := time.Date(2025, time.July, 1, 8, 0, 0, 0, time.UTC)
	late := time.Date(2025, time.July, 20, 8, 0, 0, 0, time.UTC)

	return []occupancy.StayRecord{
		// cancelled rebooking: the paid original wins every covered day
		demoStay("A101", "1B", aug(1), aug(20), occupancy.StatusInHouse, 6000, early),
		demoStay("A101", "1B", aug(5), aug(20), occupancy.StatusInHouse, 0, late),
		// migration artifact: exact duplicate, newer row wins
		demoStay("A102", "1B", aug(1), aug(31), occupancy.StatusInHouse, 5000, early),
		demoStay("A102", "1B", aug(1), aug(31), occupancy.StatusInHouse, 5000, late),
		// cancelled stay never occupies
		demoStay("B201", "2B", aug(1), aug(31), occupancy.StatusCancelled, 9000, early),
	}
}
