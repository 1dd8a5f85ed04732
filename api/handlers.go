/*
handlers.go - HTTP handlers for the occupancy API

PURPOSE:
  Translates HTTP requests into engine queries and engine results into JSON
  (or plain text via the report package). Handlers never compute metrics
  themselves; they parse, delegate, and serialize.

ERROR HANDLING:
  - 400: validation errors (bad dates, reversed window, unknown status)
  - 404: unknown scenario
  - 500: store failures
  Validation errors mean no aggregation ran; the engine guarantees callers
  never see a partial aggregate.

ENGINE LIFECYCLE:
  The handler owns the current engine. Records are loaded from the store
  once at startup (LoadRecords) and again only after seeding a scenario;
  serving a query never touches the store.

SEE ALSO:
  - dto.go: response shapes
  - scenarios.go: demo data seeding
  - server.go: routing
*/
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"strings"
	"sync"

	"github.com/spark/occupancy-engine/occupancy"
	"github.com/spark/occupancy-engine/report"
	"github.com/spark/occupancy-engine/store"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	store  store.RecordStore
	config occupancy.RoomTypeConfigMap

	mu     sync.RWMutex
	engine *occupancy.Engine
}

// NewHandler creates a handler over the given record store and room-type
// configuration. Call LoadRecords before serving.
func NewHandler(recordStore store.RecordStore, config occupancy.RoomTypeConfigMap) *Handler {
	return &Handler{
		store:  recordStore,
		config: config,
		engine: occupancy.NewEngine(nil, config),
	}
}

// LoadRecords (re)builds the engine from the store. This is the single point
// where record I/O happens; queries served afterwards are purely in-memory.
func (h *Handler) LoadRecords(ctx context.Context) error {
	records, err := h.store.LoadAll(ctx)
	if err != nil {
		return err
	}
	h.setEngine(occupancy.NewEngine(records, h.config))
	return nil
}

// =============================================================================
// QUERY PARSING
// =============================================================================

// parseStatuses parses a comma-separated status list; empty means the
// default occupancy set.
func parseStatuses(raw string) (occupancy.StatusFilter, error) {
	if raw == "" {
		return nil, nil
	}
	var statuses []occupancy.Status
	for _, part := range strings.Split(raw, ",") {
		s, err := occupancy.ParseStatus(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, s)
	}
	return occupancy.NewStatusFilter(statuses...), nil
}

func parseTypes(raw string) []string {
	if raw == "" {
		return nil
	}
	var types []string
	for _, part := range strings.Split(raw, ",") {
		if t := strings.TrimSpace(part); t != "" {
			types = append(types, t)
		}
	}
	return types
}

// =============================================================================
// METRICS ENDPOINTS
// =============================================================================

// GetMetrics runs the full per-type query.
// GET /api/metrics?start=2025-08-01&end=2025-08-31&statuses=in_house,reserved&types=1B,2B&format=json|text
func (h *Handler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	window, err := occupancy.ParseWindow(q.Get("start"), q.Get("end"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid query window", err)
		return
	}
	statuses, err := parseStatuses(q.Get("statuses"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid status filter", err)
		return
	}

	result, err := h.currentEngine().Query(occupancy.QueryInput{
		Start:     window.Start,
		End:       window.End,
		Statuses:  statuses,
		RoomTypes: parseTypes(q.Get("types")),
	})
	if err != nil {
		writeError(w, statusFor(err), "Query failed", err)
		return
	}

	if q.Get("format") == "text" {
		writeText(w, report.Render(result))
		return
	}
	writeJSON(w, http.StatusOK, toReportDTO(result))
}

// GetBuildingOccupancy runs the simpler building-wide query.
// GET /api/occupancy?start=2025-08-01&end=2025-08-31&daily=true&format=json|text
func (h *Handler) GetBuildingOccupancy(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	window, err := occupancy.ParseWindow(q.Get("start"), q.Get("end"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid query window", err)
		return
	}
	statuses, err := parseStatuses(q.Get("statuses"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid status filter", err)
		return
	}

	result, err := h.currentEngine().BuildingOccupancy(occupancy.BuildingQueryInput{
		Start:    window.Start,
		End:      window.End,
		Statuses: statuses,
		DailyLog: q.Get("daily") == "true" || q.Get("daily") == "1",
	})
	if err != nil {
		writeError(w, statusFor(err), "Query failed", err)
		return
	}

	if q.Get("format") == "text" {
		writeText(w, report.RenderBuilding(result))
		return
	}
	writeJSON(w, http.StatusOK, toBuildingReportDTO(result))
}

// ListRoomTypes returns the configured room types.
// GET /api/roomtypes
func (h *Handler) ListRoomTypes(w http.ResponseWriter, r *http.Request) {
	dtos := make([]RoomTypeDTO, 0, len(h.config))
	for _, cfg := range h.config {
		dtos = append(dtos, RoomTypeDTO{
			Code:        cfg.Code,
			TotalSupply: cfg.TotalSupply,
			AreaSqm:     cfg.AreaSqm.String(),
		})
	}
	sort.Slice(dtos, func(i, j int) bool { return dtos[i].Code < dtos[j].Code })
	writeJSON(w, http.StatusOK, dtos)
}

// Health reports liveness and the size of the loaded record table.
// GET /api/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"records": h.currentEngine().RecordCount(),
	})
}

// =============================================================================
// ENGINE LIFECYCLE
// =============================================================================

func (h *Handler) currentEngine() *occupancy.Engine {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.engine
}

func (h *Handler) setEngine(e *occupancy.Engine) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.engine = e
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func statusFor(err error) int {
	if occupancy.IsValidationError(err) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeText(w http.ResponseWriter, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(text))
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
