/*
engine.go - Query orchestration over an in-memory record table

PURPOSE:
  The Engine owns the loaded record table and room-type configuration and
  runs whole queries: validate the window, aggregate per room type, snapshot
  the window's last day, derive metrics, and fold the overall summary.

RESOURCE MODEL:
  Records are loaded once, before any query, and are read-only for the
  engine's lifetime. Queries perform no I/O and keep no state between calls;
  the only mutable state is the accumulator owned by the single query. Two
  queries with identical inputs produce identical results.

ERROR POLICY:
  A reversed window is the only failure mode; it aborts before aggregation.
  Records missing required fields were dropped at load time and are surfaced
  as SkippedRecords on every report.
*/
package occupancy

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Engine answers occupancy queries over an immutable record table.
type Engine struct {
	records []StayRecord
	skipped int
	config  RoomTypeConfigMap
}

// NewEngine builds an engine over the given records and configuration.
// Records missing required fields are dropped here, once, and counted; the
// remaining table is never re-validated or re-read during queries.
func NewEngine(records []StayRecord, config RoomTypeConfigMap) *Engine {
	usable := make([]StayRecord, 0, len(records))
	skipped := 0
	for _, r := range records {
		if r.Complete() {
			usable = append(usable, r)
		} else {
			skipped++
		}
	}
	if config == nil {
		config = RoomTypeConfigMap{}
	}
	return &Engine{records: usable, skipped: skipped, config: config}
}

// Config exposes the room-type configuration the engine was built with.
func (e *Engine) Config() RoomTypeConfigMap { return e.config }

// RecordCount returns how many usable records the engine holds.
func (e *Engine) RecordCount() int { return len(e.records) }

// =============================================================================
// FULL QUERY - per room type plus overall summary
// =============================================================================

// QueryInput describes one metrics query. A nil Statuses means the default
// occupancy set {in_house, reserved}; a nil RoomTypes means every room type
// known to configuration or present in the records.
type QueryInput struct {
	Start     Date
	End       Date
	Statuses  StatusFilter
	RoomTypes []string
}

// Report is the structured result of one full query. Rendering to text is a
// separate concern (package report); nothing here is formatted or printed.
type Report struct {
	Window         Window
	DaysInWindow   int
	PerType        []TypeMetrics
	Overall        OverallMetrics
	SkippedRecords int
}

// Query validates the window, then computes per-type metrics and the overall
// summary. Callers always get either a well-formed report or a validation
// error raised before any aggregation; never a partial aggregate.
func (e *Engine) Query(in QueryInput) (*Report, error) {
	w, err := NewWindow(in.Start, in.End)
	if err != nil {
		return nil, err
	}
	filter := in.Statuses
	if filter == nil {
		filter = DefaultStatusFilter()
	}

	types := in.RoomTypes
	if len(types) == 0 {
		types = e.knownRoomTypes()
	}

	report := &Report{
		Window:         w,
		DaysInWindow:   w.NumDays(),
		SkippedRecords: e.skipped,
	}
	for _, rt := range types {
		counters := Aggregate(e.records, rt, w, filter)
		snap := SnapshotAt(e.records, rt, w.End, filter)
		paid := PaidBookingsInWindow(e.records, rt, w)
		m := ComputeTypeMetrics(rt, counters, snap, e.config.Get(rt), w.NumDays(), paid)
		report.PerType = append(report.PerType, m)
	}
	report.Overall = ComputeOverall(report.PerType)
	return report, nil
}

// knownRoomTypes returns the sorted union of configured codes and codes seen
// in the record table, so a type with records but no configuration still
// shows up (with the zero-supply defaults).
func (e *Engine) knownRoomTypes() []string {
	seen := make(map[string]struct{})
	for code := range e.config {
		seen[code] = struct{}{}
	}
	for _, r := range e.records {
		if r.RoomType != "" {
			seen[r.RoomType] = struct{}{}
		}
	}
	types := make([]string, 0, len(seen))
	for code := range seen {
		types = append(types, code)
	}
	sort.Strings(types)
	return types
}

// =============================================================================
// BUILDING-WIDE QUERY - coarser grouping, optional per-day breakdown
// =============================================================================

// BuildingQueryInput describes the simpler ungrouped query path.
type BuildingQueryInput struct {
	Start    Date
	End      Date
	Statuses StatusFilter
	DailyLog bool
}

// DayBreakdown is one day's line of the optional breakdown log.
type DayBreakdown struct {
	Date          Date
	OccupiedRooms int
	PaidRooms     int
	DailyRent     decimal.Decimal
}

// BuildingReport is the building-wide occupancy and rental-rate result.
type BuildingReport struct {
	Window         Window
	DaysInWindow   int
	Counters       AggregateCounters
	PeriodVacancy  decimal.Decimal
	EndOfWindow    Snapshot
	AvgDailyRate   decimal.Decimal
	AvgMonthlyRate decimal.Decimal
	Daily          []DayBreakdown
	SkippedRecords int
}

// BuildingOccupancy runs the same resolver and day iteration as Query with
// no room-type grouping. With DailyLog set it also records one breakdown
// entry per day of the window.
func (e *Engine) BuildingOccupancy(in BuildingQueryInput) (*BuildingReport, error) {
	w, err := NewWindow(in.Start, in.End)
	if err != nil {
		return nil, err
	}
	filter := in.Statuses
	if filter == nil {
		filter = DefaultStatusFilter()
	}

	pool := filterCandidates(e.records, "", w)
	report := &BuildingReport{
		Window:         w,
		DaysInWindow:   w.NumDays(),
		Counters:       AggregateCounters{AccumulatedRent: decimal.Zero},
		AvgDailyRate:   decimal.Zero,
		AvgMonthlyRate: decimal.Zero,
		SkippedRecords: e.skipped,
	}

	for day := w.Start; day.BeforeOrEqual(w.End); day = day.AddDays(1) {
		breakdown := DayBreakdown{Date: day, DailyRent: decimal.Zero}
		for _, winner := range ResolveDay(day, pool, filter) {
			breakdown.OccupiedRooms++
			if winner.HasRent() {
				breakdown.PaidRooms++
				breakdown.DailyRent = breakdown.DailyRent.Add(DailyRent(winner.MonthlyRate))
			}
		}
		report.Counters.OccupiedRoomNights += breakdown.OccupiedRooms
		report.Counters.PaidRoomNights += breakdown.PaidRooms
		report.Counters.AccumulatedRent = report.Counters.AccumulatedRent.Add(breakdown.DailyRent)
		if in.DailyLog {
			report.Daily = append(report.Daily, breakdown)
		}
	}

	report.PeriodVacancy = vacancyRate(report.Counters.OccupiedRoomNights, e.config.TotalSupply(), w.NumDays())
	report.EndOfWindow = SnapshotAt(e.records, "", w.End, filter)
	if report.Counters.PaidRoomNights > 0 {
		report.AvgDailyRate = report.Counters.AccumulatedRent.Div(decimal.NewFromInt(int64(report.Counters.PaidRoomNights)))
		report.AvgMonthlyRate = report.AvgDailyRate.Mul(daysPerMonth)
	}
	return report, nil
}
