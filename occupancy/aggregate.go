/*
aggregate.go - Day-by-day window aggregation

PURPOSE:
  Walks a query window one day at a time, resolving winners per room via the
  snapshot resolver, and accumulates room-night counters and amortized rent.

KEY GUARANTEES:
  - No double counting: resolution is re-run independently per day against
    the half-open coverage test, so a record spanning N window days is
    counted exactly N times, never more, never skipped.
  - No O(days x full_table) rescans: the record set is reduced once, before
    the day loop, to records overlapping the window and matching the room
    type. The per-day resolver only ever sees that pool.
  - Counters only ever increment during the single pass.

AMORTIZATION CONVENTION:
  Daily rent is monthly_rate / 30, always. This is a deliberate business
  convention, not a calendar computation; do not replace it with actual
  days-in-month division, which would silently change every reported rate.

SEE ALSO:
  - resolver.go: the per-day resolution this loop drives
  - metrics.go: rates and efficiency derived from the counters
*/
package occupancy

import "github.com/shopspring/decimal"

// daysPerMonth is the fixed amortization divisor for monthly rates.
var daysPerMonth = decimal.NewFromInt(30)

// AggregateCounters is the derived aggregate state of one query, scoped to
// one room type (or to the whole building for the ungrouped path).
type AggregateCounters struct {
	OccupiedRoomNights int
	PaidRoomNights     int
	AccumulatedRent    decimal.Decimal
}

// DailyRent returns the amortized per-day rent of a monthly rate.
func DailyRent(monthlyRate decimal.Decimal) decimal.Decimal {
	return monthlyRate.Div(daysPerMonth)
}

// filterCandidates reduces records to the complete ones overlapping the
// window, optionally restricted to one room type (empty matches all). Done
// once per query so the day loop never rescans the full table.
func filterCandidates(records []StayRecord, roomType string, w Window) []StayRecord {
	var pool []StayRecord
	for _, r := range records {
		if !r.Complete() {
			continue
		}
		if roomType != "" && r.RoomType != roomType {
			continue
		}
		if r.Overlaps(w) {
			pool = append(pool, r)
		}
	}
	return pool
}

// Aggregate walks every day of the closed window for one room type and
// accumulates occupied room-nights, paid room-nights, and amortized rent.
// Pass roomType == "" to aggregate the whole building without grouping.
func Aggregate(records []StayRecord, roomType string, w Window, filter StatusFilter) AggregateCounters {
	pool := filterCandidates(records, roomType, w)

	counters := AggregateCounters{AccumulatedRent: decimal.Zero}
	for day := w.Start; day.BeforeOrEqual(w.End); day = day.AddDays(1) {
		for _, winner := range ResolveDay(day, pool, filter) {
			counters.OccupiedRoomNights++
			if winner.HasRent() {
				counters.PaidRoomNights++
				counters.AccumulatedRent = counters.AccumulatedRent.Add(DailyRent(winner.MonthlyRate))
			}
		}
	}
	return counters
}
