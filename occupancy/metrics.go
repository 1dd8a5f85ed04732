/*
metrics.go - Derived rates, efficiency, and extremal bookings

PURPOSE:
  Turns the aggregator's raw counters into the numbers people actually read:
  vacancy rates, average daily/monthly rates, rent per square meter per day,
  and the highest/lowest paid bookings touching the window.

GUARDS:
  Every division is guarded. Zero supply means vacancy 1.0 (fully vacant by
  convention when there is nothing to occupy). Zero paid nights means rates
  of 0. Zero area or zero rate means efficiency 0. A room type missing from
  configuration therefore degrades gracefully instead of dividing by zero.

NOT APPLICABLE vs ZERO:
  Max/min bookings are nil pointers when no paid booking overlaps the
  window. A nil booking ref means "not applicable" and is distinct from a
  booking with a zero rate, which cannot appear here at all (paid means
  monthly_rate > 0).
*/
package occupancy

import "github.com/shopspring/decimal"

// BookingRef identifies one extremal paid booking. Dates are the booking's
// own arrival/departure, never clipped to the query window.
type BookingRef struct {
	RecordID    string
	RoomNumber  string
	MonthlyRate decimal.Decimal
	Arrival     Date
	Departure   Date
}

// TypeMetrics is the full per-room-type result of one query.
type TypeMetrics struct {
	RoomType string
	Config   RoomTypeConfig

	// Point-in-time state at the window's last day. Kept apart from the
	// period figures below; see snapshot.go.
	EndOfWindow        Snapshot
	EndOfWindowVacancy decimal.Decimal

	// Period aggregates over the whole window.
	Counters      AggregateCounters
	PeriodVacancy decimal.Decimal

	AvgDailyRate   decimal.Decimal
	AvgMonthlyRate decimal.Decimal

	// Rent per square meter per day.
	Efficiency decimal.Decimal

	// Extremal paid bookings overlapping the window; nil when none exist.
	MaxRentBooking *BookingRef
	MinRentBooking *BookingRef
}

// OverallMetrics is the single cross-room-type summary of a query.
type OverallMetrics struct {
	OccupiedRoomNights int
	PaidRoomNights     int
	AccumulatedRent    decimal.Decimal
	AvgDailyRate       decimal.Decimal
	AvgMonthlyRate     decimal.Decimal

	// Area-weighted: sum(rent) / sum(paid_nights * area), NOT a simple
	// average of the per-type efficiencies.
	Efficiency decimal.Decimal
}

// vacancyRate computes 1 - occupied / (supply * days), or 1 when there is no
// supply to occupy.
func vacancyRate(occupied, supply, days int) decimal.Decimal {
	capacity := int64(supply) * int64(days)
	if capacity <= 0 {
		return decimal.NewFromInt(1)
	}
	ratio := decimal.NewFromInt(int64(occupied)).Div(decimal.NewFromInt(capacity))
	return decimal.NewFromInt(1).Sub(ratio)
}

// ComputeTypeMetrics derives the full metric set for one room type from its
// counters, end-of-window snapshot, configuration, and the distinct paid
// bookings overlapping the window.
func ComputeTypeMetrics(
	roomType string,
	counters AggregateCounters,
	endOfWindow Snapshot,
	cfg RoomTypeConfig,
	daysInWindow int,
	paidBookings []StayRecord,
) TypeMetrics {
	m := TypeMetrics{
		RoomType:           roomType,
		Config:             cfg,
		EndOfWindow:        endOfWindow,
		EndOfWindowVacancy: vacancyRate(endOfWindow.OccupiedCount, cfg.TotalSupply, 1),
		Counters:           counters,
		PeriodVacancy:      vacancyRate(counters.OccupiedRoomNights, cfg.TotalSupply, daysInWindow),
		AvgDailyRate:       decimal.Zero,
		AvgMonthlyRate:     decimal.Zero,
		Efficiency:         decimal.Zero,
	}

	if counters.PaidRoomNights > 0 {
		m.AvgDailyRate = counters.AccumulatedRent.Div(decimal.NewFromInt(int64(counters.PaidRoomNights)))
		m.AvgMonthlyRate = m.AvgDailyRate.Mul(daysPerMonth)
	}
	if cfg.AreaSqm.IsPositive() && m.AvgDailyRate.IsPositive() {
		m.Efficiency = m.AvgDailyRate.Div(cfg.AreaSqm)
	}

	m.MaxRentBooking, m.MinRentBooking = extremalBookings(paidBookings)
	return m
}

// PaidBookingsInWindow returns the distinct paid bookings (deduplicated by
// record ID, not by day) whose interval overlaps the window, optionally
// restricted to one room type. These feed the max/min extremes, which report
// whole bookings rather than per-day amounts.
func PaidBookingsInWindow(records []StayRecord, roomType string, w Window) []StayRecord {
	seen := make(map[string]struct{})
	var bookings []StayRecord
	for _, r := range filterCandidates(records, roomType, w) {
		if !r.HasRent() {
			continue
		}
		if _, dup := seen[r.RecordID]; dup {
			continue
		}
		seen[r.RecordID] = struct{}{}
		bookings = append(bookings, r)
	}
	return bookings
}

func extremalBookings(bookings []StayRecord) (max, min *BookingRef) {
	for _, b := range bookings {
		ref := &BookingRef{
			RecordID:    b.RecordID,
			RoomNumber:  b.RoomNumber,
			MonthlyRate: b.MonthlyRate,
			Arrival:     b.Arrival,
			Departure:   b.Departure,
		}
		if max == nil || b.MonthlyRate.GreaterThan(max.MonthlyRate) {
			max = ref
		}
		if min == nil || b.MonthlyRate.LessThan(min.MonthlyRate) {
			min = ref
		}
	}
	return max, min
}

// ComputeOverall folds per-type results into the cross-type summary. The
// average rate divides total rent by total paid nights, and efficiency
// weights each type's area by its paid nights.
func ComputeOverall(perType []TypeMetrics) OverallMetrics {
	overall := OverallMetrics{
		AccumulatedRent: decimal.Zero,
		AvgDailyRate:    decimal.Zero,
		AvgMonthlyRate:  decimal.Zero,
		Efficiency:      decimal.Zero,
	}

	weightedArea := decimal.Zero
	for _, m := range perType {
		overall.OccupiedRoomNights += m.Counters.OccupiedRoomNights
		overall.PaidRoomNights += m.Counters.PaidRoomNights
		overall.AccumulatedRent = overall.AccumulatedRent.Add(m.Counters.AccumulatedRent)
		nights := decimal.NewFromInt(int64(m.Counters.PaidRoomNights))
		weightedArea = weightedArea.Add(nights.Mul(m.Config.AreaSqm))
	}

	if overall.PaidRoomNights > 0 {
		overall.AvgDailyRate = overall.AccumulatedRent.Div(decimal.NewFromInt(int64(overall.PaidRoomNights)))
		overall.AvgMonthlyRate = overall.AvgDailyRate.Mul(daysPerMonth)
	}
	if weightedArea.IsPositive() {
		overall.Efficiency = overall.AccumulatedRent.Div(weightedArea)
	}
	return overall
}
