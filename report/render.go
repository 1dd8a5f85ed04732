// Package report renders structured query results as plain text. Rendering is
// a pure function of the result object; computation never prints and this
// package never computes.
package report

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/spark/occupancy-engine/occupancy"
)

const notApplicable = "n/a"

// Render formats a full per-type report.
func Render(r *occupancy.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Occupancy report %s (%d days)\n", r.Window, r.DaysInWindow)
	if r.SkippedRecords > 0 {
		fmt.Fprintf(&b, "  note: %d record(s) skipped for missing fields\n", r.SkippedRecords)
	}

	for _, m := range r.PerType {
		fmt.Fprintf(&b, "\n[%s] supply=%d area=%s sqm\n", m.RoomType, m.Config.TotalSupply, m.Config.AreaSqm)
		fmt.Fprintf(&b, "  end of window (%s): occupied=%d paid=%d vacancy=%s\n",
			m.EndOfWindow.AsOf, m.EndOfWindow.OccupiedCount, m.EndOfWindow.PaidCount, percent(m.EndOfWindowVacancy))
		fmt.Fprintf(&b, "  period: occupied nights=%d paid nights=%d vacancy=%s\n",
			m.Counters.OccupiedRoomNights, m.Counters.PaidRoomNights, percent(m.PeriodVacancy))
		fmt.Fprintf(&b, "  rent: accumulated=%s avg daily=%s avg monthly=%s efficiency=%s/sqm/day\n",
			money(m.Counters.AccumulatedRent), money(m.AvgDailyRate), money(m.AvgMonthlyRate), money(m.Efficiency))
		fmt.Fprintf(&b, "  max booking: %s\n", booking(m.MaxRentBooking))
		fmt.Fprintf(&b, "  min booking: %s\n", booking(m.MinRentBooking))
	}

	fmt.Fprintf(&b, "\nOverall: occupied nights=%d paid nights=%d rent=%s avg daily=%s avg monthly=%s efficiency=%s/sqm/day\n",
		r.Overall.OccupiedRoomNights, r.Overall.PaidRoomNights,
		money(r.Overall.AccumulatedRent), money(r.Overall.AvgDailyRate),
		money(r.Overall.AvgMonthlyRate), money(r.Overall.Efficiency))

	return b.String()
}

// RenderBuilding formats the building-wide result, with one line per day when
// the breakdown log was requested.
func RenderBuilding(r *occupancy.BuildingReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Building occupancy %s (%d days)\n", r.Window, r.DaysInWindow)
	fmt.Fprintf(&b, "  occupied nights=%d paid nights=%d vacancy=%s\n",
		r.Counters.OccupiedRoomNights, r.Counters.PaidRoomNights, percent(r.PeriodVacancy))
	fmt.Fprintf(&b, "  rent=%s avg daily=%s avg monthly=%s\n",
		money(r.Counters.AccumulatedRent), money(r.AvgDailyRate), money(r.AvgMonthlyRate))
	fmt.Fprintf(&b, "  end of window (%s): occupied=%d paid=%d\n",
		r.EndOfWindow.AsOf, r.EndOfWindow.OccupiedCount, r.EndOfWindow.PaidCount)

	for _, day := range r.Daily {
		fmt.Fprintf(&b, "    %s  occupied=%d paid=%d rent=%s\n",
			day.Date, day.OccupiedRooms, day.PaidRooms, money(day.DailyRent))
	}
	return b.String()
}

func booking(ref *occupancy.BookingRef) string {
	if ref == nil {
		return notApplicable
	}
	return fmt.Sprintf("%s room %s rate=%s [%s, %s)",
		ref.RecordID, ref.RoomNumber, money(ref.MonthlyRate), ref.Arrival, ref.Departure)
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func percent(d decimal.Decimal) string {
	return d.Mul(decimal.NewFromInt(100)).StringFixed(1) + "%"
}
