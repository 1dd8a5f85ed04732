/*
dto.go - Data Transfer Objects for API responses

PURPOSE:
  JSON shapes returned to clients, decoupled from the domain types so the
  engine's structs can evolve without breaking the API contract.

CONVENTIONS:
  - Decimal values are serialized as strings to avoid float rounding in
    clients ("100", "0.7", "3000.5").
  - Dates are "YYYY-MM-DD" strings.
  - Max/min bookings are omitted entirely when not applicable; a missing
    field means "no paid booking", never "rate of zero".

SEE ALSO:
  - handlers.go: builds these from engine results
*/
package api

import (
	"github.com/spark/occupancy-engine/occupancy"
)

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// BookingRefDTO is one extremal paid booking.
type BookingRefDTO struct {
	RecordID    string `json:"record_id"`
	RoomNumber  string `json:"room_number"`
	MonthlyRate string `json:"monthly_rate"`
	Arrival     string `json:"arrival"`
	Departure   string `json:"departure"`
}

// SnapshotDTO is the end-of-window point-in-time state.
type SnapshotDTO struct {
	AsOf          string `json:"as_of"`
	OccupiedCount int    `json:"occupied_count"`
	PaidCount     int    `json:"paid_count"`
	VacancyRate   string `json:"vacancy_rate,omitempty"`
}

// TypeMetricsDTO is the full per-room-type result.
type TypeMetricsDTO struct {
	RoomType    string `json:"room_type"`
	TotalSupply int    `json:"total_supply"`
	AreaSqm     string `json:"area_sqm"`

	EndOfWindow SnapshotDTO `json:"end_of_window"`

	OccupiedRoomNights int    `json:"occupied_room_nights"`
	PaidRoomNights     int    `json:"paid_room_nights"`
	PeriodVacancyRate  string `json:"period_vacancy_rate"`

	AccumulatedRent string `json:"accumulated_rent"`
	AvgDailyRate    string `json:"avg_daily_rate"`
	AvgMonthlyRate  string `json:"avg_monthly_rate"`
	Efficiency      string `json:"efficiency"`

	MaxRentBooking *BookingRefDTO `json:"max_rent_booking,omitempty"`
	MinRentBooking *BookingRefDTO `json:"min_rent_booking,omitempty"`
}

// OverallMetricsDTO is the cross-type summary.
type OverallMetricsDTO struct {
	OccupiedRoomNights int    `json:"occupied_room_nights"`
	PaidRoomNights     int    `json:"paid_room_nights"`
	AccumulatedRent    string `json:"accumulated_rent"`
	AvgDailyRate       string `json:"avg_daily_rate"`
	AvgMonthlyRate     string `json:"avg_monthly_rate"`
	Efficiency         string `json:"efficiency"`
}

// ReportDTO is the response of GET /api/metrics.
type ReportDTO struct {
	Start          string            `json:"start"`
	End            string            `json:"end"`
	DaysInWindow   int               `json:"days_in_window"`
	PerType        []TypeMetricsDTO  `json:"per_type"`
	Overall        OverallMetricsDTO `json:"overall"`
	SkippedRecords int               `json:"skipped_records"`
}

// DayBreakdownDTO is one day of the optional building-wide breakdown.
type DayBreakdownDTO struct {
	Date          string `json:"date"`
	OccupiedRooms int    `json:"occupied_rooms"`
	PaidRooms     int    `json:"paid_rooms"`
	DailyRent     string `json:"daily_rent"`
}

// BuildingReportDTO is the response of GET /api/occupancy.
type BuildingReportDTO struct {
	Start          string            `json:"start"`
	End            string            `json:"end"`
	DaysInWindow   int               `json:"days_in_window"`
	OccupiedNights int               `json:"occupied_room_nights"`
	PaidNights     int               `json:"paid_room_nights"`
	PeriodVacancy  string            `json:"period_vacancy_rate"`
	EndOfWindow    SnapshotDTO       `json:"end_of_window"`
	Rent           string            `json:"accumulated_rent"`
	AvgDailyRate   string            `json:"avg_daily_rate"`
	AvgMonthlyRate string            `json:"avg_monthly_rate"`
	Daily          []DayBreakdownDTO `json:"daily,omitempty"`
	SkippedRecords int               `json:"skipped_records"`
}

// RoomTypeDTO is one configured room type.
type RoomTypeDTO struct {
	Code        string `json:"code"`
	TotalSupply int    `json:"total_supply"`
	AreaSqm     string `json:"area_sqm"`
}

// ScenarioDTO describes a loadable demo scenario.
type ScenarioDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Records     int    `json:"records"`
}

// =============================================================================
// DOMAIN -> DTO CONVERSION
// =============================================================================

func toBookingRefDTO(ref *occupancy.BookingRef) *BookingRefDTO {
	if ref == nil {
		return nil
	}
	return &BookingRefDTO{
		RecordID:    ref.RecordID,
		RoomNumber:  ref.RoomNumber,
		MonthlyRate: ref.MonthlyRate.String(),
		Arrival:     ref.Arrival.String(),
		Departure:   ref.Departure.String(),
	}
}

func toTypeMetricsDTO(m occupancy.TypeMetrics) TypeMetricsDTO {
	return TypeMetricsDTO{
		RoomType:    m.RoomType,
		TotalSupply: m.Config.TotalSupply,
		AreaSqm:     m.Config.AreaSqm.String(),
		EndOfWindow: SnapshotDTO{
			AsOf:          m.EndOfWindow.AsOf.String(),
			OccupiedCount: m.EndOfWindow.OccupiedCount,
			PaidCount:     m.EndOfWindow.PaidCount,
			VacancyRate:   m.EndOfWindowVacancy.String(),
		},
		OccupiedRoomNights: m.Counters.OccupiedRoomNights,
		PaidRoomNights:     m.Counters.PaidRoomNights,
		PeriodVacancyRate:  m.PeriodVacancy.String(),
		AccumulatedRent:    m.Counters.AccumulatedRent.String(),
		AvgDailyRate:       m.AvgDailyRate.String(),
		AvgMonthlyRate:     m.AvgMonthlyRate.String(),
		Efficiency:         m.Efficiency.String(),
		MaxRentBooking:     toBookingRefDTO(m.MaxRentBooking),
		MinRentBooking:     toBookingRefDTO(m.MinRentBooking),
	}
}

func toReportDTO(r *occupancy.Report) ReportDTO {
	dto := ReportDTO{
		Start:        r.Window.Start.String(),
		End:          r.Window.End.String(),
		DaysInWindow: r.DaysInWindow,
		PerType:      make([]TypeMetricsDTO, 0, len(r.PerType)),
		Overall: OverallMetricsDTO{
			OccupiedRoomNights: r.Overall.OccupiedRoomNights,
			PaidRoomNights:     r.Overall.PaidRoomNights,
			AccumulatedRent:    r.Overall.AccumulatedRent.String(),
			AvgDailyRate:       r.Overall.AvgDailyRate.String(),
			AvgMonthlyRate:     r.Overall.AvgMonthlyRate.String(),
			Efficiency:         r.Overall.Efficiency.String(),
		},
		SkippedRecords: r.SkippedRecords,
	}
	for _, m := range r.PerType {
		dto.PerType = append(dto.PerType, toTypeMetricsDTO(m))
	}
	return dto
}

func toBuildingReportDTO(r *occupancy.BuildingReport) BuildingReportDTO {
	dto := BuildingReportDTO{
		Start:          r.Window.Start.String(),
		End:            r.Window.End.String(),
		DaysInWindow:   r.DaysInWindow,
		OccupiedNights: r.Counters.OccupiedRoomNights,
		PaidNights:     r.Counters.PaidRoomNights,
		PeriodVacancy:  r.PeriodVacancy.String(),
		EndOfWindow: SnapshotDTO{
			AsOf:          r.EndOfWindow.AsOf.String(),
			OccupiedCount: r.EndOfWindow.OccupiedCount,
			PaidCount:     r.EndOfWindow.PaidCount,
		},
		Rent:           r.Counters.AccumulatedRent.String(),
		AvgDailyRate:   r.AvgDailyRate.String(),
		AvgMonthlyRate: r.AvgMonthlyRate.String(),
		SkippedRecords: r.SkippedRecords,
	}
	for _, day := range r.Daily {
		dto.Daily = append(dto.Daily, DayBreakdownDTO{
			Date:          day.Date.String(),
			OccupiedRooms: day.OccupiedRooms,
			PaidRooms:     day.PaidRooms,
			DailyRent:     day.DailyRent.String(),
		})
	}
	return dto
}
