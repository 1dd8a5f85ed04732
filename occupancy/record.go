/*
Package occupancy computes occupancy and rental-performance analytics over a
set of stay records whose validity spans overlap in time.

PURPOSE:
  Given a flat stream of stay/reservation records and a date window, produce a
  deduplicated day-by-day occupancy signal, paid/unpaid room-night totals,
  amortized rent accumulation, average daily/monthly rates, per-area
  efficiency, and a point-in-time end-of-window snapshot.

KEY CONCEPTS IN THIS FILE (record.go):
  - StayRecord: an immutable stay/reservation row from the record source
  - Status: the four-state lifecycle of a stay
  - StatusFilter: which statuses count as "occupying" for a query
  - RoomTypeConfig: externally supplied supply and floor area per room type

DESIGN PRINCIPLES:
  1. Immutability: the engine only ever reads records, never mutates them
  2. Precision: monthly rates and all derived ratios use decimal.Decimal
  3. Determinism: the whole pipeline is a pure function of its inputs

THE HARD PART:
  Source data may contain multiple overlapping or duplicate records for the
  same room on the same day (cancelled rebookings, re-entries, migration
  artifacts). Resolution to exactly one occupant per room per day lives in
  resolver.go; everything downstream assumes that invariant holds.

SEE ALSO:
  - resolver.go: one-winner-per-room-per-day resolution
  - aggregate.go: day-by-day window aggregation
  - metrics.go: derived rates and efficiency
*/
package occupancy

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// STATUS - Stay lifecycle state
// =============================================================================

type Status string

const (
	StatusInHouse    Status = "in_house"
	StatusReserved   Status = "reserved"
	StatusCheckedOut Status = "checked_out"
	StatusCancelled  Status = "cancelled"
)

// ParseStatus maps a status string to a Status, wrapping ErrUnknownStatus on
// anything outside the four known states.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusInHouse, StatusReserved, StatusCheckedOut, StatusCancelled:
		return Status(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

// StatusFilter is the set of statuses that count toward occupancy for a query.
type StatusFilter map[Status]struct{}

func NewStatusFilter(statuses ...Status) StatusFilter {
	f := make(StatusFilter, len(statuses))
	for _, s := range statuses {
		f[s] = struct{}{}
	}
	return f
}

// DefaultStatusFilter is the standard occupancy set: guests in house plus
// confirmed reservations. Checked-out and cancelled stays never occupy.
func DefaultStatusFilter() StatusFilter {
	return NewStatusFilter(StatusInHouse, StatusReserved)
}

func (f StatusFilter) Allows(s Status) bool {
	_, ok := f[s]
	return ok
}

// =============================================================================
// STAY RECORD - Immutable input row
// =============================================================================

// StayRecord is one stay/reservation row as produced by the record source.
// The interval is half-open: a guest arriving on the 1st and departing on the
// 4th occupies the nights of the 1st, 2nd and 3rd. A zero MonthlyRate means
// "no charge recorded", not a free-of-charge price of zero; paid/unpaid
// distinctions throughout the engine key off MonthlyRate > 0.
type StayRecord struct {
	RecordID    string
	RoomNumber  string
	RoomType    string
	Arrival     Date
	Departure   Date
	Status      Status
	MonthlyRate decimal.Decimal
	CreatedAt   time.Time // tie-breaking only, never aggregated
}

// Covers reports whether the record's half-open interval includes day:
// Arrival <= day < Departure.
func (r StayRecord) Covers(day Date) bool {
	return r.Arrival.BeforeOrEqual(day) && day.Before(r.Departure)
}

// Overlaps reports whether the record covers at least one day of the closed
// window. Used to pre-filter the candidate pool once per query.
func (r StayRecord) Overlaps(w Window) bool {
	return r.Arrival.BeforeOrEqual(w.End) && r.Departure.After(w.Start)
}

// HasRent reports whether this is a paid stay.
func (r StayRecord) HasRent() bool {
	return r.MonthlyRate.IsPositive()
}

// Complete reports whether the record carries every field resolution depends
// on. Incomplete records are a data-quality issue, not a query failure: they
// are dropped from the candidate pool and counted, and the query proceeds.
func (r StayRecord) Complete() bool {
	return r.RoomNumber != "" &&
		!r.Arrival.IsZero() &&
		!r.Departure.IsZero() &&
		r.Status != ""
}

// =============================================================================
// ROOM TYPE CONFIGURATION - External, supplied once per deployment
// =============================================================================

// RoomTypeConfig describes a room type's physical inventory. This comes from
// configuration, never from the records themselves.
type RoomTypeConfig struct {
	Code        string
	TotalSupply int
	AreaSqm     decimal.Decimal
}

// RoomTypeConfigMap maps room type codes to their configuration.
type RoomTypeConfigMap map[string]RoomTypeConfig

// Get returns the configuration for a code. A type absent from configuration
// defaults to zero supply and zero area; the metric guards handle the zero
// divisors, so an unknown type degrades to "fully vacant, no efficiency"
// rather than failing the query.
func (m RoomTypeConfigMap) Get(code string) RoomTypeConfig {
	if cfg, ok := m[code]; ok {
		return cfg
	}
	return RoomTypeConfig{Code: code}
}

// TotalSupply sums supply across all configured room types.
func (m RoomTypeConfigMap) TotalSupply() int {
	total := 0
	for _, cfg := range m {
		total += cfg.TotalSupply
	}
	return total
}
