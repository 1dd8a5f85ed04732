package occupancy

import (
	"fmt"
	"time"
)

// =============================================================================
// DATE - Calendar day, UTC-normalized
// =============================================================================

// Date is a calendar day. All occupancy math is day-granular: a stay either
// covers a day or it doesn't, so hours and time zones are normalized away at
// construction.
type Date struct {
	t time.Time
}

const dateLayout = "2006-01-02"

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a "YYYY-MM-DD" string. Failures wrap ErrBadDate so callers
// can classify them as validation errors with errors.Is.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrBadDate, s)
	}
	return Date{t: t.UTC()}, nil
}

func DateOf(t time.Time) Date {
	u := t.UTC()
	return NewDate(u.Year(), u.Month(), u.Day())
}

// Comparison
func (d Date) Before(other Date) bool        { return d.t.Before(other.t) }
func (d Date) After(other Date) bool         { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool         { return d.t.Equal(other.t) }
func (d Date) BeforeOrEqual(other Date) bool { return !d.t.After(other.t) }
func (d Date) AfterOrEqual(other Date) bool  { return !d.t.Before(other.t) }

// Arithmetic and properties
func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }
func (d Date) IsZero() bool       { return d.t.IsZero() }
func (d Date) Time() time.Time    { return d.t }
func (d Date) String() string     { return d.t.Format(dateLayout) }

// DaysBetween returns the number of whole days from one date to another.
func DaysBetween(from, to Date) int {
	return int(to.t.Sub(from.t).Hours() / 24)
}

// =============================================================================
// WINDOW - Closed query range [Start, End]
// =============================================================================

// Window is the date range of one query. Day iteration is inclusive on both
// ends. This is deliberately distinct from the half-open [Arrival, Departure)
// interval of a stay record: the window says which days we report on, the
// record interval says which nights a guest is present.
type Window struct {
	Start Date
	End   Date
}

// NewWindow validates Start <= End. A reversed range is a caller error and is
// rejected before any aggregation happens.
func NewWindow(start, end Date) (Window, error) {
	if start.After(end) {
		return Window{}, &WindowError{Start: start.String(), End: end.String()}
	}
	return Window{Start: start, End: end}, nil
}

// ParseWindow builds a validated Window from two "YYYY-MM-DD" strings.
func ParseWindow(start, end string) (Window, error) {
	s, err := ParseDate(start)
	if err != nil {
		return Window{}, err
	}
	e, err := ParseDate(end)
	if err != nil {
		return Window{}, err
	}
	return NewWindow(s, e)
}

// NumDays returns the number of days in the window, inclusive.
func (w Window) NumDays() int {
	return DaysBetween(w.Start, w.End) + 1
}

// Days returns every day of the window in order.
func (w Window) Days() []Date {
	days := make([]Date, 0, w.NumDays())
	for d := w.Start; d.BeforeOrEqual(w.End); d = d.AddDays(1) {
		days = append(days, d)
	}
	return days
}

func (w Window) Contains(d Date) bool {
	return d.AfterOrEqual(w.Start) && d.BeforeOrEqual(w.End)
}

func (w Window) String() string {
	return "[" + w.Start.String() + ", " + w.End.String() + "]"
}
