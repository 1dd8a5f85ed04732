/*
errors.go - Centralized error types for the occupancy engine

PURPOSE:
  All engine error types in one place. The taxonomy is small on purpose:

  1. Validation errors - bad dates or a reversed window. These abort the
     query before any aggregation runs.
  2. Data-integrity exclusions - records missing required fields. These are
     NOT errors: the record is dropped from the candidate pool, the query
     continues, and the drop count is surfaced on the report.
  3. Empty results - a window or room type with no qualifying records yields
     all-zero metrics and nil booking refs. Normal outcome, never an error.

USAGE:
  if occupancy.IsValidationError(err) {
      // respond 400, nothing was computed
  }

SEE ALSO:
  - date.go: ParseDate/NewWindow produce these errors
  - engine.go: the only other place errors originate
*/
package occupancy

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrBadDate is returned when a date string does not parse as YYYY-MM-DD.
	ErrBadDate = errors.New("invalid date")

	// ErrInvalidWindow is returned when a query window ends before it starts.
	ErrInvalidWindow = errors.New("invalid window: end before start")

	// ErrUnknownStatus is returned when a status string is not one of the
	// four known stay statuses.
	ErrUnknownStatus = errors.New("unknown stay status")
)

// =============================================================================
// STRUCTURED ERRORS
// =============================================================================

// WindowError carries the offending range of a reversed window.
type WindowError struct {
	Start string
	End   string
}

func (e *WindowError) Error() string {
	return fmt.Sprintf("invalid window: start %s is after end %s", e.Start, e.End)
}

func (e *WindowError) Unwrap() error {
	return ErrInvalidWindow
}

// IsValidationError reports whether err is a caller-input problem, as opposed
// to an internal failure. Validation errors mean no aggregation was performed.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrBadDate) ||
		errors.Is(err, ErrInvalidWindow) ||
		errors.Is(err, ErrUnknownStatus)
}
