/*
errors.go - Centralized error types for the oncall engine

PURPOSE:
  All engine errors in one place. Collaborator packages wrap these with
  additional context (schedule id, entry index).

ERROR CATEGORIES:
  1. Construction errors - Bad timezone, inverted interval
  2. Classification helpers - IsClientError for HTTP mapping

USAGE:
  Callers branch with errors.Is():

    if errors.Is(err, oncall.ErrInvalidTimezone) {
        // surface a configuration error, do not fall back to UTC
    }
*/
package oncall

import (
	"errors"
	"fmt"
	"time"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidTimezone is returned when a timezone identifier cannot be
	// resolved. The engine never silently substitutes UTC.
	ErrInvalidTimezone = errors.New("invalid timezone identifier")

	// ErrInvalidInterval is returned when an interval does not satisfy
	// until > since.
	ErrInvalidInterval = errors.New("invalid interval: until must be after since")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// TimezoneError reports an unresolvable IANA timezone identifier.
type TimezoneError struct {
	Zone string
	Err  error
}

func (e *TimezoneError) Error() string {
	return fmt.Sprintf("cannot resolve timezone %q: %v", e.Zone, e.Err)
}

func (e *TimezoneError) Unwrap() error { return ErrInvalidTimezone }

// IntervalError reports an interval whose end does not follow its start.
type IntervalError struct {
	Since time.Time
	Until time.Time
}

func (e *IntervalError) Error() string {
	return fmt.Sprintf("interval end %s is not after start %s",
		e.Until.Format(time.RFC3339), e.Since.Format(time.RFC3339))
}

func (e *IntervalError) Unwrap() error { return ErrInvalidInterval }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid caller input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidTimezone) ||
		errors.Is(err, ErrInvalidInterval)
}
