/*
Package oncall computes out-of-hours (OOH) compensation for on-call shifts.

PURPOSE:
  This package contains the payments engine: given on-call intervals and a
  pair of day rates, it decides which calendar days of each interval count
  as paid out-of-hours days and what they are worth.

KEY CONCEPTS IN THIS FILE (types.go):
  - Owner: The person an on-call interval is attributed to
  - RateConfig: Currency-per-day rates for weekday and weekend OOH days
  - Entry: One on-call period together with its owner

DESIGN PRINCIPLES:
  1. Purity: No I/O, no globals, no state; rates are injected explicitly
  2. Precision: Uses decimal.Decimal to avoid floating-point money errors
  3. Fail fast: A bad timezone or inverted interval is rejected at
     construction, never papered over

THE QUALIFICATION RULE (implemented in period.go):
  A calendar day within an on-call interval is a paid OOH day when the
  interval extends past that day's 17:30 end-of-work cutoff AND covers at
  least 6 hours of the day. Friday, Saturday and Sunday pay the weekend
  rate; Monday through Thursday pay the weekday rate.

SEE ALSO:
  - period.go: Day-by-day qualification scan
  - compensation.go: Rates applied to day counts, per-owner aggregation
  - errors.go: Error taxonomy
*/
package oncall

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// OWNER - Opaque attribution, carried through untouched
// =============================================================================

// Owner identifies the person an on-call interval belongs to. The engine
// never interprets it; it only groups by ID.
type Owner struct {
	ID   string
	Name string
}

// =============================================================================
// RATE CONFIG - Injected, never read from ambient state
// =============================================================================

// RateConfig holds the currency-per-day rates.
//
// The surrounding settings layer bounds these to [25, 200]; the engine
// accepts any finite non-negative rate without re-validating.
type RateConfig struct {
	WeekdayRate decimal.Decimal
	WeekendRate decimal.Decimal
}

// NewRateConfig builds a RateConfig from plain numbers.
func NewRateConfig(weekday, weekend float64) RateConfig {
	return RateConfig{
		WeekdayRate: decimal.NewFromFloat(weekday),
		WeekendRate: decimal.NewFromFloat(weekend),
	}
}

// DefaultRates are the rates used when the caller has not configured any.
func DefaultRates() RateConfig {
	return NewRateConfig(50, 75)
}

// =============================================================================
// ENTRY - One period attributed to one owner
// =============================================================================

// Entry pairs an on-call period with its owner, ready for aggregation.
type Entry struct {
	Owner  Owner
	Period *OnCallPeriod
}
