/*
compensation.go - Rates applied to day counts, per-owner aggregation

PURPOSE:
  Turns OnCallPeriod day counts into money. This is deliberately trivial
  arithmetic kept in one place so the detail view, the multi-schedule
  report and any analytics all agree on what a rota is worth.

THE FORMULA:
  total = weekdayDays * weekdayRate + weekendDays * weekendRate

  No rounding happens here. Presentation code formats for display
  (typically 2 decimal places).

AGGREGATION:
  Aggregate groups entries by owner id, sums day counts and compensation
  per owner, and separately sums elapsed wall-clock hours per entry. The
  hours figure is informational only. Owners keep first-seen order so a
  report renders in schedule order.

SEE ALSO:
  - period.go: Where the day counts come from
  - types.go: RateConfig, Entry, Owner
*/
package oncall

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// PER-PERIOD COMPENSATION
// =============================================================================

// Compensation returns what a single period is worth under the given
// rates. Pure function; no rounding.
func Compensation(p *OnCallPeriod, rates RateConfig) decimal.Decimal {
	weekday := rates.WeekdayRate.Mul(decimal.NewFromInt(int64(p.WeekdayDays())))
	weekend := rates.WeekendRate.Mul(decimal.NewFromInt(int64(p.WeekendDays())))
	return weekday.Add(weekend)
}

// =============================================================================
// PER-OWNER AGGREGATION
// =============================================================================

// OwnerTotal is the summed result of all of one owner's entries.
type OwnerTotal struct {
	Owner        Owner
	WeekdayDays  int
	WeekendDays  int
	TotalHours   float64
	Compensation decimal.Decimal
}

// Aggregate sums entries per owner and across all owners.
type Aggregate struct {
	// Totals holds one row per owner, in first-seen entry order.
	Totals []OwnerTotal

	// GrandTotal is the sum of every owner's compensation.
	GrandTotal decimal.Decimal
}

// AggregateEntries groups entries by owner id and sums day counts,
// compensation and elapsed hours. An empty input yields an empty
// aggregate with a zero grand total, not an error.
func AggregateEntries(entries []Entry, rates RateConfig) Aggregate {
	agg := Aggregate{GrandTotal: decimal.Zero}
	index := make(map[string]int)

	for _, e := range entries {
		if e.Period == nil {
			continue
		}

		i, seen := index[e.Owner.ID]
		if !seen {
			i = len(agg.Totals)
			index[e.Owner.ID] = i
			agg.Totals = append(agg.Totals, OwnerTotal{
				Owner:        e.Owner,
				Compensation: decimal.Zero,
			})
		}

		pay := Compensation(e.Period, rates)
		row := &agg.Totals[i]
		row.WeekdayDays += e.Period.WeekdayDays()
		row.WeekendDays += e.Period.WeekendDays()
		row.TotalHours += e.Period.Hours()
		row.Compensation = row.Compensation.Add(pay)

		agg.GrandTotal = agg.GrandTotal.Add(pay)
	}

	return agg
}
