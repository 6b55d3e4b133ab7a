/*
Package report renders compensation aggregates for display and export.

PURPOSE:
  The oncall engine hands back raw day counts and unrounded decimals;
  this package is the presentation collaborator that turns them into a
  multi-schedule report: per-owner rows, grand totals, 2-decimal-place
  currency strings, and CSV export for the payroll spreadsheet.

ROUNDING:
  All rounding happens here and only here. The engine keeps exact
  decimals; FormatAmount fixes them to 2 places at the edge.

CSV:
  Uses the standard library encoding/csv. One row per owner, matching
  the dashboard's export: id, name, day counts, hours, total.

SEE ALSO:
  - oncall/compensation.go: Where the numbers come from
  - api/handlers.go: The HTTP surface serving these reports
*/
package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/lonelydev/caloohpay/oncall"
)

// =============================================================================
// REPORT MODEL
// =============================================================================

// Row is one owner's line in the report.
type Row struct {
	UserID       string
	UserName     string
	WeekdayDays  int
	WeekendDays  int
	TotalHours   float64
	Compensation decimal.Decimal
}

// Report is the rendered multi-schedule compensation report.
type Report struct {
	Rows         []Row
	TotalOohDays int
	GrandTotal   decimal.Decimal
}

// Build aggregates entries under the given rates and lays the result out
// as report rows, one per owner, in first-seen order.
func Build(entries []oncall.Entry, rates oncall.RateConfig) *Report {
	agg := oncall.AggregateEntries(entries, rates)

	r := &Report{
		Rows:       make([]Row, 0, len(agg.Totals)),
		GrandTotal: agg.GrandTotal,
	}
	for _, total := range agg.Totals {
		r.Rows = append(r.Rows, Row{
			UserID:       total.Owner.ID,
			UserName:     total.Owner.Name,
			WeekdayDays:  total.WeekdayDays,
			WeekendDays:  total.WeekendDays,
			TotalHours:   total.TotalHours,
			Compensation: total.Compensation,
		})
		r.TotalOohDays += total.WeekdayDays + total.WeekendDays
	}
	return r
}

// =============================================================================
// FORMATTING
// =============================================================================

// FormatAmount renders a currency amount with exactly two decimal places.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// FormatHours renders the informational hours metric with one decimal.
func FormatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', 1, 64)
}

// =============================================================================
// CSV EXPORT
// =============================================================================

var csvHeader = []string{
	"user_id", "user_name",
	"weekday_ooh_days", "weekend_ooh_days",
	"total_hours", "total_compensation",
}

// WriteCSV writes the report as CSV, one row per owner plus a header.
func (r *Report) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, row := range r.Rows {
		record := []string{
			row.UserID,
			row.UserName,
			strconv.Itoa(row.WeekdayDays),
			strconv.Itoa(row.WeekendDays),
			FormatHours(row.TotalHours),
			FormatAmount(row.Compensation),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
