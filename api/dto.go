/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the engine and report types from the external API contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

FORMATTING:
  Money crosses the wire as 2-decimal-place strings (report.FormatAmount)
  so the frontend never re-rounds. Day counts stay integers.

SEE ALSO:
  - handlers.go: Uses these types
  - schedule/transform.go: The inbound payload shape
*/
package api

import (
	"github.com/lonelydev/caloohpay/report"
	"github.com/lonelydev/caloohpay/schedule"
)

// =============================================================================
// REQUEST TYPES
// =============================================================================

// ReportRequest is the body of POST /api/reports. The caller supplies the
// schedule entries it already fetched; this service never calls PagerDuty
// itself. Rates are optional - when absent, the stored settings apply.
type ReportRequest struct {
	Schedules []schedule.Schedule `json:"schedules"`
	Rates     *RatesDTO           `json:"rates,omitempty"`
}

// RatesDTO is a rate configuration on the wire.
type RatesDTO struct {
	WeekdayRate float64 `json:"weekday_rate"`
	WeekendRate float64 `json:"weekend_rate"`
}

// UpdateSettingsRequest is the body of PUT /api/settings.
type UpdateSettingsRequest struct {
	WeekdayRate float64 `json:"weekday_rate"`
	WeekendRate float64 `json:"weekend_rate"`
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// SettingsDTO is the rate configuration returned to clients.
type SettingsDTO struct {
	WeekdayRate float64 `json:"weekday_rate"`
	WeekendRate float64 `json:"weekend_rate"`
	UpdatedAt   string  `json:"updated_at,omitempty"`
}

// RowDTO is one owner's line in a report response.
type RowDTO struct {
	UserID       string  `json:"user_id"`
	UserName     string  `json:"user_name"`
	WeekdayDays  int     `json:"weekday_ooh_days"`
	WeekendDays  int     `json:"weekend_ooh_days"`
	TotalHours   float64 `json:"total_hours"`
	Compensation string  `json:"total_compensation"`
}

// SkippedDTO reports an entry that was filtered out of a report.
type SkippedDTO struct {
	ScheduleID string `json:"schedule_id"`
	Index      int    `json:"index"`
	Reason     string `json:"reason"`
}

// ReportDTO is the response of POST /api/reports.
type ReportDTO struct {
	Rows         []RowDTO     `json:"rows"`
	TotalOohDays int          `json:"total_ooh_days"`
	GrandTotal   string       `json:"grand_total"`
	Rates        RatesDTO     `json:"rates"`
	Skipped      []SkippedDTO `json:"skipped_entries,omitempty"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// =============================================================================
// CONVERSIONS
// =============================================================================

func toReportDTO(r *report.Report, rates RatesDTO, skipped map[string][]schedule.Skipped) ReportDTO {
	dto := ReportDTO{
		Rows:         make([]RowDTO, len(r.Rows)),
		TotalOohDays: r.TotalOohDays,
		GrandTotal:   report.FormatAmount(r.GrandTotal),
		Rates:        rates,
	}
	for i, row := range r.Rows {
		dto.Rows[i] = RowDTO{
			UserID:       row.UserID,
			UserName:     row.UserName,
			WeekdayDays:  row.WeekdayDays,
			WeekendDays:  row.WeekendDays,
			TotalHours:   row.TotalHours,
			Compensation: report.FormatAmount(row.Compensation),
		}
	}
	for schedID, skips := range skipped {
		for _, s := range skips {
			dto.Skipped = append(dto.Skipped, SkippedDTO{
				ScheduleID: schedID,
				Index:      s.Index,
				Reason:     s.Reason,
			})
		}
	}
	return dto
}
