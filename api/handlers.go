/*
handlers.go - HTTP API handlers for the OOH compensation dashboard backend

PURPOSE:
  Exposes the compensation engine via REST API. Handles HTTP
  request/response, JSON serialization, and delegates to the engine and
  its collaborators.

ENDPOINTS:
  Reports:
    POST   /api/reports        Compute a multi-schedule compensation report
    POST   /api/reports/csv    Same input, CSV export

  Settings:
    GET    /api/settings           Current rate configuration
    PUT    /api/settings           Update rates (bounded to [25, 200])
    GET    /api/settings/history   Past configurations (sqlite store only)

  Samples:
    GET    /api/samples        Canned demo payloads for the frontend

REQUEST FLOW:
  1. Parse HTTP request
  2. Transform schedule payloads (bad entries skipped, reported back)
  3. Aggregate with the oncall engine
  4. Serialize response

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Bad payloads, invalid timezone, rates out of range
  - 404: Capability not available on the configured store
  - 500: Store failures

SECURITY NOTE:
  No authentication. The service holds no credentials: callers POST the
  schedule data they already fetched, and this backend never talks to
  PagerDuty itself.

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/lonelydev/caloohpay/oncall"
	"github.com/lonelydev/caloohpay/report"
	"github.com/lonelydev/caloohpay/schedule"
	"github.com/lonelydev/caloohpay/settings"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Settings settings.Store
}

// NewHandler creates a new handler backed by the given settings store.
func NewHandler(store settings.Store) *Handler {
	return &Handler{Settings: store}
}

// historyStore is the optional capability of stores that keep past
// configurations (the sqlite store does, the memory store does not).
type historyStore interface {
	History(ctx context.Context, limit int) ([]settings.RateSettings, error)
}

// =============================================================================
// REPORT HANDLERS
// =============================================================================

// CreateReport computes a compensation report from posted schedules.
// POST /api/reports
func (h *Handler) CreateReport(w http.ResponseWriter, r *http.Request) {
	rep, rates, skipped, ok := h.buildReport(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toReportDTO(rep, rates, skipped))
}

// ExportReportCSV computes the same report and streams it as CSV.
// POST /api/reports/csv
func (h *Handler) ExportReportCSV(w http.ResponseWriter, r *http.Request) {
	rep, _, _, ok := h.buildReport(w, r)
	if !ok {
		return
	}

	// Render fully before writing headers so a CSV failure can still
	// produce a clean error response.
	var buf bytes.Buffer
	if err := rep.WriteCSV(&buf); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to render CSV", err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="ooh-compensation.csv"`)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// buildReport does the shared work of both report endpoints. On failure
// it has already written the error response and returns ok=false.
func (h *Handler) buildReport(w http.ResponseWriter, r *http.Request) (*report.Report, RatesDTO, map[string][]schedule.Skipped, bool) {
	var req ReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return nil, RatesDTO{}, nil, false
	}
	if len(req.Schedules) == 0 {
		writeError(w, http.StatusBadRequest, "At least one schedule is required", nil)
		return nil, RatesDTO{}, nil, false
	}

	rates, err := h.resolveRates(r.Context(), req.Rates)
	if err != nil {
		if settings.IsRateError(err) {
			writeError(w, http.StatusBadRequest, "Rates outside allowed range", err)
		} else {
			writeError(w, http.StatusInternalServerError, "Failed to load rate settings", err)
		}
		return nil, RatesDTO{}, nil, false
	}

	entries, skipped, err := schedule.TransformAll(req.Schedules)
	if err != nil {
		status := http.StatusInternalServerError
		if oncall.IsClientError(err) {
			status = http.StatusBadRequest
		}
		writeError(w, status, "Failed to process schedules", err)
		return nil, RatesDTO{}, nil, false
	}

	rep := report.Build(entries, oncall.NewRateConfig(rates.WeekdayRate, rates.WeekendRate))
	return rep, rates, skipped, true
}

// resolveRates applies a request override when present, otherwise the
// stored settings. Overrides go through the same bounds check the
// settings form enforces.
func (h *Handler) resolveRates(ctx context.Context, override *RatesDTO) (RatesDTO, error) {
	if override != nil {
		rs := settings.RateSettings{
			WeekdayRate: override.WeekdayRate,
			WeekendRate: override.WeekendRate,
		}
		if err := rs.Validate(); err != nil {
			return RatesDTO{}, err
		}
		return *override, nil
	}

	stored, err := h.Settings.Get(ctx)
	if err != nil {
		return RatesDTO{}, err
	}
	return RatesDTO{WeekdayRate: stored.WeekdayRate, WeekendRate: stored.WeekendRate}, nil
}

// =============================================================================
// SETTINGS HANDLERS
// =============================================================================

// GetSettings returns the current rate configuration.
// GET /api/settings
func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	rs, err := h.Settings.Get(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load settings", err)
		return
	}
	writeJSON(w, http.StatusOK, toSettingsDTO(rs))
}

// UpdateSettings replaces the rate configuration.
// PUT /api/settings
func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	rs := settings.RateSettings{
		WeekdayRate: req.WeekdayRate,
		WeekendRate: req.WeekendRate,
	}
	if err := h.Settings.Save(r.Context(), rs); err != nil {
		if settings.IsRateError(err) {
			writeError(w, http.StatusBadRequest, "Rates outside allowed range", err)
		} else {
			writeError(w, http.StatusInternalServerError, "Failed to save settings", err)
		}
		return
	}

	saved, err := h.Settings.Get(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to reload settings", err)
		return
	}
	writeJSON(w, http.StatusOK, toSettingsDTO(saved))
}

// GetSettingsHistory returns past rate configurations when the store
// supports it.
// GET /api/settings/history
func (h *Handler) GetSettingsHistory(w http.ResponseWriter, r *http.Request) {
	hs, ok := h.Settings.(historyStore)
	if !ok {
		writeError(w, http.StatusNotFound, "Settings history not available on this store", nil)
		return
	}

	history, err := hs.History(r.Context(), 50)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load settings history", err)
		return
	}

	dtos := make([]SettingsDTO, len(history))
	for i, rs := range history {
		dtos[i] = toSettingsDTO(rs)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// =============================================================================
// HELPERS
// =============================================================================

func toSettingsDTO(rs settings.RateSettings) SettingsDTO {
	dto := SettingsDTO{
		WeekdayRate: rs.WeekdayRate,
		WeekendRate: rs.WeekendRate,
	}
	if !rs.UpdatedAt.IsZero() {
		dto.UpdatedAt = rs.UpdatedAt.Format("2006-01-02T15:04:05Z07:00")
	}
	return dto
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
