/*
samples.go - Canned demo payloads

PURPOSE:
  Gives the frontend (and anyone poking the API with curl) ready-made
  report request bodies to replay, without needing a PagerDuty export at
  hand. The entries exercise the interesting policy cases: a plain
  weekday night, a Friday handover, a full weekend rotation, and a
  daytime stand-in that pays nothing.
*/
package api

import (
	"net/http"

	"github.com/lonelydev/caloohpay/schedule"
)

// Sample is a named, replayable report request.
type Sample struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Request     ReportRequest `json:"request"`
}

// ListSamples returns the demo payloads.
// GET /api/samples
func (h *Handler) ListSamples(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, samples())
}

func samples() []Sample {
	return []Sample{
		{
			ID:          "single-rota",
			Name:        "Single rota, one week",
			Description: "Two engineers alternating weekday nights plus a weekend shift.",
			Request: ReportRequest{
				Schedules: []schedule.Schedule{{
					ID:       "PDEMO1",
					Name:     "Platform Primary",
					Timezone: "Europe/London",
					Entries: []schedule.RawEntry{
						{Start: "2024-09-02T17:30:00+01:00", End: "2024-09-03T09:00:00+01:00", UserID: "PUSR1", UserName: "Asha Nair"},
						{Start: "2024-09-03T17:30:00+01:00", End: "2024-09-04T09:00:00+01:00", UserID: "PUSR2", UserName: "Tom Whitfield"},
						{Start: "2024-09-04T17:30:00+01:00", End: "2024-09-05T09:00:00+01:00", UserID: "PUSR1", UserName: "Asha Nair"},
						{Start: "2024-09-05T17:30:00+01:00", End: "2024-09-09T09:00:00+01:00", UserID: "PUSR2", UserName: "Tom Whitfield"},
					},
				}},
			},
		},
		{
			ID:          "multi-schedule",
			Name:        "Two rotas, mixed outcomes",
			Description: "A second rota in another timezone, including a daytime stand-in that earns nothing.",
			Request: ReportRequest{
				Schedules: []schedule.Schedule{
					{
						ID:       "PDEMO1",
						Name:     "Platform Primary",
						Timezone: "Europe/London",
						Entries: []schedule.RawEntry{
							{Start: "2024-09-06T17:30:00+01:00", End: "2024-09-07T09:00:00+01:00", UserID: "PUSR1", UserName: "Asha Nair"},
						},
					},
					{
						ID:       "PDEMO2",
						Name:     "Data Platform Secondary",
						Timezone: "America/New_York",
						Entries: []schedule.RawEntry{
							{Start: "2024-09-02T17:30:00-04:00", End: "2024-09-03T09:00:00-04:00", UserID: "PUSR3", UserName: "Maria Keller"},
							{Start: "2024-09-03T09:00:00-04:00", End: "2024-09-03T17:00:00-04:00", UserID: "PUSR4", UserName: "Dev Patel"},
						},
					},
				},
			},
		},
	}
}
