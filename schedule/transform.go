/*
Package schedule transforms raw on-call schedule payloads into engine input.

PURPOSE:
  Sits between the data source (the dashboard frontend posts the schedule
  entries it fetched from PagerDuty) and the oncall engine. The engine
  assumes well-formed instants; this package is where malformed input is
  filtered out.

FILTERING POLICY:
  A single bad entry never aborts the batch. Unparseable timestamps and
  inverted intervals are skipped and reported so the caller can surface
  them. An unresolvable schedule timezone IS fatal for that schedule: the
  zone applies to every entry, so nothing downstream would be meaningful.

WIRE SHAPE:
  Entries arrive as ISO-8601 instants with a user attached; the schedule
  carries one IANA timezone applied to all its entries.

SEE ALSO:
  - oncall/period.go: What happens to the entries that survive
  - api/dto.go: The JSON layer feeding this package
*/
package schedule

import (
	"errors"
	"fmt"
	"time"

	"github.com/lonelydev/caloohpay/oncall"
)

// =============================================================================
// RAW INPUT TYPES
// =============================================================================

// RawEntry is one schedule entry as delivered by the data source.
type RawEntry struct {
	Start    string `json:"start"`
	End      string `json:"end"`
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
}

// Schedule is a set of entries sharing one timezone.
type Schedule struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Timezone string     `json:"timezone"`
	Entries  []RawEntry `json:"entries"`
}

// Skipped records an entry that was filtered out and why.
type Skipped struct {
	Index  int
	Entry  RawEntry
	Reason string
}

// =============================================================================
// TRANSFORMATION
// =============================================================================

// Transform parses a schedule's entries into oncall entries, skipping the
// ones that cannot be used. Entry order is preserved so first-seen owner
// order survives into reports.
//
// Returns an error only for schedule-level problems (an unresolvable
// timezone); per-entry problems land in the skipped list.
func Transform(s Schedule) ([]oncall.Entry, []Skipped, error) {
	entries := make([]oncall.Entry, 0, len(s.Entries))
	var skipped []Skipped

	for i, raw := range s.Entries {
		since, err := time.Parse(time.RFC3339, raw.Start)
		if err != nil {
			skipped = append(skipped, Skipped{Index: i, Entry: raw,
				Reason: fmt.Sprintf("unparseable start %q", raw.Start)})
			continue
		}
		until, err := time.Parse(time.RFC3339, raw.End)
		if err != nil {
			skipped = append(skipped, Skipped{Index: i, Entry: raw,
				Reason: fmt.Sprintf("unparseable end %q", raw.End)})
			continue
		}

		period, err := oncall.NewPeriod(since, until, s.Timezone)
		if err != nil {
			// The timezone is shared by every entry; if it cannot be
			// resolved the whole schedule is misconfigured.
			if errors.Is(err, oncall.ErrInvalidTimezone) {
				return nil, nil, fmt.Errorf("schedule %s: %w", s.ID, err)
			}
			skipped = append(skipped, Skipped{Index: i, Entry: raw, Reason: err.Error()})
			continue
		}

		entries = append(entries, oncall.Entry{
			Owner:  oncall.Owner{ID: raw.UserID, Name: raw.UserName},
			Period: period,
		})
	}

	return entries, skipped, nil
}

// TransformAll flattens several schedules into one entry list for a
// multi-schedule report. Skip reports keep their schedule association via
// the returned map keyed by schedule id.
func TransformAll(schedules []Schedule) ([]oncall.Entry, map[string][]Skipped, error) {
	var all []oncall.Entry
	skippedBySchedule := make(map[string][]Skipped)

	for _, s := range schedules {
		entries, skipped, err := Transform(s)
		if err != nil {
			return nil, nil, err
		}
		all = append(all, entries...)
		if len(skipped) > 0 {
			skippedBySchedule[s.ID] = skipped
		}
	}

	return all, skippedBySchedule, nil
}
