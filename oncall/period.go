package oncall

import (
	"time"
)

// =============================================================================
// ON-CALL PERIOD - The day-qualification engine
// =============================================================================

// Office hours end at 17:30 local time. A day only pays when the shift
// extends past this cutoff.
const (
	endOfWorkHour   = 17
	endOfWorkMinute = 30
)

// minimumOohHours is the floor below which a day's on-call coverage does
// not pay. A short daytime stand-in (covering a colleague for an
// afternoon) must not trigger a payment.
const minimumOohHours = 6.0

// OnCallPeriod is one on-call interval [since, until) localized to an
// IANA timezone. The qualifying-day counts are computed once at
// construction; the value is immutable afterwards.
type OnCallPeriod struct {
	since time.Time
	until time.Time
	zone  string
	loc   *time.Location

	weekdayDays int
	weekendDays int
}

// NewPeriod builds an OnCallPeriod and computes its qualifying OOH days.
//
// An empty zone means UTC. An unresolvable zone or an interval with
// until <= since is rejected; the engine never falls back to UTC on a bad
// identifier because that would silently shift every day boundary.
func NewPeriod(since, until time.Time, zone string) (*OnCallPeriod, error) {
	if zone == "" {
		zone = "UTC"
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, &TimezoneError{Zone: zone, Err: err}
	}
	if !until.After(since) {
		return nil, &IntervalError{Since: since, Until: until}
	}

	p := &OnCallPeriod{
		since: since.In(loc),
		until: until.In(loc),
		zone:  zone,
		loc:   loc,
	}
	p.countOohDays()
	return p, nil
}

// countOohDays walks the localized calendar days touched by the interval
// and buckets each qualifying day by weekday.
//
// A day qualifies when both hold:
//   - the period extends past that day's 17:30 end-of-work cutoff
//   - the period covers at least 6 hours of that day
//
// Day boundaries are wall-clock boundaries in the period's timezone, so a
// 23 or 25 hour day around a DST transition is still one calendar day.
func (p *OnCallPeriod) countOohDays() {
	day := startOfDay(p.since)

	for !day.After(p.until) {
		nextDay := day.AddDate(0, 0, 1)

		shiftStart := laterOf(day, p.since)
		shiftEnd := earlierOf(nextDay, p.until)

		cutoff := time.Date(day.Year(), day.Month(), day.Day(),
			endOfWorkHour, endOfWorkMinute, 0, 0, p.loc)

		if shiftEnd.After(cutoff) && shiftEnd.Sub(shiftStart).Hours() >= minimumOohHours {
			if isWeekendRate(day.Weekday()) {
				p.weekendDays++
			} else {
				p.weekdayDays++
			}
		}

		day = nextDay
	}
}

// WeekdayDays returns the number of qualifying OOH days falling on
// Monday through Thursday.
func (p *OnCallPeriod) WeekdayDays() int { return p.weekdayDays }

// WeekendDays returns the number of qualifying OOH days falling on
// Friday, Saturday or Sunday.
func (p *OnCallPeriod) WeekendDays() int { return p.weekendDays }

// OohDays returns the total number of qualifying OOH days.
func (p *OnCallPeriod) OohDays() int { return p.weekdayDays + p.weekendDays }

// Since returns the localized start of the interval.
func (p *OnCallPeriod) Since() time.Time { return p.since }

// Until returns the localized end of the interval.
func (p *OnCallPeriod) Until() time.Time { return p.until }

// Zone returns the IANA timezone identifier the period was built with.
func (p *OnCallPeriod) Zone() string { return p.zone }

// Hours returns the elapsed wall-clock duration of the whole interval in
// hours. This is an informational metric shown alongside pay; it is not
// used in the pay formula.
func (p *OnCallPeriod) Hours() float64 { return p.until.Sub(p.since).Hours() }

func (p *OnCallPeriod) String() string {
	return "[" + p.since.Format(time.RFC3339) + ", " + p.until.Format(time.RFC3339) + ")"
}

// =============================================================================
// DAY HELPERS
// =============================================================================

// isWeekendRate reports whether a qualifying day on this weekday pays the
// weekend rate. Friday counts as weekend: the Friday evening handover is
// part of the weekend's OOH burden.
func isWeekendRate(d time.Weekday) bool {
	return d == time.Friday || d == time.Saturday || d == time.Sunday
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func laterOf(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func earlierOf(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
