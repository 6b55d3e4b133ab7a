package oncall_test

import (
	"errors"
	"testing"
	"time"

	"github.com/lonelydev/caloohpay/oncall"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

const london = "Europe/London"

func mustPeriod(t *testing.T, since, until time.Time, zone string) *oncall.OnCallPeriod {
	t.Helper()
	p, err := oncall.NewPeriod(since, until, zone)
	require.NoError(t, err)
	return p
}

func inZone(t *testing.T, zone string, year int, month time.Month, day, hour, min int) time.Time {
	t.Helper()
	loc, err := time.LoadLocation(zone)
	require.NoError(t, err)
	return time.Date(year, month, day, hour, min, 0, 0, loc)
}

// =============================================================================
// QUALIFICATION SCENARIOS
// =============================================================================

func TestPeriod_WeekdayNight_OneWeekdayDay(t *testing.T) {
	// GIVEN: Monday 17:30 -> Tuesday 09:00 (15.5h)
	// THEN: Monday qualifies as one weekday OOH day; Tuesday's morning
	//       tail ends before Tuesday's cutoff and does not qualify
	p := mustPeriod(t,
		inZone(t, london, 2024, time.September, 2, 17, 30),
		inZone(t, london, 2024, time.September, 3, 9, 0),
		london)

	assert.Equal(t, 1, p.WeekdayDays())
	assert.Equal(t, 0, p.WeekendDays())
	assert.InDelta(t, 15.5, p.Hours(), 0.001)
}

func TestPeriod_FridayNight_CountsAsWeekend(t *testing.T) {
	// GIVEN: Friday 17:30 -> Saturday 09:00
	// THEN: Friday qualifies and pays the weekend rate (Friday evening
	//       handover is part of the weekend burden)
	p := mustPeriod(t,
		inZone(t, london, 2024, time.September, 6, 17, 30),
		inZone(t, london, 2024, time.September, 7, 9, 0),
		london)

	assert.Equal(t, 0, p.WeekdayDays())
	assert.Equal(t, 1, p.WeekendDays())
}

func TestPeriod_ThursdayToMonday_FourNights(t *testing.T) {
	// GIVEN: Thursday 17:30 -> Monday 09:00
	// THEN: Thu counts as weekday; Fri, Sat, Sun as weekend; the Monday
	//       tail does not qualify
	p := mustPeriod(t,
		inZone(t, london, 2024, time.September, 5, 17, 30),
		inZone(t, london, 2024, time.September, 9, 9, 0),
		london)

	assert.Equal(t, 1, p.WeekdayDays())
	assert.Equal(t, 3, p.WeekendDays())
}

func TestPeriod_OfficeHoursOnly_DoesNotQualify(t *testing.T) {
	// GIVEN: Monday 09:00 -> 17:00, entirely within office hours
	p := mustPeriod(t,
		inZone(t, london, 2024, time.September, 2, 9, 0),
		inZone(t, london, 2024, time.September, 2, 17, 0),
		london)

	assert.Equal(t, 0, p.WeekdayDays())
	assert.Equal(t, 0, p.WeekendDays())
}

func TestPeriod_EndingExactlyAtCutoff_DoesNotQualify(t *testing.T) {
	// The cutoff comparison is strict: a shift must extend PAST 17:30.
	p := mustPeriod(t,
		inZone(t, london, 2024, time.September, 2, 9, 0),
		inZone(t, london, 2024, time.September, 2, 17, 30),
		london)

	assert.Equal(t, 0, p.OohDays())
}

func TestPeriod_SixHourFloor_BoundaryInclusive(t *testing.T) {
	// GIVEN: Monday 17:30 -> 23:30, exactly 6.0 hours past the cutoff
	p := mustPeriod(t,
		inZone(t, london, 2024, time.September, 2, 17, 30),
		inZone(t, london, 2024, time.September, 2, 23, 30),
		london)
	assert.Equal(t, 1, p.WeekdayDays(), "exactly 6 hours qualifies")

	// One second less does not.
	short := mustPeriod(t,
		inZone(t, london, 2024, time.September, 2, 17, 30),
		inZone(t, london, 2024, time.September, 2, 23, 30).Add(-time.Second),
		london)
	assert.Equal(t, 0, short.OohDays(), "5h59m59s fails the 6 hour floor")
}

func TestPeriod_LateEveningStart_TooShortToQualify(t *testing.T) {
	// GIVEN: Sunday 23:00 -> Monday 08:00
	// THEN: Sunday covers only 1h; Monday covers 8h but ends before
	//       Monday's cutoff; neither day qualifies
	p := mustPeriod(t,
		inZone(t, london, 2024, time.September, 8, 23, 0),
		inZone(t, london, 2024, time.September, 9, 8, 0),
		london)

	assert.Equal(t, 0, p.OohDays())
}

func TestPeriod_TwoFullWeeks_EveryDayEvaluated(t *testing.T) {
	// GIVEN: Monday 09:00 -> Monday+14d 09:00 (a two-week rotation)
	// THEN: Every full day qualifies; the final Monday morning does not.
	//       14 qualifying days split 8 weekday / 6 weekend
	p := mustPeriod(t,
		inZone(t, london, 2024, time.September, 2, 9, 0),
		inZone(t, london, 2024, time.September, 16, 9, 0),
		london)

	assert.Equal(t, 8, p.WeekdayDays())
	assert.Equal(t, 6, p.WeekendDays())
}

// =============================================================================
// TIMEZONE BEHAVIOR
// =============================================================================

func TestPeriod_SameInstants_DifferentZone_DifferentCounts(t *testing.T) {
	// The same pair of instants can qualify in one zone and not another,
	// because day boundaries and the 17:30 cutoff are local wall-clock.
	since := time.Date(2024, time.September, 2, 16, 30, 0, 0, time.UTC)
	until := time.Date(2024, time.September, 3, 8, 0, 0, 0, time.UTC)

	utc := mustPeriod(t, since, until, "UTC")
	assert.Equal(t, 1, utc.WeekdayDays(), "UTC: Monday evening qualifies")

	// In Kolkata (+05:30) the interval is Mon 22:00 -> Tue 13:30 local:
	// Monday covers only 2h, Tuesday ends before Tuesday's cutoff.
	kolkata := mustPeriod(t, since, until, "Asia/Kolkata")
	assert.Equal(t, 0, kolkata.OohDays())
}

func TestPeriod_DSTSpringForward_ShortDayStillOneDay(t *testing.T) {
	// GIVEN: Sat 17:30 -> Mon 09:00 across the 2024-03-31 spring-forward
	//        (Sunday is 23 hours long in Europe/London)
	// THEN: Sat and Sun both qualify as weekend days; the short Sunday is
	//       still a single calendar day
	p := mustPeriod(t,
		inZone(t, london, 2024, time.March, 30, 17, 30),
		inZone(t, london, 2024, time.April, 1, 9, 0),
		london)

	assert.Equal(t, 0, p.WeekdayDays())
	assert.Equal(t, 2, p.WeekendDays())
}

func TestPeriod_DSTFallBack_LongDayStillOneDay(t *testing.T) {
	// GIVEN: Sat 17:30 -> Mon 09:00 across the 2024-10-27 fall-back
	//        (Sunday is 25 hours long in Europe/London)
	p := mustPeriod(t,
		inZone(t, london, 2024, time.October, 26, 17, 30),
		inZone(t, london, 2024, time.October, 28, 9, 0),
		london)

	assert.Equal(t, 0, p.WeekdayDays())
	assert.Equal(t, 2, p.WeekendDays())
}

func TestPeriod_EmptyZone_DefaultsToUTC(t *testing.T) {
	p := mustPeriod(t,
		time.Date(2024, time.September, 2, 17, 30, 0, 0, time.UTC),
		time.Date(2024, time.September, 3, 9, 0, 0, 0, time.UTC),
		"")

	assert.Equal(t, "UTC", p.Zone())
	assert.Equal(t, 1, p.WeekdayDays())
}

// =============================================================================
// CONSTRUCTION FAILURES
// =============================================================================

func TestPeriod_InvalidZone_FailsFast(t *testing.T) {
	// An unrecognized identifier must be rejected, never silently UTC.
	_, err := oncall.NewPeriod(
		time.Date(2024, time.September, 2, 17, 30, 0, 0, time.UTC),
		time.Date(2024, time.September, 3, 9, 0, 0, 0, time.UTC),
		"Mars/Olympus_Mons")

	require.Error(t, err)
	assert.True(t, errors.Is(err, oncall.ErrInvalidTimezone))
	assert.True(t, oncall.IsClientError(err))

	var tzErr *oncall.TimezoneError
	require.ErrorAs(t, err, &tzErr)
	assert.Equal(t, "Mars/Olympus_Mons", tzErr.Zone)
}

func TestPeriod_InvertedInterval_Rejected(t *testing.T) {
	since := time.Date(2024, time.September, 3, 9, 0, 0, 0, time.UTC)
	until := time.Date(2024, time.September, 2, 17, 30, 0, 0, time.UTC)

	_, err := oncall.NewPeriod(since, until, london)
	require.Error(t, err)
	assert.True(t, errors.Is(err, oncall.ErrInvalidInterval))

	// Zero-length intervals are rejected too.
	_, err = oncall.NewPeriod(since, since, london)
	assert.True(t, errors.Is(err, oncall.ErrInvalidInterval))
}

// =============================================================================
// DETERMINISM AND BUCKET COMPLETENESS
// =============================================================================

func TestPeriod_Deterministic(t *testing.T) {
	since := inZone(t, london, 2024, time.September, 5, 17, 30)
	until := inZone(t, london, 2024, time.September, 9, 9, 0)

	first := mustPeriod(t, since, until, london)
	for i := 0; i < 10; i++ {
		p := mustPeriod(t, since, until, london)
		assert.Equal(t, first.WeekdayDays(), p.WeekdayDays())
		assert.Equal(t, first.WeekendDays(), p.WeekendDays())
	}
}

func TestPeriod_BucketsPartitionQualifyingDays(t *testing.T) {
	// Every qualifying day lands in exactly one bucket.
	cases := []struct {
		name         string
		since, until time.Time
		total        int
	}{
		{"one night", inZone(t, london, 2024, time.September, 2, 17, 30), inZone(t, london, 2024, time.September, 3, 9, 0), 1},
		{"four nights", inZone(t, london, 2024, time.September, 5, 17, 30), inZone(t, london, 2024, time.September, 9, 9, 0), 4},
		{"none", inZone(t, london, 2024, time.September, 2, 9, 0), inZone(t, london, 2024, time.September, 2, 17, 0), 0},
		{"two weeks", inZone(t, london, 2024, time.September, 2, 9, 0), inZone(t, london, 2024, time.September, 16, 9, 0), 14},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := mustPeriod(t, tc.since, tc.until, london)
			assert.Equal(t, tc.total, p.WeekdayDays()+p.WeekendDays())
			assert.Equal(t, tc.total, p.OohDays())
		})
	}
}
