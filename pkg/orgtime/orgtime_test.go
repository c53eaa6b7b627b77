package orgtime_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikitanikist/saleshub/pkg/orgtime"
)

func TestLocation(t *testing.T) {
	t.Parallel()

	t.Run("valid zone", func(t *testing.T) {
		t.Parallel()

		loc := orgtime.Location("America/New_York")
		assert.Equal(t, "America/New_York", loc.String())
	})

	t.Run("empty falls back to default", func(t *testing.T) {
		t.Parallel()

		loc := orgtime.Location("")
		assert.Equal(t, orgtime.DefaultTimezone, loc.String())
	})

	t.Run("unknown falls back to default", func(t *testing.T) {
		t.Parallel()

		loc := orgtime.Location("Mars/Olympus_Mons")
		assert.Equal(t, orgtime.DefaultTimezone, loc.String())
	})
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	zones := []string{"UTC", "Asia/Kolkata", "America/New_York", "Australia/Sydney"}
	instants := []time.Time{
		time.Date(2024, 1, 1, 19, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 15, 3, 30, 45, 123456789, time.UTC),
		time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC),
	}

	for _, tz := range zones {
		loc := orgtime.Location(tz)
		for _, instant := range instants {
			local := orgtime.ToOrgLocal(instant, loc)
			back := orgtime.ToUTC(local, loc)
			assert.True(t, back.Equal(instant), "round trip failed for %s at %s", tz, instant)
		}
	}
}

func TestToday(t *testing.T) {
	t.Parallel()

	t.Run("kolkata crosses date line before utc", func(t *testing.T) {
		t.Parallel()

		// 19:00 UTC on Jan 1 is already 00:30 on Jan 2 in Kolkata (UTC+5:30).
		now := time.Date(2024, 1, 1, 19, 0, 0, 0, time.UTC)
		loc := orgtime.Location("Asia/Kolkata")

		assert.Equal(t, "2024-01-02", orgtime.Today(loc, now))
	})

	t.Run("new york lags utc", func(t *testing.T) {
		t.Parallel()

		now := time.Date(2024, 1, 2, 3, 0, 0, 0, time.UTC)
		loc := orgtime.Location("America/New_York")

		assert.Equal(t, "2024-01-01", orgtime.Today(loc, now))
	})

	t.Run("yesterday and tomorrow bracket today", func(t *testing.T) {
		t.Parallel()

		now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
		loc := orgtime.Location("Asia/Kolkata")

		assert.Equal(t, "2024-03-14", orgtime.Yesterday(loc, now))
		assert.Equal(t, "2024-03-15", orgtime.Today(loc, now))
		assert.Equal(t, "2024-03-16", orgtime.Tomorrow(loc, now))
	})

	t.Run("month rollover", func(t *testing.T) {
		t.Parallel()

		now := time.Date(2024, 3, 1, 1, 0, 0, 0, time.UTC)
		loc := orgtime.Location("America/New_York")

		// Still Feb 29 local.
		assert.Equal(t, "2024-02-29", orgtime.Today(loc, now))
		assert.Equal(t, "2024-03-01", orgtime.Tomorrow(loc, now))
	})
}

func TestDayBounds(t *testing.T) {
	t.Parallel()

	t.Run("kolkata midnight maps to previous utc evening", func(t *testing.T) {
		t.Parallel()

		now := time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)
		loc := orgtime.Location("Asia/Kolkata")

		start, end := orgtime.DayBounds(loc, now)

		// Jan 2 00:00 IST == Jan 1 18:30 UTC.
		assert.Equal(t, time.Date(2024, 1, 1, 18, 30, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2024, 1, 2, 18, 30, 0, 0, time.UTC).Add(-time.Nanosecond), end)
	})

	t.Run("dst spring forward keeps boundaries aligned", func(t *testing.T) {
		t.Parallel()

		// March 10 2024 is the 23-hour day in US Eastern.
		now := time.Date(2024, 3, 10, 17, 0, 0, 0, time.UTC)
		loc := orgtime.Location("America/New_York")

		start, end := orgtime.DayBounds(loc, now)

		require.True(t, start.Before(end))
		// 23-hour local day.
		assert.Equal(t, 23*time.Hour-time.Nanosecond, end.Sub(start))
	})

	t.Run("start of month in org zone", func(t *testing.T) {
		t.Parallel()

		now := time.Date(2024, 1, 31, 19, 0, 0, 0, time.UTC) // Feb 1 00:30 IST
		loc := orgtime.Location("Asia/Kolkata")

		// Feb 1 00:00 IST == Jan 31 18:30 UTC.
		assert.Equal(t, time.Date(2024, 1, 31, 18, 30, 0, 0, time.UTC), orgtime.StartOfMonth(loc, now))
	})
}

func TestIsSameOrgDay(t *testing.T) {
	t.Parallel()

	loc := orgtime.Location("Asia/Kolkata")

	t.Run("same utc day different org day", func(t *testing.T) {
		t.Parallel()

		a := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC) // Jan 1 IST
		b := time.Date(2024, 1, 1, 19, 0, 0, 0, time.UTC) // Jan 2 IST

		assert.False(t, orgtime.IsSameOrgDay(a, b, loc))
	})

	t.Run("different utc day same org day", func(t *testing.T) {
		t.Parallel()

		a := time.Date(2024, 1, 1, 19, 0, 0, 0, time.UTC) // Jan 2 00:30 IST
		b := time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC) // Jan 2 15:30 IST

		assert.True(t, orgtime.IsSameOrgDay(a, b, loc))
	})
}
