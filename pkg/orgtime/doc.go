// Package orgtime converts between UTC instants and an organization's local
// calendar, parameterized by the org's configured IANA timezone.
//
// Every "today", "this month" and day-boundary computation in the application
// goes through this package so that the calendar day is the organization's
// day, not the server's or the viewer's. Functions take an explicit "now"
// instant instead of reading the clock, which keeps callers testable.
//
// Basic usage:
//
//	loc := orgtime.Location(org.Timezone)
//	day := orgtime.Today(loc, time.Now())          // "2024-01-02" in org time
//	from, to := orgtime.DayBounds(loc, time.Now()) // UTC instants for range queries
//
// Unknown or empty timezone names fall back to DefaultTimezone rather than
// erroring, since a misconfigured org should still see a consistent calendar.
package orgtime
