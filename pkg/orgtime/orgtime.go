package orgtime

import "time"

// DefaultTimezone is used when an organization has no timezone configured.
const DefaultTimezone = "Asia/Kolkata"

// DayFormat is the calendar-day string layout used across the application.
const DayFormat = "2006-01-02"

// Location resolves an IANA timezone name to a *time.Location.
// Empty or unknown names resolve to DefaultTimezone.
func Location(tz string) *time.Location {
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		loc, _ = time.LoadLocation(DefaultTimezone)
	}
	return loc
}

// ToOrgLocal converts a UTC instant into the organization's local time.
func ToOrgLocal(instant time.Time, loc *time.Location) time.Time {
	return instant.In(loc)
}

// ToUTC interprets the wall-clock components of local in the organization's
// zone and returns the corresponding UTC instant. For wall times inside a
// DST transition window the zone database picks one of the candidate
// offsets; callers must not rely on which.
func ToUTC(local time.Time, loc *time.Location) time.Time {
	return time.Date(
		local.Year(), local.Month(), local.Day(),
		local.Hour(), local.Minute(), local.Second(), local.Nanosecond(),
		loc,
	).UTC()
}

// Today returns the organization's current calendar day as yyyy-MM-dd.
// The instant is converted into the org zone first; the UTC date string is
// never shifted by a fixed offset.
func Today(loc *time.Location, now time.Time) string {
	return now.In(loc).Format(DayFormat)
}

// Yesterday returns the org-local calendar day before Today.
func Yesterday(loc *time.Location, now time.Time) string {
	return now.In(loc).AddDate(0, 0, -1).Format(DayFormat)
}

// Tomorrow returns the org-local calendar day after Today.
func Tomorrow(loc *time.Location, now time.Time) string {
	return now.In(loc).AddDate(0, 0, 1).Format(DayFormat)
}

// StartOfDay returns the UTC instant of local midnight for the org-local day
// containing now. Use it as the inclusive lower bound of day-range queries
// against UTC-stored timestamps.
func StartOfDay(loc *time.Location, now time.Time) time.Time {
	local := now.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc).UTC()
}

// EndOfDay returns the UTC instant of the last nanosecond of the org-local
// day containing now. Computed from the next local midnight, so DST days
// shorter or longer than 24h keep correct boundaries.
func EndOfDay(loc *time.Location, now time.Time) time.Time {
	local := now.In(loc)
	next := time.Date(local.Year(), local.Month(), local.Day()+1, 0, 0, 0, 0, loc)
	return next.UTC().Add(-time.Nanosecond)
}

// DayBounds returns StartOfDay and EndOfDay in one call.
func DayBounds(loc *time.Location, now time.Time) (start, end time.Time) {
	return StartOfDay(loc, now), EndOfDay(loc, now)
}

// StartOfMonth returns the UTC instant of local midnight on the first day of
// the org-local month containing now.
func StartOfMonth(loc *time.Location, now time.Time) time.Time {
	local := now.In(loc)
	return time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc).UTC()
}

// IsSameOrgDay reports whether two instants fall on the same org-local
// calendar day. Comparison is by formatted day string, not by instant.
func IsSameOrgDay(a, b time.Time, loc *time.Location) bool {
	return a.In(loc).Format(DayFormat) == b.In(loc).Format(DayFormat)
}
