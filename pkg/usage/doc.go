// Package usage counts an organization's current consumption per metric:
// team members, groups, campaigns created this month, integrations and
// links.
//
// Counts are computed on demand and independently; a snapshot taken while
// writes land mid-aggregation may straddle them, and no cross-count
// consistency is promised. A missing organization yields zero counts, never
// an error.
//
// The campaign count is scoped to the current calendar month in the
// organization's timezone, not the caller's. "Now" is injected so tests can
// pin the month boundary.
//
// Aggregator.Register plugs the five counts into a limits.CounterRegistry
// so the limit gate can consult live usage.
package usage
