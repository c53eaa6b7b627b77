// Package limits enforces plan ceilings on countable organization metrics
// (team members, groups, campaigns, integrations, links).
//
// Enforcement has two halves:
//
//   - ResolveEffective merges a plan's seeded limit rows with an
//     organization's custom overrides into the effective ceiling per key.
//     Only keys the plan defines are enforceable; an override without a
//     matching plan row is ignored.
//   - Gate answers "may this org create one more X": it loads the org's
//     subscription and plan limits, resolves the effective ceiling and
//     compares it against current usage with strict inequality, so an org
//     sitting exactly at its ceiling is denied the next creation.
//
// Absence is permissive throughout: no subscription, no plan row or an
// Unlimited (-1) value all mean "allow". Denials carry a user-facing message
// naming the metric and the plan.
//
// The gate is advisory, not transactional. It reads a count and decides;
// two concurrent creations can both pass and land the org one over the
// ceiling. That window is accepted and covered by tests rather than hidden
// behind locks - the write path stays plain inserts.
//
// Usage:
//
//	counters := limits.NewRegistry()
//	counters.Register(subscription.LimitGroups, groupCounter)
//	gate := limits.NewGate(subStore, limitSource, limits.WithCounters(counters))
//
//	if err := gate.Check(ctx, orgID, subscription.LimitGroups); err != nil {
//	    var denial *limits.Denial
//	    if errors.As(err, &denial) {
//	        return denial.Message() // surface to the user
//	    }
//	    return err // store failure, propagate
//	}
package limits
