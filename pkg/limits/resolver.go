package limits

import "github.com/nikitanikist/saleshub/pkg/subscription"

// ResolveEffective merges plan limit rows with per-org overrides into the
// effective ceiling per key. The result has exactly one entry per plan row:
// the override value when the org has one, the plan default otherwise.
// Overrides for keys the plan does not define are dropped - a plan must
// define a key for it to be enforceable at all. Empty inputs yield an empty
// map.
func ResolveEffective(planLimits []subscription.PlanLimit, custom map[subscription.LimitKey]int64) map[subscription.LimitKey]int64 {
	effective := make(map[subscription.LimitKey]int64, len(planLimits))
	for _, pl := range planLimits {
		if v, ok := custom[pl.Key]; ok {
			effective[pl.Key] = v
			continue
		}
		effective[pl.Key] = pl.Value
	}
	return effective
}
