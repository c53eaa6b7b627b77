package limits

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/nikitanikist/saleshub/pkg/subscription"
)

// CounterFunc returns the current usage of a metric for an organization.
// Should be fast: aggregate at the repository level or cache.
type CounterFunc func(ctx context.Context, orgID uuid.UUID) (int64, error)

// CounterRegistry maps a limit key to its CounterFunc.
// Not safe for concurrent mutation: register everything at startup.
type CounterRegistry map[subscription.LimitKey]CounterFunc

// NewRegistry returns an empty CounterRegistry.
func NewRegistry() CounterRegistry {
	return make(CounterRegistry)
}

// Register sets or replaces the counter for a key. Panics on nil fn.
func (r CounterRegistry) Register(key subscription.LimitKey, fn CounterFunc) {
	if fn == nil {
		panic(fmt.Sprintf("limits: CounterFunc for key %q cannot be nil", key))
	}
	r[key] = fn
}
