package subscription

import (
	"context"

	"github.com/google/uuid"
)

// Store persists subscriptions. One subscription per organization, so the
// org ID is the lookup key.
type Store interface {
	// Get retrieves the subscription for an organization.
	// Returns ErrSubscriptionNotFound when the org has none.
	Get(ctx context.Context, orgID uuid.UUID) (*Subscription, error)

	// Save creates or updates a subscription keyed by OrgID.
	Save(ctx context.Context, sub *Subscription) error
}

// LimitSource loads the plan-limit catalog. Implementations may read from
// Postgres, a YAML file or memory; the catalog is reference data and safe
// to cache.
type LimitSource interface {
	// PlanLimits returns the limit rows seeded for a plan, in seed order.
	// Returns ErrPlanNotFound for unknown plan IDs.
	PlanLimits(ctx context.Context, planID string) ([]PlanLimit, error)
}
