package usage

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nikitanikist/saleshub/pkg/limits"
	"github.com/nikitanikist/saleshub/pkg/org"
	"github.com/nikitanikist/saleshub/pkg/orgtime"
	"github.com/nikitanikist/saleshub/pkg/subscription"
)

// Store executes the per-metric counting queries. Implementations must
// return zero, not an error, when the org simply has no rows.
type Store interface {
	CountTeamMembers(ctx context.Context, orgID uuid.UUID) (int64, error)
	CountGroups(ctx context.Context, orgID uuid.UUID) (int64, error)
	// CountCampaignsSince counts campaigns created at or after since.
	CountCampaignsSince(ctx context.Context, orgID uuid.UUID, since time.Time) (int64, error)
	CountIntegrations(ctx context.Context, orgID uuid.UUID) (int64, error)
	CountLinks(ctx context.Context, orgID uuid.UUID) (int64, error)
}

// Snapshot is one organization's usage across all metrics at a point in
// time. Counts are gathered independently; the snapshot is not atomic.
type Snapshot struct {
	TeamMembers        int64
	Groups             int64
	CampaignsThisMonth int64
	Integrations       int64
	Links              int64
	TakenAt            time.Time
}

// ByKey returns the snapshot count for a limit key.
func (s Snapshot) ByKey(key subscription.LimitKey) int64 {
	switch key {
	case subscription.LimitTeamMembers:
		return s.TeamMembers
	case subscription.LimitGroups:
		return s.Groups
	case subscription.LimitCampaigns:
		return s.CampaignsThisMonth
	case subscription.LimitIntegrations:
		return s.Integrations
	case subscription.LimitLinks:
		return s.Links
	default:
		return 0
	}
}

// Aggregator computes usage snapshots and feeds the limit gate's counters.
type Aggregator struct {
	store Store
	now   func() time.Time
}

// AggregatorOption configures the Aggregator.
type AggregatorOption func(*Aggregator)

// WithClock injects the "now" source. Tests pin it to fix month boundaries.
func WithClock(now func() time.Time) AggregatorOption {
	return func(a *Aggregator) {
		if now != nil {
			a.now = now
		}
	}
}

// NewAggregator creates an Aggregator. Panics on nil store.
func NewAggregator(store Store, opts ...AggregatorOption) *Aggregator {
	if store == nil {
		panic("usage: Store is required")
	}
	a := &Aggregator{
		store: store,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Snapshot gathers all five counts for an organization. A nil org or zero
// ID yields a zero snapshot. The campaign count starts at the first day of
// the current month in the org's timezone.
func (a *Aggregator) Snapshot(ctx context.Context, o *org.Organization) (Snapshot, error) {
	now := a.now().UTC()
	snap := Snapshot{TakenAt: now}

	if o == nil || o.ID == (uuid.UUID{}) {
		return snap, nil
	}

	var err error
	if snap.TeamMembers, err = a.store.CountTeamMembers(ctx, o.ID); err != nil {
		return Snapshot{}, err
	}
	if snap.Groups, err = a.store.CountGroups(ctx, o.ID); err != nil {
		return Snapshot{}, err
	}
	monthStart := orgtime.StartOfMonth(orgtime.Location(o.Timezone), now)
	if snap.CampaignsThisMonth, err = a.store.CountCampaignsSince(ctx, o.ID, monthStart); err != nil {
		return Snapshot{}, err
	}
	if snap.Integrations, err = a.store.CountIntegrations(ctx, o.ID); err != nil {
		return Snapshot{}, err
	}
	if snap.Links, err = a.store.CountLinks(ctx, o.ID); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

// Register wires the five metric counters into a limits.CounterRegistry.
// The campaign counter reads the organization from the context to find the
// timezone for the month boundary, falling back to the application default
// when the context carries none.
func (a *Aggregator) Register(reg limits.CounterRegistry) {
	reg.Register(subscription.LimitTeamMembers, func(ctx context.Context, orgID uuid.UUID) (int64, error) {
		return a.store.CountTeamMembers(ctx, orgID)
	})
	reg.Register(subscription.LimitGroups, func(ctx context.Context, orgID uuid.UUID) (int64, error) {
		return a.store.CountGroups(ctx, orgID)
	})
	reg.Register(subscription.LimitCampaigns, func(ctx context.Context, orgID uuid.UUID) (int64, error) {
		tz := ""
		if o, ok := org.FromContext(ctx); ok {
			tz = o.Timezone
		}
		monthStart := orgtime.StartOfMonth(orgtime.Location(tz), a.now().UTC())
		return a.store.CountCampaignsSince(ctx, orgID, monthStart)
	})
	reg.Register(subscription.LimitIntegrations, func(ctx context.Context, orgID uuid.UUID) (int64, error) {
		return a.store.CountIntegrations(ctx, orgID)
	})
	reg.Register(subscription.LimitLinks, func(ctx context.Context, orgID uuid.UUID) (int64, error) {
		return a.store.CountLinks(ctx, orgID)
	})
}
