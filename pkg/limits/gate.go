package limits

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/nikitanikist/saleshub/pkg/subscription"
)

// Notifier receives one call per denial, for surfacing the message to the
// user (toast, websocket push, email). Never called on allow.
type Notifier func(ctx context.Context, denial *Denial)

// Gate decides whether an organization may create one more instance of a
// metric. The check is point-in-time: it reads usage, compares and returns.
// Two concurrent creations can both pass; the overshoot is bounded by the
// number of in-flight requests and is an accepted property, not a defect.
type Gate struct {
	subs     subscription.Store
	source   subscription.LimitSource
	counters CounterRegistry
	notify   Notifier
}

// GateOption configures optional Gate collaborators.
type GateOption func(*Gate)

// WithCounters wires a counter registry so Check can look up usage itself.
func WithCounters(counters CounterRegistry) GateOption {
	return func(g *Gate) { g.counters = counters }
}

// WithNotifier sets the denial notifier.
func WithNotifier(n Notifier) GateOption {
	return func(g *Gate) { g.notify = n }
}

// NewGate creates a Gate. Panics on nil store or source to fail fast at
// startup.
func NewGate(subs subscription.Store, source subscription.LimitSource, opts ...GateOption) *Gate {
	if subs == nil {
		panic("limits: subscription.Store is required")
	}
	if source == nil {
		panic("limits: subscription.LimitSource is required")
	}
	g := &Gate{
		subs:     subs,
		source:   source,
		counters: NewRegistry(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Check reports whether the org may create one more instance of key,
// counting current usage through the registered counter. Returns nil on
// allow, a *Denial on deny, ErrNoCounterRegistered when the key is enforced
// but has no counter, or the underlying store error.
func (g *Gate) Check(ctx context.Context, orgID uuid.UUID, key subscription.LimitKey) error {
	sub, limit, enforced, err := g.effectiveLimit(ctx, orgID, key)
	if err != nil || !enforced {
		return err
	}

	counter, ok := g.counters[key]
	if !ok {
		return ErrNoCounterRegistered
	}
	current, err := counter(ctx, orgID)
	if err != nil {
		return errors.Join(ErrFailedToCountUsage, err)
	}

	return g.decide(ctx, sub, key, limit, current)
}

// CheckCount is Check with a caller-supplied current count, for callers
// that already hold a usage snapshot.
func (g *Gate) CheckCount(ctx context.Context, orgID uuid.UUID, key subscription.LimitKey, current int64) error {
	sub, limit, enforced, err := g.effectiveLimit(ctx, orgID, key)
	if err != nil || !enforced {
		return err
	}
	return g.decide(ctx, sub, key, limit, current)
}

// Usage returns current usage and the effective limit for dashboards.
// enforced is false when the metric is unconstrained for this org.
func (g *Gate) Usage(ctx context.Context, orgID uuid.UUID, key subscription.LimitKey) (current, limit int64, enforced bool, err error) {
	_, limit, enforced, err = g.effectiveLimit(ctx, orgID, key)
	if err != nil {
		return 0, 0, false, err
	}

	counter, ok := g.counters[key]
	if !ok {
		return 0, limit, enforced, nil
	}
	current, err = counter(ctx, orgID)
	if err != nil {
		return 0, 0, false, errors.Join(ErrFailedToCountUsage, err)
	}
	return current, limit, enforced, nil
}

// effectiveLimit resolves the ceiling for one key. enforced is false when
// the org has no subscription, the plan is unknown to the catalog, the plan
// does not define the key, or the value is Unlimited.
func (g *Gate) effectiveLimit(ctx context.Context, orgID uuid.UUID, key subscription.LimitKey) (sub *subscription.Subscription, limit int64, enforced bool, err error) {
	sub, err = g.subs.Get(ctx, orgID)
	if err != nil {
		if errors.Is(err, subscription.ErrSubscriptionNotFound) {
			return nil, 0, false, nil
		}
		return nil, 0, false, err
	}

	planLimits, err := g.source.PlanLimits(ctx, sub.PlanID)
	if err != nil {
		if errors.Is(err, subscription.ErrPlanNotFound) {
			return sub, 0, false, nil
		}
		return nil, 0, false, err
	}

	effective := ResolveEffective(planLimits, sub.CustomLimits)
	limit, ok := effective[key]
	if !ok || limit == subscription.Unlimited || limit < 0 {
		return sub, 0, false, nil
	}
	return sub, limit, true, nil
}

// decide applies the strict inequality: reaching the ceiling blocks the
// next creation, not the ceiling-th item itself.
func (g *Gate) decide(ctx context.Context, sub *subscription.Subscription, key subscription.LimitKey, limit, current int64) error {
	if current < limit {
		return nil
	}

	denial := &Denial{
		Key:      key,
		PlanName: sub.PlanName,
		Limit:    limit,
		Current:  current,
	}
	if g.notify != nil {
		g.notify(ctx, denial)
	}
	return denial
}
