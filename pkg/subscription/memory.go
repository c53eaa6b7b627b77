package subscription

import (
	"context"
	"maps"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory Store for tests and local development.
type MemoryStore struct {
	mu   sync.RWMutex
	subs map[uuid.UUID]*Subscription
}

func NewMemoryStore(subs ...*Subscription) *MemoryStore {
	s := &MemoryStore{subs: make(map[uuid.UUID]*Subscription, len(subs))}
	for _, sub := range subs {
		s.subs[sub.OrgID] = cloneSubscription(sub)
	}
	return s
}

func (s *MemoryStore) Get(ctx context.Context, orgID uuid.UUID) (*Subscription, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sub, ok := s.subs[orgID]
	if !ok {
		return nil, ErrSubscriptionNotFound
	}
	return cloneSubscription(sub), nil
}

func (s *MemoryStore) Save(ctx context.Context, sub *Subscription) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.subs[sub.OrgID] = cloneSubscription(sub)
	return nil
}

func cloneSubscription(sub *Subscription) *Subscription {
	c := *sub
	if sub.CustomLimits != nil {
		c.CustomLimits = maps.Clone(sub.CustomLimits)
	}
	if sub.CancelledAt != nil {
		at := *sub.CancelledAt
		c.CancelledAt = &at
	}
	return &c
}

// MemoryLimitSource is an in-memory LimitSource built from a plan catalog.
type MemoryLimitSource struct {
	mu    sync.RWMutex
	plans map[string]Plan
}

func NewMemoryLimitSource(plans ...Plan) *MemoryLimitSource {
	s := &MemoryLimitSource{plans: make(map[string]Plan, len(plans))}
	for _, p := range plans {
		s.plans[p.ID] = clonePlan(p)
	}
	return s
}

func (s *MemoryLimitSource) PlanLimits(ctx context.Context, planID string) ([]PlanLimit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.plans[planID]
	if !ok {
		return nil, ErrPlanNotFound
	}
	limits := make([]PlanLimit, len(p.Limits))
	copy(limits, p.Limits)
	return limits, nil
}

func clonePlan(p Plan) Plan {
	limits := make([]PlanLimit, len(p.Limits))
	copy(limits, p.Limits)
	p.Limits = limits
	return p
}
