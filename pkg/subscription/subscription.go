package subscription

import (
	"time"

	"github.com/google/uuid"
)

// Subscription is an organization's link to a plan. One row per org; plan
// changes mutate the row and cancellation is a status transition, never a
// delete.
type Subscription struct {
	OrgID        uuid.UUID // primary key - one subscription per organization
	PlanID       string
	PlanName     string
	Status       Status
	CustomLimits map[LimitKey]int64 // per-org overrides of plan ceilings
	CreatedAt    time.Time
	UpdatedAt    time.Time
	CancelledAt  *time.Time // set when the subscription is cancelled
}

func (s *Subscription) IsActive() bool {
	return s.Status == StatusActive
}

func (s *Subscription) IsTrialing() bool {
	return s.Status == StatusTrialing
}

func (s *Subscription) IsCancelled() bool {
	return s.Status == StatusCancelled
}

// CustomLimit returns the per-org override for a key, if one is set.
func (s *Subscription) CustomLimit(key LimitKey) (int64, bool) {
	if s == nil || s.CustomLimits == nil {
		return 0, false
	}
	v, ok := s.CustomLimits[key]
	return v, ok
}

// ChangePlan moves the subscription to another plan. Custom limits are
// cleared: overrides are negotiated against a specific plan and must not
// silently carry over.
func (s *Subscription) ChangePlan(planID, planName string, now time.Time) {
	s.PlanID = planID
	s.PlanName = planName
	s.CustomLimits = nil
	s.UpdatedAt = now
}

// Cancel transitions the subscription to cancelled. Idempotent.
func (s *Subscription) Cancel(now time.Time) {
	if s.Status == StatusCancelled {
		return
	}
	s.Status = StatusCancelled
	s.CancelledAt = &now
	s.UpdatedAt = now
}
