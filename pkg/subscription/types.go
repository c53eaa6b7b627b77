package subscription

// LimitKey identifies a countable metric constrained by a plan.
type LimitKey string

// Metrics the application enforces today.
const (
	LimitTeamMembers  LimitKey = "team_members"
	LimitGroups       LimitKey = "groups"
	LimitCampaigns    LimitKey = "campaigns"
	LimitIntegrations LimitKey = "integrations"
	LimitLinks        LimitKey = "links"
)

// Unlimited marks a limit row that exists but never denies (-1 chosen for
// SQL compatibility). A metric with no row at all is likewise unconstrained.
const Unlimited int64 = -1

// PlanLimit is one operator-seeded (key, value) ceiling for a plan.
type PlanLimit struct {
	Key   LimitKey
	Value int64
}

// Status represents the current state of a subscription.
type Status string

const (
	StatusActive    Status = "active"
	StatusTrialing  Status = "trialing"
	StatusPastDue   Status = "past_due"
	StatusCancelled Status = "cancelled"
	StatusExpired   Status = "expired"
)

// Plan is a catalog entry pairing a billing tier with its limit rows.
type Plan struct {
	ID     string
	Name   string
	Limits []PlanLimit
}
