package limits

import (
	"fmt"
	"strings"

	"github.com/nikitanikist/saleshub/pkg/subscription"
)

// Denial is the error returned when a creation would exceed the effective
// ceiling. It unwraps to ErrLimitExceeded and carries everything needed for
// a user-facing notification.
type Denial struct {
	Key      subscription.LimitKey
	PlanName string
	Limit    int64
	Current  int64
}

func (d *Denial) Error() string {
	return fmt.Sprintf("limit exceeded: %s at %d of %d on plan %q", d.Key, d.Current, d.Limit, d.PlanName)
}

func (d *Denial) Unwrap() error {
	return ErrLimitExceeded
}

// Metric returns the human-readable metric name, underscores replaced with
// spaces ("team_members" -> "team members").
func (d *Denial) Metric() string {
	return strings.ReplaceAll(string(d.Key), "_", " ")
}

// Message returns the user-facing denial text naming the metric and plan.
func (d *Denial) Message() string {
	return fmt.Sprintf(
		"You have reached the %s limit (%d) for the %s plan. Upgrade your plan or contact support to increase it.",
		d.Metric(), d.Limit, d.PlanName,
	)
}
