package org

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Organization is the tenant record in its request-scoped form: the fields
// gates, aggregators and timezone logic need, not the full billing profile.
type Organization struct {
	ID        uuid.UUID `json:"id"`
	Slug      string    `json:"slug"`
	Name      string    `json:"name"`
	Timezone  string    `json:"timezone"` // IANA zone name; empty means the application default
	PlanID    string    `json:"plan_id"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// Provider loads an organization from a data source by any unique
// identifier (UUID or slug). Returns ErrOrganizationNotFound when nothing
// matches.
type Provider interface {
	GetByIdentifier(ctx context.Context, identifier string) (*Organization, error)
}
