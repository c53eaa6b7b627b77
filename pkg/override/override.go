package override

import (
	"context"
	"slices"

	"github.com/google/uuid"
)

// Override is the per-organization deny-list row. At most one per org.
type Override struct {
	OrgID                uuid.UUID
	DisabledPermissions  []string
	DisabledIntegrations []string
}

// PermissionDisabled reports whether a permission key is suppressed.
// Nil receiver behaves as an empty row.
func (o *Override) PermissionDisabled(key string) bool {
	return o != nil && slices.Contains(o.DisabledPermissions, key)
}

// IntegrationDisabled reports whether an integration slug is suppressed.
func (o *Override) IntegrationDisabled(slug string) bool {
	return o != nil && slices.Contains(o.DisabledIntegrations, slug)
}

// Store loads override rows.
type Store interface {
	// Get returns the override row for an organization.
	// Returns ErrNoOverrideRow when the org has none; callers treat that
	// as "nothing disabled".
	Get(ctx context.Context, orgID uuid.UUID) (*Override, error)

	// Save creates or replaces the override row.
	Save(ctx context.Context, ov *Override) error
}
