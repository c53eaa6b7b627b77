package modules

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Slug identifies a module in the global catalog.
type Slug string

// Modules the application ships today.
const (
	SlugLeads     Slug = "leads"
	SlugWhatsApp  Slug = "whatsapp"
	SlugVoice     Slug = "voice"
	SlugBilling   Slug = "billing"
	SlugAnalytics Slug = "analytics"
)

// Module is a global catalog entry. Reference data, shared read-only across
// organizations.
type Module struct {
	Slug         Slug
	Name         string
	IsPremium    bool
	DisplayOrder int
}

// OrgModule is the per-organization activation row. A module is active for
// an org iff a row exists and Enabled is true.
type OrgModule struct {
	OrgID     uuid.UUID
	Slug      Slug
	Enabled   bool
	Config    map[string]any // free-form module settings, retained while disabled
	UpdatedAt time.Time
}

// Store persists the module catalog and per-org activation rows.
type Store interface {
	// Catalog returns all modules ordered by DisplayOrder.
	Catalog(ctx context.Context) ([]Module, error)

	// Get returns the activation row for one org and module.
	// Returns ErrNoModuleRow when the org has no row for the slug.
	Get(ctx context.Context, orgID uuid.UUID, slug Slug) (*OrgModule, error)

	// ListForOrg returns all activation rows for an org.
	ListForOrg(ctx context.Context, orgID uuid.UUID) ([]OrgModule, error)

	// Upsert creates or replaces an activation row.
	Upsert(ctx context.Context, row *OrgModule) error
}
