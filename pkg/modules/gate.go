package modules

import (
	"context"
	"errors"

	"github.com/nikitanikist/saleshub/pkg/org"
)

// Gate answers module visibility questions for the organization carried in
// the context.
type Gate struct {
	store Store
}

// NewGate creates a Gate. Panics on nil store to fail fast at startup.
func NewGate(store Store) *Gate {
	if store == nil {
		panic("modules: Store is required")
	}
	return &Gate{store: store}
}

// IsEnabled reports whether a module is active for the context's
// organization. Super-admin contexts are always true regardless of org
// state; contexts without an organization are always false. Store failures
// propagate.
func (g *Gate) IsEnabled(ctx context.Context, slug Slug) (bool, error) {
	if org.IsSuperAdmin(ctx) {
		return true, nil
	}

	orgID, ok := org.IDFromContext(ctx)
	if !ok {
		return false, nil
	}

	row, err := g.store.Get(ctx, orgID, slug)
	if err != nil {
		if errors.Is(err, ErrNoModuleRow) {
			return false, nil
		}
		return false, err
	}
	return row.Enabled, nil
}

// Config returns the module's retained configuration for the context's
// organization. Present whenever a row exists, enabled or not - distinct
// from IsEnabled semantics. ok is false when there is no row or no org.
func (g *Gate) Config(ctx context.Context, slug Slug) (config map[string]any, ok bool, err error) {
	orgID, hasOrg := org.IDFromContext(ctx)
	if !hasOrg {
		return nil, false, nil
	}

	row, err := g.store.Get(ctx, orgID, slug)
	if err != nil {
		if errors.Is(err, ErrNoModuleRow) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return row.Config, true, nil
}

// List returns the catalog annotated with the org's activation state, for
// settings screens. Super-admin contexts see everything enabled.
func (g *Gate) List(ctx context.Context) ([]ModuleState, error) {
	catalog, err := g.store.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	states := make([]ModuleState, 0, len(catalog))

	orgID, hasOrg := org.IDFromContext(ctx)
	superAdmin := org.IsSuperAdmin(ctx)

	enabled := make(map[Slug]bool)
	if hasOrg {
		rows, err := g.store.ListForOrg(ctx, orgID)
		if err != nil {
			return nil, err
		}
		for _, row := range rows {
			enabled[row.Slug] = row.Enabled
		}
	}

	for _, m := range catalog {
		states = append(states, ModuleState{
			Module:  m,
			Enabled: superAdmin || enabled[m.Slug],
		})
	}
	return states, nil
}

// ModuleState pairs a catalog entry with its activation state for one org.
type ModuleState struct {
	Module  Module
	Enabled bool
}
