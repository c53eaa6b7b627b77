package override

import (
	"context"
	"errors"

	"github.com/nikitanikist/saleshub/pkg/modules"
	"github.com/nikitanikist/saleshub/pkg/org"
)

// Gate answers override questions for the organization in the context.
type Gate struct {
	store Store
}

// NewGate creates a Gate. Panics on nil store to fail fast at startup.
func NewGate(store Store) *Gate {
	if store == nil {
		panic("override: Store is required")
	}
	return &Gate{store: store}
}

// IsPermissionDisabled reports whether the permission key is suppressed for
// the context's organization. No org or no row means not disabled. Store
// failures propagate.
func (g *Gate) IsPermissionDisabled(ctx context.Context, key string) (bool, error) {
	row, err := g.load(ctx)
	if err != nil {
		return false, err
	}
	return row.PermissionDisabled(key), nil
}

// IsIntegrationDisabled reports whether the integration slug is suppressed
// for the context's organization.
func (g *Gate) IsIntegrationDisabled(ctx context.Context, slug string) (bool, error) {
	row, err := g.load(ctx)
	if err != nil {
		return false, err
	}
	return row.IntegrationDisabled(slug), nil
}

// load returns the org's override row, or nil (empty semantics) when the
// context has no org or the org has no row.
func (g *Gate) load(ctx context.Context) (*Override, error) {
	orgID, ok := org.IDFromContext(ctx)
	if !ok {
		return nil, nil
	}
	row, err := g.store.Get(ctx, orgID)
	if err != nil {
		if errors.Is(err, ErrNoOverrideRow) {
			return nil, nil
		}
		return nil, err
	}
	return row, nil
}

// ModuleAvailable composes the module gate with this gate: the module must
// be enabled and its integration must not be overridden off. The override
// deny wins regardless of module state.
func ModuleAvailable(ctx context.Context, moduleGate *modules.Gate, overrideGate *Gate, slug modules.Slug) (bool, error) {
	disabled, err := overrideGate.IsIntegrationDisabled(ctx, string(slug))
	if err != nil {
		return false, err
	}
	if disabled {
		return false, nil
	}
	return moduleGate.IsEnabled(ctx, slug)
}
