package override_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikitanikist/saleshub/pkg/modules"
	"github.com/nikitanikist/saleshub/pkg/org"
	"github.com/nikitanikist/saleshub/pkg/override"
)

func orgContext(id uuid.UUID) context.Context {
	return org.WithOrganization(context.Background(), &org.Organization{ID: id, Active: true})
}

func TestMembershipChecks(t *testing.T) {
	t.Parallel()

	t.Run("nil row disables nothing", func(t *testing.T) {
		t.Parallel()

		var row *override.Override
		assert.False(t, row.PermissionDisabled("leads.delete"))
		assert.False(t, row.IntegrationDisabled("sms"))
	})

	t.Run("membership is exact", func(t *testing.T) {
		t.Parallel()

		row := &override.Override{
			DisabledPermissions:  []string{"leads.delete"},
			DisabledIntegrations: []string{"sms"},
		}

		assert.True(t, row.PermissionDisabled("leads.delete"))
		assert.False(t, row.PermissionDisabled("leads.create"))
		assert.True(t, row.IntegrationDisabled("sms"))
		assert.False(t, row.IntegrationDisabled("whatsapp"))
		assert.False(t, row.IntegrationDisabled("voice"))
	})
}

func TestGate(t *testing.T) {
	t.Parallel()

	orgID := uuid.New()

	t.Run("no row means nothing disabled", func(t *testing.T) {
		t.Parallel()

		gate := override.NewGate(override.NewMemoryStore())

		disabled, err := gate.IsIntegrationDisabled(orgContext(orgID), "sms")
		require.NoError(t, err)
		assert.False(t, disabled)

		disabled, err = gate.IsPermissionDisabled(orgContext(orgID), "leads.delete")
		require.NoError(t, err)
		assert.False(t, disabled)
	})

	t.Run("no org means nothing disabled", func(t *testing.T) {
		t.Parallel()

		gate := override.NewGate(override.NewMemoryStore(&override.Override{
			OrgID:                orgID,
			DisabledIntegrations: []string{"sms"},
		}))

		disabled, err := gate.IsIntegrationDisabled(context.Background(), "sms")
		require.NoError(t, err)
		assert.False(t, disabled)
	})

	t.Run("row membership denies", func(t *testing.T) {
		t.Parallel()

		gate := override.NewGate(override.NewMemoryStore(&override.Override{
			OrgID:                orgID,
			DisabledIntegrations: []string{"sms"},
		}))

		disabled, err := gate.IsIntegrationDisabled(orgContext(orgID), "sms")
		require.NoError(t, err)
		assert.True(t, disabled)
	})

	t.Run("store failure propagates", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("connection reset")
		gate := override.NewGate(&failingOverrideStore{err: boom})

		_, err := gate.IsPermissionDisabled(orgContext(orgID), "leads.delete")
		assert.ErrorIs(t, err, boom)
	})
}

func TestModuleAvailable(t *testing.T) {
	t.Parallel()

	orgID := uuid.New()
	ctx := orgContext(orgID)

	moduleStore := modules.NewMemoryStore()
	require.NoError(t, moduleStore.Upsert(ctx, &modules.OrgModule{
		OrgID:   orgID,
		Slug:    modules.SlugWhatsApp,
		Enabled: true,
	}))
	moduleGate := modules.NewGate(moduleStore)

	t.Run("enabled module without override is available", func(t *testing.T) {
		t.Parallel()

		overrideGate := override.NewGate(override.NewMemoryStore())

		ok, err := override.ModuleAvailable(ctx, moduleGate, overrideGate, modules.SlugWhatsApp)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("override deny wins over enabled module", func(t *testing.T) {
		t.Parallel()

		overrideGate := override.NewGate(override.NewMemoryStore(&override.Override{
			OrgID:                orgID,
			DisabledIntegrations: []string{"whatsapp"},
		}))

		ok, err := override.ModuleAvailable(ctx, moduleGate, overrideGate, modules.SlugWhatsApp)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("disabled module stays unavailable without override", func(t *testing.T) {
		t.Parallel()

		overrideGate := override.NewGate(override.NewMemoryStore())

		ok, err := override.ModuleAvailable(ctx, moduleGate, overrideGate, modules.SlugVoice)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

type failingOverrideStore struct{ err error }

func (f *failingOverrideStore) Get(ctx context.Context, orgID uuid.UUID) (*override.Override, error) {
	return nil, f.err
}

func (f *failingOverrideStore) Save(ctx context.Context, ov *override.Override) error {
	return f.err
}
