package entitlements_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikitanikist/saleshub/pkg/limits"
	"github.com/nikitanikist/saleshub/pkg/logger"
	"github.com/nikitanikist/saleshub/pkg/modules"
	"github.com/nikitanikist/saleshub/pkg/org"
	"github.com/nikitanikist/saleshub/pkg/override"
	"github.com/nikitanikist/saleshub/pkg/subscription"
	"github.com/nikitanikist/saleshub/pkg/usage"
	"github.com/nikitanikist/saleshub/svc/entitlements"
)

type fixture struct {
	router     http.Handler
	orgID      uuid.UUID
	usageStore *usage.MemoryStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	orgID := uuid.New()
	now := time.Now().UTC()

	subs := subscription.NewMemoryStore(&subscription.Subscription{
		OrgID:    orgID,
		PlanID:   "starter",
		PlanName: "Starter",
		Status:   subscription.StatusActive,
	})
	source := subscription.NewMemoryLimitSource(subscription.Plan{
		ID:   "starter",
		Name: "Starter",
		Limits: []subscription.PlanLimit{
			{Key: subscription.LimitGroups, Value: 3},
			{Key: subscription.LimitLinks, Value: subscription.Unlimited},
		},
	})

	usageStore := usage.NewMemoryStore()
	usageStore.SetGroups(orgID, 2)
	usageStore.SetLinks(orgID, 100)
	aggregator := usage.NewAggregator(usageStore, usage.WithClock(func() time.Time { return now }))

	registry := limits.NewRegistry()
	aggregator.Register(registry)
	limitGate := limits.NewGate(subs, source, limits.WithCounters(registry))

	moduleStore := modules.NewMemoryStore(
		modules.Module{Slug: modules.SlugLeads, Name: "Leads", DisplayOrder: 1},
		modules.Module{Slug: modules.SlugVoice, Name: "Voice Campaigns", IsPremium: true, DisplayOrder: 2},
	)
	require.NoError(t, moduleStore.Upsert(t.Context(), &modules.OrgModule{
		OrgID: orgID, Slug: modules.SlugLeads, Enabled: true,
		Config: map[string]any{"columns": []any{"name", "phone"}},
	}))
	require.NoError(t, moduleStore.Upsert(t.Context(), &modules.OrgModule{
		OrgID: orgID, Slug: modules.SlugVoice, Enabled: true,
	}))

	overrideStore := override.NewMemoryStore(&override.Override{
		OrgID:                orgID,
		DisabledIntegrations: []string{string(modules.SlugVoice)},
	})

	svc := entitlements.New(
		limitGate,
		modules.NewGate(moduleStore),
		override.NewGate(overrideStore),
		aggregator,
		logger.New(),
	)

	return &fixture{router: entitlements.Router(svc), orgID: orgID, usageStore: usageStore}
}

func (f *fixture) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	ctx := org.WithOrganization(req.Context(), &org.Organization{
		ID: f.orgID, Slug: "acme", Name: "Acme", PlanID: "starter", Active: true,
	})
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req.WithContext(ctx))
	return rec
}

func TestUsageEndpoint(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	rec := f.get(t, "/usage")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]int64
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(2), resp["groups"])
	assert.Equal(t, int64(100), resp["links"])
	assert.Equal(t, int64(0), resp["team_members"])
}

func TestLimitEndpointAllowed(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	rec := f.get(t, "/limits/groups")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Current  int64  `json:"current"`
		Limit    int64  `json:"limit"`
		Enforced bool   `json:"enforced"`
		Allowed  bool   `json:"allowed"`
		Message  string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(2), resp.Current)
	assert.Equal(t, int64(3), resp.Limit)
	assert.True(t, resp.Enforced)
	assert.True(t, resp.Allowed)
	assert.Empty(t, resp.Message)
}

func TestLimitEndpointDenied(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.usageStore.SetGroups(f.orgID, 3)

	rec := f.get(t, "/limits/groups")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Allowed bool   `json:"allowed"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Allowed)
	assert.Contains(t, resp.Message, "groups limit (3) for the Starter plan")
}

func TestLimitEndpointUnenforcedMetric(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	rec := f.get(t, "/limits/links")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Enforced bool `json:"enforced"`
		Allowed  bool `json:"allowed"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Enforced)
	assert.True(t, resp.Allowed)
}

func TestModulesEndpointFoldsOverrides(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	rec := f.get(t, "/modules")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp []struct {
		Slug      string `json:"slug"`
		Enabled   bool   `json:"enabled"`
		Available bool   `json:"available"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 2)

	bySlug := map[string]struct{ Enabled, Available bool }{}
	for _, m := range resp {
		bySlug[m.Slug] = struct{ Enabled, Available bool }{m.Enabled, m.Available}
	}
	assert.True(t, bySlug["leads"].Enabled)
	assert.True(t, bySlug["leads"].Available)
	// Voice is enabled but deny-listed by the override, so unavailable.
	assert.True(t, bySlug["voice"].Enabled)
	assert.False(t, bySlug["voice"].Available)
}

func TestModuleConfigReadableWhileDisabled(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	rec := f.get(t, "/modules/leads/config")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "columns")

	rec = f.get(t, "/modules/billing/config")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
