package org_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikitanikist/saleshub/pkg/org"
)

func TestOrganizationContext(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		o := &org.Organization{
			ID:        uuid.New(),
			Slug:      "acme",
			Name:      "Acme Corp",
			Timezone:  "Asia/Kolkata",
			PlanID:    "pro",
			Active:    true,
			CreatedAt: time.Now(),
		}

		ctx := org.WithOrganization(context.Background(), o)

		got, ok := org.FromContext(ctx)
		require.True(t, ok)
		assert.Equal(t, o, got)

		id, ok := org.IDFromContext(ctx)
		require.True(t, ok)
		assert.Equal(t, o.ID, id)
	})

	t.Run("empty context", func(t *testing.T) {
		t.Parallel()

		got, ok := org.FromContext(context.Background())
		assert.False(t, ok)
		assert.Nil(t, got)

		id, ok := org.IDFromContext(context.Background())
		assert.False(t, ok)
		assert.Equal(t, uuid.UUID{}, id)
	})
}

func TestSuperAdmin(t *testing.T) {
	t.Parallel()

	assert.False(t, org.IsSuperAdmin(context.Background()))
	assert.True(t, org.IsSuperAdmin(org.WithSuperAdmin(context.Background(), true)))
	assert.False(t, org.IsSuperAdmin(org.WithSuperAdmin(context.Background(), false)))
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	extractor := org.LoggerExtractor()

	t.Run("with organization", func(t *testing.T) {
		t.Parallel()

		o := &org.Organization{ID: uuid.New()}
		ctx := org.WithOrganization(context.Background(), o)

		attr, ok := extractor(ctx)
		require.True(t, ok)
		assert.Equal(t, "org_id", attr.Key)
		assert.Equal(t, o.ID.String(), attr.Value.String())
	})

	t.Run("without organization", func(t *testing.T) {
		t.Parallel()

		_, ok := extractor(context.Background())
		assert.False(t, ok)
	})
}
