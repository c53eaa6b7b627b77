package subscription_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikitanikist/saleshub/pkg/subscription"
)

func TestSubscriptionLifecycle(t *testing.T) {
	t.Parallel()

	t.Run("cancel is a status transition", func(t *testing.T) {
		t.Parallel()

		now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		sub := &subscription.Subscription{
			OrgID:  uuid.New(),
			PlanID: "pro",
			Status: subscription.StatusActive,
		}

		sub.Cancel(now)

		assert.True(t, sub.IsCancelled())
		require.NotNil(t, sub.CancelledAt)
		assert.Equal(t, now, *sub.CancelledAt)

		// Idempotent: a second cancel keeps the original timestamp.
		sub.Cancel(now.Add(time.Hour))
		assert.Equal(t, now, *sub.CancelledAt)
	})

	t.Run("plan change clears custom limits", func(t *testing.T) {
		t.Parallel()

		sub := &subscription.Subscription{
			OrgID:        uuid.New(),
			PlanID:       "starter",
			Status:       subscription.StatusActive,
			CustomLimits: map[subscription.LimitKey]int64{subscription.LimitGroups: 20},
		}

		sub.ChangePlan("pro", "Pro", time.Now())

		assert.Equal(t, "pro", sub.PlanID)
		assert.Nil(t, sub.CustomLimits)
	})

	t.Run("custom limit lookup", func(t *testing.T) {
		t.Parallel()

		sub := &subscription.Subscription{
			CustomLimits: map[subscription.LimitKey]int64{subscription.LimitGroups: 20},
		}

		v, ok := sub.CustomLimit(subscription.LimitGroups)
		require.True(t, ok)
		assert.Equal(t, int64(20), v)

		_, ok = sub.CustomLimit(subscription.LimitLinks)
		assert.False(t, ok)

		var nilSub *subscription.Subscription
		_, ok = nilSub.CustomLimit(subscription.LimitGroups)
		assert.False(t, ok)
	})
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	orgID := uuid.New()

	t.Run("get missing", func(t *testing.T) {
		t.Parallel()

		store := subscription.NewMemoryStore()
		_, err := store.Get(ctx, uuid.New())
		assert.ErrorIs(t, err, subscription.ErrSubscriptionNotFound)
	})

	t.Run("save then get returns a copy", func(t *testing.T) {
		t.Parallel()

		store := subscription.NewMemoryStore()
		sub := &subscription.Subscription{
			OrgID:        orgID,
			PlanID:       "starter",
			PlanName:     "Starter",
			Status:       subscription.StatusActive,
			CustomLimits: map[subscription.LimitKey]int64{subscription.LimitGroups: 10},
		}
		require.NoError(t, store.Save(ctx, sub))

		got, err := store.Get(ctx, orgID)
		require.NoError(t, err)
		assert.Equal(t, sub, got)

		// Mutating the returned copy must not leak into the store.
		got.CustomLimits[subscription.LimitGroups] = 99
		again, err := store.Get(ctx, orgID)
		require.NoError(t, err)
		assert.Equal(t, int64(10), again.CustomLimits[subscription.LimitGroups])
	})
}

func TestParseCatalog(t *testing.T) {
	t.Parallel()

	t.Run("valid catalog", func(t *testing.T) {
		t.Parallel()

		src, err := subscription.ParseCatalog([]byte(`
plans:
  - id: starter
    name: Starter
    limits:
      - key: groups
        value: 5
      - key: campaigns
        value: 10
  - id: pro
    name: Pro
    limits:
      - key: groups
        value: -1
`))
		require.NoError(t, err)

		limits, err := src.PlanLimits(context.Background(), "starter")
		require.NoError(t, err)
		require.Len(t, limits, 2)
		assert.Equal(t, subscription.PlanLimit{Key: subscription.LimitGroups, Value: 5}, limits[0])

		_, err = src.PlanLimits(context.Background(), "enterprise")
		assert.ErrorIs(t, err, subscription.ErrPlanNotFound)
	})

	t.Run("duplicate key rejected", func(t *testing.T) {
		t.Parallel()

		_, err := subscription.ParseCatalog([]byte(`
plans:
  - id: starter
    limits:
      - key: groups
        value: 5
      - key: groups
        value: 6
`))
		assert.ErrorIs(t, err, subscription.ErrFailedToLoadCatalog)
	})

	t.Run("empty plan id rejected", func(t *testing.T) {
		t.Parallel()

		_, err := subscription.ParseCatalog([]byte("plans:\n  - name: Oops\n"))
		assert.ErrorIs(t, err, subscription.ErrFailedToLoadCatalog)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		t.Parallel()

		_, err := subscription.ParseCatalog([]byte("{not yaml"))
		assert.ErrorIs(t, err, subscription.ErrFailedToLoadCatalog)
	})
}
