package usage

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// DefaultCacheTTL keeps counts fresh enough for gating while absorbing
// bursts of checks during bulk creation flows.
const DefaultCacheTTL = 30 * time.Second

// CachedStore is a read-through Redis cache in front of a Store. Cache
// failures degrade to the inner store; a stale or missing cache never
// breaks counting.
type CachedStore struct {
	inner Store
	rdb   *redis.Client
	ttl   time.Duration
}

// NewCachedStore wraps a Store with a Redis read-through cache.
func NewCachedStore(inner Store, rdb *redis.Client, ttl time.Duration) *CachedStore {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedStore{inner: inner, rdb: rdb, ttl: ttl}
}

func (c *CachedStore) cached(ctx context.Context, key string, fetch func() (int64, error)) (int64, error) {
	if raw, err := c.rdb.Get(ctx, key).Result(); err == nil {
		if n, parseErr := strconv.ParseInt(raw, 10, 64); parseErr == nil {
			return n, nil
		}
	}

	n, err := fetch()
	if err != nil {
		return 0, err
	}
	// Best effort: a failed SET just means the next call recounts.
	_ = c.rdb.Set(ctx, key, strconv.FormatInt(n, 10), c.ttl).Err()
	return n, nil
}

func (c *CachedStore) CountTeamMembers(ctx context.Context, orgID uuid.UUID) (int64, error) {
	return c.cached(ctx, fmt.Sprintf("usage:%s:team_members", orgID), func() (int64, error) {
		return c.inner.CountTeamMembers(ctx, orgID)
	})
}

func (c *CachedStore) CountGroups(ctx context.Context, orgID uuid.UUID) (int64, error) {
	return c.cached(ctx, fmt.Sprintf("usage:%s:groups", orgID), func() (int64, error) {
		return c.inner.CountGroups(ctx, orgID)
	})
}

func (c *CachedStore) CountCampaignsSince(ctx context.Context, orgID uuid.UUID, since time.Time) (int64, error) {
	// The boundary is part of the key so a month rollover never serves the
	// previous month's count.
	key := fmt.Sprintf("usage:%s:campaigns:%d", orgID, since.Unix())
	return c.cached(ctx, key, func() (int64, error) {
		return c.inner.CountCampaignsSince(ctx, orgID, since)
	})
}

func (c *CachedStore) CountIntegrations(ctx context.Context, orgID uuid.UUID) (int64, error) {
	return c.cached(ctx, fmt.Sprintf("usage:%s:integrations", orgID), func() (int64, error) {
		return c.inner.CountIntegrations(ctx, orgID)
	})
}

func (c *CachedStore) CountLinks(ctx context.Context, orgID uuid.UUID) (int64, error) {
	return c.cached(ctx, fmt.Sprintf("usage:%s:links", orgID), func() (int64, error) {
		return c.inner.CountLinks(ctx, orgID)
	})
}

// Invalidate drops the cached simple counts for an org after a write.
// Campaign keys expire on their own; their boundary-scoped keys are not
// enumerable without a scan.
func (c *CachedStore) Invalidate(ctx context.Context, orgID uuid.UUID) error {
	keys := []string{
		fmt.Sprintf("usage:%s:team_members", orgID),
		fmt.Sprintf("usage:%s:groups", orgID),
		fmt.Sprintf("usage:%s:integrations", orgID),
		fmt.Sprintf("usage:%s:links", orgID),
	}
	return c.rdb.Del(ctx, keys...).Err()
}
