package org

import (
	"context"
	"sync"
	"time"
)

// Cache stores resolved organizations between requests.
type Cache interface {
	Get(ctx context.Context, key string) (*Organization, bool)
	Set(ctx context.Context, key string, o *Organization, ttl time.Duration)
	Delete(ctx context.Context, key string)
	Close() error
}

type cacheItem struct {
	org       *Organization
	expiresAt time.Time
}

// memoryCache is the default in-process cache with periodic expiry sweeps.
type memoryCache struct {
	mu     sync.RWMutex
	items  map[string]cacheItem
	stop   chan struct{}
	closed bool
}

const cacheSweepInterval = time.Minute

// NewMemoryCache creates an in-memory organization cache.
func NewMemoryCache() Cache {
	c := &memoryCache{
		items: make(map[string]cacheItem),
		stop:  make(chan struct{}),
	}
	go c.sweep()
	return c
}

func (c *memoryCache) Get(ctx context.Context, key string) (*Organization, bool) {
	c.mu.RLock()
	item, ok := c.items[key]
	c.mu.RUnlock()

	if !ok || time.Now().After(item.expiresAt) {
		return nil, false
	}
	return item.org, true
}

func (c *memoryCache) Set(ctx context.Context, key string, o *Organization, ttl time.Duration) {
	if o == nil || ttl <= 0 {
		return
	}
	c.mu.Lock()
	c.items[key] = cacheItem{org: o, expiresAt: time.Now().Add(ttl)}
	c.mu.Unlock()
}

func (c *memoryCache) Delete(ctx context.Context, key string) {
	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()
}

func (c *memoryCache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		close(c.stop)
		c.closed = true
	}
	return nil
}

func (c *memoryCache) sweep() {
	ticker := time.NewTicker(cacheSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case now := <-ticker.C:
			c.mu.Lock()
			for key, item := range c.items {
				if now.After(item.expiresAt) {
					delete(c.items, key)
				}
			}
			c.mu.Unlock()
		}
	}
}
