package cache

import (
	"context"
	"sync"
	"time"

	"dolarbot/pkg/logger"
)

type entry struct {
	value    string
	storedAt time.Time
}

// MemoryCache is a process-wide TTL cache for rendered report strings.
// Expiry is lazy: Get treats stale entries as misses, ClearExpired removes
// them in bulk.
type MemoryCache struct {
	entries  map[string]entry
	mutex    sync.RWMutex
	cacheTTL time.Duration
	log      *logger.Logger
	now      func() time.Time
}

func NewMemoryCache(cacheTTL time.Duration, log *logger.Logger) *MemoryCache {
	return &MemoryCache{
		entries:  make(map[string]entry),
		cacheTTL: cacheTTL,
		log:      log,
		now:      time.Now,
	}
}

func (c *MemoryCache) Get(ctx context.Context, key string) (string, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	e, found := c.entries[key]
	if !found {
		c.log.Debug("Cache miss", "key", key)
		return "", false
	}

	if c.now().Sub(e.storedAt) >= c.cacheTTL {
		c.log.Debug("Cache entry expired", "key", key)
		return "", false
	}

	c.log.Debug("Cache hit", "key", key)
	return e.value, true
}

func (c *MemoryCache) Set(ctx context.Context, key, value string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.entries[key] = entry{value: value, storedAt: c.now()}
	c.log.Debug("Cache set", "key", key)
}

func (c *MemoryCache) ClearExpired(ctx context.Context) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	now := c.now()
	expiredKeys := make([]string, 0)

	for key, e := range c.entries {
		if now.Sub(e.storedAt) >= c.cacheTTL {
			expiredKeys = append(expiredKeys, key)
		}
	}

	for _, key := range expiredKeys {
		delete(c.entries, key)
		c.log.Debug("Removed expired cache entry", "key", key)
	}

	if len(expiredKeys) > 0 {
		c.log.Info("Cleared expired cache entries", "count", len(expiredKeys))
	}
	return nil
}
