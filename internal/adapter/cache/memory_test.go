package cache

import (
	"context"
	"testing"
	"time"

	"dolarbot/pkg/logger"
)

func TestMemoryCache_GetSet(t *testing.T) {

	c := NewMemoryCache(5*time.Minute, logger.NewLogger("error"))
	ctx := context.Background()

	if _, found := c.Get(ctx, "price_blue"); found {
		t.Fatal("Expected miss on empty cache")
	}

	c.Set(ctx, "price_blue", "report")

	value, found := c.Get(ctx, "price_blue")
	if !found {
		t.Fatal("Expected hit after Set")
	}
	if value != "report" {
		t.Errorf("Expected %q, got %q", "report", value)
	}

	if _, found := c.Get(ctx, "price_oficial"); found {
		t.Error("Expected miss for a different key")
	}
}

func TestMemoryCache_TTLExpiry(t *testing.T) {

	c := NewMemoryCache(300*time.Second, logger.NewLogger("error"))
	ctx := context.Background()

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	c.Set(ctx, "price_blue", "report")

	// Just inside the window.
	now = now.Add(299 * time.Second)
	if _, found := c.Get(ctx, "price_blue"); !found {
		t.Error("Expected hit inside TTL window")
	}

	// At the boundary the entry is stale.
	now = now.Add(1 * time.Second)
	if _, found := c.Get(ctx, "price_blue"); found {
		t.Error("Expected miss once TTL elapsed")
	}
}

func TestMemoryCache_ClearExpired(t *testing.T) {

	c := NewMemoryCache(300*time.Second, logger.NewLogger("error"))
	ctx := context.Background()

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	c.Set(ctx, "price_blue", "old")
	now = now.Add(301 * time.Second)
	c.Set(ctx, "price_oficial", "fresh")

	if err := c.ClearExpired(ctx); err != nil {
		t.Fatalf("ClearExpired returned error: %v", err)
	}

	c.mutex.RLock()
	defer c.mutex.RUnlock()
	if _, ok := c.entries["price_blue"]; ok {
		t.Error("Expected expired entry to be removed")
	}
	if _, ok := c.entries["price_oficial"]; !ok {
		t.Error("Expected fresh entry to survive the sweep")
	}
}
