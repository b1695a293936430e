package dataset

import (
	"context"
	"sync"

	"ecomdash/internal/domain/order"
)

// Cache memoizes loaded datasets keyed by source. The dataset is invariant
// across filter changes within a session, so it is loaded once per source and
// reused until explicitly invalidated. The cache is an explicit object rather
// than package state, so each server owns its lifetime.
type Cache struct {
	mu      sync.Mutex
	loader  Loader
	entries map[string][]*order.Order
}

func NewCache(loader Loader) *Cache {
	return &Cache{
		loader:  loader,
		entries: make(map[string][]*order.Order),
	}
}

// Get returns the normalized dataset for the source, loading it on first use.
// The lock is held across the load so concurrent requests for the same source
// trigger a single fetch.
func (c *Cache) Get(ctx context.Context, source string) ([]*order.Order, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if orders, ok := c.entries[source]; ok {
		return orders, nil
	}

	orders, err := c.loader.Load(ctx, source)
	if err != nil {
		return nil, err
	}
	c.entries[source] = orders
	return orders, nil
}

// Invalidate drops the cached dataset for the source, forcing a reload on the
// next Get.
func (c *Cache) Invalidate(source string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, source)
}
