package mdview

import (
	"context"
	"sync"
	"time"
)

// CacheEntry is one published render.
type CacheEntry struct {
	HTML        string
	Version     uint64
	GeneratedAt time.Time
}

// RenderCache holds the latest rendered HTML and a monotonically
// increasing version counter. It is the single source of truth served
// to clients. Entries are replaced wholesale; readers never observe a
// partially written entry. Rendering happens outside the lock; only
// the entry swap is inside it.
type RenderCache struct {
	mu      sync.Mutex
	entry   CacheEntry
	changed chan struct{}
}

// NewRenderCache returns an empty cache at version zero.
func NewRenderCache() *RenderCache {
	return &RenderCache{changed: make(chan struct{})}
}

// Publish replaces the current entry and bumps the version. It returns
// the new version and wakes every waiter.
func (c *RenderCache) Publish(html string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entry = CacheEntry{
		HTML:        html,
		Version:     c.entry.Version + 1,
		GeneratedAt: time.Now(),
	}
	close(c.changed)
	c.changed = make(chan struct{})
	return c.entry.Version
}

// Read returns the current entry.
func (c *RenderCache) Read() CacheEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entry
}

// Wait blocks until the version advances past after or ctx is done. It
// returns the version it last observed and whether it advanced.
func (c *RenderCache) Wait(ctx context.Context, after uint64) (uint64, bool) {
	for {
		c.mu.Lock()
		version := c.entry.Version
		changed := c.changed
		c.mu.Unlock()
		if version > after {
			return version, true
		}
		select {
		case <-ctx.Done():
			return version, false
		case <-changed:
		}
	}
}
