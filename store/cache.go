package store

import (
	"context"
	"sync"
	"time"
)

type snapshot struct {
	docs      []Doc
	gen       uint64
	fetchedAt time.Time
}

// Cache keeps one recent snapshot per collection so the dashboard does not
// refetch every collection on every request. Each fetch carries a generation
// number: if a newer fetch completes first, the older result is discarded
// rather than applied, so the served snapshot is always the latest fetch's
// (last write wins).
type Cache struct {
	store  RecordStore
	maxAge time.Duration

	mu    sync.Mutex
	snaps map[string]snapshot
	gens  map[string]uint64
}

// NewCache wraps a store with per-collection snapshot caching. maxAge bounds
// snapshot staleness.
func NewCache(s RecordStore, maxAge time.Duration) *Cache {
	return &Cache{
		store:  s,
		maxAge: maxAge,
		snaps:  make(map[string]snapshot),
		gens:   make(map[string]uint64),
	}
}

// Fetch returns the cached snapshot when fresh, otherwise fetches from the
// underlying store.
func (c *Cache) Fetch(ctx context.Context, collection string) ([]Doc, error) {
	c.mu.Lock()
	if snap, ok := c.snaps[collection]; ok && time.Since(snap.fetchedAt) < c.maxAge {
		c.mu.Unlock()
		return snap.docs, nil
	}
	c.gens[collection]++
	myGen := c.gens[collection]
	c.mu.Unlock()

	docs, err := c.store.FetchAll(ctx, collection)

	c.mu.Lock()
	defer c.mu.Unlock()
	if snap, ok := c.snaps[collection]; ok && snap.gen > myGen {
		// A later fetch already landed; discard ours and serve the
		// newer snapshot.
		return snap.docs, nil
	}
	if err != nil {
		return nil, err
	}
	c.snaps[collection] = snapshot{docs: docs, gen: myGen, fetchedAt: time.Now()}
	return docs, nil
}

// Invalidate drops the cached snapshot after a write so the next read
// refetches.
func (c *Cache) Invalidate(collection string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.snaps, collection)
}
