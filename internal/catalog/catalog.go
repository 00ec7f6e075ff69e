// Package catalog memoizes loaded datasets and their lookup indexes by location.
// An entry is built once and reused until Reload or Invalidate replaces it.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Yates-Labs/floriography/internal/dataset"
	"github.com/Yates-Labs/floriography/internal/lookup"
)

// Entry is one loaded dataset. Entries are immutable and replaced wholesale.
type Entry struct {
	Location string
	Table    *dataset.Table
	Index    *lookup.Index
	LoadedAt time.Time
}

// LoadFunc reads the dataset at location.
type LoadFunc func(ctx context.Context, location string) (*dataset.Table, error)

// Cache maps dataset locations to loaded entries. Failed loads are not cached.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*Entry
	load    LoadFunc
	now     func() time.Time
}

// New creates a Cache using DefaultLoad.
func New() *Cache {
	return NewWithLoader(DefaultLoad)
}

// NewWithLoader creates a Cache with a custom loader.
func NewWithLoader(load LoadFunc) *Cache {
	return &Cache{
		entries: make(map[string]*Entry),
		load:    load,
		now:     time.Now,
	}
}

// DefaultLoad reads "<repo-url>#<path>" locations from git and everything
// else from the local filesystem.
func DefaultLoad(ctx context.Context, location string) (*dataset.Table, error) {
	if loc, ok := dataset.ParseGitLocation(location); ok {
		return dataset.LoadFromGit(ctx, loc)
	}
	return dataset.Load(location)
}

// Get returns the cached entry for location, loading it on first use.
func (c *Cache) Get(ctx context.Context, location string) (*Entry, error) {
	c.mu.RLock()
	entry, ok := c.entries[location]
	c.mu.RUnlock()
	if ok {
		return entry, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another caller may have loaded it while we waited for the write lock.
	if entry, ok := c.entries[location]; ok {
		return entry, nil
	}
	return c.buildLocked(ctx, location)
}

// Reload rebuilds the entry for location and replaces the cached one. On
// failure the previous entry is dropped, so a broken file is not served stale.
func (c *Cache) Reload(ctx context.Context, location string) (*Entry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, location)
	return c.buildLocked(ctx, location)
}

// Invalidate drops the entry for location.
func (c *Cache) Invalidate(location string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, location)
}

// Locations returns the currently cached locations.
func (c *Cache) Locations() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]string, 0, len(c.entries))
	for loc := range c.entries {
		out = append(out, loc)
	}
	return out
}

func (c *Cache) buildLocked(ctx context.Context, location string) (*Entry, error) {
	table, err := c.load(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("load dataset %s: %w", location, err)
	}

	idx := lookup.Build(table)
	for _, d := range idx.Duplicates {
		slog.Warn("duplicate dataset key, later row wins",
			"location", location, "kind", d.Kind, "key", d.Key,
			"previous", d.Previous, "current", d.Current)
	}

	entry := &Entry{
		Location: location,
		Table:    table,
		Index:    idx,
		LoadedAt: c.now(),
	}
	c.entries[location] = entry

	slog.Info("dataset loaded",
		"location", location, "records", table.Len(), "skipped", table.Skipped,
		"labels", idx.Len(), "meanings", len(idx.LabelByMeaning))
	return entry, nil
}
