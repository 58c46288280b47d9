// Package sheetcache memoizes a SheetSource so each worksheet is fetched once
// per run even when several explorers read it concurrently.
package sheetcache

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"explorergen/domain/sheet"
	"explorergen/ports"
)

// Cache wraps a SheetSource. Failed fetches are not cached.
type Cache struct {
	source ports.SheetSource
	group  singleflight.Group

	mu     sync.RWMutex
	sheets map[sheet.Ref]*sheet.Sheet
	misses int
}

func New(source ports.SheetSource) *Cache {
	return &Cache{source: source, sheets: make(map[sheet.Ref]*sheet.Sheet)}
}

// Fetch returns the cached sheet or fetches it, collapsing concurrent calls
// for the same ref.
func (c *Cache) Fetch(ctx context.Context, ref sheet.Ref) (*sheet.Sheet, error) {
	c.mu.RLock()
	s, ok := c.sheets[ref]
	c.mu.RUnlock()
	if ok {
		return s, nil
	}

	v, err, _ := c.group.Do(ref.String(), func() (interface{}, error) {
		c.mu.RLock()
		s, ok := c.sheets[ref]
		c.mu.RUnlock()
		if ok {
			return s, nil
		}
		s, err := c.source.Fetch(ctx, ref)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.sheets[ref] = s
		c.misses++
		c.mu.Unlock()
		return s, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*sheet.Sheet), nil
}

// Sheets returns every cached sheet.
func (c *Cache) Sheets() []*sheet.Sheet {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*sheet.Sheet, 0, len(c.sheets))
	for _, s := range c.sheets {
		out = append(out, s)
	}
	return out
}

// Fetched is the number of fetches that reached the underlying source.
func (c *Cache) Fetched() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.misses
}

// Reset drops every cached sheet.
func (c *Cache) Reset() {
	c.mu.Lock()
	c.sheets = make(map[sheet.Ref]*sheet.Sheet)
	c.misses = 0
	c.mu.Unlock()
}
