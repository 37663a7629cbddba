package renderer

import (
	"context"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/seuros/cypher-ast/src/cypher"
)

// DefaultCacheSize bounds the number of cached render results.
const DefaultCacheSize = 1000

// RenderCache memoizes render results keyed by statement identity.
// Statements are immutable and rendering is deterministic, so a cached
// result never goes stale. Safe for concurrent use.
type RenderCache struct {
	entries *lru.Cache[*cypher.Statement, string]
	logger  Logger

	hits   atomic.Int64
	misses atomic.Int64

	instrumentation *Instrumentation
}

// NewRenderCache creates a cache bounded to size entries. A size of zero
// falls back to DefaultCacheSize.
func NewRenderCache(size int) (*RenderCache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	entries, err := lru.New[*cypher.Statement, string](size)
	if err != nil {
		return nil, err
	}
	return &RenderCache{entries: entries, logger: NewNoOpLogger()}, nil
}

// NewInstrumentedRenderCache creates a cache that reports hits and
// misses through the given instrumentation.
func NewInstrumentedRenderCache(size int, in *Instrumentation) (*RenderCache, error) {
	cache, err := NewRenderCache(size)
	if err != nil {
		return nil, err
	}
	cache.instrumentation = in
	return cache, nil
}

// SetLogger replaces the cache's logger. Pass nil to silence it.
func (c *RenderCache) SetLogger(logger Logger) {
	if logger == nil {
		logger = NewNoOpLogger()
	}
	c.logger = logger
}

// Render returns the text for the statement, rendering it at most once
// per cache residency.
func (c *RenderCache) Render(statement *cypher.Statement) string {
	if text, ok := c.entries.Get(statement); ok {
		c.hits.Add(1)
		if c.instrumentation != nil {
			c.instrumentation.recordCacheHit(context.Background())
		}
		return text
	}

	c.misses.Add(1)
	if c.instrumentation != nil {
		c.instrumentation.recordCacheMiss(context.Background())
	}

	text := Render(statement)
	evicted := c.entries.Add(statement, text)
	c.logger.Debug("render cache miss", "len", len(text), "evicted", evicted)
	return text
}

// Stats returns the number of cache hits and misses so far.
func (c *RenderCache) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

// Len returns the number of cached statements.
func (c *RenderCache) Len() int { return c.entries.Len() }

// Purge drops all cached results.
func (c *RenderCache) Purge() { c.entries.Purge() }
