package observability

import (
	"context"
	"sync/atomic"
	"time"
)

// Counters tallies events. It is safe for concurrent use and can be
// registered as both run and cache hooks.
type Counters struct {
	RunsStarted   atomic.Int64
	RunsSucceeded atomic.Int64
	RunsFailed    atomic.Int64
	Renders       atomic.Int64
	CacheHits     atomic.Int64
	CacheMisses   atomic.Int64
	CacheSets     atomic.Int64

	// Next receives every event after counting. Optional.
	Next interface {
		RunHooks
		CacheHooks
	}
}

func (c *Counters) OnRunStart(ctx context.Context, id string, biscuits int) {
	c.RunsStarted.Add(1)
	if c.Next != nil {
		c.Next.OnRunStart(ctx, id, biscuits)
	}
}

func (c *Counters) OnRunComplete(ctx context.Context, id string, biscuits int, cost float64, d time.Duration, err error) {
	if err != nil {
		c.RunsFailed.Add(1)
	} else {
		c.RunsSucceeded.Add(1)
	}
	if c.Next != nil {
		c.Next.OnRunComplete(ctx, id, biscuits, cost, d, err)
	}
}

func (c *Counters) OnRenderComplete(ctx context.Context, id, format string, size int, d time.Duration, err error) {
	if err == nil {
		c.Renders.Add(1)
	}
	if c.Next != nil {
		c.Next.OnRenderComplete(ctx, id, format, size, d, err)
	}
}

func (c *Counters) OnCacheHit(ctx context.Context, key string) {
	c.CacheHits.Add(1)
	if c.Next != nil {
		c.Next.OnCacheHit(ctx, key)
	}
}

func (c *Counters) OnCacheMiss(ctx context.Context, key string) {
	c.CacheMisses.Add(1)
	if c.Next != nil {
		c.Next.OnCacheMiss(ctx, key)
	}
}

func (c *Counters) OnCacheSet(ctx context.Context, key string, size int) {
	c.CacheSets.Add(1)
	if c.Next != nil {
		c.Next.OnCacheSet(ctx, key, size)
	}
}

var (
	_ RunHooks   = (*Counters)(nil)
	_ CacheHooks = (*Counters)(nil)
)
