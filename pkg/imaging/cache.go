package imaging

import (
	"context"
	"sync"
)

// Cached wraps a processor with idempotency-key caching. A key that already
// produced a result is never reprocessed; requests without a key bypass the
// cache entirely.
type Cached struct {
	inner Processor

	mu      sync.Mutex
	results map[string]Result
}

// NewCached wraps a processor.
func NewCached(inner Processor) *Cached {
	return &Cached{inner: inner, results: make(map[string]Result)}
}

// Process serves cache hits without touching the inner processor. Misses run
// the inner processor and record the result, including failed-but-degraded
// passthrough results, so retries stay idempotent.
func (c *Cached) Process(ctx context.Context, req Request) (Result, error) {
	if req.Key == "" {
		return c.inner.Process(ctx, req)
	}

	c.mu.Lock()
	if res, ok := c.results[req.Key]; ok {
		c.mu.Unlock()
		return res, nil
	}
	c.mu.Unlock()

	res, err := c.inner.Process(ctx, req)
	if err != nil {
		return Result{}, err
	}

	c.mu.Lock()
	c.results[req.Key] = res
	c.mu.Unlock()
	return res, nil
}

// Len reports the number of cached results.
func (c *Cached) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.results)
}
