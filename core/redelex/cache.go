package redelex

import (
	"context"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// API is the set of Redelex lookups the panel uses.
type API interface {
	GetProceso(ctx context.Context, id int) (*Proceso, error)
	ProcesosPorIdentificacion(ctx context.Context, identificacion string) ([]Proceso, error)
}

type cacheEntry struct {
	value   any
	expires time.Time
}

// CachedClient keeps successful answers of next for a short TTL and
// collapses concurrent identical lookups into one upstream call.
type CachedClient struct {
	next API
	ttl  time.Duration

	mu      sync.RWMutex
	entries map[string]cacheEntry
	sf      singleflight.Group
	now     func() time.Time
}

// NewCachedClient wraps next. A ttl of zero still deduplicates concurrent
// calls but stores nothing.
func NewCachedClient(next API, ttl time.Duration) *CachedClient {
	return &CachedClient{
		next:    next,
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

// GetProceso implements API.
func (c *CachedClient) GetProceso(ctx context.Context, id int) (*Proceso, error) {
	v, err := c.load(ctx, "proceso|"+strconv.Itoa(id), func(ctx context.Context) (any, error) {
		return c.next.GetProceso(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return cloneProceso(v.(*Proceso)), nil
}

// ProcesosPorIdentificacion implements API. Callers get their own slice.
func (c *CachedClient) ProcesosPorIdentificacion(ctx context.Context, identificacion string) ([]Proceso, error) {
	v, err := c.load(ctx, "ident|"+identificacion, func(ctx context.Context) (any, error) {
		return c.next.ProcesosPorIdentificacion(ctx, identificacion)
	})
	if err != nil {
		return nil, err
	}
	cached := v.([]Proceso)
	out := make([]Proceso, len(cached))
	for i := range cached {
		out[i] = *cloneProceso(&cached[i])
	}
	return out, nil
}

func cloneProceso(p *Proceso) *Proceso {
	cp := *p
	cp.Actuaciones = append([]Actuacion(nil), p.Actuaciones...)
	cp.Medidas = append([]MedidaCaut(nil), p.Medidas...)
	return &cp
}

// load returns the cached value of key or runs fetch once for all concurrent
// callers. fetch ignores caller cancellation; each caller stops waiting when
// its own ctx is done.
func (c *CachedClient) load(ctx context.Context, key string, fetch func(context.Context) (any, error)) (any, error) {
	// Fast path: fresh entry
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if ok && c.now().Before(e.expires) {
		return e.value, nil
	}

	shared := context.WithoutCancel(ctx)
	ch := c.sf.DoChan(key, func() (any, error) {
		v, err := fetch(shared)
		if err != nil {
			return nil, err
		}
		if c.ttl > 0 {
			c.mu.Lock()
			c.entries[key] = cacheEntry{value: v, expires: c.now().Add(c.ttl)}
			c.mu.Unlock()
		}
		return v, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		return res.Val, res.Err
	}
}

// Purge drops expired entries and returns how many were removed.
func (c *CachedClient) Purge() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	n := 0
	for k, e := range c.entries {
		if !now.Before(e.expires) {
			delete(c.entries, k)
			n++
		}
	}
	return n
}

// New builds the API for cfg: the HTTP client, cached when CacheSeconds is set.
func New(cfg Config) API {
	client := NewClient(cfg)
	if cfg.CacheSeconds <= 0 {
		return client
	}
	return NewCachedClient(client, time.Duration(cfg.CacheSeconds)*time.Second)
}
