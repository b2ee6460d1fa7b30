package handler

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"migel-service/internal/migel/service"
)

// LoadFunc produces a fully built matcher from the current catalog source.
type LoadFunc func(ctx context.Context) (*service.Matcher, error)

// Catalog owns the matcher being served. Refresh builds a new matcher and
// swaps it in atomically; requests in flight keep the index they started
// with. Concurrent refresh triggers (cron + endpoint) collapse into one load.
type Catalog struct {
	cur  atomic.Pointer[service.Matcher]
	load LoadFunc
	sf   singleflight.Group
}

func NewCatalog(load LoadFunc) *Catalog {
	return &Catalog{load: load}
}

// Matcher returns the current matcher, nil before the first successful load.
func (c *Catalog) Matcher() *service.Matcher {
	return c.cur.Load()
}

// Refresh rebuilds the matcher from source. On failure the previous matcher
// stays in place.
func (c *Catalog) Refresh(ctx context.Context) error {
	_, err, _ := c.sf.Do("refresh", func() (any, error) {
		m, err := c.load(ctx)
		if err != nil {
			return nil, err
		}
		c.cur.Store(m)
		return nil, nil
	})
	return err
}
