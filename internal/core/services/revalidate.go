package services

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"

	ports "aivault-portal/internal/core/ports/output"
)

// Freshness tells a renderer whether it is looking at cached or just-fetched data.
type Freshness int

const (
	Stale Freshness = iota
	Fresh
)

func (f Freshness) String() string {
	if f == Fresh {
		return "fresh"
	}
	return "stale"
}

// Revalidate renders whatever load can assemble from the response cache, then loads again
// from the network and renders the result. The stale render is skipped when the page's
// primary resource is not cached. Only the network load's error is returned.
func Revalidate[T any](ctx context.Context, load func(context.Context) (T, error), render func(T, Freshness)) error {
	if cached, err := load(ports.CacheOnly(ctx)); err == nil {
		render(cached, Stale)
	}

	fresh, err := load(ctx)
	if err != nil {
		return err
	}
	render(fresh, Fresh)
	return nil
}

// soft runs a secondary fetch for a page. Any failure leaves fallback in place; cache misses
// during a stale pass are expected and not logged.
func soft[T any](ctx context.Context, what string, fallback T, fetch func(context.Context) (T, error)) T {
	v, err := fetch(ctx)
	if err != nil {
		if !errors.Is(err, ports.ErrCacheMiss) && ctx.Err() == nil {
			log.WithError(err).WithField("part", what).Warn("page part failed, using default")
		}
		return fallback
	}
	return v
}
