// Package factorcache provides an optional read-through cache in front of the
// factor catalog. Only successful resolutions are cached, each for a bounded
// TTL, and a missing factor is looked up again on every call.
//
// A cached entry can be stale for up to its TTL: a version published with a
// later valid_from is not seen until the entry expires or the cache is purged
// (the server purges on SIGHUP).
package factorcache

import (
	"context"
	"log/slog"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"

	"github.com/greencampus/emission-engine/internal/domain"
)

type resolver interface {
	Resolve(ctx context.Context, category, country string, date time.Time) (*domain.ResolvedFactor, error)
}

// Cache wraps a factor resolver with an expirable LRU. Concurrent misses for
// the same key share one catalog query.
type Cache struct {
	next  resolver
	lru   *expirable.LRU[string, domain.ResolvedFactor]
	group singleflight.Group
	log   *slog.Logger
}

// New creates a cache holding at most size entries for ttl each.
func New(log *slog.Logger, next resolver, size int, ttl time.Duration) *Cache {
	return &Cache{
		next: next,
		lru:  expirable.NewLRU[string, domain.ResolvedFactor](size, nil, ttl),
		log:  log.With("component", "factorcache"),
	}
}

// Resolve returns the cached factor for (category, country, date) or
// delegates to the wrapped resolver. Errors, including domain.ErrNotFound,
// are returned as is and never cached.
func (c *Cache) Resolve(ctx context.Context, category, country string, date time.Time) (*domain.ResolvedFactor, error) {
	key := cacheKey(category, country, date)

	if f, ok := c.lru.Get(key); ok {
		return &f, nil
	}

	// The lookup is shared by every caller waiting on key, so it must not
	// inherit one caller's cancellation. Each caller still stops waiting when
	// its own ctx ends.
	ch := c.group.DoChan(key, func() (any, error) {
		f, err := c.next.Resolve(context.WithoutCancel(ctx), category, country, date)
		if err != nil {
			return nil, err
		}
		c.lru.Add(key, *f)
		return *f, nil
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		return nil, res.Err
	}
	if res.Shared {
		c.log.DebugContext(ctx, "factor lookup shared", slog.String("key", key))
	}

	f := res.Val.(domain.ResolvedFactor)
	return &f, nil
}

// Len returns the number of live entries.
func (c *Cache) Len() int {
	return c.lru.Len()
}

// Purge drops every entry.
func (c *Cache) Purge() {
	c.lru.Purge()
}

func cacheKey(category, country string, date time.Time) string {
	return category + "|" + country + "|" + date.UTC().Format(domain.DateLayout)
}
