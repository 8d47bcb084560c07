package importer

import (
	"context"
	"time"

	cache "github.com/patrickmn/go-cache"
)

// CachedSource wraps another Source with a TTL cache so scheduled
// refreshes do not hammer a remote export endpoint that rarely
// changes between runs.
type CachedSource struct {
	inner Source
	cache *cache.Cache
	ttl   time.Duration
}

// NewCachedSource wraps the given source with the given TTL.
func NewCachedSource(inner Source, ttl time.Duration) *CachedSource {
	return &CachedSource{
		inner: inner,
		cache: cache.New(ttl, ttl*2),
		ttl:   ttl,
	}
}

// Name returns the inner source's name.
func (s *CachedSource) Name() string {
	return s.inner.Name()
}

// Fetch returns the cached text when present, otherwise fetches from
// the inner source and caches the result. Failed fetches are never
// cached.
func (s *CachedSource) Fetch(ctx context.Context) (string, error) {
	if cached, found := s.cache.Get(s.inner.Name()); found {
		if text, ok := cached.(string); ok {
			return text, nil
		}
	}

	text, err := s.inner.Fetch(ctx)
	if err != nil {
		return "", err
	}

	s.cache.Set(s.inner.Name(), text, s.ttl)
	return text, nil
}

// Invalidate drops the cached entry so the next Fetch hits the inner
// source.
func (s *CachedSource) Invalidate() {
	s.cache.Delete(s.inner.Name())
}
