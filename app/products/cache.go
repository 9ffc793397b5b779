package products

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// CachedStore is a read-through cache decorator over another Store.
// Only single-entity reads are cached; page queries always hit the inner
// store, which keeps listings consistent without invalidation bookkeeping.
// Cache failures degrade to inner-store reads, never to request failures.
type CachedStore struct {
	inner  Store
	client *redis.Client
	ttl    time.Duration
}

// NewCachedStore wraps inner with a Redis read-through cache.
func NewCachedStore(inner Store, client *redis.Client, ttl time.Duration) *CachedStore {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CachedStore{inner: inner, client: client, ttl: ttl}
}

func cacheKey(id int64) string {
	return fmt.Sprintf("product:%d", id)
}

func (s *CachedStore) FetchByID(ctx context.Context, id int64) (Product, error) {
	if data, err := s.client.Get(ctx, cacheKey(id)).Bytes(); err == nil {
		var p Product
		if err := json.Unmarshal(data, &p); err == nil {
			return p, nil
		}
		// Corrupt entry, drop it and fall through to the inner store
		s.client.Del(ctx, cacheKey(id))
	}

	p, err := s.inner.FetchByID(ctx, id)
	if err != nil {
		return Product{}, err
	}

	if data, err := json.Marshal(p); err == nil {
		s.client.Set(ctx, cacheKey(p.ID), data, s.ttl)
	}
	return p, nil
}

func (s *CachedStore) FetchPage(ctx context.Context, page, pageSize int) ([]Product, error) {
	return s.inner.FetchPage(ctx, page, pageSize)
}

func (s *CachedStore) Create(ctx context.Context, p Product) (Product, error) {
	created, err := s.inner.Create(ctx, p)
	if err != nil {
		return Product{}, err
	}

	// Seed the cache so the Location re-fetch is warm
	if data, err := json.Marshal(created); err == nil {
		s.client.Set(ctx, cacheKey(created.ID), data, s.ttl)
	}
	return created, nil
}
