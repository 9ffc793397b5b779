package products_test

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bindkit/app/products"
)

// unreachableRedis returns a client whose every command fails fast,
// for exercising the cache degradation path without a Redis instance.
func unreachableRedis() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:            "127.0.0.1:1",
		DialTimeout:     50 * time.Millisecond,
		ReadTimeout:     50 * time.Millisecond,
		WriteTimeout:    50 * time.Millisecond,
		MaxRetries:      -1,
		PoolSize:        1,
		MinIdleConns:    0,
		ConnMaxIdleTime: time.Millisecond,
	})
}

func TestCachedStoreDegradesWithoutRedis(t *testing.T) {
	t.Parallel()

	inner := products.NewMemoryStore()
	store := products.NewCachedStore(inner, unreachableRedis(), time.Minute)

	created, err := store.Create(context.Background(), products.Product{Name: "Gizmo", Price: 1})
	require.NoError(t, err)

	got, err := store.FetchByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = store.FetchByID(context.Background(), 999)
	assert.ErrorIs(t, err, products.ErrProductNotFound)

	page, err := store.FetchPage(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Len(t, page, 1)
}
