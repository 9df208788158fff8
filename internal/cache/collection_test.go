package cache

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/fekuna/omnipos-retail-view/internal/logger"
	"github.com/fekuna/omnipos-retail-view/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	mu      sync.Mutex
	data    map[string][]byte
	ttls    map[string]time.Duration
	failGet error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (m *memoryStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failGet != nil {
		return nil, m.failGet
	}
	v, ok := m.data[key]
	if !ok {
		return nil, ErrMiss
	}
	return v, nil
}

func (m *memoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	m.ttls[key] = ttl
	return nil
}

func (m *memoryStore) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

func countingFetch(calls *int, products []model.Product) func(context.Context) ([]model.Product, error) {
	return func(context.Context) ([]model.Product, error) {
		*calls++
		return products, nil
	}
}

func TestCollection_CachesPerMerchant(t *testing.T) {
	store := newMemoryStore()
	c := NewCollection[model.Product]("products", store, 0, logger.NewNop())
	ctx := context.Background()
	batch := []model.Product{{ID: "p1", Name: "Coke 50cl", CurrentStock: 12, MinStock: 30}}

	calls := 0
	first, err := c.Load(ctx, "m1", countingFetch(&calls, batch))
	require.NoError(t, err)
	second, err := c.Load(ctx, "m1", countingFetch(&calls, batch))
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, first, second)
	assert.Equal(t, DefaultTTL, store.ttls["retailview:products:m1"])

	_, err = c.Load(ctx, "m2", countingFetch(&calls, batch))
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestCollection_Invalidate(t *testing.T) {
	store := newMemoryStore()
	c := NewCollection[model.Product]("products", store, time.Minute, logger.NewNop())
	ctx := context.Background()

	calls := 0
	_, _ = c.Load(ctx, "m1", countingFetch(&calls, nil))
	require.NoError(t, c.Invalidate(ctx, "m1"))
	_, _ = c.Load(ctx, "m1", countingFetch(&calls, nil))

	assert.Equal(t, 2, calls)
}

func TestCollection_FetchErrorIsNotCached(t *testing.T) {
	store := newMemoryStore()
	c := NewCollection[model.Product]("products", store, time.Minute, logger.NewNop())

	_, err := c.Load(context.Background(), "m1", func(context.Context) ([]model.Product, error) {
		return nil, errors.New("backend down")
	})

	assert.EqualError(t, err, "backend down")
	assert.Empty(t, store.data)
}

func TestCollection_CacheFailureFallsBackToFetch(t *testing.T) {
	store := newMemoryStore()
	store.failGet = errors.New("connection refused")
	c := NewCollection[model.Product]("products", store, time.Minute, logger.NewNop())

	calls := 0
	records, err := c.Load(context.Background(), "m1", countingFetch(&calls, []model.Product{{ID: "p1"}}))

	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, 1, calls)
}

func TestCollection_NilStorePassesThrough(t *testing.T) {
	c := NewCollection[model.Product]("products", nil, 0, logger.NewNop())

	calls := 0
	_, _ = c.Load(context.Background(), "m1", countingFetch(&calls, nil))
	_, _ = c.Load(context.Background(), "m1", countingFetch(&calls, nil))

	assert.Equal(t, 2, calls)
	assert.NoError(t, c.Invalidate(context.Background(), "m1"))

	var none *Collection[model.Product]
	_, err := none.Load(context.Background(), "m1", countingFetch(&calls, nil))
	assert.NoError(t, err)
}
