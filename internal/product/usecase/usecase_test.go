package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/fekuna/omnipos-retail-view/internal/cache"
	"github.com/fekuna/omnipos-retail-view/internal/logger"
	"github.com/fekuna/omnipos-retail-view/internal/model"
	"github.com/fekuna/omnipos-retail-view/internal/product"
	"github.com/fekuna/omnipos-retail-view/internal/product/dto"
	"github.com/fekuna/omnipos-retail-view/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	mu       sync.Mutex
	calls    int
	products []model.Product
	err      error
}

func (f *fakeRepo) FindAll(_ context.Context, merchantID string) ([]model.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return append([]model.Product(nil), f.products...), nil
}

func (f *fakeRepo) set(products []model.Product, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.products = products
	f.err = err
}

func (f *fakeRepo) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type mapStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func (m *mapStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, cache.ErrMiss
	}
	return v, nil
}

func (m *mapStore) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *mapStore) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

func catalog() []model.Product {
	return []model.Product{
		{ID: "p1", Name: "Coke 50cl", Category: "Beverages", CurrentStock: 12, MinStock: 30, Price: 250},
		{ID: "p2", Name: "Peak Milk", Category: "Dairy", CurrentStock: 0, MinStock: 15, Price: 900},
		{ID: "p3", Name: "Indomie", Category: "Noodles", CurrentStock: 45, MinStock: 20, Price: 180},
	}
}

func list(t *testing.T, uc product.UseCase, query string, cfg view.FilterConfig) *dto.ProductList {
	t.Helper()
	out, err := uc.ListProducts(context.Background(), &dto.ListProductsInput{MerchantID: "m1", Query: query, Filter: cfg})
	require.NoError(t, err)
	return out
}

func TestListProducts_LoadsOnceAndDerives(t *testing.T) {
	repo := &fakeRepo{products: catalog()}
	uc := NewProductUseCase(repo, nil, logger.NewNop())

	low := list(t, uc, "", view.FilterConfig{Status: "low"})
	all := list(t, uc, "", view.FilterConfig{SortBy: view.ProductSortStock})

	require.Len(t, low.View.Items, 1)
	assert.Equal(t, "Coke 50cl", low.View.Items[0].Name)
	assert.Equal(t, []string{"p2", "p1", "p3"}, ids(all.View.Items))
	assert.Equal(t, low.Version, all.Version)
	assert.NoError(t, all.FetchErr)
	assert.Equal(t, 1, repo.callCount())
}

func TestRefreshProducts_FailureKeepsPreviousBatch(t *testing.T) {
	repo := &fakeRepo{products: catalog()}
	uc := NewProductUseCase(repo, nil, logger.NewNop())
	before := list(t, uc, "", view.FilterConfig{})

	repo.set(nil, errors.New("backend down"))
	err := uc.RefreshProducts(context.Background(), "m1")
	require.EqualError(t, err, "backend down")

	after := list(t, uc, "", view.FilterConfig{})
	assert.Equal(t, ids(before.View.Items), ids(after.View.Items))
	assert.EqualError(t, after.FetchErr, "backend down")
	assert.Equal(t, before.Version, after.Version)
}

func TestRefreshProducts_PicksUpNewRecords(t *testing.T) {
	repo := &fakeRepo{products: catalog()}
	uc := NewProductUseCase(repo, nil, logger.NewNop())
	_ = list(t, uc, "", view.FilterConfig{})

	repo.set(append(catalog(), model.Product{ID: "p4", Name: "Sugar", CurrentStock: 3, MinStock: 2}), nil)
	require.NoError(t, uc.RefreshProducts(context.Background(), "m1"))

	after := list(t, uc, "", view.FilterConfig{})
	assert.Len(t, after.View.Items, 4)
	assert.Equal(t, 4, after.View.Counts.SourceTotal)
}

func TestInvalidate_DropsCacheAndRefetches(t *testing.T) {
	repo := &fakeRepo{products: catalog()}
	store := &mapStore{data: map[string][]byte{}}
	c := cache.NewCollection[model.Product]("products", store, time.Minute, logger.NewNop())
	uc := NewProductUseCase(repo, c, logger.NewNop())

	_ = list(t, uc, "", view.FilterConfig{})
	assert.Len(t, store.data, 1)

	repo.set(catalog()[:1], nil)
	uc.Invalidate(context.Background(), "m1")
	after := list(t, uc, "", view.FilterConfig{})

	assert.Len(t, after.View.Items, 1)
	assert.Equal(t, 2, repo.callCount())
}

func TestListProducts_FirstFetchFailureIsEmpty(t *testing.T) {
	repo := &fakeRepo{err: errors.New("timeout")}
	uc := NewProductUseCase(repo, nil, logger.NewNop())

	out := list(t, uc, "coke", view.FilterConfig{})

	assert.NotNil(t, out.View.Items)
	assert.Empty(t, out.View.Items)
	assert.Error(t, out.FetchErr)
}

func ids(items []model.Product) []string {
	out := make([]string, len(items))
	for i, p := range items {
		out[i] = p.ID
	}
	return out
}
