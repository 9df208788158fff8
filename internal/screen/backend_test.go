package screen

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/fekuna/omnipos-retail-view/internal/backend"
	"github.com/fekuna/omnipos-retail-view/internal/logger"
	"github.com/fekuna/omnipos-retail-view/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_MaintenanceEnvelopeKeepsRecords(t *testing.T) {
	var maintenance atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if maintenance.Load() {
			_, _ = w.Write([]byte(`{"error":"service in maintenance"}`))
			return
		}
		_, _ = w.Write([]byte(`{"data":[{"id":"p1","name":"Coke 50cl"},{"id":"p2","name":"Peak Milk"}]}`))
	}))
	t.Cleanup(srv.Close)

	client := backend.NewClient(&backend.Config{BaseURL: srv.URL, DataPath: "data"}, logger.NewNop())
	s := NewStore("products", func(ctx context.Context, merchantID string) ([]model.Product, error) {
		var products []model.Product
		if err := client.List(ctx, "/products", merchantID, &products); err != nil {
			return nil, err
		}
		return products, nil
	}, logger.NewNop())
	ctx := context.Background()

	good := s.Snapshot(ctx, "m1")
	require.NoError(t, good.Err)
	require.Len(t, good.Records, 2)

	maintenance.Store(true)
	snap := s.Refresh(ctx, "m1")

	assert.ErrorIs(t, snap.Err, backend.ErrNotArray)
	assert.Equal(t, good.Records, snap.Records)
	assert.Equal(t, good.Version, snap.Version)
}
