package view

import (
	"testing"
	"time"

	"github.com/fekuna/omnipos-retail-view/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestDeriveInventory(t *testing.T) {
	now := time.Date(2026, 5, 2, 10, 0, 0, 0, time.UTC)
	src := []model.InventoryLine{
		{ID: "1", Name: "Rice 5kg", SKU: "GRN-5", Category: "Grains", CurrentStock: 3, MinStock: 10, UpdatedAt: now.Add(-time.Hour)},
		{ID: "2", Name: "Beans", Category: "Grains", CurrentStock: 40, MinStock: 10, UpdatedAt: now},
		{ID: "3", Name: "Sardines", SKU: "CAN-2", Category: "Canned", CurrentStock: 0, MinStock: 4, UpdatedAt: now.Add(-2 * time.Hour)},
	}

	t.Run("category then sort", func(t *testing.T) {
		v := DeriveInventory(src, "", FilterConfig{Category: "Grains", SortBy: InventorySortStock, SortOrder: Desc})
		assert.Equal(t, []string{"2", "1"}, lineIDs(v.Items))
		assert.Equal(t, 2, v.Counts.Total)
		assert.InDelta(t, 43, v.Counts.StockUnits, 1e-9)
	})

	t.Run("updated is newest first", func(t *testing.T) {
		v := DeriveInventory(src, "", FilterConfig{SortBy: InventorySortUpdated})
		assert.Equal(t, []string{"2", "1", "3"}, lineIDs(v.Items))
	})

	t.Run("sort by category keeps input order inside a category", func(t *testing.T) {
		v := DeriveInventory(src, "", FilterConfig{SortBy: InventorySortCategory})
		assert.Equal(t, []string{"3", "1", "2"}, lineIDs(v.Items))
	})

	t.Run("query and status combine", func(t *testing.T) {
		v := DeriveInventory(src, "grains", FilterConfig{Status: "low"})
		assert.Equal(t, []string{"1"}, lineIDs(v.Items))
		assert.Equal(t, 2, v.Counts.NeedsAttention)
	})
}

func lineIDs(items []model.InventoryLine) []string {
	out := make([]string, len(items))
	for i, l := range items {
		out[i] = l.ID
	}
	return out
}
