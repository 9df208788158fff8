package view

import "github.com/fekuna/omnipos-retail-view/internal/model"

const (
	InventorySortName     = "name"
	InventorySortStock    = "stock"
	InventorySortCategory = "category"
	InventorySortUpdated  = "updated"
)

var InventorySpec = Spec[model.InventoryLine]{
	Text: func(l model.InventoryLine) []string {
		return []string{l.Name, l.SKU, l.Category}
	},
	Category: func(l model.InventoryLine) string { return l.Category },
	Statuses: stockStatuses,
	Status: func(l model.InventoryLine, status string) bool {
		return inBucket(l.CurrentStock, l.MinStock, status)
	},
	Sorts: []SortOption[model.InventoryLine]{
		{Key: InventorySortName, Compare: func(a, b model.InventoryLine) int { return compareText(a.Name, b.Name) }},
		{Key: InventorySortStock, Compare: func(a, b model.InventoryLine) int { return compareNumber(a.CurrentStock, b.CurrentStock) }},
		{Key: InventorySortCategory, Compare: func(a, b model.InventoryLine) int { return compareText(a.Category, b.Category) }},
		{Key: InventorySortUpdated, Compare: func(a, b model.InventoryLine) int { return compareNewest(a.UpdatedAt, b.UpdatedAt) }},
	},
}

type InventoryAggregates struct {
	Total          int          `json:"total"`
	SourceTotal    int          `json:"source_total"`
	Buckets        BucketCounts `json:"buckets"`
	NeedsAttention int          `json:"needs_attention"`
	StockUnits     float64      `json:"stock_units"`
}

type InventoryView struct {
	Items  []model.InventoryLine `json:"items"`
	Counts InventoryAggregates   `json:"counts"`
}

func DeriveInventory(records []model.InventoryLine, query string, cfg FilterConfig) InventoryView {
	items := Derive(records, query, cfg, InventorySpec)

	buckets := countBuckets(records, func(l model.InventoryLine) (float64, float64) {
		return l.CurrentStock, l.MinStock
	})
	counts := InventoryAggregates{
		Total:          len(items),
		SourceTotal:    len(records),
		Buckets:        buckets,
		NeedsAttention: buckets.NeedsAttention(),
	}
	for _, l := range items {
		counts.StockUnits += l.CurrentStock
	}

	return InventoryView{Items: items, Counts: counts}
}
