package view

import "github.com/fekuna/omnipos-retail-view/internal/model"

const (
	ProductSortName   = "name"
	ProductSortStock  = "stock"
	ProductSortPrice  = "price"
	ProductSortRecent = "recent"
)

var ProductSpec = Spec[model.Product]{
	Text: func(p model.Product) []string {
		return []string{p.Name, p.SKU, p.Category}
	},
	Category: func(p model.Product) string { return p.Category },
	Statuses: stockStatuses,
	Status: func(p model.Product, status string) bool {
		return inBucket(p.CurrentStock, p.MinStock, status)
	},
	Sorts: []SortOption[model.Product]{
		{Key: ProductSortName, Compare: func(a, b model.Product) int { return compareText(a.Name, b.Name) }},
		{Key: ProductSortStock, Compare: func(a, b model.Product) int { return compareNumber(a.CurrentStock, b.CurrentStock) }},
		{Key: ProductSortPrice, Compare: func(a, b model.Product) int { return compareNumber(a.Price, b.Price) }},
		{Key: ProductSortRecent, Compare: func(a, b model.Product) int { return compareNewest(a.CreatedAt, b.CreatedAt) }},
	},
}

type ProductAggregates struct {
	Total          int          `json:"total"`
	SourceTotal    int          `json:"source_total"`
	Buckets        BucketCounts `json:"buckets"`
	NeedsAttention int          `json:"needs_attention"`
	StockUnits     float64      `json:"stock_units"`
	StockValue     float64      `json:"stock_value"`
}

type ProductView struct {
	Items  []model.Product   `json:"items"`
	Counts ProductAggregates `json:"counts"`
}

// DeriveProducts filters and sorts the catalog. Bucket badges are counted over
// the whole source, totals and sums over the derived list.
func DeriveProducts(records []model.Product, query string, cfg FilterConfig) ProductView {
	items := Derive(records, query, cfg, ProductSpec)

	buckets := countBuckets(records, productStock)
	counts := ProductAggregates{
		Total:          len(items),
		SourceTotal:    len(records),
		Buckets:        buckets,
		NeedsAttention: buckets.NeedsAttention(),
	}
	for _, p := range items {
		counts.StockUnits += p.CurrentStock
		counts.StockValue += p.CurrentStock * p.Price
	}

	return ProductView{Items: items, Counts: counts}
}

func productStock(p model.Product) (float64, float64) {
	return p.CurrentStock, p.MinStock
}
