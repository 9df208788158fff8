package dto

import (
	"github.com/fekuna/omnipos-retail-view/internal/model"
	"github.com/fekuna/omnipos-retail-view/internal/view"
)

// Dashboard condenses the other screens into badges. Sections whose source
// failed to load are reported in FetchErrors and show the last known batch.
type Dashboard struct {
	Stock               view.BucketCounts
	ProductCount        int
	StockValue          float64
	UnreadNotifications int
	Attention           []model.Product
	OpenCheck           *view.CheckSummary
	FetchErrors         []string
}
