package dto

import (
	"time"

	"github.com/fekuna/omnipos-retail-view/internal/view"
)

type ListProductsInput struct {
	MerchantID string
	Query      string
	Filter     view.FilterConfig
}

// ProductList is a derived products screen plus the state of the batch it
// was derived from. FetchErr is set when the last fetch failed; View then
// reflects the previous batch.
type ProductList struct {
	View     view.ProductView
	Version  uint64
	LoadedAt time.Time
	FetchErr error
}
