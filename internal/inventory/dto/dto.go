package dto

import (
	"time"

	"github.com/fekuna/omnipos-retail-view/internal/view"
)

type ListInventoryInput struct {
	MerchantID string
	Query      string
	Filter     view.FilterConfig
}

type InventoryList struct {
	View     view.InventoryView
	Version  uint64
	LoadedAt time.Time
	FetchErr error
}
