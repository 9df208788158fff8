package viewv1

import (
	"time"

	"github.com/fekuna/omnipos-retail-view/internal/model"
	"github.com/fekuna/omnipos-retail-view/internal/view"
)

// DeriveRequest carries the search box and filter state of a list screen.
type DeriveRequest struct {
	Query  string            `json:"query"`
	Filter view.FilterConfig `json:"filter"`
}

// RefreshRequest asks for a fresh fetch of the caller's collection.
type RefreshRequest struct{}

// Source describes the batch a response was derived from.
type Source struct {
	Version    uint64    `json:"version"`
	LoadedAt   time.Time `json:"loaded_at"`
	FetchError string    `json:"fetch_error,omitempty"`
}

func NewSource(version uint64, loadedAt time.Time, fetchErr error) Source {
	src := Source{Version: version, LoadedAt: loadedAt}
	if fetchErr != nil {
		src.FetchError = fetchErr.Error()
	}
	return src
}

type ProductEntry struct {
	model.Product
	Bucket       view.Bucket `json:"bucket"`
	StockPercent float64     `json:"stock_percent"`
}

func NewProductEntry(p model.Product) ProductEntry {
	return ProductEntry{
		Product:      p,
		Bucket:       view.BucketOf(p.CurrentStock, p.MinStock),
		StockPercent: view.StockPercent(p.CurrentStock, p.MinStock),
	}
}

type ProductsResponse struct {
	Items  []ProductEntry         `json:"items"`
	Counts view.ProductAggregates `json:"counts"`
	Source Source                 `json:"source"`
}

type InventoryEntry struct {
	model.InventoryLine
	Bucket       view.Bucket `json:"bucket"`
	StockPercent float64     `json:"stock_percent"`
}

func NewInventoryEntry(l model.InventoryLine) InventoryEntry {
	return InventoryEntry{
		InventoryLine: l,
		Bucket:        view.BucketOf(l.CurrentStock, l.MinStock),
		StockPercent:  view.StockPercent(l.CurrentStock, l.MinStock),
	}
}

type InventoryResponse struct {
	Items  []InventoryEntry         `json:"items"`
	Counts view.InventoryAggregates `json:"counts"`
	Source Source                   `json:"source"`
}

type NotificationsResponse struct {
	Items  []model.Notification        `json:"items"`
	Counts view.NotificationAggregates `json:"counts"`
	Source Source                      `json:"source"`
}

type StartCheckRequest struct{}

type CheckEntry struct {
	model.CheckItem
	Discrepancy float64 `json:"discrepancy"`
}

func NewCheckEntry(item model.CheckItem) CheckEntry {
	return CheckEntry{CheckItem: item, Discrepancy: view.Discrepancy(item)}
}

type CheckResponse struct {
	SessionID string            `json:"session_id"`
	StartedAt time.Time         `json:"started_at"`
	Items     []CheckEntry      `json:"items"`
	Total     int               `json:"total"`
	Summary   view.CheckSummary `json:"summary"`
	Source    Source            `json:"source"`
}

type RecordCountRequest struct {
	SessionID      string  `json:"session_id"`
	ItemID         string  `json:"item_id"`
	ActualQuantity float64 `json:"actual_quantity"`
}

type RecordCountResponse struct {
	Item    CheckEntry        `json:"item"`
	Summary view.CheckSummary `json:"summary"`
}

type GetCheckRequest struct {
	SessionID string            `json:"session_id"`
	Query     string            `json:"query"`
	Filter    view.FilterConfig `json:"filter"`
}

type DashboardRequest struct{}

type DashboardResponse struct {
	Stock               view.BucketCounts  `json:"stock"`
	NeedsAttention      int                `json:"needs_attention"`
	ProductCount        int                `json:"product_count"`
	StockValue          float64            `json:"stock_value"`
	UnreadNotifications int                `json:"unread_notifications"`
	Attention           []ProductEntry     `json:"attention"`
	OpenCheck           *view.CheckSummary `json:"open_check,omitempty"`
	FetchErrors         []string           `json:"fetch_errors,omitempty"`
}
