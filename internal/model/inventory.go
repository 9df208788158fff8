package model

import "time"

// InventoryLine is one stock row on the inventory screen.
type InventoryLine struct {
	ID           string    `db:"id" json:"id"`
	MerchantID   string    `db:"merchant_id" json:"merchant_id"`
	StoreID      *string   `db:"store_id" json:"store_id"` // Nullable
	ProductID    string    `db:"product_id" json:"product_id"`
	SKU          string    `db:"sku" json:"sku"`
	Name         string    `db:"name" json:"name"`
	Category     string    `db:"category" json:"category"`
	CurrentStock float64   `db:"current_stock" json:"current_stock"`
	MinStock     float64   `db:"min_stock" json:"min_stock"` // reorder point
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}
