package model

import "time"

// Product is a catalog entry as the products screen sees it: the product row
// joined with its category name and the merchant-level inventory.
type Product struct {
	ID           string    `db:"id" json:"id"`
	MerchantID   string    `db:"merchant_id" json:"merchant_id"`
	SKU          string    `db:"sku" json:"sku"` // Optional on some backends
	Name         string    `db:"name" json:"name"`
	Category     string    `db:"category" json:"category"`
	CurrentStock float64   `db:"current_stock" json:"current_stock"`
	MinStock     float64   `db:"min_stock" json:"min_stock"`
	Price        float64   `db:"price" json:"price"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
