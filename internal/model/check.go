package model

import "time"

const (
	CheckStatusPending     = "pending"
	CheckStatusCompleted   = "completed"
	CheckStatusDiscrepancy = "discrepancy"
)

// CheckItem is one line of an inventory count. ActualQuantity stays nil until
// the first count is entered.
type CheckItem struct {
	ID               string   `json:"id"`
	ProductID        string   `json:"product_id"`
	SKU              string   `json:"sku"`
	Name             string   `json:"name"`
	Category         string   `json:"category"`
	ExpectedQuantity float64  `json:"expected_quantity"`
	ActualQuantity   *float64 `json:"actual_quantity"`
	Status           string   `json:"status"`
}

type CheckSession struct {
	ID         string      `json:"id"`
	MerchantID string      `json:"merchant_id"`
	StartedAt  time.Time   `json:"started_at"`
	Items      []CheckItem `json:"items"`
}
