package repository

import (
	"context"

	"github.com/fekuna/omnipos-retail-view/internal/model"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

// FindAll lists every product-level stock row of the merchant, one per
// store, with the product's name, SKU and category.
func (r *PGRepository) FindAll(ctx context.Context, merchantID string) ([]model.InventoryLine, error) {
	query := `
        SELECT i.id, i.merchant_id, i.store_id, i.product_id,
               p.sku, p.name,
               COALESCE(c.name, '') AS category,
               i.quantity AS current_stock,
               i.reorder_point AS min_stock,
               i.updated_at
        FROM inventory i
        JOIN products p ON p.id = i.product_id
        LEFT JOIN categories c ON c.id = p.category_id
        WHERE i.merchant_id = ? AND i.variant_id IS NULL
        ORDER BY p.name ASC
    `
	// Rebind for Postgres ($1, $2...)
	query = r.DB.Rebind(query)

	lines := []model.InventoryLine{}
	if err := r.DB.SelectContext(ctx, &lines, query, merchantID); err != nil {
		return nil, err
	}
	return lines, nil
}
