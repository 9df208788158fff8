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

// FindAll joins active products with their category name and the
// merchant-level stock row. Variant stock is not part of the screen.
func (r *PGRepository) FindAll(ctx context.Context, merchantID string) ([]model.Product, error) {
	query := `
        SELECT p.id, p.merchant_id, p.sku, p.name,
               COALESCE(c.name, '') AS category,
               COALESCE(s.quantity, 0) AS current_stock,
               COALESCE(s.reorder_point, 0) AS min_stock,
               p.base_price AS price,
               p.created_at
        FROM products p
        LEFT JOIN categories c ON c.id = p.category_id
        LEFT JOIN (
            SELECT product_id, merchant_id,
                   SUM(quantity) AS quantity,
                   MAX(reorder_point) AS reorder_point
            FROM inventory
            WHERE variant_id IS NULL
            GROUP BY product_id, merchant_id
        ) s ON s.product_id = p.id AND s.merchant_id = p.merchant_id
        WHERE p.merchant_id = ? AND p.is_active = TRUE
        ORDER BY p.created_at DESC
    `
	// Rebind for Postgres ($1, $2...)
	query = r.DB.Rebind(query)

	products := []model.Product{}
	if err := r.DB.SelectContext(ctx, &products, query, merchantID); err != nil {
		return nil, err
	}
	return products, nil
}
