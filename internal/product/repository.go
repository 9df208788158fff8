package product

import (
	"context"

	"github.com/fekuna/omnipos-retail-view/internal/model"
)

// Repository reads the full product batch of a merchant. Filtering and
// sorting happen in memory, so there are no query parameters.
type Repository interface {
	FindAll(ctx context.Context, merchantID string) ([]model.Product, error)
}
