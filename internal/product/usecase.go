package product

import (
	"context"

	"github.com/fekuna/omnipos-retail-view/internal/product/dto"
)

type UseCase interface {
	ListProducts(ctx context.Context, input *dto.ListProductsInput) (*dto.ProductList, error)
	RefreshProducts(ctx context.Context, merchantID string) error
	Invalidate(ctx context.Context, merchantID string)
}
