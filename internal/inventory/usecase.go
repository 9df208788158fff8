package inventory

import (
	"context"

	"github.com/fekuna/omnipos-retail-view/internal/inventory/dto"
)

type UseCase interface {
	ListInventory(ctx context.Context, input *dto.ListInventoryInput) (*dto.InventoryList, error)
	RefreshInventory(ctx context.Context, merchantID string) error
	Invalidate(ctx context.Context, merchantID string)
}
