package usecase

import (
	"context"

	"github.com/fekuna/omnipos-retail-view/internal/cache"
	"github.com/fekuna/omnipos-retail-view/internal/inventory"
	"github.com/fekuna/omnipos-retail-view/internal/inventory/dto"
	"github.com/fekuna/omnipos-retail-view/internal/logger"
	"github.com/fekuna/omnipos-retail-view/internal/model"
	"github.com/fekuna/omnipos-retail-view/internal/screen"
	"github.com/fekuna/omnipos-retail-view/internal/view"
	"go.uber.org/zap"
)

type inventoryUseCase struct {
	repo   inventory.Repository
	cache  *cache.Collection[model.InventoryLine]
	store  *screen.Store[model.InventoryLine]
	memos  view.Memos[view.InventoryView]
	logger logger.ZapLogger
}

func NewInventoryUseCase(repo inventory.Repository, cache *cache.Collection[model.InventoryLine], log logger.ZapLogger) inventory.UseCase {
	uc := &inventoryUseCase{
		repo:   repo,
		cache:  cache,
		logger: log,
	}
	uc.store = screen.NewStore("inventory", uc.fetch, log)
	return uc
}

func (uc *inventoryUseCase) fetch(ctx context.Context, merchantID string) ([]model.InventoryLine, error) {
	return uc.cache.Load(ctx, merchantID, func(ctx context.Context) ([]model.InventoryLine, error) {
		return uc.repo.FindAll(ctx, merchantID)
	})
}

func (uc *inventoryUseCase) ListInventory(ctx context.Context, input *dto.ListInventoryInput) (*dto.InventoryList, error) {
	snap := uc.store.Snapshot(ctx, input.MerchantID)

	v := uc.memos.For(input.MerchantID).Get(snap.Version, input.Query, input.Filter, func() view.InventoryView {
		return view.DeriveInventory(snap.Records, input.Query, input.Filter)
	})

	return &dto.InventoryList{
		View:     v,
		Version:  snap.Version,
		LoadedAt: snap.LoadedAt,
		FetchErr: snap.Err,
	}, nil
}

func (uc *inventoryUseCase) RefreshInventory(ctx context.Context, merchantID string) error {
	uc.dropCache(ctx, merchantID)
	return uc.store.Refresh(ctx, merchantID).Err
}

func (uc *inventoryUseCase) Invalidate(ctx context.Context, merchantID string) {
	uc.dropCache(ctx, merchantID)
	uc.store.Invalidate(merchantID)
}

func (uc *inventoryUseCase) dropCache(ctx context.Context, merchantID string) {
	if err := uc.cache.Invalidate(ctx, merchantID); err != nil {
		uc.logger.Warn("failed to invalidate inventory cache", zap.String("merchant_id", merchantID), zap.Error(err))
	}
}
