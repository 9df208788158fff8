package usecase

import (
	"context"

	"github.com/fekuna/omnipos-retail-view/internal/cache"
	"github.com/fekuna/omnipos-retail-view/internal/logger"
	"github.com/fekuna/omnipos-retail-view/internal/model"
	"github.com/fekuna/omnipos-retail-view/internal/product"
	"github.com/fekuna/omnipos-retail-view/internal/product/dto"
	"github.com/fekuna/omnipos-retail-view/internal/screen"
	"github.com/fekuna/omnipos-retail-view/internal/view"
	"go.uber.org/zap"
)

type productUseCase struct {
	repo   product.Repository
	cache  *cache.Collection[model.Product]
	store  *screen.Store[model.Product]
	memos  view.Memos[view.ProductView]
	logger logger.ZapLogger
}

// NewProductUseCase wires the products screen. cache may be nil.
func NewProductUseCase(repo product.Repository, cache *cache.Collection[model.Product], log logger.ZapLogger) product.UseCase {
	uc := &productUseCase{
		repo:   repo,
		cache:  cache,
		logger: log,
	}
	uc.store = screen.NewStore("products", uc.fetch, log)
	return uc
}

func (uc *productUseCase) fetch(ctx context.Context, merchantID string) ([]model.Product, error) {
	return uc.cache.Load(ctx, merchantID, func(ctx context.Context) ([]model.Product, error) {
		return uc.repo.FindAll(ctx, merchantID)
	})
}

func (uc *productUseCase) ListProducts(ctx context.Context, input *dto.ListProductsInput) (*dto.ProductList, error) {
	snap := uc.store.Snapshot(ctx, input.MerchantID)

	v := uc.memos.For(input.MerchantID).Get(snap.Version, input.Query, input.Filter, func() view.ProductView {
		return view.DeriveProducts(snap.Records, input.Query, input.Filter)
	})

	return &dto.ProductList{
		View:     v,
		Version:  snap.Version,
		LoadedAt: snap.LoadedAt,
		FetchErr: snap.Err,
	}, nil
}

// RefreshProducts drops the cached batch and fetches again. On failure the
// previous batch stays on screen and the error is returned.
func (uc *productUseCase) RefreshProducts(ctx context.Context, merchantID string) error {
	uc.dropCache(ctx, merchantID)
	return uc.store.Refresh(ctx, merchantID).Err
}

// Invalidate marks the merchant's batch stale; the next list fetches again.
func (uc *productUseCase) Invalidate(ctx context.Context, merchantID string) {
	uc.dropCache(ctx, merchantID)
	uc.store.Invalidate(merchantID)
}

func (uc *productUseCase) dropCache(ctx context.Context, merchantID string) {
	if err := uc.cache.Invalidate(ctx, merchantID); err != nil {
		uc.logger.Warn("failed to invalidate product cache", zap.String("merchant_id", merchantID), zap.Error(err))
	}
}
