package usecase

import (
	"context"

	"github.com/fekuna/omnipos-retail-view/internal/cache"
	"github.com/fekuna/omnipos-retail-view/internal/logger"
	"github.com/fekuna/omnipos-retail-view/internal/model"
	"github.com/fekuna/omnipos-retail-view/internal/notification"
	"github.com/fekuna/omnipos-retail-view/internal/notification/dto"
	"github.com/fekuna/omnipos-retail-view/internal/screen"
	"github.com/fekuna/omnipos-retail-view/internal/view"
	"go.uber.org/zap"
)

type notificationUseCase struct {
	repo   notification.Repository
	cache  *cache.Collection[model.Notification]
	store  *screen.Store[model.Notification]
	memos  view.Memos[view.NotificationView]
	logger logger.ZapLogger
}

func NewNotificationUseCase(repo notification.Repository, cache *cache.Collection[model.Notification], log logger.ZapLogger) notification.UseCase {
	uc := &notificationUseCase{
		repo:   repo,
		cache:  cache,
		logger: log,
	}
	uc.store = screen.NewStore("notifications", uc.fetch, log)
	return uc
}

func (uc *notificationUseCase) fetch(ctx context.Context, merchantID string) ([]model.Notification, error) {
	return uc.cache.Load(ctx, merchantID, func(ctx context.Context) ([]model.Notification, error) {
		return uc.repo.FindAll(ctx, merchantID)
	})
}

func (uc *notificationUseCase) ListNotifications(ctx context.Context, input *dto.ListNotificationsInput) (*dto.NotificationList, error) {
	snap := uc.store.Snapshot(ctx, input.MerchantID)

	v := uc.memos.For(input.MerchantID).Get(snap.Version, input.Query, input.Filter, func() view.NotificationView {
		return view.DeriveNotifications(snap.Records, input.Query, input.Filter)
	})

	return &dto.NotificationList{
		View:     v,
		Version:  snap.Version,
		LoadedAt: snap.LoadedAt,
		FetchErr: snap.Err,
	}, nil
}

func (uc *notificationUseCase) RefreshNotifications(ctx context.Context, merchantID string) error {
	uc.dropCache(ctx, merchantID)
	return uc.store.Refresh(ctx, merchantID).Err
}

func (uc *notificationUseCase) Invalidate(ctx context.Context, merchantID string) {
	uc.dropCache(ctx, merchantID)
	uc.store.Invalidate(merchantID)
}

func (uc *notificationUseCase) dropCache(ctx context.Context, merchantID string) {
	if err := uc.cache.Invalidate(ctx, merchantID); err != nil {
		uc.logger.Warn("failed to invalidate notification cache", zap.String("merchant_id", merchantID), zap.Error(err))
	}
}
