package notification

import (
	"context"

	"github.com/fekuna/omnipos-retail-view/internal/notification/dto"
)

type UseCase interface {
	ListNotifications(ctx context.Context, input *dto.ListNotificationsInput) (*dto.NotificationList, error)
	RefreshNotifications(ctx context.Context, merchantID string) error
	Invalidate(ctx context.Context, merchantID string)
}
