package notification

import (
	"context"

	"github.com/fekuna/omnipos-retail-view/internal/model"
)

type Repository interface {
	FindAll(ctx context.Context, merchantID string) ([]model.Notification, error)
}
