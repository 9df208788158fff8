package dashboard

import (
	"context"

	"github.com/fekuna/omnipos-retail-view/internal/dashboard/dto"
)

type UseCase interface {
	GetDashboard(ctx context.Context, merchantID string) (*dto.Dashboard, error)
}
