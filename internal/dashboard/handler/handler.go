package handler

import (
	"context"

	viewv1 "github.com/fekuna/omnipos-retail-view/api/view/v1"
	"github.com/fekuna/omnipos-retail-view/internal/auth"
	"github.com/fekuna/omnipos-retail-view/internal/dashboard"
	"github.com/fekuna/omnipos-retail-view/internal/logger"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var _ viewv1.DashboardServiceServer = (*DashboardHandler)(nil)

type DashboardHandler struct {
	uc     dashboard.UseCase
	logger logger.ZapLogger
}

func NewDashboardHandler(uc dashboard.UseCase, log logger.ZapLogger) *DashboardHandler {
	return &DashboardHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *DashboardHandler) GetDashboard(ctx context.Context, _ *viewv1.DashboardRequest) (*viewv1.DashboardResponse, error) {
	merchantID := auth.GetMerchantID(ctx)
	if merchantID == "" {
		return nil, status.Error(codes.Unauthenticated, "missing merchant")
	}

	d, err := h.uc.GetDashboard(ctx, merchantID)
	if err != nil {
		h.logger.Error("failed to build dashboard", zap.String("merchant_id", merchantID), zap.Error(err))
		return nil, status.Error(codes.Internal, err.Error())
	}

	attention := make([]viewv1.ProductEntry, len(d.Attention))
	for i, p := range d.Attention {
		attention[i] = viewv1.NewProductEntry(p)
	}

	return &viewv1.DashboardResponse{
		Stock:               d.Stock,
		NeedsAttention:      d.Stock.NeedsAttention(),
		ProductCount:        d.ProductCount,
		StockValue:          d.StockValue,
		UnreadNotifications: d.UnreadNotifications,
		Attention:           attention,
		OpenCheck:           d.OpenCheck,
		FetchErrors:         d.FetchErrors,
	}, nil
}
