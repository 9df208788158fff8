package handler

import (
	"context"

	viewv1 "github.com/fekuna/omnipos-retail-view/api/view/v1"
	"github.com/fekuna/omnipos-retail-view/internal/auth"
	"github.com/fekuna/omnipos-retail-view/internal/inventory"
	"github.com/fekuna/omnipos-retail-view/internal/inventory/dto"
	"github.com/fekuna/omnipos-retail-view/internal/logger"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

var _ viewv1.InventoryViewServiceServer = (*InventoryHandler)(nil)

type InventoryHandler struct {
	uc     inventory.UseCase
	logger logger.ZapLogger
}

func NewInventoryHandler(uc inventory.UseCase, log logger.ZapLogger) *InventoryHandler {
	return &InventoryHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *InventoryHandler) DeriveInventory(ctx context.Context, req *viewv1.DeriveRequest) (*viewv1.InventoryResponse, error) {
	merchantID := auth.GetMerchantID(ctx)
	if merchantID == "" {
		return nil, status.Error(codes.Unauthenticated, "missing merchant")
	}

	list, err := h.uc.ListInventory(ctx, &dto.ListInventoryInput{
		MerchantID: merchantID,
		Query:      req.Query,
		Filter:     req.Filter,
	})
	if err != nil {
		h.logger.Error("failed to list inventory", zap.String("merchant_id", merchantID), zap.Error(err))
		return nil, status.Error(codes.Internal, err.Error())
	}

	items := make([]viewv1.InventoryEntry, len(list.View.Items))
	for i, line := range list.View.Items {
		items[i] = viewv1.NewInventoryEntry(line)
	}

	return &viewv1.InventoryResponse{
		Items:  items,
		Counts: list.View.Counts,
		Source: viewv1.NewSource(list.Version, list.LoadedAt, list.FetchErr),
	}, nil
}

func (h *InventoryHandler) RefreshInventory(ctx context.Context, _ *viewv1.RefreshRequest) (*emptypb.Empty, error) {
	merchantID := auth.GetMerchantID(ctx)
	if merchantID == "" {
		return nil, status.Error(codes.Unauthenticated, "missing merchant")
	}

	if err := h.uc.RefreshInventory(ctx, merchantID); err != nil {
		h.logger.Error("failed to refresh inventory", zap.String("merchant_id", merchantID), zap.Error(err))
		return nil, status.Error(codes.Unavailable, err.Error())
	}
	return &emptypb.Empty{}, nil
}
