package handler

import (
	"context"
	"errors"

	viewv1 "github.com/fekuna/omnipos-retail-view/api/view/v1"
	"github.com/fekuna/omnipos-retail-view/internal/auth"
	"github.com/fekuna/omnipos-retail-view/internal/inventorycheck"
	"github.com/fekuna/omnipos-retail-view/internal/inventorycheck/dto"
	"github.com/fekuna/omnipos-retail-view/internal/logger"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var _ viewv1.InventoryCheckServiceServer = (*CheckHandler)(nil)

type CheckHandler struct {
	uc     inventorycheck.UseCase
	logger logger.ZapLogger
}

func NewCheckHandler(uc inventorycheck.UseCase, log logger.ZapLogger) *CheckHandler {
	return &CheckHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *CheckHandler) StartCheck(ctx context.Context, _ *viewv1.StartCheckRequest) (*viewv1.CheckResponse, error) {
	merchantID := auth.GetMerchantID(ctx)
	if merchantID == "" {
		return nil, status.Error(codes.Unauthenticated, "missing merchant")
	}

	res, err := h.uc.StartCheck(ctx, merchantID)
	if err != nil {
		return nil, h.toStatus(err)
	}
	return mapCheckResult(res), nil
}

func (h *CheckHandler) RecordCount(ctx context.Context, req *viewv1.RecordCountRequest) (*viewv1.RecordCountResponse, error) {
	merchantID := auth.GetMerchantID(ctx)
	if merchantID == "" {
		return nil, status.Error(codes.Unauthenticated, "missing merchant")
	}
	if req.SessionID == "" || req.ItemID == "" {
		return nil, status.Error(codes.InvalidArgument, "session_id and item_id are required")
	}

	res, err := h.uc.RecordCount(ctx, &dto.RecordCountInput{
		MerchantID:     merchantID,
		SessionID:      req.SessionID,
		ItemID:         req.ItemID,
		ActualQuantity: req.ActualQuantity,
	})
	if err != nil {
		return nil, h.toStatus(err)
	}

	return &viewv1.RecordCountResponse{
		Item:    viewv1.NewCheckEntry(res.Item),
		Summary: res.Summary,
	}, nil
}

func (h *CheckHandler) GetCheck(ctx context.Context, req *viewv1.GetCheckRequest) (*viewv1.CheckResponse, error) {
	merchantID := auth.GetMerchantID(ctx)
	if merchantID == "" {
		return nil, status.Error(codes.Unauthenticated, "missing merchant")
	}

	res, err := h.uc.GetCheck(ctx, &dto.GetCheckInput{
		MerchantID: merchantID,
		SessionID:  req.SessionID,
		Query:      req.Query,
		Filter:     req.Filter,
	})
	if err != nil {
		return nil, h.toStatus(err)
	}
	return mapCheckResult(res), nil
}

func (h *CheckHandler) toStatus(err error) error {
	switch {
	case errors.Is(err, inventorycheck.ErrSessionNotFound), errors.Is(err, inventorycheck.ErrItemNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, inventorycheck.ErrInvalidCount):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, inventorycheck.ErrNoInventory):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		h.logger.Error("inventory check failed", zap.Error(err))
		return status.Error(codes.Internal, err.Error())
	}
}

func mapCheckResult(res *dto.CheckResult) *viewv1.CheckResponse {
	items := make([]viewv1.CheckEntry, len(res.View.Items))
	for i, item := range res.View.Items {
		items[i] = viewv1.NewCheckEntry(item)
	}
	return &viewv1.CheckResponse{
		SessionID: res.SessionID,
		StartedAt: res.StartedAt,
		Items:     items,
		Total:     res.View.Total,
		Summary:   res.View.Summary,
		Source:    viewv1.NewSource(res.Version, res.StartedAt, res.FetchErr),
	}
}
