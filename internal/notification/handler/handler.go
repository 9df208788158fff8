package handler

import (
	"context"

	viewv1 "github.com/fekuna/omnipos-retail-view/api/view/v1"
	"github.com/fekuna/omnipos-retail-view/internal/auth"
	"github.com/fekuna/omnipos-retail-view/internal/logger"
	"github.com/fekuna/omnipos-retail-view/internal/notification"
	"github.com/fekuna/omnipos-retail-view/internal/notification/dto"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

var _ viewv1.NotificationViewServiceServer = (*NotificationHandler)(nil)

type NotificationHandler struct {
	uc     notification.UseCase
	logger logger.ZapLogger
}

func NewNotificationHandler(uc notification.UseCase, log logger.ZapLogger) *NotificationHandler {
	return &NotificationHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *NotificationHandler) DeriveNotifications(ctx context.Context, req *viewv1.DeriveRequest) (*viewv1.NotificationsResponse, error) {
	merchantID := auth.GetMerchantID(ctx)
	if merchantID == "" {
		return nil, status.Error(codes.Unauthenticated, "missing merchant")
	}

	list, err := h.uc.ListNotifications(ctx, &dto.ListNotificationsInput{
		MerchantID: merchantID,
		Query:      req.Query,
		Filter:     req.Filter,
	})
	if err != nil {
		h.logger.Error("failed to list notifications", zap.String("merchant_id", merchantID), zap.Error(err))
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &viewv1.NotificationsResponse{
		Items:  list.View.Items,
		Counts: list.View.Counts,
		Source: viewv1.NewSource(list.Version, list.LoadedAt, list.FetchErr),
	}, nil
}

func (h *NotificationHandler) RefreshNotifications(ctx context.Context, _ *viewv1.RefreshRequest) (*emptypb.Empty, error) {
	merchantID := auth.GetMerchantID(ctx)
	if merchantID == "" {
		return nil, status.Error(codes.Unauthenticated, "missing merchant")
	}

	if err := h.uc.RefreshNotifications(ctx, merchantID); err != nil {
		h.logger.Error("failed to refresh notifications", zap.String("merchant_id", merchantID), zap.Error(err))
		return nil, status.Error(codes.Unavailable, err.Error())
	}
	return &emptypb.Empty{}, nil
}
