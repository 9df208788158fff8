package handler

import (
	"context"
	"errors"
	"testing"

	viewv1 "github.com/fekuna/omnipos-retail-view/api/view/v1"
	"github.com/fekuna/omnipos-retail-view/internal/grpctest"
	"github.com/fekuna/omnipos-retail-view/internal/logger"
	"github.com/fekuna/omnipos-retail-view/internal/model"
	"github.com/fekuna/omnipos-retail-view/internal/notification/dto"
	"github.com/fekuna/omnipos-retail-view/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type stubUseCase struct {
	notifications []model.Notification
	refreshErr    error
}

func (s *stubUseCase) ListNotifications(_ context.Context, in *dto.ListNotificationsInput) (*dto.NotificationList, error) {
	return &dto.NotificationList{View: view.DeriveNotifications(s.notifications, in.Query, in.Filter)}, nil
}

func (s *stubUseCase) RefreshNotifications(context.Context, string) error { return s.refreshErr }

func (s *stubUseCase) Invalidate(context.Context, string) {}

func TestNotificationHandler(t *testing.T) {
	uc := &stubUseCase{notifications: []model.Notification{
		{ID: "n1", Title: "Login from new device", Type: model.NotificationTypeSecurity, Priority: 3},
		{ID: "n2", Title: "Coke is running low", Type: model.NotificationTypeInventory, Priority: 1},
	}}
	h := NewNotificationHandler(uc, logger.NewNop())
	conn := grpctest.Dial(t, func(s *grpc.Server) {
		viewv1.RegisterNotificationViewServiceServer(s, h)
	})
	client := viewv1.NewNotificationViewServiceClient(conn)
	ctx := grpctest.AsMerchant(context.Background(), "m1")

	resp, err := client.DeriveNotifications(ctx, &viewv1.DeriveRequest{Query: "LOW"})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "n2", resp.Items[0].ID)
	assert.Equal(t, map[string]int{"security": 1, "inventory": 1}, resp.Counts.ByType)

	_, err = client.DeriveNotifications(context.Background(), &viewv1.DeriveRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	uc.refreshErr = errors.New("backend down")
	_, err = client.RefreshNotifications(ctx, &viewv1.RefreshRequest{})
	assert.Equal(t, codes.Unavailable, status.Code(err))
}
