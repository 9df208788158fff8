package handler

import (
	"context"
	"errors"
	"testing"

	viewv1 "github.com/fekuna/omnipos-retail-view/api/view/v1"
	"github.com/fekuna/omnipos-retail-view/internal/dashboard/dto"
	"github.com/fekuna/omnipos-retail-view/internal/grpctest"
	"github.com/fekuna/omnipos-retail-view/internal/logger"
	"github.com/fekuna/omnipos-retail-view/internal/model"
	"github.com/fekuna/omnipos-retail-view/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type stubUseCase struct {
	dashboard *dto.Dashboard
	err       error
}

func (s *stubUseCase) GetDashboard(context.Context, string) (*dto.Dashboard, error) {
	return s.dashboard, s.err
}

func newClient(t *testing.T, uc *stubUseCase) *viewv1.DashboardServiceClient {
	h := NewDashboardHandler(uc, logger.NewNop())
	conn := grpctest.Dial(t, func(s *grpc.Server) {
		viewv1.RegisterDashboardServiceServer(s, h)
	})
	return viewv1.NewDashboardServiceClient(conn)
}

func TestGetDashboard(t *testing.T) {
	client := newClient(t, &stubUseCase{dashboard: &dto.Dashboard{
		Stock:               view.BucketCounts{Out: 1, Low: 2, Normal: 7},
		ProductCount:        10,
		UnreadNotifications: 3,
		Attention:           []model.Product{{ID: "p2", CurrentStock: 0, MinStock: 15}},
	}})
	ctx := grpctest.AsMerchant(context.Background(), "m1")

	resp, err := client.GetDashboard(ctx, &viewv1.DashboardRequest{})
	require.NoError(t, err)

	assert.Equal(t, 3, resp.NeedsAttention)
	assert.Equal(t, 10, resp.ProductCount)
	require.Len(t, resp.Attention, 1)
	assert.Equal(t, view.BucketOut, resp.Attention[0].Bucket)
	assert.Nil(t, resp.OpenCheck)
}

func TestGetDashboard_Errors(t *testing.T) {
	client := newClient(t, &stubUseCase{err: errors.New("boom")})

	_, err := client.GetDashboard(context.Background(), &viewv1.DashboardRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = client.GetDashboard(grpctest.AsMerchant(context.Background(), "m1"), &viewv1.DashboardRequest{})
	assert.Equal(t, codes.Internal, status.Code(err))
}
