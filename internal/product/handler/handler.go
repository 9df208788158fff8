package handler

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	viewv1 "github.com/fekuna/omnipos-retail-view/api/view/v1"
	"github.com/fekuna/omnipos-retail-view/internal/auth"
	"github.com/fekuna/omnipos-retail-view/internal/debounce"
	"github.com/fekuna/omnipos-retail-view/internal/logger"
	"github.com/fekuna/omnipos-retail-view/internal/product"
	"github.com/fekuna/omnipos-retail-view/internal/product/dto"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

var _ viewv1.ProductViewServiceServer = (*ProductHandler)(nil)

type ProductHandler struct {
	uc       product.UseCase
	debounce time.Duration
	logger   logger.ZapLogger
}

// NewProductHandler creates the products screen handler. searchDebounce is the
// quiet interval LiveSearchProducts waits for before answering.
func NewProductHandler(uc product.UseCase, searchDebounce time.Duration, log logger.ZapLogger) *ProductHandler {
	return &ProductHandler{
		uc:       uc,
		debounce: searchDebounce,
		logger:   log,
	}
}

func (h *ProductHandler) DeriveProducts(ctx context.Context, req *viewv1.DeriveRequest) (*viewv1.ProductsResponse, error) {
	merchantID := auth.GetMerchantID(ctx)
	if merchantID == "" {
		return nil, status.Error(codes.Unauthenticated, "missing merchant")
	}
	return h.derive(ctx, merchantID, req)
}

func (h *ProductHandler) RefreshProducts(ctx context.Context, _ *viewv1.RefreshRequest) (*emptypb.Empty, error) {
	merchantID := auth.GetMerchantID(ctx)
	if merchantID == "" {
		return nil, status.Error(codes.Unauthenticated, "missing merchant")
	}

	if err := h.uc.RefreshProducts(ctx, merchantID); err != nil {
		h.logger.Error("failed to refresh products", zap.String("merchant_id", merchantID), zap.Error(err))
		return nil, status.Error(codes.Unavailable, err.Error())
	}
	return &emptypb.Empty{}, nil
}

// LiveSearchProducts answers the latest search state once the client has
// stopped sending for the debounce interval. Closing the send side flushes
// a pending state immediately.
func (h *ProductHandler) LiveSearchProducts(stream viewv1.ProductViewService_LiveSearchProductsServer) error {
	ctx := stream.Context()
	merchantID := auth.GetMerchantID(ctx)
	if merchantID == "" {
		return status.Error(codes.Unauthenticated, "missing merchant")
	}

	var (
		mu      sync.Mutex
		sendErr error
	)
	failed := func() error {
		mu.Lock()
		defer mu.Unlock()
		return sendErr
	}

	d := debounce.New(h.debounce, func(req *viewv1.DeriveRequest) {
		resp, err := h.derive(ctx, merchantID, req)
		if err == nil {
			err = stream.Send(resp)
		}
		if err != nil {
			mu.Lock()
			sendErr = err
			mu.Unlock()
		}
	})
	defer d.Stop()

	for {
		req, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			d.Flush()
			return failed()
		}
		if err != nil {
			return err
		}
		if err := failed(); err != nil {
			return err
		}
		d.Push(req)
	}
}

func (h *ProductHandler) derive(ctx context.Context, merchantID string, req *viewv1.DeriveRequest) (*viewv1.ProductsResponse, error) {
	list, err := h.uc.ListProducts(ctx, &dto.ListProductsInput{
		MerchantID: merchantID,
		Query:      req.Query,
		Filter:     req.Filter,
	})
	if err != nil {
		h.logger.Error("failed to list products", zap.String("merchant_id", merchantID), zap.Error(err))
		return nil, status.Error(codes.Internal, err.Error())
	}

	items := make([]viewv1.ProductEntry, len(list.View.Items))
	for i, p := range list.View.Items {
		items[i] = viewv1.NewProductEntry(p)
	}

	return &viewv1.ProductsResponse{
		Items:  items,
		Counts: list.View.Counts,
		Source: viewv1.NewSource(list.Version, list.LoadedAt, list.FetchErr),
	}, nil
}
