package middleware

import (
	"context"
	"errors"
	"testing"

	"github.com/fekuna/omnipos-retail-view/internal/auth"
	"github.com/fekuna/omnipos-retail-view/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func TestContextInterceptor(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	interceptor := ContextInterceptor(logger.FromZap(zap.New(core)))
	info := &grpc.UnaryServerInfo{FullMethod: "/omnipos.view.v1.ProductViewService/DeriveProducts"}

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(auth.MerchantHeader, "m1", RequestIDHeader, "req-1"))
	var seen string
	_, err := interceptor(ctx, nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		seen = auth.GetMerchantID(ctx)
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "m1", seen)

	_, err = interceptor(ctx, nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		return nil, status.Error(codes.InvalidArgument, "bad")
	})
	require.Error(t, err)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "req-1", entries[0].ContextMap()["request_id"])
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "InvalidArgument", entries[1].ContextMap()["code"])
}

func TestContextInterceptor_GeneratesRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	interceptor := ContextInterceptor(logger.FromZap(zap.New(core)))

	_, err := interceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/x/Y"}, func(ctx context.Context, req interface{}) (interface{}, error) {
		return nil, errors.New("boom")
	})
	require.Error(t, err)
	assert.NotEmpty(t, logs.All()[0].ContextMap()["request_id"])
}
