// Package grpctest runs view services over an in-memory connection for
// handler tests.
package grpctest

import (
	"context"
	"net"
	"testing"

	"github.com/fekuna/omnipos-retail-view/internal/auth"
	"github.com/fekuna/omnipos-retail-view/internal/logger"
	"github.com/fekuna/omnipos-retail-view/internal/middleware"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/test/bufconn"
)

// Dial starts a server with the production interceptors, lets register add
// services to it and returns a client connection. Both are closed when the
// test ends.
func Dial(t *testing.T, register func(*grpc.Server)) *grpc.ClientConn {
	t.Helper()

	log := logger.NewNop()
	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(
		grpc.UnaryInterceptor(middleware.ContextInterceptor(log)),
		grpc.StreamInterceptor(middleware.StreamLoggingInterceptor(log)),
	)
	register(srv)
	go func() {
		_ = srv.Serve(lis)
	}()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

// AsMerchant returns an outgoing context carrying the merchant header.
func AsMerchant(ctx context.Context, merchantID string) context.Context {
	return metadata.AppendToOutgoingContext(ctx, auth.MerchantHeader, merchantID)
}
