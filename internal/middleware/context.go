package middleware

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-retail-view/internal/auth"
	"github.com/fekuna/omnipos-retail-view/internal/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const RequestIDHeader = "x-request-id"

// ContextInterceptor copies the merchant header into the context and logs
// every unary call with its outcome.
func ContextInterceptor(log logger.ZapLogger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		requestID := ""
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if v := md.Get(RequestIDHeader); len(v) > 0 {
				requestID = v[0]
			}
			if v := md.Get(auth.MerchantHeader); len(v) > 0 {
				ctx = auth.WithMerchantID(ctx, v[0])
			}
		}
		if requestID == "" {
			requestID = uuid.New().String()
		}

		start := time.Now()
		resp, err := handler(ctx, req)

		fields := []zap.Field{
			zap.String("method", info.FullMethod),
			zap.String("request_id", requestID),
			zap.String("merchant_id", auth.GetMerchantID(ctx)),
			zap.Duration("took", time.Since(start)),
		}
		if err != nil {
			log.Warn("grpc call failed", append(fields, zap.String("code", status.Code(err).String()), zap.Error(err))...)
		} else {
			log.Info("grpc call", fields...)
		}
		return resp, err
	}
}

// StreamLoggingInterceptor logs stream lifetimes. Handlers read the merchant
// from metadata through auth.GetMerchantID.
func StreamLoggingInterceptor(log logger.ZapLogger) grpc.StreamServerInterceptor {
	return func(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		start := time.Now()
		err := handler(srv, ss)
		log.Info("grpc stream closed",
			zap.String("method", info.FullMethod),
			zap.String("merchant_id", auth.GetMerchantID(ss.Context())),
			zap.Duration("took", time.Since(start)),
			zap.Error(err),
		)
		return err
	}
}
