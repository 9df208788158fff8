package auth

import (
	"context"

	"google.golang.org/grpc/metadata"
)

const MerchantHeader = "x-merchant-id"

type merchantKey struct{}

// WithMerchantID stores the merchant on the context; the interceptor does this
// for every unary call.
func WithMerchantID(ctx context.Context, merchantID string) context.Context {
	return context.WithValue(ctx, merchantKey{}, merchantID)
}

// GetMerchantID returns the merchant scoping the request, or "" when absent.
func GetMerchantID(ctx context.Context) string {
	if val, ok := ctx.Value(merchantKey{}).(string); ok && val != "" {
		return val
	}

	// Fallback to metadata, e.g. for streams
	md, ok := metadata.FromIncomingContext(ctx)
	if ok {
		if val := md.Get(MerchantHeader); len(val) > 0 {
			return val[0]
		}
	}
	return ""
}
