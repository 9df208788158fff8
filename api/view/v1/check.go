package viewv1

import (
	"context"

	"google.golang.org/grpc"
)

const InventoryCheckServiceName = servicePrefix + "InventoryCheckService"

type InventoryCheckServiceServer interface {
	StartCheck(context.Context, *StartCheckRequest) (*CheckResponse, error)
	RecordCount(context.Context, *RecordCountRequest) (*RecordCountResponse, error)
	GetCheck(context.Context, *GetCheckRequest) (*CheckResponse, error)
}

var InventoryCheckService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: InventoryCheckServiceName,
	HandlerType: (*InventoryCheckServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(InventoryCheckServiceName, "StartCheck", InventoryCheckServiceServer.StartCheck),
		unary(InventoryCheckServiceName, "RecordCount", InventoryCheckServiceServer.RecordCount),
		unary(InventoryCheckServiceName, "GetCheck", InventoryCheckServiceServer.GetCheck),
	},
	Metadata: "omnipos/view/v1/check.json",
}

func RegisterInventoryCheckServiceServer(s grpc.ServiceRegistrar, srv InventoryCheckServiceServer) {
	s.RegisterService(&InventoryCheckService_ServiceDesc, srv)
}

type InventoryCheckServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewInventoryCheckServiceClient(cc grpc.ClientConnInterface) *InventoryCheckServiceClient {
	return &InventoryCheckServiceClient{cc: cc}
}

func (c *InventoryCheckServiceClient) StartCheck(ctx context.Context, in *StartCheckRequest, opts ...grpc.CallOption) (*CheckResponse, error) {
	return invoke[CheckResponse](ctx, c.cc, fullMethod(InventoryCheckServiceName, "StartCheck"), in, opts)
}

func (c *InventoryCheckServiceClient) RecordCount(ctx context.Context, in *RecordCountRequest, opts ...grpc.CallOption) (*RecordCountResponse, error) {
	return invoke[RecordCountResponse](ctx, c.cc, fullMethod(InventoryCheckServiceName, "RecordCount"), in, opts)
}

func (c *InventoryCheckServiceClient) GetCheck(ctx context.Context, in *GetCheckRequest, opts ...grpc.CallOption) (*CheckResponse, error) {
	return invoke[CheckResponse](ctx, c.cc, fullMethod(InventoryCheckServiceName, "GetCheck"), in, opts)
}
