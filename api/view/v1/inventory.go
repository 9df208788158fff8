package viewv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
)

const InventoryViewServiceName = servicePrefix + "InventoryViewService"

type InventoryViewServiceServer interface {
	DeriveInventory(context.Context, *DeriveRequest) (*InventoryResponse, error)
	RefreshInventory(context.Context, *RefreshRequest) (*emptypb.Empty, error)
}

var InventoryViewService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: InventoryViewServiceName,
	HandlerType: (*InventoryViewServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(InventoryViewServiceName, "DeriveInventory", InventoryViewServiceServer.DeriveInventory),
		unary(InventoryViewServiceName, "RefreshInventory", InventoryViewServiceServer.RefreshInventory),
	},
	Metadata: "omnipos/view/v1/inventory.json",
}

func RegisterInventoryViewServiceServer(s grpc.ServiceRegistrar, srv InventoryViewServiceServer) {
	s.RegisterService(&InventoryViewService_ServiceDesc, srv)
}

type InventoryViewServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewInventoryViewServiceClient(cc grpc.ClientConnInterface) *InventoryViewServiceClient {
	return &InventoryViewServiceClient{cc: cc}
}

func (c *InventoryViewServiceClient) DeriveInventory(ctx context.Context, in *DeriveRequest, opts ...grpc.CallOption) (*InventoryResponse, error) {
	return invoke[InventoryResponse](ctx, c.cc, fullMethod(InventoryViewServiceName, "DeriveInventory"), in, opts)
}

func (c *InventoryViewServiceClient) RefreshInventory(ctx context.Context, in *RefreshRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, fullMethod(InventoryViewServiceName, "RefreshInventory"), in, opts)
}
