package viewv1

import (
	"context"

	"google.golang.org/grpc"
)

const DashboardServiceName = servicePrefix + "DashboardService"

type DashboardServiceServer interface {
	GetDashboard(context.Context, *DashboardRequest) (*DashboardResponse, error)
}

var DashboardService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: DashboardServiceName,
	HandlerType: (*DashboardServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(DashboardServiceName, "GetDashboard", DashboardServiceServer.GetDashboard),
	},
	Metadata: "omnipos/view/v1/dashboard.json",
}

func RegisterDashboardServiceServer(s grpc.ServiceRegistrar, srv DashboardServiceServer) {
	s.RegisterService(&DashboardService_ServiceDesc, srv)
}

type DashboardServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewDashboardServiceClient(cc grpc.ClientConnInterface) *DashboardServiceClient {
	return &DashboardServiceClient{cc: cc}
}

func (c *DashboardServiceClient) GetDashboard(ctx context.Context, in *DashboardRequest, opts ...grpc.CallOption) (*DashboardResponse, error) {
	return invoke[DashboardResponse](ctx, c.cc, fullMethod(DashboardServiceName, "GetDashboard"), in, opts)
}
