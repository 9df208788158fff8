package viewv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
)

const NotificationViewServiceName = servicePrefix + "NotificationViewService"

type NotificationViewServiceServer interface {
	DeriveNotifications(context.Context, *DeriveRequest) (*NotificationsResponse, error)
	RefreshNotifications(context.Context, *RefreshRequest) (*emptypb.Empty, error)
}

var NotificationViewService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: NotificationViewServiceName,
	HandlerType: (*NotificationViewServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(NotificationViewServiceName, "DeriveNotifications", NotificationViewServiceServer.DeriveNotifications),
		unary(NotificationViewServiceName, "RefreshNotifications", NotificationViewServiceServer.RefreshNotifications),
	},
	Metadata: "omnipos/view/v1/notification.json",
}

func RegisterNotificationViewServiceServer(s grpc.ServiceRegistrar, srv NotificationViewServiceServer) {
	s.RegisterService(&NotificationViewService_ServiceDesc, srv)
}

type NotificationViewServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewNotificationViewServiceClient(cc grpc.ClientConnInterface) *NotificationViewServiceClient {
	return &NotificationViewServiceClient{cc: cc}
}

func (c *NotificationViewServiceClient) DeriveNotifications(ctx context.Context, in *DeriveRequest, opts ...grpc.CallOption) (*NotificationsResponse, error) {
	return invoke[NotificationsResponse](ctx, c.cc, fullMethod(NotificationViewServiceName, "DeriveNotifications"), in, opts)
}

func (c *NotificationViewServiceClient) RefreshNotifications(ctx context.Context, in *RefreshRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, fullMethod(NotificationViewServiceName, "RefreshNotifications"), in, opts)
}
