package viewv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
)

const ProductViewServiceName = servicePrefix + "ProductViewService"

type ProductViewServiceServer interface {
	DeriveProducts(context.Context, *DeriveRequest) (*ProductsResponse, error)
	RefreshProducts(context.Context, *RefreshRequest) (*emptypb.Empty, error)
	// LiveSearchProducts receives search box states and answers with a
	// derived view once typing pauses.
	LiveSearchProducts(ProductViewService_LiveSearchProductsServer) error
}

type ProductViewService_LiveSearchProductsServer interface {
	Send(*ProductsResponse) error
	Recv() (*DeriveRequest, error)
	grpc.ServerStream
}

var ProductViewService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ProductViewServiceName,
	HandlerType: (*ProductViewServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(ProductViewServiceName, "DeriveProducts", ProductViewServiceServer.DeriveProducts),
		unary(ProductViewServiceName, "RefreshProducts", ProductViewServiceServer.RefreshProducts),
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName: "LiveSearchProducts",
			Handler: func(srv interface{}, stream grpc.ServerStream) error {
				return srv.(ProductViewServiceServer).LiveSearchProducts(&liveSearchProductsServer{stream})
			},
			ServerStreams: true,
			ClientStreams: true,
		},
	},
	Metadata: "omnipos/view/v1/product.json",
}

func RegisterProductViewServiceServer(s grpc.ServiceRegistrar, srv ProductViewServiceServer) {
	s.RegisterService(&ProductViewService_ServiceDesc, srv)
}

type liveSearchProductsServer struct {
	grpc.ServerStream
}

func (x *liveSearchProductsServer) Send(m *ProductsResponse) error {
	return x.ServerStream.SendMsg(m)
}

func (x *liveSearchProductsServer) Recv() (*DeriveRequest, error) {
	m := new(DeriveRequest)
	if err := x.ServerStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

type ProductViewServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewProductViewServiceClient(cc grpc.ClientConnInterface) *ProductViewServiceClient {
	return &ProductViewServiceClient{cc: cc}
}

func (c *ProductViewServiceClient) DeriveProducts(ctx context.Context, in *DeriveRequest, opts ...grpc.CallOption) (*ProductsResponse, error) {
	return invoke[ProductsResponse](ctx, c.cc, fullMethod(ProductViewServiceName, "DeriveProducts"), in, opts)
}

func (c *ProductViewServiceClient) RefreshProducts(ctx context.Context, in *RefreshRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, fullMethod(ProductViewServiceName, "RefreshProducts"), in, opts)
}

type ProductViewService_LiveSearchProductsClient interface {
	Send(*DeriveRequest) error
	Recv() (*ProductsResponse, error)
	grpc.ClientStream
}

func (c *ProductViewServiceClient) LiveSearchProducts(ctx context.Context, opts ...grpc.CallOption) (ProductViewService_LiveSearchProductsClient, error) {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	stream, err := c.cc.NewStream(ctx, &ProductViewService_ServiceDesc.Streams[0], fullMethod(ProductViewServiceName, "LiveSearchProducts"), opts...)
	if err != nil {
		return nil, err
	}
	return &liveSearchProductsClient{stream}, nil
}

type liveSearchProductsClient struct {
	grpc.ClientStream
}

func (x *liveSearchProductsClient) Send(m *DeriveRequest) error {
	return x.ClientStream.SendMsg(m)
}

func (x *liveSearchProductsClient) Recv() (*ProductsResponse, error) {
	m := new(ProductsResponse)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}
