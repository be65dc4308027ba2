package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ServiceName is the fully qualified gRPC service. Messages are protobuf well-known types, so
// clients need no generated stubs.
const ServiceName = "cloudmart.v1.StoreService"

type StoreServiceServer interface {
	ListProducts(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	GetProduct(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	ListCategories(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	ListCart(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	AddToCart(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RemoveFromCart(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	CreateOrder(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListOrders(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
}

func RegisterStoreServiceServer(s grpc.ServiceRegistrar, srv StoreServiceServer) {
	s.RegisterService(&storeServiceDesc, srv)
}

func fullMethod(name string) string { return "/" + ServiceName + "/" + name }

// unary adapts one server method to a grpc method handler.
func unary[Req proto.Message](name string, newReq func() Req, call func(StoreServiceServer, context.Context, Req) (proto.Message, error)) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := newReq()
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(StoreServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod(name)}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(StoreServiceServer), ctx, req.(Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

func newEmpty() *emptypb.Empty                { return new(emptypb.Empty) }
func newStringValue() *wrapperspb.StringValue { return new(wrapperspb.StringValue) }
func newStruct() *structpb.Struct             { return new(structpb.Struct) }

var storeServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*StoreServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListProducts",
			Handler: unary("ListProducts", newEmpty, func(s StoreServiceServer, ctx context.Context, in *emptypb.Empty) (proto.Message, error) {
				return s.ListProducts(ctx, in)
			}),
		},
		{
			MethodName: "GetProduct",
			Handler: unary("GetProduct", newStringValue, func(s StoreServiceServer, ctx context.Context, in *wrapperspb.StringValue) (proto.Message, error) {
				return s.GetProduct(ctx, in)
			}),
		},
		{
			MethodName: "ListCategories",
			Handler: unary("ListCategories", newEmpty, func(s StoreServiceServer, ctx context.Context, in *emptypb.Empty) (proto.Message, error) {
				return s.ListCategories(ctx, in)
			}),
		},
		{
			MethodName: "ListCart",
			Handler: unary("ListCart", newEmpty, func(s StoreServiceServer, ctx context.Context, in *emptypb.Empty) (proto.Message, error) {
				return s.ListCart(ctx, in)
			}),
		},
		{
			MethodName: "AddToCart",
			Handler: unary("AddToCart", newStruct, func(s StoreServiceServer, ctx context.Context, in *structpb.Struct) (proto.Message, error) {
				return s.AddToCart(ctx, in)
			}),
		},
		{
			MethodName: "RemoveFromCart",
			Handler: unary("RemoveFromCart", newStringValue, func(s StoreServiceServer, ctx context.Context, in *wrapperspb.StringValue) (proto.Message, error) {
				return s.RemoveFromCart(ctx, in)
			}),
		},
		{
			MethodName: "CreateOrder",
			Handler: unary("CreateOrder", newStruct, func(s StoreServiceServer, ctx context.Context, in *structpb.Struct) (proto.Message, error) {
				return s.CreateOrder(ctx, in)
			}),
		},
		{
			MethodName: "ListOrders",
			Handler: unary("ListOrders", newEmpty, func(s StoreServiceServer, ctx context.Context, in *emptypb.Empty) (proto.Message, error) {
				return s.ListOrders(ctx, in)
			}),
		},
	},
	Streams: []grpc.StreamDesc{},
}
