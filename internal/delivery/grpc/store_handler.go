package grpc

import (
	"context"
	"encoding/json"
	"errors"

	"cloudmart_service/internal/delivery"
	"cloudmart_service/internal/domain"
	"cloudmart_service/internal/usecase"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type StoreHandler struct {
	catalogUseCase usecase.CatalogUseCase
	cartUseCase    usecase.CartUseCase
	orderUseCase   usecase.OrderUseCase
	log            *logrus.Logger
}

func NewStoreHandler(catalog usecase.CatalogUseCase, cart usecase.CartUseCase, orders usecase.OrderUseCase, logger *logrus.Logger) *StoreHandler {
	return &StoreHandler{
		catalogUseCase: catalog,
		cartUseCase:    cart,
		orderUseCase:   orders,
		log:            logger,
	}
}

var _ StoreServiceServer = (*StoreHandler)(nil)

func (h *StoreHandler) ListProducts(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	h.log.Info("gRPC Handler: Received ListProducts request")
	products, err := h.catalogUseCase.ListProducts(ctx)
	if err != nil {
		h.log.Errorf("gRPC Handler: ListProducts use case error: %v", err)
		return nil, mapDomainErrorToGrpcStatus(err)
	}
	return toListValue(products)
}

func (h *StoreHandler) GetProduct(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	id := req.GetValue()
	h.log.Infof("gRPC Handler: Received GetProduct request: ID=%s", id)
	if id == "" {
		return nil, status.Error(codes.InvalidArgument, "Product ID is required")
	}

	product, err := h.catalogUseCase.GetProduct(ctx, id)
	if err != nil {
		h.log.Warnf("gRPC Handler: GetProduct use case error for ID %s: %v", id, err)
		return nil, mapDomainErrorToGrpcStatus(err)
	}
	return toStruct(product)
}

func (h *StoreHandler) ListCategories(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	h.log.Info("gRPC Handler: Received ListCategories request")
	categories, err := h.catalogUseCase.ListCategories(ctx)
	if err != nil {
		h.log.Errorf("gRPC Handler: ListCategories use case error: %v", err)
		return nil, mapDomainErrorToGrpcStatus(err)
	}
	return toListValue(categories)
}

func (h *StoreHandler) ListCart(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	h.log.Info("gRPC Handler: Received ListCart request")
	items, err := h.cartUseCase.ListCart(ctx)
	if err != nil {
		h.log.Errorf("gRPC Handler: ListCart use case error: %v", err)
		return nil, mapDomainErrorToGrpcStatus(err)
	}
	return toListValue(items)
}

func (h *StoreHandler) AddToCart(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	item := domain.CartItem(req.AsMap())
	if err := delivery.EnsureDocumentID(item); err != nil {
		h.log.Warnf("gRPC Handler: Rejected AddToCart request: %v", err)
		return nil, mapDomainErrorToGrpcStatus(err)
	}
	h.log.Infof("gRPC Handler: Received AddToCart request: ID=%s", item.ID())

	result, err := h.cartUseCase.AddToCart(ctx, item)
	if err != nil {
		h.log.Errorf("gRPC Handler: AddToCart use case error: %v", err)
		return nil, mapDomainErrorToGrpcStatus(err)
	}
	return toStruct(result)
}

func (h *StoreHandler) RemoveFromCart(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	id := req.GetValue()
	h.log.Infof("gRPC Handler: Received RemoveFromCart request: ID=%s", id)
	if id == "" {
		return nil, status.Error(codes.InvalidArgument, "Cart item ID is required")
	}

	result, err := h.cartUseCase.RemoveFromCart(ctx, id)
	if err != nil {
		h.log.Errorf("gRPC Handler: RemoveFromCart use case error for ID %s: %v", id, err)
		return nil, mapDomainErrorToGrpcStatus(err)
	}
	return toStruct(result)
}

func (h *StoreHandler) CreateOrder(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	order := domain.Order(req.AsMap())
	if err := delivery.EnsureDocumentID(order); err != nil {
		h.log.Warnf("gRPC Handler: Rejected CreateOrder request: %v", err)
		return nil, mapDomainErrorToGrpcStatus(err)
	}
	h.log.Infof("gRPC Handler: Received CreateOrder request: ID=%s", order.ID())

	result, err := h.orderUseCase.CreateOrder(ctx, order)
	if err != nil {
		h.log.Errorf("gRPC Handler: CreateOrder use case error: %v", err)
		return nil, mapDomainErrorToGrpcStatus(err)
	}
	return toStruct(result)
}

func (h *StoreHandler) ListOrders(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	h.log.Info("gRPC Handler: Received ListOrders request")
	orders, err := h.orderUseCase.ListOrders(ctx)
	if err != nil {
		h.log.Errorf("gRPC Handler: ListOrders use case error: %v", err)
		return nil, mapDomainErrorToGrpcStatus(err)
	}
	return toListValue(orders)
}

func mapDomainErrorToGrpcStatus(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, domain.ErrProductNotFound), errors.Is(err, domain.ErrDocumentNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domain.ErrDocumentConflict):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, domain.ErrInvalidDocument):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Errorf(codes.Internal, "Internal server error: %v", err)
	}
}

// toStruct and toListValue go through JSON so typed values (products, status results) and open
// documents share one conversion into protobuf Values.
func toStruct(v any) (*structpb.Struct, error) {
	var m map[string]any
	if err := roundTripJSON(v, &m); err != nil {
		return nil, err
	}
	s, err := structpb.NewStruct(m)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "could not encode response: %v", err)
	}
	return s, nil
}

func toListValue(v any) (*structpb.ListValue, error) {
	list := []any{}
	if err := roundTripJSON(v, &list); err != nil {
		return nil, err
	}
	lv, err := structpb.NewList(list)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "could not encode response: %v", err)
	}
	return lv, nil
}

func roundTripJSON(in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return status.Errorf(codes.Internal, "could not encode response: %v", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return status.Errorf(codes.Internal, "could not encode response: %v", err)
	}
	return nil
}
