package grpc

import (
	"context"
	"encoding/json"
	"fmt"

	"cloudmart_service/internal/domain"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// StoreClient calls StoreService and decodes replies back into domain types.
type StoreClient struct {
	conn grpc.ClientConnInterface
	log  *logrus.Logger
}

func NewStoreClient(conn grpc.ClientConnInterface, logger *logrus.Logger) *StoreClient {
	return &StoreClient{conn: conn, log: logger}
}

func (c *StoreClient) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	err := c.invokeList(ctx, "ListProducts", &products)
	return products, err
}

func (c *StoreClient) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	c.log.Debugf("StoreClient(gRPC): Calling GetProduct: ID=%s", id)
	out := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, fullMethod("GetProduct"), wrapperspb.String(id), out); err != nil {
		return nil, err
	}
	var product domain.Product
	if err := fromProto(out, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *StoreClient) ListCategories(ctx context.Context) ([]string, error) {
	var categories []string
	err := c.invokeList(ctx, "ListCategories", &categories)
	return categories, err
}

func (c *StoreClient) ListCart(ctx context.Context) ([]domain.CartItem, error) {
	var items []domain.CartItem
	err := c.invokeList(ctx, "ListCart", &items)
	return items, err
}

func (c *StoreClient) AddToCart(ctx context.Context, item domain.CartItem) (domain.StatusResult, error) {
	return c.invokeDocument(ctx, "AddToCart", item)
}

func (c *StoreClient) RemoveFromCart(ctx context.Context, id string) (domain.StatusResult, error) {
	c.log.Debugf("StoreClient(gRPC): Calling RemoveFromCart: ID=%s", id)
	return c.invokeStatus(ctx, "RemoveFromCart", wrapperspb.String(id))
}

func (c *StoreClient) CreateOrder(ctx context.Context, order domain.Order) (domain.StatusResult, error) {
	return c.invokeDocument(ctx, "CreateOrder", order)
}

func (c *StoreClient) ListOrders(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	err := c.invokeList(ctx, "ListOrders", &orders)
	return orders, err
}

func (c *StoreClient) invokeList(ctx context.Context, method string, out any) error {
	c.log.Debugf("StoreClient(gRPC): Calling %s", method)
	reply := new(structpb.ListValue)
	if err := c.conn.Invoke(ctx, fullMethod(method), new(emptypb.Empty), reply); err != nil {
		return err
	}
	return fromProto(reply, out)
}

func (c *StoreClient) invokeDocument(ctx context.Context, method string, doc map[string]any) (domain.StatusResult, error) {
	c.log.Debugf("StoreClient(gRPC): Calling %s: ID=%v", method, doc["id"])
	in, err := structpb.NewStruct(doc)
	if err != nil {
		return domain.StatusResult{}, fmt.Errorf("%w: %v", domain.ErrInvalidDocument, err)
	}
	return c.invokeStatus(ctx, method, in)
}

func (c *StoreClient) invokeStatus(ctx context.Context, method string, in proto.Message) (domain.StatusResult, error) {
	reply := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, fullMethod(method), in, reply); err != nil {
		return domain.StatusResult{}, err
	}
	var result domain.StatusResult
	err := fromProto(reply, &result)
	return result, err
}

// fromProto decodes a Struct or ListValue reply through its JSON form.
func fromProto(msg interface{ MarshalJSON() ([]byte, error) }, out any) error {
	body, err := msg.MarshalJSON()
	if err != nil {
		return fmt.Errorf("could not decode reply: %w", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("could not decode reply: %w", err)
	}
	return nil
}
