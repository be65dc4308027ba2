package grpc

import (
	"context"
	"errors"
	"io"
	"net"
	"testing"

	"cloudmart_service/internal/domain"
	"cloudmart_service/internal/repository"
	"cloudmart_service/internal/usecase"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// startServer serves a StoreHandler over store on an in-memory listener and returns a connected client.
func startServer(t *testing.T, store domain.Store) (*StoreClient, *grpc.ClientConn) {
	t.Helper()
	logger := quietLogger()
	lis := bufconn.Listen(1 << 20)

	server := grpc.NewServer()
	RegisterStoreServiceServer(server, NewStoreHandler(
		usecase.NewCatalogUseCase(store, logger),
		usecase.NewCartUseCase(store, logger),
		usecase.NewOrderUseCase(store, logger),
		logger,
	))
	go func() { _ = server.Serve(lis) }()
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return NewStoreClient(conn, logger), conn
}

func TestStoreService_Catalog(t *testing.T) {
	ctx := context.Background()
	client, _ := startServer(t, repository.NewMemoryStore(repository.SeedProducts(), quietLogger()))

	products, err := client.ListProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, repository.SeedProducts(), products)

	for _, p := range products {
		got, err := client.GetProduct(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, p, *got)
	}

	categories, err := client.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Electronics"}, categories)
}

func TestStoreService_GetProductErrors(t *testing.T) {
	ctx := context.Background()
	client, conn := startServer(t, repository.NewMemoryStore(repository.SeedProducts(), quietLogger()))

	_, err := client.GetProduct(ctx, "42")
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = client.GetProduct(ctx, "")
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	err = conn.Invoke(ctx, fullMethod("RemoveFromCart"), wrapperspb.String(""), new(wrapperspb.StringValue))
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestStoreService_CartScenario(t *testing.T) {
	ctx := context.Background()
	client, _ := startServer(t, repository.NewMemoryStore(nil, quietLogger()))

	res, err := client.AddToCart(ctx, domain.CartItem{"id": "a", "qty": 2})
	require.NoError(t, err)
	assert.Equal(t, "added", res.Status)

	cart, err := client.ListCart(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.CartItem{{"id": "a", "qty": float64(2)}}, cart)

	res, err = client.RemoveFromCart(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "removed", res.Status)

	cart, err = client.ListCart(ctx)
	require.NoError(t, err)
	assert.Empty(t, cart)
}

func TestStoreService_Orders(t *testing.T) {
	ctx := context.Background()
	client, _ := startServer(t, repository.NewMemoryStore(nil, quietLogger()))

	res, err := client.CreateOrder(ctx, domain.Order{"id": "o1", "items": []any{"1", "2"}})
	require.NoError(t, err)
	assert.Equal(t, "order_created", res.Status)

	orders, err := client.ListOrders(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Order{{"id": "o1", "items": []any{"1", "2"}}}, orders)
}

type unavailableStore struct {
	domain.Store
}

func (unavailableStore) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return nil, errors.New("service unavailable")
}
func (unavailableStore) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return nil, domain.ErrInvalidDocument
}
func (unavailableStore) AddCartItem(ctx context.Context, item domain.CartItem) error {
	return domain.ErrDocumentConflict
}

func TestStoreService_MapsStoreErrors(t *testing.T) {
	ctx := context.Background()
	client, _ := startServer(t, unavailableStore{})

	_, err := client.ListOrders(ctx)
	assert.Equal(t, codes.Internal, status.Code(err))

	_, err = client.AddToCart(ctx, domain.CartItem{"id": "a"})
	assert.Equal(t, codes.AlreadyExists, status.Code(err))

	_, err = client.ListCategories(ctx)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestStoreService_AssignsMissingIDs(t *testing.T) {
	ctx := context.Background()
	client, _ := startServer(t, repository.NewMemoryStore(nil, quietLogger()))

	_, err := client.AddToCart(ctx, domain.CartItem{"qty": 1})
	require.NoError(t, err)
	_, err = client.CreateOrder(ctx, domain.Order{"total": 5})
	require.NoError(t, err)

	cart, err := client.ListCart(ctx)
	require.NoError(t, err)
	require.Len(t, cart, 1)
	_, err = uuid.Parse(cart[0].ID())
	assert.NoError(t, err)

	orders, err := client.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	_, err = uuid.Parse(orders[0].ID())
	assert.NoError(t, err)

	_, err = client.AddToCart(ctx, domain.CartItem{"id": 7})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	_, err = client.CreateOrder(ctx, domain.Order{"id": true})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}
