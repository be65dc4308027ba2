package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"cloudmart_service/internal/domain"

	"github.com/sirupsen/logrus"
)

// documentStore serves every operation from three remote collections.
type documentStore struct {
	products Collection
	cart     Collection
	orders   Collection
	closer   io.Closer
	log      *logrus.Logger
}

// NewDocumentStore builds a remote store. closer may be nil when the driver holds nothing to release.
func NewDocumentStore(products, cart, orders Collection, closer io.Closer, logger *logrus.Logger) domain.Store {
	return &documentStore{
		products: products,
		cart:     cart,
		orders:   orders,
		closer:   closer,
		log:      logger,
	}
}

func (s *documentStore) Mode() domain.Mode { return domain.ModeRemote }

func (s *documentStore) Close() error {
	if s.closer == nil {
		return nil
	}
	s.log.Info("Remote store: closing connection")
	return s.closer.Close()
}

func (s *documentStore) ListProducts(ctx context.Context) ([]domain.Product, error) {
	docs, err := s.products.ReadAll(ctx)
	if err != nil {
		s.log.Errorf("Failed to read %s collection: %v", s.products.Name(), err)
		return nil, fmt.Errorf("could not list products: %w", err)
	}
	products, err := decodeAll[domain.Product](docs)
	if err != nil {
		s.log.Errorf("Failed to decode %s documents: %v", s.products.Name(), err)
		return nil, err
	}
	s.log.Infof("Retrieved %d products", len(products))
	return products, nil
}

func (s *documentStore) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	docs, err := s.products.FindByID(ctx, id)
	if err != nil {
		s.log.Errorf("Failed to get product by ID %s: %v", id, err)
		return nil, fmt.Errorf("could not get product by id: %w", err)
	}
	if len(docs) == 0 {
		s.log.Warnf("Product with ID %s not found", id)
		return nil, fmt.Errorf("product with id %s: %w", id, domain.ErrProductNotFound)
	}
	var product domain.Product
	if err := json.Unmarshal(docs[0], &product); err != nil {
		s.log.Errorf("Failed to decode product %s: %v", id, err)
		return nil, fmt.Errorf("%w: product %s: %v", domain.ErrInvalidDocument, id, err)
	}
	return &product, nil
}

func (s *documentStore) ListCartItems(ctx context.Context) ([]domain.CartItem, error) {
	docs, err := s.cart.ReadAll(ctx)
	if err != nil {
		s.log.Errorf("Failed to read %s collection: %v", s.cart.Name(), err)
		return nil, fmt.Errorf("could not list cart items: %w", err)
	}
	items, err := decodeAll[domain.CartItem](docs)
	if err != nil {
		s.log.Errorf("Failed to decode %s documents: %v", s.cart.Name(), err)
		return nil, err
	}
	s.log.Infof("Retrieved %d cart items", len(items))
	return items, nil
}

func (s *documentStore) AddCartItem(ctx context.Context, item domain.CartItem) error {
	if err := s.create(ctx, s.cart, item.ID(), item); err != nil {
		return fmt.Errorf("could not add cart item: %w", err)
	}
	s.log.Infof("Cart item %s created", item.ID())
	return nil
}

func (s *documentStore) RemoveCartItem(ctx context.Context, id string) error {
	err := s.cart.Delete(ctx, id)
	if errors.Is(err, domain.ErrDocumentNotFound) {
		s.log.Warnf("Cart item %s did not exist, nothing removed", id)
		return nil
	}
	if err != nil {
		s.log.Errorf("Failed to delete cart item %s: %v", id, err)
		return fmt.Errorf("could not remove cart item: %w", err)
	}
	s.log.Infof("Cart item %s removed", id)
	return nil
}

func (s *documentStore) CreateOrder(ctx context.Context, order domain.Order) error {
	if err := s.create(ctx, s.orders, order.ID(), order); err != nil {
		return fmt.Errorf("could not create order: %w", err)
	}
	s.log.Infof("Order %s created", order.ID())
	return nil
}

func (s *documentStore) ListOrders(ctx context.Context) ([]domain.Order, error) {
	docs, err := s.orders.ReadAll(ctx)
	if err != nil {
		s.log.Errorf("Failed to read %s collection: %v", s.orders.Name(), err)
		return nil, fmt.Errorf("could not list orders: %w", err)
	}
	orders, err := decodeAll[domain.Order](docs)
	if err != nil {
		s.log.Errorf("Failed to decode %s documents: %v", s.orders.Name(), err)
		return nil, err
	}
	s.log.Infof("Retrieved %d orders", len(orders))
	return orders, nil
}

func (s *documentStore) create(ctx context.Context, c Collection, id string, doc any) error {
	if id == "" {
		s.log.Warnf("Rejected document without a string id for %s", c.Name())
		return fmt.Errorf("%w: %s document needs a non-empty string id", domain.ErrInvalidDocument, c.Name())
	}
	body, err := json.Marshal(doc)
	if err != nil {
		s.log.Errorf("Failed to encode document for %s: %v", c.Name(), err)
		return fmt.Errorf("%w: %v", domain.ErrInvalidDocument, err)
	}
	if err := c.Create(ctx, id, body); err != nil {
		if errors.Is(err, domain.ErrDocumentConflict) {
			s.log.Warnf("Document %s already exists in %s", id, c.Name())
		} else {
			s.log.Errorf("Failed to create document %s in %s: %v", id, c.Name(), err)
		}
		return err
	}
	return nil
}

func decodeAll[T any](docs [][]byte) ([]T, error) {
	out := make([]T, 0, len(docs))
	for _, doc := range docs {
		var v T
		if err := json.Unmarshal(doc, &v); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidDocument, err)
		}
		out = append(out, v)
	}
	return out, nil
}
