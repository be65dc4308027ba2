package repository

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"cloudmart_service/internal/domain"

	"github.com/sirupsen/logrus"
)

// SeedProducts is the catalog a local store starts with.
func SeedProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          "1",
			Name:        "Wireless Headphones Pro",
			Description: "Premium noise-cancelling wireless headphones with 30hr battery",
			Category:    "Electronics",
			Price:       199.99,
			Stock:       50,
		},
		{
			ID:          "2",
			Name:        "4K Smart TV 55\"",
			Description: "55-inch Ultra HD Smart TV with HDR",
			Category:    "Electronics",
			Price:       699.99,
			Stock:       20,
		},
	}
}

// memoryStore keeps everything in process memory. Contents are lost on restart.
type memoryStore struct {
	mu       sync.RWMutex
	products []domain.Product
	cart     []domain.CartItem
	orders   []domain.Order
	log      *logrus.Logger
}

func NewMemoryStore(products []domain.Product, logger *logrus.Logger) domain.Store {
	return &memoryStore{
		products: slices.Clone(products),
		cart:     []domain.CartItem{},
		orders:   []domain.Order{},
		log:      logger,
	}
}

func (s *memoryStore) Mode() domain.Mode { return domain.ModeLocal }

func (s *memoryStore) Close() error { return nil }

func (s *memoryStore) ListProducts(ctx context.Context) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.log.Debugf("Local store: returning %d products", len(s.products))
	return slices.Clone(s.products), nil
}

func (s *memoryStore) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	s.log.Warnf("Local store: product with ID %s not found", id)
	return nil, fmt.Errorf("product with id %s: %w", id, domain.ErrProductNotFound)
}

func (s *memoryStore) ListCartItems(ctx context.Context) ([]domain.CartItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneDocuments(s.cart), nil
}

func (s *memoryStore) AddCartItem(ctx context.Context, item domain.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = append(s.cart, cloneDocument(item))
	s.log.Debugf("Local store: cart item %q appended, cart size %d", item.ID(), len(s.cart))
	return nil
}

func (s *memoryStore) RemoveCartItem(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	before := len(s.cart)
	s.cart = slices.DeleteFunc(s.cart, func(item domain.CartItem) bool {
		return item.ID() == id
	})
	s.log.Debugf("Local store: removed %d cart items with ID %q", before-len(s.cart), id)
	return nil
}

func (s *memoryStore) CreateOrder(ctx context.Context, order domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, cloneDocument(order))
	s.log.Debugf("Local store: order appended, %d orders", len(s.orders))
	return nil
}

func (s *memoryStore) ListOrders(ctx context.Context) ([]domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneDocuments(s.orders), nil
}

// Documents are copied on the way in and out so callers never share maps with the store.
func cloneDocuments[D ~map[string]any](docs []D) []D {
	out := make([]D, len(docs))
	for i, doc := range docs {
		out[i] = cloneDocument(doc)
	}
	return out
}

func cloneDocument[D ~map[string]any](doc D) D {
	out := maps.Clone(doc)
	for k, v := range out {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneDocument(t)
	case []any:
		out := slices.Clone(t)
		for i := range out {
			out[i] = cloneValue(out[i])
		}
		return out
	default:
		return v
	}
}
