package usecase

import (
	"context"
	"fmt"
	"slices"

	"cloudmart_service/internal/domain"

	"github.com/sirupsen/logrus"
)

type CatalogUseCase interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	ListCategories(ctx context.Context) ([]string, error)
}

type catalogUseCase struct {
	productRepo domain.ProductRepository
	log         *logrus.Logger
}

func NewCatalogUseCase(repo domain.ProductRepository, logger *logrus.Logger) CatalogUseCase {
	return &catalogUseCase{
		productRepo: repo,
		log:         logger,
	}
}

func (uc *catalogUseCase) ListProducts(ctx context.Context) ([]domain.Product, error) {
	uc.log.Info("Use Case: Attempting to list products")
	products, err := uc.productRepo.ListProducts(ctx)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list products: %v", err)
		return nil, err
	}
	uc.log.Infof("Use Case: Retrieved %d products", len(products))
	return products, nil
}

func (uc *catalogUseCase) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	uc.log.Infof("Use Case: Attempting to get product with ID %s", id)
	product, err := uc.productRepo.GetProductByID(ctx, id)
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to get product ID %s: %v", id, err)
		return nil, err
	}
	uc.log.Infof("Use Case: Product retrieved successfully for ID %s", id)
	return product, nil
}

// ListCategories returns each distinct product category once, in ascending order.
func (uc *catalogUseCase) ListCategories(ctx context.Context) ([]string, error) {
	products, err := uc.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not retrieve categories: %w", err)
	}

	categories := make([]string, 0, len(products))
	for _, p := range products {
		categories = append(categories, p.Category)
	}
	slices.Sort(categories)
	categories = slices.Compact(categories)

	uc.log.Infof("Use Case: Derived %d categories from %d products", len(categories), len(products))
	return categories, nil
}
