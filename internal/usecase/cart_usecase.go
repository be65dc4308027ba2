package usecase

import (
	"context"

	"cloudmart_service/internal/domain"

	"github.com/sirupsen/logrus"
)

type CartUseCase interface {
	ListCart(ctx context.Context) ([]domain.CartItem, error)
	AddToCart(ctx context.Context, item domain.CartItem) (domain.StatusResult, error)
	RemoveFromCart(ctx context.Context, id string) (domain.StatusResult, error)
}

type cartUseCase struct {
	cartRepo domain.CartRepository
	log      *logrus.Logger
}

func NewCartUseCase(repo domain.CartRepository, logger *logrus.Logger) CartUseCase {
	return &cartUseCase{
		cartRepo: repo,
		log:      logger,
	}
}

func (uc *cartUseCase) ListCart(ctx context.Context) ([]domain.CartItem, error) {
	items, err := uc.cartRepo.ListCartItems(ctx)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list cart: %v", err)
		return nil, err
	}
	uc.log.Infof("Use Case: Retrieved %d cart items", len(items))
	return items, nil
}

// AddToCart stores item exactly as given. Duplicates are not merged.
func (uc *cartUseCase) AddToCart(ctx context.Context, item domain.CartItem) (domain.StatusResult, error) {
	uc.log.Infof("Use Case: Attempting to add cart item %q", item.ID())
	if err := uc.cartRepo.AddCartItem(ctx, item); err != nil {
		uc.log.Errorf("Use Case: Repository failed to add cart item %q: %v", item.ID(), err)
		return domain.StatusResult{}, err
	}
	return domain.StatusResult{Status: domain.StatusAdded}, nil
}

func (uc *cartUseCase) RemoveFromCart(ctx context.Context, id string) (domain.StatusResult, error) {
	uc.log.Infof("Use Case: Attempting to remove cart item %q", id)
	if err := uc.cartRepo.RemoveCartItem(ctx, id); err != nil {
		uc.log.Errorf("Use Case: Repository failed to remove cart item %q: %v", id, err)
		return domain.StatusResult{}, err
	}
	return domain.StatusResult{Status: domain.StatusRemoved}, nil
}
