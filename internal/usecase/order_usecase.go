package usecase

import (
	"context"

	"cloudmart_service/internal/domain"

	"github.com/sirupsen/logrus"
)

type OrderUseCase interface {
	CreateOrder(ctx context.Context, order domain.Order) (domain.StatusResult, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
}

type orderUseCase struct {
	orderRepo domain.OrderRepository
	log       *logrus.Logger
}

func NewOrderUseCase(repo domain.OrderRepository, logger *logrus.Logger) OrderUseCase {
	return &orderUseCase{
		orderRepo: repo,
		log:       logger,
	}
}

// CreateOrder records order as given. Referenced products are not checked and the cart is left alone.
func (uc *orderUseCase) CreateOrder(ctx context.Context, order domain.Order) (domain.StatusResult, error) {
	uc.log.Infof("Use Case: Attempting to create order %q", order.ID())
	if err := uc.orderRepo.CreateOrder(ctx, order); err != nil {
		uc.log.Errorf("Use Case: Repository failed to create order %q: %v", order.ID(), err)
		return domain.StatusResult{}, err
	}
	uc.log.Infof("Use Case: Order %q created", order.ID())
	return domain.StatusResult{Status: domain.StatusOrderCreated}, nil
}

func (uc *orderUseCase) ListOrders(ctx context.Context) ([]domain.Order, error) {
	orders, err := uc.orderRepo.ListOrders(ctx)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list orders: %v", err)
		return nil, err
	}
	uc.log.Infof("Use Case: Retrieved %d orders", len(orders))
	return orders, nil
}
