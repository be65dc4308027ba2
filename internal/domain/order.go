package domain

import "context"

type OrderRepository interface {
	CreateOrder(ctx context.Context, order Order) error
	ListOrders(ctx context.Context) ([]Order, error)
}
