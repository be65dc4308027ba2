package domain

import "context"

type CartRepository interface {
	ListCartItems(ctx context.Context) ([]CartItem, error)
	AddCartItem(ctx context.Context, item CartItem) error
	RemoveCartItem(ctx context.Context, id string) error
}
