package domain

// Store is the catalog, cart and order backend selected once at process start.
type Store interface {
	ProductRepository
	CartRepository
	OrderRepository
	Mode() Mode
	Close() error
}
