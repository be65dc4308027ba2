package repository

import "context"

// Fixed addressing of the remote store.
const (
	DatabaseName          = "cloudmart"
	ProductsCollection    = "products"
	CartCollection        = "cart"
	OrdersCollection      = "orders"
	productByIDQuery      = "SELECT * FROM c WHERE c.id = @id"
	readAllDocumentsQuery = "SELECT * FROM c"
)

// Collection is one named set of JSON documents in the remote store, keyed by document id.
// Drivers report a missing id on Delete with domain.ErrDocumentNotFound and a duplicate id on
// Create with domain.ErrDocumentConflict.
type Collection interface {
	Name() string
	ReadAll(ctx context.Context) ([][]byte, error)
	FindByID(ctx context.Context, id string) ([][]byte, error)
	Create(ctx context.Context, id string, doc []byte) error
	Delete(ctx context.Context, id string) error
}
