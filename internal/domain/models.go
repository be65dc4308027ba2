package domain

type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
}

// CartItem is an open JSON object. Only its "id" member is interpreted.
type CartItem map[string]any

func (i CartItem) ID() string { return documentID(i) }

// Order is an open JSON object stored as supplied by the caller.
type Order map[string]any

func (o Order) ID() string { return documentID(o) }

func documentID(doc map[string]any) string {
	id, _ := doc["id"].(string)
	return id
}

const (
	StatusAdded        = "added"
	StatusRemoved      = "removed"
	StatusOrderCreated = "order_created"
)

type StatusResult struct {
	Status string `json:"status"`
}

// Mode is the backend a store was built with. It never changes after construction.
type Mode string

const (
	ModeRemote Mode = "remote"
	ModeLocal  Mode = "local"
)
