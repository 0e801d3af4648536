package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderItem is a single immutable line item of an order. The json tags define
// the document layout the storage layer persists for the items column.
type OrderItem struct {
	ProductID uuid.UUID `json:"product"`
	Quantity  int       `json:"quantity"`
}

// Order describes a purchase placed by a user. Delivered is the only field
// that changes after creation, and only from false to true.
type Order struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Items     []OrderItem
	Address   string
	Price     float64
	Delivered bool
	CreatedAt time.Time
}

// OrderWithOwner is an order with its owner reference expanded to the full
// user record, as returned by the admin listing.
type OrderWithOwner struct {
	Order
	Owner User
}
