package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/mkarev/shopapi/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	Create(ctx context.Context, ownerID uuid.UUID, items []model.OrderItem, address string, price float64) (*model.Order, error)
	// SetDelivered marks the order delivered. Updating an unknown id is not
	// an error: the call succeeds without touching any row.
	SetDelivered(ctx context.Context, id uuid.UUID) error
	ListWithOwners(ctx context.Context) ([]model.OrderWithOwner, error)
}
