package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/mkarev/shopapi/internal/domain/model"
	"github.com/mkarev/shopapi/internal/domain/repository"
)

// OrderUseCase encapsulates the order lifecycle. Line items, address and
// price are persisted as supplied: the service performs no cross-checks
// against the catalog.
type OrderUseCase struct {
	orders repository.OrderRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders}
}

// Place persists a new order owned by the given user, undelivered.
func (u *OrderUseCase) Place(ctx context.Context, ownerID uuid.UUID, items []model.OrderItem, address string, price float64) (*model.Order, error) {
	return u.orders.Create(ctx, ownerID, items, address, price)
}

// MarkDelivered transitions the order to its terminal delivered state. The
// transition is idempotent and an unknown id is not an error.
func (u *OrderUseCase) MarkDelivered(ctx context.Context, id uuid.UUID) error {
	return u.orders.SetDelivered(ctx, id)
}

// ListAll returns every order with its owner record expanded.
func (u *OrderUseCase) ListAll(ctx context.Context) ([]model.OrderWithOwner, error) {
	return u.orders.ListWithOwners(ctx)
}
