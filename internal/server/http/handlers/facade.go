package handlers

import (
	"context"

	"github.com/google/uuid"

	"github.com/mkarev/shopapi/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, login, password string) (string, error)
	Authenticate(ctx context.Context, login, password string) (string, error)
}

// IdentityFacade resolves tokens and user records for the middleware chain.
type IdentityFacade interface {
	ParseToken(token string) (uuid.UUID, error)
	UserByID(ctx context.Context, id uuid.UUID) (*model.User, error)
}

// ProductFacade encapsulates catalog operations exposed via HTTP.
type ProductFacade interface {
	Products(ctx context.Context) ([]model.Product, error)
	Product(ctx context.Context, id uuid.UUID) (*model.Product, error)
	AddProduct(ctx context.Context, name, description string, price float64) (*model.Product, error)
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, ownerID uuid.UUID, items []model.OrderItem, address string, price float64) (*model.Order, error)
	Orders(ctx context.Context) ([]model.OrderWithOwner, error)
	MarkDelivered(ctx context.Context, id uuid.UUID) error
}

// ShopFacade aggregates the full set of operations used across handlers.
type ShopFacade interface {
	AuthFacade
	IdentityFacade
	ProductFacade
	OrderFacade
}
