package test

import (
	"context"

	"github.com/google/uuid"

	"github.com/mkarev/shopapi/internal/domain/model"
)

// AuthFacadeStub provides controllable behaviour for signup/login endpoints.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, string, string) (string, error)
	AuthenticateFn func(context.Context, string, string) (string, error)
}

// Register delegates to the override or returns a default token.
func (s AuthFacadeStub) Register(ctx context.Context, login, password string) (string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, login, password)
	}
	return "token", nil
}

// Authenticate delegates to the override or returns a default token.
func (s AuthFacadeStub) Authenticate(ctx context.Context, login, password string) (string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, login, password)
	}
	return "token", nil
}

// IdentityStub resolves tokens and user records for middleware.
type IdentityStub struct {
	ParseFn    func(string) (uuid.UUID, error)
	UserByIDFn func(context.Context, uuid.UUID) (*model.User, error)
	ID         uuid.UUID
	User       *model.User
}

// ParseToken resolves any token to the configured id.
func (s IdentityStub) ParseToken(token string) (uuid.UUID, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return s.ID, nil
}

// UserByID returns the configured user or a plain customer with that id.
func (s IdentityStub) UserByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	if s.UserByIDFn != nil {
		return s.UserByIDFn(ctx, id)
	}
	if s.User != nil {
		return s.User, nil
	}
	return &model.User{ID: id, Login: "user", Role: model.RoleCustomer}, nil
}

// ProductFacadeStub simulates catalog operations.
type ProductFacadeStub struct {
	ProductsFn   func(context.Context) ([]model.Product, error)
	ProductFn    func(context.Context, uuid.UUID) (*model.Product, error)
	AddProductFn func(context.Context, string, string, float64) (*model.Product, error)
}

// Products returns configured catalog entries.
func (s ProductFacadeStub) Products(ctx context.Context) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx)
	}
	return []model.Product{{ID: uuid.New(), Name: "keyboard", Price: 59.9}}, nil
}

// Product returns a single configured product.
func (s ProductFacadeStub) Product(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	if s.ProductFn != nil {
		return s.ProductFn(ctx, id)
	}
	return &model.Product{ID: id, Name: "keyboard", Price: 59.9}, nil
}

// AddProduct returns the created product.
func (s ProductFacadeStub) AddProduct(ctx context.Context, name, description string, price float64) (*model.Product, error) {
	if s.AddProductFn != nil {
		return s.AddProductFn(ctx, name, description, price)
	}
	return &model.Product{ID: uuid.New(), Name: name, Description: description, Price: price}, nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	PlaceFn   func(context.Context, uuid.UUID, []model.OrderItem, string, float64) (*model.Order, error)
	OrdersFn  func(context.Context) ([]model.OrderWithOwner, error)
	DeliverFn func(context.Context, uuid.UUID) error
}

// PlaceOrder delegates to the override or echoes the input back.
func (s OrderFacadeStub) PlaceOrder(ctx context.Context, ownerID uuid.UUID, items []model.OrderItem, address string, price float64) (*model.Order, error) {
	if s.PlaceFn != nil {
		return s.PlaceFn(ctx, ownerID, items, address, price)
	}
	return &model.Order{ID: uuid.New(), OwnerID: ownerID, Items: items, Address: address, Price: price}, nil
}

// Orders returns predefined orders.
func (s OrderFacadeStub) Orders(ctx context.Context) ([]model.OrderWithOwner, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx)
	}
	return nil, nil
}

// MarkDelivered executes the configured delivery handler.
func (s OrderFacadeStub) MarkDelivered(ctx context.Context, id uuid.UUID) error {
	if s.DeliverFn != nil {
		return s.DeliverFn(ctx, id)
	}
	return nil
}

// ShopFacadeStub aggregates the full facade surface used across handlers.
type ShopFacadeStub struct {
	AuthFacadeStub
	IdentityStub
	ProductFacadeStub
	OrderFacadeStub
}
