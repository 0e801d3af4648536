package test

import (
	"context"

	"github.com/google/uuid"

	domainErrors "github.com/mkarev/shopapi/internal/domain/errors"
	"github.com/mkarev/shopapi/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[uuid.UUID]*model.User
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[uuid.UUID]*model.User),
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, login, passwordHash string, role model.Role) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[uuid.UUID]*model.User)
	}
	if _, exists := s.Users[login]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	user := &model.User{ID: uuid.New(), Login: login, PasswordHash: passwordHash, Role: role}
	s.Users[login] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByLogin fetches user by login or returns not found.
func (s *UserRepositoryStub) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[login]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ProductRepositoryStub keeps catalog entries in a slice.
type ProductRepositoryStub struct {
	Products []model.Product
	Err      error
}

// NewProductRepositoryStub constructs an empty catalog stub.
func NewProductRepositoryStub() *ProductRepositoryStub {
	return &ProductRepositoryStub{}
}

// Create appends a product with a fresh identifier.
func (s *ProductRepositoryStub) Create(ctx context.Context, name, description string, price float64) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	p := model.Product{ID: uuid.New(), Name: name, Description: description, Price: price}
	s.Products = append(s.Products, p)
	return &p, nil
}

// GetByID searches stored products or returns not found.
func (s *ProductRepositoryStub) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, p := range s.Products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// List returns stored products.
func (s *ProductRepositoryStub) List(ctx context.Context) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Products, nil
}

// PlacedOrder records the arguments of an OrderRepositoryStub.Create call.
type PlacedOrder struct {
	OwnerID uuid.UUID
	Items   []model.OrderItem
	Address string
	Price   float64
}

// OrderRepositoryStub allows tests to customize behaviour.
type OrderRepositoryStub struct {
	CreateFn       func(context.Context, uuid.UUID, []model.OrderItem, string, float64) (*model.Order, error)
	SetDeliveredFn func(context.Context, uuid.UUID) error
	ListFn         func(context.Context) ([]model.OrderWithOwner, error)

	Created   []PlacedOrder
	Delivered []uuid.UUID
	Orders    []model.OrderWithOwner
}

// Create tracks invocations and returns configured responses.
func (s *OrderRepositoryStub) Create(ctx context.Context, ownerID uuid.UUID, items []model.OrderItem, address string, price float64) (*model.Order, error) {
	s.Created = append(s.Created, PlacedOrder{OwnerID: ownerID, Items: items, Address: address, Price: price})
	if s.CreateFn != nil {
		return s.CreateFn(ctx, ownerID, items, address, price)
	}
	return &model.Order{ID: uuid.New(), OwnerID: ownerID, Items: items, Address: address, Price: price}, nil
}

// SetDelivered records the id or delegates to the override.
func (s *OrderRepositoryStub) SetDelivered(ctx context.Context, id uuid.UUID) error {
	if s.SetDeliveredFn != nil {
		return s.SetDeliveredFn(ctx, id)
	}
	s.Delivered = append(s.Delivered, id)
	return nil
}

// ListWithOwners returns configured orders.
func (s *OrderRepositoryStub) ListWithOwners(ctx context.Context) ([]model.OrderWithOwner, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return s.Orders, nil
}
