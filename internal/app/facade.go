package app

import (
	"context"

	"github.com/google/uuid"

	"github.com/mkarev/shopapi/internal/domain/model"
	"github.com/mkarev/shopapi/internal/usecase"
)

// ShopFacade is the single entry point handlers and middleware use to reach
// business logic.
type ShopFacade struct {
	auth     *usecase.AuthUseCase
	products *usecase.ProductUseCase
	orders   *usecase.OrderUseCase
}

func NewShopFacade(auth *usecase.AuthUseCase, products *usecase.ProductUseCase, orders *usecase.OrderUseCase) *ShopFacade {
	return &ShopFacade{auth: auth, products: products, orders: orders}
}

func (f *ShopFacade) Register(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Register(ctx, login, password)
	return token, err
}

func (f *ShopFacade) Authenticate(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, login, password)
	return token, err
}

func (f *ShopFacade) ParseToken(token string) (uuid.UUID, error) {
	return f.auth.ParseToken(token)
}

func (f *ShopFacade) UserByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return f.auth.GetByID(ctx, id)
}

func (f *ShopFacade) Products(ctx context.Context) ([]model.Product, error) {
	return f.products.List(ctx)
}

func (f *ShopFacade) Product(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	return f.products.Get(ctx, id)
}

func (f *ShopFacade) AddProduct(ctx context.Context, name, description string, price float64) (*model.Product, error) {
	return f.products.Add(ctx, name, description, price)
}

func (f *ShopFacade) PlaceOrder(ctx context.Context, ownerID uuid.UUID, items []model.OrderItem, address string, price float64) (*model.Order, error) {
	return f.orders.Place(ctx, ownerID, items, address, price)
}

func (f *ShopFacade) Orders(ctx context.Context) ([]model.OrderWithOwner, error) {
	return f.orders.ListAll(ctx)
}

func (f *ShopFacade) MarkDelivered(ctx context.Context, id uuid.UUID) error {
	return f.orders.MarkDelivered(ctx, id)
}
