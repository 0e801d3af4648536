package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/mkarev/shopapi/internal/domain/model"
	"github.com/mkarev/shopapi/internal/domain/repository"
)

// ProductUseCase exposes catalog operations.
type ProductUseCase struct {
	products repository.ProductRepository
}

// NewProductUseCase constructs ProductUseCase.
func NewProductUseCase(products repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{products: products}
}

// Add creates a catalog entry.
func (u *ProductUseCase) Add(ctx context.Context, name, description string, price float64) (*model.Product, error) {
	return u.products.Create(ctx, name, description, price)
}

// Get fetches a single product by id.
func (u *ProductUseCase) Get(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	return u.products.GetByID(ctx, id)
}

// List returns the whole catalog.
func (u *ProductUseCase) List(ctx context.Context) ([]model.Product, error) {
	return u.products.List(ctx)
}
