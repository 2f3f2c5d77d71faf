package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrProductNotFound is returned when a product lookup matches nothing.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the standard operations for product persistence.
type ProductRepository interface {
	// Create persists a new product entity and fills in the assigned id.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a single product by id.
	FindByID(ctx context.Context, id string) (*entity.Product, error)

	// FindAll retrieves every product.
	FindAll(ctx context.Context) ([]*entity.Product, error)

	// FindPriceByID retrieves only the price of a product, the projection the
	// order pricing step needs.
	FindPriceByID(ctx context.Context, id string) (float64, error)

	// Update applies the full updatable field set of a product. Returns
	// ErrProductNotFound when no record matched.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product by id.
	Delete(ctx context.Context, id string) error
}
