package usecase

import (
	"context"
)

// RequiredProductFields is the required-attribute list for product creation
// and update (updates resubmit the full field set).
var RequiredProductFields = []string{"name", "brand", "size", "price", "url"}

// ProductInput carries the product payload for create and update.
type ProductInput struct {
	Name  string  `json:"name"`
	Brand string  `json:"brand"`
	Size  string  `json:"size"`
	Price float64 `json:"price" validate:"gte=0"`
	URL   string  `json:"url"`
}

// ProductOutput is the outward product projection.
type ProductOutput struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Brand             string  `json:"brand"`
	Size              string  `json:"size"`
	Price             float64 `json:"price"`
	URL               string  `json:"url"`
	CreationTimestamp string  `json:"creationTimestamp,omitempty"`
	UpdatedTimestamp  string  `json:"updatedTimestamp,omitempty"`
}

// ProductUsecase defines the business operations around products.
type ProductUsecase interface {
	// CreateProduct validates and persists a new product.
	CreateProduct(ctx context.Context, input *ProductInput) (*ProductOutput, error)

	// ListProducts returns every product.
	ListProducts(ctx context.Context) ([]*ProductOutput, error)

	// GetProduct returns a single product.
	GetProduct(ctx context.Context, id string) (*ProductOutput, error)

	// UpdateProduct applies the full updatable field set.
	UpdateProduct(ctx context.Context, id string, input *ProductInput) error

	// DeleteProduct removes a product, unless any order references it.
	DeleteProduct(ctx context.Context, id string) error
}
