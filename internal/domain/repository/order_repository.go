package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrOrderNotFound is returned when an order lookup matches nothing.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the standard operations for order persistence.
type OrderRepository interface {
	// Create persists a new order entity and fills in the assigned id.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves a single order by id.
	FindByID(ctx context.Context, id string) (*entity.Order, error)

	// FindAll retrieves every order.
	FindAll(ctx context.Context) ([]*entity.Order, error)

	// FindEnrichedByUser retrieves a user's orders annotated with the
	// referenced product's name, via a store-side join. Orders whose product
	// no longer exists are preserved with an empty name.
	FindEnrichedByUser(ctx context.Context, userID string) ([]*entity.EnrichedOrder, error)

	// CountByProduct reports how many orders reference the given product id.
	CountByProduct(ctx context.Context, productID string) (int64, error)

	// Update applies the full updatable field set of an order. Returns
	// ErrOrderNotFound when no record matched.
	Update(ctx context.Context, order *entity.Order) error

	// Delete removes an order by id.
	Delete(ctx context.Context, id string) error
}
