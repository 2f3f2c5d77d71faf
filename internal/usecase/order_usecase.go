package usecase

import (
	"context"
)

// RequiredOrderFields is the required-attribute list for order creation and
// update; complement is optional.
var RequiredOrderFields = []string{"productId", "userId", "quantity", "zipCode", "streetNumber"}

// OrderInput carries the order payload for create and update. Quantity must
// be a positive integer; the boundary validator rejects zero and negatives.
type OrderInput struct {
	ProductID    string `json:"productId"`
	UserID       string `json:"userId"`
	Quantity     int    `json:"quantity" validate:"gte=1"`
	ZipCode      string `json:"zipCode"`
	StreetNumber int    `json:"streetNumber"`
	Complement   string `json:"complement"`
}

// OrderOutput is the outward order projection.
type OrderOutput struct {
	ID                string  `json:"id"`
	ProductID         string  `json:"productId"`
	UserID            string  `json:"userId"`
	Quantity          int     `json:"quantity"`
	ZipCode           string  `json:"zipCode"`
	StreetNumber      int     `json:"streetNumber"`
	Complement        string  `json:"complement,omitempty"`
	TotalValue        float64 `json:"totalValue"`
	CreationTimestamp string  `json:"creationTimestamp,omitempty"`
	UpdatedTimestamp  string  `json:"updatedTimestamp,omitempty"`
}

// OrderUsecase defines the business operations around orders.
type OrderUsecase interface {
	// CreateOrder checks the embedded product and user references, snapshots
	// the total value from the product's current price, and persists the
	// order.
	CreateOrder(ctx context.Context, input *OrderInput) (*OrderOutput, error)

	// ListOrders returns every order.
	ListOrders(ctx context.Context) ([]*OrderOutput, error)

	// GetOrder returns a single order.
	GetOrder(ctx context.Context, id string) (*OrderOutput, error)

	// UpdateOrder re-checks both references and recomputes the total value
	// from the referenced product's price at edit time.
	UpdateOrder(ctx context.Context, id string, input *OrderInput) error

	// DeleteOrder removes an order after confirming it exists.
	DeleteOrder(ctx context.Context, id string) error
}
