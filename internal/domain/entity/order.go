package entity

// Order references a Product and a User by id. TotalValue is the product's
// price multiplied by quantity, evaluated when the order is written; later
// product price changes do not touch existing orders.
type Order struct {
	ID                string
	ProductID         string // Foreign key into products.
	UserID            string // Foreign key into users.
	Quantity          int
	ZipCode           string
	StreetNumber      int
	Complement        string // Optional free-text address complement.
	TotalValue        float64
	CreationTimestamp string
	UpdatedTimestamp  string
}

// EnrichedOrder is an Order annotated with the referenced product's display
// name, produced by the per-user aggregation. ProductName is empty when the
// product has since been deleted.
type EnrichedOrder struct {
	Order
	ProductName string
}
