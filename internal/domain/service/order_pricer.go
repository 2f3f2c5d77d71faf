// Package service defines domain service interfaces implemented by the
// infrastructure layer and injected into usecases.
package service

// OrderPricer computes an order's total value from a resolved product price
// and a requested quantity. The result is a snapshot: it is stored on the
// order and never recomputed from later price changes, except when an update
// re-resolves the (possibly different) product at edit time.
type OrderPricer interface {
	Total(unitPrice float64, quantity int) float64
}
