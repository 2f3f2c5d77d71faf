// Package pricing implements the order pricing domain service.
package pricing

import "storefront/internal/domain/service"

// snapshotPricer multiplies the unit price resolved at write time by the
// requested quantity. Quantity bounds are enforced at the boundary, not here.
type snapshotPricer struct{}

// NewSnapshotPricer is the constructor for the pricing service.
func NewSnapshotPricer() service.OrderPricer {
	return &snapshotPricer{}
}

// Total returns unitPrice multiplied by quantity.
func (p *snapshotPricer) Total(unitPrice float64, quantity int) float64 {
	return unitPrice * float64(quantity)
}
