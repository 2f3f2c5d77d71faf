// Package delivery defines the contract every transport surface implements.
package delivery

import "context"

// Delivery is a servable transport (HTTP today). Implementations block in
// Serve until the surrounding lifecycle stops them.
type Delivery interface {
	Serve(ctx context.Context) error
}
