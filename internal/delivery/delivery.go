// Package delivery defines the contract every transport server implements.
package delivery

import "context"

// Delivery is a serving surface (HTTP today) started by the fx runtime.
type Delivery interface {
	Serve(ctx context.Context) error
}
