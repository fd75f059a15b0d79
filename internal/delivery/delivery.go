// Package delivery defines the contract every transport surface implements.
package delivery

import "context"

// Delivery is one serving surface of the application (HTTP server,
// background scheduler). Serve blocks until the surface stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
