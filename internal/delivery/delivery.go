// Package delivery defines what every inbound transport must provide to the fx app.
package delivery

import "context"

// Delivery is a long-running inbound server started by cmd/*.
type Delivery interface {
	// Serve blocks until the server stops. A clean shutdown returns nil.
	Serve(ctx context.Context) error
}
