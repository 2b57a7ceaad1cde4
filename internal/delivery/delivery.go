// Package delivery defines the contract every transport entry point
// (HTTP server, background scheduler) implements so main can start them
// uniformly.
package delivery

import "context"

// Delivery is a long-running transport that serves until the context is
// cancelled or the process shuts down.
type Delivery interface {
	Serve(ctx context.Context) error
}
