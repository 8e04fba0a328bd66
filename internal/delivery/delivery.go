// Package delivery defines the common contract for transport servers
// (HTTP API, Pub/Sub worker) started by the application container.
package delivery

import "context"

// Delivery is a long-running transport server.
type Delivery interface {
	// Serve blocks, serving requests until the server is shut down.
	Serve(ctx context.Context) error
}
