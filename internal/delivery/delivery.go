// Package delivery defines the contract every transport server fulfills.
package delivery

import (
	"context"
	"time"
)

// DefaultShutdownTimeout bounds graceful shutdown of a delivery server.
const DefaultShutdownTimeout = 10 * time.Second

// Delivery is a transport server that blocks in Serve until it is shut down.
type Delivery interface {
	Serve(ctx context.Context) error
}
