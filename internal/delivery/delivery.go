// Package delivery defines the contract every transport front (HTTP today,
// possibly gRPC later) fulfills so the application can start them uniformly.
package delivery

import "context"

// Delivery is a serving front of the application.
type Delivery interface {
	// Serve blocks until the delivery stops or fails.
	Serve(ctx context.Context) error
}
