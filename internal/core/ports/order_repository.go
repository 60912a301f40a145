// Package ports defines repository and outbound-service interfaces for the
// production tracking domain. These interfaces establish contracts between the
// domain layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"spktrack/internal/core/domain/model/kernel"
	"spktrack/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their production status.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its current status.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllUnfinished retrieves all orders in Planned or InProgress status.
	// Used by the reconciliation job to recompute order statuses from their
	// bundles.
	GetAllUnfinished(ctx context.Context) ([]*order.Order, error)
}
