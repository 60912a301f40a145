package ports

import (
	"context"

	"spktrack/internal/core/domain/model/bundle"
	"spktrack/internal/core/domain/model/kernel"
)

// BundleRepository defines the persistence contract for bundle aggregates.
// Provides methods for storing, retrieving, and querying bundle entities
// with their stage and side-effect flags.
type BundleRepository interface {
	// AddAll persists a batch of new bundle aggregates to storage.
	// Used by order decomposition to store all bundles of an order at once.
	AddAll(ctx context.Context, aggregates []*bundle.Bundle) error

	// Update persists changes to an existing bundle aggregate with a
	// conditional stage check: the write applies only if the stored stage
	// still equals fromStage. A lost race fails with ConcurrencyConflictError
	// and persists nothing.
	Update(ctx context.Context, aggregate *bundle.Bundle, fromStage bundle.Stage) error

	// Get retrieves a bundle aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*bundle.Bundle, error)

	// GetByCode retrieves a bundle aggregate by its printed label.
	GetByCode(ctx context.Context, code string) (*bundle.Bundle, error)

	// GetAllByOrder retrieves all bundles belonging to the given order,
	// in code sequence.
	GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*bundle.Bundle, error)

	// CountByOrder returns the number of bundles the given order has been
	// decomposed into. Zero means the order has not been decomposed.
	CountByOrder(ctx context.Context, orderID kernel.UUID) (int, error)
}
