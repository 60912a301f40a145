package ports

import (
	"context"

	"spktrack/internal/core/domain/model/kernel"
	"spktrack/internal/core/domain/model/product"
)

// ProductRepository defines the read contract for product aggregates.
// Products and their bills of materials are mastered outside the production
// core, so the repository exposes no writes.
type ProductRepository interface {
	// Get retrieves a product aggregate by its unique identifier,
	// including its complete bill of materials.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)
}
