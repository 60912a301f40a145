package ports

import (
	"context"

	"spktrack/internal/core/domain/model/kernel"
	"spktrack/internal/core/domain/model/stock"
)

// StockRepository defines the persistence contract for material stock levels.
type StockRepository interface {
	// GetByMaterialIDs retrieves the stock rows for the given materials,
	// keyed by material identifier. Missing materials are absent from the
	// result rather than an error; callers decide whether absence is fatal.
	GetByMaterialIDs(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]*stock.MaterialStock, error)

	// Update persists a changed stock level.
	Update(ctx context.Context, aggregate *stock.MaterialStock) error
}
