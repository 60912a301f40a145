package stockrepo

import (
	"context"

	"spktrack/internal/core/domain/model/kernel"
	"spktrack/internal/core/domain/model/stock"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStockRepository implements StockRepository using GORM.
type GormStockRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormStockRepository creates a new GORM stock repository.
func NewGormStockRepository(db *gorm.DB, tracker aggregateTracker) *GormStockRepository {
	return &GormStockRepository{
		db:      db,
		tracker: tracker,
	}
}

// GetByMaterialIDs retrieves the stock rows for the given materials with a
// row lock, so two cutting scans drawing the same material serialize at the
// database. Missing materials are simply absent from the result.
func (r *GormStockRepository) GetByMaterialIDs(
	ctx context.Context,
	ids []kernel.UUID,
) (map[kernel.UUID]*stock.MaterialStock, error) {
	rawIDs := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		rawIDs = append(rawIDs, id.Bytes())
	}

	var dtos []MaterialStockDTO
	err := r.db.WithContext(ctx).
		Clauses(forUpdateClause()).
		Find(&dtos, "material_id IN ?", rawIDs).Error
	if err != nil {
		return nil, err
	}

	stocks := make(map[kernel.UUID]*stock.MaterialStock, len(dtos))
	for _, dto := range dtos {
		materialStock, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		stocks[materialStock.MaterialID()] = materialStock
	}

	return stocks, nil
}

// Update saves a changed stock level.
func (r *GormStockRepository) Update(ctx context.Context, aggregate *stock.MaterialStock) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&MaterialStockDTO{}).
		Where("material_id = ?", dto.MaterialID).
		Select("CurrentStock").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.MaterialID(), aggregate)
	return nil
}

func forUpdateClause() clause.Expression {
	return clause.Locking{Strength: "UPDATE"}
}
