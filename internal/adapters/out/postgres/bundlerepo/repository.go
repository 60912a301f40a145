package bundlerepo

import (
	"context"
	"errors"

	"spktrack/internal/core/domain/model/bundle"
	"spktrack/internal/core/domain/model/kernel"
	"spktrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormBundleRepository implements BundleRepository using GORM.
type GormBundleRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormBundleRepository creates a new GORM bundle repository.
func NewGormBundleRepository(db *gorm.DB, tracker aggregateTracker) *GormBundleRepository {
	return &GormBundleRepository{
		db:      db,
		tracker: tracker,
	}
}

// AddAll saves a batch of new bundles to the database in one statement.
func (r *GormBundleRepository) AddAll(ctx context.Context, aggregates []*bundle.Bundle) error {
	dtos := make([]BundleDTO, 0, len(aggregates))
	for _, aggregate := range aggregates {
		if err := aggregate.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(aggregate))
	}

	if err := r.db.WithContext(ctx).Create(&dtos).Error; err != nil {
		return err
	}

	for _, aggregate := range aggregates {
		r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	}
	return nil
}

// Update saves an existing bundle, but only if its stored stage still equals
// fromStage. The conditional write is what makes concurrent scans of the same
// code safe even when the advisory lock expired: the loser matches zero rows
// and fails with ConcurrencyConflictError.
func (r *GormBundleRepository) Update(
	ctx context.Context,
	aggregate *bundle.Bundle,
	fromStage bundle.Stage,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&BundleDTO{}).
		Where("id = ? AND stage = ?", dto.ID, int(fromStage)).
		Select("Stage", "Paid", "Consumed").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConcurrencyConflictError(aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a bundle by ID.
func (r *GormBundleRepository) Get(ctx context.Context, id kernel.UUID) (*bundle.Bundle, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BundleDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("bundle", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByCode retrieves a bundle by its printed label.
func (r *GormBundleRepository) GetByCode(ctx context.Context, code string) (*bundle.Bundle, error) {
	var dto BundleDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("bundle", code)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByOrder retrieves all bundles of an order in code sequence.
func (r *GormBundleRepository) GetAllByOrder(
	ctx context.Context,
	orderID kernel.UUID,
) ([]*bundle.Bundle, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []BundleDTO
	err := r.db.WithContext(ctx).
		Order("code").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	bundles := make([]*bundle.Bundle, 0, len(dtos))
	for _, dto := range dtos {
		b, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		bundles = append(bundles, b)
	}

	return bundles, nil
}

// CountByOrder returns the number of bundles the order decomposed into.
func (r *GormBundleRepository) CountByOrder(ctx context.Context, orderID kernel.UUID) (int, error) {
	if err := orderID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&BundleDTO{}).
		Where("order_id = ?", orderID.Bytes()).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return int(count), nil
}
