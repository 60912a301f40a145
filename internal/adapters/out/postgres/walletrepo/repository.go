package walletrepo

import (
	"context"
	"errors"

	"spktrack/internal/core/domain/model/kernel"
	"spktrack/internal/core/domain/model/wallet"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormWalletRepository implements WalletRepository using GORM.
type GormWalletRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormWalletRepository creates a new GORM wallet repository.
func NewGormWalletRepository(db *gorm.DB, tracker aggregateTracker) *GormWalletRepository {
	return &GormWalletRepository{
		db:      db,
		tracker: tracker,
	}
}

// GetOrCreate retrieves the wallet for the given worker, inserting an empty
// one on the worker's first completed bundle.
//
// The read takes a row lock. The wallet balance is updated read-modify-write
// inside the calling transaction, so two completion scans crediting the same
// worker must serialize here or the later write overwrites the earlier credit.
func (r *GormWalletRepository) GetOrCreate(ctx context.Context, workerID kernel.UUID) (*wallet.Wallet, error) {
	if err := workerID.Validate(); err != nil {
		return nil, err
	}

	var dto WalletDTO
	err := r.db.WithContext(ctx).
		Clauses(forUpdateClause()).
		First(&dto, "worker_id = ?", workerID.Bytes()).Error
	if err == nil {
		return toDomain(dto)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	aggregate, err := wallet.NewWallet(workerID)
	if err != nil {
		return nil, err
	}

	dto = fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "worker_id"}},
			DoNothing: true,
		}).
		Create(&dto)
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		// Another transaction inserted the wallet first. Re-read its row
		// under the lock.
		err := r.db.WithContext(ctx).
			Clauses(forUpdateClause()).
			First(&dto, "worker_id = ?", workerID.Bytes()).Error
		if err != nil {
			return nil, err
		}
		return toDomain(dto)
	}

	r.tracker.TrackAggregate(aggregate.WorkerID(), aggregate)
	return aggregate, nil
}

// Update saves a changed wallet balance.
func (r *GormWalletRepository) Update(ctx context.Context, aggregate *wallet.Wallet) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&WalletDTO{}).
		Where("worker_id = ?", dto.WorkerID).
		Select("Balance").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.WorkerID(), aggregate)
	return nil
}

func forUpdateClause() clause.Expression {
	return clause.Locking{Strength: "UPDATE"}
}
