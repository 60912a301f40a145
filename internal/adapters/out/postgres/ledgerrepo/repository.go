package ledgerrepo

import (
	"context"

	"spktrack/internal/core/domain/model/kernel"
	"spktrack/internal/core/domain/model/ledger"

	"gorm.io/gorm"
)

// GormLedgerRepository implements LedgerRepository using GORM. The ledger
// tables are append-only; this repository never updates or deletes rows.
type GormLedgerRepository struct {
	db *gorm.DB
}

// NewGormLedgerRepository creates a new GORM ledger repository.
func NewGormLedgerRepository(db *gorm.DB) *GormLedgerRepository {
	return &GormLedgerRepository{
		db: db,
	}
}

// AppendConsumption appends material consumption entries.
func (r *GormLedgerRepository) AppendConsumption(ctx context.Context, entries []ledger.ConsumptionEntry) error {
	if len(entries) == 0 {
		return nil
	}

	dtos := make([]ConsumptionEntryDTO, 0, len(entries))
	for _, entry := range entries {
		dtos = append(dtos, consumptionFromDomain(entry))
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}

// AppendWageTransaction appends a wage transaction.
func (r *GormLedgerRepository) AppendWageTransaction(ctx context.Context, tx ledger.WageTransaction) error {
	dto := wageTransactionFromDomain(tx)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// AppendProductionLog appends a stage transition log entry.
func (r *GormLedgerRepository) AppendProductionLog(ctx context.Context, entry ledger.ProductionLogEntry) error {
	dto := productionLogFromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// AppendStockAlerts appends advisory shortfall alerts.
func (r *GormLedgerRepository) AppendStockAlerts(ctx context.Context, alerts []ledger.StockAlert) error {
	if len(alerts) == 0 {
		return nil
	}

	dtos := make([]StockAlertDTO, 0, len(alerts))
	for _, alert := range alerts {
		dtos = append(dtos, stockAlertFromDomain(alert))
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}

// GetProductionLog retrieves a bundle's stage transition log in the order
// the transitions occurred.
func (r *GormLedgerRepository) GetProductionLog(ctx context.Context, bundleID kernel.UUID) ([]ledger.ProductionLogEntry, error) {
	if err := bundleID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ProductionLogDTO
	err := r.db.WithContext(ctx).
		Order("occurred_at, id").
		Find(&dtos, "bundle_id = ?", bundleID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	entries := make([]ledger.ProductionLogEntry, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := productionLogToDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
