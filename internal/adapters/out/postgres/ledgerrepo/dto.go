// Package ledgerrepo provides data transfer objects and mapping functions for
// the append-only audit records: consumption entries, wage transactions,
// production log entries, and stock alerts.
package ledgerrepo

import (
	"time"

	"spktrack/internal/core/domain/model/bundle"
	"spktrack/internal/core/domain/model/kernel"
	"spktrack/internal/core/domain/model/ledger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ConsumptionEntryDTO represents the database structure for material draws.
type ConsumptionEntryDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	BundleID   uuid.UUID       `gorm:"type:uuid;index"`
	MaterialID uuid.UUID       `gorm:"type:uuid;index"`
	Amount     decimal.Decimal `gorm:"type:decimal(20,4)"`
	OccurredAt time.Time
}

// TableName specifies the database table name for consumption entries.
func (ConsumptionEntryDTO) TableName() string {
	return "consumption_entries"
}

// WageTransactionDTO represents the database structure for wallet movements.
type WageTransactionDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	WalletID   uuid.UUID       `gorm:"type:uuid;index"`
	BundleID   uuid.UUID       `gorm:"type:uuid;index"`
	Amount     decimal.Decimal `gorm:"type:decimal(20,4)"`
	Type       string
	OccurredAt time.Time
}

// TableName specifies the database table name for wage transactions.
func (WageTransactionDTO) TableName() string {
	return "wage_transactions"
}

// ProductionLogDTO represents the database structure for stage transitions.
type ProductionLogDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	BundleID      uuid.UUID `gorm:"type:uuid;index"`
	PreviousStage int
	NewStage      int
	ActorID       uuid.UUID `gorm:"type:uuid"`
	Note          string
	OccurredAt    time.Time
}

// TableName specifies the database table name for production log entries.
func (ProductionLogDTO) TableName() string {
	return "production_logs"
}

// StockAlertDTO represents the database structure for shortfall alerts.
type StockAlertDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	BundleID     uuid.UUID       `gorm:"type:uuid;index"`
	MaterialID   uuid.UUID       `gorm:"type:uuid;index"`
	Required     decimal.Decimal `gorm:"type:decimal(20,4)"`
	BalanceAfter decimal.Decimal `gorm:"type:decimal(20,4)"`
	OccurredAt   time.Time
}

// TableName specifies the database table name for stock alerts.
func (StockAlertDTO) TableName() string {
	return "stock_alerts"
}

func consumptionFromDomain(entry ledger.ConsumptionEntry) ConsumptionEntryDTO {
	return ConsumptionEntryDTO{
		ID:         entry.ID().Bytes(),
		BundleID:   entry.BundleID().Bytes(),
		MaterialID: entry.MaterialID().Bytes(),
		Amount:     entry.Amount(),
		OccurredAt: entry.OccurredAt(),
	}
}

func wageTransactionFromDomain(tx ledger.WageTransaction) WageTransactionDTO {
	return WageTransactionDTO{
		ID:         tx.ID().Bytes(),
		WalletID:   tx.WalletID().Bytes(),
		BundleID:   tx.BundleID().Bytes(),
		Amount:     tx.Amount(),
		Type:       string(tx.Type()),
		OccurredAt: tx.OccurredAt(),
	}
}

func productionLogFromDomain(entry ledger.ProductionLogEntry) ProductionLogDTO {
	return ProductionLogDTO{
		ID:            entry.ID().Bytes(),
		BundleID:      entry.BundleID().Bytes(),
		PreviousStage: int(entry.PreviousStage()),
		NewStage:      int(entry.NewStage()),
		ActorID:       entry.ActorID().Bytes(),
		Note:          entry.Note(),
		OccurredAt:    entry.OccurredAt(),
	}
}

func stockAlertFromDomain(alert ledger.StockAlert) StockAlertDTO {
	return StockAlertDTO{
		ID:           alert.ID().Bytes(),
		BundleID:     alert.BundleID().Bytes(),
		MaterialID:   alert.MaterialID().Bytes(),
		Required:     alert.Required(),
		BalanceAfter: alert.BalanceAfter(),
		OccurredAt:   alert.OccurredAt(),
	}
}

func productionLogToDomain(dto ProductionLogDTO) (ledger.ProductionLogEntry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ledger.ProductionLogEntry{}, err
	}

	bundleID, err := kernel.UUIDFromBytes(dto.BundleID[:])
	if err != nil {
		return ledger.ProductionLogEntry{}, err
	}

	actorID, err := kernel.UUIDFromBytes(dto.ActorID[:])
	if err != nil {
		return ledger.ProductionLogEntry{}, err
	}

	return ledger.RestoreProductionLogEntry(
		id, bundleID,
		bundle.Stage(dto.PreviousStage), bundle.Stage(dto.NewStage),
		actorID, dto.Note, dto.OccurredAt)
}
