package ports

import (
	"context"

	"spktrack/internal/core/domain/model/kernel"
	"spktrack/internal/core/domain/model/ledger"
)

// LedgerRepository defines the persistence contract for the append-only audit
// records. Entries are only ever appended and read back; there are no update
// or delete operations.
type LedgerRepository interface {
	// AppendConsumption appends material consumption entries.
	AppendConsumption(ctx context.Context, entries []ledger.ConsumptionEntry) error

	// AppendWageTransaction appends a wage transaction.
	AppendWageTransaction(ctx context.Context, tx ledger.WageTransaction) error

	// AppendProductionLog appends a stage transition log entry.
	AppendProductionLog(ctx context.Context, entry ledger.ProductionLogEntry) error

	// AppendStockAlerts appends advisory shortfall alerts.
	AppendStockAlerts(ctx context.Context, alerts []ledger.StockAlert) error

	// GetProductionLog retrieves a bundle's stage transition log in the
	// order the transitions occurred.
	GetProductionLog(ctx context.Context, bundleID kernel.UUID) ([]ledger.ProductionLogEntry, error)
}
