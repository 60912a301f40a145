package ports

import (
	"context"

	"spktrack/internal/core/domain/model/kernel"
	"spktrack/internal/core/domain/model/wallet"
)

// WalletRepository defines the persistence contract for worker wallets.
type WalletRepository interface {
	// GetOrCreate retrieves the wallet for the given worker, creating an
	// empty one on first use. A worker's first completed bundle must not
	// fail on a missing wallet row.
	GetOrCreate(ctx context.Context, workerID kernel.UUID) (*wallet.Wallet, error)

	// Update persists a changed wallet balance.
	Update(ctx context.Context, aggregate *wallet.Wallet) error
}
