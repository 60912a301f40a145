// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"spktrack/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// BundleRepoFactory provides access to bundle repository within a transaction.
	BundleRepoFactory interface {
		BundleRepository() ports.BundleRepository
	}

	// ProductRepoFactory provides access to product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// StockRepoFactory provides access to stock repository within a transaction.
	StockRepoFactory interface {
		StockRepository() ports.StockRepository
	}

	// WalletRepoFactory provides access to wallet repository within a transaction.
	WalletRepoFactory interface {
		WalletRepository() ports.WalletRepository
	}

	// LedgerRepoFactory provides access to ledger repository within a transaction.
	LedgerRepoFactory interface {
		LedgerRepository() ports.LedgerRepository
	}

	// DecomposeUoW manages transactions for order decomposition.
	// Decomposition reads the order and writes its bundles atomically.
	DecomposeUoW interface {
		TxManager
		OrderRepoFactory
		BundleRepoFactory
	}

	// DecomposeUoWFactory creates new decomposition unit of work instances.
	DecomposeUoWFactory interface {
		Create() DecomposeUoW
	}

	// ScanUoW manages transactions for scan processing. A single scan can
	// touch the bundle, its order, material stocks, the worker's wallet and
	// the audit ledgers, so the scan transaction spans all repositories.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   bundleRepo := uow.BundleRepository()
	//   stockRepo := uow.StockRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	ScanUoW interface {
		TxManager
		OrderRepoFactory
		BundleRepoFactory
		ProductRepoFactory
		StockRepoFactory
		WalletRepoFactory
		LedgerRepoFactory
	}

	// ScanUoWFactory creates new scan unit of work instances.
	ScanUoWFactory interface {
		Create() ScanUoW
	}

	// ReconcileUoW manages transactions for order status reconciliation.
	ReconcileUoW interface {
		TxManager
		OrderRepoFactory
		BundleRepoFactory
	}

	// ReconcileUoWFactory creates new reconciliation unit of work instances.
	ReconcileUoWFactory interface {
		Create() ReconcileUoW
	}
)
