package services

import (
	"time"

	"spktrack/internal/core/domain/model/bundle"
	"spktrack/internal/core/domain/model/ledger"
	"spktrack/internal/core/domain/model/product"
	"spktrack/internal/core/domain/model/wallet"
)

// WageAccrual is the result of accruing a completion wage: the transaction to
// append when a credit happened, or nothing for a repeat completion.
type WageAccrual struct {
	Transaction ledger.WageTransaction
	Credited    bool
}

// WageLedger is a domain service responsible for crediting a worker's wallet
// when a bundle reaches the done stage.
//
// Business rules:
//   - The wage is the product's per-piece rate times the bundle's piece count
//   - Each bundle pays out exactly once, guarded by the bundle's paid flag
//   - Every credit is recorded as an immutable wage transaction
//
// The service mutates the passed wallet and bundle in memory; committing the
// changes atomically is the caller's job.
type WageLedger struct{}

// NewWageLedger creates a new WageLedger instance.
func NewWageLedger() WageLedger {
	return WageLedger{}
}

// Accrue credits the completion wage for the bundle to the worker's wallet.
//
// Repeat calls for an already-paid bundle return an empty accrual and no
// error, so duplicate completion scans never double-pay.
func (l WageLedger) Accrue(
	bundle *bundle.Bundle,
	product *product.Product,
	wallet *wallet.Wallet,
	occurredAt time.Time,
) (WageAccrual, error) {
	if err := bundle.Validate(); err != nil {
		return WageAccrual{}, err
	}
	if err := product.Validate(); err != nil {
		return WageAccrual{}, err
	}
	if err := wallet.Validate(); err != nil {
		return WageAccrual{}, err
	}

	if bundle.IsPaid() {
		return WageAccrual{}, nil
	}

	wage := product.WageFor(bundle.Quantity())
	if err := wallet.Credit(wage); err != nil {
		return WageAccrual{}, err
	}

	tx, err := ledger.NewWageTransaction(
		wallet.WorkerID(), bundle.ID(), wage, ledger.TransactionCredit, occurredAt)
	if err != nil {
		return WageAccrual{}, err
	}

	bundle.MarkPaid()
	return WageAccrual{Transaction: tx, Credited: true}, nil
}
