package ledger

import (
	"fmt"
	"time"

	"spktrack/internal/core/domain/model/kernel"
	"spktrack/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// TransactionType classifies wage transactions. The production core only ever
// credits; payroll payouts (out of scope) append debits to the same ledger.
type TransactionType string

const (
	// TransactionCredit is a wage accrual for a completed bundle.
	TransactionCredit TransactionType = "CREDIT"

	// TransactionDebit is a payroll payout.
	TransactionDebit TransactionType = "DEBIT"
)

// Validate checks that the transaction type is one of the known values.
func (t TransactionType) Validate() error {
	if t != TransactionCredit && t != TransactionDebit {
		return errs.NewValueIsInvalidErrorWithCause("transactionType",
			fmt.Errorf("%q is not a valid transaction type", string(t)))
	}
	return nil
}

// ConsumptionEntry records one material draw for one bundle. Immutable once
// written; together with the bundle's consumed flag it proves stock was
// decremented exactly once.
type ConsumptionEntry struct {
	id         kernel.UUID
	bundleID   kernel.UUID
	materialID kernel.UUID
	amount     decimal.Decimal
	occurredAt time.Time
}

// NewConsumptionEntry creates a consumption entry for a positive draw amount.
func NewConsumptionEntry(
	bundleID kernel.UUID,
	materialID kernel.UUID,
	amount decimal.Decimal,
	occurredAt time.Time,
) (ConsumptionEntry, error) {
	if err := bundleID.Validate(); err != nil {
		return ConsumptionEntry{}, err
	}
	if err := materialID.Validate(); err != nil {
		return ConsumptionEntry{}, err
	}
	if !amount.IsPositive() {
		return ConsumptionEntry{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is not greater than 0", amount))
	}

	return ConsumptionEntry{
		id:         kernel.NewUUID(),
		bundleID:   bundleID,
		materialID: materialID,
		amount:     amount,
		occurredAt: occurredAt,
	}, nil
}

// RestoreConsumptionEntry reconstructs an entry from persistence.
func RestoreConsumptionEntry(
	id kernel.UUID,
	bundleID kernel.UUID,
	materialID kernel.UUID,
	amount decimal.Decimal,
	occurredAt time.Time,
) (ConsumptionEntry, error) {
	entry, err := NewConsumptionEntry(bundleID, materialID, amount, occurredAt)
	if err != nil {
		return ConsumptionEntry{}, err
	}
	if err := id.Validate(); err != nil {
		return ConsumptionEntry{}, err
	}

	entry.id = id
	return entry, nil
}

// ID returns the entry identifier.
func (e ConsumptionEntry) ID() kernel.UUID { return e.id }

// BundleID returns the bundle the material was drawn for.
func (e ConsumptionEntry) BundleID() kernel.UUID { return e.bundleID }

// MaterialID returns the drawn material.
func (e ConsumptionEntry) MaterialID() kernel.UUID { return e.materialID }

// Amount returns the drawn quantity.
func (e ConsumptionEntry) Amount() decimal.Decimal { return e.amount }

// OccurredAt returns when the draw happened.
func (e ConsumptionEntry) OccurredAt() time.Time { return e.occurredAt }

// WageTransaction records one wallet movement tied to a bundle. Immutable
// once written; together with the bundle's paid flag it proves the wage was
// credited exactly once.
type WageTransaction struct {
	id         kernel.UUID
	walletID   kernel.UUID
	bundleID   kernel.UUID
	amount     decimal.Decimal
	txType     TransactionType
	occurredAt time.Time
}

// NewWageTransaction creates a wage transaction for a positive amount.
func NewWageTransaction(
	walletID kernel.UUID,
	bundleID kernel.UUID,
	amount decimal.Decimal,
	txType TransactionType,
	occurredAt time.Time,
) (WageTransaction, error) {
	if err := walletID.Validate(); err != nil {
		return WageTransaction{}, err
	}
	if err := bundleID.Validate(); err != nil {
		return WageTransaction{}, err
	}
	if err := txType.Validate(); err != nil {
		return WageTransaction{}, err
	}
	if !amount.IsPositive() {
		return WageTransaction{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is not greater than 0", amount))
	}

	return WageTransaction{
		id:         kernel.NewUUID(),
		walletID:   walletID,
		bundleID:   bundleID,
		amount:     amount,
		txType:     txType,
		occurredAt: occurredAt,
	}, nil
}

// RestoreWageTransaction reconstructs a transaction from persistence.
func RestoreWageTransaction(
	id kernel.UUID,
	walletID kernel.UUID,
	bundleID kernel.UUID,
	amount decimal.Decimal,
	txType TransactionType,
	occurredAt time.Time,
) (WageTransaction, error) {
	tx, err := NewWageTransaction(walletID, bundleID, amount, txType, occurredAt)
	if err != nil {
		return WageTransaction{}, err
	}
	if err := id.Validate(); err != nil {
		return WageTransaction{}, err
	}

	tx.id = id
	return tx, nil
}

// ID returns the transaction identifier.
func (e WageTransaction) ID() kernel.UUID { return e.id }

// WalletID returns the credited (or debited) wallet.
func (e WageTransaction) WalletID() kernel.UUID { return e.walletID }

// BundleID returns the bundle the movement is tied to.
func (e WageTransaction) BundleID() kernel.UUID { return e.bundleID }

// Amount returns the moved amount.
func (e WageTransaction) Amount() decimal.Decimal { return e.amount }

// Type returns whether the movement is a credit or a debit.
func (e WageTransaction) Type() TransactionType { return e.txType }

// OccurredAt returns when the movement happened.
func (e WageTransaction) OccurredAt() time.Time { return e.occurredAt }

// StockAlert records a permissive-policy shortfall: a draw that pushed a
// material balance below zero. Advisory only; production proceeds.
type StockAlert struct {
	id           kernel.UUID
	bundleID     kernel.UUID
	materialID   kernel.UUID
	required     decimal.Decimal
	balanceAfter decimal.Decimal
	occurredAt   time.Time
}

// NewStockAlert creates an advisory alert for a negative-balance draw.
func NewStockAlert(
	bundleID kernel.UUID,
	materialID kernel.UUID,
	required decimal.Decimal,
	balanceAfter decimal.Decimal,
	occurredAt time.Time,
) (StockAlert, error) {
	if err := bundleID.Validate(); err != nil {
		return StockAlert{}, err
	}
	if err := materialID.Validate(); err != nil {
		return StockAlert{}, err
	}

	return StockAlert{
		id:           kernel.NewUUID(),
		bundleID:     bundleID,
		materialID:   materialID,
		required:     required,
		balanceAfter: balanceAfter,
		occurredAt:   occurredAt,
	}, nil
}

// ID returns the alert identifier.
func (a StockAlert) ID() kernel.UUID { return a.id }

// BundleID returns the bundle whose draw caused the shortfall.
func (a StockAlert) BundleID() kernel.UUID { return a.bundleID }

// MaterialID returns the short material.
func (a StockAlert) MaterialID() kernel.UUID { return a.materialID }

// Required returns the requested draw amount.
func (a StockAlert) Required() decimal.Decimal { return a.required }

// BalanceAfter returns the (negative) balance after the draw.
func (a StockAlert) BalanceAfter() decimal.Decimal { return a.balanceAfter }

// OccurredAt returns when the shortfall happened.
func (a StockAlert) OccurredAt() time.Time { return a.occurredAt }
