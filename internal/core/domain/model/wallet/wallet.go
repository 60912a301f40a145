package wallet

import (
	"errors"
	"fmt"

	"spktrack/internal/core/domain/model/kernel"
	"spktrack/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrWalletIsNotConstructed is returned when a Wallet instance was not
	// created through the NewWallet or RestoreWallet factory methods.
	ErrWalletIsNotConstructed = errors.New("Wallet must be created via NewWallet or RestoreWallet")
)

// Wallet holds a worker's accrued wage balance. The balance moves only
// through ledger entries: the Wage Ledger credits it on bundle completion,
// payroll (out of scope here) debits it on payout. Nothing writes the
// balance directly.
type Wallet struct {
	// workerID is the owning worker's identifier
	workerID kernel.UUID

	// balance is the current wage balance
	balance decimal.Decimal

	// isConstructed ensures the wallet was created via a factory method
	isConstructed bool
}

// NewWallet creates an empty wallet for a worker.
func NewWallet(workerID kernel.UUID) (*Wallet, error) {
	w := &Wallet{
		isConstructed: true,
	}

	if err := w.setWorkerID(workerID); err != nil {
		return nil, err
	}

	w.balance = decimal.Zero
	return w, nil
}

// RestoreWallet reconstructs a wallet from persistence.
// Used by repositories only.
func RestoreWallet(workerID kernel.UUID, balance decimal.Decimal) (*Wallet, error) {
	w, err := NewWallet(workerID)
	if err != nil {
		return nil, err
	}

	w.balance = balance
	return w, nil
}

// Validate ensures the Wallet was created via a factory method.
func (w *Wallet) Validate() error {
	if w == nil || !w.isConstructed {
		return ErrWalletIsNotConstructed
	}
	return nil
}

// WorkerID returns the owning worker's identifier.
func (w *Wallet) WorkerID() kernel.UUID {
	return w.workerID
}

// Balance returns the current wage balance.
func (w *Wallet) Balance() decimal.Decimal {
	return w.balance
}

// Credit adds a wage amount to the balance. Amounts must be positive; the
// Wage Ledger is the only caller and always credits the full bundle wage.
func (w *Wallet) Credit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is not greater than 0", amount))
	}

	w.balance = w.balance.Add(amount)
	return nil
}

// setWorkerID validates and sets the worker identifier.
// This is a private method used only during construction.
func (w *Wallet) setWorkerID(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}
	w.workerID = workerID
	return nil
}
