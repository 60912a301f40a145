package stock

import (
	"errors"
	"fmt"
	"strings"

	"spktrack/internal/core/domain/model/kernel"
	"spktrack/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrMaterialStockIsNotConstructed is returned when a MaterialStock instance
	// was not created through the NewMaterialStock or RestoreMaterialStock
	// factory methods.
	ErrMaterialStockIsNotConstructed = errors.New(
		"MaterialStock must be created via NewMaterialStock or RestoreMaterialStock")
)

// MaterialStock tracks the current quantity of one raw material. It is the
// aggregate root the Inventory Ledger mutates; no other code writes stock.
//
// MaterialStock follows these invariants:
//   - Must have a valid material identifier and a non-empty name
//   - The balance changes only through Draw (and, outside the core,
//     warehouse receipts handled by material entry)
//   - Under the strict policy the balance never goes negative
type MaterialStock struct {
	// materialID is the unique identifier of the raw material
	materialID kernel.UUID

	// name is the material display name used in alerts
	name string

	// currentStock is the on-hand quantity in the material's unit
	currentStock decimal.Decimal

	// isConstructed ensures the stock was created via a factory method
	isConstructed bool
}

// NewMaterialStock creates a stock record for a material with an opening balance.
func NewMaterialStock(materialID kernel.UUID, name string, opening decimal.Decimal) (*MaterialStock, error) {
	s := &MaterialStock{
		isConstructed: true,
	}

	if err := errors.Join(
		s.setMaterialID(materialID),
		s.setName(name),
	); err != nil {
		return nil, err
	}

	s.currentStock = opening
	return s, nil
}

// RestoreMaterialStock reconstructs a stock record from persistence.
// Used by repositories only. Negative balances are legal here: permissive
// deployments can have persisted shortfalls.
func RestoreMaterialStock(materialID kernel.UUID, name string, current decimal.Decimal) (*MaterialStock, error) {
	return NewMaterialStock(materialID, name, current)
}

// Validate ensures the MaterialStock was created via a factory method.
func (s *MaterialStock) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrMaterialStockIsNotConstructed
	}
	return nil
}

// MaterialID returns the material's unique identifier.
func (s *MaterialStock) MaterialID() kernel.UUID {
	return s.materialID
}

// Name returns the material display name.
func (s *MaterialStock) Name() string {
	return s.name
}

// CurrentStock returns the on-hand quantity.
func (s *MaterialStock) CurrentStock() decimal.Decimal {
	return s.currentStock
}

// Draw decrements the balance by amount under the given policy.
//
// Returns wentNegative=true when the permissive policy let the balance cross
// below zero; the caller records the advisory alert. Under the strict policy
// a shortfall fails with InsufficientStockError and the balance is unchanged.
func (s *MaterialStock) Draw(amount decimal.Decimal, policy DrawPolicy) (wentNegative bool, err error) {
	if err := policy.Validate(); err != nil {
		return false, err
	}
	if !amount.IsPositive() {
		return false, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is not greater than 0", amount))
	}

	remaining := s.currentStock.Sub(amount)
	if remaining.IsNegative() {
		if policy == PolicyStrict {
			return false, errs.NewInsufficientStockError(
				s.materialID.String(), amount.String(), s.currentStock.String())
		}
		s.currentStock = remaining
		return true, nil
	}

	s.currentStock = remaining
	return false, nil
}

// setMaterialID validates and sets the material identifier.
// This is a private method used only during construction.
func (s *MaterialStock) setMaterialID(materialID kernel.UUID) error {
	if err := materialID.Validate(); err != nil {
		return err
	}
	s.materialID = materialID
	return nil
}

// setName validates and sets the material name.
// This is a private method used only during construction.
func (s *MaterialStock) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	s.name = name
	return nil
}
