package product

import (
	"errors"
	"fmt"

	"spktrack/internal/core/domain/model/kernel"
	"spktrack/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrBOMLineIsNotConstructed is returned when a BOMLine instance was not
	// created through the NewBOMLine factory method.
	ErrBOMLineIsNotConstructed = errors.New("BOMLine must be created via NewBOMLine")
)

// percentBase converts tolerance percentages into multipliers.
var percentBase = decimal.NewFromInt(100)

// BOMLine is one row of a product's bill of materials: the amount of a raw
// material needed per produced piece, plus a cutting-waste tolerance.
//
// BOMLine is a read-only value object from the production core's point of
// view; product configuration owns it. Its only behavior is the draw
// calculation used by the Inventory Ledger.
type BOMLine struct {
	// materialID references the raw material
	materialID kernel.UUID

	// quantityPerUnit is the material amount required per produced piece
	quantityPerUnit decimal.Decimal

	// tolerancePercent is the cutting-waste allowance on top of the raw draw
	tolerancePercent decimal.Decimal

	// isConstructed ensures the line was created via NewBOMLine
	isConstructed bool
}

// NewBOMLine creates a validated BOM line.
//
// quantityPerUnit must be positive; tolerancePercent must not be negative.
func NewBOMLine(
	materialID kernel.UUID,
	quantityPerUnit decimal.Decimal,
	tolerancePercent decimal.Decimal,
) (BOMLine, error) {
	if err := materialID.Validate(); err != nil {
		return BOMLine{}, err
	}
	if !quantityPerUnit.IsPositive() {
		return BOMLine{}, errs.NewValueIsInvalidErrorWithCause("quantityPerUnit",
			fmt.Errorf("%s is not greater than 0", quantityPerUnit))
	}
	if tolerancePercent.IsNegative() {
		return BOMLine{}, errs.NewValueIsInvalidErrorWithCause("tolerancePercent",
			fmt.Errorf("%s is negative", tolerancePercent))
	}

	return BOMLine{
		materialID:       materialID,
		quantityPerUnit:  quantityPerUnit,
		tolerancePercent: tolerancePercent,
		isConstructed:    true,
	}, nil
}

// Validate ensures the BOMLine was created via NewBOMLine.
func (l BOMLine) Validate() error {
	if !l.isConstructed {
		return ErrBOMLineIsNotConstructed
	}
	return nil
}

// MaterialID returns the raw material this line draws from.
func (l BOMLine) MaterialID() kernel.UUID {
	return l.materialID
}

// QuantityPerUnit returns the material amount required per produced piece.
func (l BOMLine) QuantityPerUnit() decimal.Decimal {
	return l.quantityPerUnit
}

// TolerancePercent returns the cutting-waste allowance.
func (l BOMLine) TolerancePercent() decimal.Decimal {
	return l.tolerancePercent
}

// RequiredFor computes the stock draw for the given piece count:
//
//	quantityPerUnit * pieces * (1 + tolerancePercent/100)
func (l BOMLine) RequiredFor(pieces int) decimal.Decimal {
	base := l.quantityPerUnit.Mul(decimal.NewFromInt(int64(pieces)))
	multiplier := decimal.NewFromInt(1).Add(l.tolerancePercent.Div(percentBase))
	return base.Mul(multiplier)
}
