package product

import (
	"errors"
	"fmt"
	"strings"

	"spktrack/internal/core/domain/model/kernel"
	"spktrack/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not
	// created through the NewProduct or RestoreProduct factory methods.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")
)

// Product is the production core's read-only view of product configuration:
// the per-piece wage rate and the bill of materials. Product rows are owned
// by the product catalog (out of scope here); the core never writes them.
type Product struct {
	// id is the unique identifier for the product
	id kernel.UUID

	// name is the catalog display name
	name string

	// wagePerPiece is the wage credited to a worker per completed piece
	wagePerPiece decimal.Decimal

	// bomLines is the bill of materials, one line per raw material
	bomLines []BOMLine

	// isConstructed ensures the product was created via a factory method
	isConstructed bool
}

// NewProduct creates a validated Product view.
//
// wagePerPiece must not be negative; a product with no BOM lines is legal
// (nothing is drawn at the cutting point).
func NewProduct(
	id kernel.UUID,
	name string,
	wagePerPiece decimal.Decimal,
	bomLines []BOMLine,
) (*Product, error) {
	p := &Product{
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setWagePerPiece(wagePerPiece),
		p.setBOMLines(bomLines),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a Product from persistence.
// Used by repositories only; validation matches NewProduct.
func RestoreProduct(
	id kernel.UUID,
	name string,
	wagePerPiece decimal.Decimal,
	bomLines []BOMLine,
) (*Product, error) {
	return NewProduct(id, name, wagePerPiece, bomLines)
}

// Validate ensures the Product was created via a factory method.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the catalog display name.
func (p *Product) Name() string {
	return p.name
}

// WagePerPiece returns the wage per completed piece.
func (p *Product) WagePerPiece() decimal.Decimal {
	return p.wagePerPiece
}

// BOMLines returns the bill of materials. The returned slice is a copy;
// callers cannot mutate the product through it.
func (p *Product) BOMLines() []BOMLine {
	lines := make([]BOMLine, len(p.bomLines))
	copy(lines, p.bomLines)
	return lines
}

// WageFor computes the completion wage for the given piece count:
//
//	wagePerPiece * pieces
func (p *Product) WageFor(pieces int) decimal.Decimal {
	return p.wagePerPiece.Mul(decimal.NewFromInt(int64(pieces)))
}

// setID validates and sets the product identifier.
// This is a private method used only during construction.
func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

// setName validates and sets the catalog name.
// This is a private method used only during construction.
func (p *Product) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

// setWagePerPiece validates and sets the wage rate.
// This is a private method used only during construction.
func (p *Product) setWagePerPiece(wagePerPiece decimal.Decimal) error {
	if wagePerPiece.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("wagePerPiece",
			fmt.Errorf("%s is negative", wagePerPiece))
	}
	p.wagePerPiece = wagePerPiece
	return nil
}

// setBOMLines validates and sets the bill of materials.
// This is a private method used only during construction.
func (p *Product) setBOMLines(bomLines []BOMLine) error {
	for i, line := range bomLines {
		if err := line.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("bomLines[%d]", i), err)
		}
	}
	p.bomLines = make([]BOMLine, len(bomLines))
	copy(p.bomLines, bomLines)
	return nil
}
