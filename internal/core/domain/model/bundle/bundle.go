package bundle

import (
	"errors"
	"fmt"

	"spktrack/internal/core/domain/model/kernel"
	"spktrack/internal/pkg/errs"
)

var (
	// ErrBundleIsNotConstructed is returned when a Bundle instance was not created
	// through the NewBundle or RestoreBundle factory methods.
	ErrBundleIsNotConstructed = errors.New("Bundle must be created via NewBundle or RestoreBundle")
)

// Bundle represents a physical sub-lot of an order: a sack of cut pieces that
// moves through the production floor under a scannable code. It is the
// aggregate root for everything a scan event touches.
//
// Bundle follows these invariants:
//   - Must have valid unique identifiers for itself and its owning order
//   - Code must be non-empty and is unique within the order
//   - Quantity must be positive and is immutable after creation
//   - Stage moves only along the transition graph defined by Stage
//   - The paid and consumed flags are one-way: once set they never clear
//
// The stage is the only field mutated during the production lifecycle; the
// paid flag marks wage accrual and the consumed flag marks material draw, so
// each side effect applies at most once no matter how often a code is scanned.
type Bundle struct {
	// id is the unique identifier for the bundle
	id kernel.UUID

	// orderID identifies the owning order
	orderID kernel.UUID

	// code is the human-readable label printed on the bundle tag
	code string

	// quantity is the number of pieces in the bundle (immutable)
	quantity int

	// stage is the bundle's position in the production pipeline
	stage Stage

	// paid marks that the completion wage has been credited
	paid bool

	// consumed marks that raw material has been drawn for this bundle
	consumed bool

	// isConstructed ensures the bundle was created via a factory method
	isConstructed bool
}

// NewBundle creates a new Bundle in the New stage with both side-effect flags
// clear. This is how Order Decomposition materializes its output.
//
// Parameters:
//   - id: unique identifier for the bundle
//   - orderID: identifier of the owning order
//   - code: human-readable label, unique within the order
//   - quantity: number of pieces (must be positive)
//
// Returns a validation error if any parameter is invalid.
func NewBundle(id kernel.UUID, orderID kernel.UUID, code string, quantity int) (*Bundle, error) {
	b := &Bundle{
		stage:         New,
		isConstructed: true,
	}

	if err := errors.Join(
		b.setID(id),
		b.setOrderID(orderID),
		b.setCode(code),
		b.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// RestoreBundle reconstructs a Bundle from persistence, including its current
// stage and side-effect flags. Used by repositories only.
func RestoreBundle(
	id kernel.UUID,
	orderID kernel.UUID,
	code string,
	quantity int,
	stage Stage,
	paid bool,
	consumed bool,
) (*Bundle, error) {
	b := &Bundle{
		isConstructed: true,
	}

	if err := errors.Join(
		b.setID(id),
		b.setOrderID(orderID),
		b.setCode(code),
		b.setQuantity(quantity),
		b.setStage(stage),
	); err != nil {
		return nil, err
	}

	b.paid = paid
	b.consumed = consumed
	return b, nil
}

// Validate ensures the Bundle instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct.
func (b *Bundle) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBundleIsNotConstructed
	}

	return nil
}

// IsEqual compares two bundles by their unique identifiers.
func (b *Bundle) IsEqual(other *Bundle) bool {
	return other != nil && b.id.IsEqual(other.id)
}

// ID returns the bundle's unique identifier.
func (b *Bundle) ID() kernel.UUID {
	return b.id
}

// OrderID returns the identifier of the owning order.
func (b *Bundle) OrderID() kernel.UUID {
	return b.orderID
}

// Code returns the human-readable bundle label.
func (b *Bundle) Code() string {
	return b.code
}

// Quantity returns the number of pieces in the bundle.
func (b *Bundle) Quantity() int {
	return b.quantity
}

// Stage returns the bundle's current production stage.
func (b *Bundle) Stage() Stage {
	return b.stage
}

// IsPaid reports whether the completion wage has already been credited.
func (b *Bundle) IsPaid() bool {
	return b.paid
}

// IsConsumed reports whether raw material has already been drawn.
func (b *Bundle) IsConsumed() bool {
	return b.consumed
}

// AdvanceTo moves the bundle to the requested stage.
//
// The move must be legal per the Stage transition graph: the immediate
// forward successor, or Rejected from any non-terminal stage. Illegal moves
// fail with InvalidTransitionError and leave the bundle unchanged.
//
// AdvanceTo records only the stage change. The caller is responsible for the
// side effects the target stage triggers (material draw on Cutting, wage
// accrual on Done) and for committing them atomically with the stage write.
func (b *Bundle) AdvanceTo(target Stage) error {
	newStage, err := b.stage.Advance(target)
	if err != nil {
		return err
	}

	b.stage = newStage
	return nil
}

// IsRepeatCompletion reports whether the requested target is the bundle's
// already-current Done stage. Such requests are duplicate completion scans
// and are treated as no-op successes rather than transition errors.
func (b *Bundle) IsRepeatCompletion(target Stage) bool {
	return b.stage == Done && target == Done
}

// MarkConsumed sets the one-way flag recording that raw material has been
// drawn for this bundle. The flag is the idempotence marker the Inventory
// Ledger checks before decrementing stock.
func (b *Bundle) MarkConsumed() {
	b.consumed = true
}

// MarkPaid sets the one-way flag recording that the completion wage has been
// credited. The flag is the idempotence marker the Wage Ledger checks before
// crediting the wallet.
func (b *Bundle) MarkPaid() {
	b.paid = true
}

// setID validates and sets the bundle's unique identifier.
// This is a private method used only during construction.
func (b *Bundle) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

// setOrderID validates and sets the owning order's identifier.
// This is a private method used only during construction.
func (b *Bundle) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	b.orderID = orderID
	return nil
}

// setCode validates and sets the bundle label.
// This is a private method used only during construction.
func (b *Bundle) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	b.code = code
	return nil
}

// setQuantity validates and sets the piece count.
// Quantity must be positive (greater than 0).
// This is a private method used only during construction.
func (b *Bundle) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	b.quantity = quantity
	return nil
}

// setStage validates and sets the production stage during restoration.
// This is a private method used only during construction.
func (b *Bundle) setStage(stage Stage) error {
	if err := stage.Validate(); err != nil {
		return err
	}
	b.stage = stage
	return nil
}
