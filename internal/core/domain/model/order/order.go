package order

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"spktrack/internal/core/domain/model/kernel"
	"spktrack/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// codePrefixLength is how many characters of the order title seed the bundle
// code prefix, matching the label format printed on bundle tags.
const codePrefixLength = 3

// codeDiscriminatorLength is how many leading hex characters of the order id
// are folded into the prefix. Two orders with similar titles ("Kaos Polos",
// "Kaos Hitam") would otherwise print colliding bundle codes.
const codeDiscriminatorLength = 4

// fallbackCodePrefix is used when the order title contributes no usable
// characters for a bundle code prefix.
const fallbackCodePrefix = "SPK"

// Order represents a customer production request: a total quantity of one
// product, to be cut into bundles and tracked through the factory floor.
// It is the aggregate root for order-level state.
//
// Order follows these invariants:
//   - Must have valid unique identifiers for itself, customer, and product
//   - Title must be non-empty
//   - Total quantity must be positive and equals the sum of bundle quantities
//     once the order is decomposed
//   - Status reaches Done only when all bundles are in a terminal stage
//   - Status transitions follow the rules defined by Status
//
// Order rows are created by order entry before decomposition runs; the
// production core mutates only the status, and only through aggregate
// recomputation after committed bundle transitions.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// title is the human-readable order name; also seeds the bundle code prefix
	title string

	// customerID references the ordering customer (opaque to the core)
	customerID kernel.UUID

	// productID references the product being produced; drives BOM and wage lookups
	productID kernel.UUID

	// totalQuantity is the ordered piece count (must be positive)
	totalQuantity int

	// deadline is the promised delivery date
	deadline time.Time

	// status represents the current state in the order lifecycle
	status Status

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order in Planned status with validation. This is the
// only way to create a valid Order apart from restoration.
//
// Parameters:
//   - id: unique identifier for the order
//   - title: human-readable order name (non-empty)
//   - customerID: reference to the ordering customer
//   - productID: reference to the product configuration
//   - totalQuantity: ordered piece count (must be positive)
//   - deadline: promised delivery date
//
// Returns a validation error if any parameter is invalid.
func NewOrder(
	id kernel.UUID,
	title string,
	customerID kernel.UUID,
	productID kernel.UUID,
	totalQuantity int,
	deadline time.Time,
) (*Order, error) {
	o := &Order{
		status:        Planned,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setTitle(title),
		o.setCustomerID(customerID),
		o.setProductID(productID),
		o.setTotalQuantity(totalQuantity),
	); err != nil {
		return nil, err
	}

	o.deadline = deadline
	return o, nil
}

// RestoreOrder reconstructs an Order from persistence, including its status.
// Used by repositories only.
func RestoreOrder(
	id kernel.UUID,
	title string,
	customerID kernel.UUID,
	productID kernel.UUID,
	totalQuantity int,
	deadline time.Time,
	status Status,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setTitle(title),
		o.setCustomerID(customerID),
		o.setProductID(productID),
		o.setTotalQuantity(totalQuantity),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	o.deadline = deadline
	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Title returns the human-readable order name.
func (o *Order) Title() string {
	return o.title
}

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// ProductID returns the produced product's identifier.
func (o *Order) ProductID() kernel.UUID {
	return o.productID
}

// TotalQuantity returns the ordered piece count.
func (o *Order) TotalQuantity() int {
	return o.totalQuantity
}

// Deadline returns the promised delivery date.
func (o *Order) Deadline() time.Time {
	return o.deadline
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CodePrefix derives the bundle label prefix from the order: the first three
// alphanumeric characters of the title, uppercased, followed by the first
// four hex characters of the order id. The id part keeps codes from two
// orders with the same title prefix globally distinct, so a scanned label
// resolves to exactly one bundle. Titles with no usable characters fall back
// to a fixed prefix so every order can still print labels.
func (o *Order) CodePrefix() string {
	var b strings.Builder
	for _, r := range o.title {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToUpper(r))
			if b.Len() >= codePrefixLength {
				break
			}
		}
	}

	if b.Len() == 0 {
		b.WriteString(fallbackCodePrefix)
	}

	b.WriteString(strings.ToUpper(o.id.String()[:codeDiscriminatorLength]))
	return b.String()
}

// Start marks the order as InProgress. Called when a bundle first enters the
// production floor. Starting an already started order is a no-op success so
// every scan can call it unconditionally.
func (o *Order) Start() error {
	newStatus, err := o.status.Start()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Complete marks the order as Done.
//
// The caller is responsible for establishing the completion condition: every
// bundle in a terminal stage, all non-rejected bundles Done. The aggregate
// only enforces that the status transition itself is legal.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel marks the order as Cancelled. Not reachable from final statuses.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setTitle validates and sets the order title.
// This is a private method used only during construction.
func (o *Order) setTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return errs.NewValueIsRequiredError("title")
	}
	o.title = title
	return nil
}

// setCustomerID validates and sets the customer reference.
// This is a private method used only during construction.
func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

// setProductID validates and sets the product reference.
// This is a private method used only during construction.
func (o *Order) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	o.productID = productID
	return nil
}

// setTotalQuantity validates and sets the ordered piece count.
// Total quantity must be positive (greater than 0).
// This is a private method used only during construction.
func (o *Order) setTotalQuantity(totalQuantity int) error {
	if totalQuantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("totalQuantity",
			fmt.Errorf("%d is not greater than 0", totalQuantity))
	}
	o.totalQuantity = totalQuantity
	return nil
}

// setStatus validates and sets the lifecycle status during restoration.
// This is a private method used only during construction.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
