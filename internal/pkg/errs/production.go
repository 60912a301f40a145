package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedCode is the sentinel error for scan payloads that do not parse
	// as any known bundle identifier shape.
	ErrMalformedCode = errors.New("scan code is malformed")

	// ErrInvalidTransition is the sentinel error for stage moves the bundle
	// state machine does not permit.
	ErrInvalidTransition = errors.New("stage transition is not allowed")

	// ErrInsufficientStock is the sentinel error for strict-policy stock
	// shortfalls at the material draw point.
	ErrInsufficientStock = errors.New("insufficient material stock")

	// ErrAlreadyDecomposed is the sentinel error for repeated decomposition of
	// the same order.
	ErrAlreadyDecomposed = errors.New("order is already decomposed into bundles")

	// ErrInvalidDecomposition is the sentinel error for decomposition requests
	// with non-positive quantities or bundle sizes.
	ErrInvalidDecomposition = errors.New("decomposition parameters are invalid")

	// ErrConcurrencyConflict is the sentinel error for losing a per-bundle race:
	// another request moved the bundle first.
	ErrConcurrencyConflict = errors.New("bundle was modified concurrently")
)

// MalformedCodeError indicates that scanned text does not parse as a bundle id
// or a bundle code. The operator should re-scan.
type MalformedCodeError struct {
	Code string
}

// NewMalformedCodeError creates a MalformedCodeError for the given scan payload.
func NewMalformedCodeError(code string) *MalformedCodeError {
	return &MalformedCodeError{Code: code}
}

func (e *MalformedCodeError) Error() string {
	return sanitize(fmt.Sprintf("%s: %q", ErrMalformedCode, e.Code))
}

func (e *MalformedCodeError) Unwrap() error {
	return ErrMalformedCode
}

// InvalidTransitionError indicates an illegal stage move: a skip-ahead, a
// backward move, or a transition out of a terminal stage.
type InvalidTransitionError struct {
	From string
	To   string
}

// NewInvalidTransitionError creates an InvalidTransitionError for a rejected move.
func NewInvalidTransitionError(from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// InsufficientStockError indicates a strict-policy stock shortfall. Required and
// Available carry the decimal amounts as strings for reporting.
type InsufficientStockError struct {
	MaterialID string
	Required   string
	Available  string
}

// NewInsufficientStockError creates an InsufficientStockError for the given material.
func NewInsufficientStockError(materialID, required, available string) *InsufficientStockError {
	return &InsufficientStockError{MaterialID: materialID, Required: required, Available: available}
}

func (e *InsufficientStockError) Error() string {
	return sanitize(fmt.Sprintf("%s: material %s requires %s, available %s",
		ErrInsufficientStock, e.MaterialID, e.Required, e.Available))
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// AlreadyDecomposedError indicates that an order already has bundles and cannot
// be decomposed a second time.
type AlreadyDecomposedError struct {
	OrderID     string
	BundleCount int
}

// NewAlreadyDecomposedError creates an AlreadyDecomposedError for the given order.
func NewAlreadyDecomposedError(orderID string, bundleCount int) *AlreadyDecomposedError {
	return &AlreadyDecomposedError{OrderID: orderID, BundleCount: bundleCount}
}

func (e *AlreadyDecomposedError) Error() string {
	return sanitize(fmt.Sprintf("%s: order %s has %d bundles",
		ErrAlreadyDecomposed, e.OrderID, e.BundleCount))
}

func (e *AlreadyDecomposedError) Unwrap() error {
	return ErrAlreadyDecomposed
}

// InvalidDecompositionError indicates non-positive decomposition inputs.
type InvalidDecompositionError struct {
	TotalQuantity int
	BundleSize    int
}

// NewInvalidDecompositionError creates an InvalidDecompositionError for the given inputs.
func NewInvalidDecompositionError(totalQuantity, bundleSize int) *InvalidDecompositionError {
	return &InvalidDecompositionError{TotalQuantity: totalQuantity, BundleSize: bundleSize}
}

func (e *InvalidDecompositionError) Error() string {
	return sanitize(fmt.Sprintf("%s: total quantity %d, bundle size %d",
		ErrInvalidDecomposition, e.TotalQuantity, e.BundleSize))
}

func (e *InvalidDecompositionError) Unwrap() error {
	return ErrInvalidDecomposition
}

// ConcurrencyConflictError indicates that a concurrent request advanced the same
// bundle first. The operation is safe to retry after refreshing.
type ConcurrencyConflictError struct {
	BundleID string
	Cause    error
}

// NewConcurrencyConflictError creates a ConcurrencyConflictError for the given bundle.
func NewConcurrencyConflictError(bundleID string) *ConcurrencyConflictError {
	return &ConcurrencyConflictError{BundleID: bundleID}
}

// NewConcurrencyConflictErrorWithCause creates a ConcurrencyConflictError wrapping an underlying cause.
func NewConcurrencyConflictErrorWithCause(bundleID string, cause error) *ConcurrencyConflictError {
	return &ConcurrencyConflictError{BundleID: bundleID, Cause: cause}
}

func (e *ConcurrencyConflictError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: bundle %s (cause: %s)", ErrConcurrencyConflict, e.BundleID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: bundle %s", ErrConcurrencyConflict, e.BundleID))
}

func (e *ConcurrencyConflictError) Unwrap() error {
	return ErrConcurrencyConflict
}
