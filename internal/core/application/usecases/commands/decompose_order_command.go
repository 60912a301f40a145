package commands

import (
	"errors"

	"spktrack/internal/core/domain/model/kernel"
	"spktrack/internal/pkg/guard"
)

var (
	ErrDecomposeOrderCommandIsNotConstructed = errors.New(
		"DecomposeOrderCommand must be created via NewDecomposeOrderCommand constructor",
	)
	ErrBundleSizeIsInvalid = errors.New("bundle size must be greater than 0")
)

// DecomposeOrderCommand represents a request to split an order's total
// quantity into trackable production bundles.
//
// Example:
//
//	cmd, err := NewDecomposeOrderCommand(orderID, 50)
//	if err != nil {
//	    return fmt.Errorf("invalid decomposition request: %w", err)
//	}
//
//	handler := NewDecomposeOrderCommandHandler(uowFactory)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to decompose order: %w", err)
//	}
//	fmt.Printf("Order split into %d bundles", len(result.Bundles))
type DecomposeOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	bundleSize int

	guard guard.ConstructorGuard
}

// NewDecomposeOrderCommand creates a command to decompose an order.
// Validates that the order ID is valid and the bundle size is positive.
// Returns an error if any validation fails.
func NewDecomposeOrderCommand(orderID kernel.UUID, bundleSize int) (DecomposeOrderCommand, error) {
	decomposeCommand := DecomposeOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		decomposeCommand.setOrderID(orderID),
		decomposeCommand.setBundleSize(bundleSize),
	); err != nil {
		return DecomposeOrderCommand{}, err
	}

	return decomposeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDecomposeOrderCommandIsNotConstructed if validation fails.
func (c DecomposeOrderCommand) Validate() error {
	return c.guard.Validate(ErrDecomposeOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to decompose.
func (c DecomposeOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// BundleSize returns the maximum pieces per bundle.
func (c DecomposeOrderCommand) BundleSize() int {
	return c.bundleSize
}

func (c *DecomposeOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *DecomposeOrderCommand) setBundleSize(bundleSize int) error {
	if bundleSize <= 0 {
		return ErrBundleSizeIsInvalid
	}

	c.bundleSize = bundleSize
	return nil
}
