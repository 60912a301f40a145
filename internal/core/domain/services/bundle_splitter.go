package services

import (
	"fmt"

	"spktrack/internal/core/domain/model/bundle"
	"spktrack/internal/core/domain/model/kernel"
	"spktrack/internal/core/domain/model/order"
	"spktrack/internal/pkg/errs"
)

// BundleSplitter is a domain service responsible for decomposing an order's
// total quantity into trackable production bundles.
//
// Business rules:
//   - Bundles of the requested size are produced in order, the last bundle
//     takes the remainder
//   - Every piece of the order belongs to exactly one bundle
//   - Bundle codes are sequential labels derived from the order title and id,
//     so codes never collide across orders
//   - All bundles start in the New stage
//
// Example: an order of 105 pieces with bundle size 50 decomposes into
// quantities 50, 50 and 5.
type BundleSplitter struct{}

// NewBundleSplitter creates a new BundleSplitter instance.
func NewBundleSplitter() BundleSplitter {
	return BundleSplitter{}
}

// Split decomposes the order into bundles of at most bundleSize pieces.
//
// Parameters:
//   - order: the order to decompose (must be valid)
//   - bundleSize: maximum pieces per bundle (must be positive)
//
// Returns the bundles in sequence order, or InvalidDecompositionError when
// the inputs cannot produce a valid decomposition. The caller is responsible
// for checking that the order has not been decomposed before and for
// persisting the result atomically.
func (s BundleSplitter) Split(order *order.Order, bundleSize int) ([]*bundle.Bundle, error) {
	if err := order.Validate(); err != nil {
		return nil, err
	}

	total := order.TotalQuantity()
	if bundleSize <= 0 || total <= 0 {
		return nil, errs.NewInvalidDecompositionError(total, bundleSize)
	}

	count := (total + bundleSize - 1) / bundleSize
	prefix := order.CodePrefix()

	bundles := make([]*bundle.Bundle, 0, count)
	remaining := total
	for i := 0; i < count; i++ {
		quantity := bundleSize
		if remaining < bundleSize {
			quantity = remaining
		}

		code := fmt.Sprintf("%s-%03d", prefix, i+1)
		b, err := bundle.NewBundle(kernel.NewUUID(), order.ID(), code, quantity)
		if err != nil {
			return nil, err
		}

		bundles = append(bundles, b)
		remaining -= quantity
	}

	return bundles, nil
}
