package commands

import (
	"context"

	"spktrack/internal/core/domain/model/bundle"
	"spktrack/internal/core/domain/services"
	"spktrack/internal/pkg/errs"
)

// DecomposedBundle describes one bundle produced by a decomposition.
type DecomposedBundle struct {
	ID       string
	Code     string
	Quantity int
	Stage    string
}

// DecomposeOrderResult reports the bundles a decomposition produced,
// in code sequence.
type DecomposeOrderResult struct {
	OrderID string
	Bundles []DecomposedBundle
}

// DecomposeOrderCommandHandler handles the business logic for order
// decomposition. Splits the order's total quantity into bundles and persists
// them atomically. An order is decomposed at most once.
//
// Example:
//
//	handler := NewDecomposeOrderCommandHandler(uowFactory)
//	cmd, _ := NewDecomposeOrderCommand(orderID, 50)
//
//	result, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrAlreadyDecomposed) {
//	    // Bundles already exist for this order
//	    return
//	}
type DecomposeOrderCommandHandler struct {
	uowFactory DecomposeUoWFactory
}

// NewDecomposeOrderCommandHandler creates a handler for order decomposition.
// Requires a DecomposeUoWFactory for transactional persistence.
func NewDecomposeOrderCommandHandler(uowFactory DecomposeUoWFactory) DecomposeOrderCommandHandler {
	return DecomposeOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the decomposition command.
// Loads the order, rejects repeat decompositions, splits the quantity into
// bundles and persists them within a single transaction.
func (h DecomposeOrderCommandHandler) Handle(
	ctx context.Context,
	cmd DecomposeOrderCommand,
) (DecomposeOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return DecomposeOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return DecomposeOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	bundleRepo := uow.BundleRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return DecomposeOrderResult{}, err
	}

	existing, err := bundleRepo.CountByOrder(ctx, aggregate.ID())
	if err != nil {
		return DecomposeOrderResult{}, err
	}
	if existing > 0 {
		return DecomposeOrderResult{}, errs.NewAlreadyDecomposedError(aggregate.ID().String(), existing)
	}

	bundles, err := services.NewBundleSplitter().Split(aggregate, cmd.BundleSize())
	if err != nil {
		return DecomposeOrderResult{}, err
	}

	if err = bundleRepo.AddAll(ctx, bundles); err != nil {
		return DecomposeOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return DecomposeOrderResult{}, err
	}

	return newDecomposeOrderResult(aggregate.ID().String(), bundles), nil
}

func newDecomposeOrderResult(orderID string, bundles []*bundle.Bundle) DecomposeOrderResult {
	result := DecomposeOrderResult{
		OrderID: orderID,
		Bundles: make([]DecomposedBundle, 0, len(bundles)),
	}

	for _, b := range bundles {
		result.Bundles = append(result.Bundles, DecomposedBundle{
			ID:       b.ID().String(),
			Code:     b.Code(),
			Quantity: b.Quantity(),
			Stage:    b.Stage().String(),
		})
	}

	return result
}
