package commands

import (
	"context"

	"spktrack/internal/core/domain/model/bundle"
	"spktrack/internal/core/domain/model/order"
)

// ReconcileOrdersCommandHandler recomputes order statuses from bundle stages.
// The scan path keeps statuses in sync already; the reconciliation runs
// periodically as a safety net for statuses that drifted, for example after
// a crash between a bundle write and the order update.
type ReconcileOrdersCommandHandler struct {
	uowFactory ReconcileUoWFactory
}

// NewReconcileOrdersCommandHandler creates a handler for order status
// reconciliation. Requires a ReconcileUoWFactory for transactional persistence.
func NewReconcileOrdersCommandHandler(uowFactory ReconcileUoWFactory) ReconcileOrdersCommandHandler {
	return ReconcileOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle walks all unfinished orders and realigns each status with its
// bundles: decomposed orders with any terminal-or-beyond activity start,
// and orders whose bundles are all terminal complete. Returns the number
// of orders whose status changed.
func (h ReconcileOrdersCommandHandler) Handle(ctx context.Context, cmd ReconcileOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	bundleRepo := uow.BundleRepository()

	orders, err := orderRepo.GetAllUnfinished(ctx)
	if err != nil {
		return 0, err
	}

	changed := 0
	for _, aggregate := range orders {
		bundles, err := bundleRepo.GetAllByOrder(ctx, aggregate.ID())
		if err != nil {
			return 0, err
		}

		updated, err := reconcileOrder(aggregate, bundles)
		if err != nil {
			return 0, err
		}
		if !updated {
			continue
		}

		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return 0, err
		}
		changed++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return changed, nil
}

// reconcileOrder realigns one order's status with its bundles and reports
// whether the status changed. As in syncOrderStatus, rejected bundles count
// as terminal, so a fully rejected order still completes.
func reconcileOrder(aggregate *order.Order, bundles []*bundle.Bundle) (bool, error) {
	changed := false

	if aggregate.Status() == order.Planned && anyScanned(bundles) {
		if err := aggregate.Start(); err != nil {
			return false, err
		}
		changed = true
	}

	if aggregate.Status() == order.InProgress && allTerminal(bundles) {
		if err := aggregate.Complete(); err != nil {
			return false, err
		}
		changed = true
	}

	return changed, nil
}

func anyScanned(bundles []*bundle.Bundle) bool {
	for _, b := range bundles {
		if b.Stage() != bundle.New {
			return true
		}
	}
	return false
}
