package commands

import (
	"context"
	"time"

	"spktrack/internal/core/domain/model/bundle"
	"spktrack/internal/core/domain/model/kernel"
	"spktrack/internal/core/domain/model/ledger"
	"spktrack/internal/core/domain/model/order"
	"spktrack/internal/core/domain/model/product"
	"spktrack/internal/core/domain/services"
	"spktrack/internal/core/ports"
)

// AdvanceBundleResult reports the outcome of one processed scan.
type AdvanceBundleResult struct {
	BundleID string
	Code     string
	Stage    string
	// NoOp is true for a repeat completion scan: the bundle was already
	// done and nothing changed.
	NoOp bool
}

// AdvanceBundleCommandHandler processes scan events: it resolves the scanned
// code to a bundle, advances the bundle's stage, applies the stage's side
// effects and broadcasts the order's updated progress.
//
// Side effects by target stage:
//   - Cutting draws raw material per the product's bill of materials
//   - Done credits the worker's piece wage
//
// All writes of one scan commit in a single transaction. Scans of the same
// bundle are serialized by an advisory lock; the conditional stage write in
// the bundle repository backstops lock expiry.
type AdvanceBundleCommandHandler struct {
	uowFactory ScanUoWFactory
	locker     ports.BundleLocker
	publisher  ports.ProgressPublisher
	inventory  services.InventoryLedger
	wages      services.WageLedger
}

// NewAdvanceBundleCommandHandler creates a handler for scan processing.
func NewAdvanceBundleCommandHandler(
	uowFactory ScanUoWFactory,
	locker ports.BundleLocker,
	publisher ports.ProgressPublisher,
	inventory services.InventoryLedger,
	wages services.WageLedger,
) AdvanceBundleCommandHandler {
	return AdvanceBundleCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
		publisher:  publisher,
		inventory:  inventory,
		wages:      wages,
	}
}

// Handle processes one scan event.
//
// The flow is resolve, lock, transact, publish:
//  1. Resolve the scanned code to a bundle identifier.
//  2. Acquire the bundle's advisory lock.
//  3. In one transaction: re-read the bundle, advance its stage, apply the
//     target stage's side effects, append the audit records and recompute
//     the order's status.
//  4. After commit, publish the order's progress snapshot. Publishing is
//     best effort and never fails the scan.
//
// A repeat completion scan (bundle already Done, target Done) commits
// nothing and succeeds with NoOp set.
func (h AdvanceBundleCommandHandler) Handle(
	ctx context.Context,
	cmd AdvanceBundleCommand,
) (AdvanceBundleResult, error) {
	if err := cmd.Validate(); err != nil {
		return AdvanceBundleResult{}, err
	}

	bundleID, err := h.resolveBundleID(ctx, cmd.Code())
	if err != nil {
		return AdvanceBundleResult{}, err
	}

	lock, err := h.locker.Lock(ctx, bundleID)
	if err != nil {
		return AdvanceBundleResult{}, err
	}
	defer func() {
		_ = lock.Release(ctx)
	}()

	result, event, err := h.advance(ctx, bundleID, cmd)
	if err != nil {
		return AdvanceBundleResult{}, err
	}

	if event != nil {
		// The scan already committed; a dead broker must not fail it.
		_ = h.publisher.Publish(ctx, *event)
	}

	return result, nil
}

// resolveBundleID maps a scanned code to a bundle identifier. UUID payloads
// resolve directly; label payloads need a repository lookup, done in a short
// read-only transaction so the advisory lock is taken before the scan's own
// transaction starts.
func (h AdvanceBundleCommandHandler) resolveBundleID(
	ctx context.Context,
	code kernel.ScanCode,
) (kernel.UUID, error) {
	if code.Kind() == kernel.ScanCodeBundleID {
		return code.BundleID(), nil
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.BundleRepository().GetByCode(ctx, code.String())
	if err != nil {
		return kernel.UUID{}, err
	}

	return aggregate.ID(), nil
}

// advance runs the transactional part of scan processing and returns the
// progress event to publish after commit, or nil when nothing changed.
func (h AdvanceBundleCommandHandler) advance(
	ctx context.Context,
	bundleID kernel.UUID,
	cmd AdvanceBundleCommand,
) (AdvanceBundleResult, *ports.OrderProgressEvent, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AdvanceBundleResult{}, nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	bundleRepo := uow.BundleRepository()

	aggregate, err := bundleRepo.Get(ctx, bundleID)
	if err != nil {
		return AdvanceBundleResult{}, nil, err
	}

	if aggregate.IsRepeatCompletion(cmd.TargetStage()) {
		return newAdvanceBundleResult(aggregate, true), nil, nil
	}

	fromStage := aggregate.Stage()
	if err = aggregate.AdvanceTo(cmd.TargetStage()); err != nil {
		return AdvanceBundleResult{}, nil, err
	}

	orderRepo := uow.OrderRepository()
	owningOrder, err := orderRepo.Get(ctx, aggregate.OrderID())
	if err != nil {
		return AdvanceBundleResult{}, nil, err
	}

	now := time.Now().UTC()

	switch cmd.TargetStage() {
	case bundle.Cutting:
		if err = h.drawMaterial(ctx, uow, aggregate, owningOrder, now); err != nil {
			return AdvanceBundleResult{}, nil, err
		}
	case bundle.Done:
		if err = h.accrueWage(ctx, uow, aggregate, owningOrder, cmd.ActorID(), now); err != nil {
			return AdvanceBundleResult{}, nil, err
		}
	}

	if err = bundleRepo.Update(ctx, aggregate, fromStage); err != nil {
		return AdvanceBundleResult{}, nil, err
	}

	logEntry, err := ledger.NewProductionLogEntry(
		aggregate.ID(), fromStage, aggregate.Stage(), cmd.ActorID(), cmd.Note(), now)
	if err != nil {
		return AdvanceBundleResult{}, nil, err
	}
	if err = uow.LedgerRepository().AppendProductionLog(ctx, logEntry); err != nil {
		return AdvanceBundleResult{}, nil, err
	}

	siblings, err := bundleRepo.GetAllByOrder(ctx, owningOrder.ID())
	if err != nil {
		return AdvanceBundleResult{}, nil, err
	}

	if err = h.syncOrderStatus(ctx, orderRepo, owningOrder, siblings); err != nil {
		return AdvanceBundleResult{}, nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AdvanceBundleResult{}, nil, err
	}

	event := newOrderProgressEvent(owningOrder, siblings)
	return newAdvanceBundleResult(aggregate, false), &event, nil
}

// drawMaterial applies the cutting side effect: raw stock is decremented per
// the product's bill of materials and the draw is recorded in the ledger.
func (h AdvanceBundleCommandHandler) drawMaterial(
	ctx context.Context,
	uow ScanUoW,
	aggregate *bundle.Bundle,
	owningOrder *order.Order,
	now time.Time,
) error {
	prod, err := uow.ProductRepository().Get(ctx, owningOrder.ProductID())
	if err != nil {
		return err
	}

	stockRepo := uow.StockRepository()
	stocks, err := stockRepo.GetByMaterialIDs(ctx, materialIDs(prod))
	if err != nil {
		return err
	}

	draw, err := h.inventory.Draw(aggregate, prod, stocks, now)
	if err != nil {
		return err
	}
	if !draw.Drawn() {
		return nil
	}

	for _, materialStock := range stocks {
		if err = stockRepo.Update(ctx, materialStock); err != nil {
			return err
		}
	}

	ledgerRepo := uow.LedgerRepository()
	if err = ledgerRepo.AppendConsumption(ctx, draw.Entries); err != nil {
		return err
	}
	if len(draw.Alerts) > 0 {
		if err = ledgerRepo.AppendStockAlerts(ctx, draw.Alerts); err != nil {
			return err
		}
	}

	return nil
}

// accrueWage applies the completion side effect: the scanning worker's wallet
// is credited the piece wage and the credit is recorded in the ledger.
func (h AdvanceBundleCommandHandler) accrueWage(
	ctx context.Context,
	uow ScanUoW,
	aggregate *bundle.Bundle,
	owningOrder *order.Order,
	actorID kernel.UUID,
	now time.Time,
) error {
	prod, err := uow.ProductRepository().Get(ctx, owningOrder.ProductID())
	if err != nil {
		return err
	}

	walletRepo := uow.WalletRepository()
	workerWallet, err := walletRepo.GetOrCreate(ctx, actorID)
	if err != nil {
		return err
	}

	accrual, err := h.wages.Accrue(aggregate, prod, workerWallet, now)
	if err != nil {
		return err
	}
	if !accrual.Credited {
		return nil
	}

	if err = walletRepo.Update(ctx, workerWallet); err != nil {
		return err
	}

	return uow.LedgerRepository().AppendWageTransaction(ctx, accrual.Transaction)
}

// syncOrderStatus recomputes the order's status from its bundles: any
// activity moves a planned order to in progress, and an order whose bundles
// are all terminal completes. Rejected bundles count as terminal here, even
// though they never reach Done: an order whose bundles were all rejected
// would otherwise stay in progress forever.
func (h AdvanceBundleCommandHandler) syncOrderStatus(
	ctx context.Context,
	orderRepo ports.OrderRepository,
	owningOrder *order.Order,
	bundles []*bundle.Bundle,
) error {
	changed := false

	if owningOrder.Status() == order.Planned {
		if err := owningOrder.Start(); err != nil {
			return err
		}
		changed = true
	}

	if owningOrder.Status() == order.InProgress && allTerminal(bundles) {
		if err := owningOrder.Complete(); err != nil {
			return err
		}
		changed = true
	}

	if !changed {
		return nil
	}

	return orderRepo.Update(ctx, owningOrder)
}

func allTerminal(bundles []*bundle.Bundle) bool {
	for _, b := range bundles {
		if !b.Stage().IsTerminal() {
			return false
		}
	}
	return len(bundles) > 0
}

func materialIDs(prod *product.Product) []kernel.UUID {
	lines := prod.BOMLines()
	ids := make([]kernel.UUID, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.MaterialID())
	}
	return ids
}

func newAdvanceBundleResult(aggregate *bundle.Bundle, noOp bool) AdvanceBundleResult {
	return AdvanceBundleResult{
		BundleID: aggregate.ID().String(),
		Code:     aggregate.Code(),
		Stage:    aggregate.Stage().String(),
		NoOp:     noOp,
	}
}

// newOrderProgressEvent builds the post-commit progress snapshot. Completion
// is the share of done bundles over all bundles; rejected bundles are
// terminal but incomplete.
func newOrderProgressEvent(owningOrder *order.Order, bundles []*bundle.Bundle) ports.OrderProgressEvent {
	stageCounts := make(map[string]int)
	doneBundles := 0

	for _, b := range bundles {
		stageCounts[b.Stage().String()]++
		if b.Stage() == bundle.Done {
			doneBundles++
		}
	}

	completion := 0.0
	if len(bundles) > 0 {
		completion = float64(doneBundles) / float64(len(bundles)) * 100
	}

	return ports.OrderProgressEvent{
		OrderID:           owningOrder.ID().String(),
		Status:            owningOrder.Status().String(),
		TotalBundles:      len(bundles),
		StageCounts:       stageCounts,
		CompletionPercent: completion,
	}
}
