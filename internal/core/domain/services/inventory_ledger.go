package services

import (
	"time"

	"spktrack/internal/core/domain/model/bundle"
	"spktrack/internal/core/domain/model/kernel"
	"spktrack/internal/core/domain/model/ledger"
	"spktrack/internal/core/domain/model/product"
	"spktrack/internal/core/domain/model/stock"
	"spktrack/internal/pkg/errs"
)

// InventoryDraw is the result of drawing raw material for one bundle: the
// consumption entries to append, plus advisory alerts for any material whose
// balance went negative under the permissive policy.
type InventoryDraw struct {
	Entries []ledger.ConsumptionEntry
	Alerts  []ledger.StockAlert
}

// Drawn reports whether the draw actually decremented stock. False means the
// bundle's material had already been consumed and the call was a no-op.
func (d InventoryDraw) Drawn() bool {
	return len(d.Entries) > 0
}

// InventoryLedger is a domain service responsible for drawing raw material
// when a bundle enters the cutting stage.
//
// Business rules:
//   - Each bundle consumes material exactly once, guarded by the bundle's
//     consumed flag
//   - The required amount per material is the product's bill-of-materials
//     quantity times the bundle's piece count, inflated by the waste tolerance
//   - Under the strict policy a shortfall on any material fails the whole
//     draw and no stock is touched
//   - Under the permissive policy the draw proceeds into negative balance and
//     an advisory alert is recorded per short material
//
// The service mutates the passed stocks and bundle in memory; committing the
// changes atomically is the caller's job.
type InventoryLedger struct {
	policy stock.DrawPolicy
}

// NewInventoryLedger creates an InventoryLedger applying the given draw policy.
func NewInventoryLedger(policy stock.DrawPolicy) (InventoryLedger, error) {
	if err := policy.Validate(); err != nil {
		return InventoryLedger{}, err
	}
	return InventoryLedger{policy: policy}, nil
}

// Draw consumes raw material for the bundle per the product's bill of
// materials.
//
// Parameters:
//   - bundle: the bundle entering cutting (must be valid)
//   - product: the product the bundle produces, carrying the bill of materials
//   - stocks: the material stocks keyed by material identifier; every material
//     in the bill of materials must be present
//
// Returns the ledger entries to append. Repeat calls for an already-consumed
// bundle return an empty draw and no error. Under the strict policy the first
// short material fails the draw with InsufficientStockError before any stock
// is decremented.
func (l InventoryLedger) Draw(
	bundle *bundle.Bundle,
	product *product.Product,
	stocks map[kernel.UUID]*stock.MaterialStock,
	occurredAt time.Time,
) (InventoryDraw, error) {
	if err := bundle.Validate(); err != nil {
		return InventoryDraw{}, err
	}
	if err := product.Validate(); err != nil {
		return InventoryDraw{}, err
	}

	if bundle.IsConsumed() {
		return InventoryDraw{}, nil
	}

	lines := product.BOMLines()

	// Strict draws are all-or-nothing, so check every line before touching any stock.
	if l.policy == stock.PolicyStrict {
		for _, line := range lines {
			materialStock, ok := stocks[line.MaterialID()]
			if !ok {
				return InventoryDraw{}, errs.NewObjectNotFoundError("materialStock", line.MaterialID())
			}

			required := line.RequiredFor(bundle.Quantity())
			if materialStock.CurrentStock().LessThan(required) {
				return InventoryDraw{}, errs.NewInsufficientStockError(
					line.MaterialID().String(),
					required.String(),
					materialStock.CurrentStock().String(),
				)
			}
		}
	}

	draw := InventoryDraw{}
	for _, line := range lines {
		materialStock, ok := stocks[line.MaterialID()]
		if !ok {
			return InventoryDraw{}, errs.NewObjectNotFoundError("materialStock", line.MaterialID())
		}

		required := line.RequiredFor(bundle.Quantity())
		wentNegative, err := materialStock.Draw(required, l.policy)
		if err != nil {
			return InventoryDraw{}, err
		}

		entry, err := ledger.NewConsumptionEntry(bundle.ID(), line.MaterialID(), required, occurredAt)
		if err != nil {
			return InventoryDraw{}, err
		}
		draw.Entries = append(draw.Entries, entry)

		if wentNegative {
			alert, err := ledger.NewStockAlert(
				bundle.ID(), line.MaterialID(), required, materialStock.CurrentStock(), occurredAt)
			if err != nil {
				return InventoryDraw{}, err
			}
			draw.Alerts = append(draw.Alerts, alert)
		}
	}

	bundle.MarkConsumed()
	return draw, nil
}
