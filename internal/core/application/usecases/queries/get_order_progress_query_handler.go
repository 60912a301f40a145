package queries

import (
	"context"

	"spktrack/internal/core/domain/model/bundle"
	"spktrack/internal/core/domain/model/order"
	"spktrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderProgressQueryHandler reads an order's progress snapshot from the
// database. Bundle rows are the authoritative state; the snapshot is
// recomputed from them on every call, never cached.
type GetOrderProgressQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderProgressQueryHandler creates a handler for order progress queries.
// Requires a GORM database connection for query execution.
func NewGetOrderProgressQueryHandler(db *gorm.DB) GetOrderProgressQueryHandler {
	return GetOrderProgressQueryHandler{db: db}
}

// Handle executes the progress query for one order.
// Returns ObjectNotFoundError when the order does not exist. An order without
// bundles reports zero progress.
func (h GetOrderProgressQueryHandler) Handle(
	ctx context.Context,
	query GetOrderProgressQuery,
) (GetOrderProgressQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderProgressQueryResponse{}, err
	}

	var orderRow struct {
		Title         string
		Status        int
		TotalQuantity int
	}

	result := h.db.WithContext(ctx).Raw(`
		SELECT
			title,
			status,
			total_quantity
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Scan(&orderRow)
	if result.Error != nil {
		return GetOrderProgressQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return GetOrderProgressQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	response := GetOrderProgressQueryResponse{
		OrderID:       query.OrderID().String(),
		Title:         orderRow.Title,
		Status:        order.Status(orderRow.Status).String(),
		TotalQuantity: orderRow.TotalQuantity,
		StageCounts:   make(map[string]int),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			stage,
			COUNT(*)
		FROM bundles
		WHERE order_id = ?
		GROUP BY stage
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return GetOrderProgressQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var stageValue, count int

		if err = rows.Scan(&stageValue, &count); err != nil {
			return GetOrderProgressQueryResponse{}, err
		}

		stage := bundle.Stage(stageValue)
		response.StageCounts[stage.String()] = count
		response.TotalBundles += count

		if stage == bundle.Done {
			response.DoneBundles = count
		}
	}

	if err = rows.Err(); err != nil {
		return GetOrderProgressQueryResponse{}, err
	}

	// Completion counts bundles, not pieces: a 5-piece remainder bundle
	// weighs the same as a full one.
	if response.TotalBundles > 0 {
		response.CompletionPercent = float64(response.DoneBundles) / float64(response.TotalBundles) * 100
	}

	return response, nil
}
