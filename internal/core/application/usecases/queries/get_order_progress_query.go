// Package queries contains read-only operations for the CQRS architecture.
// Query handlers bypass the domain model and read the database directly,
// returning plain response structs shaped for the API.
package queries

import (
	"errors"

	"spktrack/internal/core/domain/model/kernel"
	"spktrack/internal/pkg/guard"
)

var ErrGetOrderProgressQueryIsNotConstructed = errors.New(
	"GetOrderProgressQuery must be created via NewGetOrderProgressQuery constructor",
)

// GetOrderProgressQuery retrieves an order's live production progress:
// how its bundles distribute over the pipeline stages and how many pieces
// are complete.
//
// Example:
//
//	query, err := NewGetOrderProgressQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOrderProgressQueryHandler(db)
//	progress, err := handler.Handle(ctx, query)
type GetOrderProgressQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderProgressQuery creates a query for one order's progress.
// Returns an error if the order ID is invalid.
func NewGetOrderProgressQuery(orderID kernel.UUID) (GetOrderProgressQuery, error) {
	query := GetOrderProgressQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOrderID(orderID); err != nil {
		return GetOrderProgressQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderProgressQueryIsNotConstructed if validation fails.
func (q GetOrderProgressQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderProgressQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to report on.
func (q GetOrderProgressQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOrderProgressQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// GetOrderProgressQueryResponse is the progress snapshot for one order.
type GetOrderProgressQueryResponse struct {
	OrderID           string         `json:"order_id"`
	Title             string         `json:"title"`
	Status            string         `json:"status"`
	TotalQuantity     int            `json:"total_quantity"`
	TotalBundles      int            `json:"total_bundles"`
	StageCounts       map[string]int `json:"stage_counts"`
	DoneBundles       int            `json:"done_bundles"`
	CompletionPercent float64        `json:"completion_percent"`
}
