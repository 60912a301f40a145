package ports

import (
	"context"
)

// OrderProgressEvent is the snapshot published whenever a bundle of the order
// changes stage. Dashboards subscribe to these events to render live
// per-order progress without polling.
type OrderProgressEvent struct {
	OrderID           string         `json:"order_id"`
	Status            string         `json:"status"`
	TotalBundles      int            `json:"total_bundles"`
	StageCounts       map[string]int `json:"stage_counts"`
	CompletionPercent float64        `json:"completion_percent"`
}

// ProgressPublisher defines the contract for broadcasting order progress
// snapshots to live subscribers. Publishing is best effort: it happens after
// the transaction commits and a failed publish never fails the scan.
type ProgressPublisher interface {
	// Publish broadcasts the progress snapshot for the event's order.
	Publish(ctx context.Context, event OrderProgressEvent) error
}
