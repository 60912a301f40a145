package queries

import (
	"errors"
	"time"

	"spktrack/internal/core/domain/model/kernel"
	"spktrack/internal/pkg/guard"
)

var ErrGetProductionLogQueryIsNotConstructed = errors.New(
	"GetProductionLogQuery must be created via NewGetProductionLogQuery constructor",
)

// GetProductionLogQuery retrieves a bundle's stage transition history,
// oldest first. The returned sequence replays to the bundle's current stage.
type GetProductionLogQuery struct { //nolint:recvcheck //using for validation
	bundleID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetProductionLogQuery creates a query for one bundle's transition log.
// Returns an error if the bundle ID is invalid.
func NewGetProductionLogQuery(bundleID kernel.UUID) (GetProductionLogQuery, error) {
	query := GetProductionLogQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setBundleID(bundleID); err != nil {
		return GetProductionLogQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetProductionLogQueryIsNotConstructed if validation fails.
func (q GetProductionLogQuery) Validate() error {
	return q.guard.Validate(ErrGetProductionLogQueryIsNotConstructed)
}

// BundleID returns the identifier of the bundle whose log to read.
func (q GetProductionLogQuery) BundleID() kernel.UUID {
	return q.bundleID
}

func (q *GetProductionLogQuery) setBundleID(bundleID kernel.UUID) error {
	if err := bundleID.Validate(); err != nil {
		return err
	}

	q.bundleID = bundleID
	return nil
}

// ProductionLogEntryResponse is one stage transition in a bundle's history.
type ProductionLogEntryResponse struct {
	PreviousStage string    `json:"previous_stage"`
	NewStage      string    `json:"new_stage"`
	ActorID       string    `json:"actor_id"`
	Note          string    `json:"note,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// GetProductionLogQueryResponse is a bundle's full transition history.
type GetProductionLogQueryResponse struct {
	BundleID string                       `json:"bundle_id"`
	Code     string                       `json:"code"`
	Stage    string                       `json:"stage"`
	Entries  []ProductionLogEntryResponse `json:"entries"`
}
