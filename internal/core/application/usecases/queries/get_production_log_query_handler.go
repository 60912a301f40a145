package queries

import (
	"context"
	"time"

	"spktrack/internal/core/domain/model/bundle"
	"spktrack/internal/core/domain/model/kernel"
	"spktrack/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetProductionLogQueryHandler reads a bundle's stage transition history from
// the database.
type GetProductionLogQueryHandler struct {
	db *gorm.DB
}

// NewGetProductionLogQueryHandler creates a handler for production log queries.
// Requires a GORM database connection for query execution.
func NewGetProductionLogQueryHandler(db *gorm.DB) GetProductionLogQueryHandler {
	return GetProductionLogQueryHandler{db: db}
}

// Handle executes the log query for one bundle.
// Returns ObjectNotFoundError when the bundle does not exist. Entries come
// back oldest first; a freshly decomposed bundle has none.
func (h GetProductionLogQueryHandler) Handle(
	ctx context.Context,
	query GetProductionLogQuery,
) (GetProductionLogQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetProductionLogQueryResponse{}, err
	}

	var bundleRow struct {
		Code  string
		Stage int
	}

	result := h.db.WithContext(ctx).Raw(`
		SELECT
			code,
			stage
		FROM bundles
		WHERE id = ?
	`, query.BundleID().Bytes()).Scan(&bundleRow)
	if result.Error != nil {
		return GetProductionLogQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return GetProductionLogQueryResponse{}, errs.NewObjectNotFoundError("bundle", query.BundleID())
	}

	response := GetProductionLogQueryResponse{
		BundleID: query.BundleID().String(),
		Code:     bundleRow.Code,
		Stage:    bundle.Stage(bundleRow.Stage).String(),
		Entries:  make([]ProductionLogEntryResponse, 0),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			previous_stage,
			new_stage,
			actor_id,
			note,
			occurred_at
		FROM production_logs
		WHERE bundle_id = ?
		ORDER BY occurred_at, id
	`, query.BundleID().Bytes()).Rows()
	if err != nil {
		return GetProductionLogQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			previousStage, newStage int
			actorID                 uuid.UUID
			note                    string
			occurredAt              time.Time
		)

		if err = rows.Scan(&previousStage, &newStage, &actorID, &note, &occurredAt); err != nil {
			return GetProductionLogQueryResponse{}, err
		}

		actor, idErr := kernel.UUIDFromBytes(actorID[:])
		if idErr != nil {
			return GetProductionLogQueryResponse{}, idErr
		}

		response.Entries = append(response.Entries, ProductionLogEntryResponse{
			PreviousStage: bundle.Stage(previousStage).String(),
			NewStage:      bundle.Stage(newStage).String(),
			ActorID:       actor.String(),
			Note:          note,
			OccurredAt:    occurredAt,
		})
	}

	if err = rows.Err(); err != nil {
		return GetProductionLogQueryResponse{}, err
	}

	return response, nil
}
