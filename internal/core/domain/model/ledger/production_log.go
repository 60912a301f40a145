package ledger

import (
	"fmt"
	"time"

	"spktrack/internal/core/domain/model/bundle"
	"spktrack/internal/core/domain/model/kernel"
	"spktrack/internal/pkg/errs"
)

// ProductionLogEntry records one stage transition of one bundle. The log is
// append-only; the sequence of entries for a bundle replays to its current
// stage.
type ProductionLogEntry struct {
	id            kernel.UUID
	bundleID      kernel.UUID
	previousStage bundle.Stage
	newStage      bundle.Stage
	actorID       kernel.UUID
	note          string
	occurredAt    time.Time
}

// NewProductionLogEntry creates a log entry for a stage transition. The
// transition itself must already have been validated by the bundle.
func NewProductionLogEntry(
	bundleID kernel.UUID,
	previousStage bundle.Stage,
	newStage bundle.Stage,
	actorID kernel.UUID,
	note string,
	occurredAt time.Time,
) (ProductionLogEntry, error) {
	if err := bundleID.Validate(); err != nil {
		return ProductionLogEntry{}, err
	}
	if err := previousStage.Validate(); err != nil {
		return ProductionLogEntry{}, err
	}
	if err := newStage.Validate(); err != nil {
		return ProductionLogEntry{}, err
	}
	if err := actorID.Validate(); err != nil {
		return ProductionLogEntry{}, err
	}

	return ProductionLogEntry{
		id:            kernel.NewUUID(),
		bundleID:      bundleID,
		previousStage: previousStage,
		newStage:      newStage,
		actorID:       actorID,
		note:          note,
		occurredAt:    occurredAt,
	}, nil
}

// RestoreProductionLogEntry reconstructs a log entry from persistence.
func RestoreProductionLogEntry(
	id kernel.UUID,
	bundleID kernel.UUID,
	previousStage bundle.Stage,
	newStage bundle.Stage,
	actorID kernel.UUID,
	note string,
	occurredAt time.Time,
) (ProductionLogEntry, error) {
	entry, err := NewProductionLogEntry(bundleID, previousStage, newStage, actorID, note, occurredAt)
	if err != nil {
		return ProductionLogEntry{}, err
	}
	if err := id.Validate(); err != nil {
		return ProductionLogEntry{}, err
	}

	entry.id = id
	return entry, nil
}

// ID returns the entry identifier.
func (e ProductionLogEntry) ID() kernel.UUID { return e.id }

// BundleID returns the bundle that transitioned.
func (e ProductionLogEntry) BundleID() kernel.UUID { return e.bundleID }

// PreviousStage returns the stage before the transition.
func (e ProductionLogEntry) PreviousStage() bundle.Stage { return e.previousStage }

// NewStage returns the stage after the transition.
func (e ProductionLogEntry) NewStage() bundle.Stage { return e.newStage }

// ActorID returns the worker or operator who triggered the transition.
func (e ProductionLogEntry) ActorID() kernel.UUID { return e.actorID }

// Note returns the optional free-form note.
func (e ProductionLogEntry) Note() string { return e.note }

// OccurredAt returns when the transition happened.
func (e ProductionLogEntry) OccurredAt() time.Time { return e.occurredAt }

// ReplayStage folds a bundle's ordered log entries and returns the resulting
// stage. It fails if the chain is broken, that is if an entry's previous
// stage does not match the stage reached so far.
func ReplayStage(start bundle.Stage, entries []ProductionLogEntry) (bundle.Stage, error) {
	current := start
	for i, entry := range entries {
		if entry.previousStage != current {
			return bundle.Unknown, errs.NewValueIsInvalidErrorWithCause("entries",
				fmt.Errorf("entry %d starts from %s, expected %s", i, entry.previousStage, current))
		}
		current = entry.newStage
	}
	return current, nil
}
