package ledger_test

import (
	"testing"
	"time"

	"spktrack/internal/core/domain/model/bundle"
	"spktrack/internal/core/domain/model/kernel"
	"spktrack/internal/core/domain/model/ledger"
	"spktrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProductionLogEntry(t *testing.T) {
	bundleID := kernel.NewUUID()
	actorID := kernel.NewUUID()
	now := time.Now()

	t.Run("valid entry", func(t *testing.T) {
		entry, err := ledger.NewProductionLogEntry(
			bundleID, bundle.New, bundle.Cutting, actorID, "line 2", now)
		require.NoError(t, err)

		assert.NoError(t, entry.ID().Validate())
		assert.True(t, entry.BundleID().IsEqual(bundleID))
		assert.Equal(t, bundle.New, entry.PreviousStage())
		assert.Equal(t, bundle.Cutting, entry.NewStage())
		assert.True(t, entry.ActorID().IsEqual(actorID))
		assert.Equal(t, "line 2", entry.Note())
		assert.Equal(t, now, entry.OccurredAt())
	})

	t.Run("note may be empty", func(t *testing.T) {
		entry, err := ledger.NewProductionLogEntry(
			bundleID, bundle.Sewing, bundle.Finishing, actorID, "", now)
		require.NoError(t, err)
		assert.Empty(t, entry.Note())
	})

	t.Run("invalid previous stage", func(t *testing.T) {
		_, err := ledger.NewProductionLogEntry(
			bundleID, bundle.Unknown, bundle.Cutting, actorID, "", now)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("empty actor id", func(t *testing.T) {
		_, err := ledger.NewProductionLogEntry(
			bundleID, bundle.New, bundle.Cutting, kernel.UUID{}, "", now)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestoreProductionLogEntry(t *testing.T) {
	id := kernel.NewUUID()

	entry, err := ledger.RestoreProductionLogEntry(
		id, kernel.NewUUID(), bundle.Cutting, bundle.Sewing, kernel.NewUUID(), "", time.Now())
	require.NoError(t, err)

	assert.True(t, entry.ID().IsEqual(id))
}

func TestReplayStage(t *testing.T) {
	bundleID := kernel.NewUUID()
	actorID := kernel.NewUUID()
	now := time.Now()

	mustEntry := func(prev, next bundle.Stage) ledger.ProductionLogEntry {
		entry, err := ledger.NewProductionLogEntry(bundleID, prev, next, actorID, "", now)
		require.NoError(t, err)
		return entry
	}

	t.Run("replays a full pipeline to done", func(t *testing.T) {
		entries := []ledger.ProductionLogEntry{
			mustEntry(bundle.New, bundle.Cutting),
			mustEntry(bundle.Cutting, bundle.Sewing),
			mustEntry(bundle.Sewing, bundle.Finishing),
			mustEntry(bundle.Finishing, bundle.Done),
		}

		stage, err := ledger.ReplayStage(bundle.New, entries)
		require.NoError(t, err)
		assert.Equal(t, bundle.Done, stage)
	})

	t.Run("replays a rejection", func(t *testing.T) {
		entries := []ledger.ProductionLogEntry{
			mustEntry(bundle.New, bundle.Cutting),
			mustEntry(bundle.Cutting, bundle.Rejected),
		}

		stage, err := ledger.ReplayStage(bundle.New, entries)
		require.NoError(t, err)
		assert.Equal(t, bundle.Rejected, stage)
	})

	t.Run("empty log keeps the starting stage", func(t *testing.T) {
		stage, err := ledger.ReplayStage(bundle.New, nil)
		require.NoError(t, err)
		assert.Equal(t, bundle.New, stage)
	})

	t.Run("broken chain fails", func(t *testing.T) {
		entries := []ledger.ProductionLogEntry{
			mustEntry(bundle.New, bundle.Cutting),
			mustEntry(bundle.Sewing, bundle.Finishing),
		}

		_, err := ledger.ReplayStage(bundle.New, entries)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("matches the transitions the bundle itself performed", func(t *testing.T) {
		b, err := bundle.NewBundle(kernel.NewUUID(), kernel.NewUUID(), "SPK-001", 50)
		require.NoError(t, err)

		var entries []ledger.ProductionLogEntry
		for _, target := range []bundle.Stage{bundle.Cutting, bundle.Sewing, bundle.Finishing, bundle.Done} {
			prev := b.Stage()
			require.NoError(t, b.AdvanceTo(target))
			entries = append(entries, mustEntry(prev, b.Stage()))
		}

		stage, err := ledger.ReplayStage(bundle.New, entries)
		require.NoError(t, err)
		assert.Equal(t, b.Stage(), stage)
	})
}
