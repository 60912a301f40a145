package ledger_test

import (
	"testing"
	"time"

	"spktrack/internal/core/domain/model/kernel"
	"spktrack/internal/core/domain/model/ledger"
	"spktrack/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConsumptionEntry(t *testing.T) {
	bundleID := kernel.NewUUID()
	materialID := kernel.NewUUID()
	now := time.Now()

	t.Run("valid entry", func(t *testing.T) {
		entry, err := ledger.NewConsumptionEntry(bundleID, materialID, decimal.NewFromFloat(82.5), now)
		require.NoError(t, err)

		assert.NoError(t, entry.ID().Validate())
		assert.True(t, entry.BundleID().IsEqual(bundleID))
		assert.True(t, entry.MaterialID().IsEqual(materialID))
		assert.True(t, entry.Amount().Equal(decimal.NewFromFloat(82.5)))
		assert.Equal(t, now, entry.OccurredAt())
	})

	t.Run("zero amount", func(t *testing.T) {
		_, err := ledger.NewConsumptionEntry(bundleID, materialID, decimal.Zero, now)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("negative amount", func(t *testing.T) {
		_, err := ledger.NewConsumptionEntry(bundleID, materialID, decimal.NewFromInt(-1), now)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("empty bundle id", func(t *testing.T) {
		_, err := ledger.NewConsumptionEntry(kernel.UUID{}, materialID, decimal.NewFromInt(1), now)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestoreConsumptionEntry(t *testing.T) {
	id := kernel.NewUUID()

	entry, err := ledger.RestoreConsumptionEntry(
		id, kernel.NewUUID(), kernel.NewUUID(), decimal.NewFromInt(10), time.Now())
	require.NoError(t, err)

	assert.True(t, entry.ID().IsEqual(id))
}

func TestNewWageTransaction(t *testing.T) {
	walletID := kernel.NewUUID()
	bundleID := kernel.NewUUID()
	now := time.Now()

	t.Run("credit", func(t *testing.T) {
		tx, err := ledger.NewWageTransaction(
			walletID, bundleID, decimal.NewFromInt(125), ledger.TransactionCredit, now)
		require.NoError(t, err)

		assert.True(t, tx.WalletID().IsEqual(walletID))
		assert.True(t, tx.BundleID().IsEqual(bundleID))
		assert.True(t, tx.Amount().Equal(decimal.NewFromInt(125)))
		assert.Equal(t, ledger.TransactionCredit, tx.Type())
		assert.Equal(t, now, tx.OccurredAt())
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := ledger.NewWageTransaction(
			walletID, bundleID, decimal.NewFromInt(125), ledger.TransactionType("TRANSFER"), now)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("non positive amount", func(t *testing.T) {
		_, err := ledger.NewWageTransaction(
			walletID, bundleID, decimal.Zero, ledger.TransactionCredit, now)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestTransactionType_Validate(t *testing.T) {
	assert.NoError(t, ledger.TransactionCredit.Validate())
	assert.NoError(t, ledger.TransactionDebit.Validate())
	assert.ErrorIs(t, ledger.TransactionType("").Validate(), errs.ErrValueIsInvalid)
}

func TestNewStockAlert(t *testing.T) {
	bundleID := kernel.NewUUID()
	materialID := kernel.NewUUID()
	now := time.Now()

	t.Run("records the shortfall", func(t *testing.T) {
		alert, err := ledger.NewStockAlert(
			bundleID, materialID, decimal.NewFromInt(100), decimal.NewFromInt(-20), now)
		require.NoError(t, err)

		assert.True(t, alert.BundleID().IsEqual(bundleID))
		assert.True(t, alert.MaterialID().IsEqual(materialID))
		assert.True(t, alert.Required().Equal(decimal.NewFromInt(100)))
		assert.True(t, alert.BalanceAfter().Equal(decimal.NewFromInt(-20)))
	})

	t.Run("empty material id", func(t *testing.T) {
		_, err := ledger.NewStockAlert(
			bundleID, kernel.UUID{}, decimal.NewFromInt(100), decimal.NewFromInt(-20), now)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
