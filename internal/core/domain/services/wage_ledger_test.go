package services_test

import (
	"testing"
	"time"

	"spktrack/internal/core/domain/model/kernel"
	"spktrack/internal/core/domain/model/ledger"
	"spktrack/internal/core/domain/model/wallet"
	"spktrack/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWallet(t *testing.T, balance string) *wallet.Wallet {
	t.Helper()

	w, err := wallet.RestoreWallet(kernel.NewUUID(), decimal.RequireFromString(balance))
	require.NoError(t, err)
	return w
}

func TestWageLedger_Accrue(t *testing.T) {
	now := time.Now()
	wageLedger := services.NewWageLedger()

	t.Run("credits piece rate times bundle quantity", func(t *testing.T) {
		p := newProductWithBOM(t, newBOMLine(t, kernel.NewUUID(), "1", "0"))
		b := newBundle(t, 50)
		w := newWallet(t, "100")

		accrual, err := wageLedger.Accrue(b, p, w, now)
		require.NoError(t, err)

		// 2.5 * 50 = 125, on top of the opening 100
		assert.True(t, accrual.Credited)
		assert.True(t, w.Balance().Equal(decimal.NewFromInt(225)))
		assert.True(t, accrual.Transaction.Amount().Equal(decimal.NewFromInt(125)))
		assert.Equal(t, ledger.TransactionCredit, accrual.Transaction.Type())
		assert.True(t, accrual.Transaction.WalletID().IsEqual(w.WorkerID()))
		assert.True(t, accrual.Transaction.BundleID().IsEqual(b.ID()))
		assert.True(t, b.IsPaid())
	})

	t.Run("repeat accrual is a no-op", func(t *testing.T) {
		p := newProductWithBOM(t, newBOMLine(t, kernel.NewUUID(), "1", "0"))
		b := newBundle(t, 50)
		w := newWallet(t, "0")

		_, err := wageLedger.Accrue(b, p, w, now)
		require.NoError(t, err)
		require.True(t, w.Balance().Equal(decimal.NewFromInt(125)))

		accrual, err := wageLedger.Accrue(b, p, w, now)
		require.NoError(t, err)

		assert.False(t, accrual.Credited)
		assert.True(t, w.Balance().Equal(decimal.NewFromInt(125)))
	})

	t.Run("unconstructed wallet fails", func(t *testing.T) {
		p := newProductWithBOM(t, newBOMLine(t, kernel.NewUUID(), "1", "0"))
		b := newBundle(t, 50)

		_, err := wageLedger.Accrue(b, p, &wallet.Wallet{}, now)
		assert.Error(t, err)
	})
}
