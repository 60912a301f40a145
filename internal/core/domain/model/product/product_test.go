package product_test

import (
	"testing"

	"spktrack/internal/core/domain/model/kernel"
	"spktrack/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBOMLine(t *testing.T, perUnit, tolerance string) product.BOMLine {
	t.Helper()
	line, err := product.NewBOMLine(
		kernel.NewUUID(),
		decimal.RequireFromString(perUnit),
		decimal.RequireFromString(tolerance),
	)
	require.NoError(t, err)
	return line
}

func TestNewBOMLine(t *testing.T) {
	t.Run("should create valid line", func(t *testing.T) {
		materialID := kernel.NewUUID()

		line, err := product.NewBOMLine(materialID, decimal.NewFromInt(2), decimal.NewFromInt(5))

		require.NoError(t, err)
		require.NoError(t, line.Validate())
		assert.True(t, line.MaterialID().IsEqual(materialID))
		assert.True(t, line.QuantityPerUnit().Equal(decimal.NewFromInt(2)))
		assert.True(t, line.TolerancePercent().Equal(decimal.NewFromInt(5)))
	})

	t.Run("should fail with invalid material id", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := product.NewBOMLine(invalidID, decimal.NewFromInt(2), decimal.Zero)
		require.Error(t, err)
	})

	t.Run("should fail with non-positive quantity per unit", func(t *testing.T) {
		for _, perUnit := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-1)} {
			_, err := product.NewBOMLine(kernel.NewUUID(), perUnit, decimal.Zero)
			require.Error(t, err, "perUnit %s", perUnit)
		}
	})

	t.Run("should fail with negative tolerance", func(t *testing.T) {
		_, err := product.NewBOMLine(kernel.NewUUID(), decimal.NewFromInt(2), decimal.NewFromInt(-5))
		require.Error(t, err)
	})

	t.Run("zero-value line fails validation", func(t *testing.T) {
		var line product.BOMLine
		require.ErrorIs(t, line.Validate(), product.ErrBOMLineIsNotConstructed)
	})
}

func TestBOMLine_RequiredFor(t *testing.T) {
	t.Run("should multiply per-unit quantity by pieces", func(t *testing.T) {
		line := mustBOMLine(t, "2", "0")

		assert.True(t, line.RequiredFor(20).Equal(decimal.NewFromInt(40)),
			"got %s", line.RequiredFor(20))
	})

	t.Run("should apply tolerance on top of the raw draw", func(t *testing.T) {
		line := mustBOMLine(t, "2", "5")

		// 2 * 20 * 1.05 = 42
		assert.True(t, line.RequiredFor(20).Equal(decimal.NewFromInt(42)),
			"got %s", line.RequiredFor(20))
	})

	t.Run("should keep fractional precision", func(t *testing.T) {
		line := mustBOMLine(t, "0.25", "10")

		// 0.25 * 8 * 1.1 = 2.2
		assert.True(t, line.RequiredFor(8).Equal(decimal.RequireFromString("2.2")),
			"got %s", line.RequiredFor(8))
	})
}

func TestNewProduct(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create valid product", func(t *testing.T) {
		line := mustBOMLine(t, "2", "5")

		p, err := product.NewProduct(validID, "Kaos Polos", decimal.NewFromInt(500), []product.BOMLine{line})

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, "Kaos Polos", p.Name())
		assert.Len(t, p.BOMLines(), 1)
	})

	t.Run("should allow empty bill of materials", func(t *testing.T) {
		p, err := product.NewProduct(validID, "Jasa Obras", decimal.NewFromInt(200), nil)

		require.NoError(t, err)
		assert.Empty(t, p.BOMLines())
	})

	t.Run("should fail with negative wage", func(t *testing.T) {
		_, err := product.NewProduct(validID, "Kaos", decimal.NewFromInt(-1), nil)
		require.Error(t, err)
	})

	t.Run("should fail with blank name", func(t *testing.T) {
		_, err := product.NewProduct(validID, " ", decimal.NewFromInt(500), nil)
		require.Error(t, err)
	})

	t.Run("should fail with unconstructed bom line", func(t *testing.T) {
		_, err := product.NewProduct(validID, "Kaos", decimal.NewFromInt(500),
			[]product.BOMLine{{}})
		require.Error(t, err)
	})
}

func TestProduct_WageFor(t *testing.T) {
	p, err := product.NewProduct(kernel.NewUUID(), "Kaos", decimal.NewFromInt(500), nil)
	require.NoError(t, err)

	assert.True(t, p.WageFor(20).Equal(decimal.NewFromInt(10000)), "got %s", p.WageFor(20))
	assert.True(t, p.WageFor(0).Equal(decimal.Zero))
}

func TestProduct_BOMLinesIsACopy(t *testing.T) {
	line := mustBOMLine(t, "2", "0")
	p, err := product.NewProduct(kernel.NewUUID(), "Kaos", decimal.NewFromInt(500), []product.BOMLine{line})
	require.NoError(t, err)

	lines := p.BOMLines()
	lines[0] = product.BOMLine{}

	require.NoError(t, p.BOMLines()[0].Validate())
}
