package cart

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giannis-supplies/storefront/internal/models"
)

func TestComputeTotals(t *testing.T) {
	t.Parallel()

	lines := []models.CartLine{
		{ProductID: 1, Price: 10, Quantity: 2},
		{ProductID: 2, Price: 5, Quantity: 1},
	}

	totals := ComputeTotals(lines)

	// tax is 3.5625 before the final rounding step, total 27.3125
	assert.Equal(t, "25.00", totals.Subtotal.StringFixed(2))
	assert.Equal(t, "1.25", totals.Discount.StringFixed(2))
	assert.Equal(t, "3.56", totals.Tax.StringFixed(2))
	assert.Equal(t, "27.31", totals.Total.StringFixed(2))
}

func TestComputeTotals_EmptyCart(t *testing.T) {
	t.Parallel()

	totals := ComputeTotals(nil)

	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.Discount.IsZero())
	assert.True(t, totals.Tax.IsZero())
	assert.True(t, totals.Total.IsZero())
}

func TestComputeTotals_RoundsAtComputationTime(t *testing.T) {
	t.Parallel()

	// three units of 33.333: components round individually, not cumulatively
	lines := []models.CartLine{{ProductID: 1, Price: 33.333, Quantity: 3}}

	totals := ComputeTotals(lines)

	assert.Equal(t, "100.00", totals.Subtotal.StringFixed(2))
	assert.Equal(t, "5.00", totals.Discount.StringFixed(2))
	assert.Equal(t, "14.25", totals.Tax.StringFixed(2))
	assert.Equal(t, "109.25", totals.Total.StringFixed(2))
}

func TestComputeTotals_MarshalsAsDecimalStrings(t *testing.T) {
	t.Parallel()

	totals := ComputeTotals([]models.CartLine{{ProductID: 1, Price: 10.01, Quantity: 1}})

	data, err := json.Marshal(totals)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"subtotal":"10.01"`)
}

func TestLineSubtotal(t *testing.T) {
	t.Parallel()

	line := models.CartLine{Price: 45.50, Quantity: 3}
	assert.Equal(t, "136.50", LineSubtotal(line).StringFixed(2))
}

func TestItemCount(t *testing.T) {
	t.Parallel()

	lines := []models.CartLine{
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: 5},
	}
	assert.Equal(t, 7, ItemCount(lines))
	assert.Equal(t, 0, ItemCount(nil))
}
