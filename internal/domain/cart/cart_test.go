package cart

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeTotals(t *testing.T) {
	items := []DetailedItem{
		{Item: Item{ProductID: 1, Quantity: 1}, UnitPrice: 299},
		{Item: Item{ProductID: 2, Quantity: 2}, UnitPrice: 199},
	}

	totals := ComputeTotals(items, "")
	require.InDelta(t, 697, totals.Subtotal, 0.0001)
	require.Zero(t, totals.Shipping)
	require.InDelta(t, 697*TaxRate, totals.Tax, 0.0001)
	require.Zero(t, totals.Discount)
	require.InDelta(t, 697+697*TaxRate, totals.Total, 0.0001)
}

func TestComputeTotalsFlatShippingBelowThreshold(t *testing.T) {
	items := []DetailedItem{
		{Item: Item{ProductID: 1, Quantity: 2}, UnitPrice: 15},
	}
	totals := ComputeTotals(items, "")
	require.InDelta(t, 30, totals.Subtotal, 0.0001)
	require.InDelta(t, ShippingFlatRate, totals.Shipping, 0.0001)
}

func TestComputeTotalsPromo(t *testing.T) {
	items := []DetailedItem{
		{Item: Item{ProductID: 1, Quantity: 1}, UnitPrice: 100},
	}
	totals := ComputeTotals(items, PromoSave10)
	require.InDelta(t, 10, totals.Discount, 0.0001)
	require.InDelta(t, 100+100*TaxRate-10, totals.Total, 0.0001)

	require.True(t, ValidPromo(PromoSave10))
	require.False(t, ValidPromo("SAVE99"))
}

func TestComputeTotalsEmptyCart(t *testing.T) {
	totals := ComputeTotals(nil, PromoSave10)
	require.Zero(t, totals.Subtotal)
	require.Zero(t, totals.Shipping)
	require.Zero(t, totals.Total)
}
