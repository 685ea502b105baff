package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildCart(t *testing.T) *Cart {
	t.Helper()
	cart := NewCart()
	cart.AddLine(mustLine(t, "Coffee", "10.00", 2))
	cart.AddLine(mustLine(t, "Tea", "5.00", 1))
	return cart
}

func TestComputeTotals(t *testing.T) {
	taxRate := decimal.NewFromFloat(0.15)

	// subtotal 25.00, tax 3.75, discount 25*10% + 1.00 = 3.50, total 25.25
	totals := ComputeTotals(buildCart(t),
		decimal.NewFromInt(10), decimal.NewFromInt(1), taxRate)

	assert.True(t, totals.Subtotal.Equal(decimal.RequireFromString("25.00")), "subtotal: %s", totals.Subtotal)
	assert.True(t, totals.Tax.Equal(decimal.RequireFromString("3.75")), "tax: %s", totals.Tax)
	assert.True(t, totals.Discount.Equal(decimal.RequireFromString("3.50")), "discount: %s", totals.Discount)
	assert.True(t, totals.GrandTotal.Equal(decimal.RequireFromString("25.25")), "grand_total: %s", totals.GrandTotal)
}

func TestComputeTotals_NoDiscounts(t *testing.T) {
	totals := ComputeTotals(buildCart(t), decimal.Zero, decimal.Zero, decimal.NewFromFloat(0.15))

	assert.True(t, totals.Discount.IsZero())
	assert.True(t, totals.GrandTotal.Equal(decimal.RequireFromString("28.75")))
}

func TestComputeTotals_OverDiscountFloorsAtZero(t *testing.T) {
	// Un descuento del 200% nunca produce un total negativo
	totals := ComputeTotals(buildCart(t),
		decimal.NewFromInt(200), decimal.Zero, decimal.NewFromFloat(0.15))

	assert.True(t, totals.GrandTotal.IsZero(), "grand_total: %s", totals.GrandTotal)
	// El descuento calculado se informa completo aunque el total se pise en 0
	assert.True(t, totals.Discount.Equal(decimal.RequireFromString("50.00")))
}

func TestComputeTotals_EmptyCart(t *testing.T) {
	totals := ComputeTotals(NewCart(), decimal.NewFromInt(10), decimal.NewFromInt(5), decimal.NewFromFloat(0.15))

	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.Tax.IsZero())
	// Total pisado en cero: el descuento fijo supera al subtotal
	assert.True(t, totals.GrandTotal.IsZero())
}

func TestComputeTotals_DoesNotMutateCart(t *testing.T) {
	cart := buildCart(t)
	before := cart.Subtotal()

	for i := 0; i < 3; i++ {
		ComputeTotals(cart, decimal.NewFromInt(50), decimal.NewFromInt(2), decimal.NewFromFloat(0.15))
	}

	require.Len(t, cart.Lines(), 2)
	assert.True(t, cart.Subtotal().Equal(before))
}

func TestTotals_Rounded(t *testing.T) {
	cart := NewCart()
	cart.AddLine(mustLine(t, "Widget", "3.33", 1))

	// tax = 3.33 * 0.15 = 0.4995 -> 0.50
	totals := ComputeTotals(cart, decimal.Zero, decimal.Zero, decimal.NewFromFloat(0.15)).Rounded()

	assert.True(t, totals.Tax.Equal(decimal.RequireFromString("0.50")), "tax: %s", totals.Tax)
	assert.True(t, totals.GrandTotal.Equal(decimal.RequireFromString("3.83")), "grand_total: %s", totals.GrandTotal)
}
