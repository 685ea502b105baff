package entity

import "github.com/shopspring/decimal"

var percentBase = decimal.NewFromInt(100)

// Totals es el resultado del cálculo de totales de una venta.
// Los montos se mantienen con precisión completa; el redondeo a 2 decimales
// ocurre recién en la capa de presentación.
type Totals struct {
	Subtotal   decimal.Decimal
	Tax        decimal.Decimal
	Discount   decimal.Decimal
	GrandTotal decimal.Decimal
}

// ComputeTotals calcula los totales de un carrito. Es una función pura:
// no muta el carrito ni toca storage, y puede invocarse repetidamente para
// recalcular en vivo mientras el cajero edita los campos de descuento.
//
//	subtotal    = Σ unit_price * quantity
//	tax         = subtotal * taxRate
//	discount    = subtotal * (discountPercent / 100) + discountAmount
//	grand_total = max(0, subtotal + tax - discount)
//
// El piso en cero es deliberado: un sobre-descuento nunca produce un cobro
// negativo. Los rangos de los descuentos se validan en el boundary del
// checkout, no acá.
func ComputeTotals(cart *Cart, discountPercent, discountAmount, taxRate decimal.Decimal) Totals {
	subtotal := cart.Subtotal()
	tax := subtotal.Mul(taxRate)
	discount := subtotal.Mul(discountPercent.Div(percentBase)).Add(discountAmount)

	grandTotal := subtotal.Add(tax).Sub(discount)
	if grandTotal.LessThan(decimal.Zero) {
		grandTotal = decimal.Zero
	}

	return Totals{
		Subtotal:   subtotal,
		Tax:        tax,
		Discount:   discount,
		GrandTotal: grandTotal,
	}
}

// Rounded retorna una copia con todos los montos redondeados a 2 decimales,
// lista para mostrar o persistir
func (t Totals) Rounded() Totals {
	return Totals{
		Subtotal:   t.Subtotal.Round(2),
		Tax:        t.Tax.Round(2),
		Discount:   t.Discount.Round(2),
		GrandTotal: t.GrandTotal.Round(2),
	}
}
