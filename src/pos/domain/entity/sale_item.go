package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleItem es el snapshot persistido de una línea del carrito al momento de
// la venta. Nombre y precio se congelan acá para que las ediciones futuras
// del catálogo no alteren recibos históricos.
type SaleItem struct {
	ID          uuid.UUID
	SaleID      uuid.UUID
	ProductID   uuid.UUID
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

func newSaleItem(saleID uuid.UUID, line CartLine) SaleItem {
	return SaleItem{
		ID:          uuid.New(),
		SaleID:      saleID,
		ProductID:   line.ProductID,
		ProductName: line.Name,
		Quantity:    line.Quantity,
		UnitPrice:   line.UnitPrice,
		Subtotal:    line.Subtotal(),
	}
}
