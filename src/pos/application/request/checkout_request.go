package request

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CheckoutItemRequest representa una línea del carrito en el request.
// El precio no viaja desde el cliente: se toma del catálogo al momento
// del checkout para snapshotearlo en la venta.
type CheckoutItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,gt=0"`
}

// CheckoutRequest es el request de una venta POS
type CheckoutRequest struct {
	Items           []CheckoutItemRequest `json:"items" binding:"required,min=1,dive"` // Mínimo 1 item
	CustomerID      *uuid.UUID            `json:"customer_id"`                         // Opcional (NULL = consumidor final)
	PaymentMethod   string                `json:"payment_method" binding:"required"`   // Código: CASH, CARD, ...
	PaymentDetails  string                `json:"payment_details,omitempty"`           // Extra (tipo de tarjeta, etc.)
	DiscountPercent decimal.Decimal       `json:"discount_percent,omitempty"`          // [0,100]
	DiscountAmount  decimal.Decimal       `json:"discount_amount,omitempty"`           // Descuento fijo (default: 0)
	RedeemPoints    int                   `json:"redeem_points,omitempty"`             // Puntos a canjear (bloques de 100)
	AmountPaid      decimal.Decimal       `json:"amount_paid,omitempty"`               // Opcional; si viene, debe cubrir el total
}

// TotalsRequest es el request del preview de totales: misma forma que el
// checkout pero sin pago, para recalcular en vivo mientras se edita el carrito
type TotalsRequest struct {
	Items           []CheckoutItemRequest `json:"items" binding:"required,min=1,dive"`
	CustomerID      *uuid.UUID            `json:"customer_id"`
	DiscountPercent decimal.Decimal       `json:"discount_percent,omitempty"`
	DiscountAmount  decimal.Decimal       `json:"discount_amount,omitempty"`
	RedeemPoints    int                   `json:"redeem_points,omitempty"`
}
