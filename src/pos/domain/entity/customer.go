package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomerType es el tipo de cliente; define el porcentaje de descuento
// que se suma automáticamente en el checkout.
type CustomerType string

const (
	CustomerBasic   CustomerType = "Basic"
	CustomerPremium CustomerType = "Premium"
	CustomerStudent CustomerType = "Student"
)

// DiscountPercent retorna el descuento por tipo de cliente:
// Premium 15%, Student 10%, Basic 0%
func (t CustomerType) DiscountPercent() decimal.Decimal {
	switch t {
	case CustomerPremium:
		return decimal.NewFromInt(15)
	case CustomerStudent:
		return decimal.NewFromInt(10)
	default:
		return decimal.Zero
	}
}

// Customer es un cliente registrado. Opcional en el checkout:
// una venta sin cliente es una venta a consumidor final.
type Customer struct {
	ID            uuid.UUID
	Name          string
	Type          CustomerType
	LoyaltyPoints int
}

// RedeemablePoints calcula cuántos puntos se canjean efectivamente: el pedido
// se recorta al saldo del cliente y se baja al múltiplo de bloque más cercano
// (el canje opera en bloques completos, p.ej. de a 100 puntos).
func (c *Customer) RedeemablePoints(requested, blockPoints int) int {
	if requested <= 0 || blockPoints <= 0 {
		return 0
	}
	if requested > c.LoyaltyPoints {
		requested = c.LoyaltyPoints
	}
	return (requested / blockPoints) * blockPoints
}
