package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product es un producto del catálogo. El checkout lo consulta para
// snapshotear nombre y precio, y decrementa su stock al commitear.
// El stock nunca baja de cero: el decremento es condicional en la base.
type Product struct {
	ID        uuid.UUID
	Name      string
	Category  string
	Barcode   string
	Price     decimal.Decimal
	Stock     int
	CreatedAt time.Time
}
