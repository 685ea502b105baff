package port

import (
	"context"
	"time"

	"pos/src/pos/domain/entity"
	"pos/src/shared/domain/criteria"
)

// SaleRepository define la persistencia de ventas.
//
// CreateSale persiste la venta como una unidad atómica: inserta el header y
// los items, decrementa el stock de cada producto con un update condicional
// (stock = stock - qty WHERE stock >= qty) y acredita/debita los puntos del
// cliente, todo dentro de la misma transacción. Cualquier falla revierte
// todo: nunca queda una venta parcial ni un ajuste parcial de stock.
//
// Errores esperados:
//   - *entity.InsufficientStockError si alguna línea excede el stock vigente
//   - entity.ErrDuplicateInvoice si invoice_no choca con la restricción UNIQUE
//   - entity.ErrCustomerNotFound si el cliente referenciado no existe
type SaleRepository interface {
	CreateSale(ctx context.Context, sale *entity.Sale) error
	GetByInvoice(ctx context.Context, invoiceNo string) (*entity.Sale, error)
	Search(ctx context.Context, crit criteria.Criteria) ([]*entity.Sale, error)
	ExportRows(ctx context.Context) ([]entity.SalesExportRow, error)
	DailySummary(ctx context.Context, from, to time.Time) (*entity.DailySummary, error)
}
