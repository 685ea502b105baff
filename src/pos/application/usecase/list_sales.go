package usecase

import (
	"context"
	"fmt"

	"pos/src/pos/application/response"
	"pos/src/pos/domain/port"
	"pos/src/shared/domain/criteria"
)

// ListSalesUseCase lista ventas según filtros (método de pago, rango de
// fechas) con paginación
type ListSalesUseCase struct {
	saleRepo port.SaleRepository
}

// NewListSalesUseCase crea una nueva instancia del caso de uso
func NewListSalesUseCase(saleRepo port.SaleRepository) *ListSalesUseCase {
	return &ListSalesUseCase{saleRepo: saleRepo}
}

// Execute busca ventas y arma el listado
func (uc *ListSalesUseCase) Execute(ctx context.Context, crit criteria.Criteria) ([]response.SaleSummaryResponse, error) {
	sales, err := uc.saleRepo.Search(ctx, crit)
	if err != nil {
		return nil, fmt.Errorf("error searching sales: %w", err)
	}

	items := make([]response.SaleSummaryResponse, 0, len(sales))
	for _, sale := range sales {
		items = append(items, response.SaleSummaryResponse{
			SaleID:        sale.ID,
			InvoiceNo:     sale.InvoiceNo,
			CustomerID:    sale.CustomerID,
			GrandTotal:    sale.GrandTotal,
			PaymentMethod: sale.PaymentMethod,
			Staff:         sale.Staff,
			TotalItems:    sale.TotalItems(),
			CreatedAt:     sale.CreatedAt,
		})
	}

	return items, nil
}
