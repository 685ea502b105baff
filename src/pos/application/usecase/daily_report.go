package usecase

import (
	"context"
	"fmt"
	"time"

	"pos/src/pos/application/response"
	"pos/src/pos/domain/port"
)

// DailyReportUseCase genera el reporte diario de ventas
type DailyReportUseCase struct {
	saleRepo port.SaleRepository
}

// NewDailyReportUseCase crea una nueva instancia del caso de uso
func NewDailyReportUseCase(saleRepo port.SaleRepository) *DailyReportUseCase {
	return &DailyReportUseCase{saleRepo: saleRepo}
}

// Execute agrega las ventas del día indicado. El rango se expresa como
// [from, to) sobre created_at para aprovechar el índice, en lugar de
// DATE(created_at).
func (uc *DailyReportUseCase) Execute(ctx context.Context, date string) (*response.DailyReportResponse, error) {
	parsedDate, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("invalid date format, expected YYYY-MM-DD: %w", err)
	}

	from := parsedDate
	to := parsedDate.AddDate(0, 0, 1)

	summary, err := uc.saleRepo.DailySummary(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("error building daily summary: %w", err)
	}

	byMethod := make([]response.PaymentMethodBreakdown, 0, len(summary.ByMethod))
	for _, m := range summary.ByMethod {
		byMethod = append(byMethod, response.PaymentMethodBreakdown{
			Method: m.Method,
			Count:  m.Count,
			Total:  m.Total,
		})
	}

	return &response.DailyReportResponse{
		Date:          date,
		SalesCount:    summary.SalesCount,
		GrossTotal:    summary.GrossTotal,
		TaxTotal:      summary.TaxTotal,
		DiscountTotal: summary.DiscountTotal,
		NetTotal:      summary.NetTotal,
		ByMethod:      byMethod,
		FirstSaleAt:   summary.FirstSaleAt,
		LastSaleAt:    summary.LastSaleAt,
	}, nil
}
