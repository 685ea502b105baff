package response

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethodBreakdown es el desglose por método de pago del reporte diario
type PaymentMethodBreakdown struct {
	Method string          `json:"method"`
	Count  int             `json:"count"`
	Total  decimal.Decimal `json:"total"`
}

// DailyReportResponse representa el reporte diario de ventas
type DailyReportResponse struct {
	Date          string                   `json:"date"` // YYYY-MM-DD
	SalesCount    int                      `json:"sales_count"`
	GrossTotal    decimal.Decimal          `json:"gross_total"`     // Suma subtotal
	TaxTotal      decimal.Decimal          `json:"tax_total"`       // Suma tax
	DiscountTotal decimal.Decimal          `json:"discount_total"`  // Suma discount
	NetTotal      decimal.Decimal          `json:"net_total"`       // Suma grand_total
	ByMethod      []PaymentMethodBreakdown `json:"by_payment_method"`
	FirstSaleAt   *time.Time               `json:"first_sale_at,omitempty"`
	LastSaleAt    *time.Time               `json:"last_sale_at,omitempty"`
}
