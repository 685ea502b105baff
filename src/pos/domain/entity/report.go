package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailySummary agrega las ventas de un día calendario
type DailySummary struct {
	SalesCount    int
	GrossTotal    decimal.Decimal
	TaxTotal      decimal.Decimal
	DiscountTotal decimal.Decimal
	NetTotal      decimal.Decimal
	FirstSaleAt   *time.Time
	LastSaleAt    *time.Time
	ByMethod      []PaymentMethodSummary
}

// PaymentMethodSummary es el desglose por método de pago dentro del resumen diario
type PaymentMethodSummary struct {
	Method string
	Count  int
	Total  decimal.Decimal
}

// SalesExportRow es una fila del export CSV de ventas (sales JOIN customers)
type SalesExportRow struct {
	InvoiceNo      string
	CreatedAt      time.Time
	GrandTotal     decimal.Decimal
	PaymentMethod  string
	PaymentDetails string
	CustomerName   string
}
