package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleSummaryResponse es una fila del listado de ventas
type SaleSummaryResponse struct {
	SaleID        uuid.UUID       `json:"sale_id"`
	InvoiceNo     string          `json:"invoice_no"`
	CustomerID    *uuid.UUID      `json:"customer_id,omitempty"`
	GrandTotal    decimal.Decimal `json:"grand_total"`
	PaymentMethod string          `json:"payment_method"`
	Staff         string          `json:"staff"`
	TotalItems    int             `json:"total_items"`
	CreatedAt     time.Time       `json:"created_at"`
}

// SaleDetailResponse es una venta completa con sus items
type SaleDetailResponse struct {
	SaleID         uuid.UUID              `json:"sale_id"`
	InvoiceNo      string                 `json:"invoice_no"`
	CustomerID     *uuid.UUID             `json:"customer_id,omitempty"`
	Items          []CheckoutItemResponse `json:"items"`
	Subtotal       decimal.Decimal        `json:"subtotal"`
	Tax            decimal.Decimal        `json:"tax"`
	Discount       decimal.Decimal        `json:"discount"`
	GrandTotal     decimal.Decimal        `json:"grand_total"`
	PaymentMethod  string                 `json:"payment_method"`
	PaymentDetails string                 `json:"payment_details,omitempty"`
	PointsEarned   int                    `json:"points_earned"`
	PointsUsed     int                    `json:"points_used"`
	Staff          string                 `json:"staff"`
	CreatedAt      time.Time              `json:"created_at"`
}
