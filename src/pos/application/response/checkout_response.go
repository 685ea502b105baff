package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CheckoutItemResponse representa un item en la respuesta del checkout
type CheckoutItemResponse struct {
	ItemID      uuid.UUID       `json:"item_id"`
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// CheckoutResponse es el DTO de una venta completada, listo para imprimir
type CheckoutResponse struct {
	SaleID            uuid.UUID              `json:"sale_id"`
	InvoiceNo         string                 `json:"invoice_no"`
	Items             []CheckoutItemResponse `json:"items"`
	TotalItems        int                    `json:"total_items"`
	Subtotal          decimal.Decimal        `json:"subtotal"`
	Tax               decimal.Decimal        `json:"tax"`
	Discount          decimal.Decimal        `json:"discount"`
	GrandTotal        decimal.Decimal        `json:"grand_total"`
	PaymentMethod     string                 `json:"payment_method"`
	PaymentMethodName string                 `json:"payment_method_name"`
	PaymentDetails    string                 `json:"payment_details,omitempty"`
	AmountPaid        decimal.Decimal        `json:"amount_paid,omitempty"`
	Change            decimal.Decimal        `json:"change"`
	PointsEarned      int                    `json:"points_earned"`
	PointsUsed        int                    `json:"points_used"`
	CustomerID        *uuid.UUID             `json:"customer_id,omitempty"`
	Staff             string                 `json:"staff"`
	CreatedAt         time.Time              `json:"created_at"`
}

// TotalsResponse es el resultado del preview de totales
type TotalsResponse struct {
	Subtotal     decimal.Decimal `json:"subtotal"`
	Tax          decimal.Decimal `json:"tax"`
	Discount     decimal.Decimal `json:"discount"`
	GrandTotal   decimal.Decimal `json:"grand_total"`
	PointsToEarn int             `json:"points_to_earn"`
	PointsUsed   int             `json:"points_used"`
}
