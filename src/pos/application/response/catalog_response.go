package response

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductResponse es un producto del catálogo visto desde la terminal
type ProductResponse struct {
	ID       uuid.UUID       `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category,omitempty"`
	Barcode  string          `json:"barcode,omitempty"`
	Price    decimal.Decimal `json:"price"`
	Stock    int             `json:"stock"`
}

// CustomerResponse es un cliente visto desde la terminal
type CustomerResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Type          string    `json:"customer_type"`
	LoyaltyPoints int       `json:"loyalty_points"`
}
