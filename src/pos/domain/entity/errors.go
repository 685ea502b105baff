package entity

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrEmptyCart           = errors.New("cart must have at least one line")
	ErrInvalidQuantity     = errors.New("quantity must be greater than 0")
	ErrInvalidPrice        = errors.New("unit_price must be greater than or equal to 0")
	ErrProductNameRequired = errors.New("product_name is required")
	ErrStaffRequired       = errors.New("staff is required")

	// Validación de descuentos en el boundary del checkout
	ErrInvalidDiscountPercent = errors.New("discount_percent must be between 0 and 100")
	ErrInvalidDiscountAmount  = errors.New("discount_amount must be greater than or equal to 0")

	ErrUnknownPaymentMethod = errors.New("unknown payment method")
	ErrInsufficientPayment  = errors.New("amount_paid must be greater than or equal to grand_total")

	// Canje de puntos requiere un cliente asociado a la venta
	ErrCustomerRequired = errors.New("redeeming points requires a customer")

	ErrProductNotFound  = errors.New("product not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrSaleNotFound     = errors.New("sale not found")

	// El repositorio traduce unique_violation sobre invoice_no a este error;
	// el caso de uso regenera el número y reintenta
	ErrDuplicateInvoice = errors.New("invoice number already exists")
)

// InsufficientStockError indica que una línea del carrito pide más unidades
// de las disponibles al momento del commit. Lleva el stock vigente para que
// el cajero pueda ajustar la cantidad.
type InsufficientStockError struct {
	ProductID uuid.UUID
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s: %d available", e.ProductID, e.Available)
}
