package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale representa una venta completada (Aggregate Root). Se crea exactamente
// una vez por checkout exitoso y es inmutable después del commit.
type Sale struct {
	ID             uuid.UUID
	InvoiceNo      string
	CustomerID     *uuid.UUID // NULL = consumidor final
	Subtotal       decimal.Decimal
	Tax            decimal.Decimal
	Discount       decimal.Decimal
	GrandTotal     decimal.Decimal
	PaymentMethod  string
	PaymentDetails string // extra (tipo de tarjeta, etc.)
	PointsEarned   int
	PointsUsed     int
	Staff          string
	CreatedAt      time.Time
	Items          []SaleItem
}

// NewSale arma el aggregate de venta a partir de un carrito validado y sus
// totales ya calculados. Snapshotea nombre y precio de cada línea.
func NewSale(
	cart *Cart,
	customerID *uuid.UUID,
	paymentMethod string,
	paymentDetails string,
	staff string,
	totals Totals,
	pointsEarned int,
	pointsUsed int,
) (*Sale, error) {
	if cart.IsEmpty() {
		return nil, ErrEmptyCart
	}
	if paymentMethod == "" {
		return nil, ErrUnknownPaymentMethod
	}
	if staff == "" {
		return nil, ErrStaffRequired
	}

	saleID := uuid.New()

	items := make([]SaleItem, 0, len(cart.Lines()))
	for _, line := range cart.Lines() {
		items = append(items, newSaleItem(saleID, line))
	}

	rounded := totals.Rounded()

	return &Sale{
		ID:             saleID,
		InvoiceNo:      GenerateInvoiceNo(),
		CustomerID:     customerID,
		Subtotal:       rounded.Subtotal,
		Tax:            rounded.Tax,
		Discount:       rounded.Discount,
		GrandTotal:     rounded.GrandTotal,
		PaymentMethod:  paymentMethod,
		PaymentDetails: paymentDetails,
		PointsEarned:   pointsEarned,
		PointsUsed:     pointsUsed,
		Staff:          staff,
		CreatedAt:      time.Now(),
		Items:          items,
	}, nil
}

// TotalItems retorna la cantidad de líneas de la venta
func (s *Sale) TotalItems() int {
	return len(s.Items)
}

// RegenerateInvoiceNo asigna un número de factura nuevo. Se usa cuando el
// insert choca contra la restricción UNIQUE por una colisión entre cajas.
func (s *Sale) RegenerateInvoiceNo() {
	s.InvoiceNo = GenerateInvoiceNo()
}

// GenerateInvoiceNo genera un número de factura legible: INV + timestamp +
// sufijo aleatorio. El timestamp solo no alcanza con varias cajas escribiendo
// a la vez; la unicidad real la garantiza la restricción UNIQUE en la tabla
// sales más el reintento del caso de uso.
func GenerateInvoiceNo() string {
	suffix := strings.ToUpper(uuid.NewString()[:6])
	return fmt.Sprintf("INV%s-%s", time.Now().Format("20060102150405"), suffix)
}
