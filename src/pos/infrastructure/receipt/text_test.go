package receipt

import (
	"strings"
	"testing"
	"time"

	"pos/src/pos/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSale() *entity.Sale {
	saleID := uuid.New()
	return &entity.Sale{
		ID:            saleID,
		InvoiceNo:     "INV20260830140500-A1B2C3",
		Subtotal:      decimal.RequireFromString("25.00"),
		Tax:           decimal.RequireFromString("3.75"),
		Discount:      decimal.RequireFromString("3.50"),
		GrandTotal:    decimal.RequireFromString("25.25"),
		PaymentMethod: "CASH",
		Staff:         "maria",
		CreatedAt:     time.Date(2026, 8, 30, 14, 5, 0, 0, time.UTC),
		Items: []entity.SaleItem{
			{
				SaleID:      saleID,
				ProductID:   uuid.New(),
				ProductName: "Coffee",
				UnitPrice:   decimal.RequireFromString("10.00"),
				Quantity:    2,
				Subtotal:    decimal.RequireFromString("20.00"),
			},
			{
				SaleID:      saleID,
				ProductID:   uuid.New(),
				ProductName: "Tea",
				UnitPrice:   decimal.RequireFromString("5.00"),
				Quantity:    1,
				Subtotal:    decimal.RequireFromString("5.00"),
			},
		},
	}
}

func TestTextRenderer(t *testing.T) {
	renderer := NewTextRenderer("NEXUS TECH POS")
	out := renderer.Render(testSale(), "Cash")

	assert.Contains(t, out, "NEXUS TECH POS")
	assert.Contains(t, out, "Invoice: INV20260830140500-A1B2C3")
	assert.Contains(t, out, "Date:    2026-08-30 14:05:00")
	assert.Contains(t, out, "Staff:   maria")
	assert.Contains(t, out, "Payment: Cash")
	assert.Contains(t, out, "GRAND TOTAL:")
	assert.Contains(t, out, "$25.25")
	assert.Contains(t, out, "Thank you for your purchase!")

	// Sin puntos en juego no aparecen las líneas de loyalty
	assert.NotContains(t, out, "Loyalty points")

	// Las filas de items respetan las columnas fijas
	assert.Contains(t, out, "Coffee                      2    10.00     20.00")
}

func TestTextRenderer_LoyaltyAndPaymentDetails(t *testing.T) {
	sale := testSale()
	sale.PaymentDetails = "Visa"
	sale.PointsEarned = 2
	sale.PointsUsed = 100

	out := NewTextRenderer("NEXUS TECH POS").Render(sale, "Credit/Debit Card")

	assert.Contains(t, out, "Payment: Credit/Debit Card (Visa)")
	assert.Contains(t, out, "Loyalty points redeemed: 100")
	assert.Contains(t, out, "Loyalty points earned: 2")
}

func TestTextRenderer_TruncatesLongNames(t *testing.T) {
	sale := testSale()
	sale.Items[0].ProductName = strings.Repeat("X", 40)

	lines := NewTextRenderer("NEXUS TECH POS").Lines(sale, "Cash")

	for _, line := range lines {
		if strings.HasPrefix(line, "X") {
			// 24 de nombre + espacios + columnas numéricas
			assert.LessOrEqual(t, len(line), lineWidth)
			return
		}
	}
	require.Fail(t, "item row not found")
}
