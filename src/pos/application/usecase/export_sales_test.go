package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"pos/src/pos/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportSalesCSV(t *testing.T) {
	createdAt := time.Date(2026, 8, 30, 14, 5, 0, 0, time.UTC)
	saleRepo := &fakeSaleRepo{
		exportRows: []entity.SalesExportRow{
			{
				InvoiceNo:     "INV20260830140500-A1B2C3",
				CreatedAt:     createdAt,
				GrandTotal:    decimal.RequireFromString("25.25"),
				PaymentMethod: "CASH",
				CustomerName:  "Ana",
			},
			{
				InvoiceNo:      "INV20260830140700-D4E5F6",
				CreatedAt:      createdAt.Add(2 * time.Minute),
				GrandTotal:     decimal.RequireFromString("9.90"),
				PaymentMethod:  "CARD",
				PaymentDetails: "Visa",
			},
		},
	}
	uc := NewExportSalesCSVUseCase(saleRepo)

	var buf bytes.Buffer
	require.NoError(t, uc.Execute(context.Background(), &buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, exportHeader, records[0])
	assert.Equal(t, []string{"INV20260830140500-A1B2C3", "2026-08-30 14:05:00", "25.25", "CASH", "", "Ana"}, records[1])
	assert.Equal(t, []string{"INV20260830140700-D4E5F6", "2026-08-30 14:07:00", "9.90", "CARD", "Visa", ""}, records[2])
}

func TestExportSalesCSV_Empty(t *testing.T) {
	uc := NewExportSalesCSVUseCase(&fakeSaleRepo{})

	var buf bytes.Buffer
	require.NoError(t, uc.Execute(context.Background(), &buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	// Solo el encabezado
	require.Len(t, records, 1)
}
