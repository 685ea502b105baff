package usecase

import (
	"context"
	"testing"
	"time"

	"pos/src/pos/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyReport(t *testing.T) {
	first := time.Date(2026, 8, 30, 9, 12, 0, 0, time.UTC)
	last := time.Date(2026, 8, 30, 18, 40, 0, 0, time.UTC)
	saleRepo := &fakeSaleRepo{
		summary: &entity.DailySummary{
			SalesCount:    3,
			GrossTotal:    decimal.RequireFromString("120.00"),
			TaxTotal:      decimal.RequireFromString("18.00"),
			DiscountTotal: decimal.RequireFromString("5.00"),
			NetTotal:      decimal.RequireFromString("133.00"),
			FirstSaleAt:   &first,
			LastSaleAt:    &last,
			ByMethod: []entity.PaymentMethodSummary{
				{Method: "CASH", Count: 2, Total: decimal.RequireFromString("83.00")},
				{Method: "CARD", Count: 1, Total: decimal.RequireFromString("50.00")},
			},
		},
	}
	uc := NewDailyReportUseCase(saleRepo)

	resp, err := uc.Execute(context.Background(), "2026-08-30")
	require.NoError(t, err)

	assert.Equal(t, "2026-08-30", resp.Date)
	assert.Equal(t, 3, resp.SalesCount)
	assert.True(t, resp.NetTotal.Equal(decimal.RequireFromString("133.00")))
	require.Len(t, resp.ByMethod, 2)
	assert.Equal(t, "CASH", resp.ByMethod[0].Method)
	assert.Equal(t, 2, resp.ByMethod[0].Count)
	require.NotNil(t, resp.FirstSaleAt)
	assert.Equal(t, first, *resp.FirstSaleAt)
}

func TestDailyReport_InvalidDate(t *testing.T) {
	uc := NewDailyReportUseCase(&fakeSaleRepo{})

	_, err := uc.Execute(context.Background(), "30/08/2026")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid date format")
}

func TestDailyReport_EmptyDay(t *testing.T) {
	uc := NewDailyReportUseCase(&fakeSaleRepo{})

	resp, err := uc.Execute(context.Background(), "2026-01-01")
	require.NoError(t, err)

	assert.Zero(t, resp.SalesCount)
	assert.Nil(t, resp.FirstSaleAt)
	assert.Empty(t, resp.ByMethod)
}
