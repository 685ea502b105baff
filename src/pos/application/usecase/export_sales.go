package usecase

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"pos/src/pos/domain/port"
)

// Encabezado del CSV de ventas
var exportHeader = []string{"Invoice", "Timestamp", "Grand Total", "Payment Method", "Payment Details", "Customer"}

// ExportSalesCSVUseCase escribe el histórico de ventas como CSV
// (sales JOIN customers, más reciente primero)
type ExportSalesCSVUseCase struct {
	saleRepo port.SaleRepository
}

// NewExportSalesCSVUseCase crea una nueva instancia del caso de uso
func NewExportSalesCSVUseCase(saleRepo port.SaleRepository) *ExportSalesCSVUseCase {
	return &ExportSalesCSVUseCase{saleRepo: saleRepo}
}

// Execute escribe el CSV sobre el writer recibido
func (uc *ExportSalesCSVUseCase) Execute(ctx context.Context, w io.Writer) error {
	rows, err := uc.saleRepo.ExportRows(ctx)
	if err != nil {
		return fmt.Errorf("error loading export rows: %w", err)
	}

	writer := csv.NewWriter(w)

	if err := writer.Write(exportHeader); err != nil {
		return fmt.Errorf("error writing csv header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			row.InvoiceNo,
			row.CreatedAt.Format("2006-01-02 15:04:05"),
			row.GrandTotal.StringFixed(2),
			row.PaymentMethod,
			row.PaymentDetails,
			row.CustomerName,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("error writing csv row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
