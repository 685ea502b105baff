package usecase

import (
	"context"

	"pos/src/pos/application/response"
	"pos/src/pos/domain/entity"
	"pos/src/pos/domain/port"
)

// GetSaleUseCase recupera una venta completa por número de factura
type GetSaleUseCase struct {
	saleRepo port.SaleRepository
}

// NewGetSaleUseCase crea una nueva instancia del caso de uso
func NewGetSaleUseCase(saleRepo port.SaleRepository) *GetSaleUseCase {
	return &GetSaleUseCase{saleRepo: saleRepo}
}

// Execute busca la venta con sus items
func (uc *GetSaleUseCase) Execute(ctx context.Context, invoiceNo string) (*response.SaleDetailResponse, error) {
	sale, err := uc.saleRepo.GetByInvoice(ctx, invoiceNo)
	if err != nil {
		return nil, err
	}

	items := make([]response.CheckoutItemResponse, 0, len(sale.Items))
	for _, item := range sale.Items {
		items = append(items, response.CheckoutItemResponse{
			ItemID:      item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Subtotal:    item.Subtotal,
		})
	}

	return &response.SaleDetailResponse{
		SaleID:         sale.ID,
		InvoiceNo:      sale.InvoiceNo,
		CustomerID:     sale.CustomerID,
		Items:          items,
		Subtotal:       sale.Subtotal,
		Tax:            sale.Tax,
		Discount:       sale.Discount,
		GrandTotal:     sale.GrandTotal,
		PaymentMethod:  sale.PaymentMethod,
		PaymentDetails: sale.PaymentDetails,
		PointsEarned:   sale.PointsEarned,
		PointsUsed:     sale.PointsUsed,
		Staff:          sale.Staff,
		CreatedAt:      sale.CreatedAt,
	}, nil
}

// Entity retorna la venta cruda; los renderers de recibo la necesitan completa
func (uc *GetSaleUseCase) Entity(ctx context.Context, invoiceNo string) (*entity.Sale, error) {
	return uc.saleRepo.GetByInvoice(ctx, invoiceNo)
}
