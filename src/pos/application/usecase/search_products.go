package usecase

import (
	"context"
	"fmt"

	"pos/src/pos/application/response"
	"pos/src/pos/domain/port"
	"pos/src/shared/domain/criteria"
)

// SearchProductsUseCase busca productos del catálogo para la terminal
// (por nombre, categoría o código de barras). Solo lectura.
type SearchProductsUseCase struct {
	productRepo port.ProductRepository
}

// NewSearchProductsUseCase crea una nueva instancia del caso de uso
func NewSearchProductsUseCase(productRepo port.ProductRepository) *SearchProductsUseCase {
	return &SearchProductsUseCase{productRepo: productRepo}
}

// Execute busca por criteria
func (uc *SearchProductsUseCase) Execute(ctx context.Context, crit criteria.Criteria) ([]response.ProductResponse, error) {
	products, err := uc.productRepo.Search(ctx, crit)
	if err != nil {
		return nil, fmt.Errorf("error searching products: %w", err)
	}

	items := make([]response.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, response.ProductResponse{
			ID:       p.ID,
			Name:     p.Name,
			Category: p.Category,
			Barcode:  p.Barcode,
			Price:    p.Price,
			Stock:    p.Stock,
		})
	}

	return items, nil
}

// ByBarcode resuelve el producto de un escaneo de código de barras
func (uc *SearchProductsUseCase) ByBarcode(ctx context.Context, barcode string) (*response.ProductResponse, error) {
	p, err := uc.productRepo.GetByBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}

	return &response.ProductResponse{
		ID:       p.ID,
		Name:     p.Name,
		Category: p.Category,
		Barcode:  p.Barcode,
		Price:    p.Price,
		Stock:    p.Stock,
	}, nil
}
