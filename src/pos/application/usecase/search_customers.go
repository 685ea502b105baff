package usecase

import (
	"context"
	"fmt"

	"pos/src/pos/application/response"
	"pos/src/pos/domain/port"
)

// Límite por defecto del lookup de clientes desde la terminal
const defaultCustomerSearchLimit = 20

// SearchCustomersUseCase busca clientes por nombre para asociarlos a una
// venta. Solo lectura; el ABM de clientes queda fuera de este servicio.
type SearchCustomersUseCase struct {
	customerRepo port.CustomerRepository
}

// NewSearchCustomersUseCase crea una nueva instancia del caso de uso
func NewSearchCustomersUseCase(customerRepo port.CustomerRepository) *SearchCustomersUseCase {
	return &SearchCustomersUseCase{customerRepo: customerRepo}
}

// Execute busca clientes cuyo nombre contenga el término
func (uc *SearchCustomersUseCase) Execute(ctx context.Context, query string, limit int) ([]response.CustomerResponse, error) {
	if limit <= 0 {
		limit = defaultCustomerSearchLimit
	}

	customers, err := uc.customerRepo.Search(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("error searching customers: %w", err)
	}

	items := make([]response.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		items = append(items, response.CustomerResponse{
			ID:            c.ID,
			Name:          c.Name,
			Type:          string(c.Type),
			LoyaltyPoints: c.LoyaltyPoints,
		})
	}

	return items, nil
}
