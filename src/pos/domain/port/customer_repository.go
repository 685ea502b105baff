package port

import (
	"context"

	"pos/src/pos/domain/entity"

	"github.com/google/uuid"
)

// CustomerRepository define el acceso de solo lectura a clientes.
// El crédito/débito de puntos ocurre dentro de la transacción de CreateSale.
type CustomerRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	Search(ctx context.Context, query string, limit int) ([]*entity.Customer, error)
}
