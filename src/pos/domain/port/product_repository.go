package port

import (
	"context"

	"pos/src/pos/domain/entity"
	"pos/src/shared/domain/criteria"

	"github.com/google/uuid"
)

// ProductRepository define el acceso de solo lectura al catálogo.
// El checkout consulta acá nombre y precio autoritativos; el decremento de
// stock no pasa por esta interfaz sino por la transacción de CreateSale.
type ProductRepository interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Product, error)
	GetByBarcode(ctx context.Context, barcode string) (*entity.Product, error)
	Search(ctx context.Context, crit criteria.Criteria) ([]*entity.Product, error)
}
