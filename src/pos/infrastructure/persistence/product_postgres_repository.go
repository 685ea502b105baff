package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pos/src/pos/domain/entity"
	"pos/src/pos/domain/port"
	domainCriteria "pos/src/shared/domain/criteria"
	sqlCriteria "pos/src/shared/infrastructure/criteria"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const baseProductQuery = `
	SELECT id, name, COALESCE(category, ''), COALESCE(barcode, ''), price, stock, created_at
	FROM products
`

// ProductPostgresRepository implementa ProductRepository usando PostgreSQL.
// Solo lecturas: el decremento de stock vive en la transacción de CreateSale.
type ProductPostgresRepository struct {
	db        *sql.DB
	converter *sqlCriteria.SQLCriteriaConverter
}

// NewProductPostgresRepository crea una nueva instancia del repositorio
func NewProductPostgresRepository(db *sql.DB) port.ProductRepository {
	return &ProductPostgresRepository{
		db:        db,
		converter: sqlCriteria.NewSQLCriteriaConverter(),
	}
}

// GetByIDs retorna los productos pedidos indexados por id
func (r *ProductPostgresRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Product, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]*entity.Product{}, nil
	}

	query := baseProductQuery + " WHERE id = ANY($1)"

	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("error querying products: %w", err)
	}
	defer rows.Close()

	result := make(map[uuid.UUID]*entity.Product, len(ids))
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning product: %w", err)
		}
		result[product.ID] = product
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return result, nil
}

// GetByBarcode resuelve un escaneo de código de barras
func (r *ProductPostgresRepository) GetByBarcode(ctx context.Context, barcode string) (*entity.Product, error) {
	row := r.db.QueryRowContext(ctx, baseProductQuery+" WHERE barcode = $1", barcode)

	product, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error querying product by barcode: %w", err)
	}

	return product, nil
}

// Search busca productos según criteria
func (r *ProductPostgresRepository) Search(ctx context.Context, crit domainCriteria.Criteria) ([]*entity.Product, error) {
	query, params := r.converter.ToSelectSQL(baseProductQuery, crit)

	rows, err := r.db.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("error searching products: %w", err)
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning product: %w", err)
		}
		products = append(products, product)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

func scanProduct(scanner interface{ Scan(...interface{}) error }) (*entity.Product, error) {
	product := &entity.Product{}
	err := scanner.Scan(
		&product.ID,
		&product.Name,
		&product.Category,
		&product.Barcode,
		&product.Price,
		&product.Stock,
		&product.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return product, nil
}
