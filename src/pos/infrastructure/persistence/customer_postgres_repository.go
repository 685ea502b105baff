package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pos/src/pos/domain/entity"
	"pos/src/pos/domain/port"

	"github.com/google/uuid"
)

// CustomerPostgresRepository implementa CustomerRepository usando PostgreSQL
type CustomerPostgresRepository struct {
	db *sql.DB
}

// NewCustomerPostgresRepository crea una nueva instancia del repositorio
func NewCustomerPostgresRepository(db *sql.DB) port.CustomerRepository {
	return &CustomerPostgresRepository{db: db}
}

// GetByID retorna un cliente por id
func (r *CustomerPostgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	query := `
		SELECT id, name, customer_type, loyalty_points
		FROM customers
		WHERE id = $1
	`

	customer := &entity.Customer{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&customer.ID,
		&customer.Name,
		&customer.Type,
		&customer.LoyaltyPoints,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error querying customer: %w", err)
	}

	return customer, nil
}

// Search busca clientes por nombre (match parcial, case-insensitive)
func (r *CustomerPostgresRepository) Search(ctx context.Context, query string, limit int) ([]*entity.Customer, error) {
	sqlQuery := `
		SELECT id, name, customer_type, loyalty_points
		FROM customers
		WHERE name ILIKE $1
		ORDER BY name
		LIMIT $2
	`

	rows, err := r.db.QueryContext(ctx, sqlQuery, "%"+query+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("error searching customers: %w", err)
	}
	defer rows.Close()

	var customers []*entity.Customer
	for rows.Next() {
		customer := &entity.Customer{}
		err := rows.Scan(
			&customer.ID,
			&customer.Name,
			&customer.Type,
			&customer.LoyaltyPoints,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning customer: %w", err)
		}
		customers = append(customers, customer)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating customers: %w", err)
	}

	return customers, nil
}
