package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"pos/src/pos/domain/entity"
	"pos/src/pos/domain/port"
	domainCriteria "pos/src/shared/domain/criteria"
	sqlCriteria "pos/src/shared/infrastructure/criteria"

	"github.com/lib/pq"
)

// Código de unique_violation en PostgreSQL
const pqUniqueViolation = "23505"

// SalePostgresRepository implementa SaleRepository usando PostgreSQL
type SalePostgresRepository struct {
	db        *sql.DB
	converter *sqlCriteria.SQLCriteriaConverter
}

// NewSalePostgresRepository crea una nueva instancia del repositorio
func NewSalePostgresRepository(db *sql.DB) port.SaleRepository {
	return &SalePostgresRepository{
		db:        db,
		converter: sqlCriteria.NewSQLCriteriaConverter(),
	}
}

// CreateSale persiste una venta completa en una sola transacción:
// header, items, decremento de stock y movimiento de puntos. El chequeo de
// stock es el update condicional mismo (stock >= qty en el WHERE), de modo
// que dos cajas concurrentes nunca pueden sobrevender: una de las dos verá
// RowsAffected == 0 y toda su transacción se revierte.
func (r *SalePostgresRepository) CreateSale(ctx context.Context, sale *entity.Sale) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	// 1. Insertar el header de la venta
	querySale := `
		INSERT INTO sales (
			id, invoice_no, customer_id, subtotal, tax, discount, grand_total,
			payment_method, payment_details, points_earned, points_used,
			staff, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
		)
	`

	_, err = tx.ExecContext(ctx, querySale,
		sale.ID,
		sale.InvoiceNo,
		sale.CustomerID, // NULL permitido
		sale.Subtotal,
		sale.Tax,
		sale.Discount,
		sale.GrandTotal,
		sale.PaymentMethod,
		sale.PaymentDetails,
		sale.PointsEarned,
		sale.PointsUsed,
		sale.Staff,
		sale.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return entity.ErrDuplicateInvoice
		}
		return fmt.Errorf("error creating sale: %w", err)
	}

	// 2. Insertar los items (snapshots)
	queryItem := `
		INSERT INTO sale_items (
			id, sale_id, product_id, product_name, quantity, unit_price, subtotal
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)
	`

	for _, item := range sale.Items {
		_, err = tx.ExecContext(ctx, queryItem,
			item.ID,
			item.SaleID,
			item.ProductID,
			item.ProductName,
			item.Quantity,
			item.UnitPrice,
			item.Subtotal,
		)
		if err != nil {
			return fmt.Errorf("error creating sale_item for product %s: %w", item.ProductID, err)
		}
	}

	// 3. Decrementar stock con update condicional (check-then-act atómico)
	queryStock := `
		UPDATE products
		SET stock = stock - $2
		WHERE id = $1 AND stock >= $2
	`

	for _, item := range sale.Items {
		res, err := tx.ExecContext(ctx, queryStock, item.ProductID, item.Quantity)
		if err != nil {
			return fmt.Errorf("error updating stock for product %s: %w", item.ProductID, err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("error reading rows affected: %w", err)
		}
		if affected == 0 {
			// Stock insuficiente o producto inexistente: leer el stock
			// vigente para informarlo. El rollback del defer revierte todo.
			var available int
			err := tx.QueryRowContext(ctx, "SELECT stock FROM products WHERE id = $1", item.ProductID).Scan(&available)
			if errors.Is(err, sql.ErrNoRows) {
				return entity.ErrProductNotFound
			}
			if err != nil {
				return fmt.Errorf("error reading stock for product %s: %w", item.ProductID, err)
			}
			return &entity.InsufficientStockError{ProductID: item.ProductID, Available: available}
		}
	}

	// 4. Movimiento de puntos del cliente (crédito por la venta, débito por canje)
	if sale.CustomerID != nil && (sale.PointsEarned > 0 || sale.PointsUsed > 0) {
		queryPoints := `
			UPDATE customers
			SET loyalty_points = loyalty_points + $2 - $3
			WHERE id = $1
		`

		res, err := tx.ExecContext(ctx, queryPoints, sale.CustomerID, sale.PointsEarned, sale.PointsUsed)
		if err != nil {
			return fmt.Errorf("error updating loyalty points: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("error reading rows affected: %w", err)
		}
		if affected == 0 {
			return entity.ErrCustomerNotFound
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

// baseSaleQuery son las columnas del header en el orden que espera scanSale
const baseSaleQuery = `
	SELECT
		id, invoice_no, customer_id, subtotal, tax, discount, grand_total,
		payment_method, payment_details, points_earned, points_used,
		staff, created_at
	FROM sales
`

func scanSale(scanner interface{ Scan(...interface{}) error }) (*entity.Sale, error) {
	sale := &entity.Sale{}
	var paymentDetails sql.NullString

	err := scanner.Scan(
		&sale.ID,
		&sale.InvoiceNo,
		&sale.CustomerID,
		&sale.Subtotal,
		&sale.Tax,
		&sale.Discount,
		&sale.GrandTotal,
		&sale.PaymentMethod,
		&paymentDetails,
		&sale.PointsEarned,
		&sale.PointsUsed,
		&sale.Staff,
		&sale.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	sale.PaymentDetails = paymentDetails.String
	return sale, nil
}

// GetByInvoice retorna una venta con sus items
func (r *SalePostgresRepository) GetByInvoice(ctx context.Context, invoiceNo string) (*entity.Sale, error) {
	row := r.db.QueryRowContext(ctx, baseSaleQuery+" WHERE invoice_no = $1", invoiceNo)

	sale, err := scanSale(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrSaleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error querying sale: %w", err)
	}

	items, err := r.loadItems(ctx, sale)
	if err != nil {
		return nil, err
	}
	sale.Items = items

	return sale, nil
}

// Search busca ventas según criteria (sin items: es para listados)
func (r *SalePostgresRepository) Search(ctx context.Context, crit domainCriteria.Criteria) ([]*entity.Sale, error) {
	query, params := r.converter.ToSelectSQL(baseSaleQuery, crit)

	rows, err := r.db.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("error querying sales: %w", err)
	}
	defer rows.Close()

	var sales []*entity.Sale
	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning sale: %w", err)
		}
		sales = append(sales, sale)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sales: %w", err)
	}

	// Cargar items por venta (N+1, suficiente para listados paginados)
	for _, sale := range sales {
		items, err := r.loadItems(ctx, sale)
		if err != nil {
			return nil, err
		}
		sale.Items = items
	}

	return sales, nil
}

func (r *SalePostgresRepository) loadItems(ctx context.Context, sale *entity.Sale) ([]entity.SaleItem, error) {
	queryItems := `
		SELECT id, sale_id, product_id, product_name, quantity, unit_price, subtotal
		FROM sale_items
		WHERE sale_id = $1
		ORDER BY product_name
	`

	rows, err := r.db.QueryContext(ctx, queryItems, sale.ID)
	if err != nil {
		return nil, fmt.Errorf("error querying sale_items: %w", err)
	}
	defer rows.Close()

	var items []entity.SaleItem
	for rows.Next() {
		item := entity.SaleItem{}
		err := rows.Scan(
			&item.ID,
			&item.SaleID,
			&item.ProductID,
			&item.ProductName,
			&item.Quantity,
			&item.UnitPrice,
			&item.Subtotal,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning sale_item: %w", err)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sale_items: %w", err)
	}

	return items, nil
}

// ExportRows retorna las filas del export CSV (sales JOIN customers)
func (r *SalePostgresRepository) ExportRows(ctx context.Context) ([]entity.SalesExportRow, error) {
	query := `
		SELECT
			s.invoice_no, s.created_at, s.grand_total, s.payment_method,
			COALESCE(s.payment_details, ''), COALESCE(c.name, '')
		FROM sales s
		LEFT JOIN customers c ON c.id = s.customer_id
		ORDER BY s.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying export rows: %w", err)
	}
	defer rows.Close()

	var result []entity.SalesExportRow
	for rows.Next() {
		var row entity.SalesExportRow
		err := rows.Scan(
			&row.InvoiceNo,
			&row.CreatedAt,
			&row.GrandTotal,
			&row.PaymentMethod,
			&row.PaymentDetails,
			&row.CustomerName,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning export row: %w", err)
		}
		result = append(result, row)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating export rows: %w", err)
	}

	return result, nil
}

// DailySummary agrega las ventas del rango [from, to)
func (r *SalePostgresRepository) DailySummary(ctx context.Context, from, to time.Time) (*entity.DailySummary, error) {
	queryTotals := `
		SELECT
			COUNT(*) AS sales_count,
			COALESCE(SUM(subtotal), 0) AS gross_total,
			COALESCE(SUM(tax), 0) AS tax_total,
			COALESCE(SUM(discount), 0) AS discount_total,
			COALESCE(SUM(grand_total), 0) AS net_total,
			MIN(created_at) AS first_sale,
			MAX(created_at) AS last_sale
		FROM sales
		WHERE created_at >= $1 AND created_at < $2
	`

	summary := &entity.DailySummary{}
	var firstSale, lastSale sql.NullTime

	err := r.db.QueryRowContext(ctx, queryTotals, from, to).Scan(
		&summary.SalesCount,
		&summary.GrossTotal,
		&summary.TaxTotal,
		&summary.DiscountTotal,
		&summary.NetTotal,
		&firstSale,
		&lastSale,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying daily totals: %w", err)
	}

	if firstSale.Valid {
		summary.FirstSaleAt = &firstSale.Time
	}
	if lastSale.Valid {
		summary.LastSaleAt = &lastSale.Time
	}

	queryByMethod := `
		SELECT payment_method, COUNT(*), COALESCE(SUM(grand_total), 0)
		FROM sales
		WHERE created_at >= $1 AND created_at < $2
		GROUP BY payment_method
		ORDER BY payment_method
	`

	rows, err := r.db.QueryContext(ctx, queryByMethod, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying payment method breakdown: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m entity.PaymentMethodSummary
		if err := rows.Scan(&m.Method, &m.Count, &m.Total); err != nil {
			return nil, fmt.Errorf("error scanning payment method breakdown: %w", err)
		}
		summary.ByMethod = append(summary.ByMethod, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment method breakdown: %w", err)
	}

	return summary, nil
}
