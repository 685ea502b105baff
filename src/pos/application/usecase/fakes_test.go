package usecase

import (
	"context"
	"time"

	"pos/src/pos/domain/entity"
	"pos/src/pos/domain/port"
	"pos/src/shared/domain/criteria"

	"github.com/google/uuid"
)

// fakeSaleRepo implementa port.SaleRepository en memoria.
// createErrs es una cola de errores: cada CreateSale consume uno; agotada
// la cola, el insert "funciona" y la venta queda guardada.
type fakeSaleRepo struct {
	createErrs []error
	saved      []*entity.Sale
	invoices   []string
	summary    *entity.DailySummary
	exportRows []entity.SalesExportRow
}

func (f *fakeSaleRepo) CreateSale(_ context.Context, sale *entity.Sale) error {
	f.invoices = append(f.invoices, sale.InvoiceNo)
	if len(f.createErrs) > 0 {
		err := f.createErrs[0]
		f.createErrs = f.createErrs[1:]
		if err != nil {
			return err
		}
	}
	f.saved = append(f.saved, sale)
	return nil
}

func (f *fakeSaleRepo) GetByInvoice(_ context.Context, invoiceNo string) (*entity.Sale, error) {
	for _, sale := range f.saved {
		if sale.InvoiceNo == invoiceNo {
			return sale, nil
		}
	}
	return nil, entity.ErrSaleNotFound
}

func (f *fakeSaleRepo) Search(_ context.Context, _ criteria.Criteria) ([]*entity.Sale, error) {
	return f.saved, nil
}

func (f *fakeSaleRepo) ExportRows(_ context.Context) ([]entity.SalesExportRow, error) {
	return f.exportRows, nil
}

func (f *fakeSaleRepo) DailySummary(_ context.Context, _, _ time.Time) (*entity.DailySummary, error) {
	if f.summary != nil {
		return f.summary, nil
	}
	return &entity.DailySummary{}, nil
}

var _ port.SaleRepository = (*fakeSaleRepo)(nil)

// fakeProductRepo sirve productos desde un mapa en memoria
type fakeProductRepo struct {
	products map[uuid.UUID]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	m := make(map[uuid.UUID]*entity.Product, len(products))
	for _, p := range products {
		m[p.ID] = p
	}
	return &fakeProductRepo{products: m}
}

func (f *fakeProductRepo) GetByIDs(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Product, error) {
	found := make(map[uuid.UUID]*entity.Product)
	for _, id := range ids {
		if p, ok := f.products[id]; ok {
			found[id] = p
		}
	}
	return found, nil
}

func (f *fakeProductRepo) GetByBarcode(_ context.Context, barcode string) (*entity.Product, error) {
	for _, p := range f.products {
		if p.Barcode == barcode {
			return p, nil
		}
	}
	return nil, entity.ErrProductNotFound
}

func (f *fakeProductRepo) Search(_ context.Context, _ criteria.Criteria) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}

var _ port.ProductRepository = (*fakeProductRepo)(nil)

// fakeCustomerRepo sirve clientes desde un mapa en memoria
type fakeCustomerRepo struct {
	customers map[uuid.UUID]*entity.Customer
}

func newFakeCustomerRepo(customers ...*entity.Customer) *fakeCustomerRepo {
	m := make(map[uuid.UUID]*entity.Customer, len(customers))
	for _, c := range customers {
		m[c.ID] = c
	}
	return &fakeCustomerRepo{customers: m}
}

func (f *fakeCustomerRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Customer, error) {
	if c, ok := f.customers[id]; ok {
		return c, nil
	}
	return nil, entity.ErrCustomerNotFound
}

func (f *fakeCustomerRepo) Search(_ context.Context, _ string, _ int) ([]*entity.Customer, error) {
	out := make([]*entity.Customer, 0, len(f.customers))
	for _, c := range f.customers {
		out = append(out, c)
	}
	return out, nil
}

var _ port.CustomerRepository = (*fakeCustomerRepo)(nil)
