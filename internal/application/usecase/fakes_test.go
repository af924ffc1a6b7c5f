package usecase_test

import (
	"context"
	"time"

	"github.com/jhoicas/supermarket-stock-api/internal/domain"
	"github.com/jhoicas/supermarket-stock-api/internal/domain/entity"
	"github.com/jhoicas/supermarket-stock-api/internal/domain/repository"
)

// Fakes en memoria compartidos por los tests del paquete.

type fakeProductRepo struct {
	products map[string]*entity.Product
	order    []string
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[string]*entity.Product)}
	for _, p := range products {
		r.products[p.ID] = p
		r.order = append(r.order, p.ID)
	}
	return r
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.products[p.ID] = p
	r.order = append(r.order, p.ID)
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) { return r.products[id], nil }

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error { return nil }

func (r *fakeProductRepo) UpdateStock(productID string, stock int, updatedAt time.Time) error {
	p, ok := r.products[productID]
	if !ok {
		return domain.ErrNotFound
	}
	p.CurrentStock = stock
	p.UpdatedAt = updatedAt
	return nil
}

func (r *fakeProductRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.order))
	for _, id := range r.order {
		if p, ok := r.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) ListByCategory(string) ([]*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) ListBySupplier(string) ([]*entity.Product, error) { return nil, nil }

func (r *fakeProductRepo) ListLowStock() ([]*entity.Product, error) {
	all, _ := r.List()
	var out []*entity.Product
	for _, p := range all {
		if p.CurrentStock <= p.MinStockLevel {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.products, id)
	return nil
}

type fakeSupplierRepo struct {
	suppliers map[string]*entity.Supplier
}

func (r *fakeSupplierRepo) Create(s *entity.Supplier) error { return nil }

func (r *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	return r.suppliers[id], nil
}

func (r *fakeSupplierRepo) List() ([]*entity.Supplier, error) { return nil, nil }
func (r *fakeSupplierRepo) Update(s *entity.Supplier) error   { return nil }
func (r *fakeSupplierRepo) Delete(id string) error            { return nil }

type fakePurchaseOrderRepo struct {
	orders map[string]*entity.PurchaseOrder
}

func newFakePurchaseOrderRepo() *fakePurchaseOrderRepo {
	return &fakePurchaseOrderRepo{orders: make(map[string]*entity.PurchaseOrder)}
}

func (r *fakePurchaseOrderRepo) Create(o *entity.PurchaseOrder) error {
	r.orders[o.ID] = o
	return nil
}

func (r *fakePurchaseOrderRepo) GetByID(id string) (*entity.PurchaseOrder, error) {
	return r.orders[id], nil
}

func (r *fakePurchaseOrderRepo) List() ([]*entity.PurchaseOrder, error) {
	out := make([]*entity.PurchaseOrder, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, o)
	}
	return out, nil
}

func (r *fakePurchaseOrderRepo) ListByStatus(status string) ([]*entity.PurchaseOrder, error) {
	var out []*entity.PurchaseOrder
	for _, o := range r.orders {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakePurchaseOrderRepo) ListByPaymentStatus(status string) ([]*entity.PurchaseOrder, error) {
	var out []*entity.PurchaseOrder
	for _, o := range r.orders {
		if o.PaymentStatus == status {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakePurchaseOrderRepo) ListBySupplier(supplierID string) ([]*entity.PurchaseOrder, error) {
	return nil, nil
}

func (r *fakePurchaseOrderRepo) ListByProduct(productID string) ([]*entity.PurchaseOrder, error) {
	return nil, nil
}

func (r *fakePurchaseOrderRepo) ListByDeliveryBetween(from, to time.Time) ([]*entity.PurchaseOrder, error) {
	var out []*entity.PurchaseOrder
	for _, o := range r.orders {
		if !o.ExpectedDeliveryDate.Before(from) && !o.ExpectedDeliveryDate.After(to) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakePurchaseOrderRepo) CountByOrderDateBetween(from, to time.Time) (int64, error) {
	var count int64
	for _, o := range r.orders {
		if !o.OrderDate.Before(from) && o.OrderDate.Before(to) {
			count++
		}
	}
	return count, nil
}

func (r *fakePurchaseOrderRepo) Update(o *entity.PurchaseOrder) error {
	r.orders[o.ID] = o
	return nil
}

func (r *fakePurchaseOrderRepo) Delete(id string) error {
	delete(r.orders, id)
	return nil
}

type fakeTxRepo struct {
	txs []*entity.Transaction
}

func (r *fakeTxRepo) Create(tx *entity.Transaction) error { r.txs = append(r.txs, tx); return nil }

func (r *fakeTxRepo) GetByID(id string) (*entity.Transaction, error) {
	for _, tx := range r.txs {
		if tx.ID == id {
			return tx, nil
		}
	}
	return nil, nil
}

func (r *fakeTxRepo) ListAll() ([]*entity.Transaction, error)             { return r.txs, nil }
func (r *fakeTxRepo) ListByProduct(string) ([]*entity.Transaction, error) { return nil, nil }
func (r *fakeTxRepo) ListByType(string) ([]*entity.Transaction, error)    { return nil, nil }
func (r *fakeTxRepo) Delete(id string) error                              { return nil }

// fakeTxRunner pasa los fakes directamente; los tests de atomicidad viven en
// el paquete del libro.
type fakeTxRunner struct {
	txRepo      *fakeTxRepo
	productRepo *fakeProductRepo
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	txRepo repository.TransactionRepository,
	productRepo repository.ProductRepository,
) error) error {
	return fn(r.txRepo, r.productRepo)
}
