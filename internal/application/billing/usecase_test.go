package billing_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/supermarket-stock-api/internal/application/billing"
	"github.com/jhoicas/supermarket-stock-api/internal/domain"
	"github.com/jhoicas/supermarket-stock-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

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

func (r *fakeTxRepo) ListAll() ([]*entity.Transaction, error) { return r.txs, nil }

func (r *fakeTxRepo) ListByProduct(productID string) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, tx := range r.txs {
		if tx.ProductID == productID {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (r *fakeTxRepo) ListByType(txType string) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, tx := range r.txs {
		if tx.Type == txType {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (r *fakeTxRepo) Delete(id string) error { return domain.ErrNotFound }

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (r *fakeProductRepo) Create(p *entity.Product) error { return nil }

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) { return r.products[id], nil }

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error                   { return nil }
func (r *fakeProductRepo) UpdateStock(string, int, time.Time) error         { return nil }
func (r *fakeProductRepo) List() ([]*entity.Product, error)                 { return nil, nil }
func (r *fakeProductRepo) ListByCategory(string) ([]*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) ListBySupplier(string) ([]*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) ListLowStock() ([]*entity.Product, error)         { return nil, nil }
func (r *fakeProductRepo) Delete(id string) error                           { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func venta(id, productID, billID string, quantity int, unitPrice float64, date time.Time) *entity.Transaction {
	price := decimal.NewFromFloat(unitPrice)
	return &entity.Transaction{
		ID:              id,
		ProductID:       productID,
		Type:            entity.TransactionTypeSale,
		Quantity:        quantity,
		UnitPrice:       price,
		TotalAmount:     price.Mul(decimal.NewFromInt(int64(quantity))),
		BillID:          billID,
		TransactionDate: date,
	}
}

func buildUseCase(txs []*entity.Transaction, products ...*entity.Product) *billing.BillUseCase {
	m := make(map[string]*entity.Product)
	for _, p := range products {
		m[p.ID] = p
	}
	return billing.NewBillUseCase(&fakeTxRepo{txs: txs}, &fakeProductRepo{products: m})
}

// ──────────────────────────────────────────────────────────────────────────────
// ListBills
// ──────────────────────────────────────────────────────────────────────────────

func TestListBills_AgrupaPorBillID(t *testing.T) {
	base := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	uc := buildUseCase([]*entity.Transaction{
		venta("t1", "p1", "B1", 2, 10.0, base),
		venta("t2", "p2", "B1", 3, 1.0, base.Add(time.Minute)),
		venta("t3", "p1", "B2", 1, 5.0, base.Add(time.Hour)),
	})

	bills, err := uc.ListBills()
	require.NoError(t, err)
	require.Len(t, bills, 2)

	// B2 es más reciente, debe ir primero
	assert.Equal(t, "B2", bills[0].BillID)
	assert.Equal(t, "B1", bills[1].BillID)

	assert.Equal(t, 5, bills[1].TotalItems, "B1: 2 + 3 unidades")
	assert.True(t, bills[1].TotalAmount.Equal(decimal.NewFromFloat(23.0)),
		"B1: 2×10 + 3×1 = 23")
	assert.Equal(t, base, bills[1].BillDate,
		"la fecha del recibo es la de la primera transacción encontrada")
}

func TestListBills_IgnoraVentasSinBillID(t *testing.T) {
	base := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	uc := buildUseCase([]*entity.Transaction{
		venta("t1", "p1", "", 2, 10.0, base),
		venta("t2", "p1", "B1", 1, 5.0, base),
	})

	bills, err := uc.ListBills()
	require.NoError(t, err)
	require.Len(t, bills, 1)
	assert.Equal(t, "B1", bills[0].BillID)
}

func TestListBills_SinVentasDevuelveListaVacia(t *testing.T) {
	uc := buildUseCase(nil)
	bills, err := uc.ListBills()
	require.NoError(t, err)
	assert.Empty(t, bills)
}

// ──────────────────────────────────────────────────────────────────────────────
// GetBill
// ──────────────────────────────────────────────────────────────────────────────

func TestGetBill_EnriqueceLineasConElProducto(t *testing.T) {
	base := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	uc := buildUseCase(
		[]*entity.Transaction{
			venta("t1", "p1", "B1", 2, 10.0, base),
			venta("t2", "p2", "B1", 3, 1.0, base),
		},
		&entity.Product{ID: "p1", Name: "Arroz 500g", Barcode: "7701234"},
		&entity.Product{ID: "p2", Name: "Leche 1L", Barcode: "7705678"},
	)

	bill, err := uc.GetBill("B1")
	require.NoError(t, err)
	require.NotNil(t, bill)
	require.Len(t, bill.Items, 2)

	assert.Equal(t, "Arroz 500g", bill.Items[0].ProductName)
	assert.Equal(t, "7701234", bill.Items[0].ProductCode)
	assert.Equal(t, 5, bill.TotalItems)
	assert.True(t, bill.TotalAmount.Equal(decimal.NewFromFloat(23.0)))
}

func TestGetBill_ProductoEliminadoConservaMontos(t *testing.T) {
	base := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	// p1 ya no existe en el catálogo
	uc := buildUseCase([]*entity.Transaction{
		venta("t1", "p1", "B1", 2, 10.0, base),
	})

	bill, err := uc.GetBill("B1")
	require.NoError(t, err)
	require.NotNil(t, bill)
	require.Len(t, bill.Items, 1)

	assert.Empty(t, bill.Items[0].ProductName, "nombre vacío si el producto fue eliminado")
	assert.Empty(t, bill.Items[0].ProductCode)
	assert.Equal(t, 2, bill.Items[0].Quantity, "cantidades y montos se conservan")
	assert.True(t, bill.TotalAmount.Equal(decimal.NewFromFloat(20.0)))
}

func TestGetBill_InexistenteDevuelveNil(t *testing.T) {
	uc := buildUseCase(nil)
	bill, err := uc.GetBill("no-existe")
	require.NoError(t, err)
	assert.Nil(t, bill)
}

// ──────────────────────────────────────────────────────────────────────────────
// GenerateBillID
// ──────────────────────────────────────────────────────────────────────────────

func TestGenerateBillID_Formato(t *testing.T) {
	uc := buildUseCase(nil)
	id := uc.GenerateBillID()

	pattern := regexp.MustCompile(`^BILL-\d{8}-\d{5}$`)
	assert.Regexp(t, pattern, id)
	assert.Contains(t, id, time.Now().Format("20060102"),
		"la parte de fecha debe ser la del día actual")
}
