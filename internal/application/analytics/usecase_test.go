package analytics_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/supermarket-stock-api/internal/application/analytics"
	"github.com/jhoicas/supermarket-stock-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeTxRepo struct {
	txs []*entity.Transaction
}

func (r *fakeTxRepo) Create(tx *entity.Transaction) error { r.txs = append(r.txs, tx); return nil }

func (r *fakeTxRepo) GetByID(id string) (*entity.Transaction, error) { return nil, nil }

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

func (r *fakeTxRepo) Delete(id string) error { return nil }

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

func (r *fakeProductRepo) Create(p *entity.Product) error { return nil }

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) { return r.products[id], nil }

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error           { return nil }
func (r *fakeProductRepo) UpdateStock(string, int, time.Time) error { return nil }

func (r *fakeProductRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.products[id])
	}
	return out, nil
}

func (r *fakeProductRepo) ListByCategory(string) ([]*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) ListBySupplier(string) ([]*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) ListLowStock() ([]*entity.Product, error)         { return nil, nil }
func (r *fakeProductRepo) Delete(id string) error                           { return nil }

type fakeCategoryRepo struct {
	categories map[string]*entity.Category
}

func (r *fakeCategoryRepo) Create(c *entity.Category) error { return nil }

func (r *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	return r.categories[id], nil
}

func (r *fakeCategoryRepo) List() ([]*entity.Category, error) { return nil, nil }
func (r *fakeCategoryRepo) Update(c *entity.Category) error   { return nil }
func (r *fakeCategoryRepo) Delete(id string) error            { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func venta(productID string, quantity int, unitPrice float64, date time.Time) *entity.Transaction {
	price := decimal.NewFromFloat(unitPrice)
	return &entity.Transaction{
		ID:              productID + date.Format("150405.000000000"),
		ProductID:       productID,
		Type:            entity.TransactionTypeSale,
		Quantity:        quantity,
		UnitPrice:       price,
		TotalAmount:     price.Mul(decimal.NewFromInt(int64(quantity))),
		TransactionDate: date,
	}
}

func buildUseCase(txs []*entity.Transaction, categories map[string]*entity.Category, products ...*entity.Product) *analytics.UseCase {
	if categories == nil {
		categories = map[string]*entity.Category{}
	}
	return analytics.NewUseCase(
		&fakeTxRepo{txs: txs},
		newFakeProductRepo(products...),
		&fakeCategoryRepo{categories: categories},
	)
}

// ──────────────────────────────────────────────────────────────────────────────
// SalesFrequency
// ──────────────────────────────────────────────────────────────────────────────

func TestSalesFrequency_UnaEntradaPorDiaConCeros(t *testing.T) {
	now := time.Now()
	uc := buildUseCase([]*entity.Transaction{
		venta("p1", 2, 10.0, now.Add(-2*time.Second)),
		venta("p1", 1, 5.0, now.Add(-3*time.Second)),
	}, nil)

	report, err := uc.SalesFrequency(7)
	require.NoError(t, err)
	require.Len(t, report, 8, "ventana de 7 días = 8 días calendario inclusive")

	// días sin ventas con ceros
	assert.Equal(t, 0, report[0].Count)
	assert.True(t, report[0].TotalAmount.IsZero())

	// el último día es hoy y acumula ambas ventas
	last := report[len(report)-1]
	assert.Equal(t, now.Format("2006-01-02"), last.Date)
	assert.Equal(t, 2, last.Count)
	assert.True(t, last.TotalAmount.Equal(decimal.NewFromFloat(25.0)), "2×10 + 1×5")
}

func TestSalesFrequency_VentasFueraDeVentanaSeExcluyen(t *testing.T) {
	now := time.Now()
	uc := buildUseCase([]*entity.Transaction{
		venta("p1", 2, 10.0, now.AddDate(0, 0, -20)),
	}, nil)

	report, err := uc.SalesFrequency(7)
	require.NoError(t, err)
	for _, day := range report {
		assert.Equal(t, 0, day.Count)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// ProductSalesTrends
// ──────────────────────────────────────────────────────────────────────────────

func TestProductSalesTrends_PronosticoDeQuiebre(t *testing.T) {
	now := time.Now()
	// 60 unidades vendidas en 30 días, stock 70: promedio 2/día,
	// quiebre en 35 días, pedir en 35-7=28 días, cantidad 2×30=60.
	uc := buildUseCase(
		[]*entity.Transaction{
			venta("p1", 30, 1.0, now.AddDate(0, 0, -10)),
			venta("p1", 30, 1.0, now.AddDate(0, 0, -5)),
		},
		nil,
		&entity.Product{ID: "p1", Name: "Arroz 500g", CurrentStock: 70},
	)

	trends, err := uc.ProductSalesTrends()
	require.NoError(t, err)
	require.Len(t, trends, 1)

	trend := trends[0]
	assert.Equal(t, 60, trend.TotalSold)
	assert.True(t, trend.AverageDailySales.Equal(decimal.NewFromInt(2)),
		"promedio = 60 / 30 con denominador fijo")
	require.NotNil(t, trend.DaysUntilStockout)
	assert.Equal(t, 35, *trend.DaysUntilStockout)
	require.NotNil(t, trend.SuggestedOrderDate)
	assert.Equal(t, now.AddDate(0, 0, 28).Format("2006-01-02"), *trend.SuggestedOrderDate)
	require.NotNil(t, trend.SuggestedOrderQuantity)
	assert.Equal(t, 60, *trend.SuggestedOrderQuantity)
}

func TestProductSalesTrends_QuiebreInminentePideHoy(t *testing.T) {
	now := time.Now()
	// promedio 1/día con stock 5: quiebre en 5 días (≤7), pedir hoy.
	uc := buildUseCase(
		[]*entity.Transaction{venta("p1", 30, 1.0, now.AddDate(0, 0, -3))},
		nil,
		&entity.Product{ID: "p1", Name: "Leche 1L", CurrentStock: 5},
	)

	trends, err := uc.ProductSalesTrends()
	require.NoError(t, err)
	require.Len(t, trends, 1)
	require.NotNil(t, trends[0].SuggestedOrderDate)
	assert.Equal(t, now.Format("2006-01-02"), *trends[0].SuggestedOrderDate)
}

func TestProductSalesTrends_CantidadSugeridaRedondeaHaciaArriba(t *testing.T) {
	now := time.Now()
	// 7 unidades en 30 días: promedio 7/30, sugerido ceil(7/30 × 30) = 7.
	uc := buildUseCase(
		[]*entity.Transaction{venta("p1", 7, 1.0, now.AddDate(0, 0, -3))},
		nil,
		&entity.Product{ID: "p1", Name: "Pan", CurrentStock: 100},
	)

	trends, err := uc.ProductSalesTrends()
	require.NoError(t, err)
	require.Len(t, trends, 1)
	require.NotNil(t, trends[0].SuggestedOrderQuantity)
	assert.Equal(t, 7, *trends[0].SuggestedOrderQuantity)
}

func TestProductSalesTrends_ProductoSinVentasSeExcluye(t *testing.T) {
	now := time.Now()
	uc := buildUseCase(
		[]*entity.Transaction{venta("p1", 10, 1.0, now.AddDate(0, 0, -3))},
		nil,
		&entity.Product{ID: "p1", Name: "Arroz", CurrentStock: 50},
		&entity.Product{ID: "p2", Name: "Sal", CurrentStock: 50},
	)

	trends, err := uc.ProductSalesTrends()
	require.NoError(t, err)
	require.Len(t, trends, 1, "p2 no vendió en la ventana, se excluye")
	assert.Equal(t, "p1", trends[0].ProductID)
}

func TestProductSalesTrends_OrdenPorUrgenciaPronosticoNuloAlFinal(t *testing.T) {
	now := time.Now()
	// p1 quiebra en 5 días; p2 en 50; p3 tiene ventas netas cero (venta y
	// devolución vía ajuste de cantidad negativa) y queda sin pronóstico.
	uc := buildUseCase(
		[]*entity.Transaction{
			venta("p2", 30, 1.0, now.AddDate(0, 0, -3)),
			venta("p1", 30, 1.0, now.AddDate(0, 0, -3)),
			venta("p3", 10, 1.0, now.AddDate(0, 0, -3)),
			venta("p3", -10, 1.0, now.AddDate(0, 0, -2)),
		},
		nil,
		&entity.Product{ID: "p1", Name: "A", CurrentStock: 5},
		&entity.Product{ID: "p2", Name: "B", CurrentStock: 50},
		&entity.Product{ID: "p3", Name: "C", CurrentStock: 10},
	)

	trends, err := uc.ProductSalesTrends()
	require.NoError(t, err)
	require.Len(t, trends, 3)
	assert.Equal(t, "p1", trends[0].ProductID, "el más urgente primero")
	assert.Equal(t, "p2", trends[1].ProductID)
	assert.Equal(t, "p3", trends[2].ProductID, "sin pronóstico al final")
	assert.Nil(t, trends[2].DaysUntilStockout)
}

// ──────────────────────────────────────────────────────────────────────────────
// TopProducts
// ──────────────────────────────────────────────────────────────────────────────

func TestTopProducts_OrdenadoPorIngresosYTruncado(t *testing.T) {
	now := time.Now()
	uc := buildUseCase(
		[]*entity.Transaction{
			venta("p1", 1, 10.0, now),
			venta("p2", 1, 50.0, now),
			venta("p3", 1, 30.0, now),
		},
		nil,
		&entity.Product{ID: "p1", Name: "A"},
		&entity.Product{ID: "p2", Name: "B"},
		&entity.Product{ID: "p3", Name: "C"},
	)

	top, err := uc.TopProducts(2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "p2", top[0].ProductID)
	assert.Equal(t, "p3", top[1].ProductID)
}

func TestTopProducts_ProductoEliminadoSeOmite(t *testing.T) {
	now := time.Now()
	// p2 vendió pero ya no existe en el catálogo
	uc := buildUseCase(
		[]*entity.Transaction{
			venta("p1", 1, 10.0, now),
			venta("p2", 1, 99.0, now),
		},
		nil,
		&entity.Product{ID: "p1", Name: "A"},
	)

	top, err := uc.TopProducts(10)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "p1", top[0].ProductID)
}

func TestTopProducts_CategoriaResuelta(t *testing.T) {
	now := time.Now()
	uc := buildUseCase(
		[]*entity.Transaction{
			venta("p1", 1, 10.0, now),
			venta("p2", 1, 5.0, now),
		},
		map[string]*entity.Category{
			"c1": {ID: "c1", Name: "Granos"},
		},
		&entity.Product{ID: "p1", Name: "Arroz", CategoryID: "c1"},
		&entity.Product{ID: "p2", Name: "Misc"},
	)

	top, err := uc.TopProducts(10)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "Granos", top[0].CategoryName)
	assert.Equal(t, "Uncategorized", top[1].CategoryName,
		"producto sin categoría usa el fallback")
}

func TestTopProducts_AcumulaCantidadEIngresosPorProducto(t *testing.T) {
	now := time.Now()
	uc := buildUseCase(
		[]*entity.Transaction{
			venta("p1", 2, 10.0, now),
			venta("p1", 3, 10.0, now),
		},
		nil,
		&entity.Product{ID: "p1", Name: "Arroz"},
	)

	top, err := uc.TopProducts(10)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, 5, top[0].QuantitySold)
	assert.True(t, top[0].Revenue.Equal(decimal.NewFromFloat(50.0)))
}

// ──────────────────────────────────────────────────────────────────────────────
// RevenueAnalytics
// ──────────────────────────────────────────────────────────────────────────────

func TestRevenueAnalytics_VentanasAnidadas(t *testing.T) {
	now := time.Now()
	// hoy: 100; hace 3 días: 50; hace 20 días: 20
	uc := buildUseCase(
		[]*entity.Transaction{
			venta("p1", 1, 100.0, now.Add(-time.Second)),
			venta("p1", 1, 50.0, now.AddDate(0, 0, -3)),
			venta("p1", 1, 20.0, now.AddDate(0, 0, -20)),
		},
		nil,
		&entity.Product{ID: "p1", Name: "Arroz", PurchasePrice: decimal.NewFromFloat(10.0)},
	)

	report, err := uc.RevenueAnalytics()
	require.NoError(t, err)

	assert.True(t, report.TodayRevenue.Equal(decimal.NewFromFloat(100.0)))
	assert.True(t, report.WeekRevenue.Equal(decimal.NewFromFloat(150.0)),
		"la semana contiene a hoy")
	assert.True(t, report.MonthRevenue.Equal(decimal.NewFromFloat(170.0)),
		"el mes contiene a la semana")

	assert.Equal(t, 1, report.TodayTransactions)
	assert.Equal(t, 2, report.WeekTransactions)
	assert.Equal(t, 3, report.MonthTransactions)

	// utilidad con el precio de compra actual (10 por unidad)
	assert.True(t, report.TodayProfit.Equal(decimal.NewFromFloat(90.0)))
	assert.True(t, report.MonthProfit.Equal(decimal.NewFromFloat(140.0)))
}

func TestRevenueAnalytics_ProductoEliminadoNoAportaUtilidad(t *testing.T) {
	now := time.Now()
	// la venta cuenta para ingresos pero no para utilidad
	uc := buildUseCase(
		[]*entity.Transaction{venta("p-borrado", 1, 40.0, now.Add(-time.Second))},
		nil,
	)

	report, err := uc.RevenueAnalytics()
	require.NoError(t, err)
	assert.True(t, report.TodayRevenue.Equal(decimal.NewFromFloat(40.0)))
	assert.True(t, report.TodayProfit.IsZero())
}

func TestRevenueAnalytics_SinVentasTodoEnCero(t *testing.T) {
	uc := buildUseCase(nil, nil)
	report, err := uc.RevenueAnalytics()
	require.NoError(t, err)
	assert.True(t, report.MonthRevenue.IsZero())
	assert.Equal(t, 0, report.MonthTransactions)
}
