package usecase_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/supermarket-stock-api/internal/application/dto"
	"github.com/jhoicas/supermarket-stock-api/internal/application/ledger"
	"github.com/jhoicas/supermarket-stock-api/internal/application/usecase"
	"github.com/jhoicas/supermarket-stock-api/internal/domain"
	"github.com/jhoicas/supermarket-stock-api/internal/domain/entity"
)

type orderFixture struct {
	uc          *usecase.PurchaseOrderUseCase
	orderRepo   *fakePurchaseOrderRepo
	productRepo *fakeProductRepo
	txRepo      *fakeTxRepo
}

func buildOrderFixture(products ...*entity.Product) orderFixture {
	orderRepo := newFakePurchaseOrderRepo()
	productRepo := newFakeProductRepo(products...)
	supplierRepo := &fakeSupplierRepo{suppliers: map[string]*entity.Supplier{
		"s1": {ID: "s1", Name: "Distribuidora Norte"},
	}}
	txRepo := &fakeTxRepo{}
	ledgerUC := ledger.NewUseCase(&fakeTxRunner{txRepo: txRepo, productRepo: productRepo}, txRepo)
	return orderFixture{
		uc:          usecase.NewPurchaseOrderUseCase(orderRepo, productRepo, supplierRepo, ledgerUC),
		orderRepo:   orderRepo,
		productRepo: productRepo,
		txRepo:      txRepo,
	}
}

func TestPurchaseOrderCreate_NumeroYEstadosIniciales(t *testing.T) {
	f := buildOrderFixture(&entity.Product{ID: "p1", Name: "Arroz 500g"})

	out, err := f.uc.Create(dto.CreatePurchaseOrderRequest{
		ProductID:  "p1",
		SupplierID: "s1",
		Quantity:   10,
		UnitPrice:  decimal.NewFromFloat(1.20),
	}, "u1")
	require.NoError(t, err)

	pattern := regexp.MustCompile(`^PO-\d{8}-\d{3}$`)
	assert.Regexp(t, pattern, out.OrderNumber)
	assert.Contains(t, out.OrderNumber, time.Now().Format("20060102"))
	assert.Equal(t, entity.OrderStatusPending, out.Status)
	assert.Equal(t, entity.PaymentStatusPending, out.PaymentStatus)
	assert.Equal(t, "Arroz 500g", out.ProductName, "nombre denormalizado al crear")
	assert.Equal(t, "Distribuidora Norte", out.SupplierName)
	assert.True(t, out.TotalAmount.Equal(decimal.NewFromFloat(12.00)))
}

func TestPurchaseOrderCreate_ConsecutivoDiario(t *testing.T) {
	f := buildOrderFixture(&entity.Product{ID: "p1", Name: "Arroz"})

	first, err := f.uc.Create(dto.CreatePurchaseOrderRequest{
		ProductID: "p1", SupplierID: "s1", Quantity: 1,
	}, "u1")
	require.NoError(t, err)
	second, err := f.uc.Create(dto.CreatePurchaseOrderRequest{
		ProductID: "p1", SupplierID: "s1", Quantity: 1,
	}, "u1")
	require.NoError(t, err)

	assert.NotEqual(t, first.OrderNumber, second.OrderNumber)
	assert.Contains(t, second.OrderNumber, "-002")
}

func TestPurchaseOrderCreate_CantidadInvalida(t *testing.T) {
	f := buildOrderFixture()
	_, err := f.uc.Create(dto.CreatePurchaseOrderRequest{
		ProductID: "p1", SupplierID: "s1", Quantity: 0,
	}, "u1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPurchaseOrderUpdate_EntregaRegistraTransaccionPurchase(t *testing.T) {
	f := buildOrderFixture(&entity.Product{ID: "p1", Name: "Arroz", CurrentStock: 5})

	out, err := f.uc.Create(dto.CreatePurchaseOrderRequest{
		ProductID:  "p1",
		SupplierID: "s1",
		Quantity:   10,
		UnitPrice:  decimal.NewFromFloat(1.50),
	}, "u1")
	require.NoError(t, err)

	delivered := entity.OrderStatusDelivered
	updated, err := f.uc.Update(context.Background(), out.ID, dto.UpdatePurchaseOrderRequest{
		Status: &delivered,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, entity.OrderStatusDelivered, updated.Status)

	// La entrada de stock pasa por el libro
	require.Len(t, f.txRepo.txs, 1)
	tx := f.txRepo.txs[0]
	assert.Equal(t, entity.TransactionTypePurchase, tx.Type)
	assert.Equal(t, 10, tx.Quantity)
	assert.Contains(t, tx.Notes, out.OrderNumber)

	p, _ := f.productRepo.GetByID("p1")
	assert.Equal(t, 15, p.CurrentStock, "el stock sube al entregar la orden")
}

func TestPurchaseOrderUpdate_EntregaRepetidaNoDuplicaLaTransaccion(t *testing.T) {
	f := buildOrderFixture(&entity.Product{ID: "p1", Name: "Arroz", CurrentStock: 0})

	out, err := f.uc.Create(dto.CreatePurchaseOrderRequest{
		ProductID: "p1", SupplierID: "s1", Quantity: 10,
		UnitPrice: decimal.NewFromFloat(1.00),
	}, "u1")
	require.NoError(t, err)

	delivered := entity.OrderStatusDelivered
	_, err = f.uc.Update(context.Background(), out.ID, dto.UpdatePurchaseOrderRequest{Status: &delivered})
	require.NoError(t, err)
	_, err = f.uc.Update(context.Background(), out.ID, dto.UpdatePurchaseOrderRequest{Status: &delivered})
	require.NoError(t, err)

	assert.Len(t, f.txRepo.txs, 1, "solo la transición a DELIVERED registra la compra")
	p, _ := f.productRepo.GetByID("p1")
	assert.Equal(t, 10, p.CurrentStock)
}

func TestPurchaseOrderUpdate_EstadoInvalido(t *testing.T) {
	f := buildOrderFixture(&entity.Product{ID: "p1", Name: "Arroz"})
	out, err := f.uc.Create(dto.CreatePurchaseOrderRequest{
		ProductID: "p1", SupplierID: "s1", Quantity: 1,
	}, "u1")
	require.NoError(t, err)

	bad := "EN_CAMINO"
	_, err = f.uc.Update(context.Background(), out.ID, dto.UpdatePurchaseOrderRequest{Status: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPurchaseOrderUpdatePaymentStatus_PaidRegistraFecha(t *testing.T) {
	f := buildOrderFixture(&entity.Product{ID: "p1", Name: "Arroz"})
	out, err := f.uc.Create(dto.CreatePurchaseOrderRequest{
		ProductID: "p1", SupplierID: "s1", Quantity: 1,
	}, "u1")
	require.NoError(t, err)

	updated, err := f.uc.UpdatePaymentStatus(out.ID, dto.UpdatePaymentStatusRequest{
		PaymentStatus: entity.PaymentStatusPaid,
		PaymentMethod: "transferencia",
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, entity.PaymentStatusPaid, updated.PaymentStatus)
	require.NotNil(t, updated.PaymentDate, "al quedar PAID se registra la fecha de pago")
}

func TestPurchaseOrderDelete_Inexistente(t *testing.T) {
	f := buildOrderFixture()
	assert.ErrorIs(t, f.uc.Delete("no-existe"), domain.ErrNotFound)
}
