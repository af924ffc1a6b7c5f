package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/supermarket-stock-api/internal/application/dto"
	"github.com/jhoicas/supermarket-stock-api/internal/application/usecase"
	"github.com/jhoicas/supermarket-stock-api/internal/domain"
	"github.com/jhoicas/supermarket-stock-api/internal/domain/entity"
)

func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }

func TestProductCreate_StockInicialPorDefectoCero(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	out, err := uc.Create(dto.CreateProductRequest{Name: "Arroz 500g"})
	require.NoError(t, err)
	assert.Equal(t, 0, out.CurrentStock)
	assert.NotEmpty(t, out.ID)
}

func TestProductCreate_ConStockInicial(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	out, err := uc.Create(dto.CreateProductRequest{
		Name:         "Arroz 500g",
		CurrentStock: intPtr(25),
		SellingPrice: decimal.NewFromFloat(2.50),
	})
	require.NoError(t, err)
	assert.Equal(t, 25, out.CurrentStock)
}

func TestProductCreate_SinNombreEsRechazado(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	_, err := uc.Create(dto.CreateProductRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUpdate_NoTocaElStock(t *testing.T) {
	repo := newFakeProductRepo(&entity.Product{ID: "p1", Name: "Arroz", CurrentStock: 40})
	uc := usecase.NewProductUseCase(repo)

	out, err := uc.Update("p1", dto.UpdateProductRequest{Name: strPtr("Arroz premium")})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "Arroz premium", out.Name)
	assert.Equal(t, 40, out.CurrentStock,
		"el stock solo cambia a través del libro de transacciones")
}

func TestProductUpdate_InexistenteDevuelveNil(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	out, err := uc.Update("no-existe", dto.UpdateProductRequest{Name: strPtr("X")})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestProductListLowStock(t *testing.T) {
	repo := newFakeProductRepo(
		&entity.Product{ID: "p1", Name: "Arroz", CurrentStock: 3, MinStockLevel: 5},
		&entity.Product{ID: "p2", Name: "Leche", CurrentStock: 5, MinStockLevel: 5},
		&entity.Product{ID: "p3", Name: "Pan", CurrentStock: 50, MinStockLevel: 5},
	)
	uc := usecase.NewProductUseCase(repo)

	out, err := uc.ListLowStock()
	require.NoError(t, err)
	require.Len(t, out, 2, "en el umbral también cuenta como stock bajo")
	assert.Equal(t, "p1", out[0].ID)
	assert.Equal(t, "p2", out[1].ID)
}

func TestProductDelete_Inexistente(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	assert.ErrorIs(t, uc.Delete("no-existe"), domain.ErrNotFound)
}
