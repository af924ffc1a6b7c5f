package repository

import (
	"time"

	"github.com/jhoicas/supermarket-stock-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// UpdateStock es el único camino para modificar CurrentStock; las operaciones
// CRUD del catálogo no lo tocan.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE) cuando el
	// Querier subyacente es una transacción; serializa mutaciones de stock.
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateStock(productID string, stock int, updatedAt time.Time) error
	List() ([]*entity.Product, error)
	ListByCategory(categoryID string) ([]*entity.Product, error)
	ListBySupplier(supplierID string) ([]*entity.Product, error)
	// ListLowStock devuelve productos con CurrentStock <= MinStockLevel.
	ListLowStock() ([]*entity.Product, error)
	Delete(id string) error
}
