package repository

import "github.com/jhoicas/supermarket-stock-api/internal/domain/entity"

// ProductSupplierRepository define el puerto de persistencia para los vínculos producto-proveedor.
type ProductSupplierRepository interface {
	Create(link *entity.ProductSupplier) error
	GetByID(id string) (*entity.ProductSupplier, error)
	ListByProduct(productID string) ([]*entity.ProductSupplier, error)
	ListBySupplier(supplierID string) ([]*entity.ProductSupplier, error)
	Update(link *entity.ProductSupplier) error
	Delete(id string) error
}
