package repository

import (
	"time"

	"github.com/jhoicas/supermarket-stock-api/internal/domain/entity"
)

// PurchaseOrderRepository define el puerto de persistencia para órdenes de compra.
type PurchaseOrderRepository interface {
	Create(order *entity.PurchaseOrder) error
	GetByID(id string) (*entity.PurchaseOrder, error)
	List() ([]*entity.PurchaseOrder, error)
	ListByStatus(status string) ([]*entity.PurchaseOrder, error)
	ListByPaymentStatus(status string) ([]*entity.PurchaseOrder, error)
	ListBySupplier(supplierID string) ([]*entity.PurchaseOrder, error)
	ListByProduct(productID string) ([]*entity.PurchaseOrder, error)
	ListByDeliveryBetween(from, to time.Time) ([]*entity.PurchaseOrder, error)
	// CountByOrderDateBetween cuenta órdenes creadas en el rango; usado para el consecutivo diario.
	CountByOrderDateBetween(from, to time.Time) (int64, error)
	Update(order *entity.PurchaseOrder) error
	Delete(id string) error
}
