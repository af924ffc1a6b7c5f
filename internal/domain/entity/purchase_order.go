package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de compra.
const (
	OrderStatusPending   = "PENDING"
	OrderStatusConfirmed = "CONFIRMED"
	OrderStatusShipped   = "SHIPPED"
	OrderStatusDelivered = "DELIVERED"
	OrderStatusCancelled = "CANCELLED"
)

// Estados de pago de una orden de compra.
const (
	PaymentStatusPending  = "PENDING"
	PaymentStatusPartial  = "PARTIAL"
	PaymentStatusPaid     = "PAID"
	PaymentStatusRefunded = "REFUNDED"
)

// ValidOrderStatus indica si el estado es uno de los soportados.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// ValidPaymentStatus indica si el estado de pago es uno de los soportados.
func ValidPaymentStatus(s string) bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPartial, PaymentStatusPaid, PaymentStatusRefunded:
		return true
	}
	return false
}

// PurchaseOrder representa una orden de compra a un proveedor.
// Al pasar a DELIVERED se registra una transacción PURCHASE (entrada de stock).
type PurchaseOrder struct {
	ID                   string
	OrderNumber          string // PO-YYYYMMDD-NNN, generado al crear
	ProductID            string
	ProductName          string // denormalizado al crear
	SupplierID           string
	SupplierName         string // denormalizado al crear
	Quantity             int
	UnitPrice            decimal.Decimal
	TotalAmount          decimal.Decimal
	OrderDate            time.Time
	ExpectedDeliveryDate time.Time
	Status               string
	PaymentStatus        string
	PaymentMethod        string
	PaymentDate          *time.Time
	Notes                string
	CreatedBy            string
}
