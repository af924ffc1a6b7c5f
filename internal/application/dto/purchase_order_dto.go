package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePurchaseOrderRequest entrada para crear una orden de compra.
type CreatePurchaseOrderRequest struct {
	ProductID            string          `json:"product_id" validate:"required"`
	SupplierID           string          `json:"supplier_id" validate:"required"`
	Quantity             int             `json:"quantity" validate:"required,gt=0"`
	UnitPrice            decimal.Decimal `json:"unit_price"`
	ExpectedDeliveryDate time.Time       `json:"expected_delivery_date"`
	Notes                string          `json:"notes"`
}

// UpdatePurchaseOrderRequest entrada para actualizar una orden de compra.
// OrderNumber y OrderDate son inmutables y se ignoran.
type UpdatePurchaseOrderRequest struct {
	Quantity             *int             `json:"quantity"`
	UnitPrice            *decimal.Decimal `json:"unit_price"`
	ExpectedDeliveryDate *time.Time       `json:"expected_delivery_date"`
	Status               *string          `json:"status"`
	Notes                *string          `json:"notes"`
}

// UpdatePaymentStatusRequest entrada para actualizar el estado de pago de una orden.
type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" validate:"required"`
	PaymentMethod string `json:"payment_method"`
}

// PurchaseOrderResponse salida de una orden de compra.
type PurchaseOrderResponse struct {
	ID                   string          `json:"id"`
	OrderNumber          string          `json:"order_number"`
	ProductID            string          `json:"product_id"`
	ProductName          string          `json:"product_name"`
	SupplierID           string          `json:"supplier_id"`
	SupplierName         string          `json:"supplier_name"`
	Quantity             int             `json:"quantity"`
	UnitPrice            decimal.Decimal `json:"unit_price"`
	TotalAmount          decimal.Decimal `json:"total_amount"`
	OrderDate            time.Time       `json:"order_date"`
	ExpectedDeliveryDate time.Time       `json:"expected_delivery_date"`
	Status               string          `json:"status"`
	PaymentStatus        string          `json:"payment_status"`
	PaymentMethod        string          `json:"payment_method,omitempty"`
	PaymentDate          *time.Time      `json:"payment_date,omitempty"`
	Notes                string          `json:"notes,omitempty"`
	CreatedBy            string          `json:"created_by,omitempty"`
}
