package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductSupplierRequest entrada para vincular un producto con un proveedor.
type CreateProductSupplierRequest struct {
	ProductID            string          `json:"product_id" validate:"required"`
	SupplierID           string          `json:"supplier_id" validate:"required"`
	CostPerUnit          decimal.Decimal `json:"cost_per_unit"`
	DeliveryDays         int             `json:"delivery_days"`
	MinimumOrderQuantity int             `json:"minimum_order_quantity"`
	IsPreferred          bool            `json:"is_preferred"`
	Notes                string          `json:"notes"`
}

// UpdateProductSupplierRequest entrada para actualizar un vínculo producto-proveedor.
type UpdateProductSupplierRequest struct {
	CostPerUnit          *decimal.Decimal `json:"cost_per_unit"`
	DeliveryDays         *int             `json:"delivery_days"`
	MinimumOrderQuantity *int             `json:"minimum_order_quantity"`
	IsPreferred          *bool            `json:"is_preferred"`
	Notes                *string          `json:"notes"`
}

// ProductSupplierResponse salida de un vínculo producto-proveedor,
// enriquecido con los nombres del producto y del proveedor.
type ProductSupplierResponse struct {
	ID                   string          `json:"id"`
	ProductID            string          `json:"product_id"`
	ProductName          string          `json:"product_name,omitempty"`
	SupplierID           string          `json:"supplier_id"`
	SupplierName         string          `json:"supplier_name,omitempty"`
	CostPerUnit          decimal.Decimal `json:"cost_per_unit"`
	DeliveryDays         int             `json:"delivery_days"`
	MinimumOrderQuantity int             `json:"minimum_order_quantity"`
	IsPreferred          bool            `json:"is_preferred"`
	Notes                string          `json:"notes"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}
