package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductSupplier vincula un producto con un proveedor y sus condiciones de compra.
type ProductSupplier struct {
	ID                   string
	ProductID            string
	SupplierID           string
	CostPerUnit          decimal.Decimal // precio por unidad de este proveedor
	DeliveryDays         int             // días de entrega
	MinimumOrderQuantity int
	IsPreferred          bool // proveedor preferido para este producto
	Notes                string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
