package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillItemResponse línea de un recibo: una transacción SALE enriquecida con el producto.
// ProductName y ProductCode quedan vacíos si el producto ya no existe en el catálogo.
type BillItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	ProductCode string          `json:"product_code"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// BillResponse recibo de punto de venta derivado de agrupar transacciones SALE por BillID.
// No se persiste: se recalcula en cada consulta.
type BillResponse struct {
	BillID      string             `json:"bill_id"`
	BillDate    time.Time          `json:"bill_date"`
	TotalItems  int                `json:"total_items"`
	TotalAmount decimal.Decimal    `json:"total_amount"`
	Items       []BillItemResponse `json:"items,omitempty"`
}

// GenerateBillIDResponse salida del generador de identificadores de recibo.
type GenerateBillIDResponse struct {
	BillID string `json:"bill_id"`
}
