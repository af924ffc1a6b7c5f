package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del supermercado.
// CurrentStock refleja la suma con signo de todas las transacciones aplicadas;
// solo lo modifica el motor de transacciones, nunca las operaciones CRUD del catálogo.
type Product struct {
	ID            string
	Name          string
	Description   string
	Barcode       string
	CategoryID    string // vacío si no tiene categoría asignada
	SupplierID    string
	PurchasePrice decimal.Decimal // precio de compra (costo)
	SellingPrice  decimal.Decimal // precio de venta
	CurrentStock  int
	MinStockLevel int    // umbral de re-orden
	Unit          string // "piece", "kg", "liter"
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
