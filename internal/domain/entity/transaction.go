package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción de inventario.
const (
	TransactionTypePurchase   = "PURCHASE"   // compra: siempre suma stock
	TransactionTypeSale       = "SALE"       // venta: siempre resta stock
	TransactionTypeAdjustment = "ADJUSTMENT" // ajuste: el signo de Quantity decide la dirección
)

// ValidTransactionType indica si el tipo corresponde a uno de los soportados.
func ValidTransactionType(t string) bool {
	return t == TransactionTypePurchase || t == TransactionTypeSale || t == TransactionTypeAdjustment
}

// Transaction representa un registro inmutable del libro de transacciones.
// TotalAmount siempre es |Quantity| × UnitPrice; el signo de Quantity solo
// codifica la dirección del stock, nunca el signo del dinero.
type Transaction struct {
	ID              string
	ProductID       string
	Type            string // PURCHASE, SALE, ADJUSTMENT
	Quantity        int
	UnitPrice       decimal.Decimal
	TotalAmount     decimal.Decimal
	Reference       string // número de factura, recibo, etc.
	BillID          string // agrupa varias ventas en un mismo recibo (solo SALE)
	Notes           string
	TransactionDate time.Time // asignada por el servidor al crear, inmutable
}
