package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTransactionRequest entrada para registrar una transacción de inventario.
// Quantity y UnitPrice son punteros para distinguir "ausente" de cero.
// La fecha siempre la asigna el servidor; cualquier fecha enviada se ignora.
type CreateTransactionRequest struct {
	ProductID string           `json:"product_id" validate:"required"`
	Type      string           `json:"type" validate:"required,oneof=PURCHASE SALE ADJUSTMENT"`
	Quantity  *int             `json:"quantity" validate:"required"`
	UnitPrice *decimal.Decimal `json:"unit_price" validate:"required"`
	Reference string           `json:"reference"`
	BillID    string           `json:"bill_id"`
	Notes     string           `json:"notes"`
}

// TransactionResponse salida de una transacción del libro.
type TransactionResponse struct {
	ID              string          `json:"id"`
	ProductID       string          `json:"product_id"`
	Type            string          `json:"type"`
	Quantity        int             `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	Reference       string          `json:"reference,omitempty"`
	BillID          string          `json:"bill_id,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	TransactionDate time.Time       `json:"transaction_date"`
}
