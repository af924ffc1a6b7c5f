package billing

import (
	"context"

	"github.com/jhoicas/supermarket-stock-api/internal/domain"
)

// ReceiptPDFUseCase arma el recibo y delega la generación del PDF al puerto.
type ReceiptPDFUseCase struct {
	bills     *BillUseCase
	generator ReceiptPDFGenerator
}

// NewReceiptPDFUseCase construye el caso de uso de PDF de recibos.
func NewReceiptPDFUseCase(bills *BillUseCase, generator ReceiptPDFGenerator) *ReceiptPDFUseCase {
	return &ReceiptPDFUseCase{bills: bills, generator: generator}
}

// GetReceiptPDF devuelve los bytes del PDF del recibo billID.
func (uc *ReceiptPDFUseCase) GetReceiptPDF(ctx context.Context, billID string) ([]byte, error) {
	bill, err := uc.bills.GetBill(billID)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, domain.ErrNotFound
	}
	return uc.generator.GenerateReceiptPDF(ctx, bill)
}
