package billing

import (
	"context"

	"github.com/jhoicas/supermarket-stock-api/internal/application/dto"
)

// ReceiptPDFGenerator genera la representación PDF de un recibo de venta.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, bill *dto.BillResponse) ([]byte, error)
}
