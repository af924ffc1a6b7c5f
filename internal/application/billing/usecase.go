package billing

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/jhoicas/supermarket-stock-api/internal/application/dto"
	"github.com/jhoicas/supermarket-stock-api/internal/domain/entity"
	"github.com/jhoicas/supermarket-stock-api/internal/domain/repository"
)

// BillUseCase deriva recibos de punto de venta agrupando transacciones SALE
// que comparten BillID. Los recibos no se persisten: se recalculan por consulta.
type BillUseCase struct {
	txRepo      repository.TransactionRepository
	productRepo repository.ProductRepository
}

// NewBillUseCase construye el caso de uso de recibos.
func NewBillUseCase(txRepo repository.TransactionRepository, productRepo repository.ProductRepository) *BillUseCase {
	return &BillUseCase{txRepo: txRepo, productRepo: productRepo}
}

// ListBills agrupa todas las ventas con BillID y devuelve los recibos
// ordenados por fecha descendente (más recientes primero).
// La fecha del recibo es la de la primera transacción encontrada en el
// recorrido del libro; los totales son sumas conmutativas.
func (uc *BillUseCase) ListBills() ([]dto.BillResponse, error) {
	sales, err := uc.txRepo.ListByType(entity.TransactionTypeSale)
	if err != nil {
		return nil, err
	}

	groups := make(map[string][]*entity.Transaction)
	var order []string
	for _, tx := range sales {
		if tx.BillID == "" {
			continue
		}
		if _, seen := groups[tx.BillID]; !seen {
			order = append(order, tx.BillID)
		}
		groups[tx.BillID] = append(groups[tx.BillID], tx)
	}

	bills := make([]dto.BillResponse, 0, len(order))
	for _, billID := range order {
		bills = append(bills, summarize(billID, groups[billID]))
	}
	sort.SliceStable(bills, func(i, j int) bool {
		return bills[i].BillDate.After(bills[j].BillDate)
	})
	return bills, nil
}

// GetBill devuelve el recibo identificado por billID con sus líneas enriquecidas
// con nombre y código del producto. Devuelve nil si no existe ninguna
// transacción con ese BillID. Si un producto fue eliminado del catálogo, su
// línea conserva cantidades y montos con nombre/código vacíos.
func (uc *BillUseCase) GetBill(billID string) (*dto.BillResponse, error) {
	all, err := uc.txRepo.ListAll()
	if err != nil {
		return nil, err
	}
	var txs []*entity.Transaction
	for _, tx := range all {
		if tx.BillID == billID {
			txs = append(txs, tx)
		}
	}
	if len(txs) == 0 {
		return nil, nil
	}

	bill := summarize(billID, txs)
	bill.Items = make([]dto.BillItemResponse, 0, len(txs))
	for _, tx := range txs {
		item := dto.BillItemResponse{
			ProductID:  tx.ProductID,
			Quantity:   tx.Quantity,
			UnitPrice:  tx.UnitPrice,
			TotalPrice: tx.TotalAmount,
		}
		product, err := uc.productRepo.GetByID(tx.ProductID)
		if err == nil && product != nil {
			item.ProductName = product.Name
			item.ProductCode = product.Barcode
		}
		bill.Items = append(bill.Items, item)
	}
	return &bill, nil
}

// GenerateBillID produce un identificador BILL-YYYYMMDD-XXXXX.
// El sufijo es aleatorio, no un consecutivo: es un identificador de mejor
// esfuerzo, no una garantía de unicidad global.
func (uc *BillUseCase) GenerateBillID() string {
	datePart := time.Now().Format("20060102")
	return fmt.Sprintf("BILL-%s-%05d", datePart, rand.Intn(100000))
}

// summarize condensa un grupo de transacciones en la cabecera del recibo.
func summarize(billID string, txs []*entity.Transaction) dto.BillResponse {
	bill := dto.BillResponse{BillID: billID}
	if len(txs) == 0 {
		return bill
	}
	bill.BillDate = txs[0].TransactionDate
	for _, tx := range txs {
		bill.TotalItems += tx.Quantity
		bill.TotalAmount = bill.TotalAmount.Add(tx.TotalAmount)
	}
	return bill
}
