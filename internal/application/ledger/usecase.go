package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/supermarket-stock-api/internal/application/dto"
	"github.com/jhoicas/supermarket-stock-api/internal/domain"
	"github.com/jhoicas/supermarket-stock-api/internal/domain/entity"
	"github.com/jhoicas/supermarket-stock-api/internal/domain/repository"
)

// UseCase implementa el libro de transacciones de inventario: cada creación
// calcula el total, aplica exactamente una mutación de stock y persiste el
// registro, todo dentro de una misma transacción de BD.
type UseCase struct {
	txRunner TxRunner
	txRepo   repository.TransactionRepository
	mutator  StockMutator
}

// NewUseCase construye el caso de uso del libro de transacciones.
func NewUseCase(txRunner TxRunner, txRepo repository.TransactionRepository) *UseCase {
	return &UseCase{txRunner: txRunner, txRepo: txRepo}
}

// CreateInput entrada para registrar una transacción.
type CreateInput struct {
	ProductID string
	Type      string
	Quantity  int
	UnitPrice decimal.Decimal
	Reference string
	BillID    string
	Notes     string
}

// Create registra una transacción y aplica su efecto sobre el stock.
//
// Reglas:
//   - TotalAmount = |Quantity| × UnitPrice; el signo de Quantity nunca toca el dinero.
//   - PURCHASE siempre suma |Quantity|; SALE siempre resta |Quantity|;
//     ADJUSTMENT usa el signo de Quantity para decidir la dirección.
//   - TransactionDate la asigna el servidor.
//   - La mutación de stock y el insert del registro van en una sola transacción
//     de BD con la fila del producto bloqueada: si la mutación falla, el
//     registro no se persiste, y dos creaciones concurrentes sobre el mismo
//     producto se serializan.
func (uc *UseCase) Create(ctx context.Context, in CreateInput) (*dto.TransactionResponse, error) {
	if in.ProductID == "" || !entity.ValidTransactionType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity == 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.UnitPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	magnitude := in.Quantity
	if magnitude < 0 {
		magnitude = -magnitude
	}

	var isAddition bool
	switch in.Type {
	case entity.TransactionTypePurchase:
		isAddition = true
	case entity.TransactionTypeSale:
		isAddition = false
	case entity.TransactionTypeAdjustment:
		isAddition = in.Quantity > 0
	}

	now := time.Now()
	tx := &entity.Transaction{
		ID:              uuid.New().String(),
		ProductID:       in.ProductID,
		Type:            in.Type,
		Quantity:        in.Quantity,
		UnitPrice:       in.UnitPrice,
		TotalAmount:     in.UnitPrice.Mul(decimal.NewFromInt(int64(magnitude))),
		Reference:       in.Reference,
		BillID:          in.BillID,
		Notes:           in.Notes,
		TransactionDate: now,
	}

	err := uc.txRunner.Run(ctx, func(
		txRepo repository.TransactionRepository,
		productRepo repository.ProductRepository,
	) error {
		if _, err := uc.mutator.Apply(productRepo, in.ProductID, magnitude, isAddition, now); err != nil {
			return err
		}
		return txRepo.Create(tx)
	})
	if err != nil {
		return nil, err
	}
	return toTransactionResponse(tx), nil
}

// GetByID obtiene una transacción por ID.
func (uc *UseCase) GetByID(id string) (*dto.TransactionResponse, error) {
	tx, err := uc.txRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, nil
	}
	return toTransactionResponse(tx), nil
}

// List devuelve el libro completo.
func (uc *UseCase) List() ([]dto.TransactionResponse, error) {
	list, err := uc.txRepo.ListAll()
	if err != nil {
		return nil, err
	}
	return toTransactionResponses(list), nil
}

// ListByProduct devuelve las transacciones de un producto.
func (uc *UseCase) ListByProduct(productID string) ([]dto.TransactionResponse, error) {
	list, err := uc.txRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	return toTransactionResponses(list), nil
}

// ListByType devuelve las transacciones de un tipo.
func (uc *UseCase) ListByType(txType string) ([]dto.TransactionResponse, error) {
	if !entity.ValidTransactionType(txType) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.txRepo.ListByType(txType)
	if err != nil {
		return nil, err
	}
	return toTransactionResponses(list), nil
}

// Delete elimina el registro del libro sin revertir su efecto sobre el stock.
// Limitación documentada: el stock queda como esté; se deja rastro en el log.
func (uc *UseCase) Delete(id string) error {
	tx, err := uc.txRepo.GetByID(id)
	if err != nil {
		return err
	}
	if tx == nil {
		return domain.ErrNotFound
	}
	if err := uc.txRepo.Delete(id); err != nil {
		return err
	}
	log.Warn().
		Str("transaction_id", id).
		Str("product_id", tx.ProductID).
		Int("quantity", tx.Quantity).
		Msg("transacción eliminada sin revertir el stock")
	return nil
}

func toTransactionResponse(tx *entity.Transaction) *dto.TransactionResponse {
	return &dto.TransactionResponse{
		ID:              tx.ID,
		ProductID:       tx.ProductID,
		Type:            tx.Type,
		Quantity:        tx.Quantity,
		UnitPrice:       tx.UnitPrice,
		TotalAmount:     tx.TotalAmount,
		Reference:       tx.Reference,
		BillID:          tx.BillID,
		Notes:           tx.Notes,
		TransactionDate: tx.TransactionDate,
	}
}

func toTransactionResponses(list []*entity.Transaction) []dto.TransactionResponse {
	out := make([]dto.TransactionResponse, 0, len(list))
	for _, tx := range list {
		out = append(out, *toTransactionResponse(tx))
	}
	return out
}
