package ledger

import (
	"time"

	"github.com/jhoicas/supermarket-stock-api/internal/domain"
	"github.com/jhoicas/supermarket-stock-api/internal/domain/entity"
	"github.com/jhoicas/supermarket-stock-api/internal/domain/repository"
)

// StockMutator aplica deltas de cantidad al stock de un producto.
// Es el único escritor de CurrentStock en todo el sistema.
type StockMutator struct{}

// Apply suma (isAddition=true) o resta quantity al stock del producto y
// persiste el resultado junto con UpdatedAt. Devuelve el producto actualizado.
//
// Se bloquea la fila con GetForUpdate para serializar mutaciones concurrentes
// sobre el mismo producto; quantity debe ser no negativo (el llamador decide
// la dirección). No hay piso en cero: el stock puede quedar negativo, los
// flujos de corrección de inventario pueden ir por delante del conteo físico.
func (StockMutator) Apply(productRepo repository.ProductRepository, productID string, quantity int, isAddition bool, now time.Time) (*entity.Product, error) {
	if quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := productRepo.GetForUpdate(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if isAddition {
		product.CurrentStock += quantity
	} else {
		product.CurrentStock -= quantity
	}
	product.UpdatedAt = now
	if err := productRepo.UpdateStock(productID, product.CurrentStock, now); err != nil {
		return nil, err
	}
	return product, nil
}
