package repository

import "github.com/jhoicas/supermarket-stock-api/internal/domain/entity"

// TransactionRepository define el puerto de persistencia para el libro de transacciones.
// Las transacciones son append-only: se crean y se consultan; nunca se actualizan.
type TransactionRepository interface {
	Create(tx *entity.Transaction) error
	GetByID(id string) (*entity.Transaction, error)
	// ListAll devuelve el libro completo en orden de registro.
	ListAll() ([]*entity.Transaction, error)
	ListByProduct(productID string) ([]*entity.Transaction, error)
	ListByType(txType string) ([]*entity.Transaction, error)
	Delete(id string) error
}
