package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/supermarket-stock-api/internal/domain/entity"
	"github.com/jhoicas/supermarket-stock-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

const transactionColumns = `id, product_id, type, quantity, unit_price, total_amount,
	reference, bill_id, notes, transaction_date`

// TransactionRepo implementación del puerto TransactionRepository sobre PostgreSQL (usable con pool o tx).
// El libro es append-only: no hay UPDATE.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador del libro de transacciones. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create persiste una nueva transacción.
func (r *TransactionRepo) Create(tx *entity.Transaction) error {
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.ProductID, tx.Type, tx.Quantity, tx.UnitPrice, tx.TotalAmount,
		tx.Reference, tx.BillID, tx.Notes, tx.TransactionDate,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByID obtiene una transacción por ID.
func (r *TransactionRepo) GetByID(id string) (*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`
	var t entity.Transaction
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.ProductID, &t.Type, &t.Quantity, &t.UnitPrice, &t.TotalAmount,
		&t.Reference, &t.BillID, &t.Notes, &t.TransactionDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return &t, nil
}

// ListAll devuelve el libro completo en orden de registro.
func (r *TransactionRepo) ListAll() ([]*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions ORDER BY transaction_date ASC`
	return r.list(query)
}

// ListByProduct devuelve las transacciones de un producto.
func (r *TransactionRepo) ListByProduct(productID string) ([]*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE product_id = $1 ORDER BY transaction_date ASC`
	return r.list(query, productID)
}

// ListByType devuelve las transacciones de un tipo.
func (r *TransactionRepo) ListByType(txType string) ([]*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE type = $1 ORDER BY transaction_date ASC`
	return r.list(query, txType)
}

// Delete elimina una transacción por ID. No compensa el efecto sobre el stock.
func (r *TransactionRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return nil
}

func (r *TransactionRepo) list(query string, args ...any) ([]*entity.Transaction, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transaction
	for rows.Next() {
		var t entity.Transaction
		if err := rows.Scan(
			&t.ID, &t.ProductID, &t.Type, &t.Quantity, &t.UnitPrice, &t.TotalAmount,
			&t.Reference, &t.BillID, &t.Notes, &t.TransactionDate,
		); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
