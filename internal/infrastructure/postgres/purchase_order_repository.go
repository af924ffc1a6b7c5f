package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/supermarket-stock-api/internal/domain"
	"github.com/jhoicas/supermarket-stock-api/internal/domain/entity"
	"github.com/jhoicas/supermarket-stock-api/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

const purchaseOrderColumns = `id, order_number, product_id, product_name, supplier_id, supplier_name,
	quantity, unit_price, total_amount, order_date, expected_delivery_date,
	status, payment_status, payment_method, payment_date, notes, created_by`

// PurchaseOrderRepo implementación del puerto PurchaseOrderRepository sobre PostgreSQL.
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

// Create persiste una nueva orden de compra.
func (r *PurchaseOrderRepo) Create(order *entity.PurchaseOrder) error {
	query := `
		INSERT INTO purchase_orders (` + purchaseOrderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.OrderNumber, order.ProductID, order.ProductName, order.SupplierID, order.SupplierName,
		order.Quantity, order.UnitPrice, order.TotalAmount, order.OrderDate, order.ExpectedDeliveryDate,
		order.Status, order.PaymentStatus, order.PaymentMethod, order.PaymentDate, order.Notes, order.CreatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert purchase order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden de compra por ID.
func (r *PurchaseOrderRepo) GetByID(id string) (*entity.PurchaseOrder, error) {
	query := `SELECT ` + purchaseOrderColumns + ` FROM purchase_orders WHERE id = $1`
	var o entity.PurchaseOrder
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.OrderNumber, &o.ProductID, &o.ProductName, &o.SupplierID, &o.SupplierName,
		&o.Quantity, &o.UnitPrice, &o.TotalAmount, &o.OrderDate, &o.ExpectedDeliveryDate,
		&o.Status, &o.PaymentStatus, &o.PaymentMethod, &o.PaymentDate, &o.Notes, &o.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase order: %w", err)
	}
	return &o, nil
}

// List lista todas las órdenes (más recientes primero).
func (r *PurchaseOrderRepo) List() ([]*entity.PurchaseOrder, error) {
	query := `SELECT ` + purchaseOrderColumns + ` FROM purchase_orders ORDER BY order_date DESC`
	return r.list(query)
}

// ListByStatus lista las órdenes con un estado dado.
func (r *PurchaseOrderRepo) ListByStatus(status string) ([]*entity.PurchaseOrder, error) {
	query := `SELECT ` + purchaseOrderColumns + ` FROM purchase_orders
		WHERE status = $1 ORDER BY order_date DESC`
	return r.list(query, status)
}

// ListByPaymentStatus lista las órdenes con un estado de pago dado.
func (r *PurchaseOrderRepo) ListByPaymentStatus(status string) ([]*entity.PurchaseOrder, error) {
	query := `SELECT ` + purchaseOrderColumns + ` FROM purchase_orders
		WHERE payment_status = $1 ORDER BY order_date DESC`
	return r.list(query, status)
}

// ListBySupplier lista las órdenes de un proveedor.
func (r *PurchaseOrderRepo) ListBySupplier(supplierID string) ([]*entity.PurchaseOrder, error) {
	query := `SELECT ` + purchaseOrderColumns + ` FROM purchase_orders
		WHERE supplier_id = $1 ORDER BY order_date DESC`
	return r.list(query, supplierID)
}

// ListByProduct lista las órdenes de un producto.
func (r *PurchaseOrderRepo) ListByProduct(productID string) ([]*entity.PurchaseOrder, error) {
	query := `SELECT ` + purchaseOrderColumns + ` FROM purchase_orders
		WHERE product_id = $1 ORDER BY order_date DESC`
	return r.list(query, productID)
}

// ListByDeliveryBetween lista las órdenes con entrega esperada dentro del rango.
func (r *PurchaseOrderRepo) ListByDeliveryBetween(from, to time.Time) ([]*entity.PurchaseOrder, error) {
	query := `SELECT ` + purchaseOrderColumns + ` FROM purchase_orders
		WHERE expected_delivery_date >= $1 AND expected_delivery_date <= $2
		ORDER BY expected_delivery_date ASC`
	return r.list(query, from, to)
}

// CountByOrderDateBetween cuenta las órdenes creadas en el rango.
func (r *PurchaseOrderRepo) CountByOrderDateBetween(from, to time.Time) (int64, error) {
	query := `SELECT COUNT(*) FROM purchase_orders WHERE order_date >= $1 AND order_date <= $2`
	var count int64
	if err := r.q.QueryRow(context.Background(), query, from, to).Scan(&count); err != nil {
		return 0, fmt.Errorf("count purchase orders: %w", err)
	}
	return count, nil
}

// Update actualiza una orden existente.
func (r *PurchaseOrderRepo) Update(order *entity.PurchaseOrder) error {
	query := `
		UPDATE purchase_orders
		SET quantity = $2, unit_price = $3, total_amount = $4, expected_delivery_date = $5,
			status = $6, payment_status = $7, payment_method = $8, payment_date = $9, notes = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.Quantity, order.UnitPrice, order.TotalAmount, order.ExpectedDeliveryDate,
		order.Status, order.PaymentStatus, order.PaymentMethod, order.PaymentDate, order.Notes,
	)
	if err != nil {
		return fmt.Errorf("update purchase order: %w", err)
	}
	return nil
}

// Delete elimina una orden por ID.
func (r *PurchaseOrderRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM purchase_orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete purchase order: %w", err)
	}
	return nil
}

func (r *PurchaseOrderRepo) list(query string, args ...any) ([]*entity.PurchaseOrder, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseOrder
	for rows.Next() {
		var o entity.PurchaseOrder
		if err := rows.Scan(
			&o.ID, &o.OrderNumber, &o.ProductID, &o.ProductName, &o.SupplierID, &o.SupplierName,
			&o.Quantity, &o.UnitPrice, &o.TotalAmount, &o.OrderDate, &o.ExpectedDeliveryDate,
			&o.Status, &o.PaymentStatus, &o.PaymentMethod, &o.PaymentDate, &o.Notes, &o.CreatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan purchase order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}
