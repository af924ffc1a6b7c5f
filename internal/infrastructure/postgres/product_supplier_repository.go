package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/supermarket-stock-api/internal/domain"
	"github.com/jhoicas/supermarket-stock-api/internal/domain/entity"
	"github.com/jhoicas/supermarket-stock-api/internal/domain/repository"
)

var _ repository.ProductSupplierRepository = (*ProductSupplierRepo)(nil)

const productSupplierColumns = `id, product_id, supplier_id, cost_per_unit, delivery_days,
	minimum_order_quantity, is_preferred, notes, created_at, updated_at`

// ProductSupplierRepo implementación del puerto ProductSupplierRepository sobre PostgreSQL.
type ProductSupplierRepo struct {
	q Querier
}

// NewProductSupplierRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductSupplierRepository(q Querier) *ProductSupplierRepo {
	return &ProductSupplierRepo{q: q}
}

// Create persiste un nuevo vínculo producto-proveedor.
func (r *ProductSupplierRepo) Create(link *entity.ProductSupplier) error {
	query := `
		INSERT INTO product_suppliers (` + productSupplierColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		link.ID, link.ProductID, link.SupplierID, link.CostPerUnit, link.DeliveryDays,
		link.MinimumOrderQuantity, link.IsPreferred, link.Notes, link.CreatedAt, link.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product_supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un vínculo por ID.
func (r *ProductSupplierRepo) GetByID(id string) (*entity.ProductSupplier, error) {
	query := `SELECT ` + productSupplierColumns + ` FROM product_suppliers WHERE id = $1`
	var ps entity.ProductSupplier
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&ps.ID, &ps.ProductID, &ps.SupplierID, &ps.CostPerUnit, &ps.DeliveryDays,
		&ps.MinimumOrderQuantity, &ps.IsPreferred, &ps.Notes, &ps.CreatedAt, &ps.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product_supplier: %w", err)
	}
	return &ps, nil
}

// ListByProduct lista los proveedores vinculados a un producto (preferido primero).
func (r *ProductSupplierRepo) ListByProduct(productID string) ([]*entity.ProductSupplier, error) {
	query := `SELECT ` + productSupplierColumns + ` FROM product_suppliers
		WHERE product_id = $1 ORDER BY is_preferred DESC, cost_per_unit ASC`
	return r.list(query, productID)
}

// ListBySupplier lista los productos vinculados a un proveedor.
func (r *ProductSupplierRepo) ListBySupplier(supplierID string) ([]*entity.ProductSupplier, error) {
	query := `SELECT ` + productSupplierColumns + ` FROM product_suppliers
		WHERE supplier_id = $1 ORDER BY created_at ASC`
	return r.list(query, supplierID)
}

// Update actualiza las condiciones de compra de un vínculo.
func (r *ProductSupplierRepo) Update(link *entity.ProductSupplier) error {
	query := `
		UPDATE product_suppliers
		SET cost_per_unit = $2, delivery_days = $3, minimum_order_quantity = $4,
			is_preferred = $5, notes = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		link.ID, link.CostPerUnit, link.DeliveryDays, link.MinimumOrderQuantity,
		link.IsPreferred, link.Notes, link.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product_supplier: %w", err)
	}
	return nil
}

// Delete elimina un vínculo por ID.
func (r *ProductSupplierRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM product_suppliers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product_supplier: %w", err)
	}
	return nil
}

func (r *ProductSupplierRepo) list(query string, args ...any) ([]*entity.ProductSupplier, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list product_suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductSupplier
	for rows.Next() {
		var ps entity.ProductSupplier
		if err := rows.Scan(
			&ps.ID, &ps.ProductID, &ps.SupplierID, &ps.CostPerUnit, &ps.DeliveryDays,
			&ps.MinimumOrderQuantity, &ps.IsPreferred, &ps.Notes, &ps.CreatedAt, &ps.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product_supplier: %w", err)
		}
		list = append(list, &ps)
	}
	return list, rows.Err()
}
