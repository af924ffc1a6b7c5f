package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/supermarket-stock-api/internal/application/dto"
	"github.com/jhoicas/supermarket-stock-api/internal/domain"
	"github.com/jhoicas/supermarket-stock-api/internal/domain/entity"
	"github.com/jhoicas/supermarket-stock-api/internal/domain/repository"
)

// ProductSupplierUseCase casos de uso para los vínculos producto-proveedor.
type ProductSupplierUseCase struct {
	repo         repository.ProductSupplierRepository
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
}

// NewProductSupplierUseCase construye el caso de uso.
func NewProductSupplierUseCase(
	repo repository.ProductSupplierRepository,
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
) *ProductSupplierUseCase {
	return &ProductSupplierUseCase{repo: repo, productRepo: productRepo, supplierRepo: supplierRepo}
}

// Create vincula un producto con un proveedor. Ambos deben existir.
func (uc *ProductSupplierUseCase) Create(in dto.CreateProductSupplierRequest) (*dto.ProductSupplierResponse, error) {
	if in.ProductID == "" || in.SupplierID == "" {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if product == nil || supplier == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	link := &entity.ProductSupplier{
		ID:                   uuid.New().String(),
		ProductID:            in.ProductID,
		SupplierID:           in.SupplierID,
		CostPerUnit:          in.CostPerUnit,
		DeliveryDays:         in.DeliveryDays,
		MinimumOrderQuantity: in.MinimumOrderQuantity,
		IsPreferred:          in.IsPreferred,
		Notes:                in.Notes,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := uc.repo.Create(link); err != nil {
		return nil, err
	}
	out := toProductSupplierResponse(link)
	out.ProductName = product.Name
	out.SupplierName = supplier.Name
	return out, nil
}

// ListByProduct lista los proveedores de un producto, con nombres resueltos.
func (uc *ProductSupplierUseCase) ListByProduct(productID string) ([]dto.ProductSupplierResponse, error) {
	links, err := uc.repo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	return uc.enrich(links), nil
}

// ListBySupplier lista los productos que ofrece un proveedor, con nombres resueltos.
func (uc *ProductSupplierUseCase) ListBySupplier(supplierID string) ([]dto.ProductSupplierResponse, error) {
	links, err := uc.repo.ListBySupplier(supplierID)
	if err != nil {
		return nil, err
	}
	return uc.enrich(links), nil
}

// Update actualiza las condiciones de un vínculo producto-proveedor.
func (uc *ProductSupplierUseCase) Update(id string, in dto.UpdateProductSupplierRequest) (*dto.ProductSupplierResponse, error) {
	link, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, nil
	}
	if in.CostPerUnit != nil {
		link.CostPerUnit = *in.CostPerUnit
	}
	if in.DeliveryDays != nil {
		link.DeliveryDays = *in.DeliveryDays
	}
	if in.MinimumOrderQuantity != nil {
		link.MinimumOrderQuantity = *in.MinimumOrderQuantity
	}
	if in.IsPreferred != nil {
		link.IsPreferred = *in.IsPreferred
	}
	if in.Notes != nil {
		link.Notes = *in.Notes
	}
	link.UpdatedAt = time.Now()
	if err := uc.repo.Update(link); err != nil {
		return nil, err
	}
	return toProductSupplierResponse(link), nil
}

// Delete elimina un vínculo producto-proveedor.
func (uc *ProductSupplierUseCase) Delete(id string) error {
	link, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if link == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// enrich resuelve nombres de producto y proveedor; los deja vacíos si ya no existen.
func (uc *ProductSupplierUseCase) enrich(links []*entity.ProductSupplier) []dto.ProductSupplierResponse {
	out := make([]dto.ProductSupplierResponse, 0, len(links))
	for _, link := range links {
		resp := *toProductSupplierResponse(link)
		if product, err := uc.productRepo.GetByID(link.ProductID); err == nil && product != nil {
			resp.ProductName = product.Name
		}
		if supplier, err := uc.supplierRepo.GetByID(link.SupplierID); err == nil && supplier != nil {
			resp.SupplierName = supplier.Name
		}
		out = append(out, resp)
	}
	return out
}

func toProductSupplierResponse(l *entity.ProductSupplier) *dto.ProductSupplierResponse {
	return &dto.ProductSupplierResponse{
		ID:                   l.ID,
		ProductID:            l.ProductID,
		SupplierID:           l.SupplierID,
		CostPerUnit:          l.CostPerUnit,
		DeliveryDays:         l.DeliveryDays,
		MinimumOrderQuantity: l.MinimumOrderQuantity,
		IsPreferred:          l.IsPreferred,
		Notes:                l.Notes,
		CreatedAt:            l.CreatedAt,
		UpdatedAt:            l.UpdatedAt,
	}
}
