package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/supermarket-stock-api/internal/application/dto"
	"github.com/jhoicas/supermarket-stock-api/internal/application/ledger"
	"github.com/jhoicas/supermarket-stock-api/internal/domain"
	"github.com/jhoicas/supermarket-stock-api/internal/domain/entity"
	"github.com/jhoicas/supermarket-stock-api/internal/domain/repository"
)

// PurchaseOrderUseCase casos de uso para órdenes de compra. Cuando una orden
// pasa a DELIVERED, registra una transacción PURCHASE a través del libro, que
// es quien aplica la entrada de stock.
type PurchaseOrderUseCase struct {
	repo         repository.PurchaseOrderRepository
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
	ledger       *ledger.UseCase
}

// NewPurchaseOrderUseCase construye el caso de uso.
func NewPurchaseOrderUseCase(
	repo repository.PurchaseOrderRepository,
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
	ledgerUC *ledger.UseCase,
) *PurchaseOrderUseCase {
	return &PurchaseOrderUseCase{repo: repo, productRepo: productRepo, supplierRepo: supplierRepo, ledger: ledgerUC}
}

// Create crea una orden de compra con número PO-YYYYMMDD-NNN y estado PENDING.
func (uc *PurchaseOrderUseCase) Create(in dto.CreatePurchaseOrderRequest, createdBy string) (*dto.PurchaseOrderResponse, error) {
	if in.ProductID == "" || in.SupplierID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	orderNumber, err := uc.generateOrderNumber(now)
	if err != nil {
		return nil, err
	}
	order := &entity.PurchaseOrder{
		ID:                   uuid.New().String(),
		OrderNumber:          orderNumber,
		ProductID:            in.ProductID,
		SupplierID:           in.SupplierID,
		Quantity:             in.Quantity,
		UnitPrice:            in.UnitPrice,
		TotalAmount:          in.UnitPrice.Mul(decimal.NewFromInt(int64(in.Quantity))),
		OrderDate:            now,
		ExpectedDeliveryDate: in.ExpectedDeliveryDate,
		Status:               entity.OrderStatusPending,
		PaymentStatus:        entity.PaymentStatusPending,
		Notes:                in.Notes,
		CreatedBy:            createdBy,
	}
	// Denormalizar nombres para mostrar la orden sin joins.
	if product, err := uc.productRepo.GetByID(in.ProductID); err == nil && product != nil {
		order.ProductName = product.Name
	}
	if supplier, err := uc.supplierRepo.GetByID(in.SupplierID); err == nil && supplier != nil {
		order.SupplierName = supplier.Name
	}
	if err := uc.repo.Create(order); err != nil {
		return nil, err
	}
	return toPurchaseOrderResponse(order), nil
}

// GetByID obtiene una orden por ID.
func (uc *PurchaseOrderUseCase) GetByID(id string) (*dto.PurchaseOrderResponse, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	return toPurchaseOrderResponse(order), nil
}

// List lista todas las órdenes de compra.
func (uc *PurchaseOrderUseCase) List() ([]dto.PurchaseOrderResponse, error) {
	return uc.toResponses(uc.repo.List())
}

// ListByStatus lista órdenes por estado.
func (uc *PurchaseOrderUseCase) ListByStatus(status string) ([]dto.PurchaseOrderResponse, error) {
	if !entity.ValidOrderStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	return uc.toResponses(uc.repo.ListByStatus(status))
}

// ListBySupplier lista órdenes de un proveedor.
func (uc *PurchaseOrderUseCase) ListBySupplier(supplierID string) ([]dto.PurchaseOrderResponse, error) {
	return uc.toResponses(uc.repo.ListBySupplier(supplierID))
}

// ListByProduct lista órdenes de un producto.
func (uc *PurchaseOrderUseCase) ListByProduct(productID string) ([]dto.PurchaseOrderResponse, error) {
	return uc.toResponses(uc.repo.ListByProduct(productID))
}

// ListUpcomingDeliveries lista órdenes con entrega esperada en los próximos 7 días.
func (uc *PurchaseOrderUseCase) ListUpcomingDeliveries() ([]dto.PurchaseOrderResponse, error) {
	now := time.Now()
	return uc.toResponses(uc.repo.ListByDeliveryBetween(now, now.AddDate(0, 0, 7)))
}

// ListPendingPayments lista órdenes con pago pendiente.
func (uc *PurchaseOrderUseCase) ListPendingPayments() ([]dto.PurchaseOrderResponse, error) {
	return uc.toResponses(uc.repo.ListByPaymentStatus(entity.PaymentStatusPending))
}

// Update actualiza una orden. Si el estado pasa a DELIVERED (y no lo estaba),
// registra la transacción PURCHASE correspondiente: la entrada de stock pasa
// por el libro, nunca se aplica directo.
func (uc *PurchaseOrderUseCase) Update(ctx context.Context, id string, in dto.UpdatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	wasDelivered := order.Status == entity.OrderStatusDelivered
	if in.Quantity != nil {
		if *in.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		order.Quantity = *in.Quantity
	}
	if in.UnitPrice != nil {
		order.UnitPrice = *in.UnitPrice
	}
	if in.Quantity != nil || in.UnitPrice != nil {
		order.TotalAmount = order.UnitPrice.Mul(decimal.NewFromInt(int64(order.Quantity)))
	}
	if in.ExpectedDeliveryDate != nil {
		order.ExpectedDeliveryDate = *in.ExpectedDeliveryDate
	}
	if in.Status != nil {
		if !entity.ValidOrderStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		order.Status = *in.Status
	}
	if in.Notes != nil {
		order.Notes = *in.Notes
	}

	if !wasDelivered && order.Status == entity.OrderStatusDelivered {
		_, err := uc.ledger.Create(ctx, ledger.CreateInput{
			ProductID: order.ProductID,
			Type:      entity.TransactionTypePurchase,
			Quantity:  order.Quantity,
			UnitPrice: order.UnitPrice,
			Notes:     "Purchase Order: " + order.OrderNumber,
		})
		if err != nil {
			return nil, err
		}
	}

	if err := uc.repo.Update(order); err != nil {
		return nil, err
	}
	return toPurchaseOrderResponse(order), nil
}

// UpdatePaymentStatus actualiza el estado de pago; registra la fecha al quedar PAID.
func (uc *PurchaseOrderUseCase) UpdatePaymentStatus(id string, in dto.UpdatePaymentStatusRequest) (*dto.PurchaseOrderResponse, error) {
	if !entity.ValidPaymentStatus(in.PaymentStatus) {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	order.PaymentStatus = in.PaymentStatus
	order.PaymentMethod = in.PaymentMethod
	if in.PaymentStatus == entity.PaymentStatusPaid {
		now := time.Now()
		order.PaymentDate = &now
	}
	if err := uc.repo.Update(order); err != nil {
		return nil, err
	}
	return toPurchaseOrderResponse(order), nil
}

// Delete elimina una orden de compra.
func (uc *PurchaseOrderUseCase) Delete(id string) error {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// generateOrderNumber produce PO-YYYYMMDD-NNN con consecutivo diario.
func (uc *PurchaseOrderUseCase) generateOrderNumber(now time.Time) (string, error) {
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	count, err := uc.repo.CountByOrderDateBetween(startOfDay, startOfDay.AddDate(0, 0, 1))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("PO-%s-%03d", now.Format("20060102"), count+1), nil
}

func (uc *PurchaseOrderUseCase) toResponses(list []*entity.PurchaseOrder, err error) ([]dto.PurchaseOrderResponse, error) {
	if err != nil {
		return nil, err
	}
	out := make([]dto.PurchaseOrderResponse, 0, len(list))
	for _, order := range list {
		out = append(out, *toPurchaseOrderResponse(order))
	}
	return out, nil
}

func toPurchaseOrderResponse(o *entity.PurchaseOrder) *dto.PurchaseOrderResponse {
	return &dto.PurchaseOrderResponse{
		ID:                   o.ID,
		OrderNumber:          o.OrderNumber,
		ProductID:            o.ProductID,
		ProductName:          o.ProductName,
		SupplierID:           o.SupplierID,
		SupplierName:         o.SupplierName,
		Quantity:             o.Quantity,
		UnitPrice:            o.UnitPrice,
		TotalAmount:          o.TotalAmount,
		OrderDate:            o.OrderDate,
		ExpectedDeliveryDate: o.ExpectedDeliveryDate,
		Status:               o.Status,
		PaymentStatus:        o.PaymentStatus,
		PaymentMethod:        o.PaymentMethod,
		PaymentDate:          o.PaymentDate,
		Notes:                o.Notes,
		CreatedBy:            o.CreatedBy,
	}
}
