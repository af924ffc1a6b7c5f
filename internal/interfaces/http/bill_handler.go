package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/supermarket-stock-api/internal/application/billing"
	"github.com/jhoicas/supermarket-stock-api/internal/application/dto"
	"github.com/jhoicas/supermarket-stock-api/internal/domain"
)

// BillHandler maneja los recibos de punto de venta (protegido).
// Los recibos no se persisten: se derivan de agrupar transacciones SALE por bill_id.
type BillHandler struct {
	uc    *billing.BillUseCase
	pdfUC *billing.ReceiptPDFUseCase
}

// NewBillHandler construye el handler.
func NewBillHandler(uc *billing.BillUseCase, pdfUC *billing.ReceiptPDFUseCase) *BillHandler {
	return &BillHandler{uc: uc, pdfUC: pdfUC}
}

// List godoc
// @Summary      Listar recibos (resumen, más recientes primero)
// @Tags         bills
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.BillResponse
// @Router       /api/bills [get]
func (h *BillHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListBills()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener recibo con sus líneas
// @Tags         bills
// @Security     Bearer
// @Produce      json
// @Param        billId  path  string  true  "ID del recibo"
// @Success      200  {object}  dto.BillResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bills/{billId} [get]
func (h *BillHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetBill(c.Params("billId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recibo no encontrado"})
	}
	return c.JSON(out)
}

// GenerateBillID godoc
// @Summary      Generar identificador de recibo para el punto de venta
// @Tags         bills
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.GenerateBillIDResponse
// @Router       /api/bills/generate-id [get]
func (h *BillHandler) GenerateBillID(c *fiber.Ctx) error {
	return c.JSON(dto.GenerateBillIDResponse{BillID: h.uc.GenerateBillID()})
}

// GetReceiptPDF godoc
// @Summary      Descargar recibo en PDF
// @Tags         bills
// @Security     Bearer
// @Produce      application/pdf
// @Param        billId  path  string  true  "ID del recibo"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bills/{billId}/pdf [get]
func (h *BillHandler) GetReceiptPDF(c *fiber.Ctx) error {
	billID := c.Params("billId")
	pdfBytes, err := h.pdfUC.GetReceiptPDF(c.UserContext(), billID)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recibo no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+billID+`.pdf"`)
	return c.Send(pdfBytes)
}
