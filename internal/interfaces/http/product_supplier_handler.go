package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/supermarket-stock-api/internal/application/dto"
	"github.com/jhoicas/supermarket-stock-api/internal/application/usecase"
	"github.com/jhoicas/supermarket-stock-api/internal/domain"
)

// ProductSupplierHandler maneja los vínculos producto-proveedor (protegido).
type ProductSupplierHandler struct {
	uc *usecase.ProductSupplierUseCase
}

// NewProductSupplierHandler construye el handler.
func NewProductSupplierHandler(uc *usecase.ProductSupplierUseCase) *ProductSupplierHandler {
	return &ProductSupplierHandler{uc: uc}
}

// Create godoc
// @Summary      Vincular producto con proveedor
// @Tags         product-suppliers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductSupplierRequest  true  "Datos del vínculo"
// @Success      201   {object}  dto.ProductSupplierResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/product-suppliers [post]
func (h *ProductSupplierHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductID == "" || in.SupplierID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id y supplier_id son requeridos"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto o proveedor no encontrado"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el vínculo ya existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByProduct godoc
// @Summary      Listar proveedores de un producto
// @Tags         product-suppliers
// @Security     Bearer
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Success      200  {array}  dto.ProductSupplierResponse
// @Router       /api/product-suppliers/product/{productId} [get]
func (h *ProductSupplierHandler) ListByProduct(c *fiber.Ctx) error {
	out, err := h.uc.ListByProduct(c.Params("productId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListBySupplier godoc
// @Summary      Listar productos de un proveedor
// @Tags         product-suppliers
// @Security     Bearer
// @Produce      json
// @Param        supplierId  path  string  true  "ID del proveedor"
// @Success      200  {array}  dto.ProductSupplierResponse
// @Router       /api/product-suppliers/supplier/{supplierId} [get]
func (h *ProductSupplierHandler) ListBySupplier(c *fiber.Ctx) error {
	out, err := h.uc.ListBySupplier(c.Params("supplierId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar condiciones de un vínculo producto-proveedor
// @Tags         product-suppliers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del vínculo"
// @Param        body  body  dto.UpdateProductSupplierRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.ProductSupplierResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/product-suppliers/{id} [put]
func (h *ProductSupplierHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateProductSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "vínculo no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar vínculo producto-proveedor
// @Tags         product-suppliers
// @Security     Bearer
// @Param        id  path  string  true  "ID del vínculo"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/product-suppliers/{id} [delete]
func (h *ProductSupplierHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "vínculo no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
