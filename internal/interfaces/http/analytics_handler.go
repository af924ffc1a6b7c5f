package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/supermarket-stock-api/internal/application/analytics"
	"github.com/jhoicas/supermarket-stock-api/internal/application/dto"
)

// AnalyticsHandler maneja los reportes agregados (protegido).
// Todos los reportes se calculan sobre el libro de transacciones en el momento
// de la consulta; nada se precalcula ni se cachea.
type AnalyticsHandler struct {
	uc *analytics.UseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *analytics.UseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// SalesFrequency godoc
// @Summary      Histograma diario de ventas
// @Description  Una entrada por día calendario de la ventana, con ceros si no hubo ventas.
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        days  query  int  false  "Días de la ventana"  default(30)
// @Success      200  {array}  dto.SalesFrequencyDTO
// @Router       /api/analytics/sales-frequency [get]
func (h *AnalyticsHandler) SalesFrequency(c *fiber.Ctx) error {
	days := c.QueryInt("days", 30)
	if days <= 0 {
		days = 30
	}
	out, err := h.uc.SalesFrequency(days)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ProductSalesTrends godoc
// @Summary      Tendencia de ventas y pronóstico de quiebre de stock por producto
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProductSalesTrendDTO
// @Router       /api/analytics/product-trends [get]
func (h *AnalyticsHandler) ProductSalesTrends(c *fiber.Ctx) error {
	out, err := h.uc.ProductSalesTrends()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// TopProducts godoc
// @Summary      Ranking de productos por ingresos (historial completo)
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Tamaño del ranking"  default(10)
// @Success      200  {array}  dto.TopProductDTO
// @Router       /api/analytics/top-products [get]
func (h *AnalyticsHandler) TopProducts(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)
	if limit <= 0 {
		limit = 10
	}
	out, err := h.uc.TopProducts(limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Revenue godoc
// @Summary      Ingresos, utilidad y número de ventas por ventana (hoy, 7 y 30 días)
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.RevenueAnalyticsDTO
// @Router       /api/analytics/revenue [get]
func (h *AnalyticsHandler) Revenue(c *fiber.Ctx) error {
	out, err := h.uc.RevenueAnalytics()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
