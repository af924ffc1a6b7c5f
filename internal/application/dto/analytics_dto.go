package dto

import "github.com/shopspring/decimal"

// ── Frecuencia de ventas ──────────────────────────────────────────────────────

// SalesFrequencyDTO punto diario del histograma de ventas.
// Siempre hay una entrada por día calendario de la ventana, con ceros si no hubo ventas.
type SalesFrequencyDTO struct {
	Date        string          `json:"date"` // YYYY-MM-DD
	Count       int             `json:"count"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// ── Tendencia por producto ────────────────────────────────────────────────────

// ProductSalesTrendDTO tendencia de ventas y pronóstico de quiebre de stock
// sobre una ventana fija de 30 días. Los campos de pronóstico son punteros:
// quedan sin asignar cuando no hay promedio de venta.
type ProductSalesTrendDTO struct {
	ProductID              string          `json:"product_id"`
	ProductName            string          `json:"product_name"`
	CurrentStock           int             `json:"current_stock"`
	TotalSold              int             `json:"total_sold"`                        // unidades vendidas en 30 días
	AverageDailySales      decimal.Decimal `json:"average_daily_sales"`               // TotalSold / 30.0 (denominador fijo)
	DaysUntilStockout      *int            `json:"days_until_stockout,omitempty"`     // floor(CurrentStock / promedio)
	SuggestedOrderDate     *string         `json:"suggested_order_date,omitempty"`    // YYYY-MM-DD
	SuggestedOrderQuantity *int            `json:"suggested_order_quantity,omitempty"` // ceil(promedio × 30)
}

// ── Top productos ─────────────────────────────────────────────────────────────

// TopProductDTO fila del ranking de productos por ingresos (historial completo de ventas).
type TopProductDTO struct {
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	QuantitySold int             `json:"quantity_sold"`
	Revenue      decimal.Decimal `json:"revenue"`
	CategoryName string          `json:"category_name"` // "Uncategorized" si no se puede resolver
}

// ── Ingresos por ventana ──────────────────────────────────────────────────────

// RevenueAnalyticsDTO resumen de ingresos, utilidad y número de ventas por ventana:
// hoy (desde medianoche), semana (7 días hacia atrás) y mes (30 días hacia atrás).
// La utilidad usa el precio de compra actual del producto, no el vigente al vender.
type RevenueAnalyticsDTO struct {
	TodayRevenue      decimal.Decimal `json:"today_revenue"`
	WeekRevenue       decimal.Decimal `json:"week_revenue"`
	MonthRevenue      decimal.Decimal `json:"month_revenue"`
	TodayProfit       decimal.Decimal `json:"today_profit"`
	WeekProfit        decimal.Decimal `json:"week_profit"`
	MonthProfit       decimal.Decimal `json:"month_profit"`
	TodayTransactions int             `json:"today_transactions"`
	WeekTransactions  int             `json:"week_transactions"`
	MonthTransactions int             `json:"month_transactions"`
}
