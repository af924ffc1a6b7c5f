package analytics

import (
	"sort"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/supermarket-stock-api/internal/application/dto"
	"github.com/jhoicas/supermarket-stock-api/internal/domain/entity"
	"github.com/jhoicas/supermarket-stock-api/internal/domain/repository"
)

// Ventana fija de la tendencia por producto y horizonte del pedido sugerido.
const trendWindowDays = 30

// Umbral de urgencia: si el stock alcanza para 7 días o menos, pedir hoy.
const reorderLeadDays = 7

// UseCase agrega el historial de transacciones en reportes de lectura.
// Los cuatro reportes recorren el libro completo en cada llamada, sin estado
// incremental ni caché: la ventaja es que el contrato público no cambia si
// más adelante se reemplaza el recorrido por consultas indexadas.
type UseCase struct {
	txRepo       repository.TransactionRepository
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewUseCase construye el agregador de analítica.
func NewUseCase(
	txRepo repository.TransactionRepository,
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
) *UseCase {
	return &UseCase{txRepo: txRepo, productRepo: productRepo, categoryRepo: categoryRepo}
}

// SalesFrequency devuelve una entrada por día calendario desde hace `days`
// días hasta hoy inclusive (days+1 entradas), con conteo y monto de ventas.
// Los días sin ventas aparecen con ceros.
func (uc *UseCase) SalesFrequency(days int) ([]dto.SalesFrequencyDTO, error) {
	end := time.Now()
	start := end.AddDate(0, 0, -days)

	sales, err := uc.txRepo.ListByType(entity.TransactionTypeSale)
	if err != nil {
		return nil, err
	}

	type bucket struct {
		count  int
		amount decimal.Decimal
	}
	byDay := make(map[string]bucket)
	for _, tx := range sales {
		if !tx.TransactionDate.After(start) || !tx.TransactionDate.Before(end) {
			continue
		}
		key := tx.TransactionDate.Format("2006-01-02")
		b := byDay[key]
		b.count++
		b.amount = b.amount.Add(tx.TotalAmount)
		byDay[key] = b
	}

	report := make([]dto.SalesFrequencyDTO, 0, days+1)
	for day := startOfDay(start); !day.After(end); day = day.AddDate(0, 0, 1) {
		key := day.Format("2006-01-02")
		b := byDay[key]
		report = append(report, dto.SalesFrequencyDTO{
			Date:        key,
			Count:       b.count,
			TotalAmount: b.amount,
		})
	}
	return report, nil
}

// ProductSalesTrends calcula, por producto con ventas en los últimos 30 días,
// el promedio diario de venta y el pronóstico de quiebre de stock con su
// sugerencia de pedido. Productos sin ventas en la ventana se excluyen.
// El resultado va ordenado por urgencia (días hasta quiebre ascendente),
// con los pronósticos sin asignar al final.
func (uc *UseCase) ProductSalesTrends() ([]dto.ProductSalesTrendDTO, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	sales, err := uc.txRepo.ListByType(entity.TransactionTypeSale)
	if err != nil {
		return nil, err
	}

	windowStart := time.Now().AddDate(0, 0, -trendWindowDays)
	soldByProduct := make(map[string]int)
	for _, tx := range sales {
		if tx.TransactionDate.After(windowStart) {
			soldByProduct[tx.ProductID] += tx.Quantity
		}
	}

	window := decimal.NewFromInt(trendWindowDays)
	today := time.Now()

	trends := make([]dto.ProductSalesTrendDTO, 0, len(products))
	for _, product := range products {
		totalSold, ok := soldByProduct[product.ID]
		if !ok {
			continue
		}

		trend := dto.ProductSalesTrendDTO{
			ProductID:         product.ID,
			ProductName:       product.Name,
			CurrentStock:      product.CurrentStock,
			TotalSold:         totalSold,
			AverageDailySales: decimal.NewFromInt(int64(totalSold)).Div(window),
		}

		// Con promedio cero o negativo no hay pronóstico posible.
		if trend.AverageDailySales.IsPositive() {
			days := int(decimal.NewFromInt(int64(product.CurrentStock)).Div(trend.AverageDailySales).Floor().IntPart())
			qty := int(trend.AverageDailySales.Mul(window).Ceil().IntPart())

			orderDate := today
			if days > reorderLeadDays {
				orderDate = today.AddDate(0, 0, days-reorderLeadDays)
			}
			orderDateStr := orderDate.Format("2006-01-02")

			trend.DaysUntilStockout = &days
			trend.SuggestedOrderDate = &orderDateStr
			trend.SuggestedOrderQuantity = &qty
		}
		trends = append(trends, trend)
	}

	sort.SliceStable(trends, func(i, j int) bool {
		a, b := trends[i].DaysUntilStockout, trends[j].DaysUntilStockout
		if a == nil {
			return false // sin pronóstico al final
		}
		if b == nil {
			return true
		}
		return *a < *b
	})
	return trends, nil
}

// TopProducts devuelve los `limit` productos con mayores ingresos sobre el
// historial completo de ventas. Reporte de mejor esfuerzo: un producto cuyo
// registro de catálogo ya no existe se omite en silencio, y cualquier fallo
// por producto se registra en el log y se salta sin abortar el reporte.
func (uc *UseCase) TopProducts(limit int) ([]dto.TopProductDTO, error) {
	sales, err := uc.txRepo.ListByType(entity.TransactionTypeSale)
	if err != nil {
		return nil, err
	}

	quantityByProduct := make(map[string]int)
	revenueByProduct := make(map[string]decimal.Decimal)
	var order []string
	for _, tx := range sales {
		if tx.ProductID == "" {
			continue
		}
		if _, seen := quantityByProduct[tx.ProductID]; !seen {
			order = append(order, tx.ProductID)
		}
		quantityByProduct[tx.ProductID] += tx.Quantity
		revenueByProduct[tx.ProductID] = revenueByProduct[tx.ProductID].Add(tx.TotalAmount)
	}

	top := make([]dto.TopProductDTO, 0, len(order))
	for _, productID := range order {
		product, err := uc.productRepo.GetByID(productID)
		if err != nil {
			log.Warn().Err(err).Str("product_id", productID).Msg("top products: producto omitido")
			continue
		}
		if product == nil {
			continue // eliminado del catálogo después de venderse
		}
		top = append(top, dto.TopProductDTO{
			ProductID:    productID,
			ProductName:  product.Name,
			QuantitySold: quantityByProduct[productID],
			Revenue:      revenueByProduct[productID],
			CategoryName: uc.resolveCategoryName(product),
		})
	}

	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Revenue.GreaterThan(top[j].Revenue)
	})
	if len(top) > limit {
		top = top[:limit]
	}
	return top, nil
}

// RevenueAnalytics resume ingresos, utilidad y número de ventas de hoy,
// de los últimos 7 días y de los últimos 30 días. Cada ventana contiene a
// las más cortas. La utilidad se calcula con el precio de compra actual del
// producto (aproximación conocida, no costeo histórico).
func (uc *UseCase) RevenueAnalytics() (*dto.RevenueAnalyticsDTO, error) {
	sales, err := uc.txRepo.ListByType(entity.TransactionTypeSale)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	todayStart := startOfDay(now)
	weekStart := now.AddDate(0, 0, -7)
	monthStart := now.AddDate(0, 0, -30)

	report := &dto.RevenueAnalyticsDTO{}
	for _, tx := range sales {
		if !tx.TransactionDate.After(monthStart) || !tx.TransactionDate.Before(now) {
			continue
		}
		profit := uc.saleProfit(tx)

		report.MonthRevenue = report.MonthRevenue.Add(tx.TotalAmount)
		report.MonthProfit = report.MonthProfit.Add(profit)
		report.MonthTransactions++

		if tx.TransactionDate.After(weekStart) {
			report.WeekRevenue = report.WeekRevenue.Add(tx.TotalAmount)
			report.WeekProfit = report.WeekProfit.Add(profit)
			report.WeekTransactions++
		}
		if tx.TransactionDate.After(todayStart) {
			report.TodayRevenue = report.TodayRevenue.Add(tx.TotalAmount)
			report.TodayProfit = report.TodayProfit.Add(profit)
			report.TodayTransactions++
		}
	}
	return report, nil
}

// saleProfit calcula (precio de venta − precio de compra actual) × cantidad.
// Si el producto ya no existe, la venta no aporta utilidad.
func (uc *UseCase) saleProfit(tx *entity.Transaction) decimal.Decimal {
	product, err := uc.productRepo.GetByID(tx.ProductID)
	if err != nil {
		log.Warn().Err(err).Str("product_id", tx.ProductID).Msg("revenue analytics: utilidad omitida")
		return decimal.Zero
	}
	if product == nil {
		return decimal.Zero
	}
	return tx.UnitPrice.Sub(product.PurchasePrice).Mul(decimal.NewFromInt(int64(tx.Quantity)))
}

// resolveCategoryName devuelve el nombre de la categoría del producto o
// "Uncategorized" cuando no tiene categoría o la búsqueda falla.
func (uc *UseCase) resolveCategoryName(product *entity.Product) string {
	if product.CategoryID == "" {
		return "Uncategorized"
	}
	category, err := uc.categoryRepo.GetByID(product.CategoryID)
	if err != nil || category == nil || category.Name == "" {
		return "Uncategorized"
	}
	return category.Name
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
