package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/supermarket-stock-api/internal/application/analytics"
	"github.com/jhoicas/supermarket-stock-api/internal/application/auth"
	"github.com/jhoicas/supermarket-stock-api/internal/application/billing"
	"github.com/jhoicas/supermarket-stock-api/internal/application/ledger"
	"github.com/jhoicas/supermarket-stock-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC         *usecase.ProductUseCase
	CategoryUC        *usecase.CategoryUseCase
	SupplierUC        *usecase.SupplierUseCase
	ProductSupplierUC *usecase.ProductSupplierUseCase
	PurchaseOrderUC   *usecase.PurchaseOrderUseCase
	LedgerUC          *ledger.UseCase
	BillUC            *billing.BillUseCase
	ReceiptPDFUC      *billing.ReceiptPDFUseCase
	AnalyticsUC       *analytics.UseCase
	AuthUC            *auth.AuthUseCase
	JWTSecret         string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/low-stock", productHandler.ListLowStock)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Categories (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Suppliers (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Product-supplier links (protegido)
	productSuppliers := protected.Group("/product-suppliers")
	productSupplierHandler := NewProductSupplierHandler(deps.ProductSupplierUC)
	productSuppliers.Post("/", productSupplierHandler.Create)
	productSuppliers.Get("/product/:productId", productSupplierHandler.ListByProduct)
	productSuppliers.Get("/supplier/:supplierId", productSupplierHandler.ListBySupplier)
	productSuppliers.Put("/:id", productSupplierHandler.Update)
	productSuppliers.Delete("/:id", productSupplierHandler.Delete)

	// Purchase orders (protegido)
	purchaseOrders := protected.Group("/purchase-orders")
	purchaseOrderHandler := NewPurchaseOrderHandler(deps.PurchaseOrderUC)
	purchaseOrders.Post("/", purchaseOrderHandler.Create)
	purchaseOrders.Get("/", purchaseOrderHandler.List)
	purchaseOrders.Get("/upcoming-deliveries", purchaseOrderHandler.ListUpcomingDeliveries)
	purchaseOrders.Get("/pending-payments", purchaseOrderHandler.ListPendingPayments)
	purchaseOrders.Get("/:id", purchaseOrderHandler.GetByID)
	purchaseOrders.Put("/:id", purchaseOrderHandler.Update)
	purchaseOrders.Put("/:id/payment", purchaseOrderHandler.UpdatePaymentStatus)
	purchaseOrders.Delete("/:id", purchaseOrderHandler.Delete)

	// Transactions (protegido): libro de movimientos de inventario
	transactions := protected.Group("/transactions")
	transactionHandler := NewTransactionHandler(deps.LedgerUC)
	transactions.Post("/", transactionHandler.Create)
	transactions.Get("/", transactionHandler.List)
	transactions.Get("/product/:productId", transactionHandler.ListByProduct)
	transactions.Get("/:id", transactionHandler.GetByID)
	transactions.Delete("/:id", transactionHandler.Delete)

	// Bills (protegido): recibos derivados de las ventas
	bills := protected.Group("/bills")
	billHandler := NewBillHandler(deps.BillUC, deps.ReceiptPDFUC)
	bills.Get("/", billHandler.List)
	bills.Get("/generate-id", billHandler.GenerateBillID)
	bills.Get("/:billId/pdf", billHandler.GetReceiptPDF)
	bills.Get("/:billId", billHandler.GetByID)

	// Analytics (protegido)
	analyticsGroup := protected.Group("/analytics")
	analyticsHandler := NewAnalyticsHandler(deps.AnalyticsUC)
	analyticsGroup.Get("/sales-frequency", analyticsHandler.SalesFrequency)
	analyticsGroup.Get("/product-trends", analyticsHandler.ProductSalesTrends)
	analyticsGroup.Get("/top-products", analyticsHandler.TopProducts)
	analyticsGroup.Get("/revenue", analyticsHandler.Revenue)
}
