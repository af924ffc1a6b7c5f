package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/supermarket-stock-api/internal/application/analytics"
	"github.com/jhoicas/supermarket-stock-api/internal/application/auth"
	"github.com/jhoicas/supermarket-stock-api/internal/application/billing"
	"github.com/jhoicas/supermarket-stock-api/internal/application/ledger"
	"github.com/jhoicas/supermarket-stock-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/supermarket-stock-api/internal/infrastructure/pdf"
	"github.com/jhoicas/supermarket-stock-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/supermarket-stock-api/internal/interfaces/http"
	"github.com/jhoicas/supermarket-stock-api/pkg/config"
	"github.com/jhoicas/supermarket-stock-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	productSupplierRepo := postgres.NewProductSupplierRepository(pool)
	purchaseOrderRepo := postgres.NewPurchaseOrderRepository(pool)
	transactionRepo := postgres.NewTransactionRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Libro de transacciones: mutación de stock + registro en una sola tx de BD
	ledgerUC := ledger.NewUseCase(txRunner, transactionRepo)

	productUC := usecase.NewProductUseCase(productRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	productSupplierUC := usecase.NewProductSupplierUseCase(productSupplierRepo, productRepo, supplierRepo)
	purchaseOrderUC := usecase.NewPurchaseOrderUseCase(purchaseOrderRepo, productRepo, supplierRepo, ledgerUC)

	billUC := billing.NewBillUseCase(transactionRepo, productRepo)
	receiptGenerator := infrapdf.NewMarotoReceiptGenerator(cfg.App.Name)
	receiptPDFUC := billing.NewReceiptPDFUseCase(billUC, receiptGenerator)

	analyticsUC := analytics.NewUseCase(transactionRepo, productRepo, categoryRepo)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Supermarket Stock API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:         productUC,
		CategoryUC:        categoryUC,
		SupplierUC:        supplierUC,
		ProductSupplierUC: productSupplierUC,
		PurchaseOrderUC:   purchaseOrderUC,
		LedgerUC:          ledgerUC,
		BillUC:            billUC,
		ReceiptPDFUC:      receiptPDFUC,
		AnalyticsUC:       analyticsUC,
		AuthUC:            authUC,
		JWTSecret:         cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
