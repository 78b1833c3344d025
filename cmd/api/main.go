package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	appanalytics "github.com/Ojas37/Stock-Master/internal/application/analytics"
	appledger "github.com/Ojas37/Stock-Master/internal/application/ledger"
	"github.com/Ojas37/Stock-Master/internal/application/usecase"
	infrapdf "github.com/Ojas37/Stock-Master/internal/infrastructure/pdf"
	"github.com/Ojas37/Stock-Master/internal/infrastructure/postgres"
	httpRouter "github.com/Ojas37/Stock-Master/internal/interfaces/http"
	"github.com/Ojas37/Stock-Master/pkg/config"
	"github.com/Ojas37/Stock-Master/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: os.Getenv("LOG_LEVEL"),
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
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	operationRepo := postgres.NewOperationRepository(pool)
	moveRepo := postgres.NewStockMoveRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	productUC := usecase.NewProductUseCase(productRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	operationUC := usecase.NewOperationUseCase(operationRepo, productRepo, warehouseRepo)

	// Motor del libro mayor: confirmación transaccional, consultas y reconciliación
	confirmUC := appledger.NewConfirmOperationUseCase(txRunner, warehouseRepo)
	queryUC := appledger.NewQueryUseCase(moveRepo)
	reconcileUC := appledger.NewReconcileUseCase(txRunner)

	// PDF: exporte del libro mayor de movimientos
	pdfGenerator := infrapdf.NewMarotoLedgerGenerator()
	pdfUC := appledger.NewPDFUseCase(analyticsRepo, pdfGenerator)

	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo)

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
		Title:    "Stock Master API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   productUC,
		WarehouseUC: warehouseUC,
		OperationUC: operationUC,
		ConfirmUC:   confirmUC,
		QueryUC:     queryUC,
		ReconcileUC: reconcileUC,
		PDFUC:       pdfUC,
		DashboardUC: dashboardUC,
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
