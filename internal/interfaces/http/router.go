package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Ojas37/Stock-Master/internal/application/analytics"
	"github.com/Ojas37/Stock-Master/internal/application/ledger"
	"github.com/Ojas37/Stock-Master/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	WarehouseUC *usecase.WarehouseUseCase
	OperationUC *usecase.OperationUseCase
	ConfirmUC   *ledger.ConfirmOperationUseCase
	QueryUC     *ledger.QueryUseCase
	ReconcileUC *ledger.ReconcileUseCase
	PDFUC       *ledger.PDFUseCase
	DashboardUC *analytics.DashboardUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)

	// Warehouses
	warehouses := api.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)

	// Operations
	operations := api.Group("/operations")
	operationHandler := NewOperationHandler(deps.OperationUC, deps.ConfirmUC)
	operations.Post("/", operationHandler.Create)
	operations.Get("/", operationHandler.List)
	operations.Get("/:id", operationHandler.GetByID)
	operations.Put("/:id/confirm", operationHandler.Confirm)

	// Ledger
	ledgerGroup := api.Group("/ledger")
	ledgerHandler := NewLedgerHandler(deps.QueryUC, deps.ReconcileUC, deps.PDFUC)
	ledgerGroup.Get("/balance", ledgerHandler.GetBalance)
	ledgerGroup.Get("/moves", ledgerHandler.ListMoves)
	ledgerGroup.Post("/reconcile", ledgerHandler.Reconcile)
	ledgerGroup.Get("/export.pdf", ledgerHandler.ExportPDF)

	// Dashboard
	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.Summary)
	dashboard.Get("/recent-operations", dashboardHandler.RecentOperations)
	dashboard.Get("/stock-ledger", dashboardHandler.StockLedger)
}
