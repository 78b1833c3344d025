package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Ojas37/Stock-Master/internal/application/dto"
	"github.com/Ojas37/Stock-Master/internal/application/ledger"
	"github.com/Ojas37/Stock-Master/internal/domain/repository"
)

// LedgerHandler consultas read-only del ledger, la reconciliación de caches
// y la exportación PDF.
type LedgerHandler struct {
	queryUC     *ledger.QueryUseCase
	reconcileUC *ledger.ReconcileUseCase
	pdfUC       *ledger.PDFUseCase
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(queryUC *ledger.QueryUseCase, reconcileUC *ledger.ReconcileUseCase, pdfUC *ledger.PDFUseCase) *LedgerHandler {
	return &LedgerHandler{queryUC: queryUC, reconcileUC: reconcileUC, pdfUC: pdfUC}
}

// GetBalance GET /api/ledger/balance — saldo de un par producto+bodega.
func (h *LedgerHandler) GetBalance(c *fiber.Ctx) error {
	productID := c.Query("product_id")
	warehouseID := c.Query("warehouse_id")
	balance, err := h.queryUC.BalanceOf(c.Context(), productID, warehouseID)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.BalanceResponse{ProductID: productID, WarehouseID: warehouseID, Balance: balance})
}

// ListMoves GET /api/ledger/moves — movimientos filtrados y ordenados.
// order=asc reconstruye el ledger; order=desc (default) muestra actividad
// reciente.
func (h *LedgerHandler) ListMoves(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	page.DefaultPage()

	filter := repository.MoveFilter{
		ProductID:   c.Query("product_id"),
		WarehouseID: c.Query("warehouse_id"),
		OperationID: c.Query("operation_id"),
	}
	ascending := c.Query("order") == "asc"

	moves, err := h.queryUC.ListMoves(c.Context(), filter, ascending, page.Limit, page.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	resp := dto.StockMoveListResponse{
		Moves:  make([]dto.StockMoveResponse, 0, len(moves)),
		Limit:  page.Limit,
		Offset: page.Offset,
	}
	for _, m := range moves {
		resp.Moves = append(resp.Moves, dto.StockMoveResponse{
			ID:           m.ID,
			ProductID:    m.ProductID,
			WarehouseID:  m.WarehouseID,
			OperationID:  m.OperationID,
			Quantity:     m.Quantity,
			MovementType: m.MovementType,
			BalanceAfter: m.BalanceAfter,
			CreatedAt:    m.CreatedAt,
		})
	}
	return c.JSON(resp)
}

// Reconcile POST /api/ledger/reconcile — audita el cache contra el log.
// repair=true corrige las discrepancias encontradas.
func (h *LedgerHandler) Reconcile(c *fiber.Ctx) error {
	repair := c.Query("repair") == "true"
	report, err := h.reconcileUC.Run(c.Context(), repair)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(report)
}

// ExportPDF GET /api/ledger/export.pdf — reporte PDF del libro de stock.
func (h *LedgerHandler) ExportPDF(c *fiber.Ctx) error {
	filter := repository.LedgerViewFilter{
		ProductID:   c.Query("product_id"),
		WarehouseID: c.Query("warehouse_id"),
	}
	if v := c.Query("start_date"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "start_date inválida (RFC3339)"})
		}
		filter.StartDate = &t
	}
	if v := c.Query("end_date"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "end_date inválida (RFC3339)"})
		}
		filter.EndDate = &t
	}

	pdfBytes, err := h.pdfUC.Export(c.Context(), filter)
	if err != nil {
		return respondDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="stock-ledger.pdf"`)
	return c.Send(pdfBytes)
}
