package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Ojas37/Stock-Master/internal/application/analytics"
	"github.com/Ojas37/Stock-Master/internal/application/dto"
	"github.com/Ojas37/Stock-Master/internal/domain/repository"
)

// DashboardHandler endpoints read-only del dashboard.
type DashboardHandler struct {
	dashboardUC *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(dashboardUC *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{dashboardUC: dashboardUC}
}

// Summary GET /api/dashboard/summary — KPIs del inventario.
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	var startDate, endDate *time.Time
	if v := c.Query("start_date"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "start_date inválida (RFC3339)"})
		}
		startDate = &t
	}
	if v := c.Query("end_date"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "end_date inválida (RFC3339)"})
		}
		endDate = &t
	}
	summary, err := h.dashboardUC.GetSummary(c.Context(), startDate, endDate)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "summary": summary})
}

// RecentOperations GET /api/dashboard/recent-operations.
func (h *DashboardHandler) RecentOperations(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)
	ops, err := h.dashboardUC.GetRecentOperations(c.Context(), limit)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "operations": ops})
}

// StockLedger GET /api/dashboard/stock-ledger — vista del libro de stock
// con nombres resueltos.
func (h *DashboardHandler) StockLedger(c *fiber.Ctx) error {
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
	entries, err := h.dashboardUC.GetLedgerView(c.Context(), filter, c.QueryInt("limit", 100))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "stock_moves": entries})
}
