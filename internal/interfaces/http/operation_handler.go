package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Ojas37/Stock-Master/internal/application/dto"
	"github.com/Ojas37/Stock-Master/internal/application/ledger"
	"github.com/Ojas37/Stock-Master/internal/application/usecase"
	"github.com/Ojas37/Stock-Master/internal/domain/repository"
)

// OperationHandler maneja las peticiones HTTP de operaciones: creación en
// pending, listado y la confirmación que delega en el motor del ledger.
type OperationHandler struct {
	operationUC *usecase.OperationUseCase
	confirmUC   *ledger.ConfirmOperationUseCase
}

// NewOperationHandler construye el handler.
func NewOperationHandler(operationUC *usecase.OperationUseCase, confirmUC *ledger.ConfirmOperationUseCase) *OperationHandler {
	return &OperationHandler{operationUC: operationUC, confirmUC: confirmUC}
}

// Create POST /api/operations — crea una operación en estado pending.
func (h *OperationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOperationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	op, err := h.operationUC.Create(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "operation": op})
}

// List GET /api/operations — lista con filtros de tipo, estado y fechas.
func (h *OperationHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	page.DefaultPage()

	filter := repository.OperationFilter{
		Type:   c.Query("type"),
		Status: c.Query("status"),
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

	resp, err := h.operationUC.List(filter, page.Limit, page.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(resp)
}

// GetByID GET /api/operations/:id.
func (h *OperationHandler) GetByID(c *fiber.Ctx) error {
	op, err := h.operationUC.GetByID(c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	if op == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "operación no encontrada"})
	}
	return c.JSON(fiber.Map{"success": true, "operation": op})
}

// Confirm PUT /api/operations/:id/confirm — el único punto de entrada
// mutante del ledger.
func (h *OperationHandler) Confirm(c *fiber.Ctx) error {
	op, err := h.confirmUC.Confirm(c.Context(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.ConfirmResponse{
		Success:   true,
		Reference: op.Reference,
		Message:   "operación confirmada y stock actualizado",
	})
}
