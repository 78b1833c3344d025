package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Ojas37/Stock-Master/internal/application/dto"
	"github.com/Ojas37/Stock-Master/internal/domain"
)

// respondDomainError mapea la taxonomía de errores de dominio a códigos HTTP.
// Cada clase requiere un tratamiento distinto en la UI: no-op (ya confirmada),
// corregir el formulario (operación/cantidad inválida) o bloquear con
// explicación (stock insuficiente).
func respondDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NOT_FOUND", Message: "operación, producto o bodega no encontrado"})
	case errors.Is(err, domain.ErrAlreadyConfirmed):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "ALREADY_CONFIRMED", Message: "la operación ya fue confirmada"})
	case errors.Is(err, domain.ErrInvalidOperation):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_OPERATION", Message: "bodegas requeridas ausentes o contradictorias para el tipo"})
	case errors.Is(err, domain.ErrInvalidQuantity):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_QUANTITY", Message: "cantidad inválida para el tipo de operación"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente en la bodega de origen"})
	case errors.Is(err, domain.ErrConcurrencyConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "CONCURRENCY_CONFLICT", Message: "conflicto de concurrencia, reintentar la confirmación"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "DUPLICATE", Message: "recurso duplicado"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "datos inválidos"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error()})
	}
}
