package domain

import "errors"

// Errores de dominio (sin dependencias externas). El motor del ledger los
// retorna sin envolver; la capa HTTP los mapea a códigos de estado.
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrAlreadyConfirmed    = errors.New("operación ya confirmada")
	ErrInvalidOperation    = errors.New("operación inválida: bodegas requeridas ausentes o contradictorias")
	ErrInvalidQuantity     = errors.New("cantidad inválida para el tipo de operación")
	ErrInsufficientStock   = errors.New("stock insuficiente")
	ErrConcurrencyConflict = errors.New("conflicto de concurrencia: reintentar la confirmación")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrInvalidInput        = errors.New("entrada inválida")
)
