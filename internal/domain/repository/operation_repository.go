package repository

import (
	"time"

	"github.com/Ojas37/Stock-Master/internal/domain/entity"
)

// OperationFilter filtros para listar operaciones.
type OperationFilter struct {
	Type      string
	Status    string
	StartDate *time.Time
	EndDate   *time.Time
}

// OperationRepository define el puerto de persistencia para Operation.
type OperationRepository interface {
	Create(op *entity.Operation) error
	GetByID(id string) (*entity.Operation, error)
	// GetForUpdate obtiene la operación bloqueando su fila (SELECT FOR UPDATE)
	// para serializar confirmaciones concurrentes de la misma operación.
	// Devuelve nil sin error si no existe.
	GetForUpdate(id string) (*entity.Operation, error)
	// MarkCompleted fija status=completed y completed_at. Solo el motor del
	// ledger la invoca, dentro de la transacción de confirmación.
	MarkCompleted(id string, completedAt time.Time) error
	List(filter OperationFilter, limit, offset int) ([]*entity.Operation, error)
}
