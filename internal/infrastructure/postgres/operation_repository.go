package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Ojas37/Stock-Master/internal/domain"
	"github.com/Ojas37/Stock-Master/internal/domain/entity"
	"github.com/Ojas37/Stock-Master/internal/domain/repository"
)

var _ repository.OperationRepository = (*OperationRepo)(nil)

const operationColumns = `id, type, reference, product_id, from_warehouse_id, to_warehouse_id,
		quantity, unit_price, total_value, status, reason, notes, created_by, created_at, completed_at`

// OperationRepo implementación del puerto OperationRepository sobre
// PostgreSQL (usable con pool o tx).
type OperationRepo struct {
	q Querier
}

// NewOperationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOperationRepository(q Querier) *OperationRepo {
	return &OperationRepo{q: q}
}

// Create persiste una operación (siempre llega en pending).
func (r *OperationRepo) Create(op *entity.Operation) error {
	query := `
		INSERT INTO operations (` + operationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		op.ID, op.Type, op.Reference, op.ProductID, op.FromWarehouseID, op.ToWarehouseID,
		op.Quantity, op.UnitPrice, op.TotalValue, op.Status, nullIfEmpty(op.Reason),
		nullIfEmpty(op.Notes), nullIfEmpty(op.CreatedBy), op.CreatedAt, op.CompletedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create operation: %w", err)
	}
	return nil
}

// GetByID obtiene una operación; nil sin error si no existe.
func (r *OperationRepo) GetByID(id string) (*entity.Operation, error) {
	query := `SELECT ` + operationColumns + ` FROM operations WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get operation")
}

// GetForUpdate obtiene la operación bloqueando su fila (SELECT FOR UPDATE).
// Una segunda confirmación concurrente de la misma operación espera aquí y
// al despertar ve status=completed.
func (r *OperationRepo) GetForUpdate(id string) (*entity.Operation, error) {
	query := `SELECT ` + operationColumns + ` FROM operations WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get operation for update")
}

// MarkCompleted fija status=completed y completed_at. Solo transiciona desde
// pending; la cláusula WHERE es el último guarda contra doble aplicación.
func (r *OperationRepo) MarkCompleted(id string, completedAt time.Time) error {
	query := `
		UPDATE operations SET status = $2, completed_at = $3
		WHERE id = $1 AND status = $4`
	tag, err := r.q.Exec(context.Background(), query,
		id, entity.OperationStatusCompleted, completedAt, entity.OperationStatusPending,
	)
	if err != nil {
		return fmt.Errorf("mark operation completed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAlreadyConfirmed
	}
	return nil
}

// List lista operaciones con filtros opcionales, más recientes primero.
func (r *OperationRepo) List(filter repository.OperationFilter, limit, offset int) ([]*entity.Operation, error) {
	query := `SELECT ` + operationColumns + ` FROM operations WHERE 1=1`
	args := []any{}
	pos := 1
	if filter.Type != "" {
		query += fmt.Sprintf(" AND type = $%d", pos)
		args = append(args, filter.Type)
		pos++
	}
	if filter.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", pos)
		args = append(args, filter.Status)
		pos++
	}
	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND created_at >= $%d", pos)
		args = append(args, *filter.StartDate)
		pos++
	}
	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND created_at <= $%d", pos)
		args = append(args, *filter.EndDate)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list operations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Operation
	for rows.Next() {
		op, err := scanOperation(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, op)
	}
	return list, rows.Err()
}

func (r *OperationRepo) scanOne(row pgx.Row, opName string) (*entity.Operation, error) {
	op, err := scanOperation(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", opName, err)
	}
	return op, nil
}

// scanOperation escanea una fila de operations (pgx.Row o pgx.Rows).
func scanOperation(row pgx.Row) (*entity.Operation, error) {
	var op entity.Operation
	var reason, notes, createdBy *string
	err := row.Scan(
		&op.ID, &op.Type, &op.Reference, &op.ProductID, &op.FromWarehouseID, &op.ToWarehouseID,
		&op.Quantity, &op.UnitPrice, &op.TotalValue, &op.Status, &reason,
		&notes, &createdBy, &op.CreatedAt, &op.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	if reason != nil {
		op.Reason = *reason
	}
	if notes != nil {
		op.Notes = *notes
	}
	if createdBy != nil {
		op.CreatedBy = *createdBy
	}
	return &op, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
