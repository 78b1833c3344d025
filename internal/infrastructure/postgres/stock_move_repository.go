package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Ojas37/Stock-Master/internal/domain/entity"
	"github.com/Ojas37/Stock-Master/internal/domain/repository"
)

var _ repository.StockMoveRepository = (*StockMoveRepo)(nil)

// deltaExpr delta con signo de un movimiento: +quantity para in, -quantity
// para out. Misma expresión en todas las agregaciones para que el saldo
// sumado y el BalanceAfter snapshotteado nunca diverjan.
const deltaExpr = `CASE WHEN movement_type = 'in' THEN quantity ELSE -quantity END`

// StockMoveRepo implementación del log de movimientos sobre PostgreSQL.
// Append-only: no expone Update ni Delete.
type StockMoveRepo struct {
	q Querier
}

// NewStockMoveRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMoveRepository(q Querier) *StockMoveRepo {
	return &StockMoveRepo{q: q}
}

// Append agrega una entrada inmutable al ledger.
func (r *StockMoveRepo) Append(move *entity.StockMove) error {
	query := `
		INSERT INTO stock_moves (id, product_id, warehouse_id, operation_id, quantity, movement_type, balance_after, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		move.ID, move.ProductID, move.WarehouseID, move.OperationID,
		move.Quantity, move.MovementType, move.BalanceAfter, move.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("append stock move: %w", err)
	}
	return nil
}

// SumDeltas devuelve la suma con signo de los deltas del par, 0 si no hay
// movimientos.
func (r *StockMoveRepo) SumDeltas(productID, warehouseID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(` + deltaExpr + `), 0)
		FROM stock_moves WHERE product_id = $1 AND warehouse_id = $2`
	var balance decimal.Decimal
	err := r.q.QueryRow(context.Background(), query, productID, warehouseID).Scan(&balance)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum deltas: %w", err)
	}
	return balance, nil
}

// List devuelve movimientos filtrados ordenados por fecha de creación.
func (r *StockMoveRepo) List(filter repository.MoveFilter, ascending bool, limit, offset int) ([]*entity.StockMove, error) {
	query := `
		SELECT id, product_id, warehouse_id, operation_id, quantity, movement_type, balance_after, created_at
		FROM stock_moves WHERE 1=1`
	args := []any{}
	pos := 1
	if filter.ProductID != "" {
		query += fmt.Sprintf(" AND product_id = $%d", pos)
		args = append(args, filter.ProductID)
		pos++
	}
	if filter.WarehouseID != "" {
		query += fmt.Sprintf(" AND warehouse_id = $%d", pos)
		args = append(args, filter.WarehouseID)
		pos++
	}
	if filter.OperationID != "" {
		query += fmt.Sprintf(" AND operation_id = $%d", pos)
		args = append(args, filter.OperationID)
		pos++
	}
	order := "DESC"
	if ascending {
		order = "ASC"
	}
	query += fmt.Sprintf(" ORDER BY created_at %s, id %s LIMIT $%d OFFSET $%d", order, order, pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock moves: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMove
	for rows.Next() {
		var m entity.StockMove
		if err := rows.Scan(&m.ID, &m.ProductID, &m.WarehouseID, &m.OperationID,
			&m.Quantity, &m.MovementType, &m.BalanceAfter, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock move: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// SumDeltasByProduct agrega todo el log por producto (reconciliación).
func (r *StockMoveRepo) SumDeltasByProduct() ([]repository.ProductBalance, error) {
	query := `
		SELECT product_id, COALESCE(SUM(` + deltaExpr + `), 0)
		FROM stock_moves GROUP BY product_id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("sum deltas by product: %w", err)
	}
	defer rows.Close()
	var list []repository.ProductBalance
	for rows.Next() {
		var pb repository.ProductBalance
		if err := rows.Scan(&pb.ProductID, &pb.Balance); err != nil {
			return nil, fmt.Errorf("scan product balance: %w", err)
		}
		list = append(list, pb)
	}
	return list, rows.Err()
}

// SumDeltasByPair agrega todo el log por par producto+bodega (reconciliación).
func (r *StockMoveRepo) SumDeltasByPair() ([]repository.PairBalance, error) {
	query := `
		SELECT product_id, warehouse_id, COALESCE(SUM(` + deltaExpr + `), 0)
		FROM stock_moves GROUP BY product_id, warehouse_id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("sum deltas by pair: %w", err)
	}
	defer rows.Close()
	var list []repository.PairBalance
	for rows.Next() {
		var pb repository.PairBalance
		if err := rows.Scan(&pb.ProductID, &pb.WarehouseID, &pb.Balance); err != nil {
			return nil, fmt.Errorf("scan pair balance: %w", err)
		}
		list = append(list, pb)
	}
	return list, rows.Err()
}
