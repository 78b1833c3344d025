package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Ojas37/Stock-Master/internal/domain/entity"
	"github.com/Ojas37/Stock-Master/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas read-only del dashboard y de la vista del ledger.
// Nunca modifica datos.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador (normalmente con el pool).
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// GetSummary calcula los KPIs del dashboard en una sola consulta con
// subqueries. El rango de fechas solo acota el conteo de operaciones.
func (r *AnalyticsRepo) GetSummary(ctx context.Context, startDate, endDate *time.Time) (*repository.SummaryResult, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM products WHERE status = $1),
			(SELECT COUNT(*) FROM warehouses WHERE status = $1),
			(SELECT COALESCE(SUM(total_stock * unit_price), 0) FROM products),
			(SELECT COUNT(*) FROM operations
			 WHERE ($2::timestamptz IS NULL OR created_at >= $2)
			   AND ($3::timestamptz IS NULL OR created_at <= $3)),
			(SELECT COUNT(*) FROM products WHERE total_stock <= reorder_point),
			(SELECT COALESCE(SUM(total_stock), 0) FROM products)`
	var s repository.SummaryResult
	err := r.q.QueryRow(ctx, query, entity.ProductStatusActive, startDate, endDate).Scan(
		&s.TotalProducts, &s.TotalWarehouses, &s.TotalValue,
		&s.RecentOperations, &s.LowStockItems, &s.TotalStock,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard summary: %w", err)
	}
	return &s, nil
}

// GetRecentOperations lista las últimas operaciones con nombres resueltos.
func (r *AnalyticsRepo) GetRecentOperations(ctx context.Context, limit int) ([]repository.OperationOverview, error) {
	query := `
		SELECT o.id, o.type, o.reference, o.product_id,
		       COALESCE(p.name, ''), COALESCE(p.sku, ''),
		       COALESCE(w1.name, ''), COALESCE(w2.name, ''),
		       o.quantity, o.status, o.created_at
		FROM operations o
		LEFT JOIN products p ON o.product_id = p.id
		LEFT JOIN warehouses w1 ON o.from_warehouse_id = w1.id
		LEFT JOIN warehouses w2 ON o.to_warehouse_id = w2.id
		ORDER BY o.created_at DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("recent operations: %w", err)
	}
	defer rows.Close()
	var list []repository.OperationOverview
	for rows.Next() {
		var ov repository.OperationOverview
		if err := rows.Scan(&ov.ID, &ov.Type, &ov.Reference, &ov.ProductID,
			&ov.ProductName, &ov.SKU, &ov.FromWarehouseName, &ov.ToWarehouseName,
			&ov.Quantity, &ov.Status, &ov.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan recent operation: %w", err)
		}
		list = append(list, ov)
	}
	return list, rows.Err()
}

// GetLedgerView devuelve movimientos con nombres de producto/bodega y la
// referencia de la operación dueña, más recientes primero.
func (r *AnalyticsRepo) GetLedgerView(ctx context.Context, filter repository.LedgerViewFilter, limit int) ([]repository.LedgerEntry, error) {
	query := `
		SELECT sm.id, sm.product_id, p.name, p.sku,
		       sm.warehouse_id, w.name,
		       COALESCE(o.reference, ''), COALESCE(o.type, ''),
		       sm.movement_type, sm.quantity, sm.balance_after, sm.created_at
		FROM stock_moves sm
		JOIN products p ON sm.product_id = p.id
		JOIN warehouses w ON sm.warehouse_id = w.id
		LEFT JOIN operations o ON sm.operation_id = o.id
		WHERE 1=1`
	args := []any{}
	pos := 1
	if filter.ProductID != "" {
		query += fmt.Sprintf(" AND sm.product_id = $%d", pos)
		args = append(args, filter.ProductID)
		pos++
	}
	if filter.WarehouseID != "" {
		query += fmt.Sprintf(" AND sm.warehouse_id = $%d", pos)
		args = append(args, filter.WarehouseID)
		pos++
	}
	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND sm.created_at >= $%d", pos)
		args = append(args, *filter.StartDate)
		pos++
	}
	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND sm.created_at <= $%d", pos)
		args = append(args, *filter.EndDate)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY sm.created_at DESC LIMIT $%d", pos)
	args = append(args, limit)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ledger view: %w", err)
	}
	defer rows.Close()
	var list []repository.LedgerEntry
	for rows.Next() {
		var e repository.LedgerEntry
		if err := rows.Scan(&e.ID, &e.ProductID, &e.ProductName, &e.SKU,
			&e.WarehouseID, &e.WarehouseName, &e.Reference, &e.OperationType,
			&e.MovementType, &e.Quantity, &e.BalanceAfter, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}
