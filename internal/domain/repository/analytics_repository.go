package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SummaryResult resultado crudo de las consultas de KPIs del dashboard.
type SummaryResult struct {
	TotalProducts    int             // productos activos
	TotalWarehouses  int             // bodegas activas
	TotalValue       decimal.Decimal // SUM(total_stock * unit_price)
	RecentOperations int             // operaciones en el rango (o todas)
	LowStockItems    int             // total_stock <= reorder_point
	TotalStock       decimal.Decimal // SUM(total_stock)
}

// OperationOverview operación con nombres resueltos para listados.
type OperationOverview struct {
	ID                string
	Type              string
	Reference         string
	ProductID         string
	ProductName       string
	SKU               string
	FromWarehouseName string
	ToWarehouseName   string
	Quantity          decimal.Decimal
	Status            string
	CreatedAt         time.Time
}

// LedgerEntry movimiento del ledger con nombres resueltos para la vista
// del libro de stock.
type LedgerEntry struct {
	ID            string
	ProductID     string
	ProductName   string
	SKU           string
	WarehouseID   string
	WarehouseName string
	Reference     string // referencia de la operación dueña
	OperationType string
	MovementType  string
	Quantity      decimal.Decimal
	BalanceAfter  decimal.Decimal
	CreatedAt     time.Time
}

// LedgerViewFilter filtros de la vista del ledger.
type LedgerViewFilter struct {
	ProductID   string
	WarehouseID string
	StartDate   *time.Time
	EndDate     *time.Time
}

// AnalyticsRepository define las consultas read-only del dashboard y de la
// vista del ledger. Las implementaciones nunca modifican datos.
type AnalyticsRepository interface {
	GetSummary(ctx context.Context, startDate, endDate *time.Time) (*SummaryResult, error)
	GetRecentOperations(ctx context.Context, limit int) ([]OperationOverview, error)
	GetLedgerView(ctx context.Context, filter LedgerViewFilter, limit int) ([]LedgerEntry, error)
}
