package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardSummaryDTO KPIs del dashboard.
type DashboardSummaryDTO struct {
	TotalProducts    int             `json:"total_products"`
	TotalWarehouses  int             `json:"total_warehouses"`
	TotalValue       decimal.Decimal `json:"total_value"`
	RecentOperations int             `json:"recent_operations"`
	LowStockItems    int             `json:"low_stock_items"`
	TotalStock       decimal.Decimal `json:"total_stock"`
}

// RecentOperationDTO operación reciente con nombres resueltos.
type RecentOperationDTO struct {
	ID                string          `json:"id"`
	Type              string          `json:"type"`
	Reference         string          `json:"reference"`
	ProductName       string          `json:"product_name"`
	SKU               string          `json:"sku"`
	FromWarehouseName string          `json:"from_warehouse_name,omitempty"`
	ToWarehouseName   string          `json:"to_warehouse_name,omitempty"`
	Quantity          decimal.Decimal `json:"quantity"`
	Status            string          `json:"status"`
	CreatedAt         time.Time       `json:"created_at"`
}

// LedgerEntryDTO fila de la vista del libro de stock.
type LedgerEntryDTO struct {
	ID            string          `json:"id"`
	ProductName   string          `json:"product_name"`
	SKU           string          `json:"sku"`
	WarehouseName string          `json:"warehouse_name"`
	Reference     string          `json:"reference"`
	OperationType string          `json:"operation_type"`
	MovementType  string          `json:"movement_type"`
	Quantity      decimal.Decimal `json:"quantity"`
	BalanceAfter  decimal.Decimal `json:"balance_after"`
	CreatedAt     time.Time       `json:"created_at"`
}
