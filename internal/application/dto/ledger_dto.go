package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockMoveResponse entrada del ledger en respuestas.
type StockMoveResponse struct {
	ID           string          `json:"id"`
	ProductID    string          `json:"product_id"`
	WarehouseID  string          `json:"warehouse_id"`
	OperationID  string          `json:"operation_id"`
	Quantity     decimal.Decimal `json:"quantity"`
	MovementType string          `json:"movement_type"`
	BalanceAfter decimal.Decimal `json:"balance_after"`
	CreatedAt    time.Time       `json:"created_at"`
}

// StockMoveListResponse listado de movimientos del ledger.
type StockMoveListResponse struct {
	Moves  []StockMoveResponse `json:"moves"`
	Limit  int                 `json:"limit"`
	Offset int                 `json:"offset"`
}

// BalanceResponse saldo de un par producto+bodega.
type BalanceResponse struct {
	ProductID   string          `json:"product_id"`
	WarehouseID string          `json:"warehouse_id"`
	Balance     decimal.Decimal `json:"balance"`
}

// ReconcileDriftDTO discrepancia detectada entre el cache y el log.
type ReconcileDriftDTO struct {
	ProductID   string          `json:"product_id"`
	WarehouseID string          `json:"warehouse_id,omitempty"` // vacío = total del producto
	Cached      decimal.Decimal `json:"cached"`
	Computed    decimal.Decimal `json:"computed"`
}

// ReconcileReportDTO resultado de la reconciliación cache vs log.
type ReconcileReportDTO struct {
	ProductsChecked int                 `json:"products_checked"`
	Drifts          []ReconcileDriftDTO `json:"drifts"`
	Repaired        bool                `json:"repaired"`
}
