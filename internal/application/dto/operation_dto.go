package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOperationRequest body para POST /api/operations.
// from_warehouse_id/to_warehouse_id según el tipo: receipt usa to, delivery
// usa from, transfer ambas, adjustment exactamente una.
type CreateOperationRequest struct {
	Type            string           `json:"type"`
	ProductID       string           `json:"product_id"`
	FromWarehouseID *string          `json:"from_warehouse_id,omitempty"`
	ToWarehouseID   *string          `json:"to_warehouse_id,omitempty"`
	Quantity        decimal.Decimal  `json:"quantity"`
	UnitPrice       *decimal.Decimal `json:"unit_price,omitempty"`
	Reason          string           `json:"reason,omitempty"`
	Notes           string           `json:"notes,omitempty"`
	CreatedBy       string           `json:"created_by,omitempty"`
}

// OperationResponse representación de una operación en respuestas.
type OperationResponse struct {
	ID              string           `json:"id"`
	Type            string           `json:"type"`
	Reference       string           `json:"reference"`
	ProductID       string           `json:"product_id"`
	FromWarehouseID *string          `json:"from_warehouse_id,omitempty"`
	ToWarehouseID   *string          `json:"to_warehouse_id,omitempty"`
	Quantity        decimal.Decimal  `json:"quantity"`
	UnitPrice       *decimal.Decimal `json:"unit_price,omitempty"`
	TotalValue      *decimal.Decimal `json:"total_value,omitempty"`
	Status          string           `json:"status"`
	Reason          string           `json:"reason,omitempty"`
	Notes           string           `json:"notes,omitempty"`
	CreatedBy       string           `json:"created_by,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	CompletedAt     *time.Time       `json:"completed_at,omitempty"`
}

// OperationListResponse listado paginado de operaciones.
type OperationListResponse struct {
	Operations []OperationResponse `json:"operations"`
	Limit      int                 `json:"limit"`
	Offset     int                 `json:"offset"`
}

// ConfirmResponse resultado de confirmar una operación.
type ConfirmResponse struct {
	Success   bool   `json:"success"`
	Reference string `json:"reference"`
	Message   string `json:"message"`
}
