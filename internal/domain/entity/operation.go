package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de operación de inventario.
const (
	OperationTypeReceipt    = "receipt"    // entrada a bodega
	OperationTypeDelivery   = "delivery"   // salida de bodega
	OperationTypeTransfer   = "transfer"   // traslado entre bodegas
	OperationTypeAdjustment = "adjustment" // ajuste con signo (conteo físico)
)

// Estados de operación. Completed es terminal: no hay más transiciones.
const (
	OperationStatusPending   = "pending"
	OperationStatusCompleted = "completed"
)

// Operation representa un movimiento de stock solicitado. La capa de requests
// la crea en pending; la única transición que hace el motor es
// pending -> completed, exactamente una vez.
//
// Quantity es positiva para receipt/delivery/transfer y con signo para
// adjustment. FromWarehouseID/ToWarehouseID son opcionales según el tipo
// (ver ledger.Plan).
type Operation struct {
	ID              string
	Type            string
	Reference       string // documento legible, ej. RECEIPT-1717171717000
	ProductID       string
	FromWarehouseID *string
	ToWarehouseID   *string
	Quantity        decimal.Decimal
	UnitPrice       *decimal.Decimal
	TotalValue      *decimal.Decimal // Quantity * UnitPrice cuando hay precio
	Status          string           // pending, completed
	Reason          string
	Notes           string
	CreatedBy       string
	CreatedAt       time.Time
	CompletedAt     *time.Time
}

// IsCompleted indica si la operación ya fue confirmada.
func (o *Operation) IsCompleted() bool {
	return o.Status == OperationStatusCompleted
}
