package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de producto.
const (
	ProductStatusActive   = "active"
	ProductStatusInactive = "inactive"
)

// Product representa un producto o SKU del catálogo (multi-bodega).
// TotalStock es un total cacheado derivado del log de movimientos; la fuente
// de verdad es stock_moves y el valor debe ser recomputable en todo momento
// (ver ReconcileUseCase). Solo el motor del ledger lo modifica.
type Product struct {
	ID           string
	SKU          string // código único
	Name         string
	Description  string
	Category     string
	UnitPrice    decimal.Decimal
	ReorderPoint decimal.Decimal // umbral de stock bajo
	TotalStock   decimal.Decimal // cache derivado del log
	Status       string          // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsLowStock indica si el producto está en o por debajo de su punto de reorden.
func (p *Product) IsLowStock() bool {
	return p.TotalStock.LessThanOrEqual(p.ReorderPoint)
}
