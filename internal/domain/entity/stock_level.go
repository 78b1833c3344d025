package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockLevel es la proyección materializada del saldo de un par
// (producto, bodega). Cumple dos papeles: es la fila que se bloquea con
// SELECT FOR UPDATE para serializar confirmaciones sobre el mismo par, y es
// una lectura optimizada del último BalanceAfter. Nunca es autoritativa:
// el log de stock_moves manda y ReconcileUseCase puede regenerarla.
type StockLevel struct {
	ProductID   string
	WarehouseID string
	Quantity    decimal.Decimal
	UpdatedAt   time.Time
}
