package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direcciones de un movimiento en el ledger.
const (
	MovementTypeIn  = "in"
	MovementTypeOut = "out"
)

// StockMove es una entrada inmutable del ledger: un cambio de cantidad en un
// par (producto, bodega). El log es append-only; las correcciones se hacen con
// nuevas operaciones de ajuste, nunca editando o borrando entradas.
//
// Quantity es la magnitud (sin signo); el signo lo da MovementType.
// BalanceAfter es el saldo del par inmediatamente después de este movimiento,
// recomputado desde el log al momento de escribir (snapshot de lectura, nunca
// autoritativo).
type StockMove struct {
	ID           string
	ProductID    string
	WarehouseID  string
	OperationID  string
	Quantity     decimal.Decimal
	MovementType string // in, out
	BalanceAfter decimal.Decimal
	CreatedAt    time.Time
}

// SignedDelta devuelve el delta con signo del movimiento
// (+Quantity para in, -Quantity para out).
func (m *StockMove) SignedDelta() decimal.Decimal {
	if m.MovementType == MovementTypeOut {
		return m.Quantity.Neg()
	}
	return m.Quantity
}
