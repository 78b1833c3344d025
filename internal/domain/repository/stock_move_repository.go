package repository

import (
	"github.com/shopspring/decimal"

	"github.com/Ojas37/Stock-Master/internal/domain/entity"
)

// MoveFilter filtros para listar movimientos del ledger.
type MoveFilter struct {
	ProductID   string
	WarehouseID string
	OperationID string
}

// ProductBalance saldo agregado de un producto (suma de deltas del log).
type ProductBalance struct {
	ProductID string
	Balance   decimal.Decimal
}

// PairBalance saldo de un par (producto, bodega) según el log.
type PairBalance struct {
	ProductID   string
	WarehouseID string
	Balance     decimal.Decimal
}

// StockMoveRepository define el puerto del log de movimientos. El log es
// append-only: no hay Update ni Delete.
type StockMoveRepository interface {
	Append(move *entity.StockMove) error
	// SumDeltas devuelve la suma con signo de todos los deltas del par
	// (+quantity para in, -quantity para out), 0 si no hay movimientos.
	SumDeltas(productID, warehouseID string) (decimal.Decimal, error)
	// List devuelve movimientos filtrados, ordenados por fecha de creación
	// (ascending=true para reconstrucción del ledger, false para vistas de
	// actividad reciente).
	List(filter MoveFilter, ascending bool, limit, offset int) ([]*entity.StockMove, error)
	// SumDeltasByProduct agrega el log por producto (reconciliación).
	SumDeltasByProduct() ([]ProductBalance, error)
	// SumDeltasByPair agrega el log por par producto+bodega (reconciliación).
	SumDeltasByPair() ([]PairBalance, error)
}
