// Package ledger contiene los servicios de dominio puros del motor de stock:
// la validación de operaciones y su resolución a movimientos planeados.
// No toca persistencia, lo que permite probarlo de forma aislada.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/Ojas37/Stock-Master/internal/domain"
	"github.com/Ojas37/Stock-Master/internal/domain/entity"
)

// PlannedMove es un movimiento resuelto a partir de una operación: bodega
// actuante, dirección y magnitud. La bodega se resuelve una sola vez aquí,
// no ad hoc en el momento de confirmar.
type PlannedMove struct {
	WarehouseID  string
	MovementType string          // entity.MovementTypeIn | entity.MovementTypeOut
	Quantity     decimal.Decimal // magnitud, siempre > 0
}

// SignedDelta devuelve el delta con signo del movimiento planeado.
func (m PlannedMove) SignedDelta() decimal.Decimal {
	if m.MovementType == entity.MovementTypeOut {
		return m.Quantity.Neg()
	}
	return m.Quantity
}

// MovementPlan es el resultado de resolver una operación: uno o dos
// movimientos y el delta que aplica al total cacheado del producto.
// Un transfer produce dos movimientos y delta total cero (el stock cambia de
// lugar, no de total).
type MovementPlan struct {
	Moves           []PlannedMove
	TotalStockDelta decimal.Decimal
}

// Plan valida la operación y la resuelve a su plan de movimientos.
//
// Reglas por tipo:
//   - receipt:    requiere ToWarehouseID; cantidad > 0; un movimiento in.
//   - delivery:   requiere FromWarehouseID; cantidad > 0; un movimiento out.
//   - transfer:   requiere ambas bodegas y distintas; cantidad > 0;
//     out en origen + in en destino.
//   - adjustment: requiere exactamente una bodega poblada (prioridad To);
//     cantidad con signo distinta de cero; dirección según el signo.
//
// Errores: ErrInvalidOperation por bodegas ausentes o contradictorias,
// ErrInvalidQuantity por cantidades fuera de regla. Sin efectos secundarios.
func Plan(op *entity.Operation) (*MovementPlan, error) {
	switch op.Type {
	case entity.OperationTypeReceipt:
		if !has(op.ToWarehouseID) {
			return nil, domain.ErrInvalidOperation
		}
		if !op.Quantity.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidQuantity
		}
		return &MovementPlan{
			Moves: []PlannedMove{
				{WarehouseID: *op.ToWarehouseID, MovementType: entity.MovementTypeIn, Quantity: op.Quantity},
			},
			TotalStockDelta: op.Quantity,
		}, nil

	case entity.OperationTypeDelivery:
		if !has(op.FromWarehouseID) {
			return nil, domain.ErrInvalidOperation
		}
		if !op.Quantity.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidQuantity
		}
		return &MovementPlan{
			Moves: []PlannedMove{
				{WarehouseID: *op.FromWarehouseID, MovementType: entity.MovementTypeOut, Quantity: op.Quantity},
			},
			TotalStockDelta: op.Quantity.Neg(),
		}, nil

	case entity.OperationTypeTransfer:
		if !has(op.FromWarehouseID) || !has(op.ToWarehouseID) || *op.FromWarehouseID == *op.ToWarehouseID {
			return nil, domain.ErrInvalidOperation
		}
		if !op.Quantity.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidQuantity
		}
		return &MovementPlan{
			Moves: []PlannedMove{
				{WarehouseID: *op.FromWarehouseID, MovementType: entity.MovementTypeOut, Quantity: op.Quantity},
				{WarehouseID: *op.ToWarehouseID, MovementType: entity.MovementTypeIn, Quantity: op.Quantity},
			},
			TotalStockDelta: decimal.Zero,
		}, nil

	case entity.OperationTypeAdjustment:
		warehouseID := ""
		switch {
		case has(op.ToWarehouseID):
			warehouseID = *op.ToWarehouseID
		case has(op.FromWarehouseID):
			warehouseID = *op.FromWarehouseID
		default:
			return nil, domain.ErrInvalidOperation
		}
		if op.Quantity.IsZero() {
			return nil, domain.ErrInvalidQuantity
		}
		movementType := entity.MovementTypeIn
		if op.Quantity.IsNegative() {
			movementType = entity.MovementTypeOut
		}
		return &MovementPlan{
			Moves: []PlannedMove{
				{WarehouseID: warehouseID, MovementType: movementType, Quantity: op.Quantity.Abs()},
			},
			TotalStockDelta: op.Quantity,
		}, nil
	}
	return nil, domain.ErrInvalidOperation
}

func has(id *string) bool {
	return id != nil && *id != ""
}
