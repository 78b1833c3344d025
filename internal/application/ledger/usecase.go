// Package ledger implementa el motor del libro de stock: la confirmación
// atómica de operaciones pendientes y las consultas de saldo sobre el log.
package ledger

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Ojas37/Stock-Master/internal/domain"
	"github.com/Ojas37/Stock-Master/internal/domain/entity"
	domledger "github.com/Ojas37/Stock-Master/internal/domain/ledger"
	"github.com/Ojas37/Stock-Master/internal/domain/repository"
	"github.com/Ojas37/Stock-Master/pkg/metrics"
)

// ConfirmOperationUseCase convierte una operación pendiente en una o dos
// entradas inmutables del ledger, actualiza el total cacheado del producto y
// marca la operación como completed. Todo dentro de una sola transacción:
// un observador concurrente nunca ve un estado parcial.
//
// Disciplina de serialización:
//   - la fila de la operación se bloquea con SELECT FOR UPDATE, así una
//     segunda confirmación de la misma operación espera y luego falla con
//     ErrAlreadyConfirmed sin efectos;
//   - la fila de stock_levels de cada par (producto, bodega) se bloquea antes
//     de leer el saldo, así dos confirmaciones sobre el mismo par se
//     serializan; pares distintos avanzan en paralelo;
//   - en transfers las dos filas se bloquean en orden determinista de bodega
//     para evitar deadlocks cruzados.
type ConfirmOperationUseCase struct {
	txRunner      TxRunner
	warehouseRepo repository.WarehouseRepository
}

// NewConfirmOperationUseCase construye el caso de uso.
func NewConfirmOperationUseCase(txRunner TxRunner, warehouseRepo repository.WarehouseRepository) *ConfirmOperationUseCase {
	return &ConfirmOperationUseCase{txRunner: txRunner, warehouseRepo: warehouseRepo}
}

// Confirm confirma la operación indicada. Precondición: existe y está pending.
// Postcondición: movimientos escritos, total del producto actualizado,
// operación completed; o ningún cambio si hay error.
func (uc *ConfirmOperationUseCase) Confirm(ctx context.Context, operationID string) (*entity.Operation, error) {
	start := time.Now()
	var confirmed *entity.Operation

	err := uc.txRunner.Run(ctx, func(
		opRepo repository.OperationRepository,
		moveRepo repository.StockMoveRepository,
		levelRepo repository.StockLevelRepository,
		productRepo repository.ProductRepository,
	) error {
		op, err := opRepo.GetForUpdate(operationID)
		if err != nil {
			return err
		}
		if op == nil {
			return domain.ErrNotFound
		}
		if op.IsCompleted() {
			return domain.ErrAlreadyConfirmed
		}

		// Resolución del tipo a movimientos planeados (validación pura).
		plan, err := domledger.Plan(op)
		if err != nil {
			return err
		}

		product, err := productRepo.GetByID(op.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		for _, mv := range plan.Moves {
			wh, err := uc.warehouseRepo.GetByID(mv.WarehouseID)
			if err != nil {
				return err
			}
			if wh == nil {
				return domain.ErrNotFound
			}
		}

		// Bloquear los pares en orden determinista de bodega.
		if err := lockPairs(levelRepo, op.ProductID, plan.Moves); err != nil {
			return err
		}

		now := time.Now()
		for _, mv := range plan.Moves {
			// Saldo recomputado desde el log con el par ya bloqueado; el
			// snapshot de stock_levels nunca se usa como fuente.
			balance, err := moveRepo.SumDeltas(op.ProductID, mv.WarehouseID)
			if err != nil {
				return err
			}
			newBalance := balance.Add(mv.SignedDelta())
			if mv.MovementType == entity.MovementTypeOut && newBalance.IsNegative() {
				return domain.ErrInsufficientStock
			}
			move := &entity.StockMove{
				ID:           uuid.New().String(),
				ProductID:    op.ProductID,
				WarehouseID:  mv.WarehouseID,
				OperationID:  op.ID,
				Quantity:     mv.Quantity,
				MovementType: mv.MovementType,
				BalanceAfter: newBalance,
				CreatedAt:    now,
			}
			if err := moveRepo.Append(move); err != nil {
				return err
			}
			metrics.StockMovesAppended.Inc()
			if err := levelRepo.Upsert(&entity.StockLevel{
				ProductID:   op.ProductID,
				WarehouseID: mv.WarehouseID,
				Quantity:    newBalance,
				UpdatedAt:   now,
			}); err != nil {
				return err
			}
		}

		// Un transfer no cambia el total del producto: no contar doble.
		if !plan.TotalStockDelta.IsZero() {
			if err := productRepo.AddToTotalStock(op.ProductID, plan.TotalStockDelta); err != nil {
				return err
			}
		}

		if err := opRepo.MarkCompleted(op.ID, now); err != nil {
			return err
		}
		op.Status = entity.OperationStatusCompleted
		op.CompletedAt = &now
		confirmed = op
		return nil
	})

	metrics.ConfirmDuration.Observe(time.Since(start).Seconds())
	metrics.ConfirmationsTotal.WithLabelValues(operationType(confirmed), outcomeLabel(err)).Inc()
	if err != nil {
		return nil, err
	}
	return confirmed, nil
}

// lockPairs bloquea las filas de stock_levels de los pares involucrados en
// orden ascendente de bodega (prevención de deadlocks en transfers cruzados).
func lockPairs(levelRepo repository.StockLevelRepository, productID string, moves []domledger.PlannedMove) error {
	ids := make([]string, 0, len(moves))
	for _, mv := range moves {
		ids = append(ids, mv.WarehouseID)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if _, err := levelRepo.Lock(productID, id); err != nil {
			return err
		}
	}
	return nil
}

func operationType(op *entity.Operation) string {
	if op != nil {
		return op.Type
	}
	return "unknown"
}

func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return "confirmed"
	case errors.Is(err, domain.ErrConcurrencyConflict):
		return "conflict"
	case errors.Is(err, domain.ErrAlreadyConfirmed),
		errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrInvalidOperation),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrNotFound):
		return "rejected"
	default:
		return "error"
	}
}

// QueryUseCase consultas read-only del ledger: saldo por par y listado de
// movimientos. Usa repositorios atados al pool (fuera de transacción).
type QueryUseCase struct {
	moveRepo repository.StockMoveRepository
}

// NewQueryUseCase construye el caso de uso de lectura.
func NewQueryUseCase(moveRepo repository.StockMoveRepository) *QueryUseCase {
	return &QueryUseCase{moveRepo: moveRepo}
}

// BalanceOf devuelve la suma con signo de los deltas del par, 0 si no hay
// movimientos. Consistente con el BalanceAfter del movimiento más reciente.
func (uc *QueryUseCase) BalanceOf(_ context.Context, productID, warehouseID string) (decimal.Decimal, error) {
	if productID == "" || warehouseID == "" {
		return decimal.Zero, domain.ErrInvalidInput
	}
	return uc.moveRepo.SumDeltas(productID, warehouseID)
}

// ListMoves lista movimientos filtrados, ordenados por fecha de creación.
func (uc *QueryUseCase) ListMoves(_ context.Context, filter repository.MoveFilter, ascending bool, limit, offset int) ([]*entity.StockMove, error) {
	return uc.moveRepo.List(filter, ascending, limit, offset)
}
