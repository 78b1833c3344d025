package ledger

import (
	"context"

	"github.com/Ojas37/Stock-Master/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza la atomicidad del motor del ledger:
// o aterriza el conjunto completo de mutaciones (movimientos + total cacheado
// + estado de la operación) o ninguna.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		opRepo repository.OperationRepository,
		moveRepo repository.StockMoveRepository,
		levelRepo repository.StockLevelRepository,
		productRepo repository.ProductRepository,
	) error) error
	// RunSerializable es igual a Run pero con aislamiento SERIALIZABLE.
	// Lo usa la reconciliación: sus agregaciones sobre el log no toman los
	// locks de fila del camino de confirmación, así que una confirmación
	// concurrente podría colarse entre la suma y la reparación. Bajo
	// SERIALIZABLE ese entrelazado aborta una de las dos transacciones con
	// ErrConcurrencyConflict y el llamador reintenta.
	RunSerializable(ctx context.Context, fn func(
		opRepo repository.OperationRepository,
		moveRepo repository.StockMoveRepository,
		levelRepo repository.StockLevelRepository,
		productRepo repository.ProductRepository,
	) error) error
}
