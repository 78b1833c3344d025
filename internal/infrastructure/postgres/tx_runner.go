package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ojas37/Stock-Master/internal/application/ledger"
	"github.com/Ojas37/Stock-Master/internal/domain"
	"github.com/Ojas37/Stock-Master/internal/domain/repository"
)

var _ ledger.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL. Es la
// frontera de atomicidad del motor del ledger: el callback recibe
// repositorios atados a la tx y o todo se commitea o todo se revierte.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Fallas de serialización y deadlocks salen como
// ErrConcurrencyConflict (reintentar la confirmación completa).
func (r *TxRunner) Run(ctx context.Context, fn func(
	opRepo repository.OperationRepository,
	moveRepo repository.StockMoveRepository,
	levelRepo repository.StockLevelRepository,
	productRepo repository.ProductRepository,
) error) error {
	return r.run(ctx, pgx.TxOptions{}, fn)
}

// RunSerializable es Run con aislamiento SERIALIZABLE. La reconciliación
// agrega el log sin tomar los locks de fila del camino de confirmación; el
// aislamiento es lo que impide que una confirmación concurrente se cuele
// entre la suma y el UPDATE de reparación.
func (r *TxRunner) RunSerializable(ctx context.Context, fn func(
	opRepo repository.OperationRepository,
	moveRepo repository.StockMoveRepository,
	levelRepo repository.StockLevelRepository,
	productRepo repository.ProductRepository,
) error) error {
	return r.run(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable}, fn)
}

func (r *TxRunner) run(ctx context.Context, opts pgx.TxOptions, fn func(
	opRepo repository.OperationRepository,
	moveRepo repository.StockMoveRepository,
	levelRepo repository.StockLevelRepository,
	productRepo repository.ProductRepository,
) error) error {
	tx, err := r.pool.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	opRepo := NewOperationRepository(tx)
	moveRepo := NewStockMoveRepository(tx)
	levelRepo := NewStockLevelRepository(tx)
	productRepo := NewProductRepository(tx)

	if err := fn(opRepo, moveRepo, levelRepo, productRepo); err != nil {
		if isSerializationFailure(err) {
			return domain.ErrConcurrencyConflict
		}
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		if isSerializationFailure(err) {
			return domain.ErrConcurrencyConflict
		}
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
