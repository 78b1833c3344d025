package ledger

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Ojas37/Stock-Master/internal/application/dto"
	"github.com/Ojas37/Stock-Master/internal/domain/entity"
	"github.com/Ojas37/Stock-Master/internal/domain/repository"
)

// ReconcileUseCase es la operación de mantenimiento que audita el cache
// contra el log. El log de stock_moves es la fuente de verdad; tanto
// products.total_stock como stock_levels son proyecciones que deben ser
// recomputables en todo momento. Run las recalcula, reporta las
// discrepancias y, si repair es true, las corrige en la misma transacción.
type ReconcileUseCase struct {
	txRunner TxRunner
}

// NewReconcileUseCase construye el caso de uso.
func NewReconcileUseCase(txRunner TxRunner) *ReconcileUseCase {
	return &ReconcileUseCase{txRunner: txRunner}
}

// Run ejecuta la auditoría. Con repair=false solo reporta. Corre bajo
// SERIALIZABLE: las agregaciones no toman los locks de fila que usa la
// confirmación, y sin ese aislamiento una confirmación concurrente entre la
// suma y el UPDATE de reparación quedaría pisada por un total ya viejo. Un
// ErrConcurrencyConflict aquí significa reintentar la corrida.
func (uc *ReconcileUseCase) Run(ctx context.Context, repair bool) (*dto.ReconcileReportDTO, error) {
	report := &dto.ReconcileReportDTO{Repaired: repair}

	err := uc.txRunner.RunSerializable(ctx, func(
		_ repository.OperationRepository,
		moveRepo repository.StockMoveRepository,
		levelRepo repository.StockLevelRepository,
		productRepo repository.ProductRepository,
	) error {
		// Totales por producto: cache vs suma de deltas de todo el log.
		computed, err := moveRepo.SumDeltasByProduct()
		if err != nil {
			return err
		}
		byProduct := make(map[string]decimal.Decimal, len(computed))
		for _, pb := range computed {
			byProduct[pb.ProductID] = pb.Balance
		}

		products, err := productRepo.List(0, 0) // 0 = sin límite
		if err != nil {
			return err
		}
		report.ProductsChecked = len(products)
		for _, p := range products {
			want := byProduct[p.ID] // cero si el producto no tiene movimientos
			if p.TotalStock.Equal(want) {
				continue
			}
			report.Drifts = append(report.Drifts, dto.ReconcileDriftDTO{
				ProductID: p.ID,
				Cached:    p.TotalStock,
				Computed:  want,
			})
			if repair {
				if err := productRepo.SetTotalStock(p.ID, want); err != nil {
					return err
				}
			}
		}

		// Proyección por par: stock_levels vs suma de deltas del par.
		pairs, err := moveRepo.SumDeltasByPair()
		if err != nil {
			return err
		}
		for _, pb := range pairs {
			level, err := levelRepo.Get(pb.ProductID, pb.WarehouseID)
			if err != nil {
				return err
			}
			if level.Quantity.Equal(pb.Balance) {
				continue
			}
			report.Drifts = append(report.Drifts, dto.ReconcileDriftDTO{
				ProductID:   pb.ProductID,
				WarehouseID: pb.WarehouseID,
				Cached:      level.Quantity,
				Computed:    pb.Balance,
			})
			if repair {
				if err := levelRepo.Upsert(&entity.StockLevel{
					ProductID:   pb.ProductID,
					WarehouseID: pb.WarehouseID,
					Quantity:    pb.Balance,
					UpdatedAt:   level.UpdatedAt,
				}); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}
