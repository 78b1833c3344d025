// Package analytics contiene los casos de uso read-only del dashboard y de
// la vista del libro de stock. Consumidores del motor del ledger, nunca
// mutadores.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/Ojas37/Stock-Master/internal/application/dto"
	"github.com/Ojas37/Stock-Master/internal/domain/repository"
)

const defaultRecentOperations = 10

// DashboardUseCase genera los KPIs del inventario y los listados de
// actividad reciente. Fuente de datos: AnalyticsRepository (consultas
// read-only); no accede directamente a las tablas.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetSummary construye el resumen de KPIs. El rango de fechas (opcional)
// solo acota el conteo de operaciones recientes.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, startDate, endDate *time.Time) (*dto.DashboardSummaryDTO, error) {
	summary, err := uc.analyticsRepo.GetSummary(ctx, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("dashboard: resumen: %w", err)
	}
	return &dto.DashboardSummaryDTO{
		TotalProducts:    summary.TotalProducts,
		TotalWarehouses:  summary.TotalWarehouses,
		TotalValue:       summary.TotalValue,
		RecentOperations: summary.RecentOperations,
		LowStockItems:    summary.LowStockItems,
		TotalStock:       summary.TotalStock,
	}, nil
}

// GetRecentOperations lista las últimas operaciones con nombres resueltos.
func (uc *DashboardUseCase) GetRecentOperations(ctx context.Context, limit int) ([]dto.RecentOperationDTO, error) {
	if limit <= 0 {
		limit = defaultRecentOperations
	}
	ops, err := uc.analyticsRepo.GetRecentOperations(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("dashboard: operaciones recientes: %w", err)
	}
	out := make([]dto.RecentOperationDTO, 0, len(ops))
	for _, op := range ops {
		out = append(out, dto.RecentOperationDTO{
			ID:                op.ID,
			Type:              op.Type,
			Reference:         op.Reference,
			ProductName:       op.ProductName,
			SKU:               op.SKU,
			FromWarehouseName: op.FromWarehouseName,
			ToWarehouseName:   op.ToWarehouseName,
			Quantity:          op.Quantity,
			Status:            op.Status,
			CreatedAt:         op.CreatedAt,
		})
	}
	return out, nil
}

// GetLedgerView devuelve la vista del libro de stock (movimientos con
// nombres de producto/bodega y referencia de la operación dueña).
func (uc *DashboardUseCase) GetLedgerView(ctx context.Context, filter repository.LedgerViewFilter, limit int) ([]dto.LedgerEntryDTO, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	entries, err := uc.analyticsRepo.GetLedgerView(ctx, filter, limit)
	if err != nil {
		return nil, fmt.Errorf("dashboard: vista del ledger: %w", err)
	}
	out := make([]dto.LedgerEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.LedgerEntryDTO{
			ID:            e.ID,
			ProductName:   e.ProductName,
			SKU:           e.SKU,
			WarehouseName: e.WarehouseName,
			Reference:     e.Reference,
			OperationType: e.OperationType,
			MovementType:  e.MovementType,
			Quantity:      e.Quantity,
			BalanceAfter:  e.BalanceAfter,
			CreatedAt:     e.CreatedAt,
		})
	}
	return out, nil
}
