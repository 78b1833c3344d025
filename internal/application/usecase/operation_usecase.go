package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Ojas37/Stock-Master/internal/application/dto"
	"github.com/Ojas37/Stock-Master/internal/domain"
	"github.com/Ojas37/Stock-Master/internal/domain/entity"
	domledger "github.com/Ojas37/Stock-Master/internal/domain/ledger"
	"github.com/Ojas37/Stock-Master/internal/domain/repository"
)

// OperationUseCase crea operaciones pendientes y las lista. La confirmación
// (pending -> completed) es exclusiva del motor del ledger.
type OperationUseCase struct {
	opRepo        repository.OperationRepository
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
}

// NewOperationUseCase construye el caso de uso.
func NewOperationUseCase(
	opRepo repository.OperationRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
) *OperationUseCase {
	return &OperationUseCase{opRepo: opRepo, productRepo: productRepo, warehouseRepo: warehouseRepo}
}

// Create valida y persiste una operación en estado pending. La validación
// estructural (bodegas requeridas por tipo, regla de cantidad) se hace aquí
// con el mismo gate puro que usa el motor, así una operación mal formada
// nunca llega a existir.
func (uc *OperationUseCase) Create(in dto.CreateOperationRequest) (*dto.OperationResponse, error) {
	now := time.Now()
	op := &entity.Operation{
		ID:              uuid.New().String(),
		Type:            in.Type,
		Reference:       fmt.Sprintf("%s-%d", strings.ToUpper(in.Type), now.UnixMilli()),
		ProductID:       in.ProductID,
		FromWarehouseID: in.FromWarehouseID,
		ToWarehouseID:   in.ToWarehouseID,
		Quantity:        in.Quantity,
		UnitPrice:       in.UnitPrice,
		Status:          entity.OperationStatusPending,
		Reason:          in.Reason,
		Notes:           in.Notes,
		CreatedBy:       in.CreatedBy,
		CreatedAt:       now,
	}
	if in.UnitPrice != nil {
		total := in.Quantity.Mul(*in.UnitPrice)
		op.TotalValue = &total
	}

	if _, err := domledger.Plan(op); err != nil {
		return nil, err
	}

	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	for _, whID := range []*string{in.FromWarehouseID, in.ToWarehouseID} {
		if whID == nil || *whID == "" {
			continue
		}
		wh, err := uc.warehouseRepo.GetByID(*whID)
		if err != nil {
			return nil, err
		}
		if wh == nil {
			return nil, domain.ErrNotFound
		}
	}

	if err := uc.opRepo.Create(op); err != nil {
		return nil, err
	}
	return toOperationResponse(op), nil
}

// GetByID obtiene una operación por ID; nil si no existe.
func (uc *OperationUseCase) GetByID(id string) (*dto.OperationResponse, error) {
	op, err := uc.opRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if op == nil {
		return nil, nil
	}
	return toOperationResponse(op), nil
}

// List lista operaciones con filtros de tipo, estado y rango de fechas.
func (uc *OperationUseCase) List(filter repository.OperationFilter, limit, offset int) (*dto.OperationListResponse, error) {
	ops, err := uc.opRepo.List(filter, limit, offset)
	if err != nil {
		return nil, err
	}
	resp := &dto.OperationListResponse{
		Operations: make([]dto.OperationResponse, 0, len(ops)),
		Limit:      limit,
		Offset:     offset,
	}
	for _, op := range ops {
		resp.Operations = append(resp.Operations, *toOperationResponse(op))
	}
	return resp, nil
}

func toOperationResponse(op *entity.Operation) *dto.OperationResponse {
	return &dto.OperationResponse{
		ID:              op.ID,
		Type:            op.Type,
		Reference:       op.Reference,
		ProductID:       op.ProductID,
		FromWarehouseID: op.FromWarehouseID,
		ToWarehouseID:   op.ToWarehouseID,
		Quantity:        op.Quantity,
		UnitPrice:       op.UnitPrice,
		TotalValue:      op.TotalValue,
		Status:          op.Status,
		Reason:          op.Reason,
		Notes:           op.Notes,
		CreatedBy:       op.CreatedBy,
		CreatedAt:       op.CreatedAt,
		CompletedAt:     op.CompletedAt,
	}
}
