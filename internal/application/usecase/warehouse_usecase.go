package usecase

import (
	"github.com/Ojas37/Stock-Master/internal/application/dto"
	"github.com/Ojas37/Stock-Master/internal/domain/entity"
	"github.com/Ojas37/Stock-Master/internal/domain/repository"
)

// WarehouseUseCase lecturas del catálogo de bodegas. La administración de
// bodegas vive en otro servicio; aquí solo se consultan.
type WarehouseUseCase struct {
	repo repository.WarehouseRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo}
}

// GetByID obtiene una bodega por ID; nil si no existe.
func (uc *WarehouseUseCase) GetByID(id string) (*dto.WarehouseResponse, error) {
	wh, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if wh == nil {
		return nil, nil
	}
	return toWarehouseResponse(wh), nil
}

// List pagina las bodegas.
func (uc *WarehouseUseCase) List(limit, offset int) (*dto.WarehouseListResponse, error) {
	warehouses, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	resp := &dto.WarehouseListResponse{
		Warehouses: make([]dto.WarehouseResponse, 0, len(warehouses)),
		Limit:      limit,
		Offset:     offset,
	}
	for _, wh := range warehouses {
		resp.Warehouses = append(resp.Warehouses, *toWarehouseResponse(wh))
	}
	return resp, nil
}

func toWarehouseResponse(wh *entity.Warehouse) *dto.WarehouseResponse {
	return &dto.WarehouseResponse{
		ID:        wh.ID,
		Name:      wh.Name,
		Location:  wh.Location,
		Capacity:  wh.Capacity,
		Status:    wh.Status,
		CreatedAt: wh.CreatedAt,
	}
}
