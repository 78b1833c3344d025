package repository

import "github.com/Ojas37/Stock-Master/internal/domain/entity"

// WarehouseRepository define el puerto de lectura para Warehouse.
// El núcleo nunca escribe bodegas; la administración de bodegas vive fuera
// de este servicio.
type WarehouseRepository interface {
	GetByID(id string) (*entity.Warehouse, error)
	List(limit, offset int) ([]*entity.Warehouse, error)
}
