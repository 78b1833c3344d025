package dto

import "time"

// WarehouseResponse representación de una bodega en respuestas (solo lectura).
type WarehouseResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location,omitempty"`
	Capacity  int       `json:"capacity"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// WarehouseListResponse listado de bodegas.
type WarehouseListResponse struct {
	Warehouses []WarehouseResponse `json:"warehouses"`
	Limit      int                 `json:"limit"`
	Offset     int                 `json:"offset"`
}
