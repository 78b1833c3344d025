package entity

import "time"

// Estados de bodega.
const (
	WarehouseStatusActive   = "active"
	WarehouseStatusInactive = "inactive"
)

// Warehouse representa una bodega donde se almacena inventario.
// De solo lectura para el motor del ledger.
type Warehouse struct {
	ID        string
	Name      string
	Location  string
	Capacity  int
	Status    string // active, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
