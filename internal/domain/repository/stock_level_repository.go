package repository

import "github.com/Ojas37/Stock-Master/internal/domain/entity"

// StockLevelRepository define el puerto de la proyección de saldos por par
// (producto, bodega). Usado dentro de transacciones: Lock garantiza que la
// fila exista y la bloquea (SELECT FOR UPDATE) para serializar confirmaciones
// sobre el mismo par; pares distintos avanzan en paralelo.
type StockLevelRepository interface {
	// Get devuelve la proyección del par; si la fila no existe devuelve un
	// nivel con cantidad cero (nunca nil).
	Get(productID, warehouseID string) (*entity.StockLevel, error)
	// Lock asegura la fila del par y la bloquea hasta el fin de la transacción.
	Lock(productID, warehouseID string) (*entity.StockLevel, error)
	Upsert(level *entity.StockLevel) error
}
