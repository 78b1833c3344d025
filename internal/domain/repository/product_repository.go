package repository

import (
	"github.com/shopspring/decimal"

	"github.com/Ojas37/Stock-Master/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// TotalStock solo se modifica vía AddToTotalStock/SetTotalStock, dentro de la
// transacción del motor del ledger o del reconciliador.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	// AddToTotalStock suma delta (con signo) al total cacheado del producto.
	AddToTotalStock(productID string, delta decimal.Decimal) error
	// SetTotalStock fija el total cacheado (solo reconciliación).
	SetTotalStock(productID string, total decimal.Decimal) error
	// List pagina productos; limit <= 0 devuelve todos.
	List(limit, offset int) ([]*entity.Product, error)
}
