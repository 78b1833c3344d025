package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
// El stock inicial siempre es cero: el stock solo entra por operaciones.
type CreateProductRequest struct {
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Category     string          `json:"category,omitempty"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	ReorderPoint decimal.Decimal `json:"reorder_point"`
}

// UpdateProductRequest body para PUT /api/products/:id. Campos opcionales;
// TotalStock no es actualizable por esta vía.
type UpdateProductRequest struct {
	Name         *string          `json:"name,omitempty"`
	Description  *string          `json:"description,omitempty"`
	Category     *string          `json:"category,omitempty"`
	UnitPrice    *decimal.Decimal `json:"unit_price,omitempty"`
	ReorderPoint *decimal.Decimal `json:"reorder_point,omitempty"`
	Status       *string          `json:"status,omitempty"`
}

// ProductResponse representación de un producto en respuestas.
type ProductResponse struct {
	ID           string          `json:"id"`
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Category     string          `json:"category,omitempty"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	ReorderPoint decimal.Decimal `json:"reorder_point"`
	TotalStock   decimal.Decimal `json:"total_stock"`
	LowStock     bool            `json:"low_stock"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
}
