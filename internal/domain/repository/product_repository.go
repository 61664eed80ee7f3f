package repository

import (
	"context"

	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
)

// ProductFilter filtros del listado de catálogo.
type ProductFilter struct {
	Search          string // nombre, SKU o descripción (ILIKE)
	Category        string
	IncludeInactive bool
	Limit           int
	Offset          int
}

// ProductRepository define el puerto de persistencia para Product.
// Todas las lecturas devuelven Stock derivado de stock_levels.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	// Deactivate es el único borrado permitido (is_active = false).
	Deactivate(ctx context.Context, id string) error
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, int, error)
	// ListLowStock devuelve productos activos con stock <= punto de pedido, los agotados primero.
	ListLowStock(ctx context.Context) ([]*entity.Product, error)
}
