package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
)

// StockLevelRepository es el libro de stock por (producto, ubicación).
// Increase y Decrease son read-modify-write atómicos en la base; no existe un Set.
type StockLevelRepository interface {
	// Get devuelve el saldo; si la fila no existe devuelve un saldo en cero (no error).
	Get(ctx context.Context, productID, locationID string) (*entity.StockLevel, error)
	// Increase suma qty creando la fila si no existe.
	Increase(ctx context.Context, productID, locationID string, qty decimal.Decimal) (*entity.StockLevel, error)
	// Decrease resta qty solo si el saldo alcanza; si no, devuelve *domain.InsufficientStockError.
	Decrease(ctx context.Context, productID, locationID string, qty decimal.Decimal) (*entity.StockLevel, error)
	ListByProduct(ctx context.Context, productID string) ([]entity.StockLevelView, error)
}
