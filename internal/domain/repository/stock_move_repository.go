package repository

import (
	"context"
	"time"

	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
)

// MoveFilter filtros del historial de movimientos. Las fechas son inclusivas.
type MoveFilter struct {
	ProductID    string
	DocumentType entity.DocumentKind
	Status       entity.DocumentStatus
	StartDate    *time.Time
	EndDate      *time.Time
	Limit        int
	Offset       int
}

// StockMoveRepository es el registro de movimientos: solo inserción y lectura.
type StockMoveRepository interface {
	Create(ctx context.Context, move *entity.StockMove) error
	List(ctx context.Context, filter MoveFilter) ([]*entity.StockMoveView, int, error)
	CountByDocument(ctx context.Context, documentID string) (int, error)
}
