package repository

import (
	"context"

	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
)

// LocationRepository define el puerto de persistencia para Location.
type LocationRepository interface {
	Create(ctx context.Context, location *entity.Location) error
	GetByID(ctx context.Context, id string) (*entity.Location, error)
	// Resolve busca una ubicación activa por id, código o nombre (en ese orden).
	// Devuelve domain.ErrNotFound si no existe o si el nombre es ambiguo.
	Resolve(ctx context.Context, ref string) (*entity.Location, error)
	List(ctx context.Context, warehouseID string) ([]*entity.Location, error)
}
