package cache

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/jhoicas/stockmaster-api/internal/application/inventory"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
)

var _ inventory.StockObserver = (*Invalidator)(nil)

// WarmupEnqueuer encola el recálculo de KPIs en el worker.
type WarmupEnqueuer interface {
	EnqueueKPIWarmup(ctx context.Context) error
}

// Invalidator reacciona a validaciones confirmadas: sube la versión de la caché y pide un warmup.
// Los fallos se registran y no se propagan: la validación ya está confirmada.
type Invalidator struct {
	cache  *Cache
	warmup WarmupEnqueuer
}

// NewInvalidator construye el observador. warmup puede ser nil.
func NewInvalidator(cache *Cache, warmup WarmupEnqueuer) *Invalidator {
	return &Invalidator{cache: cache, warmup: warmup}
}

func (i *Invalidator) StockChanged(ctx context.Context, doc *entity.Document) {
	ver, err := i.cache.Bump(ctx)
	if err != nil {
		log.Warn().Err(err).Str("reference", doc.Reference).Msg("no se pudo invalidar la caché del dashboard")
	} else {
		log.Debug().Int64("version", ver).Str("reference", doc.Reference).Msg("caché del dashboard invalidada")
	}
	if i.warmup == nil {
		return
	}
	if err := i.warmup.EnqueueKPIWarmup(ctx); err != nil {
		log.Warn().Err(err).Msg("no se pudo encolar el warmup de KPIs")
	}
}
