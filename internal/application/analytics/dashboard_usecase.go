// Package analytics contiene la capa de consultas del dashboard: KPIs, estadísticas,
// alertas de stock bajo y actividad reciente. Nunca escribe.
package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	domaininv "github.com/jhoicas/stockmaster-api/internal/domain/inventory"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

const (
	recentMovesWindow = 7 * 24 * time.Hour
	topProductsLimit  = 10
	defaultStatsDays  = 30
	maxStatsDays      = 365
	alertFanOut       = 4
)

// DashboardUseCase arma las vistas del dashboard a partir de AnalyticsRepository,
// el catálogo y el registro de movimientos.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	productRepo   repository.ProductRepository
	stockRepo     repository.StockLevelRepository
	moveRepo      repository.StockMoveRepository
	cache         Cache
	group         singleflight.Group
	now           func() time.Time
}

// NewDashboardUseCase construye el caso de uso. cache nil equivale a no cachear.
func NewDashboardUseCase(
	analyticsRepo repository.AnalyticsRepository,
	productRepo repository.ProductRepository,
	stockRepo repository.StockLevelRepository,
	moveRepo repository.StockMoveRepository,
	cache Cache,
) *DashboardUseCase {
	if cache == nil {
		cache = passThrough{}
	}
	return &DashboardUseCase{
		analyticsRepo: analyticsRepo,
		productRepo:   productRepo,
		stockRepo:     stockRepo,
		moveRepo:      moveRepo,
		cache:         cache,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// cached resuelve key desde la caché. Misses concurrentes de la misma clave comparten una sola carga.
func (uc *DashboardUseCase) cached(ctx context.Context, dest any, loader func(context.Context) (any, error), parts ...string) error {
	key, err := uc.cache.BuildKey(ctx, parts...)
	if err != nil {
		log.Warn().Err(err).Msg("caché de dashboard no disponible, consultando la base")
		v, lerr := loader(ctx)
		if lerr != nil {
			return lerr
		}
		return assign(dest, v)
	}
	raw, err, _ := uc.group.Do(key, func() (any, error) {
		var out json.RawMessage
		if err := uc.cache.FetchJSON(ctx, key, &out, loader); err != nil {
			return nil, err
		}
		return out, nil
	})
	if err != nil {
		return err
	}
	return json.Unmarshal(raw.(json.RawMessage), dest)
}

// KPIs devuelve los indicadores principales. Las consultas independientes corren en paralelo.
func (uc *DashboardUseCase) KPIs(ctx context.Context) (*dto.DashboardKPIs, error) {
	var out dto.DashboardKPIs
	if err := uc.cached(ctx, &out, uc.loadKPIs, "dashboard", "kpis"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (uc *DashboardUseCase) loadKPIs(ctx context.Context) (any, error) {
	var (
		summary repository.InventorySummary
		pending map[entity.DocumentKind]int
		recent  int
	)
	now := uc.now()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		summary, err = uc.analyticsRepo.InventorySummary(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		pending, err = uc.analyticsRepo.PendingDocuments(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		recent, err = uc.analyticsRepo.CountMovesSince(gctx, now.Add(-recentMovesWindow))
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("kpis: %w", err)
	}

	return dto.DashboardKPIs{
		TotalProducts:     summary.TotalProducts,
		LowStockCount:     summary.LowStock,
		OutOfStockCount:   summary.OutOfStock,
		PendingReceipts:   pending[entity.KindReceipt],
		PendingDeliveries: pending[entity.KindDelivery],
		PendingTransfers:  pending[entity.KindTransfer],
		TotalStockValue:   summary.TotalStockValue,
		RecentMoves:       recent,
		GeneratedAt:       now,
	}, nil
}

// Stats agrega la actividad de los últimos days días (30 por defecto, máximo 365).
func (uc *DashboardUseCase) Stats(ctx context.Context, days int) (*dto.DashboardStats, error) {
	if days <= 0 {
		days = defaultStatsDays
	}
	if days > maxStatsDays {
		days = maxStatsDays
	}
	var out dto.DashboardStats
	loader := func(ctx context.Context) (any, error) { return uc.loadStats(ctx, days) }
	if err := uc.cached(ctx, &out, loader, "dashboard", "stats", strconv.Itoa(days)); err != nil {
		return nil, err
	}
	return &out, nil
}

func (uc *DashboardUseCase) loadStats(ctx context.Context, days int) (any, error) {
	since := uc.now().AddDate(0, 0, -days)
	var (
		byType     []repository.LabelCount
		receipts   []repository.LabelCount
		deliveries []repository.LabelCount
		top        []repository.ProductValueResult
		daily      []repository.DailyCount
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { byType, err = uc.analyticsRepo.MovesByType(gctx, since); return })
	g.Go(func() (err error) {
		receipts, err = uc.analyticsRepo.DocumentsByStatus(gctx, entity.KindReceipt)
		return
	})
	g.Go(func() (err error) {
		deliveries, err = uc.analyticsRepo.DocumentsByStatus(gctx, entity.KindDelivery)
		return
	})
	g.Go(func() (err error) { top, err = uc.analyticsRepo.TopProductsByValue(gctx, topProductsLimit); return })
	g.Go(func() (err error) { daily, err = uc.analyticsRepo.DailyMoves(gctx, since); return })
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}

	stats := dto.DashboardStats{
		Days:               days,
		MovesByType:        labelCounts(byType),
		ReceiptsByStatus:   labelCounts(receipts),
		DeliveriesByStatus: labelCounts(deliveries),
		TopProductsByValue: make([]dto.TopProductDTO, 0, len(top)),
		DailyMoves:         make([]dto.DailyCountDTO, 0, len(daily)),
	}
	for _, p := range top {
		stats.TopProductsByValue = append(stats.TopProductsByValue, dto.TopProductDTO{
			ProductID: p.ProductID, SKU: p.SKU, Name: p.Name, Stock: p.Stock, Value: p.Value,
		})
	}
	for _, d := range daily {
		stats.DailyMoves = append(stats.DailyMoves, dto.DailyCountDTO{Date: d.Day.Format("2006-01-02"), Count: d.Count})
	}
	return stats, nil
}

// Alerts lista productos en o bajo su punto de pedido con severidad, déficit y stock por ubicación.
// Sin caché: la usa también el escaneo periódico.
func (uc *DashboardUseCase) Alerts(ctx context.Context) ([]dto.StockAlertDTO, error) {
	products, err := uc.productRepo.ListLowStock(ctx)
	if err != nil {
		return nil, fmt.Errorf("alerts: %w", err)
	}
	alerts := make([]dto.StockAlertDTO, len(products))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(alertFanOut)
	for i, p := range products {
		g.Go(func() error {
			levels, err := uc.stockRepo.ListByProduct(gctx, p.ID)
			if err != nil {
				return err
			}
			a := dto.StockAlertDTO{
				ProductID:       p.ID,
				SKU:             p.SKU,
				Name:            p.Name,
				Stock:           p.Stock,
				ReorderPoint:    p.ReorderPoint,
				ReorderQuantity: p.ReorderQuantity,
				Deficit:         domaininv.Deficit(p.Stock, p.ReorderPoint),
				Severity:        domaininv.AlertSeverity(p.Stock, p.ReorderPoint),
				Locations:       make([]dto.AlertLocationDTO, 0, len(levels)),
			}
			for _, l := range levels {
				a.Locations = append(a.Locations, dto.AlertLocationDTO{
					Location: l.LocationID,
					Label:    l.LocationCode + " - " + l.LocationName,
					Quantity: l.Quantity,
				})
			}
			alerts[i] = a
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("alerts: %w", err)
	}
	return alerts, nil
}

// Activities últimos movimientos con producto y usuario.
func (uc *DashboardUseCase) Activities(ctx context.Context, limit int) ([]dto.ActivityDTO, error) {
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	moves, _, err := uc.moveRepo.List(ctx, repository.MoveFilter{Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("activities: %w", err)
	}
	out := make([]dto.ActivityDTO, 0, len(moves))
	for _, m := range moves {
		out = append(out, dto.ActivityDTO{
			ID:                m.ID,
			DocumentType:      string(m.DocumentType),
			DocumentReference: m.DocumentReference,
			ProductName:       m.ProductName,
			ProductSKU:        m.ProductSKU,
			Quantity:          m.Quantity,
			UserName:          m.UserName,
			Notes:             m.Notes,
			Date:              m.Date,
		})
	}
	return out, nil
}

// Warmup recalcula las entradas cacheadas por defecto. Lo ejecuta el worker.
func (uc *DashboardUseCase) Warmup(ctx context.Context) error {
	if _, err := uc.KPIs(ctx); err != nil {
		return err
	}
	_, err := uc.Stats(ctx, defaultStatsDays)
	return err
}

func labelCounts(in []repository.LabelCount) []dto.LabelCountDTO {
	out := make([]dto.LabelCountDTO, 0, len(in))
	for _, lc := range in {
		out = append(out, dto.LabelCountDTO{ID: lc.Label, Count: lc.Count})
	}
	return out
}

// assign copia v en dest pasando por JSON, igual que un valor leído de la caché.
func assign(dest, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dest)
}
