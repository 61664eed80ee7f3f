package jobs

import (
	"context"
	"errors"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	domaininv "github.com/jhoicas/stockmaster-api/internal/domain/inventory"
)

// AlertSource calcula las alertas de stock bajo (DashboardUseCase.Alerts).
type AlertSource interface {
	Alerts(ctx context.Context) ([]dto.StockAlertDTO, error)
}

// AlertStore guarda el último escaneo para consultarlo sin recalcular.
type AlertStore interface {
	SaveAlerts(ctx context.Context, alerts any) error
}

// Warmer recalcula la caché del dashboard (DashboardUseCase.Warmup).
type Warmer interface {
	Warmup(ctx context.Context) error
}

// AlertSnapshot es lo que se guarda en alerts:latest.
type AlertSnapshot struct {
	ScannedAt time.Time           `json:"scannedAt"`
	Critical  int                 `json:"critical"`
	High      int                 `json:"high"`
	Medium    int                 `json:"medium"`
	Alerts    []dto.StockAlertDTO `json:"alerts"`
}

// LowStockScanJob escanea productos en o bajo el punto de pedido y registra cada alerta.
type LowStockScanJob struct {
	source AlertSource
	store  AlertStore
	logger zerolog.Logger
	clock  func() time.Time
}

// NewLowStockScanJob construye el handler.
func NewLowStockScanJob(source AlertSource, store AlertStore) *LowStockScanJob {
	return &LowStockScanJob{
		source: source,
		store:  store,
		logger: log.With().Str("task", TaskLowStockScan).Logger(),
		clock:  func() time.Time { return time.Now().UTC() },
	}
}

// Handle procesa la tarea.
func (j *LowStockScanJob) Handle(ctx context.Context, _ *asynq.Task) error {
	if j == nil || j.source == nil {
		return errors.New("low stock scan: handler no configurado")
	}
	alerts, err := j.source.Alerts(ctx)
	if err != nil {
		j.logger.Error().Err(err).Msg("escaneo de stock bajo falló")
		return err
	}
	snap := AlertSnapshot{ScannedAt: j.clock(), Alerts: alerts}
	for _, a := range alerts {
		lvl := zerolog.InfoLevel
		switch a.Severity {
		case domaininv.SeverityCritical:
			snap.Critical++
			lvl = zerolog.ErrorLevel
		case domaininv.SeverityHigh:
			snap.High++
			lvl = zerolog.WarnLevel
		default:
			snap.Medium++
		}
		j.logger.WithLevel(lvl).
			Str("sku", a.SKU).
			Str("severity", a.Severity).
			Str("stock", a.Stock.String()).
			Str("reorder_point", a.ReorderPoint.String()).
			Msg("alerta de stock bajo")
	}
	if j.store != nil {
		if err := j.store.SaveAlerts(ctx, snap); err != nil {
			j.logger.Warn().Err(err).Msg("no se pudo guardar el snapshot de alertas")
		}
	}
	j.logger.Info().Int("alerts", len(alerts)).Int("critical", snap.Critical).Msg("escaneo de stock bajo completado")
	return nil
}

// KPIWarmupJob recalcula las entradas por defecto de la caché del dashboard.
type KPIWarmupJob struct {
	warmer Warmer
	logger zerolog.Logger
}

// NewKPIWarmupJob construye el handler.
func NewKPIWarmupJob(warmer Warmer) *KPIWarmupJob {
	return &KPIWarmupJob{warmer: warmer, logger: log.With().Str("task", TaskKPIWarmup).Logger()}
}

// Handle procesa la tarea.
func (j *KPIWarmupJob) Handle(ctx context.Context, _ *asynq.Task) error {
	if j == nil || j.warmer == nil {
		return errors.New("kpi warmup: handler no configurado")
	}
	start := time.Now()
	if err := j.warmer.Warmup(ctx); err != nil {
		j.logger.Error().Err(err).Msg("warmup de KPIs falló")
		return err
	}
	j.logger.Debug().Dur("elapsed", time.Since(start)).Msg("warmup de KPIs completado")
	return nil
}
