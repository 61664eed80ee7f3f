package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	appanalytics "github.com/jhoicas/stockmaster-api/internal/application/analytics"
	"github.com/jhoicas/stockmaster-api/internal/infrastructure/cache"
	"github.com/jhoicas/stockmaster-api/internal/infrastructure/jobs"
	"github.com/jhoicas/stockmaster-api/internal/infrastructure/postgres"
	"github.com/jhoicas/stockmaster-api/pkg/config"
	"github.com/jhoicas/stockmaster-api/pkg/logger"
)

// worker procesa en segundo plano el escaneo de stock bajo y el warmup de KPIs.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("config: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: os.Getenv("LOG_LEVEL"),
	})
	if !cfg.Redis.Enabled() {
		log.Fatal().Msg("el worker necesita REDIS_ADDR")
	}
	log.Info().Str("redis", cfg.Redis.Addr).Msg("iniciando worker")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("no se pudo conectar a la base de datos")
	}
	defer pool.Close()

	redisClient, err := cache.NewClient(ctx, cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("no se pudo conectar a Redis")
	}
	defer redisClient.Close()
	kpiCache := cache.New(redisClient, cfg.Redis.CacheTTL())

	dashboardUC := appanalytics.NewDashboardUseCase(
		postgres.NewAnalyticsRepository(pool),
		postgres.NewProductRepository(pool),
		postgres.NewStockLevelRepository(pool),
		postgres.NewStockMoveRepository(pool),
		kpiCache,
	)

	lowStock := jobs.NewLowStockScanJob(dashboardUC, kpiCache)
	warmup := jobs.NewKPIWarmupJob(dashboardUC)

	worker, err := jobs.NewWorker(jobs.WorkerConfig{
		RedisOpts:   jobs.RedisOpt(cfg.Redis),
		Concurrency: 4,
		Handlers: []jobs.TaskHandler{
			{Type: jobs.TaskLowStockScan, Handler: lowStock.Handle},
			{Type: jobs.TaskKPIWarmup, Handler: warmup.Handle},
		},
		Cron: jobs.DefaultCron(),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("no se pudo configurar el worker")
	}

	if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("worker terminó con error")
		return
	}
	log.Info().Msg("worker detenido")
}
