package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	_ "github.com/jhoicas/stockmaster-api/docs"
	appanalytics "github.com/jhoicas/stockmaster-api/internal/application/analytics"
	"github.com/jhoicas/stockmaster-api/internal/application/auth"
	"github.com/jhoicas/stockmaster-api/internal/application/inventory"
	"github.com/jhoicas/stockmaster-api/internal/application/usecase"
	infraai "github.com/jhoicas/stockmaster-api/internal/infrastructure/ai"
	"github.com/jhoicas/stockmaster-api/internal/infrastructure/cache"
	"github.com/jhoicas/stockmaster-api/internal/infrastructure/export"
	"github.com/jhoicas/stockmaster-api/internal/infrastructure/jobs"
	infrapdf "github.com/jhoicas/stockmaster-api/internal/infrastructure/pdf"
	"github.com/jhoicas/stockmaster-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/stockmaster-api/internal/interfaces/http"
	"github.com/jhoicas/stockmaster-api/pkg/config"
	"github.com/jhoicas/stockmaster-api/pkg/logger"
)

// @title						StockMaster API
// @version					1.0
// @description				Inventario multi-almacén: recepciones, entregas, transferencias y ajustes con registro de movimientos.
// @BasePath					/
// @securityDefinitions.apikey	Bearer
// @in							header
// @name						Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("config: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: os.Getenv("LOG_LEVEL"),
	})
	log.Info().Str("env", cfg.App.Env).Str("addr", cfg.HTTP.Addr()).Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("no se pudo conectar a la base de datos")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	stockRepo := postgres.NewStockLevelRepository(pool)
	moveRepo := postgres.NewStockMoveRepository(pool)
	documentRepo := postgres.NewDocumentRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Redis es opcional: sin REDIS_ADDR el dashboard consulta siempre la base y no se encolan warmups.
	var (
		observers      []inventory.StockObserver
		dashboardCache appanalytics.Cache
	)
	if cfg.Redis.Enabled() {
		redisClient, err := cache.NewClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("no se pudo conectar a Redis")
		}
		defer redisClient.Close()

		jobsClient := jobs.NewClient(jobs.RedisOpt(cfg.Redis))
		defer jobsClient.Close()

		kpiCache := cache.New(redisClient, cfg.Redis.CacheTTL())
		dashboardCache = kpiCache
		observers = append(observers, cache.NewInvalidator(kpiCache, jobsClient))
	} else {
		log.Warn().Msg("REDIS_ADDR vacío: caché del dashboard y cola de trabajos desactivadas")
	}

	documentUC := inventory.NewDocumentUseCase(txRunner, documentRepo, productRepo, locationRepo, stockRepo, moveRepo, observers...)
	exportUC := inventory.NewExportUseCase(
		documentUC, productRepo,
		infrapdf.NewMarotoPDFGenerator(cfg.App.Name),
		export.NewXMLExporter(),
	)
	productUC := usecase.NewProductUseCase(productRepo, stockRepo, locationRepo, documentUC)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo, locationRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo, productRepo, stockRepo, moveRepo, dashboardCache)

	llm := infraai.NewService(cfg.AI.Provider, cfg.AI.AnthropicAPIKey, cfg.AI.AnthropicModel, cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
	aiUC := usecase.NewAIUseCase(llm, productRepo, analyticsRepo, moveRepo, dashboardUC)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Output: log.Writer(),
		Format: "${time} ${locals:requestid} ${status} ${method} ${path} ${latency}\n",
	}))
	app.Use(helmet.New())
	app.Use("/api", limiter.New(limiter.Config{
		Max:        cfg.HTTP.RateLimitMax,
		Expiration: cfg.HTTP.RateWindow(),
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "StockMaster API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		UserUC:      usecase.NewUserUseCase(userRepo),
		Documents:   documentUC,
		Exports:     exportUC,
		ProductUC:   productUC,
		WarehouseUC: warehouseUC,
		DashboardUC: dashboardUC,
		AIUC:        aiUC,
		DB:          pool,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Fatal().Err(err).Msg("error al iniciar servidor")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error al cerrar servidor")
	}
	log.Info().Msg("aplicación detenida")
}
