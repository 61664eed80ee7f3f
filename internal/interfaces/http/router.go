package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/stockmaster-api/internal/application/analytics"
	"github.com/jhoicas/stockmaster-api/internal/application/auth"
	"github.com/jhoicas/stockmaster-api/internal/application/usecase"
	"github.com/jhoicas/stockmaster-api/pkg/jwt"
)

// Pinger comprueba una dependencia para /health (pool de Postgres, Redis).
type Pinger interface {
	Ping(ctx context.Context) error
}

// RouterDeps dependencias para el router. Los casos de uso nil dejan su grupo de rutas sin registrar.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	UserUC      *usecase.UserUseCase
	Documents   DocumentService
	Exports     ExportService
	ProductUC   *usecase.ProductUseCase
	WarehouseUC *usecase.WarehouseUseCase
	DashboardUC *appanalytics.DashboardUseCase
	AIUC        *usecase.AIUseCase
	DB          Pinger
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", healthHandler(deps.DB))

	api := app.Group("/api")
	editors := RequireRole(jwt.RoleAdmin, jwt.RoleManager)

	// Auth (público)
	if deps.AuthUC != nil {
		authGroup := api.Group("/auth")
		authHandler := NewAuthHandler(deps.AuthUC)
		authGroup.Post("/register", authHandler.Register)
		authGroup.Post("/login", authHandler.Login)
	}

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	if deps.UserUC != nil {
		protected.Get("/users/me", NewUserHandler(deps.UserUC).Me)
	}

	// Operations: documentos y registro de movimientos
	if deps.Documents != nil {
		ops := protected.Group("/operations")
		h := NewOperationsHandler(deps.Documents, deps.Exports)
		ops.Get("/moves", h.Moves)
		ops.Get("/moves/export.xml", h.ExportMovesXML)
		ops.Post("/receipts", editors, h.CreateReceipt)
		ops.Post("/deliveries", editors, h.CreateDelivery)
		ops.Post("/transfers", h.CreateTransfer)
		ops.Post("/adjustments", editors, h.CreateAdjustment)
		ops.Get("/:kind", h.List)
		ops.Get("/:kind/:id", h.Get)
		ops.Get("/:kind/:id/pdf", h.PDF)
		ops.Put("/:kind/:id/validate", editors, h.Validate)
	}

	// Products. /:id/stock, /dashboard/alerts, /dashboard/activities y /ai/anomalies quedan como alias
	// de las rutas con el nombre largo para los clientes existentes.
	if deps.ProductUC != nil {
		products := protected.Group("/products")
		h := NewProductHandler(deps.ProductUC)
		products.Get("/", h.List)
		products.Get("/low-stock", h.LowStock)
		products.Post("/", editors, h.Create)
		products.Get("/:id", h.GetByID)
		products.Get("/:id/stock-by-location", h.StockByLocation)
		products.Get("/:id/stock", h.StockByLocation)
		products.Put("/:id", editors, h.Update)
		products.Delete("/:id", RequireRole(jwt.RoleAdmin), h.Delete)
	}

	// Warehouses y locations (consulta; alta para admin y manager)
	if deps.WarehouseUC != nil {
		h := NewWarehouseHandler(deps.WarehouseUC)
		protected.Get("/warehouses", h.ListWarehouses)
		protected.Post("/warehouses", editors, h.CreateWarehouse)
		protected.Get("/locations", h.ListLocations)
		protected.Post("/locations", editors, h.CreateLocation)
	}

	// Dashboard
	if deps.DashboardUC != nil {
		dash := protected.Group("/dashboard")
		h := NewDashboardHandler(deps.DashboardUC)
		dash.Get("/kpis", h.KPIs)
		dash.Get("/stats", h.Stats)
		dash.Get("/low-stock-alerts", h.Alerts)
		dash.Get("/recent-activities", h.Activities)
		dash.Get("/alerts", h.Alerts)
		dash.Get("/activities", h.Activities)
	}

	// AI
	if deps.AIUC != nil {
		ai := protected.Group("/ai")
		h := NewAIHandler(deps.AIUC)
		ai.Post("/forecast", h.Forecast)
		ai.Get("/reorder-suggestions", h.ReorderSuggestions)
		ai.Get("/detect-anomalies", editors, h.Anomalies)
		ai.Get("/anomalies", editors, h.Anomalies)
		ai.Post("/chat", h.Chat)
		ai.Get("/insights", editors, h.Insights)
	}
}

func healthHandler(db Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if db != nil {
			ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
			defer cancel()
			if err := db.Ping(ctx); err != nil {
				return fail(c, fiber.StatusServiceUnavailable, "UNAVAILABLE", "base de datos no disponible")
			}
		}
		return ok(c, fiber.StatusOK, fiber.Map{"status": "ok", "time": time.Now().UTC()})
	}
}
