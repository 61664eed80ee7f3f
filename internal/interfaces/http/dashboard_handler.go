package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/stockmaster-api/internal/application/analytics"
)

// DashboardHandler maneja los endpoints del dashboard. Solo lectura.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// KPIs godoc
// @Summary      Indicadores del inventario
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardKPIs
// @Router       /api/dashboard/kpis [get]
func (h *DashboardHandler) KPIs(c *fiber.Ctx) error {
	out, err := h.uc.KPIs(c.UserContext())
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusOK, fiber.Map{"kpis": out})
}

// Stats godoc
// @Summary      Estadísticas por ventana de días
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        days  query  int  false  "Días hacia atrás"  default(30)
// @Success      200   {object}  dto.DashboardStats
// @Router       /api/dashboard/stats [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats(c.UserContext(), c.QueryInt("days", 30))
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusOK, fiber.Map{"stats": out})
}

// Alerts godoc
// @Summary      Alertas de stock bajo
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.StockAlertDTO
// @Router       /api/dashboard/low-stock-alerts [get]
func (h *DashboardHandler) Alerts(c *fiber.Ctx) error {
	out, err := h.uc.Alerts(c.UserContext())
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusOK, fiber.Map{"count": len(out), "alerts": out})
}

// Activities godoc
// @Summary      Últimos movimientos
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Cantidad"  default(10)
// @Success      200    {array}  dto.ActivityDTO
// @Router       /api/dashboard/recent-activities [get]
func (h *DashboardHandler) Activities(c *fiber.Ctx) error {
	out, err := h.uc.Activities(c.UserContext(), c.QueryInt("limit", 10))
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusOK, fiber.Map{"activities": out})
}
