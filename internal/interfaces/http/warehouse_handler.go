package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/application/usecase"
	"github.com/jhoicas/stockmaster-api/internal/domain"
)

// WarehouseHandler consultas de bodegas y ubicaciones para los formularios de documentos.
type WarehouseHandler struct {
	uc *usecase.WarehouseUseCase
}

// NewWarehouseHandler construye el handler.
func NewWarehouseHandler(uc *usecase.WarehouseUseCase) *WarehouseHandler {
	return &WarehouseHandler{uc: uc}
}

// ListWarehouses godoc
// @Summary      Listar bodegas
// @Tags         warehouses
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.WarehouseResponse
// @Router       /api/warehouses [get]
func (h *WarehouseHandler) ListWarehouses(c *fiber.Ctx) error {
	out, err := h.uc.ListWarehouses(c.UserContext())
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusOK, fiber.Map{"warehouses": out})
}

// CreateWarehouse godoc
// @Summary      Crear bodega
// @Tags         warehouses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateWarehouseRequest  true  "Datos de la bodega"
// @Success      201   {object}  dto.WarehouseResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/warehouses [post]
func (h *WarehouseHandler) CreateWarehouse(c *fiber.Ctx) error {
	var in dto.CreateWarehouseRequest
	if err := bindAndValidate(c, &in); err != nil {
		return handleError(c, err)
	}
	out, err := h.uc.CreateWarehouse(c.UserContext(), in)
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusCreated, fiber.Map{"warehouse": out})
}

// ListLocations godoc
// @Summary      Listar ubicaciones
// @Tags         warehouses
// @Security     Bearer
// @Produce      json
// @Param        warehouse  query  string  false  "ID de bodega"
// @Success      200  {array}  dto.LocationResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/locations [get]
func (h *WarehouseHandler) ListLocations(c *fiber.Ctx) error {
	warehouse := c.Query("warehouse")
	if err := validate.Var(warehouse, "omitempty,uuid"); err != nil {
		return handleError(c, domain.Invalid("warehouse", "debe ser un UUID"))
	}
	out, err := h.uc.ListLocations(c.UserContext(), warehouse)
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusOK, fiber.Map{"locations": out})
}

// CreateLocation godoc
// @Summary      Crear ubicación
// @Tags         warehouses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLocationRequest  true  "Datos de la ubicación"
// @Success      201   {object}  dto.LocationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/locations [post]
func (h *WarehouseHandler) CreateLocation(c *fiber.Ctx) error {
	var in dto.CreateLocationRequest
	if err := bindAndValidate(c, &in); err != nil {
		return handleError(c, err)
	}
	out, err := h.uc.CreateLocation(c.UserContext(), in)
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusCreated, fiber.Map{"location": out})
}
