package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP del catálogo de productos (protegido).
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create godoc
// @Summary      Crear producto
// @Description  Con initialStock y location registra además una recepción validada por el stock inicial.
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductDetailResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := bindAndValidate(c, &in); err != nil {
		return handleError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in, GetUserID(c))
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusCreated, fiber.Map{"message": "Product created successfully", "product": out})
}

// GetByID godoc
// @Summary      Obtener producto con su stock por ubicación
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return handleError(c, err)
	}
	out, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusOK, fiber.Map{"product": out})
}

// StockByLocation godoc
// @Summary      Stock del producto por ubicación
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {array}   dto.StockLevelResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/stock-by-location [get]
func (h *ProductHandler) StockByLocation(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return handleError(c, err)
	}
	out, err := h.uc.StockByLocation(c.UserContext(), id)
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusOK, fiber.Map{"stockLevels": out})
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        search    query  string  false  "Nombre, SKU o descripción"
// @Param        category  query  string  false  "Categoría"
// @Param        page      query  int     false  "Página"  default(1)
// @Param        limit     query  int     false  "Límite"  default(20)
// @Success      200       {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.Query("search"), c.Query("category"), c.QueryInt("page", 1), c.QueryInt("limit", 20))
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusOK, page(fiber.Map{"products": out.Products}, out.Page))
}

// LowStock godoc
// @Summary      Productos en o bajo el punto de pedido
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/products/low-stock [get]
func (h *ProductHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.uc.LowStock(c.UserContext())
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusOK, fiber.Map{"count": len(out), "products": out})
}

// Update godoc
// @Summary      Actualizar producto
// @Description  El stock no se modifica aquí: solo cambia validando documentos.
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return handleError(c, err)
	}
	var in dto.UpdateProductRequest
	if err := bindAndValidate(c, &in); err != nil {
		return handleError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusOK, fiber.Map{"message": "Product updated successfully", "product": out})
}

// Delete godoc
// @Summary      Desactivar producto
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return handleError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusOK, fiber.Map{"message": "Product deleted successfully"})
}
