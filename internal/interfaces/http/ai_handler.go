package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/application/usecase"
)

// AIHandler asesoría de inventario. Un fallo del LLM nunca es error HTTP: se responde
// 200 con available=false y los datos calculados localmente.
type AIHandler struct {
	uc *usecase.AIUseCase
}

// NewAIHandler construye el handler.
func NewAIHandler(uc *usecase.AIUseCase) *AIHandler {
	return &AIHandler{uc: uc}
}

type aiResponse struct {
	Success bool `json:"success"`
	*dto.AIResult
}

func (h *AIHandler) respond(c *fiber.Ctx, res *dto.AIResult, err error) error {
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(aiResponse{Success: true, AIResult: res})
}

// Forecast godoc
// @Summary      Pronóstico de demanda
// @Tags         ai
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ForecastRequest  true  "productId y días"
// @Success      200   {object}  dto.AIResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/ai/forecast [post]
func (h *AIHandler) Forecast(c *fiber.Ctx) error {
	var req dto.ForecastRequest
	if err := bindAndValidate(c, &req); err != nil {
		return handleError(c, err)
	}
	res, err := h.uc.Forecast(c.UserContext(), req)
	return h.respond(c, res, err)
}

// ReorderSuggestions godoc
// @Summary      Sugerencias de reposición
// @Tags         ai
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AIResult
// @Router       /api/ai/reorder-suggestions [get]
func (h *AIHandler) ReorderSuggestions(c *fiber.Ctx) error {
	return h.simple(c, h.uc.ReorderSuggestions)
}

// Anomalies godoc
// @Summary      Movimientos atípicos de los últimos 30 días
// @Tags         ai
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AIResult
// @Router       /api/ai/detect-anomalies [get]
func (h *AIHandler) Anomalies(c *fiber.Ctx) error {
	return h.simple(c, h.uc.Anomalies)
}

// Chat godoc
// @Summary      Asistente de inventario
// @Tags         ai
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChatRequest  true  "Pregunta"
// @Success      200   {object}  dto.AIResult
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/ai/chat [post]
func (h *AIHandler) Chat(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := bindAndValidate(c, &req); err != nil {
		return handleError(c, err)
	}
	res, err := h.uc.Chat(c.UserContext(), req)
	return h.respond(c, res, err)
}

// Insights godoc
// @Summary      Resumen narrativo de los indicadores
// @Tags         ai
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AIResult
// @Router       /api/ai/insights [get]
func (h *AIHandler) Insights(c *fiber.Ctx) error {
	return h.simple(c, h.uc.Insights)
}

func (h *AIHandler) simple(c *fiber.Ctx, fn func(context.Context) (*dto.AIResult, error)) error {
	res, err := fn(c.UserContext())
	return h.respond(c, res, err)
}
