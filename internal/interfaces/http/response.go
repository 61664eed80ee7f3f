package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/domain"
)

// ok responde {success:true, ...payload}.
func ok(c *fiber.Ctx, status int, payload fiber.Map) error {
	payload["success"] = true
	return c.Status(status).JSON(payload)
}

// page agrega al payload los metadatos de paginación planos (count, totalPages, currentPage).
func page(payload fiber.Map, p dto.PageResponse) fiber.Map {
	payload["count"] = p.Count
	payload["totalPages"] = p.TotalPages
	payload["currentPage"] = p.CurrentPage
	return payload
}

func fail(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Success: false, Code: code, Message: message})
}

// handleError traduce errores de dominio al sobre de error HTTP.
func handleError(c *fiber.Ctx, err error) error {
	var stockErr *domain.InsufficientStockError
	if errors.As(err, &stockErr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.InsufficientStockResponse{
			ErrorResponse: dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: stockErr.Error()},
			ProductID:     stockErr.ProductID,
			LocationID:    stockErr.LocationID,
			Requested:     stockErr.Requested.String(),
			Available:     stockErr.Available.String(),
		})
	}

	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return fail(c, fiber.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, domain.ErrAlreadyValidated):
		return fail(c, fiber.StatusBadRequest, "ALREADY_VALIDATED", err.Error())
	case errors.Is(err, domain.ErrInsufficientStock):
		return fail(c, fiber.StatusBadRequest, "INSUFFICIENT_STOCK", err.Error())
	case errors.Is(err, domain.ErrDuplicateReference):
		return fail(c, fiber.StatusBadRequest, "DUPLICATE_REFERENCE", err.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		return fail(c, fiber.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrEmailAlreadyExists):
		return fail(c, fiber.StatusConflict, "DUPLICATE", err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		return fail(c, fiber.StatusUnauthorized, "UNAUTHORIZED", err.Error())
	case errors.Is(err, domain.ErrForbidden):
		return fail(c, fiber.StatusForbidden, "FORBIDDEN", err.Error())
	}

	log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error no controlado")
	return fail(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
}

// ErrorHandler para fiber.Config: errores que escapan de los handlers (404 de ruta, panics recuperados).
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code := "INTERNAL_ERROR"
		switch fe.Code {
		case fiber.StatusNotFound:
			code = "NOT_FOUND"
		case fiber.StatusTooManyRequests:
			code = "RATE_LIMITED"
		case fiber.StatusBadRequest:
			code = "VALIDATION_ERROR"
		}
		return fail(c, fe.Code, code, fe.Message)
	}
	return handleError(c, err)
}
