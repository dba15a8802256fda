package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/allanborges/restaurant-api/internal/application/dto"
	"github.com/allanborges/restaurant-api/internal/domain"
	"github.com/allanborges/restaurant-api/pkg/logger"
)

// statusFor mapea la taxonomía de errores de dominio a códigos HTTP.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// writeError responde con el cuerpo de error estándar. Los errores de dominio
// exponen su mensaje; los inesperados se loggean y devuelven un mensaje
// genérico sin detalles internos.
func writeError(c *fiber.Ctx, log *logger.Logger, err error) error {
	status := statusFor(err)
	message := err.Error()
	if status == fiber.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Path()).Str("request_id", RequestID(c)).Msg("error interno")
		message = "error interno del servidor"
	}
	return c.Status(status).JSON(dto.StandardError{
		Timestamp: dto.Timestamp(time.Now()),
		Status:    status,
		Error:     http.StatusText(status),
		Message:   message,
		Path:      c.Path(),
	})
}

// writeValidation responde 400 con la variante de error por campos.
func writeValidation(c *fiber.Ctx, fieldErrs []dto.FieldError) error {
	status := fiber.StatusBadRequest
	return c.Status(status).JSON(dto.ValidationError{
		StandardError: dto.StandardError{
			Timestamp: dto.Timestamp(time.Now()),
			Status:    status,
			Error:     http.StatusText(status),
			Message:   "error de validación",
			Path:      c.Path(),
		},
		Errors: fieldErrs,
	})
}

// writeStatus responde un error plano con el cuerpo estándar (middlewares).
func writeStatus(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.StandardError{
		Timestamp: dto.Timestamp(time.Now()),
		Status:    status,
		Error:     http.StatusText(status),
		Message:   message,
		Path:      c.Path(),
	})
}
