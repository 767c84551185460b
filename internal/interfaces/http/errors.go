package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sns-api/internal/application/dto"
	"github.com/jhoicas/sns-api/internal/domain"
)

// LocalError guarda el error interno para que el access log lo registre.
const LocalError = "handler_error"

// writeError traduce un error de dominio a su respuesta HTTP. entity nombra el recurso en los 404/409.
func writeError(c *fiber.Ctx, err error, entity string) error {
	var verr *dto.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: verr.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrProductNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PRODUCT_NOT_FOUND", Message: "Product not found"})
	case errors.Is(err, domain.ErrNotFound):
		return notFound(c, entity)
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: entity + " already exists"})
	case errors.Is(err, domain.ErrUnauthorized):
		return unauthorized(c, "UNAUTHORIZED", "Could not validate credentials")
	default:
		c.Locals(LocalError, err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "internal server error"})
	}
}

func notFound(c *fiber.Ctx, entity string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: entity + " not found"})
}

func unauthorized(c *fiber.Ctx, code, msg string) error {
	c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
}

func deleted(c *fiber.Ctx, entity string) error {
	return c.JSON(dto.MessageResponse{Message: entity + " deleted successfully"})
}

func isUnauthorized(err error) bool {
	return errors.Is(err, domain.ErrUnauthorized)
}
