package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sns-api/internal/application/dto"
)

var errInvalidID = errors.New("id must be a positive integer")

// parseID lee el parámetro de ruta name como int64 positivo.
func parseID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

func invalidID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: errInvalidID.Error()})
}

// pageFrom lee skip y limit (por defecto 0 y 100).
func pageFrom(c *fiber.Ctx) dto.PageRequest {
	p := dto.PageRequest{
		Skip:  c.QueryInt("skip", 0),
		Limit: c.QueryInt("limit", dto.DefaultLimit),
	}
	p.Normalize()
	return p
}

// queryBool devuelve nil si el parámetro no viene o no es booleano.
func queryBool(c *fiber.Ctx, key string) *bool {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &b
}

// queryInt64 devuelve nil si el parámetro no viene o no es entero.
func queryInt64(c *fiber.Ctx, key string) *int64 {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}
