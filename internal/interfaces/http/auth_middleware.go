package http

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sns-api/internal/domain"
	"github.com/jhoicas/sns-api/internal/domain/entity"
)

// LocalAdmin key de c.Locals con el *entity.Admin autenticado.
const LocalAdmin = "admin"

// TokenVerifier valida un token y devuelve el admin al que pertenece.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*entity.Admin, error)
}

// AuthMiddleware valida el Bearer Token y carga el admin en c.Locals.
// El admin se vuelve a buscar en cada petición; un token de un admin borrado deja de servir.
func AuthMiddleware(verifier TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return unauthorized(c, "MISSING_TOKEN", "Not authenticated")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return unauthorized(c, "INVALID_TOKEN", "Authorization header must be: Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return unauthorized(c, "MISSING_TOKEN", "Not authenticated")
		}
		admin, err := verifier.VerifyToken(c.UserContext(), tokenString)
		if err != nil {
			if errors.Is(err, domain.ErrUnauthorized) {
				return unauthorized(c, "INVALID_TOKEN", "Could not validate credentials")
			}
			return writeError(c, err, "Admin")
		}
		c.Locals(LocalAdmin, admin)
		return c.Next()
	}
}

// GetAdmin devuelve el admin autenticado (después del middleware de auth).
func GetAdmin(c *fiber.Ctx) *entity.Admin {
	a, _ := c.Locals(LocalAdmin).(*entity.Admin)
	return a
}
