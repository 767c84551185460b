package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sns-api/internal/application/auth"
	"github.com/jhoicas/sns-api/internal/application/dto"
	"github.com/jhoicas/sns-api/internal/application/usecase"
)

// AuthHandler maneja login y el perfil del admin autenticado.
type AuthHandler struct {
	uc     *auth.AuthUseCase
	admins *usecase.AdminUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, admins *usecase.AdminUseCase) *AuthHandler {
	return &AuthHandler{uc: uc, admins: admins}
}

// Login godoc
// @Summary      Iniciar sesión (formulario OAuth2 password)
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username  formData  string  true  "Usuario"
// @Param        password  formData  string  true  "Contraseña"
// @Success      200   {object}  dto.TokenResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	return h.login(c, in)
}

// LoginJSON godoc
// @Summary      Iniciar sesión (JSON)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.TokenResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /auth/login-json [post]
func (h *AuthHandler) LoginJSON(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	return h.login(c, in)
}

func (h *AuthHandler) login(c *fiber.Ctx, in dto.LoginRequest) error {
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		if isUnauthorized(err) {
			return unauthorized(c, "UNAUTHORIZED", "Incorrect username or password")
		}
		return writeError(c, err, "Admin")
	}
	return c.JSON(out)
}

// Me godoc
// @Summary      Admin autenticado
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AdminResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.JSON(usecase.ToAdminResponse(GetAdmin(c)))
}

// UpdateMe godoc
// @Summary      Actualizar email o contraseña propios
// @Tags         auth
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateProfileRequest  true  "Campos a cambiar"
// @Success      200   {object}  dto.AdminResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /auth/me [put]
func (h *AuthHandler) UpdateMe(c *fiber.Ctx) error {
	var in dto.UpdateProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.admins.UpdateProfile(c.UserContext(), GetAdmin(c).ID, in)
	if err != nil {
		return writeError(c, err, "Admin")
	}
	return c.JSON(out)
}
