package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sns-api/internal/application/dto"
	"github.com/jhoicas/sns-api/pkg/config"
)

// SystemHandler rutas de estado y recursos estáticos del sitio.
type SystemHandler struct {
	version string
	assets  config.AssetsConfig
}

// NewSystemHandler construye el handler.
func NewSystemHandler(version string, assets config.AssetsConfig) *SystemHandler {
	return &SystemHandler{version: version, assets: assets}
}

// Root godoc
// @Summary      Bienvenida
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       / [get]
func (h *SystemHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Welcome to SNS Backend API",
		"version": h.version,
		"docs":    "/docs",
	})
}

// Health godoc
// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *SystemHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "healthy"})
}

// DefaultImages godoc
// @Summary      Imágenes de reemplazo
// @Tags         public
// @Produce      json
// @Success      200  {object}  dto.DefaultImagesResponse
// @Router       /public/default-images [get]
func (h *SystemHandler) DefaultImages(c *fiber.Ctx) error {
	return c.JSON(dto.DefaultImagesResponse{
		ProductImage: h.assets.DefaultProductImage,
		LogoImage:    h.assets.DefaultLogoImage,
	})
}
