package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sns-api/internal/application/dto"
	"github.com/jhoicas/sns-api/internal/application/usecase"
)

const solutionEntity = "Solution"

// SolutionHandler expone soluciones en admin y público.
type SolutionHandler struct {
	uc *usecase.SolutionUseCase
}

// NewSolutionHandler construye el handler.
func NewSolutionHandler(uc *usecase.SolutionUseCase) *SolutionHandler {
	return &SolutionHandler{uc: uc}
}

// Create godoc
// @Summary      Crear solución
// @Tags         admin-solutions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSolutionRequest  true  "Datos de la solución"
// @Success      200   {object}  dto.SolutionResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /admin/solutions [post]
func (h *SolutionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSolutionRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err, solutionEntity)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar soluciones (incluye inactivas)
// @Tags         admin-solutions
// @Security     Bearer
// @Produce      json
// @Param        skip   query  int  false  "Offset"  default(0)
// @Param        limit  query  int  false  "Límite"  default(100)
// @Success      200    {array}  dto.SolutionResponse
// @Router       /admin/solutions [get]
func (h *SolutionHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), pageFrom(c))
	if err != nil {
		return writeError(c, err, solutionEntity)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener solución por ID
// @Tags         admin-solutions
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la solución"
// @Success      200  {object}  dto.SolutionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /admin/solutions/{id} [get]
func (h *SolutionHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return invalidID(c)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err, solutionEntity)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar solución
// @Tags         admin-solutions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la solución"
// @Param        body  body  dto.UpdateSolutionRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.SolutionResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /admin/solutions/{id} [put]
func (h *SolutionHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return invalidID(c)
	}
	var in dto.UpdateSolutionRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err, solutionEntity)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar solución
// @Tags         admin-solutions
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la solución"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /admin/solutions/{id} [delete]
func (h *SolutionHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return invalidID(c)
	}
	if _, err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err, solutionEntity)
	}
	return deleted(c, solutionEntity)
}

// PublicList godoc
// @Summary      Soluciones activas
// @Tags         public
// @Produce      json
// @Param        skip   query  int  false  "Offset"  default(0)
// @Param        limit  query  int  false  "Límite"  default(100)
// @Success      200    {array}  dto.SolutionResponse
// @Router       /public/solutions [get]
func (h *SolutionHandler) PublicList(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext(), pageFrom(c))
	if err != nil {
		return writeError(c, err, solutionEntity)
	}
	return c.JSON(onlyActive(list, func(r dto.SolutionResponse) bool { return r.IsActive }))
}

// PublicGetByID godoc
// @Summary      Solución activa por ID
// @Tags         public
// @Produce      json
// @Param        id   path  int  true  "ID de la solución"
// @Success      200  {object}  dto.SolutionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /public/solutions/{id} [get]
func (h *SolutionHandler) PublicGetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return invalidID(c)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err, solutionEntity)
	}
	if !out.IsActive {
		return notFound(c, solutionEntity)
	}
	return c.JSON(out)
}
