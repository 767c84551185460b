package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sns-api/internal/application/dto"
	"github.com/jhoicas/sns-api/internal/application/usecase"
)

const categoryEntity = "Category"

// CategoryHandler maneja las peticiones HTTP para Category (admin y público).
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// Create godoc
// @Summary      Crear categoría
// @Tags         admin-categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategoryRequest  true  "Datos de la categoría"
// @Success      200   {object}  dto.CategoryResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /admin/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err, categoryEntity)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar categorías (incluye inactivas)
// @Tags         admin-categories
// @Security     Bearer
// @Produce      json
// @Param        skip   query  int  false  "Offset"  default(0)
// @Param        limit  query  int  false  "Límite"  default(100)
// @Success      200    {array}  dto.CategoryResponse
// @Router       /admin/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), pageFrom(c))
	if err != nil {
		return writeError(c, err, categoryEntity)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener categoría por ID
// @Tags         admin-categories
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la categoría"
// @Success      200  {object}  dto.CategoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /admin/categories/{id} [get]
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return invalidID(c)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err, categoryEntity)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar categoría
// @Tags         admin-categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la categoría"
// @Param        body  body  dto.UpdateCategoryRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.CategoryResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /admin/categories/{id} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return invalidID(c)
	}
	var in dto.UpdateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err, categoryEntity)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar categoría
// @Tags         admin-categories
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la categoría"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /admin/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return invalidID(c)
	}
	if _, err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err, categoryEntity)
	}
	return deleted(c, categoryEntity)
}

// PublicList godoc
// @Summary      Categorías activas
// @Tags         public
// @Produce      json
// @Param        skip   query  int  false  "Offset"  default(0)
// @Param        limit  query  int  false  "Límite"  default(100)
// @Success      200    {array}  dto.CategoryResponse
// @Router       /public/categories [get]
func (h *CategoryHandler) PublicList(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext(), pageFrom(c))
	if err != nil {
		return writeError(c, err, categoryEntity)
	}
	return c.JSON(onlyActive(list, func(r dto.CategoryResponse) bool { return r.IsActive }))
}

// PublicGetByID godoc
// @Summary      Categoría activa por ID
// @Tags         public
// @Produce      json
// @Param        id   path  int  true  "ID de la categoría"
// @Success      200  {object}  dto.CategoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /public/categories/{id} [get]
func (h *CategoryHandler) PublicGetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return invalidID(c)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err, categoryEntity)
	}
	if !out.IsActive {
		return notFound(c, categoryEntity)
	}
	return c.JSON(out)
}
