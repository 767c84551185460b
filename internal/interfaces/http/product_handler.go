package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sns-api/internal/application/dto"
	"github.com/jhoicas/sns-api/internal/application/usecase"
)

const productEntity = "Product"

// ProductHandler maneja las peticiones HTTP para Product.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create godoc
// @Summary      Crear producto
// @Description  category_id no se valida contra la tabla de categorías.
// @Tags         admin-products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      200   {object}  dto.ProductResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /admin/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err, productEntity)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar productos (incluye inactivos)
// @Tags         admin-products
// @Security     Bearer
// @Produce      json
// @Param        skip   query  int  false  "Offset"  default(0)
// @Param        limit  query  int  false  "Límite"  default(100)
// @Success      200    {array}  dto.ProductResponse
// @Router       /admin/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), pageFrom(c))
	if err != nil {
		return writeError(c, err, productEntity)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         admin-products
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /admin/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return invalidID(c)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err, productEntity)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         admin-products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /admin/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return invalidID(c)
	}
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err, productEntity)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar producto y sus sub-productos
// @Tags         admin-products
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /admin/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return invalidID(c)
	}
	if _, err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err, productEntity)
	}
	return deleted(c, productEntity)
}

// PublicList godoc
// @Summary      Productos activos
// @Tags         public
// @Produce      json
// @Param        skip   query  int  false  "Offset"  default(0)
// @Param        limit  query  int  false  "Límite"  default(100)
// @Success      200    {array}  dto.ProductResponse
// @Router       /public/products [get]
func (h *ProductHandler) PublicList(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext(), pageFrom(c))
	if err != nil {
		return writeError(c, err, productEntity)
	}
	return c.JSON(onlyActive(list, func(r dto.ProductResponse) bool { return r.IsActive }))
}

// PublicGetByID godoc
// @Summary      Producto activo por ID
// @Tags         public
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /public/products/{id} [get]
func (h *ProductHandler) PublicGetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return invalidID(c)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err, productEntity)
	}
	if !out.IsActive {
		return notFound(c, productEntity)
	}
	return c.JSON(out)
}
