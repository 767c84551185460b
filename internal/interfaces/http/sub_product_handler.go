package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sns-api/internal/application/dto"
	"github.com/jhoicas/sns-api/internal/application/usecase"
)

const subProductEntity = "SubProduct"

// SubProductHandler maneja las peticiones HTTP para SubProduct, incluidas búsqueda, destacados y ficha PDF.
type SubProductHandler struct {
	uc *usecase.SubProductUseCase
}

// NewSubProductHandler construye el handler.
func NewSubProductHandler(uc *usecase.SubProductUseCase) *SubProductHandler {
	return &SubProductHandler{uc: uc}
}

// Create godoc
// @Summary      Crear sub-producto
// @Description  El producto referenciado debe existir (404 PRODUCT_NOT_FOUND si no).
// @Tags         admin-sub-products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSubProductRequest  true  "Datos del sub-producto"
// @Success      200   {object}  dto.SubProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /admin/sub-products [post]
func (h *SubProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSubProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err, subProductEntity)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar sub-productos con filtros
// @Tags         admin-sub-products
// @Security     Bearer
// @Produce      json
// @Param        skip         query  int   false  "Offset"  default(0)
// @Param        limit        query  int   false  "Límite"  default(100)
// @Param        product_id   query  int   false  "Filtrar por producto"
// @Param        is_featured  query  bool  false  "Filtrar destacados"
// @Param        is_active    query  bool  false  "Filtrar por estado"
// @Success      200          {array}  dto.SubProductResponse
// @Router       /admin/sub-products [get]
func (h *SubProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), dto.SubProductListRequest{
		PageRequest: pageFrom(c),
		ProductID:   queryInt64(c, "product_id"),
		IsFeatured:  queryBool(c, "is_featured"),
		IsActive:    queryBool(c, "is_active"),
	})
	if err != nil {
		return writeError(c, err, subProductEntity)
	}
	return c.JSON(out)
}

// ByProduct godoc
// @Summary      Sub-productos activos de un producto
// @Tags         admin-sub-products
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {array}  dto.SubProductResponse
// @Router       /admin/products/{id}/sub-products [get]
// @Router       /public/products/{id}/sub-products [get]
func (h *SubProductHandler) ByProduct(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return invalidID(c)
	}
	out, err := h.uc.ListByProduct(c.UserContext(), id)
	if err != nil {
		return writeError(c, err, subProductEntity)
	}
	return c.JSON(out)
}

// Featured godoc
// @Summary      Sub-productos destacados
// @Tags         admin-sub-products
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Límite"  default(10)
// @Success      200    {array}  dto.SubProductResponse
// @Router       /admin/sub-products/featured [get]
// @Router       /public/sub-products/featured [get]
func (h *SubProductHandler) Featured(c *fiber.Ctx) error {
	out, err := h.uc.ListFeatured(c.UserContext(), c.QueryInt("limit", dto.DefaultFeaturedLimit))
	if err != nil {
		return writeError(c, err, subProductEntity)
	}
	return c.JSON(out)
}

// Search godoc
// @Summary      Buscar sub-productos
// @Description  Subcadena sin distinguir mayúsculas en name, brand, model y tags; solo activos.
// @Tags         admin-sub-products
// @Security     Bearer
// @Produce      json
// @Param        q      query  string  true   "Texto a buscar"
// @Param        skip   query  int     false  "Offset"  default(0)
// @Param        limit  query  int     false  "Límite"  default(100)
// @Success      200    {array}  dto.SubProductResponse
// @Failure      422    {object}  dto.ErrorResponse
// @Router       /admin/sub-products/search [get]
// @Router       /public/sub-products/search [get]
func (h *SubProductHandler) Search(c *fiber.Ctx) error {
	out, err := h.uc.Search(c.UserContext(), c.Query("q"), pageFrom(c))
	if err != nil {
		return writeError(c, err, subProductEntity)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener sub-producto por ID
// @Tags         admin-sub-products
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del sub-producto"
// @Success      200  {object}  dto.SubProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /admin/sub-products/{id} [get]
func (h *SubProductHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return invalidID(c)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err, subProductEntity)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar sub-producto
// @Tags         admin-sub-products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del sub-producto"
// @Param        body  body  dto.UpdateSubProductRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.SubProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /admin/sub-products/{id} [put]
func (h *SubProductHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return invalidID(c)
	}
	var in dto.UpdateSubProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err, subProductEntity)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar sub-producto
// @Tags         admin-sub-products
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del sub-producto"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /admin/sub-products/{id} [delete]
func (h *SubProductHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return invalidID(c)
	}
	if _, err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err, subProductEntity)
	}
	return deleted(c, subProductEntity)
}

// Datasheet godoc
// @Summary      Ficha técnica PDF
// @Tags         admin-sub-products
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  int  true  "ID del sub-producto"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /admin/sub-products/{id}/datasheet [get]
func (h *SubProductHandler) Datasheet(c *fiber.Ctx) error {
	return h.datasheet(c, false)
}

// PublicList godoc
// @Summary      Sub-productos activos
// @Tags         public
// @Produce      json
// @Param        skip        query  int  false  "Offset"  default(0)
// @Param        limit       query  int  false  "Límite"  default(100)
// @Param        product_id  query  int  false  "Filtrar por producto"
// @Success      200         {array}  dto.SubProductResponse
// @Router       /public/sub-products [get]
func (h *SubProductHandler) PublicList(c *fiber.Ctx) error {
	active := true
	out, err := h.uc.List(c.UserContext(), dto.SubProductListRequest{
		PageRequest: pageFrom(c),
		ProductID:   queryInt64(c, "product_id"),
		IsActive:    &active,
	})
	if err != nil {
		return writeError(c, err, subProductEntity)
	}
	return c.JSON(out)
}

// PublicGetByID godoc
// @Summary      Sub-producto activo por ID
// @Tags         public
// @Produce      json
// @Param        id   path  int  true  "ID del sub-producto"
// @Success      200  {object}  dto.SubProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /public/sub-products/{id} [get]
func (h *SubProductHandler) PublicGetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return invalidID(c)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err, subProductEntity)
	}
	if !out.IsActive {
		return notFound(c, subProductEntity)
	}
	return c.JSON(out)
}

// PublicDatasheet ficha PDF pública; un sub-producto inactivo responde 404.
// @Summary      Ficha técnica PDF (pública)
// @Tags         public
// @Produce      application/pdf
// @Param        id   path  int  true  "ID del sub-producto"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /public/sub-products/{id}/datasheet [get]
func (h *SubProductHandler) PublicDatasheet(c *fiber.Ctx) error {
	return h.datasheet(c, true)
}

func (h *SubProductHandler) datasheet(c *fiber.Ctx, activeOnly bool) error {
	id, err := parseID(c, "id")
	if err != nil {
		return invalidID(c)
	}
	pdf, filename, err := h.uc.Datasheet(c.UserContext(), id, activeOnly)
	if err != nil {
		return writeError(c, err, subProductEntity)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdf)
}
