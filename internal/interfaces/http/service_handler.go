package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sns-api/internal/application/dto"
	"github.com/jhoicas/sns-api/internal/application/usecase"
)

const serviceEntity = "Service"

// ServiceHandler maneja las peticiones HTTP para Service.
type ServiceHandler struct {
	uc *usecase.ServiceUseCase
}

// NewServiceHandler construye el handler.
func NewServiceHandler(uc *usecase.ServiceUseCase) *ServiceHandler {
	return &ServiceHandler{uc: uc}
}

// Create godoc
// @Summary      Crear servicio
// @Description  category_id no se valida contra la tabla de categorías.
// @Tags         admin-services
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateServiceRequest  true  "Datos del servicio"
// @Success      200   {object}  dto.ServiceResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /admin/services [post]
func (h *ServiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateServiceRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err, serviceEntity)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar servicios (incluye inactivos)
// @Tags         admin-services
// @Security     Bearer
// @Produce      json
// @Param        skip   query  int  false  "Offset"  default(0)
// @Param        limit  query  int  false  "Límite"  default(100)
// @Success      200    {array}  dto.ServiceResponse
// @Router       /admin/services [get]
func (h *ServiceHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), pageFrom(c))
	if err != nil {
		return writeError(c, err, serviceEntity)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener servicio por ID
// @Tags         admin-services
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del servicio"
// @Success      200  {object}  dto.ServiceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /admin/services/{id} [get]
func (h *ServiceHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return invalidID(c)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err, serviceEntity)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar servicio
// @Tags         admin-services
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del servicio"
// @Param        body  body  dto.UpdateServiceRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ServiceResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /admin/services/{id} [put]
func (h *ServiceHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return invalidID(c)
	}
	var in dto.UpdateServiceRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err, serviceEntity)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar servicio
// @Tags         admin-services
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del servicio"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /admin/services/{id} [delete]
func (h *ServiceHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return invalidID(c)
	}
	if _, err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err, serviceEntity)
	}
	return deleted(c, serviceEntity)
}

// PublicList godoc
// @Summary      Servicios activos
// @Tags         public
// @Produce      json
// @Param        skip   query  int  false  "Offset"  default(0)
// @Param        limit  query  int  false  "Límite"  default(100)
// @Success      200    {array}  dto.ServiceResponse
// @Router       /public/services [get]
func (h *ServiceHandler) PublicList(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext(), pageFrom(c))
	if err != nil {
		return writeError(c, err, serviceEntity)
	}
	return c.JSON(onlyActive(list, func(r dto.ServiceResponse) bool { return r.IsActive }))
}

// PublicGetByID godoc
// @Summary      Servicio activo por ID
// @Tags         public
// @Produce      json
// @Param        id   path  int  true  "ID del servicio"
// @Success      200  {object}  dto.ServiceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /public/services/{id} [get]
func (h *ServiceHandler) PublicGetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return invalidID(c)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err, serviceEntity)
	}
	if !out.IsActive {
		return notFound(c, serviceEntity)
	}
	return c.JSON(out)
}
