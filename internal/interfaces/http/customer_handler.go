package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sns-api/internal/application/dto"
	"github.com/jhoicas/sns-api/internal/application/usecase"
)

const customerEntity = "Customer"

// CustomerHandler logos de clientes.
type CustomerHandler struct {
	uc *usecase.CustomerUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// Create godoc
// @Summary      Crear cliente
// @Tags         admin-customers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCustomerRequest  true  "Datos del cliente"
// @Success      200   {object}  dto.CustomerResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /admin/customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err, customerEntity)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar clientes (incluye inactivos)
// @Tags         admin-customers
// @Security     Bearer
// @Produce      json
// @Param        skip   query  int  false  "Offset"  default(0)
// @Param        limit  query  int  false  "Límite"  default(100)
// @Success      200    {array}  dto.CustomerResponse
// @Router       /admin/customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), pageFrom(c))
	if err != nil {
		return writeError(c, err, customerEntity)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener cliente por ID
// @Tags         admin-customers
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del cliente"
// @Success      200  {object}  dto.CustomerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /admin/customers/{id} [get]
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return invalidID(c)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err, customerEntity)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar cliente
// @Tags         admin-customers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del cliente"
// @Param        body  body  dto.UpdateCustomerRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.CustomerResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /admin/customers/{id} [put]
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return invalidID(c)
	}
	var in dto.UpdateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err, customerEntity)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar cliente
// @Tags         admin-customers
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del cliente"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /admin/customers/{id} [delete]
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return invalidID(c)
	}
	if _, err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err, customerEntity)
	}
	return deleted(c, customerEntity)
}

// PublicList godoc
// @Summary      Clientes activos
// @Tags         public
// @Produce      json
// @Param        skip   query  int  false  "Offset"  default(0)
// @Param        limit  query  int  false  "Límite"  default(100)
// @Success      200    {array}  dto.CustomerResponse
// @Router       /public/customers [get]
func (h *CustomerHandler) PublicList(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext(), pageFrom(c))
	if err != nil {
		return writeError(c, err, customerEntity)
	}
	return c.JSON(onlyActive(list, func(r dto.CustomerResponse) bool { return r.IsActive }))
}

// PublicGetByID godoc
// @Summary      Cliente activo por ID
// @Tags         public
// @Produce      json
// @Param        id   path  int  true  "ID del cliente"
// @Success      200  {object}  dto.CustomerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /public/customers/{id} [get]
func (h *CustomerHandler) PublicGetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return invalidID(c)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err, customerEntity)
	}
	if !out.IsActive {
		return notFound(c, customerEntity)
	}
	return c.JSON(out)
}
