package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sns-api/internal/application/dto"
	"github.com/jhoicas/sns-api/internal/application/usecase"
)

const companyInfoEntity = "Company info"

// CompanyInfoHandler expone la ficha única de la empresa.
type CompanyInfoHandler struct {
	uc *usecase.CompanyInfoUseCase
}

func NewCompanyInfoHandler(uc *usecase.CompanyInfoUseCase) *CompanyInfoHandler {
	return &CompanyInfoHandler{uc: uc}
}

// Get godoc
// @Summary      Información de la empresa
// @Tags         company-info
// @Produce      json
// @Success      200  {object}  dto.CompanyInfoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /public/company-info [get]
// @Router       /admin/company-info [get]
func (h *CompanyInfoHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext())
	if err != nil {
		return writeError(c, err, companyInfoEntity)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar información de la empresa
// @Description  Solo modifica los campos enviados. Si la ficha no existe responde 404.
// @Tags         company-info
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateCompanyInfoRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.CompanyInfoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /admin/company-info [put]
func (h *CompanyInfoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCompanyInfoRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), in)
	if err != nil {
		return writeError(c, err, companyInfoEntity)
	}
	return c.JSON(out)
}
