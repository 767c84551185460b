package http_test

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sns-api/internal/application/dto"
)

func ptr[T any](v T) *T { return &v }

func TestSistema_RootHealthDefaultImages(t *testing.T) {
	s := newTestServer(t)

	resp, body := s.do(t, http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	root := decode[map[string]string](t, body)
	assert.Equal(t, "Welcome to SNS Backend API", root["message"])
	assert.Equal(t, "1.0.0", root["version"])
	assert.Equal(t, "/docs", root["docs"])

	resp, body = s.do(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"healthy"}`, string(body))

	resp, body = s.do(t, http.MethodGet, "/public/default-images", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	imgs := decode[dto.DefaultImagesResponse](t, body)
	assert.Equal(t, "https://picsum.photos/400/300?random=1", imgs.ProductImage)
	assert.Equal(t, "https://picsum.photos/200/100?random=2", imgs.LogoImage)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))
}

func TestLogin_FormYJSON(t *testing.T) {
	s := newTestServer(t)

	resp, body := s.form(t, "/auth/login", "username=admin&password=admin123")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	tok := decode[dto.TokenResponse](t, body)
	assert.NotEmpty(t, tok.AccessToken)
	assert.Equal(t, "bearer", tok.TokenType)

	resp, body = s.do(t, http.MethodPost, "/auth/login-json", "", dto.LoginRequest{Username: "admin", Password: "mala"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Bearer", resp.Header.Get(fiber.HeaderWWWAuthenticate))
	assert.Equal(t, "Incorrect username or password", decode[dto.ErrorResponse](t, body).Message)

	resp, _ = s.form(t, "/auth/login", "username=nadie&password=admin123")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMe_LeeYActualizaPerfil(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t)

	resp, body := s.do(t, http.MethodGet, "/auth/me", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	me := decode[dto.AdminResponse](t, body)
	assert.Equal(t, "admin", me.Username)
	assert.NotContains(t, string(body), "password")

	resp, body = s.do(t, http.MethodPut, "/auth/me", token, dto.UpdateProfileRequest{Password: ptr("nuevo-secreto")})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	resp, _ = s.form(t, "/auth/login", "username=admin&password=admin123")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp, _ = s.form(t, "/auth/login", "username=admin&password=nuevo-secreto")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthMe_PasswordDemasiadoLargo_422(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t)

	for _, pw := range []string{strings.Repeat("x", 80), strings.Repeat("ñ", 40)} {
		resp, body := s.do(t, http.MethodPut, "/auth/me", token, dto.UpdateProfileRequest{Password: ptr(pw)})
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode, string(body))
		assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, body).Code)
	}

	// el password original sigue sirviendo
	resp, _ := s.form(t, "/auth/login", "username=admin&password=admin123")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCompanyInfo_EnteroFueraDeRango_422(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t)
	_, err := s.company.Create(context.Background(), dto.CreateCompanyInfoRequest{CompanyName: "SNS"})
	require.NoError(t, err)

	resp, body := s.do(t, http.MethodPut, "/admin/company-info", token, map[string]any{"total_clients": int64(1) << 32})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode, string(body))
	assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, body).Code)
}

func TestEscenario_CatalogoPublicoYDesactivacion(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t)

	resp, body := s.do(t, http.MethodPost, "/admin/categories", token, dto.CreateCategoryRequest{Name: "Network & Security"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	cat := decode[dto.CategoryResponse](t, body)

	resp, body = s.do(t, http.MethodPost, "/admin/products", token, dto.CreateProductRequest{Name: "Cisco Networking", CategoryID: &cat.ID})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	product := decode[dto.ProductResponse](t, body)
	require.NotNil(t, product.Category)
	assert.Equal(t, "Network & Security", product.Category.Name)

	resp, body = s.do(t, http.MethodPost, "/admin/sub-products", token, dto.CreateSubProductRequest{
		Name: "Catalyst 9300", ProductID: product.ID, Brand: ptr("Cisco"), SKU: ptr("C9300-48P"),
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	sub := decode[dto.SubProductResponse](t, body)
	assert.Equal(t, "USD", *sub.Currency)

	resp, body = s.do(t, http.MethodGet, fmt.Sprintf("/public/products/%d/sub-products", product.ID), "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	listed := decode[[]dto.SubProductResponse](t, body)
	require.Len(t, listed, 1)
	assert.Equal(t, sub.ID, listed[0].ID)

	// desactivar el producto lo oculta en público
	resp, body = s.do(t, http.MethodPut, fmt.Sprintf("/admin/products/%d", product.ID), token, dto.UpdateProductRequest{IsActive: ptr(false)})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.False(t, decode[dto.ProductResponse](t, body).IsActive)

	resp, body = s.do(t, http.MethodGet, "/public/products", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decode[[]dto.ProductResponse](t, body))

	resp, _ = s.do(t, http.MethodGet, fmt.Sprintf("/public/products/%d", product.ID), "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, body = s.do(t, http.MethodGet, fmt.Sprintf("/admin/products/%d", product.ID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, decode[dto.ProductResponse](t, body).IsActive)

	resp, body = s.do(t, http.MethodGet, "/admin/products", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]dto.ProductResponse](t, body), 1)

	// lo mismo para el sub-producto
	resp, _ = s.do(t, http.MethodPut, fmt.Sprintf("/admin/sub-products/%d", sub.ID), token, dto.UpdateSubProductRequest{IsActive: ptr(false)})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = s.do(t, http.MethodGet, fmt.Sprintf("/public/products/%d/sub-products", product.ID), "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decode[[]dto.SubProductResponse](t, body))

	resp, body = s.do(t, http.MethodGet, "/public/sub-products", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decode[[]dto.SubProductResponse](t, body))

	resp, _ = s.do(t, http.MethodGet, fmt.Sprintf("/public/sub-products/%d", sub.ID), "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, body = s.do(t, http.MethodGet, "/admin/sub-products?is_active=false", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]dto.SubProductResponse](t, body), 1)
}

func TestSearch_PorMarcaYSinResultados(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t)

	_, body := s.do(t, http.MethodPost, "/admin/products", token, dto.CreateProductRequest{Name: "Storage"})
	product := decode[dto.ProductResponse](t, body)
	resp, body := s.do(t, http.MethodPost, "/admin/sub-products", token, dto.CreateSubProductRequest{
		Name: "ME5012", ProductID: product.ID, Brand: ptr("Dell"),
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	resp, body = s.do(t, http.MethodGet, "/public/sub-products/search?q=dell", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	found := decode[[]dto.SubProductResponse](t, body)
	require.Len(t, found, 1)
	assert.Equal(t, "ME5012", found[0].Name)

	resp, body = s.do(t, http.MethodGet, "/admin/sub-products/search?q=juniper", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[]`, string(body))

	resp, body = s.do(t, http.MethodGet, "/public/sub-products/search", "", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, body).Code)
}

func TestFeatured_RutaAntesDeID(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t)

	_, body := s.do(t, http.MethodPost, "/admin/products", token, dto.CreateProductRequest{Name: "Hikvision"})
	product := decode[dto.ProductResponse](t, body)
	for i := 0; i < 3; i++ {
		resp, body := s.do(t, http.MethodPost, "/admin/sub-products", token, dto.CreateSubProductRequest{
			Name: fmt.Sprintf("Cam %d", i), ProductID: product.ID, IsFeatured: ptr(true),
		})
		require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	}

	resp, body := s.do(t, http.MethodGet, "/public/sub-products/featured?limit=2", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.Len(t, decode[[]dto.SubProductResponse](t, body), 2)

	resp, body = s.do(t, http.MethodGet, "/admin/sub-products/featured", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.Len(t, decode[[]dto.SubProductResponse](t, body), 3)
}

func TestDeleteProducto_CascadaYMensaje(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t)

	_, body := s.do(t, http.MethodPost, "/admin/products", token, dto.CreateProductRequest{Name: "Fortinet"})
	product := decode[dto.ProductResponse](t, body)
	var ids []int64
	for _, name := range []string{"FortiGate 60F", "FortiGate 100F"} {
		_, body := s.do(t, http.MethodPost, "/admin/sub-products", token, dto.CreateSubProductRequest{Name: name, ProductID: product.ID})
		ids = append(ids, decode[dto.SubProductResponse](t, body).ID)
	}

	resp, body := s.do(t, http.MethodDelete, fmt.Sprintf("/admin/products/%d", product.ID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"message":"Product deleted successfully"}`, string(body))

	for _, id := range ids {
		resp, _ := s.do(t, http.MethodGet, fmt.Sprintf("/admin/sub-products/%d", id), token, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	}

	resp, body = s.do(t, http.MethodDelete, fmt.Sprintf("/admin/products/%d", product.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Product not found", decode[dto.ErrorResponse](t, body).Message)
}

func TestErrores_ValidacionReferenciaYID(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t)

	resp, body := s.do(t, http.MethodPost, "/admin/categories", token, map[string]any{})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, body).Code)

	resp, body = s.do(t, http.MethodPost, "/admin/sub-products", token, dto.CreateSubProductRequest{Name: "X", ProductID: 999})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	e := decode[dto.ErrorResponse](t, body)
	assert.Equal(t, "PRODUCT_NOT_FOUND", e.Code)
	assert.Equal(t, "Product not found", e.Message)

	resp, body = s.do(t, http.MethodGet, "/admin/services/abc", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_ID", decode[dto.ErrorResponse](t, body).Code)

	resp, body = s.do(t, http.MethodPost, "/admin/categories", token, dto.CreateCategoryRequest{Name: "IT Services"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	resp, body = s.do(t, http.MethodPost, "/admin/categories", token, dto.CreateCategoryRequest{Name: "IT Services"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "DUPLICATE", decode[dto.ErrorResponse](t, body).Code)

	resp, body = s.do(t, http.MethodGet, "/admin/solutions/77", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Solution not found", decode[dto.ErrorResponse](t, body).Message)
}

func TestCategoriaInexistenteNoSeVerifica(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t)

	resp, body := s.do(t, http.MethodPost, "/admin/services", token, dto.CreateServiceRequest{Name: "IT Audit", CategoryID: ptr(int64(500))})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	svc := decode[dto.ServiceResponse](t, body)
	assert.Equal(t, int64(500), *svc.CategoryID)
	assert.Nil(t, svc.Category)
}

func TestCRUD_SolucionesYClientes(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t)

	resp, body := s.do(t, http.MethodPost, "/admin/solutions", token, dto.CreateSolutionRequest{Name: "Backup & Storage"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	sol := decode[dto.SolutionResponse](t, body)

	resp, body = s.do(t, http.MethodGet, fmt.Sprintf("/public/solutions/%d", sol.ID), "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Backup & Storage", decode[dto.SolutionResponse](t, body).Name)

	resp, body = s.do(t, http.MethodDelete, fmt.Sprintf("/admin/solutions/%d", sol.ID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"message":"Solution deleted successfully"}`, string(body))

	resp, body = s.do(t, http.MethodPost, "/admin/customers", token, dto.CreateCustomerRequest{Name: "Customer 1"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	cust := decode[dto.CustomerResponse](t, body)

	resp, _ = s.do(t, http.MethodPut, fmt.Sprintf("/admin/customers/%d", cust.ID), token, dto.UpdateCustomerRequest{IsActive: ptr(false)})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = s.do(t, http.MethodGet, "/public/customers", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decode[[]dto.CustomerResponse](t, body))

	resp, body = s.do(t, http.MethodGet, "/admin/customers", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]dto.CustomerResponse](t, body), 1)
}

func TestCompanyInfo_PublicoYAdmin(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t)

	resp, body := s.do(t, http.MethodGet, "/public/company-info", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Company info not found", decode[dto.ErrorResponse](t, body).Message)

	_, err := s.company.Create(context.Background(), dto.CreateCompanyInfoRequest{CompanyName: "Star Network Solutions"})
	require.NoError(t, err)

	resp, body = s.do(t, http.MethodPut, "/admin/company-info", token, dto.UpdateCompanyInfoRequest{TotalClients: ptr(70)})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	resp, body = s.do(t, http.MethodGet, "/public/company-info", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	info := decode[dto.CompanyInfoResponse](t, body)
	assert.Equal(t, "Star Network Solutions", info.CompanyName)
	assert.Equal(t, 70, *info.TotalClients)
	assert.Equal(t, 365, *info.ServiceDaysPerYear)
}

func TestDatasheet_AdminYPublico(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t)

	_, body := s.do(t, http.MethodPost, "/admin/products", token, dto.CreateProductRequest{Name: "APC"})
	product := decode[dto.ProductResponse](t, body)
	_, body = s.do(t, http.MethodPost, "/admin/sub-products", token, dto.CreateSubProductRequest{
		Name: "Smart-UPS 1500", ProductID: product.ID, SKU: ptr("SMT1500I"),
	})
	sub := decode[dto.SubProductResponse](t, body)

	path := fmt.Sprintf("/public/sub-products/%d/datasheet", sub.ID)
	resp, body := s.do(t, http.MethodGet, path, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.Equal(t, `attachment; filename="smt1500i-datasheet.pdf"`, resp.Header.Get(fiber.HeaderContentDisposition))
	assert.Contains(t, string(body), "%PDF")

	resp, _ = s.do(t, http.MethodPut, fmt.Sprintf("/admin/sub-products/%d", sub.ID), token, dto.UpdateSubProductRequest{IsActive: ptr(false)})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = s.do(t, http.MethodGet, path, "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = s.do(t, http.MethodGet, fmt.Sprintf("/admin/sub-products/%d/datasheet", sub.ID), token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRutaInexistente_ErrorJSON(t *testing.T) {
	s := newTestServer(t)
	resp, body := s.do(t, http.MethodGet, "/no-existe", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decode[dto.ErrorResponse](t, body).Code)
}
