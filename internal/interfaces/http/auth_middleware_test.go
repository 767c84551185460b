package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sns-api/internal/application/dto"
	"github.com/jhoicas/sns-api/internal/domain"
	"github.com/jhoicas/sns-api/internal/domain/entity"
	apphttp "github.com/jhoicas/sns-api/internal/interfaces/http"
)

// stubVerifier acepta solo el token "valido".
type stubVerifier struct {
	err error
}

func (v stubVerifier) VerifyToken(_ context.Context, token string) (*entity.Admin, error) {
	if v.err != nil {
		return nil, v.err
	}
	if token != "valido" {
		return nil, domain.ErrUnauthorized
	}
	return &entity.Admin{ID: 7, Username: "admin"}, nil
}

// buildTestApp monta el middleware delante de un handler que devuelve el admin cargado.
func buildTestApp(v apphttp.TokenVerifier) *fiber.App {
	app := fiber.New()
	app.Get("/protected", apphttp.AuthMiddleware(v), func(c *fiber.Ctx) error {
		a := apphttp.GetAdmin(c)
		return c.JSON(fiber.Map{"username": a.Username})
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) (*http.Response, dto.ErrorResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set(fiber.HeaderAuthorization, authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var e dto.ErrorResponse
	_ = json.Unmarshal(raw, &e)
	return resp, e
}

func TestAuthMiddleware_SinHeader(t *testing.T) {
	resp, e := doRequest(t, buildTestApp(stubVerifier{}), "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_TOKEN", e.Code)
	assert.Equal(t, "Not authenticated", e.Message)
	assert.Equal(t, "Bearer", resp.Header.Get(fiber.HeaderWWWAuthenticate))
}

func TestAuthMiddleware_EsquemaNoBearer(t *testing.T) {
	resp, e := doRequest(t, buildTestApp(stubVerifier{}), "Basic YWRtaW46YWRtaW4=")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", e.Code)
}

func TestAuthMiddleware_BearerVacio(t *testing.T) {
	resp, e := doRequest(t, buildTestApp(stubVerifier{}), "Bearer   ")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_TOKEN", e.Code)
}

func TestAuthMiddleware_TokenInvalido(t *testing.T) {
	resp, e := doRequest(t, buildTestApp(stubVerifier{}), "Bearer otro")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", e.Code)
	assert.Equal(t, "Could not validate credentials", e.Message)
	assert.Equal(t, "Bearer", resp.Header.Get(fiber.HeaderWWWAuthenticate))
}

func TestAuthMiddleware_TokenValido_CargaAdmin(t *testing.T) {
	app := buildTestApp(stubVerifier{})
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "bearer valido")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "admin", body["username"])
}

func TestAuthMiddleware_FalloDeAlmacenamiento_Es500(t *testing.T) {
	resp, e := doRequest(t, buildTestApp(stubVerifier{err: errors.New("conexión perdida")}), "Bearer valido")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "INTERNAL", e.Code)
}
