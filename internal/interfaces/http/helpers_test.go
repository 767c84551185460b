package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sns-api/internal/application/auth"
	"github.com/jhoicas/sns-api/internal/application/dto"
	"github.com/jhoicas/sns-api/internal/application/usecase"
	"github.com/jhoicas/sns-api/internal/domain/entity"
	"github.com/jhoicas/sns-api/internal/infrastructure/storage"
	apphttp "github.com/jhoicas/sns-api/internal/interfaces/http"
	"github.com/jhoicas/sns-api/pkg/config"
	"github.com/jhoicas/sns-api/pkg/logger"
)

const (
	testAdmin    = "admin"
	testPassword = "admin123"
)

// fakeDatasheets evita generar un PDF real en los tests de handlers.
type fakeDatasheets struct{}

func (fakeDatasheets) GenerateDatasheet(_ context.Context, sp *entity.SubProduct, _ *entity.Product) ([]byte, error) {
	return []byte("%PDF-1.3 " + sp.Name), nil
}

type testServer struct {
	app     *fiber.App
	repos   *storage.Repositories
	company *usecase.CompanyInfoUseCase
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	repos := storage.NewMemory()
	cfg := &config.Config{
		App:  config.AppConfig{Env: "test", Name: "SNS Backend API", Version: "1.0.0"},
		JWT:  config.JWTConfig{Secret: "test-secret", Algorithm: "HS256", Expiration: 30, Issuer: "sns-api-test"},
		HTTP: config.HTTPConfig{CORSOrigins: config.DefaultCORSOrigins, DocsPath: "./no-existe/swagger.json"},
		Assets: config.AssetsConfig{
			DefaultProductImage: "https://picsum.photos/400/300?random=1",
			DefaultLogoImage:    "https://picsum.photos/200/100?random=2",
		},
	}

	adminUC := usecase.NewAdminUseCase(repos.Admins)
	_, err := adminUC.Create(context.Background(), dto.CreateAdminRequest{
		Username: testAdmin, Email: "admin@snsbd.com", Password: testPassword,
	})
	require.NoError(t, err)

	company := usecase.NewCompanyInfoUseCase(repos.CompanyInfo)
	app := apphttp.NewApp(cfg, logger.Nop(), apphttp.RouterDeps{
		AuthUC: auth.NewAuthUseCase(repos.Admins, auth.JWTConfig{
			Secret: cfg.JWT.Secret, Algorithm: cfg.JWT.Algorithm, ExpMinutes: cfg.JWT.Expiration, Issuer: cfg.JWT.Issuer,
		}),
		AdminUC:       adminUC,
		CategoryUC:    usecase.NewCategoryUseCase(repos.Categories),
		ProductUC:     usecase.NewProductUseCase(repos.Products, repos.Categories, repos.Tx),
		SubProductUC:  usecase.NewSubProductUseCase(repos.SubProducts, repos.Products, fakeDatasheets{}),
		ServiceUC:     usecase.NewServiceUseCase(repos.Services, repos.Categories),
		SolutionUC:    usecase.NewSolutionUseCase(repos.Solutions),
		CustomerUC:    usecase.NewCustomerUseCase(repos.Customers),
		CompanyInfoUC: company,
		Version:       cfg.App.Version,
		Assets:        cfg.Assets,
	})
	return &testServer{app: app, repos: repos, company: company}
}

// login devuelve el header Authorization listo para usar.
func (s *testServer) login(t *testing.T) string {
	t.Helper()
	resp, body := s.do(t, http.MethodPost, "/auth/login-json", "", dto.LoginRequest{Username: testAdmin, Password: testPassword})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var tok dto.TokenResponse
	require.NoError(t, json.Unmarshal(body, &tok))
	return "Bearer " + tok.AccessToken
}

// do envía body como JSON (si no es nil) y devuelve la respuesta con el cuerpo ya leído.
func (s *testServer) do(t *testing.T, method, path, authHeader string, body any) (*http.Response, []byte) {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if authHeader != "" {
		req.Header.Set(fiber.HeaderAuthorization, authHeader)
	}
	return s.send(t, req)
}

func (s *testServer) form(t *testing.T, path, encoded string) (*http.Response, []byte) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(encoded))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	return s.send(t, req)
}

func (s *testServer) send(t *testing.T, req *http.Request) (*http.Response, []byte) {
	t.Helper()
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, out
}

func decode[T any](t *testing.T, body []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(body, &v), string(body))
	return v
}
