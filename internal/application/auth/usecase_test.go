package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sns-api/internal/application/auth"
	"github.com/jhoicas/sns-api/internal/application/dto"
	"github.com/jhoicas/sns-api/internal/application/usecase"
	"github.com/jhoicas/sns-api/internal/domain"
	"github.com/jhoicas/sns-api/internal/infrastructure/memory"
)

var t0 = time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC)

func setup(t *testing.T) (*auth.AuthUseCase, *memory.Store, *time.Time) {
	t.Helper()
	s := memory.NewStore()
	_, err := usecase.NewAdminUseCase(s.Admins()).Create(context.Background(), dto.CreateAdminRequest{
		Username: "admin", Email: "admin@snsbd.com", Password: "admin123",
	})
	require.NoError(t, err)

	now := t0
	uc := auth.NewAuthUseCase(s.Admins(), auth.JWTConfig{
		Secret: "test-secret", Algorithm: "HS256", ExpMinutes: 30, Issuer: "sns-api-test",
	}).WithClock(func() time.Time { return now })
	return uc, s, &now
}

func TestAuthenticate_CredencialesValidas(t *testing.T) {
	uc, _, _ := setup(t)
	admin, err := uc.Authenticate(context.Background(), "admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "admin", admin.Username)
}

func TestAuthenticate_PasswordIncorrectoSiempreFalla(t *testing.T) {
	uc, _, _ := setup(t)
	ctx := context.Background()

	// sin bloqueo: el password correcto sigue sirviendo tras varios fallos
	for i := 0; i < 5; i++ {
		_, err := uc.Authenticate(ctx, "admin", "wrong")
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	}
	_, err := uc.Authenticate(ctx, "nadie", "admin123")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Authenticate(ctx, "admin", "admin123")
	assert.NoError(t, err)
}

func TestToken_ExpiraSegunTTL(t *testing.T) {
	uc, _, now := setup(t)
	ctx := context.Background()

	admin, err := uc.Authenticate(ctx, "admin", "admin123")
	require.NoError(t, err)
	tok, err := uc.IssueToken(admin, 30)
	require.NoError(t, err)

	*now = t0.Add(29 * time.Minute)
	got, err := uc.VerifyToken(ctx, tok)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, got.ID)

	*now = t0.Add(31 * time.Minute)
	_, err = uc.VerifyToken(ctx, tok)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestVerifyToken_AdminBorrado(t *testing.T) {
	uc, s, _ := setup(t)
	ctx := context.Background()

	out, err := uc.Login(ctx, dto.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, auth.TokenType, out.TokenType)

	admin, err := s.Admins().GetByUsername(ctx, "admin")
	require.NoError(t, err)
	require.NoError(t, s.Admins().Delete(ctx, admin.ID))

	_, err = uc.VerifyToken(ctx, out.AccessToken)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestVerifyToken_MalFormadoYOtroSecreto(t *testing.T) {
	uc, s, _ := setup(t)
	ctx := context.Background()

	_, err := uc.VerifyToken(ctx, "no.es.jwt")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	other := auth.NewAuthUseCase(s.Admins(), auth.JWTConfig{Secret: "otro", Algorithm: "HS256", ExpMinutes: 30})
	admin, err := s.Admins().GetByUsername(ctx, "admin")
	require.NoError(t, err)
	tok, err := other.IssueToken(admin, 30)
	require.NoError(t, err)

	_, err = uc.VerifyToken(ctx, tok)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_CamposVaciosEs401(t *testing.T) {
	uc, _, _ := setup(t)
	_, err := uc.Login(context.Background(), dto.LoginRequest{})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
