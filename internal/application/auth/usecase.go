package auth

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/sns-api/internal/application/dto"
	"github.com/jhoicas/sns-api/internal/domain"
	"github.com/jhoicas/sns-api/internal/domain/entity"
	"github.com/jhoicas/sns-api/internal/domain/repository"
	"github.com/jhoicas/sns-api/pkg/jwt"
)

// TokenType valor fijo de token_type en la respuesta de login.
const TokenType = "bearer"

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	Algorithm  string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: verificación de credenciales y emisión/validación de tokens.
// No hay bloqueo por intentos fallidos.
type AuthUseCase struct {
	adminRepo repository.AdminRepository
	jwtCfg    JWTConfig
	now       func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(adminRepo repository.AdminRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{adminRepo: adminRepo, jwtCfg: jwtCfg, now: time.Now}
}

// WithClock reemplaza el reloj (tests de expiración).
func (uc *AuthUseCase) WithClock(now func() time.Time) *AuthUseCase {
	uc.now = now
	return uc
}

// Authenticate devuelve el admin si username y password coinciden; si no, ErrUnauthorized.
func (uc *AuthUseCase) Authenticate(ctx context.Context, username, password string) (*entity.Admin, error) {
	admin, err := uc.adminRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.HashedPassword), []byte(password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return admin, nil
}

// IssueToken firma un JWT con sub = username que expira en ttlMinutes.
func (uc *AuthUseCase) IssueToken(admin *entity.Admin, ttlMinutes int) (string, error) {
	return jwt.Generate(uc.jwtCfg.Secret, uc.jwtCfg.Algorithm, admin.Username, uc.jwtCfg.Issuer, ttlMinutes, uc.now())
}

// VerifyToken valida firma y expiración y vuelve a buscar al admin por username en cada llamada.
// Cualquier fallo (token mal formado, vencido, firma inválida, admin inexistente) es ErrUnauthorized.
func (uc *AuthUseCase) VerifyToken(ctx context.Context, token string) (*entity.Admin, error) {
	username, err := jwt.Parse(uc.jwtCfg.Secret, uc.jwtCfg.Algorithm, token, uc.now())
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	admin, err := uc.adminRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, domain.ErrUnauthorized
	}
	return admin, nil
}

// Login autentica y emite el token con la expiración configurada.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.TokenResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, domain.ErrUnauthorized
	}
	admin, err := uc.Authenticate(ctx, in.Username, in.Password)
	if err != nil {
		return nil, err
	}
	token, err := uc.IssueToken(admin, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{AccessToken: token, TokenType: TokenType}, nil
}
