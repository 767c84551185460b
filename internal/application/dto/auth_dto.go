package dto

import "time"

// LoginRequest credenciales; se acepta form-urlencoded (/auth/login) o JSON (/auth/login-json).
type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// TokenResponse token de acceso emitido tras el login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// CreateAdminRequest entrada para crear un admin (password en texto, se hashea en el caso de uso).
type CreateAdminRequest struct {
	Username string `json:"username" validate:"required,min=1,max=50"`
	Email    string `json:"email" validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// UpdateAdminRequest actualización parcial de un admin.
type UpdateAdminRequest struct {
	Username *string `json:"username" validate:"omitempty,min=1,max=50"`
	Email    *string `json:"email" validate:"omitempty,email,max=100"`
	Password *string `json:"password" validate:"omitempty,min=6,max=72"`
	IsActive *bool   `json:"is_active"`
}

// UpdateProfileRequest lo que un admin puede cambiar de sí mismo vía /auth/me.
type UpdateProfileRequest struct {
	Email    *string `json:"email" validate:"omitempty,email,max=100"`
	Password *string `json:"password" validate:"omitempty,min=6,max=72"`
}

// AdminResponse salida de un admin (sin hash de password).
type AdminResponse struct {
	ID        int64      `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}
