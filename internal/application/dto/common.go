package dto

// Paginación por defecto del listado (skip/limit, como consume el frontend).
const (
	DefaultLimit         = 100
	MaxLimit             = 1000
	DefaultFeaturedLimit = 10
)

// PageRequest paginación para listados.
type PageRequest struct {
	Skip  int `query:"skip"`
	Limit int `query:"limit"`
}

// Normalize aplica valores por defecto y recorta valores fuera de rango.
func (p *PageRequest) Normalize() {
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse acuse de recibo (p. ej. tras un DELETE).
type MessageResponse struct {
	Message string `json:"message"`
}

// DefaultImagesResponse imágenes de reemplazo configuradas.
type DefaultImagesResponse struct {
	ProductImage string `json:"product_image"`
	LogoImage    string `json:"logo_image"`
}
