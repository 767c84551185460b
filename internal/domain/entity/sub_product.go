package entity

import "time"

// Valores por defecto de SubProduct.
const (
	DefaultCurrency           = "USD"
	DefaultAvailabilityStatus = "Available"
)

// SubProduct es el artículo concreto (SKU) que cuelga de un Product.
// Specifications guarda un objeto JSON serializado; Features, Images y Tags listas JSON serializadas.
type SubProduct struct {
	ID                 int64
	Name               string
	Description        *string
	ProductID          int64
	SKU                *string // único cuando está presente
	Brand              *string
	Model              *string
	Specifications     *string
	Features           *string
	Images             *string
	PriceRange         *string
	Currency           *string
	AvailabilityStatus *string
	WarrantyInfo       *string
	SupportInfo        *string
	DocumentationURL   *string
	DatasheetURL       *string
	Tags               *string
	MetaTitle          *string
	MetaDescription    *string
	IsActive           bool
	IsFeatured         bool
	SortOrder          int
	CreatedAt          time.Time
	UpdatedAt          *time.Time
}
