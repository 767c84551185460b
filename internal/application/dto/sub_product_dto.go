package dto

import "time"

// CreateSubProductRequest entrada para crear un sub-producto.
// Currency, AvailabilityStatus, IsFeatured y SortOrder toman valores por defecto si no llegan.
type CreateSubProductRequest struct {
	Name               string  `json:"name" validate:"required,min=1,max=200"`
	Description        *string `json:"description"`
	ProductID          int64   `json:"product_id" validate:"required,gt=0"`
	SKU                *string `json:"sku" validate:"omitempty,max=100"`
	Brand              *string `json:"brand" validate:"omitempty,max=100"`
	Model              *string `json:"model" validate:"omitempty,max=100"`
	Specifications     *string `json:"specifications"`
	Features           *string `json:"features"`
	Images             *string `json:"images"`
	PriceRange         *string `json:"price_range" validate:"omitempty,max=100"`
	Currency           *string `json:"currency" validate:"omitempty,max=10"`
	AvailabilityStatus *string `json:"availability_status" validate:"omitempty,max=50"`
	WarrantyInfo       *string `json:"warranty_info"`
	SupportInfo        *string `json:"support_info"`
	DocumentationURL   *string `json:"documentation_url" validate:"omitempty,max=500"`
	DatasheetURL       *string `json:"datasheet_url" validate:"omitempty,max=500"`
	Tags               *string `json:"tags"`
	MetaTitle          *string `json:"meta_title" validate:"omitempty,max=200"`
	MetaDescription    *string `json:"meta_description"`
	IsFeatured         *bool   `json:"is_featured"`
	SortOrder          *int    `json:"sort_order" validate:"omitempty,gte=-2147483648,lte=2147483647"`
}

// UpdateSubProductRequest entrada para actualizar un sub-producto (campos opcionales).
type UpdateSubProductRequest struct {
	Name               *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description        *string `json:"description"`
	ProductID          *int64  `json:"product_id" validate:"omitempty,gt=0"`
	SKU                *string `json:"sku" validate:"omitempty,max=100"`
	Brand              *string `json:"brand" validate:"omitempty,max=100"`
	Model              *string `json:"model" validate:"omitempty,max=100"`
	Specifications     *string `json:"specifications"`
	Features           *string `json:"features"`
	Images             *string `json:"images"`
	PriceRange         *string `json:"price_range" validate:"omitempty,max=100"`
	Currency           *string `json:"currency" validate:"omitempty,max=10"`
	AvailabilityStatus *string `json:"availability_status" validate:"omitempty,max=50"`
	WarrantyInfo       *string `json:"warranty_info"`
	SupportInfo        *string `json:"support_info"`
	DocumentationURL   *string `json:"documentation_url" validate:"omitempty,max=500"`
	DatasheetURL       *string `json:"datasheet_url" validate:"omitempty,max=500"`
	Tags               *string `json:"tags"`
	MetaTitle          *string `json:"meta_title" validate:"omitempty,max=200"`
	MetaDescription    *string `json:"meta_description"`
	IsActive           *bool   `json:"is_active"`
	IsFeatured         *bool   `json:"is_featured"`
	SortOrder          *int    `json:"sort_order" validate:"omitempty,gte=-2147483648,lte=2147483647"`
}

// SubProductListRequest filtros del listado general.
type SubProductListRequest struct {
	PageRequest
	ProductID  *int64
	IsFeatured *bool
	IsActive   *bool
}

// SubProductResponse salida de un sub-producto.
type SubProductResponse struct {
	ID                 int64      `json:"id"`
	Name               string     `json:"name"`
	Description        *string    `json:"description"`
	ProductID          int64      `json:"product_id"`
	SKU                *string    `json:"sku"`
	Brand              *string    `json:"brand"`
	Model              *string    `json:"model"`
	Specifications     *string    `json:"specifications"`
	Features           *string    `json:"features"`
	Images             *string    `json:"images"`
	PriceRange         *string    `json:"price_range"`
	Currency           *string    `json:"currency"`
	AvailabilityStatus *string    `json:"availability_status"`
	WarrantyInfo       *string    `json:"warranty_info"`
	SupportInfo        *string    `json:"support_info"`
	DocumentationURL   *string    `json:"documentation_url"`
	DatasheetURL       *string    `json:"datasheet_url"`
	Tags               *string    `json:"tags"`
	MetaTitle          *string    `json:"meta_title"`
	MetaDescription    *string    `json:"meta_description"`
	IsActive           bool       `json:"is_active"`
	IsFeatured         bool       `json:"is_featured"`
	SortOrder          int        `json:"sort_order"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          *time.Time `json:"updated_at"`
}
