package dto

import "time"

// CreateProductRequest entrada para crear un producto. category_id no se verifica contra la tabla.
type CreateProductRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=200"`
	Description *string `json:"description"`
	CategoryID  *int64  `json:"category_id"`
	ImageURL    *string `json:"image_url" validate:"omitempty,max=500"`
}

// UpdateProductRequest entrada para actualizar un producto (campos opcionales).
type UpdateProductRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description"`
	CategoryID  *int64  `json:"category_id"`
	ImageURL    *string `json:"image_url" validate:"omitempty,max=500"`
	IsActive    *bool   `json:"is_active"`
}

// ProductResponse salida de un producto con su categoría resuelta (si existe).
type ProductResponse struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	Description *string           `json:"description"`
	CategoryID  *int64            `json:"category_id"`
	ImageURL    *string           `json:"image_url"`
	IsActive    bool              `json:"is_active"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   *time.Time        `json:"updated_at"`
	Category    *CategoryResponse `json:"category"`
}
