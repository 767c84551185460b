package dto

import "time"

// CreateServiceRequest entrada para crear un servicio. category_id no se verifica contra la tabla.
type CreateServiceRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=200"`
	Description *string `json:"description"`
	CategoryID  *int64  `json:"category_id"`
	Features    *string `json:"features"`
}

// UpdateServiceRequest entrada para actualizar un servicio (campos opcionales).
type UpdateServiceRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description"`
	CategoryID  *int64  `json:"category_id"`
	Features    *string `json:"features"`
	IsActive    *bool   `json:"is_active"`
}

// ServiceResponse salida de un servicio con su categoría resuelta (si existe).
type ServiceResponse struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	Description *string           `json:"description"`
	CategoryID  *int64            `json:"category_id"`
	Features    *string           `json:"features"`
	IsActive    bool              `json:"is_active"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   *time.Time        `json:"updated_at"`
	Category    *CategoryResponse `json:"category"`
}

// CreateSolutionRequest entrada para crear una solución.
type CreateSolutionRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=200"`
	Description *string `json:"description"`
	Features    *string `json:"features"`
}

// UpdateSolutionRequest entrada para actualizar una solución (campos opcionales).
type UpdateSolutionRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description"`
	Features    *string `json:"features"`
	IsActive    *bool   `json:"is_active"`
}

// SolutionResponse salida de una solución.
type SolutionResponse struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	Features    *string    `json:"features"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

// CreateCustomerRequest entrada para crear un cliente de referencia.
type CreateCustomerRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=200"`
	LogoURL     *string `json:"logo_url" validate:"omitempty,max=500"`
	Description *string `json:"description"`
}

// UpdateCustomerRequest entrada para actualizar un cliente (campos opcionales).
type UpdateCustomerRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	LogoURL     *string `json:"logo_url" validate:"omitempty,max=500"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	LogoURL     *string    `json:"logo_url"`
	Description *string    `json:"description"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}
