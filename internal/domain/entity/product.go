package entity

import "time"

// Product representa una línea de producto del catálogo.
// Al eliminarse arrastra sus SubProducts.
type Product struct {
	ID          int64
	Name        string
	Description *string
	CategoryID  *int64 // nil = sin categoría
	ImageURL    *string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
