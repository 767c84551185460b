package entity

import "time"

// Category agrupa productos y servicios del catálogo.
type Category struct {
	ID          int64
	Name        string // único
	Description *string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
