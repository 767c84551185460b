package entity

import "time"

// Solution representa una solución comercial (sin categoría).
type Solution struct {
	ID          int64
	Name        string
	Description *string
	Features    *string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
