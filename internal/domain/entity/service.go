package entity

import "time"

// Service representa un servicio ofrecido; Features es una lista JSON serializada.
type Service struct {
	ID          int64
	Name        string
	Description *string
	CategoryID  *int64
	Features    *string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
