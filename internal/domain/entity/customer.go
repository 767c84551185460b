package entity

import "time"

// Customer es un cliente de referencia mostrado con su logo en el sitio.
type Customer struct {
	ID          int64
	Name        string
	LogoURL     *string
	Description *string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
