package entity

import "time"

// Admin representa un operador del panel de administración.
type Admin struct {
	ID             int64
	Username       string
	Email          string
	HashedPassword string // bcrypt; nunca se expone en respuestas
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}
