package entity

import "time"

// Valores por defecto de CompanyInfo.
const (
	DefaultServiceDaysPerYear = 365
)

// CompanyInfo es la ficha institucional de la empresa. La aplicación consume una sola fila.
type CompanyInfo struct {
	ID                 int64
	CompanyName        string
	Address            *string
	Phone              *string
	Email              *string
	Website            *string
	Mission            *string
	Vision             *string
	AboutUs            *string
	FoundedYear        *int
	TotalClients       *int
	TotalBrands        *int
	ServiceDaysPerYear *int
	CreatedAt          time.Time
	UpdatedAt          *time.Time
}
