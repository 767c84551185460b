package dto

import "time"

// CreateCompanyInfoRequest datos de provisión de la ficha de empresa.
type CreateCompanyInfoRequest struct {
	CompanyName        string  `json:"company_name" validate:"required,min=1,max=200"`
	Address            *string `json:"address"`
	Phone              *string `json:"phone" validate:"omitempty,max=50"`
	Email              *string `json:"email" validate:"omitempty,max=100"`
	Website            *string `json:"website" validate:"omitempty,max=200"`
	Mission            *string `json:"mission"`
	Vision             *string `json:"vision"`
	AboutUs            *string `json:"about_us"`
	FoundedYear        *int    `json:"founded_year" validate:"omitempty,gte=0,lte=2147483647"`
	TotalClients       *int    `json:"total_clients" validate:"omitempty,gte=0,lte=2147483647"`
	TotalBrands        *int    `json:"total_brands" validate:"omitempty,gte=0,lte=2147483647"`
	ServiceDaysPerYear *int    `json:"service_days_per_year" validate:"omitempty,gte=0,lte=2147483647"`
}

// UpdateCompanyInfoRequest actualización parcial de la ficha de empresa.
type UpdateCompanyInfoRequest struct {
	CompanyName        *string `json:"company_name" validate:"omitempty,min=1,max=200"`
	Address            *string `json:"address"`
	Phone              *string `json:"phone" validate:"omitempty,max=50"`
	Email              *string `json:"email" validate:"omitempty,max=100"`
	Website            *string `json:"website" validate:"omitempty,max=200"`
	Mission            *string `json:"mission"`
	Vision             *string `json:"vision"`
	AboutUs            *string `json:"about_us"`
	FoundedYear        *int    `json:"founded_year" validate:"omitempty,gte=0,lte=2147483647"`
	TotalClients       *int    `json:"total_clients" validate:"omitempty,gte=0,lte=2147483647"`
	TotalBrands        *int    `json:"total_brands" validate:"omitempty,gte=0,lte=2147483647"`
	ServiceDaysPerYear *int    `json:"service_days_per_year" validate:"omitempty,gte=0,lte=2147483647"`
}

// CompanyInfoResponse salida de la ficha de empresa.
type CompanyInfoResponse struct {
	ID                 int64      `json:"id"`
	CompanyName        string     `json:"company_name"`
	Address            *string    `json:"address"`
	Phone              *string    `json:"phone"`
	Email              *string    `json:"email"`
	Website            *string    `json:"website"`
	Mission            *string    `json:"mission"`
	Vision             *string    `json:"vision"`
	AboutUs            *string    `json:"about_us"`
	FoundedYear        *int       `json:"founded_year"`
	TotalClients       *int       `json:"total_clients"`
	TotalBrands        *int       `json:"total_brands"`
	ServiceDaysPerYear *int       `json:"service_days_per_year"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          *time.Time `json:"updated_at"`
}
