package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/sns-api/internal/domain/entity"
	"github.com/jhoicas/sns-api/internal/domain/repository"
)

var _ repository.CompanyInfoRepository = (*CompanyInfoRepo)(nil)

// CompanyInfoRepo implementación del puerto CompanyInfoRepository sobre PostgreSQL.
type CompanyInfoRepo struct {
	q Querier
}

// NewCompanyInfoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCompanyInfoRepository(q Querier) *CompanyInfoRepo {
	return &CompanyInfoRepo{q: q}
}

// Get devuelve la ficha de menor ID, o (nil, nil) si la tabla está vacía.
func (r *CompanyInfoRepo) Get(ctx context.Context) (*entity.CompanyInfo, error) {
	query := `
		SELECT id, company_name, address, phone, email, website, mission, vision, about_us,
			founded_year, total_clients, total_brands, service_days_per_year, created_at, updated_at
		FROM company_info ORDER BY id LIMIT 1`
	var c entity.CompanyInfo
	err := r.q.QueryRow(ctx, query).Scan(
		&c.ID, &c.CompanyName, &c.Address, &c.Phone, &c.Email, &c.Website, &c.Mission, &c.Vision, &c.AboutUs,
		&c.FoundedYear, &c.TotalClients, &c.TotalBrands, &c.ServiceDaysPerYear, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company_info: %w", err)
	}
	return &c, nil
}

// Create inserta la ficha y asigna el ID.
func (r *CompanyInfoRepo) Create(ctx context.Context, c *entity.CompanyInfo) error {
	query := `
		INSERT INTO company_info (company_name, address, phone, email, website, mission, vision, about_us,
			founded_year, total_clients, total_brands, service_days_per_year, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		c.CompanyName, c.Address, c.Phone, c.Email, c.Website, c.Mission, c.Vision, c.AboutUs,
		c.FoundedYear, c.TotalClients, c.TotalBrands, c.ServiceDaysPerYear, c.CreatedAt,
	).Scan(&c.ID)
	if err != nil {
		return writeErr("insert company_info", err)
	}
	return nil
}

// Update persiste todos los campos de la ficha.
func (r *CompanyInfoRepo) Update(ctx context.Context, c *entity.CompanyInfo) error {
	query := `
		UPDATE company_info SET
			company_name = $2, address = $3, phone = $4, email = $5, website = $6, mission = $7, vision = $8,
			about_us = $9, founded_year = $10, total_clients = $11, total_brands = $12,
			service_days_per_year = $13, updated_at = $14
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		c.ID, c.CompanyName, c.Address, c.Phone, c.Email, c.Website, c.Mission, c.Vision,
		c.AboutUs, c.FoundedYear, c.TotalClients, c.TotalBrands, c.ServiceDaysPerYear, c.UpdatedAt,
	)
	if err != nil {
		return writeErr("update company_info", err)
	}
	return expectOne(tag)
}
