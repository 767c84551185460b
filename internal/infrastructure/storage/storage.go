// Package storage elige el backend de persistencia según DB_DRIVER y expone los repositorios ya construidos.
package storage

import (
	"context"
	"fmt"

	"github.com/jhoicas/sns-api/internal/application/ports"
	"github.com/jhoicas/sns-api/internal/domain/repository"
	"github.com/jhoicas/sns-api/internal/infrastructure/memory"
	"github.com/jhoicas/sns-api/internal/infrastructure/postgres"
	"github.com/jhoicas/sns-api/pkg/config"
)

// Drivers soportados.
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Repositories agrupa los puertos de persistencia y el runner transaccional de catálogo.
type Repositories struct {
	Admins      repository.AdminRepository
	Categories  repository.CategoryRepository
	Products    repository.ProductRepository
	SubProducts repository.SubProductRepository
	Services    repository.ServiceRepository
	Solutions   repository.SolutionRepository
	Customers   repository.CustomerRepository
	CompanyInfo repository.CompanyInfoRepository
	Tx          ports.CatalogTxRunner

	close func()
}

// Close libera las conexiones (no-op en memoria).
func (r *Repositories) Close() {
	if r.close != nil {
		r.close()
	}
}

// Open abre el backend configurado. En PostgreSQL además aplica el esquema.
func Open(ctx context.Context, cfg config.DBConfig) (*Repositories, error) {
	switch cfg.Driver {
	case DriverMemory:
		return NewMemory(), nil
	case DriverPostgres, "":
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		return &Repositories{
			Admins:      postgres.NewAdminRepository(pool),
			Categories:  postgres.NewCategoryRepository(pool),
			Products:    postgres.NewProductRepository(pool),
			SubProducts: postgres.NewSubProductRepository(pool),
			Services:    postgres.NewServiceRepository(pool),
			Solutions:   postgres.NewSolutionRepository(pool),
			Customers:   postgres.NewCustomerRepository(pool),
			CompanyInfo: postgres.NewCompanyInfoRepository(pool),
			Tx:          postgres.NewTxRunner(pool),
			close:       pool.Close,
		}, nil
	default:
		return nil, fmt.Errorf("storage: driver %q no soportado", cfg.Driver)
	}
}

// NewMemory construye repositorios sobre un store en memoria vacío.
func NewMemory() *Repositories {
	s := memory.NewStore()
	return &Repositories{
		Admins:      s.Admins(),
		Categories:  s.Categories(),
		Products:    s.Products(),
		SubProducts: s.SubProducts(),
		Services:    s.Services(),
		Solutions:   s.Solutions(),
		Customers:   s.Customers(),
		CompanyInfo: s.CompanyInfo(),
		Tx:          s,
	}
}
