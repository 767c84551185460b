package usecase

import (
	"context"
	"errors"

	"github.com/jhoicas/sns-api/internal/application/dto"
	"github.com/jhoicas/sns-api/internal/domain"
	"github.com/jhoicas/sns-api/internal/domain/repository"
)

// ProvisionUseCase deja la base en un estado usable: admin por defecto, ficha de empresa y categorías iniciales.
// Todas las operaciones son idempotentes.
type ProvisionUseCase struct {
	adminRepo  repository.AdminRepository
	admins     *AdminUseCase
	company    *CompanyInfoUseCase
	categories *CategoryUseCase
}

// NewProvisionUseCase construye el caso de uso a partir de los casos de uso que reutiliza.
func NewProvisionUseCase(
	adminRepo repository.AdminRepository,
	admins *AdminUseCase,
	company *CompanyInfoUseCase,
	categories *CategoryUseCase,
) *ProvisionUseCase {
	return &ProvisionUseCase{adminRepo: adminRepo, admins: admins, company: company, categories: categories}
}

// EnsureAdmin crea el admin si no existe uno con ese username. Devuelve true si lo creó.
func (uc *ProvisionUseCase) EnsureAdmin(ctx context.Context, in dto.CreateAdminRequest) (bool, error) {
	existing, err := uc.adminRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}
	if _, err := uc.admins.Create(ctx, in); err != nil {
		return false, err
	}
	return true, nil
}

// EnsureCompanyInfo crea la ficha de empresa si todavía no hay ninguna. Devuelve true si la creó.
func (uc *ProvisionUseCase) EnsureCompanyInfo(ctx context.Context, in dto.CreateCompanyInfoRequest) (bool, error) {
	_, err := uc.company.Get(ctx)
	switch {
	case err == nil:
		return false, nil
	case !errors.Is(err, domain.ErrNotFound):
		return false, err
	}
	if _, err := uc.company.Create(ctx, in); err != nil {
		return false, err
	}
	return true, nil
}

// SeedCategories crea las categorías que no existan (por nombre). Devuelve cuántas creó.
func (uc *ProvisionUseCase) SeedCategories(ctx context.Context, list []dto.CreateCategoryRequest) (int, error) {
	created := 0
	for _, in := range list {
		_, err := uc.categories.Create(ctx, in)
		if errors.Is(err, domain.ErrDuplicate) {
			continue
		}
		if err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

// DefaultCompanyInfo ficha mínima usada al arrancar cuando no hay ninguna.
func DefaultCompanyInfo(name string) dto.CreateCompanyInfoRequest {
	return dto.CreateCompanyInfoRequest{CompanyName: name}
}
