package usecase

import (
	"context"

	"github.com/jhoicas/sns-api/internal/application/dto"
	"github.com/jhoicas/sns-api/internal/domain"
	"github.com/jhoicas/sns-api/internal/domain/entity"
	"github.com/jhoicas/sns-api/internal/domain/repository"
)

// CustomerUseCase casos de uso CRUD para clientes de referencia (logos del sitio).
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create crea un cliente activo.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	c := &entity.Customer{
		Name:        in.Name,
		LogoURL:     in.LogoURL,
		Description: in.Description,
		IsActive:    true,
		CreatedAt:   clock(),
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toCustomerResponse(c), nil
}

// GetByID obtiene un cliente; ErrNotFound si no existe.
func (uc *CustomerUseCase) GetByID(ctx context.Context, id int64) (*dto.CustomerResponse, error) {
	c, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCustomerResponse(c), nil
}

// List lista clientes por orden de ID.
func (uc *CustomerUseCase) List(ctx context.Context, p dto.PageRequest) ([]dto.CustomerResponse, error) {
	offset, limit := page(p)
	list, err := uc.repo.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toCustomerResponse(c))
	}
	return out, nil
}

// Update aplica solo los campos presentes.
func (uc *CustomerUseCase) Update(ctx context.Context, id int64, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	c, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	applyCustomerUpdate(c, in)
	c.UpdatedAt = nowPtr()
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return toCustomerResponse(c), nil
}

// Delete elimina el cliente y devuelve la fila borrada.
func (uc *CustomerUseCase) Delete(ctx context.Context, id int64) (*dto.CustomerResponse, error) {
	c, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return toCustomerResponse(c), nil
}

func (uc *CustomerUseCase) find(ctx context.Context, id int64) (*entity.Customer, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func applyCustomerUpdate(c *entity.Customer, in dto.UpdateCustomerRequest) {
	setString(&c.Name, in.Name)
	setOptString(&c.LogoURL, in.LogoURL)
	setOptString(&c.Description, in.Description)
	setBool(&c.IsActive, in.IsActive)
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:          c.ID,
		Name:        c.Name,
		LogoURL:     c.LogoURL,
		Description: c.Description,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
