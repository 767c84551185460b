package usecase

import (
	"context"

	"github.com/jhoicas/sns-api/internal/application/dto"
	"github.com/jhoicas/sns-api/internal/domain"
	"github.com/jhoicas/sns-api/internal/domain/entity"
	"github.com/jhoicas/sns-api/internal/domain/repository"
)

// ServiceUseCase casos de uso CRUD para servicios. Igual que en productos, category_id no se verifica.
type ServiceUseCase struct {
	repo         repository.ServiceRepository
	categoryRepo repository.CategoryRepository
}

// NewServiceUseCase construye el caso de uso.
func NewServiceUseCase(repo repository.ServiceRepository, categoryRepo repository.CategoryRepository) *ServiceUseCase {
	return &ServiceUseCase{repo: repo, categoryRepo: categoryRepo}
}

// Create crea un servicio activo.
func (uc *ServiceUseCase) Create(ctx context.Context, in dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	s := &entity.Service{
		Name:        in.Name,
		Description: in.Description,
		CategoryID:  in.CategoryID,
		Features:    in.Features,
		IsActive:    true,
		CreatedAt:   clock(),
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return uc.one(ctx, s)
}

// GetByID obtiene un servicio con su categoría.
func (uc *ServiceUseCase) GetByID(ctx context.Context, id int64) (*dto.ServiceResponse, error) {
	s, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.one(ctx, s)
}

// List lista servicios por orden de ID.
func (uc *ServiceUseCase) List(ctx context.Context, p dto.PageRequest) ([]dto.ServiceResponse, error) {
	offset, limit := page(p)
	list, err := uc.repo.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return uc.many(ctx, list)
}

// Update aplica solo los campos presentes.
func (uc *ServiceUseCase) Update(ctx context.Context, id int64, in dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	s, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	applyServiceUpdate(s, in)
	s.UpdatedAt = nowPtr()
	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	return uc.one(ctx, s)
}

// Delete elimina el servicio y devuelve la fila borrada.
func (uc *ServiceUseCase) Delete(ctx context.Context, id int64) (*dto.ServiceResponse, error) {
	s, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	out, err := uc.one(ctx, s)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return out, nil
}

func (uc *ServiceUseCase) find(ctx context.Context, id int64) (*entity.Service, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

func (uc *ServiceUseCase) one(ctx context.Context, s *entity.Service) (*dto.ServiceResponse, error) {
	list, err := uc.many(ctx, []*entity.Service{s})
	if err != nil {
		return nil, err
	}
	return &list[0], nil
}

func (uc *ServiceUseCase) many(ctx context.Context, list []*entity.Service) ([]dto.ServiceResponse, error) {
	ids := make([]int64, 0, len(list))
	for _, s := range list {
		if s.CategoryID != nil {
			ids = append(ids, *s.CategoryID)
		}
	}
	cats, err := resolveCategories(ctx, uc.categoryRepo, ids)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ServiceResponse, 0, len(list))
	for _, s := range list {
		r := dto.ServiceResponse{
			ID:          s.ID,
			Name:        s.Name,
			Description: s.Description,
			CategoryID:  s.CategoryID,
			Features:    s.Features,
			IsActive:    s.IsActive,
			CreatedAt:   s.CreatedAt,
			UpdatedAt:   s.UpdatedAt,
		}
		if s.CategoryID != nil {
			r.Category = toCategoryResponse(cats[*s.CategoryID])
		}
		out = append(out, r)
	}
	return out, nil
}

func applyServiceUpdate(s *entity.Service, in dto.UpdateServiceRequest) {
	setString(&s.Name, in.Name)
	setOptString(&s.Description, in.Description)
	setOptInt64(&s.CategoryID, in.CategoryID)
	setOptString(&s.Features, in.Features)
	setBool(&s.IsActive, in.IsActive)
}
