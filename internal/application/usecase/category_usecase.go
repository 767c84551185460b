package usecase

import (
	"context"

	"github.com/jhoicas/sns-api/internal/application/dto"
	"github.com/jhoicas/sns-api/internal/domain"
	"github.com/jhoicas/sns-api/internal/domain/entity"
	"github.com/jhoicas/sns-api/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crea una categoría activa.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	c := &entity.Category{
		Name:        in.Name,
		Description: in.Description,
		IsActive:    true,
		CreatedAt:   clock(),
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toCategoryResponse(c), nil
}

// GetByID obtiene una categoría; ErrNotFound si no existe.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id int64) (*dto.CategoryResponse, error) {
	c, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCategoryResponse(c), nil
}

// List lista categorías (activas e inactivas) por orden de ID.
func (uc *CategoryUseCase) List(ctx context.Context, p dto.PageRequest) ([]dto.CategoryResponse, error) {
	offset, limit := page(p)
	list, err := uc.repo.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toCategoryResponse(c))
	}
	return out, nil
}

// Update aplica solo los campos presentes.
func (uc *CategoryUseCase) Update(ctx context.Context, id int64, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	c, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	applyCategoryUpdate(c, in)
	c.UpdatedAt = nowPtr()
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return toCategoryResponse(c), nil
}

// Delete elimina la categoría y devuelve la fila borrada.
func (uc *CategoryUseCase) Delete(ctx context.Context, id int64) (*dto.CategoryResponse, error) {
	c, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return toCategoryResponse(c), nil
}

func (uc *CategoryUseCase) find(ctx context.Context, id int64) (*entity.Category, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func applyCategoryUpdate(c *entity.Category, in dto.UpdateCategoryRequest) {
	setString(&c.Name, in.Name)
	setOptString(&c.Description, in.Description)
	setBool(&c.IsActive, in.IsActive)
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
