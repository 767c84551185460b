package usecase

import (
	"context"

	"github.com/jhoicas/sns-api/internal/application/dto"
	"github.com/jhoicas/sns-api/internal/domain"
	"github.com/jhoicas/sns-api/internal/domain/entity"
	"github.com/jhoicas/sns-api/internal/domain/repository"
)

// SolutionUseCase casos de uso CRUD para soluciones.
type SolutionUseCase struct {
	repo repository.SolutionRepository
}

// NewSolutionUseCase construye el caso de uso.
func NewSolutionUseCase(repo repository.SolutionRepository) *SolutionUseCase {
	return &SolutionUseCase{repo: repo}
}

func (uc *SolutionUseCase) Create(ctx context.Context, in dto.CreateSolutionRequest) (*dto.SolutionResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	s := &entity.Solution{
		Name:        in.Name,
		Description: in.Description,
		Features:    in.Features,
		IsActive:    true,
		CreatedAt:   clock(),
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return toSolutionResponse(s), nil
}

func (uc *SolutionUseCase) GetByID(ctx context.Context, id int64) (*dto.SolutionResponse, error) {
	s, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toSolutionResponse(s), nil
}

func (uc *SolutionUseCase) List(ctx context.Context, p dto.PageRequest) ([]dto.SolutionResponse, error) {
	offset, limit := page(p)
	list, err := uc.repo.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SolutionResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *toSolutionResponse(s))
	}
	return out, nil
}

func (uc *SolutionUseCase) Update(ctx context.Context, id int64, in dto.UpdateSolutionRequest) (*dto.SolutionResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	s, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	applySolutionUpdate(s, in)
	s.UpdatedAt = nowPtr()
	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	return toSolutionResponse(s), nil
}

func (uc *SolutionUseCase) Delete(ctx context.Context, id int64) (*dto.SolutionResponse, error) {
	s, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return toSolutionResponse(s), nil
}

func (uc *SolutionUseCase) find(ctx context.Context, id int64) (*entity.Solution, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

func applySolutionUpdate(s *entity.Solution, in dto.UpdateSolutionRequest) {
	setString(&s.Name, in.Name)
	setOptString(&s.Description, in.Description)
	setOptString(&s.Features, in.Features)
	setBool(&s.IsActive, in.IsActive)
}

func toSolutionResponse(s *entity.Solution) *dto.SolutionResponse {
	return &dto.SolutionResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Features:    s.Features,
		IsActive:    s.IsActive,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
