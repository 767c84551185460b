package repository

import (
	"context"

	"github.com/jhoicas/sns-api/internal/domain/entity"
)

// SolutionRepository define el puerto de persistencia para Solution (DIP).
type SolutionRepository interface {
	Create(ctx context.Context, solution *entity.Solution) error
	GetByID(ctx context.Context, id int64) (*entity.Solution, error)
	List(ctx context.Context, offset, limit int) ([]*entity.Solution, error)
	Update(ctx context.Context, solution *entity.Solution) error
	Delete(ctx context.Context, id int64) error
}
