package repository

import (
	"context"

	"github.com/jhoicas/sns-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id int64) (*entity.Category, error)
	// GetByIDs resuelve varias categorías en una sola consulta; los IDs inexistentes se omiten.
	GetByIDs(ctx context.Context, ids []int64) (map[int64]*entity.Category, error)
	List(ctx context.Context, offset, limit int) ([]*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id int64) error
}
