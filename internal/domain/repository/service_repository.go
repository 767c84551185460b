package repository

import (
	"context"

	"github.com/jhoicas/sns-api/internal/domain/entity"
)

// ServiceRepository define el puerto de persistencia para Service (DIP).
type ServiceRepository interface {
	Create(ctx context.Context, service *entity.Service) error
	GetByID(ctx context.Context, id int64) (*entity.Service, error)
	List(ctx context.Context, offset, limit int) ([]*entity.Service, error)
	Update(ctx context.Context, service *entity.Service) error
	Delete(ctx context.Context, id int64) error
}
