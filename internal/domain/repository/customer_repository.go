package repository

import (
	"context"

	"github.com/jhoicas/sns-api/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer (DIP).
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id int64) (*entity.Customer, error)
	List(ctx context.Context, offset, limit int) ([]*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id int64) error
}
