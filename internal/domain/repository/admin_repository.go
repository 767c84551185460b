package repository

import (
	"context"

	"github.com/jhoicas/sns-api/internal/domain/entity"
)

// AdminRepository define el puerto de persistencia para Admin (DIP).
// Los Get devuelven (nil, nil) cuando no hay fila.
type AdminRepository interface {
	Create(ctx context.Context, admin *entity.Admin) error
	GetByID(ctx context.Context, id int64) (*entity.Admin, error)
	GetByUsername(ctx context.Context, username string) (*entity.Admin, error)
	Update(ctx context.Context, admin *entity.Admin) error
	Delete(ctx context.Context, id int64) error
}
