package repository

import (
	"context"

	"github.com/jhoicas/sns-api/internal/domain/entity"
)

// SubProductFilter filtros opcionales del listado general; nil = sin filtrar.
type SubProductFilter struct {
	ProductID  *int64
	IsFeatured *bool
	IsActive   *bool
}

// SubProductRepository define el puerto de persistencia para SubProduct (DIP).
type SubProductRepository interface {
	Create(ctx context.Context, sp *entity.SubProduct) error
	GetByID(ctx context.Context, id int64) (*entity.SubProduct, error)
	List(ctx context.Context, filter SubProductFilter, offset, limit int) ([]*entity.SubProduct, error)
	// ListByProduct devuelve los activos de un producto ordenados por sort_order, name.
	ListByProduct(ctx context.Context, productID int64) ([]*entity.SubProduct, error)
	// ListFeatured devuelve destacados activos, mismo orden, como máximo limit.
	ListFeatured(ctx context.Context, limit int) ([]*entity.SubProduct, error)
	// Search busca sin distinguir mayúsculas en name, brand, model y tags (solo activos).
	Search(ctx context.Context, query string, offset, limit int) ([]*entity.SubProduct, error)
	Update(ctx context.Context, sp *entity.SubProduct) error
	Delete(ctx context.Context, id int64) error
	DeleteByProduct(ctx context.Context, productID int64) (int64, error)
}
