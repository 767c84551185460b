package repository

import (
	"context"

	"github.com/jhoicas/sns-api/internal/domain/entity"
)

// CompanyInfoRepository define el puerto de persistencia para la ficha singleton de la empresa.
type CompanyInfoRepository interface {
	// Get devuelve la primera fila (menor ID) o (nil, nil).
	Get(ctx context.Context) (*entity.CompanyInfo, error)
	Create(ctx context.Context, info *entity.CompanyInfo) error
	Update(ctx context.Context, info *entity.CompanyInfo) error
}
