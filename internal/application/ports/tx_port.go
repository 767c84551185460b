package ports

import (
	"context"

	"github.com/jhoicas/sns-api/internal/domain/repository"
)

// CatalogTxRunner ejecuta fn dentro de una transacción, pasando repos de catálogo atados a ella.
// Si fn devuelve error se hace rollback.
type CatalogTxRunner interface {
	RunCatalog(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		subProductRepo repository.SubProductRepository,
	) error) error
}
