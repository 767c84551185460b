package ports

import (
	"context"

	"github.com/jhoicas/sns-api/internal/domain/entity"
)

// DatasheetGenerator define el puerto de salida para la ficha técnica imprimible de un sub-producto.
// La aplicación solo conoce este contrato; el adaptador concreto vive en infraestructura.
type DatasheetGenerator interface {
	// GenerateDatasheet devuelve los bytes del PDF. product puede ser nil si ya no existe.
	GenerateDatasheet(ctx context.Context, sp *entity.SubProduct, product *entity.Product) ([]byte, error)
}
