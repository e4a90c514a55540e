package repository

import (
	"context"

	"github.com/tu-usuario/inventario-movil/internal/domain/entity"
)

// ProductRepository define el puerto de lectura del catálogo de productos (DIP).
// El catálogo es de solo lectura para esta aplicación.
type ProductRepository interface {
	List(ctx context.Context, limit, offset int) ([]*entity.Product, error)
	// Search filtra por nombre o código QR con un patrón ya normalizado
	// (minúsculas, sin tildes) por el caso de uso.
	Search(ctx context.Context, pattern string, limit, offset int) ([]*entity.Product, error)
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	// GetByQRCode devuelve nil, nil si ningún producto tiene ese código.
	GetByQRCode(ctx context.Context, code string) (*entity.Product, error)
	// ListByIDs devuelve los productos cuyo id esté en ids (lookup batcheado).
	ListByIDs(ctx context.Context, ids []int64) ([]*entity.Product, error)
}
