package inventory

import (
	"context"

	"github.com/tu-usuario/inventario-movil/internal/domain/entity"
	"github.com/tu-usuario/inventario-movil/internal/domain/repository"
)

// StockItem es una fila de stock enriquecida con su producto, lista para
// renderizar en el front.
type StockItem struct {
	Product *entity.Product
	Record  *entity.StockRecord
	InStock bool
}

// InventoryQueryUseCase lecturas de inventario por tienda: las filas de
// real_time_inventory unidas con su producto, en dos lookups batcheados
// (stock de la tienda, luego productos por ids).
type InventoryQueryUseCase struct {
	invRepo     repository.InventoryRepository
	productRepo repository.ProductRepository
}

// NewInventoryQueryUseCase construye el caso de uso.
func NewInventoryQueryUseCase(invRepo repository.InventoryRepository, productRepo repository.ProductRepository) *InventoryQueryUseCase {
	return &InventoryQueryUseCase{invRepo: invRepo, productRepo: productRepo}
}

// ListStore devuelve el inventario de la tienda con los datos del producto.
// Una fila cuyo producto ya no exista en el catálogo se omite.
func (uc *InventoryQueryUseCase) ListStore(ctx context.Context, storeID int64) ([]StockItem, error) {
	records, err := uc.invRepo.ListByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	ids := make([]int64, 0, len(records))
	for _, rec := range records {
		ids = append(ids, rec.ProductID)
	}
	products, err := uc.productRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]*entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	items := make([]StockItem, 0, len(records))
	for _, rec := range records {
		p, ok := byID[rec.ProductID]
		if !ok {
			continue
		}
		items = append(items, StockItem{
			Product: p,
			Record:  rec,
			InStock: rec.CurrentQuantity > 0,
		})
	}
	return items, nil
}
