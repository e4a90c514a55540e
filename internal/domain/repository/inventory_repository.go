package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/inventario-movil/internal/domain/entity"
)

// InventoryRepository define el puerto sobre la tabla real_time_inventory (DIP).
// Invariante de la tabla: a lo sumo una fila por (store_id, product_id);
// el motor de reconciliación decide insert-vs-update contra un único
// snapshot batcheado (GetByStoreAndProducts) antes de escribir.
type InventoryRepository interface {
	// GetByStoreAndProducts lookup batcheado: todas las filas de la tienda
	// cuyo product_id esté en productIDs. Una sola consulta, no N.
	GetByStoreAndProducts(ctx context.Context, storeID int64, productIDs []int64) ([]*entity.StockRecord, error)
	ListByStore(ctx context.Context, storeID int64) ([]*entity.StockRecord, error)
	// InsertBatch inserta todas las filas nuevas en una sola operación.
	InsertBatch(ctx context.Context, records []*entity.StockRecord) error
	// UpdateQuantityByID actualiza current_quantity filtrando por la identidad
	// de fila y con compare-and-swap sobre last_updated: si la fila cambió
	// desde el snapshot (seenUpdated no coincide) devuelve domain.ErrConflict.
	UpdateQuantityByID(ctx context.Context, inventoryID, newQuantity int64, seenUpdated time.Time) error
	// UpdateQuantityByStoreAndProduct sobrescribe la cantidad filtrando por la
	// clave compuesta. domain.ErrNotFound si no existe la fila.
	UpdateQuantityByStoreAndProduct(ctx context.Context, storeID, productID, newQuantity int64) error
	DeleteByStoreAndProduct(ctx context.Context, storeID, productID int64) error
}
