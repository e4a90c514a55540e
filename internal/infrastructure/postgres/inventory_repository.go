package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tu-usuario/inventario-movil/internal/domain"
	"github.com/tu-usuario/inventario-movil/internal/domain/entity"
	"github.com/tu-usuario/inventario-movil/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL
// (tabla real_time_inventory). Usable con pool o tx (Querier).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// GetByStoreAndProducts lookup batcheado de las filas de la tienda para el
// conjunto de productos. Una sola consulta con ANY, no N consultas.
func (r *InventoryRepo) GetByStoreAndProducts(ctx context.Context, storeID int64, productIDs []int64) ([]*entity.StockRecord, error) {
	query := `
		SELECT inventory_id, store_id, product_id, current_quantity, last_updated
		FROM real_time_inventory
		WHERE store_id = $1 AND product_id = ANY($2)`
	rows, err := r.q.Query(ctx, query, storeID, productIDs)
	if err != nil {
		return nil, fmt.Errorf("get stock records: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockRecord
	for rows.Next() {
		var rec entity.StockRecord
		if err := rows.Scan(&rec.InventoryID, &rec.StoreID, &rec.ProductID, &rec.CurrentQuantity, &rec.LastUpdated); err != nil {
			return nil, fmt.Errorf("scan stock record: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}

// ListByStore devuelve todas las filas de stock de la tienda.
func (r *InventoryRepo) ListByStore(ctx context.Context, storeID int64) ([]*entity.StockRecord, error) {
	query := `
		SELECT inventory_id, store_id, product_id, current_quantity, last_updated
		FROM real_time_inventory
		WHERE store_id = $1
		ORDER BY product_id`
	rows, err := r.q.Query(ctx, query, storeID)
	if err != nil {
		return nil, fmt.Errorf("list stock records: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockRecord
	for rows.Next() {
		var rec entity.StockRecord
		if err := rows.Scan(&rec.InventoryID, &rec.StoreID, &rec.ProductID, &rec.CurrentQuantity, &rec.LastUpdated); err != nil {
			return nil, fmt.Errorf("scan stock record: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}

// InsertBatch inserta todas las filas en un solo INSERT multi-valores.
// domain.ErrDuplicate si alguna fila viola el unique (store_id, product_id).
func (r *InventoryRepo) InsertBatch(ctx context.Context, records []*entity.StockRecord) error {
	if len(records) == 0 {
		return nil
	}
	var sb strings.Builder
	sb.WriteString(`INSERT INTO real_time_inventory (store_id, product_id, current_quantity, last_updated) VALUES `)
	args := make([]any, 0, len(records)*4)
	for i, rec := range records {
		if i > 0 {
			sb.WriteString(", ")
		}
		n := i * 4
		fmt.Fprintf(&sb, "($%d, $%d, $%d, $%d)", n+1, n+2, n+3, n+4)
		args = append(args, rec.StoreID, rec.ProductID, rec.CurrentQuantity, rec.LastUpdated)
	}
	if _, err := r.q.Exec(ctx, sb.String(), args...); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert stock records: %w", err)
	}
	return nil
}

// UpdateQuantityByID actualiza la cantidad filtrando por la identidad de
// fila, con compare-and-swap sobre last_updated: si la fila cambió desde el
// snapshot, 0 filas afectadas y domain.ErrConflict.
func (r *InventoryRepo) UpdateQuantityByID(ctx context.Context, inventoryID, newQuantity int64, seenUpdated time.Time) error {
	query := `
		UPDATE real_time_inventory
		SET current_quantity = $2, last_updated = now()
		WHERE inventory_id = $1 AND last_updated = $3`
	cmd, err := r.q.Exec(ctx, query, inventoryID, newQuantity, seenUpdated)
	if err != nil {
		return fmt.Errorf("update stock record: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrConflict
	}
	return nil
}

// UpdateQuantityByStoreAndProduct sobrescribe la cantidad por clave compuesta.
func (r *InventoryRepo) UpdateQuantityByStoreAndProduct(ctx context.Context, storeID, productID, newQuantity int64) error {
	query := `
		UPDATE real_time_inventory
		SET current_quantity = $3, last_updated = now()
		WHERE store_id = $1 AND product_id = $2`
	cmd, err := r.q.Exec(ctx, query, storeID, productID, newQuantity)
	if err != nil {
		return fmt.Errorf("update stock quantity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteByStoreAndProduct elimina la fila de stock del producto en la tienda.
func (r *InventoryRepo) DeleteByStoreAndProduct(ctx context.Context, storeID, productID int64) error {
	query := `DELETE FROM real_time_inventory WHERE store_id = $1 AND product_id = $2`
	cmd, err := r.q.Exec(ctx, query, storeID, productID)
	if err != nil {
		return fmt.Errorf("delete stock record: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
