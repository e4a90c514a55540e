package inventory

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/tu-usuario/inventario-movil/internal/domain"
	"github.com/tu-usuario/inventario-movil/internal/domain/entity"
	"github.com/tu-usuario/inventario-movil/internal/domain/repository"
)

// ReconcileUseCase es el motor de reconciliación de inventario: decide
// insert-vs-update por producto contra un snapshot batcheado de
// real_time_inventory, aplica consumos contra un snapshot explícito y
// sobrescribe cantidades en ajustes manuales.
//
// Las reconciliaciones de una misma tienda se serializan con un mutex por
// tienda; además cada update lleva compare-and-swap sobre last_updated,
// así dos llamadas solapadas no pierden una escritura (read-modify-write).
type ReconcileUseCase struct {
	invRepo repository.InventoryRepository

	locks sync.Map // map[int64]*sync.Mutex, uno por tienda

	mu  sync.Mutex
	log []entity.ConsumptionRecord
}

// NewReconcileUseCase construye el motor.
func NewReconcileUseCase(invRepo repository.InventoryRepository) *ReconcileUseCase {
	return &ReconcileUseCase{invRepo: invRepo}
}

// ParseQuantity parsea una cantidad pedida con tolerancia: texto vacío o no
// numérico vale 0. Es la única tolerancia intencional del motor; un fallo de
// parseo nunca se propaga como error.
func ParseQuantity(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// ReconcileAdditions suma las cantidades pedidas al stock de la tienda.
//
//  1. Un único lookup batcheado de las filas existentes para los productos
//     seleccionados (no una consulta por producto).
//  2. Partición en con-fila / sin-fila contra ese snapshot; la decisión se
//     toma una sola vez, no se reconsulta por producto.
//  3. Con-fila: update por producto con cantidad existente + pedida,
//     filtrado por inventory_id y con CAS sobre last_updated. Los updates se
//     lanzan en paralelo; no hay orden garantizado entre productos.
//  4. Sin-fila: un solo insert batcheado con la cantidad pedida.
//
// La operación no es atómica: los fallos por producto quedan enumerados en
// el resultado (fallo parcial) con error nil. Solo el lookup inicial o una
// entrada vacía producen error.
func (uc *ReconcileUseCase) ReconcileAdditions(ctx context.Context, storeID int64, selections map[int64]string) (*ReconcileResult, error) {
	if len(selections) == 0 {
		return nil, domain.ErrInvalidInput
	}

	lock := uc.storeLock(storeID)
	lock.Lock()
	defer lock.Unlock()

	productIDs := make([]int64, 0, len(selections))
	for id := range selections {
		productIDs = append(productIDs, id)
	}
	sort.Slice(productIDs, func(i, j int) bool { return productIDs[i] < productIDs[j] })

	existing, err := uc.invRepo.GetByStoreAndProducts(ctx, storeID, productIDs)
	if err != nil {
		return nil, err
	}
	existingByProduct := make(map[int64]*entity.StockRecord, len(existing))
	for _, rec := range existing {
		existingByProduct[rec.ProductID] = rec
	}

	now := time.Now()
	result := &ReconcileResult{BatchID: uuid.New().String()}

	type updateJob struct {
		rec       *entity.StockRecord
		requested int64
	}
	var updates []updateJob
	var inserts []*entity.StockRecord
	var insertRequested []int64

	for _, productID := range productIDs {
		requested := ParseQuantity(selections[productID])
		if rec, ok := existingByProduct[productID]; ok {
			updates = append(updates, updateJob{rec: rec, requested: requested})
		} else {
			inserts = append(inserts, &entity.StockRecord{
				StoreID:         storeID,
				ProductID:       productID,
				CurrentQuantity: requested,
				LastUpdated:     now,
			})
			insertRequested = append(insertRequested, requested)
		}
	}

	// Updates en paralelo; cada fila es independiente. Los fallos se
	// recolectan por producto en vez de abortar el lote.
	var resMu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	for _, job := range updates {
		job := job
		g.Go(func() error {
			newQty := job.rec.CurrentQuantity + job.requested
			err := uc.invRepo.UpdateQuantityByID(gctx, job.rec.InventoryID, newQty, job.rec.LastUpdated)
			resMu.Lock()
			defer resMu.Unlock()
			if err != nil {
				result.Failed = append(result.Failed, FailedItem{
					ProductID: job.rec.ProductID,
					Requested: job.requested,
					Reason:    err.Error(),
				})
				return nil
			}
			result.Updated = append(result.Updated, AppliedItem{
				ProductID:   job.rec.ProductID,
				Requested:   job.requested,
				NewQuantity: newQty,
			})
			return nil
		})
	}
	_ = g.Wait()

	// Insert batcheado aparte; si falla, falla para todas sus filas.
	if len(inserts) > 0 {
		if err := uc.invRepo.InsertBatch(ctx, inserts); err != nil {
			for i, rec := range inserts {
				result.Failed = append(result.Failed, FailedItem{
					ProductID: rec.ProductID,
					Requested: insertRequested[i],
					Reason:    err.Error(),
				})
			}
		} else {
			for i, rec := range inserts {
				result.Inserted = append(result.Inserted, AppliedItem{
					ProductID:   rec.ProductID,
					Requested:   insertRequested[i],
					NewQuantity: rec.CurrentQuantity,
				})
			}
		}
	}

	sortResult(result)
	return result, nil
}

// RecordConsumption aplica consumos secuencialmente contra un snapshot
// explícito de cantidades (pasado por el caller, no una lectura fresca: la
// posible obsolescencia es visible en el sitio de la llamada).
//
// Una entrada se aplica solo si quantity > 0 y el snapshot alcanza; si no,
// queda enumerada en Skipped. La primera escritura fallida detiene el lote
// sin rollback de lo ya escrito y devuelve el resultado parcial junto al
// error. Cada consumo aplicado emite un ConsumptionRecord a la bitácora en
// memoria; la cantidad almacenada nunca baja de cero.
func (uc *ReconcileUseCase) RecordConsumption(ctx context.Context, storeID int64, snapshot map[int64]int64, entries []ConsumptionEntry) (*ConsumptionResult, error) {
	result := &ConsumptionResult{}
	remaining := make(map[int64]int64, len(snapshot))
	for id, qty := range snapshot {
		remaining[id] = qty
	}

	for _, e := range entries {
		if e.Quantity <= 0 {
			result.Skipped = append(result.Skipped, SkippedEntry{
				ProductID: e.ProductID,
				Requested: e.Quantity,
				Available: remaining[e.ProductID],
				Reason:    "cantidad no positiva",
			})
			continue
		}
		available, ok := remaining[e.ProductID]
		if !ok || available < e.Quantity {
			result.Skipped = append(result.Skipped, SkippedEntry{
				ProductID: e.ProductID,
				Requested: e.Quantity,
				Available: available,
				Reason:    "stock insuficiente en el snapshot",
			})
			continue
		}
		newQty := available - e.Quantity
		if err := uc.invRepo.UpdateQuantityByStoreAndProduct(ctx, storeID, e.ProductID, newQty); err != nil {
			return result, err
		}
		remaining[e.ProductID] = newQty

		rec := entity.ConsumptionRecord{
			ID:        uuid.New().String(),
			ProductID: e.ProductID,
			Quantity:  e.Quantity,
			Date:      time.Now(),
		}
		result.Applied = append(result.Applied, rec)
		uc.appendLog(rec)
	}
	return result, nil
}

// AdjustStock sobrescribe (no suma) la cantidad de una fila. El filtro
// incluye store_id además de product_id: el dato está keyado por el par y
// filtrar solo por producto corrompería otras tiendas. No impone cota
// inferior al valor; esa validación es del caller.
func (uc *ReconcileUseCase) AdjustStock(ctx context.Context, storeID, productID, newQuantity int64) error {
	if productID <= 0 {
		return domain.ErrInvalidInput
	}
	return uc.invRepo.UpdateQuantityByStoreAndProduct(ctx, storeID, productID, newQuantity)
}

// DeleteStock elimina la fila de stock de un producto en la tienda.
func (uc *ReconcileUseCase) DeleteStock(ctx context.Context, storeID, productID int64) error {
	if productID <= 0 {
		return domain.ErrInvalidInput
	}
	return uc.invRepo.DeleteByStoreAndProduct(ctx, storeID, productID)
}

// Snapshot lee de una vez las cantidades actuales de la tienda, para
// pasarlas explícitamente a RecordConsumption.
func (uc *ReconcileUseCase) Snapshot(ctx context.Context, storeID int64) (map[int64]int64, error) {
	records, err := uc.invRepo.ListByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	snapshot := make(map[int64]int64, len(records))
	for _, rec := range records {
		snapshot[rec.ProductID] = rec.CurrentQuantity
	}
	return snapshot, nil
}

// ConsumptionLog devuelve una copia de la bitácora de consumos de la sesión.
func (uc *ReconcileUseCase) ConsumptionLog() []entity.ConsumptionRecord {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	out := make([]entity.ConsumptionRecord, len(uc.log))
	copy(out, uc.log)
	return out
}

func (uc *ReconcileUseCase) appendLog(rec entity.ConsumptionRecord) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.log = append(uc.log, rec)
}

func (uc *ReconcileUseCase) storeLock(storeID int64) *sync.Mutex {
	v, _ := uc.locks.LoadOrStore(storeID, &sync.Mutex{})
	return v.(*sync.Mutex)
}

// sortResult ordena por product_id para salida determinista: los updates
// corren en paralelo y su orden de término no significa nada.
func sortResult(r *ReconcileResult) {
	sort.Slice(r.Updated, func(i, j int) bool { return r.Updated[i].ProductID < r.Updated[j].ProductID })
	sort.Slice(r.Inserted, func(i, j int) bool { return r.Inserted[i].ProductID < r.Inserted[j].ProductID })
	sort.Slice(r.Failed, func(i, j int) bool { return r.Failed[i].ProductID < r.Failed[j].ProductID })
}
