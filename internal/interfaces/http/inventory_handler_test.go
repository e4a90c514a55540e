package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventario-movil/internal/application/dto"
	"github.com/tu-usuario/inventario-movil/internal/application/inventory"
	"github.com/tu-usuario/inventario-movil/internal/domain"
	"github.com/tu-usuario/inventario-movil/internal/domain/entity"
	apphttp "github.com/tu-usuario/inventario-movil/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake de inventario en memoria (sin auth: el handler se registra directo)
// ──────────────────────────────────────────────────────────────────────────────

type invKey struct {
	storeID   int64
	productID int64
}

type memInventoryRepo struct {
	mu     sync.Mutex
	rows   map[invKey]*entity.StockRecord
	nextID int64

	failUpdateByID map[int64]error
}

func newMemInventoryRepo() *memInventoryRepo {
	return &memInventoryRepo{
		rows:           make(map[invKey]*entity.StockRecord),
		nextID:         1,
		failUpdateByID: make(map[int64]error),
	}
}

func (m *memInventoryRepo) seed(storeID, productID, quantity int64) *entity.StockRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec := &entity.StockRecord{
		InventoryID:     m.nextID,
		StoreID:         storeID,
		ProductID:       productID,
		CurrentQuantity: quantity,
		LastUpdated:     time.Now().Add(-time.Minute),
	}
	m.nextID++
	m.rows[invKey{storeID, productID}] = rec
	return rec
}

func (m *memInventoryRepo) GetByStoreAndProducts(_ context.Context, storeID int64, productIDs []int64) ([]*entity.StockRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.StockRecord
	for _, id := range productIDs {
		if rec, ok := m.rows[invKey{storeID, id}]; ok {
			cp := *rec
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memInventoryRepo) ListByStore(_ context.Context, storeID int64) ([]*entity.StockRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.StockRecord
	for key, rec := range m.rows {
		if key.storeID == storeID {
			cp := *rec
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memInventoryRepo) InsertBatch(_ context.Context, records []*entity.StockRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, rec := range records {
		cp := *rec
		cp.InventoryID = m.nextID
		m.nextID++
		m.rows[invKey{rec.StoreID, rec.ProductID}] = &cp
	}
	return nil
}

func (m *memInventoryRepo) UpdateQuantityByID(_ context.Context, inventoryID, newQuantity int64, seenUpdated time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err, ok := m.failUpdateByID[inventoryID]; ok {
		return err
	}
	for _, rec := range m.rows {
		if rec.InventoryID == inventoryID {
			if !rec.LastUpdated.Equal(seenUpdated) {
				return domain.ErrConflict
			}
			rec.CurrentQuantity = newQuantity
			rec.LastUpdated = time.Now()
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *memInventoryRepo) UpdateQuantityByStoreAndProduct(_ context.Context, storeID, productID, newQuantity int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.rows[invKey{storeID, productID}]
	if !ok {
		return domain.ErrNotFound
	}
	rec.CurrentQuantity = newQuantity
	rec.LastUpdated = time.Now()
	return nil
}

func (m *memInventoryRepo) DeleteByStoreAndProduct(_ context.Context, storeID, productID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := invKey{storeID, productID}
	if _, ok := m.rows[key]; !ok {
		return domain.ErrNotFound
	}
	delete(m.rows, key)
	return nil
}

type memProductRepo struct{}

func (memProductRepo) List(context.Context, int, int) ([]*entity.Product, error) { return nil, nil }
func (memProductRepo) Search(context.Context, string, int, int) ([]*entity.Product, error) {
	return nil, nil
}
func (memProductRepo) GetByID(context.Context, int64) (*entity.Product, error) { return nil, nil }
func (memProductRepo) GetByQRCode(context.Context, string) (*entity.Product, error) {
	return nil, nil
}
func (memProductRepo) ListByIDs(context.Context, []int64) ([]*entity.Product, error) {
	return nil, nil
}

func buildInventoryApp(repo *memInventoryRepo) *fiber.App {
	reconcile := inventory.NewReconcileUseCase(repo)
	query := inventory.NewInventoryQueryUseCase(repo, memProductRepo{})
	report := inventory.NewReportUseCase(query, nil)
	h := apphttp.NewInventoryHandler(reconcile, query, report, 1)

	app := fiber.New()
	app.Post("/api/inventory/additions", h.ReconcileAdditions)
	app.Post("/api/inventory/consumptions", h.RecordConsumption)
	app.Get("/api/inventory/consumptions", h.ConsumptionLog)
	app.Put("/api/inventory/products/:product_id/quantity", h.AdjustStock)
	app.Delete("/api/inventory/products/:product_id", h.DeleteStock)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/inventory/additions
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: Todas las selecciones aplican → 200 con updated e inserted.
func TestReconcileAdditionsHandler_Exito(t *testing.T) {
	repo := newMemInventoryRepo()
	repo.seed(1, 10, 5)
	app := buildInventoryApp(repo)

	resp := postJSON(t, app, "/api/inventory/additions", fiber.Map{
		"selections": []fiber.Map{
			{"product_id": 10, "quantity": "3"},
			{"product_id": 20, "quantity": "7"},
		},
	})
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.ReconcileResponse
	decodeBody(t, resp, &out)
	require.Len(t, out.Updated, 1)
	assert.Equal(t, int64(8), out.Updated[0].NewQuantity)
	require.Len(t, out.Inserted, 1)
	assert.Equal(t, int64(7), out.Inserted[0].NewQuantity)
	assert.Empty(t, out.Failed)
}

// Caso 2: Fallo parcial → 207 Multi-Status con los productos fallidos.
func TestReconcileAdditionsHandler_FalloParcial(t *testing.T) {
	repo := newMemInventoryRepo()
	rec := repo.seed(1, 10, 5)
	repo.failUpdateByID[rec.InventoryID] = domain.ErrConflict
	app := buildInventoryApp(repo)

	resp := postJSON(t, app, "/api/inventory/additions", fiber.Map{
		"selections": []fiber.Map{
			{"product_id": 10, "quantity": "3"},
			{"product_id": 20, "quantity": "7"},
		},
	})
	defer resp.Body.Close()

	require.Equal(t, http.StatusMultiStatus, resp.StatusCode)
	var out dto.ReconcileResponse
	decodeBody(t, resp, &out)
	require.Len(t, out.Failed, 1)
	assert.Equal(t, int64(10), out.Failed[0].ProductID)
	require.Len(t, out.Inserted, 1, "el resto del lote avanza")
}

// Caso 3: Sin selecciones → 400 por validación.
func TestReconcileAdditionsHandler_SinSelecciones(t *testing.T) {
	app := buildInventoryApp(newMemInventoryRepo())

	resp := postJSON(t, app, "/api/inventory/additions", fiber.Map{
		"selections": []fiber.Map{},
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/inventory/consumptions
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: Consumo con stock suficiente → 200; el insuficiente queda en skipped.
func TestRecordConsumptionHandler(t *testing.T) {
	repo := newMemInventoryRepo()
	repo.seed(1, 10, 8)
	repo.seed(1, 20, 2)
	app := buildInventoryApp(repo)

	resp := postJSON(t, app, "/api/inventory/consumptions", fiber.Map{
		"entries": []fiber.Map{
			{"product_id": 10, "quantity": 4},
			{"product_id": 20, "quantity": 5},
		},
	})
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.ConsumptionResponse
	decodeBody(t, resp, &out)
	require.Len(t, out.Applied, 1)
	assert.Equal(t, int64(10), out.Applied[0].ProductID)
	require.Len(t, out.Skipped, 1)
	assert.Equal(t, int64(2), out.Skipped[0].Available)
}

// Caso 2: Los consumos aplicados aparecen luego en la bitácora.
func TestConsumptionLogHandler(t *testing.T) {
	repo := newMemInventoryRepo()
	repo.seed(1, 10, 8)
	app := buildInventoryApp(repo)

	resp := postJSON(t, app, "/api/inventory/consumptions", fiber.Map{
		"entries": []fiber.Map{{"product_id": 10, "quantity": 3}},
	})
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/api/inventory/consumptions", nil)
	getResp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer getResp.Body.Close()

	var log []dto.ConsumptionRecordDTO
	decodeBody(t, getResp, &log)
	require.Len(t, log, 1)
	assert.Equal(t, int64(3), log[0].Quantity)
}

// ──────────────────────────────────────────────────────────────────────────────
// PUT /api/inventory/products/:product_id/quantity
// ──────────────────────────────────────────────────────────────────────────────

// El ajuste sobrescribe la cantidad; negativa → 400 por validación.
func TestAdjustStockHandler(t *testing.T) {
	repo := newMemInventoryRepo()
	repo.seed(1, 10, 5)
	app := buildInventoryApp(repo)

	raw, _ := json.Marshal(fiber.Map{"new_quantity": 42})
	req := httptest.NewRequest(http.MethodPut, "/api/inventory/products/10/quantity", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	rec := repo.rows[invKey{1, 10}]
	assert.Equal(t, int64(42), rec.CurrentQuantity)

	raw, _ = json.Marshal(fiber.Map{"new_quantity": -1})
	req = httptest.NewRequest(http.MethodPut, "/api/inventory/products/10/quantity", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "la cota inferior se valida en el borde HTTP")
}

// DELETE de una fila inexistente → 404.
func TestDeleteStockHandler_NoExiste(t *testing.T) {
	app := buildInventoryApp(newMemInventoryRepo())

	req := httptest.NewRequest(http.MethodDelete, "/api/inventory/products/99", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
