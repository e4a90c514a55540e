package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/inventario-movil/internal/application/dto"
	"github.com/tu-usuario/inventario-movil/internal/application/inventory"
	"github.com/tu-usuario/inventario-movil/internal/domain"
)

// InventoryHandler maneja las peticiones HTTP de inventario (protegido):
// reconciliación de adiciones, consumos, ajustes, borrado y reporte.
type InventoryHandler struct {
	reconcile *inventory.ReconcileUseCase
	query     *inventory.InventoryQueryUseCase
	report    *inventory.ReportUseCase

	defaultStoreID int64
}

// NewInventoryHandler construye el handler. defaultStoreID se usa cuando la
// petición no indica tienda (el front original siempre opera la tienda 1).
func NewInventoryHandler(reconcile *inventory.ReconcileUseCase, query *inventory.InventoryQueryUseCase, report *inventory.ReportUseCase, defaultStoreID int64) *InventoryHandler {
	return &InventoryHandler{reconcile: reconcile, query: query, report: report, defaultStoreID: defaultStoreID}
}

func (h *InventoryHandler) storeID(requested int64) int64 {
	if requested > 0 {
		return requested
	}
	return h.defaultStoreID
}

// List godoc
// @Summary      Inventario de la tienda con datos del producto
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        store_id  query  int  false  "Tienda; por defecto la configurada"
// @Success      200  {array}   dto.StockItemDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	storeID := h.storeID(int64(c.QueryInt("store_id")))
	items, err := h.query.ListStore(c.Context(), storeID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.StockItemDTO, 0, len(items))
	for _, item := range items {
		out = append(out, dto.ToStockItemDTO(item))
	}
	return c.JSON(fiber.Map{"store_id": storeID, "items": out})
}

// ReconcileAdditions godoc
// @Summary      Sumar las cantidades seleccionadas al stock de la tienda
// @Description  Decide insert-vs-update por producto contra un snapshot batcheado.
//
//	Los productos que fallan quedan enumerados en failed (fallo parcial).
//
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReconcileRequest  true  "tienda y selecciones (cantidad como texto)"
// @Success      200   {object}  dto.ReconcileResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory/additions [post]
func (h *InventoryHandler) ReconcileAdditions(c *fiber.Ctx) error {
	var in dto.ReconcileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := dto.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	result, err := h.reconcile.ReconcileAdditions(c.Context(), h.storeID(in.StoreID), in.SelectionsMap())
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "sin productos seleccionados"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	status := fiber.StatusOK
	if result.HasFailures() {
		// Fallo parcial: el lote avanzó pero no completo.
		status = fiber.StatusMultiStatus
	}
	return c.Status(status).JSON(dto.ToReconcileResponse(result))
}

// RecordConsumption godoc
// @Summary      Registrar consumos contra el snapshot actual de la tienda
// @Description  Entradas con cantidad no positiva o stock insuficiente quedan en
//
//	skipped; la primera escritura fallida detiene el lote sin rollback.
//
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ConsumptionRequest  true  "tienda y entradas de consumo"
// @Success      200   {object}  dto.ConsumptionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory/consumptions [post]
func (h *InventoryHandler) RecordConsumption(c *fiber.Ctx) error {
	var in dto.ConsumptionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := dto.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	storeID := h.storeID(in.StoreID)

	snapshot, err := h.reconcile.Snapshot(c.Context(), storeID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	entries := make([]inventory.ConsumptionEntry, 0, len(in.Entries))
	for _, e := range in.Entries {
		entries = append(entries, inventory.ConsumptionEntry{ProductID: e.ProductID, Quantity: e.Quantity})
	}
	result, err := h.reconcile.RecordConsumption(c.Context(), storeID, snapshot, entries)
	if err != nil {
		// Lote detenido a mitad: devolver lo aplicado junto con el error.
		return c.Status(fiber.StatusMultiStatus).JSON(fiber.Map{
			"result": dto.ToConsumptionResponse(result),
			"error":  dto.ErrorResponse{Code: "STORE_ERROR", Message: err.Error()},
		})
	}
	return c.JSON(dto.ToConsumptionResponse(result))
}

// ConsumptionLog godoc
// @Summary      Bitácora de consumos aplicados en esta sesión del servicio
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ConsumptionRecordDTO
// @Router       /api/inventory/consumptions [get]
func (h *InventoryHandler) ConsumptionLog(c *fiber.Ctx) error {
	records := h.reconcile.ConsumptionLog()
	out := make([]dto.ConsumptionRecordDTO, 0, len(records))
	for _, rec := range records {
		out = append(out, dto.ToConsumptionRecordDTO(rec))
	}
	return c.JSON(out)
}

// AdjustStock godoc
// @Summary      Sobrescribir la cantidad de un producto (corrección manual)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        product_id  path  int  true  "product_id"
// @Param        body  body  dto.AdjustStockRequest  true  "tienda y cantidad absoluta"
// @Success      200   {object}  map[string]string
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/products/{product_id}/quantity [put]
func (h *InventoryHandler) AdjustStock(c *fiber.Ctx) error {
	productID, err := strconv.ParseInt(c.Params("product_id"), 10, 64)
	if err != nil || productID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id inválido"})
	}
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := dto.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	err = h.reconcile.AdjustStock(c.Context(), h.storeID(in.StoreID), productID, in.NewQuantity)
	if err != nil {
		return inventoryError(c, err)
	}
	return c.JSON(fiber.Map{"message": "cantidad actualizada"})
}

// DeleteStock godoc
// @Summary      Eliminar la fila de stock de un producto en la tienda
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        product_id  path  int  true  "product_id"
// @Param        store_id    query int  false "Tienda; por defecto la configurada"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/products/{product_id} [delete]
func (h *InventoryHandler) DeleteStock(c *fiber.Ctx) error {
	productID, err := strconv.ParseInt(c.Params("product_id"), 10, 64)
	if err != nil || productID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id inválido"})
	}
	err = h.reconcile.DeleteStock(c.Context(), h.storeID(int64(c.QueryInt("store_id"))), productID)
	if err != nil {
		return inventoryError(c, err)
	}
	return c.JSON(fiber.Map{"message": "registro eliminado"})
}

// StockReport godoc
// @Summary      Reporte PDF del inventario actual de la tienda
// @Tags         inventory
// @Security     Bearer
// @Produce      application/pdf
// @Param        store_id  query  int  false  "Tienda; por defecto la configurada"
// @Success      200  {file}    byte
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/report.pdf [get]
func (h *InventoryHandler) StockReport(c *fiber.Ctx) error {
	storeID := h.storeID(int64(c.QueryInt("store_id")))
	pdfBytes, err := h.report.StockReport(c.Context(), storeID)
	if err != nil {
		return inventoryError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(pdfBytes)
}

func inventoryError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "registro de stock no encontrado"})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "la fila cambió durante la operación"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
