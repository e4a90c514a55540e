package dto

import (
	"time"

	"github.com/tu-usuario/inventario-movil/internal/application/inventory"
	"github.com/tu-usuario/inventario-movil/internal/domain/entity"
)

// SelectionDTO un producto seleccionado con su cantidad pedida. La cantidad
// viaja como texto (así la teclea el usuario); el motor la parsea con
// tolerancia: vacío o no numérico vale 0.
type SelectionDTO struct {
	ProductID int64  `json:"product_id" validate:"required,gt=0"`
	Quantity  string `json:"quantity"`
}

// ReconcileRequest body para POST /api/inventory/additions.
type ReconcileRequest struct {
	StoreID    int64          `json:"store_id" validate:"omitempty,gt=0"`
	Selections []SelectionDTO `json:"selections" validate:"required,min=1,dive"`
}

// SelectionsMap convierte el arreglo en el mapping que consume el motor.
// Si un product_id se repite, gana la última cantidad.
func (r ReconcileRequest) SelectionsMap() map[int64]string {
	m := make(map[int64]string, len(r.Selections))
	for _, s := range r.Selections {
		m[s.ProductID] = s.Quantity
	}
	return m
}

// AppliedItemDTO resultado por producto escrito.
type AppliedItemDTO struct {
	ProductID   int64 `json:"product_id"`
	Requested   int64 `json:"requested"`
	NewQuantity int64 `json:"new_quantity"`
}

// FailedItemDTO resultado por producto fallido dentro de un lote parcial.
type FailedItemDTO struct {
	ProductID int64  `json:"product_id"`
	Requested int64  `json:"requested"`
	Reason    string `json:"reason"`
}

// ReconcileResponse desenlace por producto de la reconciliación.
type ReconcileResponse struct {
	BatchID  string           `json:"batch_id"`
	Updated  []AppliedItemDTO `json:"updated"`
	Inserted []AppliedItemDTO `json:"inserted"`
	Failed   []FailedItemDTO  `json:"failed,omitempty"`
}

// ToReconcileResponse mapea el resultado del motor al DTO.
func ToReconcileResponse(r *inventory.ReconcileResult) ReconcileResponse {
	out := ReconcileResponse{
		BatchID:  r.BatchID,
		Updated:  make([]AppliedItemDTO, 0, len(r.Updated)),
		Inserted: make([]AppliedItemDTO, 0, len(r.Inserted)),
	}
	for _, it := range r.Updated {
		out.Updated = append(out.Updated, AppliedItemDTO{ProductID: it.ProductID, Requested: it.Requested, NewQuantity: it.NewQuantity})
	}
	for _, it := range r.Inserted {
		out.Inserted = append(out.Inserted, AppliedItemDTO{ProductID: it.ProductID, Requested: it.Requested, NewQuantity: it.NewQuantity})
	}
	for _, it := range r.Failed {
		out.Failed = append(out.Failed, FailedItemDTO{ProductID: it.ProductID, Requested: it.Requested, Reason: it.Reason})
	}
	return out
}

// ConsumptionEntryDTO una entrada de consumo solicitada.
type ConsumptionEntryDTO struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int64 `json:"quantity"`
}

// ConsumptionRequest body para POST /api/inventory/consumptions.
type ConsumptionRequest struct {
	StoreID int64                 `json:"store_id" validate:"omitempty,gt=0"`
	Entries []ConsumptionEntryDTO `json:"entries" validate:"required,min=1,dive"`
}

// ConsumptionRecordDTO un consumo aplicado (bitácora).
type ConsumptionRecordDTO struct {
	ID        string    `json:"id"`
	ProductID int64     `json:"product_id"`
	Quantity  int64     `json:"quantity"`
	Date      time.Time `json:"date"`
}

// SkippedEntryDTO un consumo omitido, con el motivo.
type SkippedEntryDTO struct {
	ProductID int64  `json:"product_id"`
	Requested int64  `json:"requested"`
	Available int64  `json:"available"`
	Reason    string `json:"reason"`
}

// ConsumptionResponse consumos aplicados y omitidos.
type ConsumptionResponse struct {
	Applied []ConsumptionRecordDTO `json:"applied"`
	Skipped []SkippedEntryDTO      `json:"skipped,omitempty"`
}

// ToConsumptionResponse mapea el resultado del motor al DTO.
func ToConsumptionResponse(r *inventory.ConsumptionResult) ConsumptionResponse {
	out := ConsumptionResponse{Applied: make([]ConsumptionRecordDTO, 0, len(r.Applied))}
	for _, rec := range r.Applied {
		out.Applied = append(out.Applied, ToConsumptionRecordDTO(rec))
	}
	for _, s := range r.Skipped {
		out.Skipped = append(out.Skipped, SkippedEntryDTO{ProductID: s.ProductID, Requested: s.Requested, Available: s.Available, Reason: s.Reason})
	}
	return out
}

// ToConsumptionRecordDTO mapea un registro de la bitácora.
func ToConsumptionRecordDTO(rec entity.ConsumptionRecord) ConsumptionRecordDTO {
	return ConsumptionRecordDTO{ID: rec.ID, ProductID: rec.ProductID, Quantity: rec.Quantity, Date: rec.Date}
}

// AdjustStockRequest body para PUT /api/inventory/products/:product_id/quantity.
// La cota inferior se valida aquí (en el caller), no en el motor.
type AdjustStockRequest struct {
	StoreID     int64 `json:"store_id" validate:"omitempty,gt=0"`
	NewQuantity int64 `json:"new_quantity" validate:"min=0"`
}

// StockItemDTO fila de inventario con su producto, para el listado por tienda.
type StockItemDTO struct {
	Product         *ProductResponse `json:"product"`
	CurrentQuantity int64            `json:"current_quantity"`
	InStock         bool             `json:"is_in_stock"`
	LastUpdated     time.Time        `json:"last_updated"`
}

// ToStockItemDTO mapea un StockItem del caso de uso de consulta.
func ToStockItemDTO(item inventory.StockItem) StockItemDTO {
	return StockItemDTO{
		Product:         ToProductResponse(item.Product),
		CurrentQuantity: item.Record.CurrentQuantity,
		InStock:         item.InStock,
		LastUpdated:     item.Record.LastUpdated,
	}
}
