package inventory

import "github.com/tu-usuario/inventario-movil/internal/domain/entity"

// AppliedItem es un producto cuya cantidad quedó escrita en la tienda.
type AppliedItem struct {
	ProductID   int64
	Requested   int64 // cantidad pedida ya parseada
	NewQuantity int64 // cantidad resultante en la fila
}

// FailedItem es un producto cuya escritura falló dentro de un lote que en
// conjunto avanzó (fallo parcial). Reason conserva el mensaje del error.
type FailedItem struct {
	ProductID int64
	Requested int64
	Reason    string
}

// ReconcileResult enumera el desenlace por producto de una reconciliación.
// La operación no es atómica: Updated/Inserted y Failed pueden convivir.
type ReconcileResult struct {
	BatchID  string
	Updated  []AppliedItem
	Inserted []AppliedItem
	Failed   []FailedItem
}

// HasFailures indica si hubo fallo parcial.
func (r *ReconcileResult) HasFailures() bool { return len(r.Failed) > 0 }

// ConsumptionEntry es una entrada solicitada de consumo.
type ConsumptionEntry struct {
	ProductID int64
	Quantity  int64
}

// SkippedEntry es un consumo omitido por cantidad no positiva o stock
// insuficiente en el snapshot. No es un error, pero sí es observable.
type SkippedEntry struct {
	ProductID int64
	Requested int64
	Available int64
	Reason    string
}

// ConsumptionResult enumera consumos aplicados y omitidos. Si una escritura
// falla, el lote se detiene y el resultado parcial acompaña al error.
type ConsumptionResult struct {
	Applied []entity.ConsumptionRecord
	Skipped []SkippedEntry
}
