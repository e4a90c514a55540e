package entity

import "time"

// ConsumptionRecord es el registro en memoria de un consumo aplicado.
// No se persiste en la base: alimenta la bitácora de actividad de la sesión.
type ConsumptionRecord struct {
	ID        string
	ProductID int64
	Quantity  int64
	Date      time.Time
}
