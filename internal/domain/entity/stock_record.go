package entity

import "time"

// StockRecord representa la existencia actual de un producto en una tienda
// (tabla real_time_inventory). Identidad compuesta (StoreID, ProductID):
// a lo sumo existe una fila por par. InventoryID es la identidad de fila
// que asigna la base de datos; las actualizaciones del motor filtran por
// ella para no depender de la clave compuesta durante una carrera.
type StockRecord struct {
	InventoryID     int64
	StoreID         int64
	ProductID       int64
	CurrentQuantity int64
	LastUpdated     time.Time
}
