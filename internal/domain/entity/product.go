package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo (tabla products).
// El catálogo lo administra un proceso externo; esta app solo lo lee.
// Las dimensiones son positivas y BasePrice nunca es negativo.
type Product struct {
	ID          int64
	Name        string
	BrandID     *int64
	Length      float64
	Depth       float64
	Width       float64
	BasePrice   decimal.Decimal
	HierarchyID *int64
	QRCode      string // código que devuelve el escáner; vacío si el producto no tiene etiqueta
	ImageURL    string
	ArrivalDate *time.Time
}
