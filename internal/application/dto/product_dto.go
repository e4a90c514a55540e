package dto

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/inventario-movil/internal/domain/entity"
)

// ProductResponse representación HTTP de un producto del catálogo.
type ProductResponse struct {
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	BrandID     *int64          `json:"brand_id,omitempty"`
	Length      float64         `json:"product_length"`
	Depth       float64         `json:"product_depth"`
	Width       float64         `json:"product_width"`
	BasePrice   decimal.Decimal `json:"base_price"`
	QRCode      string          `json:"qr_code,omitempty"`
	ImageURL    string          `json:"image_url,omitempty"`
	ArrivalDate string          `json:"arrival_date,omitempty"`
}

// ToProductResponse mapea la entidad al DTO.
func ToProductResponse(p *entity.Product) *ProductResponse {
	out := &ProductResponse{
		ProductID:   p.ID,
		ProductName: p.Name,
		BrandID:     p.BrandID,
		Length:      p.Length,
		Depth:       p.Depth,
		Width:       p.Width,
		BasePrice:   p.BasePrice,
		QRCode:      p.QRCode,
		ImageURL:    p.ImageURL,
	}
	if p.ArrivalDate != nil {
		out.ArrivalDate = p.ArrivalDate.Format("2006-01-02")
	}
	return out
}
