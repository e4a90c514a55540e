package inventory

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/inventario-movil/internal/domain"
)

// StockReportRow es una fila del reporte de stock de una tienda.
type StockReportRow struct {
	ProductID   int64
	ProductName string
	Quantity    int64
	BasePrice   decimal.Decimal
	TotalValue  decimal.Decimal // Quantity * BasePrice
}

// StockReportGenerator puerto para renderizar el reporte (PDF en infra).
type StockReportGenerator interface {
	GenerateStockReport(ctx context.Context, storeID int64, generatedAt time.Time, rows []StockReportRow) ([]byte, error)
}

// ReportUseCase arma el reporte de stock de una tienda y lo entrega
// renderizado por el generador inyectado.
type ReportUseCase struct {
	query *InventoryQueryUseCase
	gen   StockReportGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(query *InventoryQueryUseCase, gen StockReportGenerator) *ReportUseCase {
	return &ReportUseCase{query: query, gen: gen}
}

// StockReport genera el reporte del inventario actual de la tienda.
// domain.ErrNotFound si la tienda no tiene filas de stock.
func (uc *ReportUseCase) StockReport(ctx context.Context, storeID int64) ([]byte, error) {
	items, err := uc.query.ListStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, domain.ErrNotFound
	}

	rows := make([]StockReportRow, 0, len(items))
	for _, item := range items {
		qty := decimal.NewFromInt(item.Record.CurrentQuantity)
		rows = append(rows, StockReportRow{
			ProductID:   item.Product.ID,
			ProductName: item.Product.Name,
			Quantity:    item.Record.CurrentQuantity,
			BasePrice:   item.Product.BasePrice,
			TotalValue:  item.Product.BasePrice.Mul(qty),
		})
	}
	return uc.gen.GenerateStockReport(ctx, storeID, time.Now(), rows)
}
