// Package pdf implementa la generación del reporte de stock por tienda.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Reporte de inventario — Tienda N  │  Fecha         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Cantidad | Precio base | Valor            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Unidades / Valor total del inventario              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	appinventory "github.com/tu-usuario/inventario-movil/internal/application/inventory"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ appinventory.StockReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa inventory.StockReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateStockReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateStockReport(
	_ context.Context,
	storeID int64,
	generatedAt time.Time,
	rows []appinventory.StockReportRow,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(storeID, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, r := range rows {
		m.AddRows(tableDetailRow(r))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(rows))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generar reporte de stock: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Filas ─────────────────────────────────────────────────────────────────────

func headerRow(storeID int64, generatedAt time.Time) core.Row {
	return row.New(12).Add(
		col.New(8).Add(
			text.New(fmt.Sprintf("Reporte de inventario — Tienda %d", storeID), props.Text{
				Size: 14, Style: fontstyle.Bold, Color: colorPrimary,
			}),
		),
		col.New(4).Add(
			text.New(generatedAt.Format("2006-01-02 15:04"), props.Text{
				Size: 9, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Size: 9, Style: fontstyle.Bold, Color: colorPrimary}
	return row.New(7).Add(
		col.New(6).Add(text.New("Producto", header)),
		col.New(2).Add(text.New("Cantidad", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right, Color: colorPrimary})),
		col.New(2).Add(text.New("Precio base", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right, Color: colorPrimary})),
		col.New(2).Add(text.New("Valor", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right, Color: colorPrimary})),
	)
}

func tableDetailRow(r appinventory.StockReportRow) core.Row {
	return row.New(6).Add(
		col.New(6).Add(text.New(fmt.Sprintf("%s (#%d)", r.ProductName, r.ProductID), props.Text{Size: 8})),
		col.New(2).Add(text.New(fmt.Sprintf("%d", r.Quantity), props.Text{Size: 8, Align: align.Right})),
		col.New(2).Add(text.New(r.BasePrice.StringFixed(2), props.Text{Size: 8, Align: align.Right})),
		col.New(2).Add(text.New(r.TotalValue.StringFixed(2), props.Text{Size: 8, Align: align.Right})),
	)
}

func totalsRow(rows []appinventory.StockReportRow) core.Row {
	var units int64
	total := decimal.Zero
	for _, r := range rows {
		units += r.Quantity
		total = total.Add(r.TotalValue)
	}
	return row.New(8).Add(
		col.New(6).Add(text.New("TOTAL", props.Text{Size: 10, Style: fontstyle.Bold, Color: colorPrimary})),
		col.New(2).Add(text.New(fmt.Sprintf("%d", units), props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right})),
		col.New(2),
		col.New(2).Add(text.New(total.StringFixed(2), props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right})),
	)
}
