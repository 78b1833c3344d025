// Package pdf implementa la generación del reporte PDF del Libro de Stock.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Stock-Master — Libro de Stock  │  Fecha generación │
//	│  Filtros aplicados (producto / bodega / rango de fechas)    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | SKU | Bodega | Ref | Mov | Cantidad | Saldo │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: total de movimientos listados                      │
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

	appledger "github.com/Ojas37/Stock-Master/internal/application/ledger"
	"github.com/Ojas37/Stock-Master/internal/domain/entity"
	"github.com/Ojas37/Stock-Master/internal/domain/repository"
)

var _ appledger.PDFGenerator = (*MarotoLedgerGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 24, Green: 60, Blue: 110}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorOut     = &props.Color{Red: 160, Green: 40, Blue: 40}
)

// MarotoLedgerGenerator implementa ledger.PDFGenerator usando Maroto v2.
type MarotoLedgerGenerator struct{}

// NewMarotoLedgerGenerator construye el generador.
func NewMarotoLedgerGenerator() *MarotoLedgerGenerator { return &MarotoLedgerGenerator{} }

// GenerateLedgerPDF genera el reporte y devuelve sus bytes.
func (g *MarotoLedgerGenerator) GenerateLedgerPDF(
	_ context.Context,
	entries []repository.LedgerEntry,
	filter repository.LedgerViewFilter,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Stock-Master — Libro de Stock", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(filterRow(filter))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, e := range entries {
		m.AddRows(entryRow(e))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(entries)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow() core.Row {
	return row.New(12).Add(
		col.New(8).Add(
			text.New("Stock-Master — Libro de Stock", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+time.Now().Format("02/01/2006 15:04"), props.Text{
				Size: 8, Top: 3, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func filterRow(filter repository.LedgerViewFilter) core.Row {
	desc := "Todos los movimientos"
	if filter.ProductID != "" {
		desc = "Producto: " + filter.ProductID
	}
	if filter.WarehouseID != "" {
		desc += "  ·  Bodega: " + filter.WarehouseID
	}
	if filter.StartDate != nil {
		desc += "  ·  Desde: " + filter.StartDate.Format("02/01/2006")
	}
	if filter.EndDate != nil {
		desc += "  ·  Hasta: " + filter.EndDate.Format("02/01/2006")
	}
	return row.New(6).Add(
		col.New(12).Add(text.New(desc, props.Text{Size: 8, Color: colorGray})),
	)
}

func tableHeaderRow() core.Row {
	header := func(size int, label string) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary,
		}))
	}
	return row.New(7).Add(
		header(2, "Fecha"),
		header(2, "SKU"),
		header(2, "Bodega"),
		header(2, "Referencia"),
		header(1, "Mov"),
		header(1, "Cantidad"),
		header(2, "Saldo"),
	)
}

func entryRow(e repository.LedgerEntry) core.Row {
	qtyColor := colorPrimary
	qty := e.Quantity.String()
	if e.MovementType == entity.MovementTypeOut {
		qtyColor = colorOut
		qty = "-" + qty
	}
	cell := func(size int, value string) core.Col {
		return col.New(size).Add(text.New(value, props.Text{Size: 8}))
	}
	return row.New(6).Add(
		cell(2, e.CreatedAt.Format("02/01/2006 15:04")),
		cell(2, e.SKU),
		cell(2, e.WarehouseName),
		cell(2, e.Reference),
		cell(1, e.MovementType),
		col.New(1).Add(text.New(qty, props.Text{Size: 8, Color: qtyColor, Align: align.Right})),
		col.New(2).Add(text.New(e.BalanceAfter.String(), props.Text{Size: 8, Align: align.Right})),
	)
}

func footerRow(total int) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Movimientos listados: %d", total), props.Text{
				Size: 8, Top: 2, Color: colorGray,
			}),
		),
	)
}
