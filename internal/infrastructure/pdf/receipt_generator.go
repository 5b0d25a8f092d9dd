// Package pdf implementa la generación del recibo de pago de una publicación.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del portal  │  N° Recibo + Fecha            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  EMPRESA: nombre del empleador que pagó                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DETALLE: Publicación | Duración | Importe                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL PAGADO                                               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda de comprobante                             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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

	"github.com/jhoicas/Empleos-api/internal/application/billing"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 16, Green: 97, Blue: 60}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ billing.ReceiptPDFGenerator = (*MarotoReceiptGenerator)(nil)

// MarotoReceiptGenerator implementa billing.ReceiptPDFGenerator usando Maroto v2.
type MarotoReceiptGenerator struct {
	appName string
}

// NewMarotoReceiptGenerator construye el generador. appName encabeza el recibo.
func NewMarotoReceiptGenerator(appName string) *MarotoReceiptGenerator {
	return &MarotoReceiptGenerator{appName: appName}
}

// GenerateReceiptPDF genera el PDF del recibo y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceiptPDF(_ context.Context, data *billing.ReceiptData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo de pago de publicación", true).
		WithAuthor(g.appName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(companyRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(detailHeaderRow())
	m.AddRows(detailRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(data))
	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar recibo: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del portal (izq) y número de recibo + fecha (der).
func (g *MarotoReceiptGenerator) headerRow(data *billing.ReceiptData) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.appName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Publicación de empleo", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("RECIBO DE PAGO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(data.JobID, props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
			text.New("Fecha: "+data.IssuedAt, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// companyRow: datos de la empresa que pagó la publicación.
func companyRow(data *billing.ReceiptData) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("EMPRESA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(data.CompanyName, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
		),
	)
}

// detailHeaderRow: cabecera de la tabla de detalle.
func detailHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Publicación", 6, align.Left),
		h("Duración", 3, align.Center),
		h("Importe", 3, align.Right),
	)
}

// detailRow: la única línea del recibo, la publicación pagada.
func detailRow(data *billing.ReceiptData) core.Row {
	return row.New(10).Add(
		col.New(6).Add(
			text.New(data.JobTitle, props.Text{Size: 9, Top: 1, Left: 1}),
			text.New(data.Description, props.Text{Size: 7, Top: 6, Left: 1, Color: colorGray}),
		),
		col.New(3).Add(text.New(
			fmt.Sprintf("%d días", data.Days),
			props.Text{Size: 9, Align: align.Center, Top: 1},
		)),
		col.New(3).Add(text.New(
			formatAmount(data.Currency, data.Price.StringFixed(2)),
			props.Text{Size: 9, Align: align.Right, Top: 1, Right: 1},
		)),
	)
}

// totalRow: total pagado alineado a la derecha.
func totalRow(data *billing.ReceiptData) core.Row {
	return row.New(10).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL PAGADO:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: 1,
		})),
		col.New(3).Add(text.New(
			formatAmount(data.Currency, data.Price.StringFixed(2)),
			props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Right: 1, Top: 1,
			},
		)),
	)
}

// footerRow: leyenda de comprobante.
func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Este recibo es el comprobante del pago de la publicación. "+
				"Consérvelo como soporte de la operación.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func formatAmount(currency, amount string) string {
	return fmt.Sprintf("%s %s", currency, amount)
}
