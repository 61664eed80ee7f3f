// Package pdf genera el comprobante imprimible de recepciones, entregas, transferencias y ajustes.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: StockMaster + tipo  │  Referencia + estado + QR     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PROVEEDOR / CLIENTE (si aplica)                              │
//	│  UBICACIONES: origen -> destino / ubicación + motivo          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: SKU | Producto | Solicitado | Real (o Sistema/Contado/Dif.) │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: fechas + notas                                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	"github.com/jhoicas/stockmaster-api/internal/application/inventory"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
)

var _ inventory.DocumentPDFGenerator = (*MarotoPDFGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

var kindTitles = map[entity.DocumentKind]string{
	entity.KindReceipt:    "RECEPCIÓN DE MERCANCÍA",
	entity.KindDelivery:   "ORDEN DE ENTREGA",
	entity.KindTransfer:   "TRANSFERENCIA INTERNA",
	entity.KindAdjustment: "AJUSTE DE INVENTARIO",
}

// MarotoPDFGenerator implementa inventory.DocumentPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	company string
}

// NewMarotoPDFGenerator construye el generador; company aparece en la cabecera.
func NewMarotoPDFGenerator(company string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{company: company}
}

// GenerateDocumentPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateDocumentPDF(_ context.Context, doc *entity.Document, lines []inventory.SlipLine) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(doc.Reference, true).
		WithAuthor(g.company, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	if doc.Counterparty != nil {
		m.AddRows(counterpartyRow(doc))
	}
	m.AddRows(locationsRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	if doc.Kind == entity.KindAdjustment {
		m.AddRows(tableHeaderRow("Sistema", "Contado", "Dif."))
	} else {
		m.AddRows(tableHeaderRow("Solicitado", "Real", ""))
	}
	m.AddRows(tableRows(doc.Kind, lines)...)

	m.AddRows(row.New(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRows(doc)...)

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

func (g *MarotoPDFGenerator) headerRow(doc *entity.Document) core.Row {
	return row.New(24).Add(
		col.New(7).Add(
			text.New(nonEmpty(g.company, "StockMaster"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(kindTitles[doc.Kind], props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(3).Add(
			text.New(doc.Reference, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 2,
			}),
			text.New("Estado: "+string(doc.Status), props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: colorGray,
			}),
			text.New("Programado: "+doc.ScheduledDate.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 15, Color: colorGray,
			}),
		),
		col.New(2).Add(code.NewQr(doc.Reference, props.Rect{Percent: 90, Center: true})),
	)
}

func counterpartyRow(doc *entity.Document) core.Row {
	title := "PROVEEDOR"
	if doc.Kind == entity.KindDelivery {
		title = "CLIENTE"
	}
	cp := doc.Counterparty
	return row.New(14).Add(
		col.New(12).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(cp.Name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(fmt.Sprintf("Contacto: %s   |   Email: %s   |   Dirección: %s",
				nonEmpty(cp.Contact, "-"), nonEmpty(cp.Email, "-"), nonEmpty(cp.Address, "-"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func locationsRow(doc *entity.Document) core.Row {
	var detail string
	switch doc.Kind {
	case entity.KindReceipt:
		detail = "Destino: " + doc.DestinationLabel
	case entity.KindDelivery:
		detail = "Origen: " + doc.SourceLabel
	case entity.KindTransfer:
		detail = fmt.Sprintf("Origen: %s   ->   Destino: %s", doc.SourceLabel, doc.DestinationLabel)
	case entity.KindAdjustment:
		detail = fmt.Sprintf("Ubicación: %s   |   Motivo: %s", doc.LocationLabel, doc.Reason)
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("UBICACIONES", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(detail, props.Text{Size: 9, Top: 6}),
		),
	)
}

func tableHeaderRow(a, b, c string) core.Row {
	h := func(label string, size int, al align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: al,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("SKU", 2, align.Left),
		h("Producto", 5, align.Left),
		h(a, 2, align.Right),
		h(b, 2, align.Right),
		h(c, 1, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func tableRows(kind entity.DocumentKind, lines []inventory.SlipLine) []core.Row {
	cell := func(s string, size int, al align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: al, Top: 1, Left: 1, Right: 1}))
	}
	rows := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		last := ""
		if kind == entity.KindAdjustment {
			last = signed(l.Difference().String())
		}
		rows = append(rows, row.New(7).Add(
			cell(l.SKU, 2, align.Left),
			cell(l.Name, 5, align.Left),
			cell(l.Requested.String()+" "+l.Unit, 2, align.Right),
			cell(l.Actual.String()+" "+l.Unit, 2, align.Right),
			cell(last, 1, align.Right),
		))
	}
	return rows
}

func footerRows(doc *entity.Document) []core.Row {
	completed := "pendiente de validación"
	if doc.CompletedDate != nil {
		completed = doc.CompletedDate.Format("02/01/2006 15:04")
	}
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("Validado: "+completed, props.Text{Size: 8, Top: 1, Color: colorGray}),
		)),
	}
	if doc.Notes != "" {
		rows = append(rows, row.New(10).Add(col.New(12).Add(
			text.New("Notas: "+doc.Notes, props.Text{Size: 8, Top: 1}),
		)))
	}
	return rows
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func signed(s string) string {
	if s == "0" || len(s) > 0 && s[0] == '-' {
		return s
	}
	return "+" + s
}
