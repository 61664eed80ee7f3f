// Package export serializa el registro de movimientos para integraciones (ERP, auditoría).
package export

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/beevik/etree"

	"github.com/jhoicas/stockmaster-api/internal/application/inventory"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
)

var _ inventory.MoveXMLExporter = (*XMLExporter)(nil)

// XMLExporter produce <StockMoves total="N"><Move .../></StockMoves>.
type XMLExporter struct {
	now func() time.Time
}

// NewXMLExporter construye el exportador.
func NewXMLExporter() *XMLExporter {
	return &XMLExporter{now: time.Now}
}

// ExportMoves serializa los movimientos en el orden recibido.
func (e *XMLExporter) ExportMoves(moves []*entity.StockMoveView, total int) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("StockMoves")
	root.CreateAttr("total", strconv.Itoa(total))
	root.CreateAttr("count", strconv.Itoa(len(moves)))
	root.CreateAttr("generatedAt", e.now().UTC().Format(time.RFC3339))

	for _, m := range moves {
		el := root.CreateElement("Move")
		el.CreateAttr("id", m.ID)
		el.CreateAttr("date", m.Date.UTC().Format(time.RFC3339))
		el.CreateAttr("documentType", string(m.DocumentType))
		el.CreateAttr("reference", m.DocumentReference)
		el.CreateAttr("status", string(m.Status))
		el.CreateAttr("quantity", m.Quantity.String())

		p := el.CreateElement("Product")
		p.CreateAttr("id", m.ProductID)
		p.CreateAttr("sku", m.ProductSKU)
		p.SetText(m.ProductName)

		if m.SourceLocationID != nil {
			src := el.CreateElement("Source")
			src.CreateAttr("id", *m.SourceLocationID)
			src.SetText(m.SourceLabel)
		}
		if m.DestinationLocationID != nil {
			dst := el.CreateElement("Destination")
			dst.CreateAttr("id", *m.DestinationLocationID)
			dst.SetText(m.DestinationLabel)
		}
		if m.UserID != "" {
			u := el.CreateElement("User")
			u.CreateAttr("id", m.UserID)
			u.SetText(m.UserName)
		}
		if m.Notes != "" {
			el.CreateElement("Notes").SetText(m.Notes)
		}
	}

	doc.Indent(2)
	var out bytes.Buffer
	if _, err := doc.WriteTo(&out); err != nil {
		return nil, fmt.Errorf("export: escribir XML: %w", err)
	}
	return out.Bytes(), nil
}
