package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

// SlipLine línea de documento con los datos del producto para imprimir.
type SlipLine struct {
	entity.DocumentLine
	SKU  string
	Name string
	Unit string
}

// DocumentPDFGenerator genera el comprobante imprimible de un documento.
type DocumentPDFGenerator interface {
	GenerateDocumentPDF(ctx context.Context, doc *entity.Document, lines []SlipLine) ([]byte, error)
}

// MoveXMLExporter serializa el registro de movimientos para integraciones.
type MoveXMLExporter interface {
	ExportMoves(moves []*entity.StockMoveView, total int) ([]byte, error)
}

// ExportUseCase comprobantes PDF y exportación XML. Solo lectura.
type ExportUseCase struct {
	documents   *DocumentUseCase
	productRepo repository.ProductRepository
	pdf         DocumentPDFGenerator
	xml         MoveXMLExporter
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(documents *DocumentUseCase, productRepo repository.ProductRepository, pdf DocumentPDFGenerator, xml MoveXMLExporter) *ExportUseCase {
	return &ExportUseCase{documents: documents, productRepo: productRepo, pdf: pdf, xml: xml}
}

// DocumentPDF devuelve el PDF y el nombre de archivo sugerido (referencia con / reemplazadas).
func (uc *ExportUseCase) DocumentPDF(ctx context.Context, kind entity.DocumentKind, id string) ([]byte, string, error) {
	doc, err := uc.documents.Get(ctx, kind, id)
	if err != nil {
		return nil, "", err
	}
	lines := make([]SlipLine, 0, len(doc.Lines))
	for _, l := range doc.Lines {
		sl := SlipLine{DocumentLine: l, SKU: "?", Name: l.ProductID}
		p, err := uc.productRepo.GetByID(ctx, l.ProductID)
		switch {
		case err == nil:
			sl.SKU, sl.Name, sl.Unit = p.SKU, p.Name, p.UnitOfMeasure
		case !errors.Is(err, domain.ErrNotFound):
			return nil, "", err
		}
		lines = append(lines, sl)
	}
	pdf, err := uc.pdf.GenerateDocumentPDF(ctx, doc, lines)
	if err != nil {
		return nil, "", fmt.Errorf("pdf %s: %w", doc.Reference, err)
	}
	return pdf, strings.ReplaceAll(doc.Reference, "/", "-") + ".pdf", nil
}

// MovesXML exporta la página filtrada del registro de movimientos.
func (uc *ExportUseCase) MovesXML(ctx context.Context, q MoveQuery) ([]byte, error) {
	if q.Limit <= 0 {
		q.Limit = 100
	}
	moves, total, err := uc.documents.ListMoves(ctx, q)
	if err != nil {
		return nil, err
	}
	return uc.xml.ExportMoves(moves, total)
}
