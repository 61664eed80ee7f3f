package export

import (
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
)

func strPtr(s string) *string { return &s }

func TestExportMoves_Transferencia(t *testing.T) {
	e := NewXMLExporter()
	e.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	moves := []*entity.StockMoveView{{
		StockMove: entity.StockMove{
			ID:                    "m1",
			ProductID:             "p1",
			SourceLocationID:      strPtr("l1"),
			DestinationLocationID: strPtr("l2"),
			Quantity:              decimal.RequireFromString("2.5"),
			DocumentType:          entity.KindTransfer,
			DocumentReference:     "WH/TRF/0001",
			Status:                entity.StatusDone,
			Date:                  time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC),
			UserID:                "u1",
		},
		ProductName:      "Tornillo & tuerca",
		ProductSKU:       "TOR-01",
		UserName:         "Ana",
		SourceLabel:      "A1 - Estante",
		DestinationLabel: "B2 - Piso",
	}}

	out, err := e.ExportMoves(moves, 7)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))
	root := doc.SelectElement("StockMoves")
	require.NotNil(t, root)
	assert.Equal(t, "7", root.SelectAttrValue("total", ""))
	assert.Equal(t, "1", root.SelectAttrValue("count", ""))
	assert.Equal(t, "2026-01-02T03:04:05Z", root.SelectAttrValue("generatedAt", ""))

	mv := root.SelectElement("Move")
	require.NotNil(t, mv)
	assert.Equal(t, "transfer", mv.SelectAttrValue("documentType", ""))
	assert.Equal(t, "WH/TRF/0001", mv.SelectAttrValue("reference", ""))
	assert.Equal(t, "2.5", mv.SelectAttrValue("quantity", ""))
	assert.Equal(t, "Tornillo & tuerca", mv.SelectElement("Product").Text())
	assert.Equal(t, "l1", mv.SelectElement("Source").SelectAttrValue("id", ""))
	assert.Equal(t, "B2 - Piso", mv.SelectElement("Destination").Text())
	assert.Nil(t, mv.SelectElement("Notes"))
}

func TestExportMoves_RecepcionSinOrigen(t *testing.T) {
	moves := []*entity.StockMoveView{{
		StockMove: entity.StockMove{
			ID:                    "m2",
			ProductID:             "p1",
			DestinationLocationID: strPtr("l1"),
			Quantity:              decimal.NewFromInt(10),
			DocumentType:          entity.KindReceipt,
			Status:                entity.StatusDone,
		},
	}}
	out, err := NewXMLExporter().ExportMoves(moves, 1)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))
	mv := doc.FindElement("//Move")
	require.NotNil(t, mv)
	assert.Nil(t, mv.SelectElement("Source"))
	assert.NotNil(t, mv.SelectElement("Destination"))
	assert.Nil(t, mv.SelectElement("User"))
}

func TestExportMoves_Vacio(t *testing.T) {
	out, err := NewXMLExporter().ExportMoves(nil, 0)
	require.NoError(t, err)
	assert.Contains(t, string(out), `<StockMoves total="0" count="0"`)
}
