package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockmaster-api/internal/application/inventory"
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
)

func TestCreate_ReferenciasConsecutivasPorTipo(t *testing.T) {
	s := fixture()
	uc := newUseCase(s)

	a := createReceipt(t, uc, 1, 1)
	b := createReceipt(t, uc, 1, 1)
	assert.Equal(t, "RCP000001", a.Reference)
	assert.Equal(t, "RCP000002", b.Reference)

	tr, err := uc.Create(context.Background(), inventory.CreateDocumentInput{
		Kind: entity.KindTransfer, Source: "l1", Destination: "l2",
		Lines: []inventory.LineInput{{ProductID: "p1", Requested: dec(1)}},
	}, actor)
	require.NoError(t, err)
	assert.Equal(t, "TRF000001", tr.Reference)
	assert.Equal(t, entity.StatusDraft, tr.Status)
}

func TestCreate_ReferenciaManualDuplicada(t *testing.T) {
	s := fixture()
	uc := newUseCase(s)
	in := inventory.CreateDocumentInput{
		Kind:         entity.KindReceipt,
		Reference:    "ext-001",
		Counterparty: &entity.Counterparty{Name: "Proveedor"},
		Destination:  "l1",
		Lines:        []inventory.LineInput{{ProductID: "p1", Requested: dec(1)}},
	}

	doc, err := uc.Create(context.Background(), in, actor)
	require.NoError(t, err)
	assert.Equal(t, "EXT-001", doc.Reference)

	_, err = uc.Create(context.Background(), in, actor)
	require.ErrorIs(t, err, domain.ErrDuplicateReference)
}

func TestCreate_ReferenciaGeneradaQueChocaSeReintenta(t *testing.T) {
	s := fixture()
	uc := newUseCase(s)

	_, err := uc.Create(context.Background(), inventory.CreateDocumentInput{
		Kind:         entity.KindReceipt,
		Reference:    "RCP000001",
		Counterparty: &entity.Counterparty{Name: "Proveedor"},
		Destination:  "l1",
		Lines:        []inventory.LineInput{{ProductID: "p1", Requested: dec(1)}},
	}, actor)
	require.NoError(t, err)

	doc := createReceipt(t, uc, 1, 1)
	assert.Equal(t, "RCP000002", doc.Reference)
}

func TestCreate_ErroresDeValidacion(t *testing.T) {
	s := fixture()
	uc := newUseCase(s)
	line := []inventory.LineInput{{ProductID: "p1", Requested: dec(1)}}

	cases := map[string]inventory.CreateDocumentInput{
		"recepción sin proveedor": {Kind: entity.KindReceipt, Destination: "l1", Lines: line},
		"entrega sin nombre de cliente": {Kind: entity.KindDelivery, Source: "l1", Lines: line,
			Counterparty: &entity.Counterparty{Name: "  "}},
		"ubicación inexistente": {Kind: entity.KindReceipt, Destination: "ZZ",
			Counterparty: &entity.Counterparty{Name: "P"}, Lines: line},
		"transferencia al mismo lugar": {Kind: entity.KindTransfer, Source: "l1", Destination: "A1", Lines: line},
		"sin líneas":                   {Kind: entity.KindTransfer, Source: "l1", Destination: "l2"},
		"cantidad negativa": {Kind: entity.KindTransfer, Source: "l1", Destination: "l2",
			Lines: []inventory.LineInput{{ProductID: "p1", Requested: dec(-1)}}},
		"motivo desconocido": {Kind: entity.KindAdjustment, Location: "l1", Reason: "lost",
			Lines: []inventory.LineInput{{ProductID: "p1", Actual: decPtr(1)}}},
		"ajuste sin conteo": {Kind: entity.KindAdjustment, Location: "l1", Lines: line},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := uc.Create(context.Background(), in, actor)
			require.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
	assert.Empty(t, s.docs)
}

func TestCreate_ProductoInexistente(t *testing.T) {
	uc := newUseCase(fixture())
	_, err := uc.Create(context.Background(), inventory.CreateDocumentInput{
		Kind: entity.KindTransfer, Source: "l1", Destination: "l2",
		Lines: []inventory.LineInput{{ProductID: "nope", Requested: dec(1)}},
	}, actor)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_CantidadRealPorDefectoEsLaSolicitada(t *testing.T) {
	s := fixture()
	uc := newUseCase(s)
	doc, err := uc.Create(context.Background(), inventory.CreateDocumentInput{
		Kind: entity.KindTransfer, Source: "l1", Destination: "l2",
		Lines: []inventory.LineInput{{ProductID: "p1", Requested: dec(4)}},
	}, actor)
	require.NoError(t, err)
	assert.True(t, doc.Lines[0].Actual.Equal(dec(4)))
	assert.Equal(t, "A1 - Rack A1", doc.SourceLabel)
	assert.Equal(t, "B1 - Rack B1", doc.DestinationLabel)
}

func TestList_FiltraPorEstadoYPagina(t *testing.T) {
	s := fixture()
	uc := newUseCase(s)
	ctx := context.Background()
	a := createReceipt(t, uc, 1, 1)
	createReceipt(t, uc, 1, 1)
	createReceipt(t, uc, 1, 1)
	_, err := uc.Validate(ctx, entity.KindReceipt, a.ID, actor, nil)
	require.NoError(t, err)

	docs, total, _, _, err := uc.List(ctx, entity.KindReceipt, "draft", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, docs, 2)

	docs, total, page, limit, err := uc.List(ctx, entity.KindReceipt, "", 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, docs, 1)
	assert.Equal(t, 2, page)
	assert.Equal(t, 2, limit)

	_, _, _, _, err = uc.List(ctx, entity.KindReceipt, "archived", 1, 10)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestList_NormalizaPaginaYLimite(t *testing.T) {
	uc := newUseCase(fixture())

	_, _, page, limit, err := uc.List(context.Background(), entity.KindReceipt, "", 0, 500)
	require.NoError(t, err)
	assert.Equal(t, 1, page)
	assert.Equal(t, 100, limit)

	_, _, page, limit, err = uc.List(context.Background(), entity.KindReceipt, "", -3, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, limit)
}

func TestListMoves_FiltrosYFechasInclusivas(t *testing.T) {
	s := fixture()
	uc := newUseCase(s)
	ctx := context.Background()
	doc := createReceipt(t, uc, 3, 3)
	_, err := uc.Validate(ctx, entity.KindReceipt, doc.ID, actor, nil)
	require.NoError(t, err)

	today := s.movesFor(doc.ID)[0].Date.Format("2006-01-02")
	moves, total, page, limit, err := uc.ListMovesPage(ctx, inventory.MoveQuery{
		DocumentType: "receipt", StartDate: today, EndDate: today,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Len(t, moves, 1)
	assert.Equal(t, 1, page)
	assert.Equal(t, 20, limit)

	moves, _, err = uc.ListMoves(ctx, inventory.MoveQuery{DocumentType: "delivery"})
	require.NoError(t, err)
	assert.Empty(t, moves)

	_, _, err = uc.ListMoves(ctx, inventory.MoveQuery{DocumentType: "invoice"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	_, _, err = uc.ListMoves(ctx, inventory.MoveQuery{StartDate: "ayer"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	_, _, err = uc.ListMoves(ctx, inventory.MoveQuery{StartDate: "2024-02-02", EndDate: "2024-02-01"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	_, _, err = uc.ListMoves(ctx, inventory.MoveQuery{ProductID: "abc"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateAndValidate_ProductoYRecepcionEnUnaTransaccion(t *testing.T) {
	s := fixture()
	obs := &countingObserver{}
	uc := newUseCase(s, obs)
	ctx := context.Background()

	nuevo := &entity.Product{ID: "p9", SKU: "SKU-9", Name: "Arandela", IsActive: true}
	doc, err := uc.CreateAndValidate(ctx, inventory.CreateDocumentInput{
		Kind:         entity.KindReceipt,
		Counterparty: &entity.Counterparty{Name: "Stock inicial"},
		Destination:  "A1",
		Lines:        []inventory.LineInput{{ProductID: "p9", Requested: dec(25)}},
	}, actor, func(tx inventory.TxRepos) error {
		return tx.Products.Create(ctx, nuevo)
	})
	require.NoError(t, err)

	assert.Equal(t, entity.StatusDone, doc.Status)
	assert.Equal(t, entity.StatusDone, s.status(doc.ID))
	assert.Equal(t, "RCP000001", doc.Reference)
	assert.True(t, s.quantity("p9", "l1").Equal(dec(25)))
	assert.Len(t, s.movesFor(doc.ID), 1)
	assert.Contains(t, s.products, "p9")
	assert.Equal(t, 1, obs.calls)
}

func TestCreateAndValidate_FalloRevierteElAltaPrevia(t *testing.T) {
	s := fixture()
	obs := &countingObserver{}
	uc := newUseCase(s, obs)
	ctx := context.Background()

	// entrega sin stock: la validación falla después de insertar producto y documento
	_, err := uc.CreateAndValidate(ctx, inventory.CreateDocumentInput{
		Kind:         entity.KindDelivery,
		Counterparty: &entity.Counterparty{Name: "Cliente"},
		Source:       "A1",
		Lines:        []inventory.LineInput{{ProductID: "p9", Requested: dec(5)}},
	}, actor, func(tx inventory.TxRepos) error {
		return tx.Products.Create(ctx, &entity.Product{ID: "p9", SKU: "SKU-9", IsActive: true})
	})

	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.NotContains(t, s.products, "p9")
	assert.Empty(t, s.docs)
	assert.Empty(t, s.seq, "el contador tampoco avanza")
	assert.Empty(t, s.moves)
	assert.Zero(t, obs.calls)
}

func TestCreateAndValidate_ErrorDeBeforeNoPersisteNada(t *testing.T) {
	s := fixture()
	uc := newUseCase(s)
	boom := errors.New("db down")

	_, err := uc.CreateAndValidate(context.Background(), inventory.CreateDocumentInput{
		Kind:         entity.KindReceipt,
		Counterparty: &entity.Counterparty{Name: "Stock inicial"},
		Destination:  "A1",
		Lines:        []inventory.LineInput{{ProductID: "p1", Requested: dec(3)}},
	}, actor, func(inventory.TxRepos) error { return boom })

	require.ErrorIs(t, err, boom)
	assert.Empty(t, s.docs)
	assert.True(t, s.quantity("p1", "l1").IsZero())
}
