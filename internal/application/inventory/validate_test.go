package inventory_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockmaster-api/internal/application/inventory"
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
)

const actor = "user-manager"

func dec(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func decPtr(n int64) *decimal.Decimal {
	d := decimal.NewFromInt(n)
	return &d
}

func fixture() *memStore {
	s := newMemStore()
	s.addProduct("p1", "SKU-1")
	s.addProduct("p2", "SKU-2")
	s.addLocation("l1", "A1", "Rack A1")
	s.addLocation("l2", "B1", "Rack B1")
	return s
}

func createReceipt(t *testing.T, uc *inventory.DocumentUseCase, ordered, received int64) *entity.Document {
	t.Helper()
	doc, err := uc.Create(context.Background(), inventory.CreateDocumentInput{
		Kind:         entity.KindReceipt,
		Counterparty: &entity.Counterparty{Name: "Proveedor S.A."},
		Destination:  "l1",
		Lines:        []inventory.LineInput{{ProductID: "p1", Requested: dec(ordered), Actual: decPtr(received)}},
	}, actor)
	require.NoError(t, err)
	return doc
}

func TestValidate_RecepcionIncrementaStockYRegistraMovimiento(t *testing.T) {
	s := fixture()
	uc := newUseCase(s)
	doc := createReceipt(t, uc, 50, 50)

	got, err := uc.Validate(context.Background(), entity.KindReceipt, doc.ID, actor, nil)
	require.NoError(t, err)

	assert.Equal(t, entity.StatusDone, got.Status)
	require.NotNil(t, got.CompletedDate)
	assert.True(t, s.quantity("p1", "l1").Equal(dec(50)))
	assert.True(t, s.productStock("p1").Equal(dec(50)))

	moves := s.movesFor(doc.ID)
	require.Len(t, moves, 1)
	m := moves[0]
	assert.True(t, m.Quantity.Equal(dec(50)))
	assert.Equal(t, entity.KindReceipt, m.DocumentType)
	assert.Equal(t, doc.Reference, m.DocumentReference)
	assert.Nil(t, m.SourceLocationID)
	require.NotNil(t, m.DestinationLocationID)
	assert.Equal(t, "l1", *m.DestinationLocationID)
	assert.Equal(t, actor, m.UserID)
	assert.Equal(t, entity.StatusDone, m.Status)
}

func TestValidate_EntregaSinStockSuficienteNoModificaNada(t *testing.T) {
	s := fixture()
	s.setStock("p1", "l1", 10)
	uc := newUseCase(s)

	doc, err := uc.Create(context.Background(), inventory.CreateDocumentInput{
		Kind:         entity.KindDelivery,
		Counterparty: &entity.Counterparty{Name: "Cliente"},
		Source:       "A1",
		Lines:        []inventory.LineInput{{ProductID: "p1", Requested: dec(15)}},
	}, actor)
	require.NoError(t, err)

	_, err = uc.Validate(context.Background(), entity.KindDelivery, doc.ID, actor, nil)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	var stockErr *domain.InsufficientStockError
	require.True(t, errors.As(err, &stockErr))
	assert.Equal(t, "p1", stockErr.ProductID)
	assert.Equal(t, "l1", stockErr.LocationID)

	assert.True(t, s.productStock("p1").Equal(dec(10)))
	assert.Empty(t, s.movesFor(doc.ID))
	assert.Equal(t, entity.StatusDraft, s.status(doc.ID))
}

func TestValidate_EntregaMultilineaEsTodoONada(t *testing.T) {
	s := fixture()
	s.setStock("p1", "l1", 10)
	s.setStock("p2", "l1", 1)
	uc := newUseCase(s)

	doc, err := uc.Create(context.Background(), inventory.CreateDocumentInput{
		Kind:         entity.KindDelivery,
		Counterparty: &entity.Counterparty{Name: "Cliente"},
		Source:       "l1",
		Lines: []inventory.LineInput{
			{ProductID: "p1", Requested: dec(4)},
			{ProductID: "p2", Requested: dec(2)},
		},
	}, actor)
	require.NoError(t, err)

	_, err = uc.Validate(context.Background(), entity.KindDelivery, doc.ID, actor, nil)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.True(t, s.quantity("p1", "l1").Equal(dec(10)), "la primera línea no debe quedar aplicada")
	assert.True(t, s.quantity("p2", "l1").Equal(dec(1)))
	assert.Empty(t, s.movesFor(doc.ID))
}

func TestValidate_AjusteNegativoDescuentaDiferencia(t *testing.T) {
	s := fixture()
	s.setStock("p1", "l1", 100)
	uc := newUseCase(s)

	doc, err := uc.Create(context.Background(), inventory.CreateDocumentInput{
		Kind:     entity.KindAdjustment,
		Location: "Rack A1",
		Reason:   entity.ReasonDamage,
		Lines:    []inventory.LineInput{{ProductID: "p1", Requested: dec(999), Actual: decPtr(92)}},
	}, actor)
	require.NoError(t, err)
	require.Len(t, doc.Lines, 1)
	assert.True(t, doc.Lines[0].Requested.Equal(dec(100)), "la cantidad de sistema se toma del libro")
	assert.True(t, doc.Lines[0].Difference().Equal(dec(-8)))

	_, err = uc.Validate(context.Background(), entity.KindAdjustment, doc.ID, actor, nil)
	require.NoError(t, err)

	assert.True(t, s.productStock("p1").Equal(dec(92)))
	moves := s.movesFor(doc.ID)
	require.Len(t, moves, 1)
	assert.True(t, moves[0].Quantity.Equal(dec(8)))
	assert.Equal(t, entity.KindAdjustment, moves[0].DocumentType)
	assert.Contains(t, moves[0].Notes, "-8")
	assert.Contains(t, moves[0].Notes, "A1 - Rack A1")
	assert.Contains(t, moves[0].Notes, entity.ReasonDamage)
	require.NotNil(t, moves[0].SourceLocationID)
	assert.Nil(t, moves[0].DestinationLocationID)
}

func TestValidate_AjusteSinDiferenciaNoGeneraMovimiento(t *testing.T) {
	s := fixture()
	s.setStock("p1", "l1", 100)
	uc := newUseCase(s)

	doc, err := uc.Create(context.Background(), inventory.CreateDocumentInput{
		Kind:     entity.KindAdjustment,
		Location: "l1",
		Lines:    []inventory.LineInput{{ProductID: "p1", Actual: decPtr(100)}},
	}, actor)
	require.NoError(t, err)
	assert.Equal(t, entity.ReasonPhysicalInventory, doc.Reason)

	got, err := uc.Validate(context.Background(), entity.KindAdjustment, doc.ID, actor, nil)
	require.NoError(t, err)

	assert.Equal(t, entity.StatusDone, got.Status)
	assert.True(t, s.productStock("p1").Equal(dec(100)))
	assert.Empty(t, s.movesFor(doc.ID))
}

func TestValidate_AjustePositivoSumaEnLaUbicacion(t *testing.T) {
	s := fixture()
	uc := newUseCase(s)

	doc, err := uc.Create(context.Background(), inventory.CreateDocumentInput{
		Kind:     entity.KindAdjustment,
		Location: "l2",
		Lines:    []inventory.LineInput{{ProductID: "p2", Actual: decPtr(7)}},
	}, actor)
	require.NoError(t, err)

	_, err = uc.Validate(context.Background(), entity.KindAdjustment, doc.ID, actor, nil)
	require.NoError(t, err)

	assert.True(t, s.quantity("p2", "l2").Equal(dec(7)))
	moves := s.movesFor(doc.ID)
	require.Len(t, moves, 1)
	require.NotNil(t, moves[0].DestinationLocationID)
	assert.Equal(t, "l2", *moves[0].DestinationLocationID)
}

func TestValidate_DobleValidacionConcurrenteAplicaUnaSolaVez(t *testing.T) {
	s := fixture()
	obs := &countingObserver{}
	uc := newUseCase(s, obs)
	doc := createReceipt(t, uc, 50, 50)

	const callers = 8
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		ok      int
		already int
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Validate(context.Background(), entity.KindReceipt, doc.ID, actor, nil)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case errors.Is(err, domain.ErrAlreadyValidated):
				already++
			default:
				t.Errorf("error inesperado: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, ok)
	assert.Equal(t, callers-1, already)
	assert.True(t, s.quantity("p1", "l1").Equal(dec(50)))
	assert.Len(t, s.movesFor(doc.ID), 1)
	assert.Equal(t, 1, obs.calls)
}

func TestValidate_SegundaValidacionDevuelveAlreadyValidated(t *testing.T) {
	s := fixture()
	uc := newUseCase(s)
	doc := createReceipt(t, uc, 5, 5)

	_, err := uc.Validate(context.Background(), entity.KindReceipt, doc.ID, actor, nil)
	require.NoError(t, err)
	_, err = uc.Validate(context.Background(), entity.KindReceipt, doc.ID, actor, nil)
	require.ErrorIs(t, err, domain.ErrAlreadyValidated)

	assert.True(t, s.quantity("p1", "l1").Equal(dec(5)))
	assert.Len(t, s.movesFor(doc.ID), 1)
}

func TestValidate_TransferenciaConservaElTotal(t *testing.T) {
	s := fixture()
	s.setStock("p1", "l1", 20)
	s.setStock("p1", "l2", 3)
	uc := newUseCase(s)

	doc, err := uc.Create(context.Background(), inventory.CreateDocumentInput{
		Kind:        entity.KindTransfer,
		Source:      "A1",
		Destination: "B1",
		Lines:       []inventory.LineInput{{ProductID: "p1", Requested: dec(20)}},
	}, actor)
	require.NoError(t, err)

	before := s.productStock("p1")
	_, err = uc.Validate(context.Background(), entity.KindTransfer, doc.ID, actor, nil)
	require.NoError(t, err)

	assert.True(t, s.quantity("p1", "l1").IsZero())
	assert.True(t, s.quantity("p1", "l2").Equal(dec(23)))
	assert.True(t, s.productStock("p1").Equal(before))

	moves := s.movesFor(doc.ID)
	require.Len(t, moves, 1)
	require.NotNil(t, moves[0].SourceLocationID)
	require.NotNil(t, moves[0].DestinationLocationID)
	assert.Equal(t, "l1", *moves[0].SourceLocationID)
	assert.Equal(t, "l2", *moves[0].DestinationLocationID)
	assert.Equal(t, "Transfer from A1 - Rack A1 to B1 - Rack B1", moves[0].Notes)
}

func TestValidate_TransferenciaSinStockEnOrigenFalla(t *testing.T) {
	s := fixture()
	s.setStock("p1", "l1", 5)
	uc := newUseCase(s)

	doc, err := uc.Create(context.Background(), inventory.CreateDocumentInput{
		Kind: entity.KindTransfer, Source: "l1", Destination: "l2",
		Lines: []inventory.LineInput{{ProductID: "p1", Requested: dec(6)}},
	}, actor)
	require.NoError(t, err)

	_, err = uc.Validate(context.Background(), entity.KindTransfer, doc.ID, actor, nil)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.True(t, s.quantity("p1", "l1").Equal(dec(5)))
	assert.True(t, s.quantity("p1", "l2").IsZero())
}

func TestValidate_OverridesReemplazanCantidadReal(t *testing.T) {
	s := fixture()
	uc := newUseCase(s)
	doc := createReceipt(t, uc, 50, 50)

	got, err := uc.Validate(context.Background(), entity.KindReceipt, doc.ID, actor,
		[]inventory.LineOverride{{ProductID: "p1", Actual: dec(45)}})
	require.NoError(t, err)

	assert.True(t, got.Lines[0].Actual.Equal(dec(45)))
	assert.True(t, s.quantity("p1", "l1").Equal(dec(45)))
	require.Len(t, s.movesFor(doc.ID), 1)
	assert.True(t, s.movesFor(doc.ID)[0].Quantity.Equal(dec(45)))
}

func TestValidate_OverrideDeLineaAjenaEsInvalido(t *testing.T) {
	s := fixture()
	uc := newUseCase(s)
	doc := createReceipt(t, uc, 5, 5)

	_, err := uc.Validate(context.Background(), entity.KindReceipt, doc.ID, actor,
		[]inventory.LineOverride{{ProductID: "p2", Actual: dec(1)}})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, entity.StatusDraft, s.status(doc.ID))
}

func TestValidate_DocumentoInexistente(t *testing.T) {
	uc := newUseCase(fixture())
	_, err := uc.Validate(context.Background(), entity.KindReceipt, "no-existe", actor, nil)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestValidate_TipoEquivocadoEsNotFound(t *testing.T) {
	s := fixture()
	uc := newUseCase(s)
	doc := createReceipt(t, uc, 1, 1)

	_, err := uc.Validate(context.Background(), entity.KindDelivery, doc.ID, actor, nil)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestValidate_StockNuncaNegativoTrasSecuencia(t *testing.T) {
	s := fixture()
	uc := newUseCase(s)
	ctx := context.Background()

	r := createReceipt(t, uc, 30, 30)
	_, err := uc.Validate(ctx, entity.KindReceipt, r.ID, actor, nil)
	require.NoError(t, err)

	for _, qty := range []int64{12, 12, 12} {
		d, err := uc.Create(ctx, inventory.CreateDocumentInput{
			Kind: entity.KindDelivery, Counterparty: &entity.Counterparty{Name: "C"}, Source: "l1",
			Lines: []inventory.LineInput{{ProductID: "p1", Requested: dec(qty)}},
		}, actor)
		require.NoError(t, err)
		_, _ = uc.Validate(ctx, entity.KindDelivery, d.ID, actor, nil)
		assert.False(t, s.productStock("p1").IsNegative())
	}
	assert.True(t, s.productStock("p1").Equal(dec(6)))
}

func TestValidate_CantidadRealCeroRegistraMovimientoSinTocarStock(t *testing.T) {
	cases := []struct {
		name string
		in   inventory.CreateDocumentInput
	}{
		{"recepción", inventory.CreateDocumentInput{
			Kind: entity.KindReceipt, Counterparty: &entity.Counterparty{Name: "Proveedor S.A."}, Destination: "l1",
			Lines: []inventory.LineInput{{ProductID: "p1", Requested: dec(10), Actual: decPtr(0)}},
		}},
		{"entrega", inventory.CreateDocumentInput{
			Kind: entity.KindDelivery, Counterparty: &entity.Counterparty{Name: "Cliente"}, Source: "l1",
			Lines: []inventory.LineInput{{ProductID: "p1", Requested: dec(10), Actual: decPtr(0)}},
		}},
		{"transferencia", inventory.CreateDocumentInput{
			Kind: entity.KindTransfer, Source: "l1", Destination: "l2",
			Lines: []inventory.LineInput{{ProductID: "p1", Requested: dec(10), Actual: decPtr(0)}},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := fixture()
			uc := newUseCase(s)
			doc, err := uc.Create(context.Background(), tc.in, actor)
			require.NoError(t, err)

			_, err = uc.Validate(context.Background(), tc.in.Kind, doc.ID, actor, nil)
			require.NoError(t, err, "sin stock en origen no falla: no hay nada que descontar")

			moves := s.movesFor(doc.ID)
			require.Len(t, moves, 1)
			assert.True(t, moves[0].Quantity.IsZero())
			assert.True(t, s.productStock("p1").IsZero())
		})
	}
}
