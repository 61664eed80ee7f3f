package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/application/inventory"
	"github.com/jhoicas/stockmaster-api/internal/application/usecase"
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

type catalogRepo struct {
	repository.ProductRepository
	bySKU   map[string]*entity.Product
	created []*entity.Product
	filter  repository.ProductFilter
}

func (r *catalogRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	if p, ok := r.bySKU[sku]; ok {
		return p, nil
	}
	for _, p := range r.created {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *catalogRepo) Create(_ context.Context, p *entity.Product) error {
	r.created = append(r.created, p)
	return nil
}

func (r *catalogRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	for _, p := range r.created {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *catalogRepo) List(_ context.Context, f repository.ProductFilter) ([]*entity.Product, int, error) {
	r.filter = f
	return r.created, 45, nil
}

type catalogStock struct {
	repository.StockLevelRepository
}

func (catalogStock) ListByProduct(context.Context, string) ([]entity.StockLevelView, error) {
	return []entity.StockLevelView{{
		StockLevel:   entity.StockLevel{LocationID: "l1", Quantity: dec(12), Reserved: dec(2)},
		LocationCode: "A1",
	}}, nil
}

type catalogLocations struct {
	repository.LocationRepository
}

func (catalogLocations) Resolve(_ context.Context, ref string) (*entity.Location, error) {
	if ref == "A1" {
		return &entity.Location{ID: "l1", Code: "A1", WarehouseID: "w1"}, nil
	}
	return nil, domain.ErrNotFound
}

// fakeReceiver imita la transacción del motor: lo que before escribe en tx.Products
// solo llega a commit si la recepción no falla.
type fakeReceiver struct {
	repo  *catalogRepo
	input *inventory.CreateDocumentInput
	err   error
}

func (f *fakeReceiver) CreateAndValidate(ctx context.Context, in inventory.CreateDocumentInput, _ string, before func(tx inventory.TxRepos) error) (*entity.Document, error) {
	f.input = &in
	staged := &catalogRepo{bySKU: f.repo.bySKU}
	if err := before(inventory.TxRepos{Products: staged}); err != nil {
		return nil, err
	}
	if f.err != nil {
		return nil, f.err
	}
	f.repo.created = append(f.repo.created, staged.created...)
	return &entity.Document{ID: "rcp-1", Kind: entity.KindReceipt, Reference: "RCP000001", Status: entity.StatusDone}, nil
}

func newCatalog(repo *catalogRepo, recv *fakeReceiver) *usecase.ProductUseCase {
	recv.repo = repo
	return usecase.NewProductUseCase(repo, catalogStock{}, catalogLocations{}, recv)
}

func TestNormalizeCode_MayusculasYSinEspacios(t *testing.T) {
	assert.Equal(t, "TOR-001", usecase.NormalizeCode("  tor-001 "))
	assert.Equal(t, "ÑANDÚ", usecase.NormalizeCode("ñandú"))
}

func TestCreateProduct_ValoresPorDefecto(t *testing.T) {
	repo := &catalogRepo{}
	recv := &fakeReceiver{}

	out, err := newCatalog(repo, recv).Create(context.Background(), dto.CreateProductRequest{
		Name: "Tornillo", SKU: "tor-1", Category: "ferretería", Cost: dec(2), Price: dec(3),
	}, "u1")
	require.NoError(t, err)

	assert.Equal(t, "TOR-1", out.SKU)
	assert.Equal(t, "pcs", out.UnitOfMeasure)
	assert.True(t, out.ReorderPoint.Equal(dec(10)))
	assert.True(t, out.ReorderQuantity.Equal(dec(50)))
	assert.Equal(t, 7, out.LeadTimeDays)
	assert.Nil(t, recv.input, "sin initialStock no se crea recepción")
	require.Len(t, out.StockLevels, 1)
	assert.True(t, out.StockLevels[0].Available.Equal(dec(10)))
}

func TestCreateProduct_SKUDuplicado(t *testing.T) {
	repo := &catalogRepo{bySKU: map[string]*entity.Product{"TOR-1": {ID: "p0", SKU: "TOR-1"}}}

	_, err := newCatalog(repo, &fakeReceiver{}).Create(context.Background(), dto.CreateProductRequest{Name: "x", SKU: "tor-1"}, "u1")

	assert.True(t, errors.Is(err, domain.ErrDuplicate))
	assert.Empty(t, repo.created)
}

func TestCreateProduct_StockInicialPasaPorRecepcionValidada(t *testing.T) {
	repo := &catalogRepo{}
	recv := &fakeReceiver{}
	qty := dec(25)

	_, err := newCatalog(repo, recv).Create(context.Background(), dto.CreateProductRequest{
		Name: "Tuerca", SKU: "TUE-1", InitialStock: &qty, Location: "A1",
	}, "u1")
	require.NoError(t, err)

	require.NotNil(t, recv.input)
	assert.Equal(t, entity.KindReceipt, recv.input.Kind)
	assert.Equal(t, "l1", recv.input.Destination)
	assert.Equal(t, "w1", recv.input.WarehouseID)
	require.Len(t, recv.input.Lines, 1)
	assert.True(t, recv.input.Lines[0].Requested.Equal(qty))
	require.Len(t, repo.created, 1)
	assert.Equal(t, repo.created[0].ID, recv.input.Lines[0].ProductID)
}

func TestCreateProduct_FalloDelStockInicialNoDejaProductoYElReintentoFunciona(t *testing.T) {
	repo := &catalogRepo{}
	recv := &fakeReceiver{err: errors.New("db down")}
	uc := newCatalog(repo, recv)
	qty := dec(25)
	req := dto.CreateProductRequest{Name: "Tuerca", SKU: "TUE-1", InitialStock: &qty, Location: "A1"}

	_, err := uc.Create(context.Background(), req, "u1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
	assert.Empty(t, repo.created, "el producto no debe quedar en el catálogo")

	recv.err = nil
	out, err := uc.Create(context.Background(), req, "u1")
	require.NoError(t, err, "el reintento no debe chocar con un SKU huérfano")
	assert.Equal(t, "TUE-1", out.SKU)
	assert.Len(t, repo.created, 1)
}

func TestCreateProduct_StockInicialSinUbicacion(t *testing.T) {
	repo := &catalogRepo{}
	qty := dec(5)

	_, err := newCatalog(repo, &fakeReceiver{}).Create(context.Background(), dto.CreateProductRequest{
		Name: "Tuerca", SKU: "TUE-1", InitialStock: &qty,
	}, "u1")

	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Empty(t, repo.created, "no se crea el producto si la ubicación falta")
}

func TestCreateProduct_UbicacionInexistente(t *testing.T) {
	repo := &catalogRepo{}
	qty := dec(5)

	_, err := newCatalog(repo, &fakeReceiver{}).Create(context.Background(), dto.CreateProductRequest{
		Name: "Tuerca", SKU: "TUE-1", InitialStock: &qty, Location: "Z9",
	}, "u1")

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "location", verr.Field)
	assert.Empty(t, repo.created)
}

func TestListProducts_PaginaYLimite(t *testing.T) {
	repo := &catalogRepo{created: []*entity.Product{{ID: "p1", Stock: decimal.Zero}}}

	out, err := newCatalog(repo, &fakeReceiver{}).List(context.Background(), " torn ", "", 3, 500)
	require.NoError(t, err)

	assert.Equal(t, "torn", repo.filter.Search)
	assert.Equal(t, 100, repo.filter.Limit)
	assert.Equal(t, 200, repo.filter.Offset)
	assert.Equal(t, 45, out.Page.Count)
	assert.Equal(t, 1, out.Page.TotalPages)
	assert.Equal(t, 3, out.Page.CurrentPage)
}
