package analytics_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockmaster-api/internal/application/analytics"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
	"github.com/jhoicas/stockmaster-api/internal/infrastructure/cache"
)

func dec(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

// fakeAnalytics devuelve datos fijos y cuenta las lecturas del resumen.
type fakeAnalytics struct {
	summaryCalls atomic.Int32
	statsSince   atomic.Value
	err          error
}

func (f *fakeAnalytics) InventorySummary(context.Context) (repository.InventorySummary, error) {
	n := f.summaryCalls.Add(1)
	return repository.InventorySummary{
		TotalProducts: 12, LowStock: 3, OutOfStock: int(n), TotalStockValue: decimal.RequireFromString("1520.50"),
	}, f.err
}

func (f *fakeAnalytics) PendingDocuments(context.Context) (map[entity.DocumentKind]int, error) {
	return map[entity.DocumentKind]int{entity.KindReceipt: 2, entity.KindDelivery: 1, entity.KindTransfer: 0, entity.KindAdjustment: 4}, nil
}

func (f *fakeAnalytics) CountMovesSince(context.Context, time.Time) (int, error) { return 9, nil }

func (f *fakeAnalytics) MovesByType(_ context.Context, since time.Time) ([]repository.LabelCount, error) {
	f.statsSince.Store(since)
	return []repository.LabelCount{{Label: "receipt", Count: 5}, {Label: "delivery", Count: 3}}, nil
}

func (f *fakeAnalytics) DocumentsByStatus(_ context.Context, kind entity.DocumentKind) ([]repository.LabelCount, error) {
	return []repository.LabelCount{{Label: "done", Count: 2}, {Label: "draft", Count: 1}}, nil
}

func (f *fakeAnalytics) TopProductsByValue(context.Context, int) ([]repository.ProductValueResult, error) {
	return []repository.ProductValueResult{{ProductID: "p1", SKU: "SKU-1", Stock: dec(10), Value: dec(250)}}, nil
}

func (f *fakeAnalytics) DailyMoves(context.Context, time.Time) ([]repository.DailyCount, error) {
	return []repository.DailyCount{{Day: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), Count: 4}}, nil
}

func (f *fakeAnalytics) DeliveredSince(context.Context, string, time.Time) ([]repository.ProductDemandResult, error) {
	return nil, nil
}

// fakeProducts solo implementa lo que usa el dashboard; el resto entra en pánico si se llama.
type fakeProducts struct {
	repository.ProductRepository
	low []*entity.Product
}

func (f *fakeProducts) ListLowStock(context.Context) ([]*entity.Product, error) { return f.low, nil }

type fakeStock struct {
	repository.StockLevelRepository
	levels map[string][]entity.StockLevelView
}

func (f *fakeStock) ListByProduct(_ context.Context, productID string) ([]entity.StockLevelView, error) {
	return f.levels[productID], nil
}

type fakeMoves struct {
	repository.StockMoveRepository
	filter repository.MoveFilter
	moves  []*entity.StockMoveView
}

func (f *fakeMoves) List(_ context.Context, filter repository.MoveFilter) ([]*entity.StockMoveView, int, error) {
	f.filter = filter
	return f.moves, len(f.moves), nil
}

func newDashboard(a *fakeAnalytics, c analytics.Cache) *analytics.DashboardUseCase {
	return analytics.NewDashboardUseCase(a, &fakeProducts{}, &fakeStock{}, &fakeMoves{}, c)
}

func newRedisCache(t *testing.T) *cache.Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return cache.New(client, time.Minute)
}

func TestKPIs_SinCacheMapeaElResumen(t *testing.T) {
	a := &fakeAnalytics{}
	kpis, err := newDashboard(a, nil).KPIs(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 12, kpis.TotalProducts)
	assert.Equal(t, 3, kpis.LowStockCount)
	assert.Equal(t, 2, kpis.PendingReceipts)
	assert.Equal(t, 1, kpis.PendingDeliveries)
	assert.Equal(t, 0, kpis.PendingTransfers)
	assert.Equal(t, 9, kpis.RecentMoves)
	assert.True(t, kpis.TotalStockValue.Equal(decimal.RequireFromString("1520.5")))
}

func TestKPIs_CacheRedisHastaBump(t *testing.T) {
	a := &fakeAnalytics{}
	c := newRedisCache(t)
	uc := newDashboard(a, c)
	ctx := context.Background()

	first, err := uc.KPIs(ctx)
	require.NoError(t, err)
	second, err := uc.KPIs(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(1), a.summaryCalls.Load(), "el segundo KPIs debe salir de la caché")
	assert.Equal(t, first.OutOfStockCount, second.OutOfStockCount)

	_, err = c.Bump(ctx)
	require.NoError(t, err)
	third, err := uc.KPIs(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(2), a.summaryCalls.Load(), "después de una validación se recalcula")
	assert.Equal(t, 2, third.OutOfStockCount)
}

func TestKPIs_ErrorDelRepositorio(t *testing.T) {
	a := &fakeAnalytics{err: errors.New("db caída")}
	_, err := newDashboard(a, nil).KPIs(context.Background())
	assert.ErrorContains(t, err, "db caída")
}

func TestStats_DiasPorDefectoYMaximo(t *testing.T) {
	a := &fakeAnalytics{}
	uc := newDashboard(a, nil)

	stats, err := uc.Stats(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 30, stats.Days)
	require.Len(t, stats.MovesByType, 2)
	assert.Equal(t, "receipt", stats.MovesByType[0].ID)
	assert.Equal(t, "2026-03-01", stats.DailyMoves[0].Date)
	assert.Len(t, stats.TopProductsByValue, 1)

	since := a.statsSince.Load().(time.Time)
	assert.WithinDuration(t, time.Now().UTC().AddDate(0, 0, -30), since, time.Minute)

	stats, err = uc.Stats(context.Background(), 5000)
	require.NoError(t, err)
	assert.Equal(t, 365, stats.Days)
}

func TestAlerts_SeveridadDeficitYUbicaciones(t *testing.T) {
	products := &fakeProducts{low: []*entity.Product{
		{ID: "p1", SKU: "A", Stock: dec(0), ReorderPoint: dec(10), ReorderQuantity: dec(50)},
		{ID: "p2", SKU: "B", Stock: dec(4), ReorderPoint: dec(10)},
		{ID: "p3", SKU: "C", Stock: dec(8), ReorderPoint: dec(10)},
	}}
	stock := &fakeStock{levels: map[string][]entity.StockLevelView{
		"p2": {{StockLevel: entity.StockLevel{LocationID: "l1", Quantity: dec(4)}, LocationCode: "A1", LocationName: "Rack A1"}},
	}}
	uc := analytics.NewDashboardUseCase(&fakeAnalytics{}, products, stock, &fakeMoves{}, nil)

	alerts, err := uc.Alerts(context.Background())
	require.NoError(t, err)
	require.Len(t, alerts, 3)

	assert.Equal(t, "critical", alerts[0].Severity)
	assert.True(t, alerts[0].Deficit.Equal(dec(10)))
	assert.True(t, alerts[0].ReorderQuantity.Equal(dec(50)))
	assert.Equal(t, "high", alerts[1].Severity)
	require.Len(t, alerts[1].Locations, 1)
	assert.Equal(t, "A1 - Rack A1", alerts[1].Locations[0].Label)
	assert.Equal(t, "medium", alerts[2].Severity)
	assert.True(t, alerts[2].Deficit.Equal(dec(2)))
}

func TestActivities_LimitePorDefecto(t *testing.T) {
	moves := &fakeMoves{moves: []*entity.StockMoveView{{
		StockMove:   entity.StockMove{ID: "m1", DocumentType: entity.KindDelivery, DocumentReference: "WH/DEL/0001", Quantity: dec(3)},
		ProductName: "Tornillo", UserName: "Ana",
	}}}
	uc := analytics.NewDashboardUseCase(&fakeAnalytics{}, &fakeProducts{}, &fakeStock{}, moves, nil)

	out, err := uc.Activities(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 10, moves.filter.Limit)
	require.Len(t, out, 1)
	assert.Equal(t, "delivery", out[0].DocumentType)
	assert.Equal(t, "Ana", out[0].UserName)
}
