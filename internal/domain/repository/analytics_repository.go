package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
)

// InventorySummary totales del catálogo activo calculados sobre stock derivado.
type InventorySummary struct {
	TotalProducts   int
	LowStock        int // 0 < stock <= punto de pedido
	OutOfStock      int // stock = 0
	TotalStockValue decimal.Decimal
}

// LabelCount conteo agrupado por una etiqueta (tipo de documento, estado).
type LabelCount struct {
	Label string
	Count int
}

// DailyCount movimientos por día.
type DailyCount struct {
	Day   time.Time
	Count int
}

// ProductValueResult producto valorizado a costo.
type ProductValueResult struct {
	ProductID string
	SKU       string
	Name      string
	Stock     decimal.Decimal
	Value     decimal.Decimal
}

// ProductDemandResult cantidad entregada por producto en un período.
type ProductDemandResult struct {
	ProductID string
	SKU       string
	Name      string
	Delivered decimal.Decimal
	Moves     int
}

// AnalyticsRepository define las consultas de lectura del dashboard y de la asesoría IA.
// Las implementaciones son read-only.
type AnalyticsRepository interface {
	InventorySummary(ctx context.Context) (InventorySummary, error)
	// PendingDocuments cuenta documentos en draft, waiting o ready por tipo.
	PendingDocuments(ctx context.Context) (map[entity.DocumentKind]int, error)
	CountMovesSince(ctx context.Context, since time.Time) (int, error)
	MovesByType(ctx context.Context, since time.Time) ([]LabelCount, error)
	DocumentsByStatus(ctx context.Context, kind entity.DocumentKind) ([]LabelCount, error)
	TopProductsByValue(ctx context.Context, limit int) ([]ProductValueResult, error)
	DailyMoves(ctx context.Context, since time.Time) ([]DailyCount, error)
	// DeliveredSince suma los movimientos de entrega por producto desde since.
	// productID vacío devuelve todos los productos con entregas.
	DeliveredSince(ctx context.Context, productID string, since time.Time) ([]ProductDemandResult, error)
}
