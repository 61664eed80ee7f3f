package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardKPIs respuesta de GET /api/dashboard/kpis.
type DashboardKPIs struct {
	TotalProducts     int             `json:"totalProducts"`
	LowStockCount     int             `json:"lowStockCount"`     // 0 < stock <= punto de pedido
	OutOfStockCount   int             `json:"outOfStockCount"`   // stock = 0
	PendingReceipts   int             `json:"pendingReceipts"`   // draft, waiting, ready
	PendingDeliveries int             `json:"pendingDeliveries"` // draft, waiting, ready
	PendingTransfers  int             `json:"pendingTransfers"`
	TotalStockValue   decimal.Decimal `json:"totalStockValue"`
	RecentMoves       int             `json:"recentMoves"` // últimos 7 días
	GeneratedAt       time.Time       `json:"generatedAt"`
}

// LabelCountDTO conteo agrupado.
type LabelCountDTO struct {
	ID    string `json:"_id"`
	Count int    `json:"count"`
}

// TopProductDTO producto valorizado a costo.
type TopProductDTO struct {
	ProductID string          `json:"productId"`
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Stock     decimal.Decimal `json:"stock"`
	Value     decimal.Decimal `json:"value"`
}

// DailyCountDTO movimientos de un día (YYYY-MM-DD).
type DailyCountDTO struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// DashboardStats respuesta de GET /api/dashboard/stats.
type DashboardStats struct {
	Days               int             `json:"days"`
	MovesByType        []LabelCountDTO `json:"movesByType"`
	ReceiptsByStatus   []LabelCountDTO `json:"receiptsByStatus"`
	DeliveriesByStatus []LabelCountDTO `json:"deliveriesByStatus"`
	TopProductsByValue []TopProductDTO `json:"topProducts"`
	DailyMoves         []DailyCountDTO `json:"dailyMoves"`
}

// AlertLocationDTO stock de un producto en alerta por ubicación.
type AlertLocationDTO struct {
	Location string          `json:"location"`
	Label    string          `json:"label"`
	Quantity decimal.Decimal `json:"quantity"`
}

// StockAlertDTO producto en o bajo el punto de pedido.
type StockAlertDTO struct {
	ProductID       string             `json:"productId"`
	SKU             string             `json:"sku"`
	Name            string             `json:"name"`
	Stock           decimal.Decimal    `json:"stock"`
	ReorderPoint    decimal.Decimal    `json:"reorderPoint"`
	ReorderQuantity decimal.Decimal    `json:"reorderQuantity"`
	Deficit         decimal.Decimal    `json:"deficit"`
	Severity        string             `json:"severity"`
	Locations       []AlertLocationDTO `json:"locations"`
}

// ActivityDTO movimiento reciente para el feed del dashboard.
type ActivityDTO struct {
	ID                string          `json:"id"`
	DocumentType      string          `json:"documentType"`
	DocumentReference string          `json:"documentReference"`
	ProductName       string          `json:"productName"`
	ProductSKU        string          `json:"productSku"`
	Quantity          decimal.Decimal `json:"quantity"`
	UserName          string          `json:"userName"`
	Notes             string          `json:"notes,omitempty"`
	Date              time.Time       `json:"date"`
}
