package dto

import "github.com/shopspring/decimal"

// ForecastRequest entrada de POST /api/ai/forecast.
type ForecastRequest struct {
	ProductID string `json:"productId" validate:"required,uuid"`
	Days      int    `json:"days" validate:"omitempty,min=1,max=365"`
}

// ChatRequest entrada de POST /api/ai/chat.
type ChatRequest struct {
	Message string `json:"message" validate:"required,min=1,max=2000"`
}

// AIResult respuesta común de la asesoría. Available=false indica que el LLM no respondió;
// los datos calculados localmente se devuelven igual.
type AIResult struct {
	Available bool   `json:"available"`
	Message   string `json:"message,omitempty"`
	Text      string `json:"text,omitempty"`
	Data      any    `json:"data,omitempty"`
}

// ForecastData base local del pronóstico.
type ForecastData struct {
	ProductID       string          `json:"productId"`
	SKU             string          `json:"sku"`
	Name            string          `json:"name"`
	CurrentStock    decimal.Decimal `json:"currentStock"`
	DeliveredLast30 decimal.Decimal `json:"deliveredLast30"`
	AvgDailyDemand  decimal.Decimal `json:"avgDailyDemand"`
	Days            int             `json:"days"`
	ExpectedDemand  decimal.Decimal `json:"expectedDemand"`
}

// ReorderSuggestionDTO sugerencia de compra calculada localmente.
type ReorderSuggestionDTO struct {
	ProductID         string           `json:"productId"`
	SKU               string           `json:"sku"`
	Name              string           `json:"name"`
	Stock             decimal.Decimal  `json:"stock"`
	ReorderPoint      decimal.Decimal  `json:"reorderPoint"`
	AvgDailySales     decimal.Decimal  `json:"avgDailySales"`
	DaysOfCover       *decimal.Decimal `json:"daysOfCover"` // nil sin ventas
	LeadTimeDays      int              `json:"leadTimeDays"`
	SuggestedQuantity decimal.Decimal  `json:"suggestedQuantity"`
	Severity          string           `json:"severity"`
}

// AnomalyDTO movimiento atípico para su producto.
type AnomalyDTO struct {
	MoveID            string          `json:"moveId"`
	ProductID         string          `json:"productId"`
	SKU               string          `json:"sku"`
	DocumentType      string          `json:"documentType"`
	DocumentReference string          `json:"documentReference"`
	Quantity          decimal.Decimal `json:"quantity"`
	Mean              decimal.Decimal `json:"mean"`
	Threshold         decimal.Decimal `json:"threshold"`
	Date              string          `json:"date"`
}
