package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/application/ports"
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	domaininv "github.com/jhoicas/stockmaster-api/internal/domain/inventory"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

const (
	aiTimeout          = 10 * time.Second
	aiUnavailable      = "AI service unavailable"
	demandWindowDays   = 30
	anomalySigma       = 3
	anomalyMinSamples  = 3
	anomalyScanLimit   = 1000
	defaultForecastDay = 30

	aiSystemPrompt = `You are an inventory analyst for a multi-warehouse stock system.
Answer concisely in plain text using only the data provided. Quantities are in the product unit of measure.
If the data is insufficient, say so.`
)

// KPISource entrega el resumen que se usa como contexto para el LLM.
type KPISource interface {
	KPIs(ctx context.Context) (*dto.DashboardKPIs, error)
}

// AIUseCase asesoría de inventario. Los cálculos se hacen localmente y el LLM solo agrega
// texto; si falla (sin API key, timeout, respuesta inválida) se responde available=false
// con los datos locales. Nada del flujo de documentos depende de esto.
type AIUseCase struct {
	llm         ports.LLMService
	productRepo repository.ProductRepository
	analytics   repository.AnalyticsRepository
	moveRepo    repository.StockMoveRepository
	kpis        KPISource
	now         func() time.Time
}

// NewAIUseCase construye el caso de uso inyectando el puerto LLMService.
func NewAIUseCase(
	llm ports.LLMService,
	productRepo repository.ProductRepository,
	analytics repository.AnalyticsRepository,
	moveRepo repository.StockMoveRepository,
	kpis KPISource,
) *AIUseCase {
	return &AIUseCase{
		llm:         llm,
		productRepo: productRepo,
		analytics:   analytics,
		moveRepo:    moveRepo,
		kpis:        kpis,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// ask llama al LLM con timeout de 10 s y convierte cualquier fallo en un resultado no disponible.
func (uc *AIUseCase) ask(ctx context.Context, prompt string, data any) *dto.AIResult {
	if uc.llm == nil {
		return &dto.AIResult{Available: false, Message: aiUnavailable, Data: data}
	}
	ctx, cancel := context.WithTimeout(ctx, aiTimeout)
	defer cancel()

	text, err := uc.llm.Complete(ctx, aiSystemPrompt, prompt)
	if err != nil || strings.TrimSpace(text) == "" {
		log.Warn().Err(err).Msg("asesoría IA no disponible")
		return &dto.AIResult{Available: false, Message: aiUnavailable, Data: data}
	}
	return &dto.AIResult{Available: true, Text: strings.TrimSpace(text), Data: data}
}

func toJSON(v any) string {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(raw)
}

// Forecast pronostica la demanda de un producto a days días a partir de las entregas de los últimos 30.
func (uc *AIUseCase) Forecast(ctx context.Context, in dto.ForecastRequest) (*dto.AIResult, error) {
	p, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	days := in.Days
	if days <= 0 {
		days = defaultForecastDay
	}
	demand, err := uc.analytics.DeliveredSince(ctx, p.ID, uc.now().AddDate(0, 0, -demandWindowDays))
	if err != nil {
		return nil, err
	}
	delivered := decimal.Zero
	if len(demand) > 0 {
		delivered = demand[0].Delivered
	}
	avg := delivered.Div(decimal.NewFromInt(demandWindowDays)).Round(4)
	data := dto.ForecastData{
		ProductID:       p.ID,
		SKU:             p.SKU,
		Name:            p.Name,
		CurrentStock:    p.Stock,
		DeliveredLast30: delivered,
		AvgDailyDemand:  avg,
		Days:            days,
		ExpectedDemand:  avg.Mul(decimal.NewFromInt(int64(days))).Round(2),
	}
	prompt := fmt.Sprintf("Forecast the demand of this product for the next %d days and say whether current stock covers it.\n%s",
		days, toJSON(data))
	return uc.ask(ctx, prompt, data), nil
}

// ReorderSuggestions calcula cuánto pedir de cada producto en alerta:
// max(reorderQuantity, promedio diario × lead time × 2 − stock).
func (uc *AIUseCase) ReorderSuggestions(ctx context.Context) (*dto.AIResult, error) {
	suggestions, err := uc.reorderSuggestions(ctx)
	if err != nil {
		return nil, err
	}
	if len(suggestions) == 0 {
		return &dto.AIResult{Available: true, Text: "No products need reordering.", Data: suggestions}, nil
	}
	prompt := "Summarize these reorder suggestions for a purchasing manager, most urgent first.\n" + toJSON(suggestions)
	return uc.ask(ctx, prompt, suggestions), nil
}

func (uc *AIUseCase) reorderSuggestions(ctx context.Context) ([]dto.ReorderSuggestionDTO, error) {
	products, err := uc.productRepo.ListLowStock(ctx)
	if err != nil {
		return nil, err
	}
	demand, err := uc.analytics.DeliveredSince(ctx, "", uc.now().AddDate(0, 0, -demandWindowDays))
	if err != nil {
		return nil, err
	}
	delivered := make(map[string]decimal.Decimal, len(demand))
	for _, d := range demand {
		delivered[d.ProductID] = d.Delivered
	}
	out := make([]dto.ReorderSuggestionDTO, 0, len(products))
	for _, p := range products {
		out = append(out, SuggestReorder(p, delivered[p.ID]))
	}
	return out, nil
}

// SuggestReorder calcula la sugerencia de compra de un producto dado lo entregado en 30 días.
func SuggestReorder(p *entity.Product, deliveredLast30 decimal.Decimal) dto.ReorderSuggestionDTO {
	avg := deliveredLast30.Div(decimal.NewFromInt(demandWindowDays)).Round(4)
	target := avg.Mul(decimal.NewFromInt(int64(p.LeadTimeDays) * 2)).Sub(p.Stock).Ceil()
	qty := decimal.Max(p.ReorderQuantity, target)

	s := dto.ReorderSuggestionDTO{
		ProductID:         p.ID,
		SKU:               p.SKU,
		Name:              p.Name,
		Stock:             p.Stock,
		ReorderPoint:      p.ReorderPoint,
		AvgDailySales:     avg,
		LeadTimeDays:      p.LeadTimeDays,
		SuggestedQuantity: qty,
		Severity:          domaininv.AlertSeverity(p.Stock, p.ReorderPoint),
	}
	if avg.IsPositive() {
		cover := p.Stock.Div(avg).Round(1)
		s.DaysOfCover = &cover
	}
	return s
}

// Anomalies marca movimientos de los últimos 30 días cuya cantidad supera media + 3σ de su producto.
func (uc *AIUseCase) Anomalies(ctx context.Context) (*dto.AIResult, error) {
	since := uc.now().AddDate(0, 0, -demandWindowDays)
	moves, _, err := uc.moveRepo.List(ctx, repository.MoveFilter{StartDate: &since, Limit: anomalyScanLimit})
	if err != nil {
		return nil, err
	}
	anomalies := DetectAnomalies(moves)
	if len(anomalies) == 0 {
		return &dto.AIResult{Available: true, Text: "No anomalous movements in the last 30 days.", Data: anomalies}, nil
	}
	prompt := "Explain possible causes for these unusually large stock movements.\n" + toJSON(anomalies)
	return uc.ask(ctx, prompt, anomalies), nil
}

// DetectAnomalies agrupa por producto y devuelve los movimientos con cantidad > media + 3σ.
// Productos con menos de tres movimientos no se evalúan.
func DetectAnomalies(moves []*entity.StockMoveView) []dto.AnomalyDTO {
	byProduct := make(map[string][]*entity.StockMoveView)
	for _, m := range moves {
		byProduct[m.ProductID] = append(byProduct[m.ProductID], m)
	}
	out := []dto.AnomalyDTO{}
	for _, group := range byProduct {
		if len(group) < anomalyMinSamples {
			continue
		}
		var sum float64
		for _, m := range group {
			sum += m.Quantity.InexactFloat64()
		}
		mean := sum / float64(len(group))
		var sq float64
		for _, m := range group {
			d := m.Quantity.InexactFloat64() - mean
			sq += d * d
		}
		threshold := mean + anomalySigma*math.Sqrt(sq/float64(len(group)))
		for _, m := range group {
			if m.Quantity.InexactFloat64() > threshold {
				out = append(out, dto.AnomalyDTO{
					MoveID:            m.ID,
					ProductID:         m.ProductID,
					SKU:               m.ProductSKU,
					DocumentType:      string(m.DocumentType),
					DocumentReference: m.DocumentReference,
					Quantity:          m.Quantity,
					Mean:              decimal.NewFromFloat(mean).Round(2),
					Threshold:         decimal.NewFromFloat(threshold).Round(2),
					Date:              m.Date.Format(time.RFC3339),
				})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}

// Chat responde una pregunta libre con el resumen del inventario como contexto.
func (uc *AIUseCase) Chat(ctx context.Context, in dto.ChatRequest) (*dto.AIResult, error) {
	msg := strings.TrimSpace(in.Message)
	if msg == "" {
		return nil, domain.Invalid("message", "es obligatorio")
	}
	snapshot, err := uc.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	prompt := fmt.Sprintf("Inventory snapshot:\n%s\n\nQuestion: %s", toJSON(snapshot), msg)
	return uc.ask(ctx, prompt, nil), nil
}

// Insights resume en pocas líneas el estado del inventario.
func (uc *AIUseCase) Insights(ctx context.Context) (*dto.AIResult, error) {
	snapshot, err := uc.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	prompt := "Give three short, actionable insights about this inventory.\n" + toJSON(snapshot)
	return uc.ask(ctx, prompt, snapshot), nil
}

type inventorySnapshot struct {
	KPIs     *dto.DashboardKPIs         `json:"kpis"`
	LowStock []dto.ReorderSuggestionDTO `json:"lowStock"`
}

func (uc *AIUseCase) snapshot(ctx context.Context) (*inventorySnapshot, error) {
	kpis, err := uc.kpis.KPIs(ctx)
	if err != nil {
		return nil, err
	}
	low, err := uc.reorderSuggestions(ctx)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	return &inventorySnapshot{KPIs: kpis, LowStock: low}, nil
}
