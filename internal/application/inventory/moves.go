package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

// MoveQuery filtros del historial tal como llegan de la API.
// EndDate sin hora incluye el día completo.
type MoveQuery struct {
	ProductID    string
	DocumentType string
	Status       string
	StartDate    string
	EndDate      string
	Page         int
	Limit        int
}

// dateLayouts formatos aceptados para startDate/endDate.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// ListMoves consulta el registro de movimientos (solo lectura), más recientes primero.
func (uc *DocumentUseCase) ListMoves(ctx context.Context, q MoveQuery) ([]*entity.StockMoveView, int, error) {
	filter, err := q.toFilter()
	if err != nil {
		return nil, 0, err
	}
	return uc.moveRepo.List(ctx, filter)
}

// ListMovesPage es ListMoves más la página y el límite efectivos.
func (uc *DocumentUseCase) ListMovesPage(ctx context.Context, q MoveQuery) ([]*entity.StockMoveView, int, int, int, error) {
	page, limit := normalizePage(q.Page, q.Limit, 20)
	q.Page, q.Limit = page, limit
	moves, total, err := uc.ListMoves(ctx, q)
	return moves, total, page, limit, err
}

func (q MoveQuery) toFilter() (repository.MoveFilter, error) {
	page, limit := normalizePage(q.Page, q.Limit, 20)
	f := repository.MoveFilter{
		ProductID: q.ProductID,
		Limit:     limit,
		Offset:    (page - 1) * limit,
	}
	if q.ProductID != "" {
		if _, err := uuid.Parse(q.ProductID); err != nil {
			return f, domain.Invalid("product", "debe ser un UUID")
		}
	}
	if q.DocumentType != "" {
		k := entity.DocumentKind(q.DocumentType)
		if !k.Valid() {
			return f, domain.Invalid("documentType", "tipo desconocido %q", q.DocumentType)
		}
		f.DocumentType = k
	}
	if q.Status != "" {
		s := entity.DocumentStatus(q.Status)
		if !s.Valid() {
			return f, domain.Invalid("status", "estado desconocido %q", q.Status)
		}
		f.Status = s
	}
	if q.StartDate != "" {
		t, _, err := parseDate(q.StartDate)
		if err != nil {
			return f, domain.Invalid("startDate", "fecha inválida %q", q.StartDate)
		}
		f.StartDate = &t
	}
	if q.EndDate != "" {
		t, dateOnly, err := parseDate(q.EndDate)
		if err != nil {
			return f, domain.Invalid("endDate", "fecha inválida %q", q.EndDate)
		}
		if dateOnly {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		f.EndDate = &t
	}
	if f.StartDate != nil && f.EndDate != nil && f.EndDate.Before(*f.StartDate) {
		return f, domain.Invalid("endDate", "debe ser posterior a startDate")
	}
	return f, nil
}

func parseDate(s string) (time.Time, bool, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.UTC(), layout == "2006-01-02", nil
		}
		lastErr = err
	}
	return time.Time{}, false, lastErr
}
