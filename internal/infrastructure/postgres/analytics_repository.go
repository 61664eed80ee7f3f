package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard y la asesoría.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// productStock expone el stock derivado por producto activo.
const productStock = `
	SELECT p.id, p.sku, p.name, p.cost, p.reorder_point, COALESCE(SUM(sl.quantity), 0) AS stock
	FROM products p
	LEFT JOIN stock_levels sl ON sl.product_id = p.id
	WHERE p.is_active
	GROUP BY p.id`

func (r *AnalyticsRepo) InventorySummary(ctx context.Context) (repository.InventorySummary, error) {
	var s repository.InventorySummary
	err := r.q.QueryRow(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE stock > 0 AND stock <= reorder_point),
		       COUNT(*) FILTER (WHERE stock = 0),
		       COALESCE(SUM(stock * cost), 0)
		FROM (`+productStock+`) ps`).Scan(&s.TotalProducts, &s.LowStock, &s.OutOfStock, &s.TotalStockValue)
	if err != nil {
		return s, fmt.Errorf("inventory summary: %w", err)
	}
	return s, nil
}

func (r *AnalyticsRepo) PendingDocuments(ctx context.Context) (map[entity.DocumentKind]int, error) {
	rows, err := r.q.Query(ctx, `
		SELECT kind, COUNT(*) FROM documents
		WHERE status IN ('draft', 'waiting', 'ready')
		GROUP BY kind`)
	if err != nil {
		return nil, fmt.Errorf("pending documents: %w", err)
	}
	defer rows.Close()

	out := make(map[entity.DocumentKind]int, len(entity.DocumentKinds))
	for _, k := range entity.DocumentKinds {
		out[k] = 0
	}
	for rows.Next() {
		var (
			kind entity.DocumentKind
			n    int
		)
		if err := rows.Scan(&kind, &n); err != nil {
			return nil, fmt.Errorf("scan pending documents: %w", err)
		}
		out[kind] = n
	}
	return out, rows.Err()
}

func (r *AnalyticsRepo) CountMovesSince(ctx context.Context, since time.Time) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM stock_moves WHERE date >= $1`, since).Scan(&n); err != nil {
		return 0, fmt.Errorf("count moves: %w", err)
	}
	return n, nil
}

func (r *AnalyticsRepo) MovesByType(ctx context.Context, since time.Time) ([]repository.LabelCount, error) {
	return r.labelCounts(ctx, `
		SELECT document_type, COUNT(*) FROM stock_moves
		WHERE date >= $1 GROUP BY document_type ORDER BY document_type`, since)
}

func (r *AnalyticsRepo) DocumentsByStatus(ctx context.Context, kind entity.DocumentKind) ([]repository.LabelCount, error) {
	return r.labelCounts(ctx, `
		SELECT status, COUNT(*) FROM documents
		WHERE kind = $1 GROUP BY status ORDER BY status`, kind)
}

func (r *AnalyticsRepo) labelCounts(ctx context.Context, query string, arg any) ([]repository.LabelCount, error) {
	rows, err := r.q.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("label counts: %w", err)
	}
	defer rows.Close()

	var out []repository.LabelCount
	for rows.Next() {
		var lc repository.LabelCount
		if err := rows.Scan(&lc.Label, &lc.Count); err != nil {
			return nil, fmt.Errorf("scan label count: %w", err)
		}
		out = append(out, lc)
	}
	return out, rows.Err()
}

func (r *AnalyticsRepo) TopProductsByValue(ctx context.Context, limit int) ([]repository.ProductValueResult, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, sku, name, stock, stock * cost AS value
		FROM (`+productStock+`) ps
		WHERE stock > 0
		ORDER BY value DESC, sku
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}
	defer rows.Close()

	var out []repository.ProductValueResult
	for rows.Next() {
		var p repository.ProductValueResult
		if err := rows.Scan(&p.ProductID, &p.SKU, &p.Name, &p.Stock, &p.Value); err != nil {
			return nil, fmt.Errorf("scan top product: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *AnalyticsRepo) DailyMoves(ctx context.Context, since time.Time) ([]repository.DailyCount, error) {
	rows, err := r.q.Query(ctx, `
		SELECT date_trunc('day', date) AS day, COUNT(*)
		FROM stock_moves WHERE date >= $1
		GROUP BY day ORDER BY day`, since)
	if err != nil {
		return nil, fmt.Errorf("daily moves: %w", err)
	}
	defer rows.Close()

	var out []repository.DailyCount
	for rows.Next() {
		var d repository.DailyCount
		if err := rows.Scan(&d.Day, &d.Count); err != nil {
			return nil, fmt.Errorf("scan daily moves: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// DeliveredSince agrega las salidas por entrega. productID vacío incluye a todos.
func (r *AnalyticsRepo) DeliveredSince(ctx context.Context, productID string, since time.Time) ([]repository.ProductDemandResult, error) {
	query := `
		SELECT p.id, p.sku, p.name, COALESCE(SUM(m.quantity), 0), COUNT(m.id)
		FROM stock_moves m
		JOIN products p ON p.id = m.product_id
		WHERE m.document_type = 'delivery' AND m.date >= $1`
	args := []any{since}
	if productID != "" {
		query += ` AND m.product_id = $2`
		args = append(args, productID)
	}
	query += ` GROUP BY p.id, p.sku, p.name ORDER BY 4 DESC`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("delivered since: %w", err)
	}
	defer rows.Close()

	var out []repository.ProductDemandResult
	for rows.Next() {
		var d repository.ProductDemandResult
		if err := rows.Scan(&d.ProductID, &d.SKU, &d.Name, &d.Delivered, &d.Moves); err != nil {
			return nil, fmt.Errorf("scan demand: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
