package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

var _ repository.StockMoveRepository = (*StockMoveRepo)(nil)

// StockMoveRepo registro de movimientos. No hay UPDATE ni DELETE sobre stock_moves.
type StockMoveRepo struct {
	q Querier
}

// NewStockMoveRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMoveRepository(q Querier) *StockMoveRepo {
	return &StockMoveRepo{q: q}
}

func (r *StockMoveRepo) Create(ctx context.Context, m *entity.StockMove) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO stock_moves (id, product_id, source_location_id, destination_location_id, quantity,
		                         document_type, document_id, document_reference, status, date, user_id, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		m.ID, m.ProductID, m.SourceLocationID, m.DestinationLocationID, m.Quantity,
		m.DocumentType, m.DocumentID, m.DocumentReference, m.Status, m.Date, m.UserID, m.Notes, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert stock move: %w", err)
	}
	return nil
}

// List filtra el historial; fechas inclusivas, más recientes primero.
func (r *StockMoveRepo) List(ctx context.Context, f repository.MoveFilter) ([]*entity.StockMoveView, int, error) {
	var (
		where []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}
	if f.ProductID != "" {
		add("m.product_id = $%d", f.ProductID)
	}
	if f.DocumentType != "" {
		add("m.document_type = $%d", f.DocumentType)
	}
	if f.Status != "" {
		add("m.status = $%d", f.Status)
	}
	if f.StartDate != nil {
		add("m.date >= $%d", *f.StartDate)
	}
	if f.EndDate != nil {
		add("m.date <= $%d", *f.EndDate)
	}
	cond := ""
	if len(where) > 0 {
		cond = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM stock_moves m`+cond, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count stock moves: %w", err)
	}

	args = append(args, f.Limit, f.Offset)
	query := `
		SELECT m.id, m.product_id, m.source_location_id, m.destination_location_id, m.quantity,
		       m.document_type, m.document_id, m.document_reference, m.status, m.date, m.user_id, m.notes, m.created_at,
		       p.name, p.sku, COALESCE(u.name, ''),
		       COALESCE(sl.code || ' - ' || sl.name, ''), COALESCE(dl.code || ' - ' || dl.name, '')
		FROM stock_moves m
		JOIN products p ON p.id = m.product_id
		LEFT JOIN users u ON u.id = m.user_id
		LEFT JOIN locations sl ON sl.id = m.source_location_id
		LEFT JOIN locations dl ON dl.id = m.destination_location_id` + cond +
		fmt.Sprintf(` ORDER BY m.date DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list stock moves: %w", err)
	}
	defer rows.Close()

	var out []*entity.StockMoveView
	for rows.Next() {
		var v entity.StockMoveView
		if err := rows.Scan(&v.ID, &v.ProductID, &v.SourceLocationID, &v.DestinationLocationID, &v.Quantity,
			&v.DocumentType, &v.DocumentID, &v.DocumentReference, &v.Status, &v.Date, &v.UserID, &v.Notes, &v.CreatedAt,
			&v.ProductName, &v.ProductSKU, &v.UserName, &v.SourceLabel, &v.DestinationLabel); err != nil {
			return nil, 0, fmt.Errorf("scan stock move: %w", err)
		}
		out = append(out, &v)
	}
	return out, total, rows.Err()
}

func (r *StockMoveRepo) CountByDocument(ctx context.Context, documentID string) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM stock_moves WHERE document_id = $1`, documentID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count stock moves: %w", err)
	}
	return n, nil
}
