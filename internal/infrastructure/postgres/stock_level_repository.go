package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

var _ repository.StockLevelRepository = (*StockLevelRepo)(nil)

// StockLevelRepo implementación del libro de stock sobre PostgreSQL (usable con pool o tx).
type StockLevelRepo struct {
	q Querier
}

// NewStockLevelRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockLevelRepository(q Querier) *StockLevelRepo {
	return &StockLevelRepo{q: q}
}

const stockLevelColumns = `id, product_id, location_id, quantity, reserved, updated_at`

func scanStockLevel(row pgx.Row) (*entity.StockLevel, error) {
	var s entity.StockLevel
	if err := row.Scan(&s.ID, &s.ProductID, &s.LocationID, &s.Quantity, &s.Reserved, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

// Get obtiene el saldo de un producto en una ubicación; sin fila devuelve cero.
func (r *StockLevelRepo) Get(ctx context.Context, productID, locationID string) (*entity.StockLevel, error) {
	query := `SELECT ` + stockLevelColumns + ` FROM stock_levels WHERE product_id = $1 AND location_id = $2`
	s, err := scanStockLevel(r.q.QueryRow(ctx, query, productID, locationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.StockLevel{ProductID: productID, LocationID: locationID}, nil
		}
		return nil, fmt.Errorf("get stock level: %w", err)
	}
	return s, nil
}

// Increase suma qty de forma atómica; crea la fila en el primer ingreso a la ubicación.
func (r *StockLevelRepo) Increase(ctx context.Context, productID, locationID string, qty decimal.Decimal) (*entity.StockLevel, error) {
	query := `
		INSERT INTO stock_levels (id, product_id, location_id, quantity, reserved, updated_at)
		VALUES ($1, $2, $3, $4, 0, now())
		ON CONFLICT (product_id, location_id)
		DO UPDATE SET quantity = stock_levels.quantity + EXCLUDED.quantity, updated_at = now()
		RETURNING ` + stockLevelColumns
	s, err := scanStockLevel(r.q.QueryRow(ctx, query, uuid.New().String(), productID, locationID, qty))
	if err != nil {
		return nil, fmt.Errorf("increase stock level: %w", err)
	}
	return s, nil
}

// Decrease resta qty solo si quantity >= qty. El UPDATE condicionado es el read-modify-write
// atómico: dos entregas concurrentes no pueden dejar el saldo negativo.
func (r *StockLevelRepo) Decrease(ctx context.Context, productID, locationID string, qty decimal.Decimal) (*entity.StockLevel, error) {
	query := `
		UPDATE stock_levels
		SET quantity = quantity - $3, updated_at = now()
		WHERE product_id = $1 AND location_id = $2 AND quantity >= $3
		RETURNING ` + stockLevelColumns
	s, err := scanStockLevel(r.q.QueryRow(ctx, query, productID, locationID, qty))
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("decrease stock level: %w", err)
	}
	// Sin fila actualizada: el saldo no alcanza o no hay fila para la ubicación.
	current, getErr := r.Get(ctx, productID, locationID)
	if getErr != nil {
		return nil, getErr
	}
	return nil, &domain.InsufficientStockError{
		ProductID:  productID,
		LocationID: locationID,
		Requested:  qty,
		Available:  current.Quantity,
	}
}

// ListByProduct devuelve el stock del producto por ubicación con datos de la ubicación.
func (r *StockLevelRepo) ListByProduct(ctx context.Context, productID string) ([]entity.StockLevelView, error) {
	query := `
		SELECT s.id, s.product_id, s.location_id, s.quantity, s.reserved, s.updated_at,
		       l.code, l.name, w.id, w.name
		FROM stock_levels s
		JOIN locations l ON l.id = s.location_id
		JOIN warehouses w ON w.id = l.warehouse_id
		WHERE s.product_id = $1
		ORDER BY w.name, l.code`
	rows, err := r.q.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("list stock levels: %w", err)
	}
	defer rows.Close()

	var out []entity.StockLevelView
	for rows.Next() {
		var v entity.StockLevelView
		if err := rows.Scan(&v.ID, &v.ProductID, &v.LocationID, &v.Quantity, &v.Reserved, &v.UpdatedAt,
			&v.LocationCode, &v.LocationName, &v.WarehouseID, &v.WarehouseName); err != nil {
			return nil, fmt.Errorf("scan stock level: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
