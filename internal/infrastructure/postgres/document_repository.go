package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// DocumentRepo persiste los cuatro tipos de documento en documents + document_lines.
type DocumentRepo struct {
	q Querier
}

// NewDocumentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDocumentRepository(q Querier) *DocumentRepo {
	return &DocumentRepo{q: q}
}

const documentColumns = `
	id, kind, reference, status, counterparty_name, counterparty_contact, counterparty_email, counterparty_address,
	warehouse_id, source_location_id, destination_location_id, location_id,
	source_label, destination_label, location_label, reason,
	scheduled_date, completed_date, notes, created_by, created_at, updated_at`

func scanDocument(row pgx.Row) (*entity.Document, error) {
	var (
		d                          entity.Document
		cpName, cpContact, cpEmail *string
		cpAddress                  *string
	)
	err := row.Scan(&d.ID, &d.Kind, &d.Reference, &d.Status, &cpName, &cpContact, &cpEmail, &cpAddress,
		&d.WarehouseID, &d.SourceLocationID, &d.DestinationLocationID, &d.LocationID,
		&d.SourceLabel, &d.DestinationLabel, &d.LocationLabel, &d.Reason,
		&d.ScheduledDate, &d.CompletedDate, &d.Notes, &d.CreatedBy, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if cpName != nil {
		d.Counterparty = &entity.Counterparty{
			Name:    *cpName,
			Contact: derefString(cpContact),
			Email:   derefString(cpEmail),
			Address: derefString(cpAddress),
		}
	}
	return &d, nil
}

// Create inserta la cabecera con ON CONFLICT DO NOTHING para detectar la referencia repetida
// sin abortar la transacción, y luego las líneas.
func (r *DocumentRepo) Create(ctx context.Context, d *entity.Document) error {
	var cpName, cpContact, cpEmail, cpAddress *string
	if d.Counterparty != nil {
		cpName = &d.Counterparty.Name
		cpContact = nullString(d.Counterparty.Contact)
		cpEmail = nullString(d.Counterparty.Email)
		cpAddress = nullString(d.Counterparty.Address)
	}
	query := `
		INSERT INTO documents (` + documentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
		ON CONFLICT (kind, reference) DO NOTHING`
	tag, err := r.q.Exec(ctx, query,
		d.ID, d.Kind, d.Reference, d.Status, cpName, cpContact, cpEmail, cpAddress,
		d.WarehouseID, d.SourceLocationID, d.DestinationLocationID, d.LocationID,
		d.SourceLabel, d.DestinationLabel, d.LocationLabel, d.Reason,
		d.ScheduledDate, d.CompletedDate, d.Notes, d.CreatedBy, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDuplicateReference
	}

	for i, l := range d.Lines {
		_, err := r.q.Exec(ctx, `
			INSERT INTO document_lines (id, document_id, position, product_id, requested, actual)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			l.ID, d.ID, i, l.ProductID, l.Requested, l.Actual)
		if err != nil {
			return fmt.Errorf("insert document line: %w", err)
		}
	}
	return nil
}

func (r *DocumentRepo) GetByID(ctx context.Context, kind entity.DocumentKind, id string) (*entity.Document, error) {
	return r.get(ctx, kind, id, "")
}

// GetForUpdate bloquea la cabecera: una segunda validación concurrente espera aquí
// y al continuar ve el estado done.
func (r *DocumentRepo) GetForUpdate(ctx context.Context, kind entity.DocumentKind, id string) (*entity.Document, error) {
	return r.get(ctx, kind, id, " FOR UPDATE")
}

func (r *DocumentRepo) get(ctx context.Context, kind entity.DocumentKind, id, lock string) (*entity.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE id = $1 AND kind = $2` + lock
	d, err := scanDocument(r.q.QueryRow(ctx, query, id, kind))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	lines, err := r.lines(ctx, []string{d.ID})
	if err != nil {
		return nil, err
	}
	d.Lines = lines[d.ID]
	return d, nil
}

func (r *DocumentRepo) lines(ctx context.Context, ids []string) (map[string][]entity.DocumentLine, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, document_id, product_id, requested, actual
		FROM document_lines WHERE document_id = ANY($1::uuid[])
		ORDER BY document_id, position`, ids)
	if err != nil {
		return nil, fmt.Errorf("list document lines: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]entity.DocumentLine, len(ids))
	for rows.Next() {
		var l entity.DocumentLine
		if err := rows.Scan(&l.ID, &l.DocumentID, &l.ProductID, &l.Requested, &l.Actual); err != nil {
			return nil, fmt.Errorf("scan document line: %w", err)
		}
		out[l.DocumentID] = append(out[l.DocumentID], l)
	}
	return out, rows.Err()
}

func (r *DocumentRepo) UpdateLineQuantities(ctx context.Context, lines []entity.DocumentLine) error {
	for _, l := range lines {
		if _, err := r.q.Exec(ctx,
			`UPDATE document_lines SET requested = $2, actual = $3 WHERE id = $1`,
			l.ID, l.Requested, l.Actual); err != nil {
			return fmt.Errorf("update document line: %w", err)
		}
	}
	return nil
}

// MarkDone es el compare-and-set del estado: solo transiciona si no estaba en done.
func (r *DocumentRepo) MarkDone(ctx context.Context, id string, completedAt time.Time) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE documents SET status = 'done', completed_date = $2, updated_at = $2
		WHERE id = $1 AND status <> 'done'`, id, completedAt)
	if err != nil {
		return fmt.Errorf("mark document done: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAlreadyValidated
	}
	return nil
}

func (r *DocumentRepo) List(ctx context.Context, kind entity.DocumentKind, status entity.DocumentStatus, limit, offset int) ([]*entity.Document, int, error) {
	cond := ` WHERE kind = $1`
	args := []any{kind}
	if status != "" {
		cond += ` AND status = $2`
		args = append(args, status)
	}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM documents`+cond, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count documents: %w", err)
	}

	args = append(args, limit, offset)
	query := `SELECT ` + documentColumns + ` FROM documents` + cond +
		fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list documents: %w", err)
	}
	var (
		docs []*entity.Document
		ids  []string
	)
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			rows.Close()
			return nil, 0, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, d)
		ids = append(ids, d.ID)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	if len(ids) == 0 {
		return docs, total, nil
	}

	lines, err := r.lines(ctx, ids)
	if err != nil {
		return nil, 0, err
	}
	for _, d := range docs {
		d.Lines = lines[d.ID]
	}
	return docs, total, nil
}
