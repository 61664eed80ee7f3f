package repository

import (
	"context"
	"time"

	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
)

// DocumentRepository persiste cabecera y líneas de los cuatro tipos de documento.
type DocumentRepository interface {
	// Create inserta cabecera y líneas. Una referencia repetida para el mismo tipo
	// devuelve domain.ErrDuplicateReference.
	Create(ctx context.Context, doc *entity.Document) error
	GetByID(ctx context.Context, kind entity.DocumentKind, id string) (*entity.Document, error)
	// GetForUpdate bloquea la fila de cabecera hasta el fin de la transacción.
	GetForUpdate(ctx context.Context, kind entity.DocumentKind, id string) (*entity.Document, error)
	// UpdateLineQuantities persiste Requested/Actual de las líneas (overrides de validación).
	UpdateLineQuantities(ctx context.Context, lines []entity.DocumentLine) error
	// MarkDone pasa el documento a done solo si no lo estaba; si otra validación ganó,
	// devuelve domain.ErrAlreadyValidated.
	MarkDone(ctx context.Context, id string, completedAt time.Time) error
	List(ctx context.Context, kind entity.DocumentKind, status entity.DocumentStatus, limit, offset int) ([]*entity.Document, int, error)
}

// SequenceRepository entrega el siguiente número de referencia por tipo de documento.
type SequenceRepository interface {
	Next(ctx context.Context, kind entity.DocumentKind) (int64, error)
}
