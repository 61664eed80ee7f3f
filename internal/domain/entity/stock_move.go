package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockMove es el registro inmutable de un cambio de stock. Se crea una vez por línea con efecto
// al validar un documento y nunca se actualiza ni se borra.
type StockMove struct {
	ID                    string
	ProductID             string
	SourceLocationID      *string         // nil = entrada externa
	DestinationLocationID *string         // nil = salida externa
	Quantity              decimal.Decimal // magnitud absoluta del cambio
	DocumentType          DocumentKind
	DocumentID            string
	DocumentReference     string
	Status                DocumentStatus
	Date                  time.Time
	UserID                string
	Notes                 string
	CreatedAt             time.Time
}

// StockMoveView añade datos de presentación para listados y exportaciones.
type StockMoveView struct {
	StockMove
	ProductName      string
	ProductSKU       string
	UserName         string
	SourceLabel      string
	DestinationLabel string
}
