package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de ubicación dentro de una bodega.
const (
	LocationTypeWarehouse = "warehouse"
	LocationTypeZone      = "zone"
	LocationTypeRack      = "rack"
	LocationTypeShelf     = "shelf"
	LocationTypeBin       = "bin"
)

// Location es el punto donde se guarda stock. StockLevel se lleva por (producto, ubicación).
type Location struct {
	ID          string
	WarehouseID string
	ParentID    *string
	Name        string
	Code        string // único, en mayúsculas
	Type        string
	Capacity    *decimal.Decimal
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Label es la forma legible usada en notas de movimientos: "CODE - Nombre".
func (l *Location) Label() string {
	if l == nil {
		return "N/A"
	}
	if l.Code == "" {
		return l.Name
	}
	return l.Code + " - " + l.Name
}
