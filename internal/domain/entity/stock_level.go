package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockLevel es el saldo de un producto en una ubicación. Hay a lo sumo una fila por par.
// Quantity y Reserved solo los modifica la validación de documentos.
type StockLevel struct {
	ID         string
	ProductID  string
	LocationID string
	Quantity   decimal.Decimal
	Reserved   decimal.Decimal
	UpdatedAt  time.Time
}

// Available es siempre Quantity - Reserved; no existe un setter.
func (s StockLevel) Available() decimal.Decimal {
	return s.Quantity.Sub(s.Reserved)
}

// StockLevelView añade los datos de la ubicación para consultas de stock por ubicación.
type StockLevelView struct {
	StockLevel
	LocationCode  string
	LocationName  string
	WarehouseID   string
	WarehouseName string
}
