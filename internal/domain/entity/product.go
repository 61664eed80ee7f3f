package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unidades de medida aceptadas para un producto.
var UnitsOfMeasure = []string{"pcs", "kg", "litre", "meter", "box", "carton", "dozen"}

// Product representa un producto del catálogo.
// Stock no se persiste en la tabla products: es la suma de StockLevel.Quantity del producto
// en todas las ubicaciones y los repositorios lo calculan al leer.
type Product struct {
	ID              string
	Name            string
	SKU             string // único, en mayúsculas
	Description     string
	Category        string
	UnitOfMeasure   string
	Cost            decimal.Decimal
	Price           decimal.Decimal
	ReorderPoint    decimal.Decimal
	ReorderQuantity decimal.Decimal
	LeadTimeDays    int
	Barcode         string
	IsActive        bool
	Stock           decimal.Decimal // derivado, solo lectura
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NeedsReorder indica si el stock derivado está en o por debajo del punto de pedido.
func (p *Product) NeedsReorder() bool {
	return p.Stock.LessThanOrEqual(p.ReorderPoint)
}

// StockValue valoriza el stock actual a costo.
func (p *Product) StockValue() decimal.Decimal {
	return p.Stock.Mul(p.Cost)
}
