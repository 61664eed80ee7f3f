package inventory

import "github.com/shopspring/decimal"

// Severidades de alerta de stock bajo.
const (
	SeverityCritical = "critical"
	SeverityHigh     = "high"
	SeverityMedium   = "medium"
)

var half = decimal.NewFromFloat(0.5)

// AlertSeverity clasifica un producto en o bajo su punto de pedido:
// sin stock es critical, hasta la mitad del punto de pedido high, el resto medium.
func AlertSeverity(stock, reorderPoint decimal.Decimal) string {
	switch {
	case stock.LessThanOrEqual(decimal.Zero):
		return SeverityCritical
	case stock.LessThanOrEqual(reorderPoint.Mul(half)):
		return SeverityHigh
	default:
		return SeverityMedium
	}
}

// Deficit es lo que falta para llegar al punto de pedido (nunca negativo).
func Deficit(stock, reorderPoint decimal.Decimal) decimal.Decimal {
	d := reorderPoint.Sub(stock)
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
