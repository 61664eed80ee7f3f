package inventory

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TransferNote texto de auditoría de una transferencia.
func TransferNote(from, to string) string {
	return fmt.Sprintf("Transfer from %s to %s", orNA(from), orNA(to))
}

// AdjustmentNote registra dirección, magnitud, ubicación y motivo de un ajuste.
func AdjustmentNote(difference decimal.Decimal, location, reason string) string {
	sign := "+"
	if difference.IsNegative() {
		sign = "-"
	}
	return fmt.Sprintf("Adjustment %s%s at %s: %s", sign, difference.Abs().String(), orNA(location), reason)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
