package inventory

import (
	"fmt"
	"strings"

	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
)

// ReferenceDigits ancho del número en la referencia (RCP000001).
const ReferenceDigits = 6

// FormatReference arma la referencia legible: prefijo del tipo + número con ceros a la izquierda.
// Números que exceden el ancho se escriben completos.
func FormatReference(kind entity.DocumentKind, seq int64) string {
	return fmt.Sprintf("%s%0*d", kind.Prefix(), ReferenceDigits, seq)
}

// NormalizeReference limpia una referencia enviada por el cliente.
func NormalizeReference(ref string) string {
	return strings.ToUpper(strings.TrimSpace(ref))
}
