package entity

import "time"

// Warehouse representa una bodega física. Datos de referencia: sin flujo propio.
type Warehouse struct {
	ID        string
	Name      string
	Code      string
	Address   string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
