package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentKind identifica el tipo de documento de inventario.
type DocumentKind string

const (
	KindReceipt    DocumentKind = "receipt"
	KindDelivery   DocumentKind = "delivery"
	KindTransfer   DocumentKind = "transfer"
	KindAdjustment DocumentKind = "adjustment"
)

// DocumentKinds en el orden en que se listan en reportes.
var DocumentKinds = []DocumentKind{KindReceipt, KindDelivery, KindTransfer, KindAdjustment}

// Valid indica si k es un tipo conocido.
func (k DocumentKind) Valid() bool {
	switch k {
	case KindReceipt, KindDelivery, KindTransfer, KindAdjustment:
		return true
	}
	return false
}

// Prefix devuelve el prefijo de referencia de tres letras.
func (k DocumentKind) Prefix() string {
	switch k {
	case KindReceipt:
		return "RCP"
	case KindDelivery:
		return "DEL"
	case KindTransfer:
		return "TRF"
	case KindAdjustment:
		return "ADJ"
	}
	return ""
}

// NeedsSource indica si el documento descuenta stock de una ubicación de origen.
func (k DocumentKind) NeedsSource() bool { return k == KindDelivery || k == KindTransfer }

// NeedsDestination indica si el documento suma stock en una ubicación de destino.
func (k DocumentKind) NeedsDestination() bool { return k == KindReceipt || k == KindTransfer }

// NeedsCounterparty indica si el documento exige proveedor o cliente.
func (k DocumentKind) NeedsCounterparty() bool { return k == KindReceipt || k == KindDelivery }

// DocumentStatus estado del documento.
// Solo existe la transición draft -> done. waiting, ready y cancelled se conservan declarados
// sin transiciones: no hay todavía un flujo de picking ni de anulación que los use.
type DocumentStatus string

const (
	StatusDraft     DocumentStatus = "draft"
	StatusWaiting   DocumentStatus = "waiting"
	StatusReady     DocumentStatus = "ready"
	StatusDone      DocumentStatus = "done"
	StatusCancelled DocumentStatus = "cancelled"
)

// Valid indica si s es un estado conocido.
func (s DocumentStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusWaiting, StatusReady, StatusDone, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal indica un estado sin salida.
func (s DocumentStatus) IsTerminal() bool { return s == StatusDone || s == StatusCancelled }

// IsPending cuenta como pendiente para el dashboard.
func (s DocumentStatus) IsPending() bool {
	return s == StatusDraft || s == StatusWaiting || s == StatusReady
}

// Motivos de ajuste.
const (
	ReasonPhysicalInventory = "physical_inventory"
	ReasonDamage            = "damage"
	ReasonTheft             = "theft"
	ReasonExpiry            = "expiry"
	ReasonOther             = "other"
)

// ValidReason indica si r es un motivo de ajuste conocido.
func ValidReason(r string) bool {
	switch r {
	case ReasonPhysicalInventory, ReasonDamage, ReasonTheft, ReasonExpiry, ReasonOther:
		return true
	}
	return false
}

// Counterparty es el proveedor (recepciones) o el cliente (entregas).
type Counterparty struct {
	Name    string
	Contact string
	Email   string
	Address string
}

// Document es la cabecera común de recepciones, entregas, transferencias y ajustes.
type Document struct {
	ID                    string
	Kind                  DocumentKind
	Reference             string
	Status                DocumentStatus
	Counterparty          *Counterparty
	WarehouseID           *string
	SourceLocationID      *string // entregas y transferencias
	DestinationLocationID *string // recepciones y transferencias
	LocationID            *string // ajustes
	SourceLabel           string
	DestinationLabel      string
	LocationLabel         string
	Reason                string
	ScheduledDate         time.Time
	CompletedDate         *time.Time
	Notes                 string
	CreatedBy             string
	Lines                 []DocumentLine
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// DocumentLine es una línea de producto.
// Requested es lo pedido (o la cantidad de sistema en un ajuste); Actual lo recibido, entregado,
// transferido o contado. Actual solo es definitivo cuando el documento está en done.
type DocumentLine struct {
	ID         string
	DocumentID string
	ProductID  string
	Requested  decimal.Decimal
	Actual     decimal.Decimal
}

// Difference es counted - system para ajustes. Se recalcula siempre; nunca se persiste.
func (l DocumentLine) Difference() decimal.Decimal {
	return l.Actual.Sub(l.Requested)
}
