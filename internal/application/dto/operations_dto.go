package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CounterpartyRequest proveedor (recepciones) o cliente (entregas).
type CounterpartyRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Contact string `json:"contact" validate:"omitempty,max=100"`
	Email   string `json:"email" validate:"omitempty,email"`
	Address string `json:"address" validate:"omitempty,max=300"`
}

// ReceiptLineRequest línea de recepción. receivedQuantity omitido toma orderedQuantity.
type ReceiptLineRequest struct {
	Product          string           `json:"product" validate:"required,uuid"`
	OrderedQuantity  decimal.Decimal  `json:"orderedQuantity"`
	ReceivedQuantity *decimal.Decimal `json:"receivedQuantity"`
}

// CreateReceiptRequest alta de recepción de proveedor.
type CreateReceiptRequest struct {
	Reference     string               `json:"reference" validate:"omitempty,max=50"`
	Supplier      *CounterpartyRequest `json:"supplier" validate:"required"`
	Warehouse     string               `json:"warehouse" validate:"omitempty,uuid"`
	Destination   string               `json:"destination" validate:"required"`
	ScheduledDate *time.Time           `json:"scheduledDate"`
	Notes         string               `json:"notes" validate:"omitempty,max=1000"`
	Products      []ReceiptLineRequest `json:"products" validate:"required,min=1,dive"`
}

// DeliveryLineRequest línea de entrega.
type DeliveryLineRequest struct {
	Product           string           `json:"product" validate:"required,uuid"`
	OrderedQuantity   decimal.Decimal  `json:"orderedQuantity"`
	DeliveredQuantity *decimal.Decimal `json:"deliveredQuantity"`
}

// CreateDeliveryRequest alta de entrega a cliente.
type CreateDeliveryRequest struct {
	Reference     string                `json:"reference" validate:"omitempty,max=50"`
	Customer      *CounterpartyRequest  `json:"customer" validate:"required"`
	Warehouse     string                `json:"warehouse" validate:"omitempty,uuid"`
	Source        string                `json:"source" validate:"required"`
	ScheduledDate *time.Time            `json:"scheduledDate"`
	Notes         string                `json:"notes" validate:"omitempty,max=1000"`
	Products      []DeliveryLineRequest `json:"products" validate:"required,min=1,dive"`
}

// TransferLineRequest línea de transferencia.
type TransferLineRequest struct {
	Product             string           `json:"product" validate:"required,uuid"`
	RequestedQuantity   decimal.Decimal  `json:"requestedQuantity"`
	TransferredQuantity *decimal.Decimal `json:"transferredQuantity"`
}

// CreateTransferRequest alta de transferencia interna.
type CreateTransferRequest struct {
	Reference           string                `json:"reference" validate:"omitempty,max=50"`
	SourceLocation      string                `json:"sourceLocation" validate:"required"`
	DestinationLocation string                `json:"destinationLocation" validate:"required"`
	ScheduledDate       *time.Time            `json:"scheduledDate"`
	Notes               string                `json:"notes" validate:"omitempty,max=1000"`
	Products            []TransferLineRequest `json:"products" validate:"required,min=1,dive"`
}

// AdjustmentLineRequest línea de ajuste. systemQuantity se ignora: lo toma el servidor.
type AdjustmentLineRequest struct {
	Product         string           `json:"product" validate:"required,uuid"`
	CountedQuantity *decimal.Decimal `json:"countedQuantity" validate:"required"`
}

// CreateAdjustmentRequest alta de ajuste por conteo físico.
type CreateAdjustmentRequest struct {
	Reference string                  `json:"reference" validate:"omitempty,max=50"`
	Location  string                  `json:"location" validate:"required"`
	Reason    string                  `json:"reason" validate:"omitempty,oneof=physical_inventory damage theft expiry other"`
	Notes     string                  `json:"notes" validate:"omitempty,max=1000"`
	Products  []AdjustmentLineRequest `json:"products" validate:"required,min=1,dive"`
}

// ValidateLineRequest corrección de cantidades al validar. La línea se identifica por lineId o product.
// Se acepta el nombre de campo propio de cada tipo o quantity.
type ValidateLineRequest struct {
	LineID              string           `json:"lineId" validate:"omitempty,uuid"`
	Product             string           `json:"product" validate:"omitempty,uuid"`
	Quantity            *decimal.Decimal `json:"quantity"`
	ReceivedQuantity    *decimal.Decimal `json:"receivedQuantity"`
	DeliveredQuantity   *decimal.Decimal `json:"deliveredQuantity"`
	TransferredQuantity *decimal.Decimal `json:"transferredQuantity"`
	CountedQuantity     *decimal.Decimal `json:"countedQuantity"`
}

// Value devuelve la primera cantidad informada.
func (r ValidateLineRequest) Value() *decimal.Decimal {
	for _, q := range []*decimal.Decimal{r.Quantity, r.ReceivedQuantity, r.DeliveredQuantity, r.TransferredQuantity, r.CountedQuantity} {
		if q != nil {
			return q
		}
	}
	return nil
}

// ValidateDocumentRequest cuerpo opcional de PUT .../:id/validate.
type ValidateDocumentRequest struct {
	Products []ValidateLineRequest `json:"products" validate:"omitempty,dive"`
}

// CounterpartyResponse datos de proveedor o cliente.
type CounterpartyResponse struct {
	Name    string `json:"name"`
	Contact string `json:"contact,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

// DocumentLineResponse línea con los nombres de campo propios del tipo de documento.
type DocumentLineResponse struct {
	ID                  string           `json:"id"`
	Product             string           `json:"product"`
	OrderedQuantity     *decimal.Decimal `json:"orderedQuantity,omitempty"`
	ReceivedQuantity    *decimal.Decimal `json:"receivedQuantity,omitempty"`
	DeliveredQuantity   *decimal.Decimal `json:"deliveredQuantity,omitempty"`
	RequestedQuantity   *decimal.Decimal `json:"requestedQuantity,omitempty"`
	TransferredQuantity *decimal.Decimal `json:"transferredQuantity,omitempty"`
	SystemQuantity      *decimal.Decimal `json:"systemQuantity,omitempty"`
	CountedQuantity     *decimal.Decimal `json:"countedQuantity,omitempty"`
	Difference          *decimal.Decimal `json:"difference,omitempty"`
}

// DocumentResponse salida común de los cuatro tipos de documento.
type DocumentResponse struct {
	ID                  string                 `json:"id"`
	Kind                string                 `json:"kind"`
	Reference           string                 `json:"reference"`
	Status              string                 `json:"status"`
	Supplier            *CounterpartyResponse  `json:"supplier,omitempty"`
	Customer            *CounterpartyResponse  `json:"customer,omitempty"`
	Warehouse           *string                `json:"warehouse,omitempty"`
	Source              *string                `json:"source,omitempty"`
	SourceLocation      string                 `json:"sourceLocation,omitempty"`
	Destination         *string                `json:"destination,omitempty"`
	DestinationLocation string                 `json:"destinationLocation,omitempty"`
	Location            string                 `json:"location,omitempty"`
	LocationID          *string                `json:"locationId,omitempty"`
	Reason              string                 `json:"reason,omitempty"`
	Products            []DocumentLineResponse `json:"products"`
	ScheduledDate       time.Time              `json:"scheduledDate"`
	CompletedDate       *time.Time             `json:"completedDate,omitempty"`
	Notes               string                 `json:"notes,omitempty"`
	User                string                 `json:"user"`
	CreatedAt           time.Time              `json:"createdAt"`
	UpdatedAt           time.Time              `json:"updatedAt"`
}

// StockMoveResponse entrada del registro de movimientos.
type StockMoveResponse struct {
	ID                  string          `json:"id"`
	Product             string          `json:"product"`
	ProductName         string          `json:"productName"`
	ProductSKU          string          `json:"productSku"`
	SourceLocation      *string         `json:"sourceLocation"`
	SourceLabel         string          `json:"sourceLabel,omitempty"`
	DestinationLocation *string         `json:"destinationLocation"`
	DestinationLabel    string          `json:"destinationLabel,omitempty"`
	Quantity            decimal.Decimal `json:"quantity"`
	DocumentType        string          `json:"documentType"`
	DocumentID          string          `json:"documentId"`
	DocumentReference   string          `json:"documentReference"`
	Status              string          `json:"status"`
	Date                time.Time       `json:"date"`
	User                string          `json:"user"`
	UserName            string          `json:"userName,omitempty"`
	Notes               string          `json:"notes,omitempty"`
}
