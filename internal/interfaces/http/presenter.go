package http

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
)

// kindByPath traduce el segmento de ruta al tipo de documento.
var kindByPath = map[string]entity.DocumentKind{
	"receipts":    entity.KindReceipt,
	"deliveries":  entity.KindDelivery,
	"transfers":   entity.KindTransfer,
	"adjustments": entity.KindAdjustment,
}

// payloadKeys nombre de la clave del payload en singular y plural por tipo.
var payloadKeys = map[entity.DocumentKind][2]string{
	entity.KindReceipt:    {"receipt", "receipts"},
	entity.KindDelivery:   {"delivery", "deliveries"},
	entity.KindTransfer:   {"transfer", "transfers"},
	entity.KindAdjustment: {"adjustment", "adjustments"},
}

var kindLabels = map[entity.DocumentKind]string{
	entity.KindReceipt:    "Receipt",
	entity.KindDelivery:   "Delivery",
	entity.KindTransfer:   "Transfer",
	entity.KindAdjustment: "Adjustment",
}

func decPtr(d decimal.Decimal) *decimal.Decimal { return &d }

func counterpartyResponse(cp *entity.Counterparty) *dto.CounterpartyResponse {
	if cp == nil {
		return nil
	}
	return &dto.CounterpartyResponse{Name: cp.Name, Contact: cp.Contact, Email: cp.Email, Address: cp.Address}
}

// toDocumentResponse usa los nombres de campo propios de cada tipo de documento.
func toDocumentResponse(doc *entity.Document) dto.DocumentResponse {
	out := dto.DocumentResponse{
		ID:            doc.ID,
		Kind:          string(doc.Kind),
		Reference:     doc.Reference,
		Status:        string(doc.Status),
		Warehouse:     doc.WarehouseID,
		Reason:        doc.Reason,
		Products:      make([]dto.DocumentLineResponse, 0, len(doc.Lines)),
		ScheduledDate: doc.ScheduledDate,
		CompletedDate: doc.CompletedDate,
		Notes:         doc.Notes,
		User:          doc.CreatedBy,
		CreatedAt:     doc.CreatedAt,
		UpdatedAt:     doc.UpdatedAt,
	}

	switch doc.Kind {
	case entity.KindReceipt:
		out.Supplier = counterpartyResponse(doc.Counterparty)
		out.Destination = doc.DestinationLocationID
		out.DestinationLocation = doc.DestinationLabel
	case entity.KindDelivery:
		out.Customer = counterpartyResponse(doc.Counterparty)
		out.Source = doc.SourceLocationID
		out.SourceLocation = doc.SourceLabel
	case entity.KindTransfer:
		out.Source = doc.SourceLocationID
		out.SourceLocation = doc.SourceLabel
		out.Destination = doc.DestinationLocationID
		out.DestinationLocation = doc.DestinationLabel
	case entity.KindAdjustment:
		out.LocationID = doc.LocationID
		out.Location = doc.LocationLabel
	}

	for _, l := range doc.Lines {
		lr := dto.DocumentLineResponse{ID: l.ID, Product: l.ProductID}
		switch doc.Kind {
		case entity.KindReceipt:
			lr.OrderedQuantity, lr.ReceivedQuantity = decPtr(l.Requested), decPtr(l.Actual)
		case entity.KindDelivery:
			lr.OrderedQuantity, lr.DeliveredQuantity = decPtr(l.Requested), decPtr(l.Actual)
		case entity.KindTransfer:
			lr.RequestedQuantity, lr.TransferredQuantity = decPtr(l.Requested), decPtr(l.Actual)
		case entity.KindAdjustment:
			lr.SystemQuantity, lr.CountedQuantity = decPtr(l.Requested), decPtr(l.Actual)
			lr.Difference = decPtr(l.Difference())
		}
		out.Products = append(out.Products, lr)
	}
	return out
}

func toDocumentResponses(docs []*entity.Document) []dto.DocumentResponse {
	out := make([]dto.DocumentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, toDocumentResponse(d))
	}
	return out
}

func toMoveResponses(moves []*entity.StockMoveView) []dto.StockMoveResponse {
	out := make([]dto.StockMoveResponse, 0, len(moves))
	for _, m := range moves {
		out = append(out, dto.StockMoveResponse{
			ID:                  m.ID,
			Product:             m.ProductID,
			ProductName:         m.ProductName,
			ProductSKU:          m.ProductSKU,
			SourceLocation:      m.SourceLocationID,
			SourceLabel:         m.SourceLabel,
			DestinationLocation: m.DestinationLocationID,
			DestinationLabel:    m.DestinationLabel,
			Quantity:            m.Quantity,
			DocumentType:        string(m.DocumentType),
			DocumentID:          m.DocumentID,
			DocumentReference:   m.DocumentReference,
			Status:              string(m.Status),
			Date:                m.Date,
			User:                m.UserID,
			UserName:            m.UserName,
			Notes:               m.Notes,
		})
	}
	return out
}

func counterparty(r *dto.CounterpartyRequest) *entity.Counterparty {
	if r == nil {
		return nil
	}
	return &entity.Counterparty{Name: r.Name, Contact: r.Contact, Email: r.Email, Address: r.Address}
}
