package inventory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	domaininv "github.com/jhoicas/stockmaster-api/internal/domain/inventory"
)

// stockEffect aplica el efecto de una línea sobre el libro de stock y devuelve el movimiento
// a registrar, o nil si no hay nada que registrar. El driver completa los campos comunes del movimiento.
// Recepciones, entregas y transferencias con cantidad real cero no tocan stock pero sí dejan
// un movimiento de cantidad cero; solo el ajuste sin diferencia se omite del registro.
type stockEffect func(ctx context.Context, tx TxRepos, doc *entity.Document, line entity.DocumentLine) (*entity.StockMove, error)

var effects = map[entity.DocumentKind]stockEffect{
	entity.KindReceipt:    receiptEffect,
	entity.KindDelivery:   deliveryEffect,
	entity.KindTransfer:   transferEffect,
	entity.KindAdjustment: adjustmentEffect,
}

// receiptEffect: entrada externa a la ubicación de destino.
func receiptEffect(ctx context.Context, tx TxRepos, doc *entity.Document, line entity.DocumentLine) (*entity.StockMove, error) {
	dst, err := required(doc.DestinationLocationID, "destination")
	if err != nil {
		return nil, err
	}
	if !line.Actual.IsZero() {
		if _, err := tx.Stock.Increase(ctx, line.ProductID, dst, line.Actual); err != nil {
			return nil, err
		}
	}
	return &entity.StockMove{
		DestinationLocationID: doc.DestinationLocationID,
		Quantity:              line.Actual,
		Notes:                 doc.Notes,
	}, nil
}

// deliveryEffect: salida externa desde la ubicación de origen; nunca deja saldo negativo.
func deliveryEffect(ctx context.Context, tx TxRepos, doc *entity.Document, line entity.DocumentLine) (*entity.StockMove, error) {
	src, err := required(doc.SourceLocationID, "source")
	if err != nil {
		return nil, err
	}
	if !line.Actual.IsZero() {
		if _, err := tx.Stock.Decrease(ctx, line.ProductID, src, line.Actual); err != nil {
			return nil, err
		}
	}
	return &entity.StockMove{
		SourceLocationID: doc.SourceLocationID,
		Quantity:         line.Actual,
		Notes:            doc.Notes,
	}, nil
}

// transferEffect: mueve stock entre ubicaciones; el total del producto no cambia.
func transferEffect(ctx context.Context, tx TxRepos, doc *entity.Document, line entity.DocumentLine) (*entity.StockMove, error) {
	src, err := required(doc.SourceLocationID, "source")
	if err != nil {
		return nil, err
	}
	dst, err := required(doc.DestinationLocationID, "destination")
	if err != nil {
		return nil, err
	}
	if !line.Actual.IsZero() {
		if _, err := tx.Stock.Decrease(ctx, line.ProductID, src, line.Actual); err != nil {
			return nil, err
		}
		if _, err := tx.Stock.Increase(ctx, line.ProductID, dst, line.Actual); err != nil {
			return nil, err
		}
	}
	return &entity.StockMove{
		SourceLocationID:      doc.SourceLocationID,
		DestinationLocationID: doc.DestinationLocationID,
		Quantity:              line.Actual,
		Notes:                 domaininv.TransferNote(doc.SourceLabel, doc.DestinationLabel),
	}, nil
}

// adjustmentEffect: concilia contado contra sistema. La diferencia se recalcula aquí;
// diferencia cero no toca stock ni genera movimiento.
func adjustmentEffect(ctx context.Context, tx TxRepos, doc *entity.Document, line entity.DocumentLine) (*entity.StockMove, error) {
	diff := line.Difference()
	if diff.IsZero() {
		return nil, nil
	}
	loc, err := required(doc.LocationID, "location")
	if err != nil {
		return nil, err
	}

	move := &entity.StockMove{
		Quantity: diff.Abs(),
		Notes:    domaininv.AdjustmentNote(diff, doc.LocationLabel, doc.Reason),
	}
	if diff.GreaterThan(decimal.Zero) {
		if _, err := tx.Stock.Increase(ctx, line.ProductID, loc, diff); err != nil {
			return nil, err
		}
		move.DestinationLocationID = doc.LocationID
		return move, nil
	}
	if _, err := tx.Stock.Decrease(ctx, line.ProductID, loc, diff.Abs()); err != nil {
		return nil, err
	}
	move.SourceLocationID = doc.LocationID
	return move, nil
}

func required(id *string, field string) (string, error) {
	if id == nil || *id == "" {
		return "", domain.Invalid(field, "el documento no tiene ubicación asignada")
	}
	return *id, nil
}
