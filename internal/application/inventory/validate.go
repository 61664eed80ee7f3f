package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
)

// LineOverride reemplaza la cantidad real de una línea al validar.
// Se identifica la línea por LineID o, si está vacío, por ProductID.
// En ajustes Actual es la cantidad contada.
type LineOverride struct {
	LineID    string
	ProductID string
	Actual    decimal.Decimal
}

// Validate ejecuta la transición draft -> done de un documento dentro de una transacción:
//  1. bloquea la cabecera (SELECT ... FOR UPDATE) y rechaza documentos ya validados;
//  2. aplica overrides de cantidades;
//  3. por cada línea aplica el efecto de stock del tipo y registra un movimiento;
//  4. marca done con compare-and-set sobre el estado.
//
// Cualquier error revierte todo: no hay aplicación parcial de líneas.
func (uc *DocumentUseCase) Validate(ctx context.Context, kind entity.DocumentKind, id, actor string, overrides []LineOverride) (*entity.Document, error) {
	if _, ok := effects[kind]; !ok {
		return nil, domain.ErrNotFound
	}

	var (
		validated *entity.Document
		moves     int
	)
	err := uc.txRunner.Run(ctx, func(tx TxRepos) error {
		var err error
		validated, moves, err = uc.validateTx(ctx, tx, kind, id, actor, overrides)
		return err
	})
	if err != nil {
		if !errors.Is(err, domain.ErrAlreadyValidated) && !errors.Is(err, domain.ErrInsufficientStock) &&
			!errors.Is(err, domain.ErrNotFound) && !errors.Is(err, domain.ErrInvalidInput) {
			log.Error().Err(err).Str("kind", string(kind)).Str("document_id", id).Msg("validación de documento")
		}
		return nil, err
	}

	log.Info().
		Str("kind", string(kind)).
		Str("reference", validated.Reference).
		Int("moves", moves).
		Str("actor", actor).
		Msg("documento validado")
	uc.notify(ctx, validated)
	return validated, nil
}

// validateTx es el cuerpo de Validate sobre una transacción ya abierta. Devuelve el documento
// en done y la cantidad de movimientos registrados.
func (uc *DocumentUseCase) validateTx(ctx context.Context, tx TxRepos, kind entity.DocumentKind, id, actor string, overrides []LineOverride) (*entity.Document, int, error) {
	effect, ok := effects[kind]
	if !ok {
		return nil, 0, domain.ErrNotFound
	}
	doc, err := tx.Documents.GetForUpdate(ctx, kind, id)
	if err != nil {
		return nil, 0, err
	}
	if doc.Status == entity.StatusDone {
		return nil, 0, domain.ErrAlreadyValidated
	}
	if doc.Status.IsTerminal() {
		return nil, 0, domain.Invalid("status", "un documento %s no se puede validar", doc.Status)
	}

	if len(overrides) > 0 {
		if err := applyOverrides(doc, overrides); err != nil {
			return nil, 0, err
		}
		if err := tx.Documents.UpdateLineQuantities(ctx, doc.Lines); err != nil {
			return nil, 0, fmt.Errorf("actualizar líneas: %w", err)
		}
	}

	now := uc.now()
	moves := 0
	for _, line := range doc.Lines {
		move, err := effect(ctx, tx, doc, line)
		if err != nil {
			return nil, 0, err
		}
		if move == nil {
			continue
		}
		move.ID = uuid.New().String()
		move.ProductID = line.ProductID
		move.DocumentType = doc.Kind
		move.DocumentID = doc.ID
		move.DocumentReference = doc.Reference
		move.Status = entity.StatusDone
		move.Date = now
		move.UserID = actor
		move.CreatedAt = now
		if err := tx.Moves.Create(ctx, move); err != nil {
			return nil, 0, fmt.Errorf("registrar movimiento: %w", err)
		}
		moves++
	}

	if err := tx.Documents.MarkDone(ctx, doc.ID, now); err != nil {
		return nil, 0, err
	}
	doc.Status = entity.StatusDone
	doc.CompletedDate = &now
	doc.UpdatedAt = now
	return doc, moves, nil
}

// notify avisa a los observadores; solo se llama después del commit.
func (uc *DocumentUseCase) notify(ctx context.Context, doc *entity.Document) {
	for _, o := range uc.observers {
		o.StockChanged(ctx, doc)
	}
}

func applyOverrides(doc *entity.Document, overrides []LineOverride) error {
	for _, o := range overrides {
		if o.Actual.IsNegative() {
			return domain.Invalid("products", "la cantidad no puede ser negativa")
		}
		idx := -1
		for i, l := range doc.Lines {
			if (o.LineID != "" && l.ID == o.LineID) || (o.LineID == "" && l.ProductID == o.ProductID) {
				idx = i
				break
			}
		}
		if idx < 0 {
			ref := o.LineID
			if ref == "" {
				ref = o.ProductID
			}
			return domain.Invalid("products", "la línea %s no pertenece al documento", ref)
		}
		doc.Lines[idx].Actual = o.Actual
	}
	return nil
}
