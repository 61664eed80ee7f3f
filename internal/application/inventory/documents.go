package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	domaininv "github.com/jhoicas/stockmaster-api/internal/domain/inventory"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

// maxReferenceAttempts reintentos cuando una referencia generada choca con una manual.
const maxReferenceAttempts = 5

// LineInput línea de un documento nuevo. Actual nil toma el valor de Requested.
// En ajustes solo cuenta Actual (cantidad contada); la cantidad de sistema la toma el servidor.
type LineInput struct {
	ProductID string
	Requested decimal.Decimal
	Actual    *decimal.Decimal
}

// CreateDocumentInput entrada común para crear recepciones, entregas, transferencias y ajustes.
// Las ubicaciones se aceptan como id, código o nombre.
type CreateDocumentInput struct {
	Kind          entity.DocumentKind
	Reference     string
	Counterparty  *entity.Counterparty
	WarehouseID   string
	Source        string
	Destination   string
	Location      string
	Reason        string
	ScheduledDate *time.Time
	Notes         string
	Lines         []LineInput
}

// DocumentUseCase es el motor de documentos: alta en draft, validación draft -> done y consultas.
type DocumentUseCase struct {
	txRunner     TxRunner
	documentRepo repository.DocumentRepository
	productRepo  repository.ProductRepository
	locationRepo repository.LocationRepository
	stockRepo    repository.StockLevelRepository
	moveRepo     repository.StockMoveRepository
	observers    []StockObserver
	now          func() time.Time
}

// NewDocumentUseCase construye el caso de uso.
func NewDocumentUseCase(
	txRunner TxRunner,
	documentRepo repository.DocumentRepository,
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
	stockRepo repository.StockLevelRepository,
	moveRepo repository.StockMoveRepository,
	observers ...StockObserver,
) *DocumentUseCase {
	return &DocumentUseCase{
		txRunner:     txRunner,
		documentRepo: documentRepo,
		productRepo:  productRepo,
		locationRepo: locationRepo,
		stockRepo:    stockRepo,
		moveRepo:     moveRepo,
		observers:    observers,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Create valida la entrada, resuelve ubicaciones y productos, y guarda el documento en draft
// junto con su referencia en una sola transacción.
func (uc *DocumentUseCase) Create(ctx context.Context, in CreateDocumentInput, actor string) (*entity.Document, error) {
	doc, err := uc.newDocument(ctx, in, actor)
	if err != nil {
		return nil, err
	}
	if err := uc.buildLines(ctx, uc.productRepo, uc.stockRepo, doc, in.Lines); err != nil {
		return nil, err
	}

	manualRef := domaininv.NormalizeReference(in.Reference)
	if err := uc.txRunner.Run(ctx, func(tx TxRepos) error {
		return uc.insert(ctx, tx, doc, manualRef)
	}); err != nil {
		return nil, err
	}

	log.Info().
		Str("kind", string(doc.Kind)).
		Str("reference", doc.Reference).
		Int("lines", len(doc.Lines)).
		Str("actor", actor).
		Msg("documento creado")
	return doc, nil
}

// CreateAndValidate crea el documento y lo valida en la misma transacción.
// before corre primero dentro de esa transacción (p. ej. el alta del producto que la recepción
// referencia); si algo falla no queda nada persistido. Los productos de las líneas se leen
// con los repos de la transacción, así ven lo que before insertó.
func (uc *DocumentUseCase) CreateAndValidate(ctx context.Context, in CreateDocumentInput, actor string, before func(tx TxRepos) error) (*entity.Document, error) {
	doc, err := uc.newDocument(ctx, in, actor)
	if err != nil {
		return nil, err
	}

	var (
		validated *entity.Document
		moves     int
	)
	manualRef := domaininv.NormalizeReference(in.Reference)
	err = uc.txRunner.Run(ctx, func(tx TxRepos) error {
		if before != nil {
			if err := before(tx); err != nil {
				return err
			}
		}
		if err := uc.buildLines(ctx, tx.Products, tx.Stock, doc, in.Lines); err != nil {
			return err
		}
		if err := uc.insert(ctx, tx, doc, manualRef); err != nil {
			return err
		}
		validated, moves, err = uc.validateTx(ctx, tx, doc.Kind, doc.ID, actor, nil)
		return err
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("kind", string(validated.Kind)).
		Str("reference", validated.Reference).
		Int("moves", moves).
		Str("actor", actor).
		Msg("documento creado y validado")
	uc.notify(ctx, validated)
	return validated, nil
}

// newDocument arma la cabecera en draft con sus ubicaciones resueltas. No toca la base salvo lecturas.
func (uc *DocumentUseCase) newDocument(ctx context.Context, in CreateDocumentInput, actor string) (*entity.Document, error) {
	if err := checkCreateInput(in); err != nil {
		return nil, err
	}

	now := uc.now()
	doc := &entity.Document{
		ID:            uuid.New().String(),
		Kind:          in.Kind,
		Status:        entity.StatusDraft,
		Counterparty:  in.Counterparty,
		ScheduledDate: now,
		Notes:         strings.TrimSpace(in.Notes),
		CreatedBy:     actor,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if in.ScheduledDate != nil {
		doc.ScheduledDate = in.ScheduledDate.UTC()
	}
	if in.WarehouseID != "" {
		wh := in.WarehouseID
		doc.WarehouseID = &wh
	}
	if in.Kind == entity.KindAdjustment {
		doc.Reason = in.Reason
		if doc.Reason == "" {
			doc.Reason = entity.ReasonPhysicalInventory
		}
	}

	if err := uc.resolveLocations(ctx, doc, in); err != nil {
		return nil, err
	}
	return doc, nil
}

// insert guarda el documento con una referencia manual o la siguiente del contador del tipo.
func (uc *DocumentUseCase) insert(ctx context.Context, tx TxRepos, doc *entity.Document, manualRef string) error {
	if manualRef != "" {
		doc.Reference = manualRef
		return tx.Documents.Create(ctx, doc)
	}
	for attempt := 0; attempt < maxReferenceAttempts; attempt++ {
		seq, err := tx.Sequences.Next(ctx, doc.Kind)
		if err != nil {
			return fmt.Errorf("siguiente referencia: %w", err)
		}
		doc.Reference = domaininv.FormatReference(doc.Kind, seq)
		err = tx.Documents.Create(ctx, doc)
		if !errors.Is(err, domain.ErrDuplicateReference) {
			return err
		}
		log.Warn().Str("reference", doc.Reference).Msg("referencia generada ya existe, reintentando")
	}
	return domain.ErrDuplicateReference
}

func checkCreateInput(in CreateDocumentInput) error {
	if !in.Kind.Valid() {
		return domain.Invalid("kind", "tipo de documento desconocido %q", in.Kind)
	}
	if in.Kind.NeedsCounterparty() {
		field := "supplier.name"
		if in.Kind == entity.KindDelivery {
			field = "customer.name"
		}
		if in.Counterparty == nil || strings.TrimSpace(in.Counterparty.Name) == "" {
			return domain.Invalid(field, "es obligatorio")
		}
	}
	if in.Kind.NeedsSource() && strings.TrimSpace(in.Source) == "" {
		return domain.Invalid("source", "la ubicación de origen es obligatoria")
	}
	if in.Kind.NeedsDestination() && strings.TrimSpace(in.Destination) == "" {
		return domain.Invalid("destination", "la ubicación de destino es obligatoria")
	}
	if in.Kind == entity.KindAdjustment {
		if strings.TrimSpace(in.Location) == "" {
			return domain.Invalid("location", "la ubicación es obligatoria")
		}
		if in.Reason != "" && !entity.ValidReason(in.Reason) {
			return domain.Invalid("reason", "motivo desconocido %q", in.Reason)
		}
	}
	if len(in.Lines) == 0 {
		return domain.Invalid("products", "el documento debe tener al menos una línea")
	}
	for i, l := range in.Lines {
		if strings.TrimSpace(l.ProductID) == "" {
			return domain.Invalid(fmt.Sprintf("products[%d].product", i), "es obligatorio")
		}
		if l.Requested.IsNegative() {
			return domain.Invalid(fmt.Sprintf("products[%d]", i), "la cantidad no puede ser negativa")
		}
		if l.Actual != nil && l.Actual.IsNegative() {
			return domain.Invalid(fmt.Sprintf("products[%d]", i), "la cantidad no puede ser negativa")
		}
		if in.Kind == entity.KindAdjustment && l.Actual == nil {
			return domain.Invalid(fmt.Sprintf("products[%d].countedQuantity", i), "es obligatorio")
		}
	}
	return nil
}

// resolveLocations convierte referencias de ubicación en ids y guarda su etiqueta legible.
// Una ubicación que no existe es un error de validación: nada se persiste.
func (uc *DocumentUseCase) resolveLocations(ctx context.Context, doc *entity.Document, in CreateDocumentInput) error {
	resolve := func(field, ref string) (*entity.Location, error) {
		loc, err := uc.locationRepo.Resolve(ctx, strings.TrimSpace(ref))
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.Invalid(field, "ubicación %q no encontrada", ref)
		}
		if err != nil {
			return nil, fmt.Errorf("resolver ubicación %q: %w", ref, err)
		}
		return loc, nil
	}

	if doc.Kind.NeedsSource() {
		loc, err := resolve("source", in.Source)
		if err != nil {
			return err
		}
		doc.SourceLocationID, doc.SourceLabel = &loc.ID, loc.Label()
	}
	if doc.Kind.NeedsDestination() {
		loc, err := resolve("destination", in.Destination)
		if err != nil {
			return err
		}
		doc.DestinationLocationID, doc.DestinationLabel = &loc.ID, loc.Label()
	}
	if doc.Kind == entity.KindTransfer && *doc.SourceLocationID == *doc.DestinationLocationID {
		return domain.Invalid("destination", "origen y destino deben ser distintos")
	}
	if doc.Kind == entity.KindAdjustment {
		loc, err := resolve("location", in.Location)
		if err != nil {
			return err
		}
		doc.LocationID, doc.LocationLabel = &loc.ID, loc.Label()
	}
	return nil
}

// buildLines verifica los productos y arma las líneas. En ajustes la cantidad de sistema
// se toma del libro de stock en este momento; lo que envíe el cliente se ignora.
func (uc *DocumentUseCase) buildLines(
	ctx context.Context,
	products repository.ProductRepository,
	stock repository.StockLevelRepository,
	doc *entity.Document,
	inputs []LineInput,
) error {
	doc.Lines = make([]entity.DocumentLine, 0, len(inputs))
	for _, in := range inputs {
		product, err := products.GetByID(ctx, in.ProductID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("producto %s: %w", in.ProductID, domain.ErrNotFound)
			}
			return err
		}
		if !product.IsActive {
			return domain.Invalid("products", "el producto %s está inactivo", product.SKU)
		}

		line := entity.DocumentLine{
			ID:         uuid.New().String(),
			DocumentID: doc.ID,
			ProductID:  product.ID,
			Requested:  in.Requested,
			Actual:     in.Requested,
		}
		if in.Actual != nil {
			line.Actual = *in.Actual
		}
		if doc.Kind == entity.KindAdjustment {
			level, err := stock.Get(ctx, product.ID, *doc.LocationID)
			if err != nil {
				return fmt.Errorf("cantidad de sistema: %w", err)
			}
			line.Requested = level.Quantity
		}
		doc.Lines = append(doc.Lines, line)
	}
	return nil
}

// Get devuelve un documento con sus líneas.
func (uc *DocumentUseCase) Get(ctx context.Context, kind entity.DocumentKind, id string) (*entity.Document, error) {
	if !kind.Valid() {
		return nil, domain.ErrNotFound
	}
	return uc.documentRepo.GetByID(ctx, kind, id)
}

// List pagina los documentos de un tipo, opcionalmente filtrados por estado.
// Devuelve además la página y el límite efectivos tras normalizarlos.
func (uc *DocumentUseCase) List(ctx context.Context, kind entity.DocumentKind, status string, page, limit int) ([]*entity.Document, int, int, int, error) {
	page, limit = normalizePage(page, limit, 10)
	st := entity.DocumentStatus(status)
	if status != "" && !st.Valid() {
		return nil, 0, page, limit, domain.Invalid("status", "estado desconocido %q", status)
	}
	docs, total, err := uc.documentRepo.List(ctx, kind, st, limit, (page-1)*limit)
	return docs, total, page, limit, err
}

func normalizePage(page, limit, def int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = def
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}
