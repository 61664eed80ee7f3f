package http

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/application/inventory"
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
)

// DocumentService motor de documentos (implementado por inventory.DocumentUseCase).
type DocumentService interface {
	Create(ctx context.Context, in inventory.CreateDocumentInput, actor string) (*entity.Document, error)
	Get(ctx context.Context, kind entity.DocumentKind, id string) (*entity.Document, error)
	List(ctx context.Context, kind entity.DocumentKind, status string, page, limit int) ([]*entity.Document, int, int, int, error)
	Validate(ctx context.Context, kind entity.DocumentKind, id, actor string, overrides []inventory.LineOverride) (*entity.Document, error)
	ListMovesPage(ctx context.Context, q inventory.MoveQuery) ([]*entity.StockMoveView, int, int, int, error)
}

// ExportService comprobantes PDF y exportación XML (implementado por inventory.ExportUseCase).
type ExportService interface {
	DocumentPDF(ctx context.Context, kind entity.DocumentKind, id string) ([]byte, string, error)
	MovesXML(ctx context.Context, q inventory.MoveQuery) ([]byte, error)
}

// OperationsHandler recepciones, entregas, transferencias, ajustes y registro de movimientos.
type OperationsHandler struct {
	docs    DocumentService
	exports ExportService
}

// NewOperationsHandler construye el handler. exports puede ser nil: las rutas de exportación responden 404.
func NewOperationsHandler(docs DocumentService, exports ExportService) *OperationsHandler {
	return &OperationsHandler{docs: docs, exports: exports}
}

func pathKind(c *fiber.Ctx) (entity.DocumentKind, error) {
	kind, ok := kindByPath[c.Params("kind")]
	if !ok {
		return "", fmt.Errorf("operación %q: %w", c.Params("kind"), domain.ErrNotFound)
	}
	return kind, nil
}

// pathID exige un UUID en :id. Cualquier otro valor no puede existir: 404 sin tocar la base.
func pathID(c *fiber.Ctx) (string, error) {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", fmt.Errorf("id %q: %w", id, domain.ErrNotFound)
	}
	return id, nil
}

func (h *OperationsHandler) create(c *fiber.Ctx, in inventory.CreateDocumentInput) error {
	doc, err := h.docs.Create(c.UserContext(), in, GetUserID(c))
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusCreated, fiber.Map{
		"message":                kindLabels[doc.Kind] + " created successfully",
		payloadKeys[doc.Kind][0]: toDocumentResponse(doc),
	})
}

// CreateReceipt godoc
// @Summary      Crear recepción de proveedor (draft)
// @Tags         operations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReceiptRequest  true  "Proveedor, destino y líneas"
// @Success      201   {object}  dto.DocumentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/operations/receipts [post]
func (h *OperationsHandler) CreateReceipt(c *fiber.Ctx) error {
	var req dto.CreateReceiptRequest
	if err := bindAndValidate(c, &req); err != nil {
		return handleError(c, err)
	}
	in := inventory.CreateDocumentInput{
		Kind:          entity.KindReceipt,
		Reference:     req.Reference,
		Counterparty:  counterparty(req.Supplier),
		WarehouseID:   req.Warehouse,
		Destination:   req.Destination,
		ScheduledDate: req.ScheduledDate,
		Notes:         req.Notes,
	}
	for _, l := range req.Products {
		in.Lines = append(in.Lines, inventory.LineInput{ProductID: l.Product, Requested: l.OrderedQuantity, Actual: l.ReceivedQuantity})
	}
	return h.create(c, in)
}

// CreateDelivery godoc
// @Summary      Crear entrega a cliente (draft)
// @Tags         operations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDeliveryRequest  true  "Cliente, origen y líneas"
// @Success      201   {object}  dto.DocumentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/operations/deliveries [post]
func (h *OperationsHandler) CreateDelivery(c *fiber.Ctx) error {
	var req dto.CreateDeliveryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return handleError(c, err)
	}
	in := inventory.CreateDocumentInput{
		Kind:          entity.KindDelivery,
		Reference:     req.Reference,
		Counterparty:  counterparty(req.Customer),
		WarehouseID:   req.Warehouse,
		Source:        req.Source,
		ScheduledDate: req.ScheduledDate,
		Notes:         req.Notes,
	}
	for _, l := range req.Products {
		in.Lines = append(in.Lines, inventory.LineInput{ProductID: l.Product, Requested: l.OrderedQuantity, Actual: l.DeliveredQuantity})
	}
	return h.create(c, in)
}

// CreateTransfer godoc
// @Summary      Crear transferencia interna (draft)
// @Tags         operations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransferRequest  true  "Origen, destino y líneas"
// @Success      201   {object}  dto.DocumentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/operations/transfers [post]
func (h *OperationsHandler) CreateTransfer(c *fiber.Ctx) error {
	var req dto.CreateTransferRequest
	if err := bindAndValidate(c, &req); err != nil {
		return handleError(c, err)
	}
	in := inventory.CreateDocumentInput{
		Kind:          entity.KindTransfer,
		Reference:     req.Reference,
		Source:        req.SourceLocation,
		Destination:   req.DestinationLocation,
		ScheduledDate: req.ScheduledDate,
		Notes:         req.Notes,
	}
	for _, l := range req.Products {
		in.Lines = append(in.Lines, inventory.LineInput{ProductID: l.Product, Requested: l.RequestedQuantity, Actual: l.TransferredQuantity})
	}
	return h.create(c, in)
}

// CreateAdjustment godoc
// @Summary      Crear ajuste por conteo físico (draft)
// @Description  La cantidad de sistema se toma del stock actual de la ubicación; systemQuantity del cuerpo se ignora.
// @Tags         operations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAdjustmentRequest  true  "Ubicación, motivo y cantidades contadas"
// @Success      201   {object}  dto.DocumentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/operations/adjustments [post]
func (h *OperationsHandler) CreateAdjustment(c *fiber.Ctx) error {
	var req dto.CreateAdjustmentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return handleError(c, err)
	}
	in := inventory.CreateDocumentInput{
		Kind:      entity.KindAdjustment,
		Reference: req.Reference,
		Location:  req.Location,
		Reason:    req.Reason,
		Notes:     req.Notes,
	}
	for _, l := range req.Products {
		in.Lines = append(in.Lines, inventory.LineInput{ProductID: l.Product, Actual: l.CountedQuantity})
	}
	return h.create(c, in)
}

// List godoc
// @Summary      Listar documentos de un tipo
// @Tags         operations
// @Security     Bearer
// @Produce      json
// @Param        kind    path   string  true   "receipts, deliveries, transfers o adjustments"
// @Param        status  query  string  false  "draft, waiting, ready, done, cancelled"
// @Param        page    query  int     false  "Página"  default(1)
// @Param        limit   query  int     false  "Límite"  default(10)
// @Success      200     {array}   dto.DocumentResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/operations/{kind} [get]
func (h *OperationsHandler) List(c *fiber.Ctx) error {
	kind, err := pathKind(c)
	if err != nil {
		return handleError(c, err)
	}
	docs, total, pg, limit, err := h.docs.List(c.UserContext(), kind, c.Query("status"), c.QueryInt("page", 1), c.QueryInt("limit", 10))
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusOK, page(fiber.Map{
		payloadKeys[kind][1]: toDocumentResponses(docs),
	}, dto.NewPage(total, pg, limit)))
}

// Get godoc
// @Summary      Obtener documento
// @Tags         operations
// @Security     Bearer
// @Produce      json
// @Param        kind  path  string  true  "receipts, deliveries, transfers o adjustments"
// @Param        id    path  string  true  "ID del documento"
// @Success      200   {object}  dto.DocumentResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/operations/{kind}/{id} [get]
func (h *OperationsHandler) Get(c *fiber.Ctx) error {
	kind, err := pathKind(c)
	if err != nil {
		return handleError(c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return handleError(c, err)
	}
	doc, err := h.docs.Get(c.UserContext(), kind, id)
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusOK, fiber.Map{payloadKeys[kind][0]: toDocumentResponse(doc)})
}

// Validate godoc
// @Summary      Validar documento (draft -> done)
// @Description  Aplica el efecto de stock de todas las líneas en una transacción y registra los movimientos.
// @Description  El cuerpo es opcional y permite corregir cantidades reales antes de validar.
// @Tags         operations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        kind  path  string  true  "receipts, deliveries, transfers o adjustments"
// @Param        id    path  string  true  "ID del documento"
// @Param        body  body  dto.ValidateDocumentRequest  false  "Cantidades reales"
// @Success      200   {object}  dto.DocumentResponse
// @Failure      400   {object}  dto.InsufficientStockResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/operations/{kind}/{id}/validate [put]
func (h *OperationsHandler) Validate(c *fiber.Ctx) error {
	kind, err := pathKind(c)
	if err != nil {
		return handleError(c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return handleError(c, err)
	}
	var req dto.ValidateDocumentRequest
	if len(c.Body()) > 0 {
		if err := bindAndValidate(c, &req); err != nil {
			return handleError(c, err)
		}
	}
	overrides := make([]inventory.LineOverride, 0, len(req.Products))
	for i, l := range req.Products {
		q := l.Value()
		if q == nil {
			return handleError(c, domain.Invalid(fmt.Sprintf("products[%d]", i), "falta la cantidad"))
		}
		if l.LineID == "" && l.Product == "" {
			return handleError(c, domain.Invalid(fmt.Sprintf("products[%d]", i), "indica lineId o product"))
		}
		overrides = append(overrides, inventory.LineOverride{LineID: l.LineID, ProductID: l.Product, Actual: *q})
	}

	doc, err := h.docs.Validate(c.UserContext(), kind, id, GetUserID(c), overrides)
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusOK, fiber.Map{
		"message":            kindLabels[kind] + " validated successfully",
		payloadKeys[kind][0]: toDocumentResponse(doc),
	})
}

// PDF godoc
// @Summary      Comprobante PDF del documento
// @Tags         operations
// @Security     Bearer
// @Produce      application/pdf
// @Param        kind  path  string  true  "receipts, deliveries, transfers o adjustments"
// @Param        id    path  string  true  "ID del documento"
// @Success      200   {file}    binary
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/operations/{kind}/{id}/pdf [get]
func (h *OperationsHandler) PDF(c *fiber.Ctx) error {
	kind, err := pathKind(c)
	if err != nil {
		return handleError(c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return handleError(c, err)
	}
	if h.exports == nil {
		return handleError(c, domain.ErrNotFound)
	}
	pdf, filename, err := h.exports.DocumentPDF(c.UserContext(), kind, id)
	if err != nil {
		return handleError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="%s"`, filename))
	return c.Send(pdf)
}

func moveQuery(c *fiber.Ctx) (inventory.MoveQuery, error) {
	product := c.Query("product")
	if product == "" {
		product = c.Query("productId")
	}
	if err := validate.Var(product, "omitempty,uuid"); err != nil {
		return inventory.MoveQuery{}, domain.Invalid("product", "debe ser un UUID")
	}
	return inventory.MoveQuery{
		ProductID:    product,
		DocumentType: c.Query("documentType"),
		Status:       c.Query("status"),
		StartDate:    c.Query("startDate"),
		EndDate:      c.Query("endDate"),
		Page:         c.QueryInt("page", 1),
		Limit:        c.QueryInt("limit", 20),
	}, nil
}

// Moves godoc
// @Summary      Registro de movimientos de stock
// @Tags         operations
// @Security     Bearer
// @Produce      json
// @Param        product       query  string  false  "ID de producto"
// @Param        documentType  query  string  false  "receipt, delivery, transfer, adjustment"
// @Param        status        query  string  false  "Estado"
// @Param        startDate     query  string  false  "Desde (RFC3339 o YYYY-MM-DD)"
// @Param        endDate       query  string  false  "Hasta (incluye el día completo)"
// @Param        page          query  int     false  "Página"  default(1)
// @Param        limit         query  int     false  "Límite"  default(20)
// @Success      200  {array}   dto.StockMoveResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/operations/moves [get]
func (h *OperationsHandler) Moves(c *fiber.Ctx) error {
	q, err := moveQuery(c)
	if err != nil {
		return handleError(c, err)
	}
	moves, total, pg, limit, err := h.docs.ListMovesPage(c.UserContext(), q)
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusOK, page(fiber.Map{"moves": toMoveResponses(moves)}, dto.NewPage(total, pg, limit)))
}

// ExportMovesXML godoc
// @Summary      Exportar el registro de movimientos en XML
// @Tags         operations
// @Security     Bearer
// @Produce      application/xml
// @Success      200  {string}  string
// @Router       /api/operations/moves/export.xml [get]
func (h *OperationsHandler) ExportMovesXML(c *fiber.Ctx) error {
	if h.exports == nil {
		return handleError(c, domain.ErrNotFound)
	}
	q, err := moveQuery(c)
	if err != nil {
		return handleError(c, err)
	}
	out, err := h.exports.MovesXML(c.UserContext(), q)
	if err != nil {
		return handleError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="stock-moves.xml"`)
	return c.Send(out)
}
