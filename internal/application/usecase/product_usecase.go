package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/application/inventory"
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

// Valores por defecto de reposición para productos nuevos.
var (
	defaultReorderPoint    = decimal.NewFromInt(10)
	defaultReorderQuantity = decimal.NewFromInt(50)
)

const (
	defaultLeadTimeDays  = 7
	initialStockSupplier = "Stock inicial"
)

var upper = cases.Upper(language.Und)

// NormalizeCode deja SKUs y códigos de ubicación en mayúsculas y sin espacios en los extremos.
func NormalizeCode(s string) string {
	return upper.String(strings.TrimSpace(s))
}

// StockReceiver es la parte del motor de documentos que usa el catálogo para cargar stock inicial.
// before corre dentro de la transacción del documento.
type StockReceiver interface {
	CreateAndValidate(ctx context.Context, in inventory.CreateDocumentInput, actor string, before func(tx inventory.TxRepos) error) (*entity.Document, error)
}

// ProductUseCase catálogo de productos. El stock nunca se escribe aquí: solo cambia
// a través de documentos validados.
type ProductUseCase struct {
	repo         repository.ProductRepository
	stockRepo    repository.StockLevelRepository
	locationRepo repository.LocationRepository
	receiver     StockReceiver
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	stockRepo repository.StockLevelRepository,
	locationRepo repository.LocationRepository,
	receiver StockReceiver,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, stockRepo: stockRepo, locationRepo: locationRepo, receiver: receiver}
}

// Create da de alta un producto. Con initialStock > 0 además crea y valida una recepción
// hacia location, así el stock inicial queda en el registro de movimientos. Alta, recepción
// y validación van en una sola transacción: si falla cualquiera, el producto no existe.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest, actor string) (*dto.ProductDetailResponse, error) {
	sku := NormalizeCode(in.SKU)
	if sku == "" {
		return nil, domain.Invalid("sku", "es obligatorio")
	}
	if in.Cost.IsNegative() || in.Price.IsNegative() {
		return nil, domain.Invalid("price", "costo y precio no pueden ser negativos")
	}
	if existing, err := uc.repo.GetBySKU(ctx, sku); err == nil && existing != nil {
		return nil, domain.ErrDuplicate
	} else if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	var dest *entity.Location
	if in.InitialStock != nil && in.InitialStock.IsPositive() {
		if strings.TrimSpace(in.Location) == "" {
			return nil, domain.Invalid("location", "es obligatoria cuando se informa initialStock")
		}
		loc, err := uc.locationRepo.Resolve(ctx, strings.TrimSpace(in.Location))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.Invalid("location", "ubicación %q no encontrada", in.Location)
			}
			return nil, err
		}
		dest = loc
	} else if in.InitialStock != nil && in.InitialStock.IsNegative() {
		return nil, domain.Invalid("initialStock", "no puede ser negativo")
	}

	now := time.Now().UTC()
	p := &entity.Product{
		ID:              uuid.New().String(),
		Name:            strings.TrimSpace(in.Name),
		SKU:             sku,
		Description:     strings.TrimSpace(in.Description),
		Category:        strings.TrimSpace(in.Category),
		UnitOfMeasure:   in.UnitOfMeasure,
		Cost:            in.Cost,
		Price:           in.Price,
		ReorderPoint:    defaultReorderPoint,
		ReorderQuantity: defaultReorderQuantity,
		LeadTimeDays:    defaultLeadTimeDays,
		Barcode:         strings.TrimSpace(in.Barcode),
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if p.UnitOfMeasure == "" {
		p.UnitOfMeasure = "pcs"
	}
	if in.ReorderPoint != nil {
		p.ReorderPoint = *in.ReorderPoint
	}
	if in.ReorderQuantity != nil {
		p.ReorderQuantity = *in.ReorderQuantity
	}
	if in.LeadTimeDays != nil {
		p.LeadTimeDays = *in.LeadTimeDays
	}
	if p.ReorderPoint.IsNegative() || p.ReorderQuantity.IsNegative() {
		return nil, domain.Invalid("reorderPoint", "no puede ser negativo")
	}
	if dest == nil {
		if err := uc.repo.Create(ctx, p); err != nil {
			return nil, err
		}
		return uc.Get(ctx, p.ID)
	}

	receipt, err := uc.receiver.CreateAndValidate(ctx, inventory.CreateDocumentInput{
		Kind:         entity.KindReceipt,
		Counterparty: &entity.Counterparty{Name: initialStockSupplier},
		WarehouseID:  dest.WarehouseID,
		Destination:  dest.ID,
		Notes:        fmt.Sprintf("Stock inicial de %s", p.SKU),
		Lines:        []inventory.LineInput{{ProductID: p.ID, Requested: *in.InitialStock}},
	}, actor, func(tx inventory.TxRepos) error {
		return tx.Products.Create(ctx, p)
	})
	if err != nil {
		return nil, fmt.Errorf("stock inicial: %w", err)
	}
	log.Info().Str("sku", p.SKU).Str("reference", receipt.Reference).Msg("stock inicial registrado")

	return uc.Get(ctx, p.ID)
}

// Get devuelve el producto con su stock por ubicación.
func (uc *ProductUseCase) Get(ctx context.Context, id string) (*dto.ProductDetailResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	levels, err := uc.StockByLocation(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	return &dto.ProductDetailResponse{ProductResponse: toProductResponse(p), StockLevels: levels}, nil
}

// StockByLocation desglosa el stock del producto por ubicación.
func (uc *ProductUseCase) StockByLocation(ctx context.Context, productID string) ([]dto.StockLevelResponse, error) {
	views, err := uc.stockRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockLevelResponse, 0, len(views))
	for _, v := range views {
		out = append(out, dto.StockLevelResponse{
			Location:      v.LocationID,
			LocationCode:  v.LocationCode,
			LocationName:  v.LocationName,
			Warehouse:     v.WarehouseID,
			WarehouseName: v.WarehouseName,
			Quantity:      v.Quantity,
			Reserved:      v.Reserved,
			Available:     v.Available(),
		})
	}
	return out, nil
}

// Update modifica datos de catálogo. El stock no es editable.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		p.Description = strings.TrimSpace(*in.Description)
	}
	if in.Category != nil {
		p.Category = strings.TrimSpace(*in.Category)
	}
	if in.UnitOfMeasure != nil {
		p.UnitOfMeasure = *in.UnitOfMeasure
	}
	if in.Cost != nil {
		p.Cost = *in.Cost
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.ReorderPoint != nil {
		p.ReorderPoint = *in.ReorderPoint
	}
	if in.ReorderQuantity != nil {
		p.ReorderQuantity = *in.ReorderQuantity
	}
	if in.LeadTimeDays != nil {
		p.LeadTimeDays = *in.LeadTimeDays
	}
	if in.Barcode != nil {
		p.Barcode = strings.TrimSpace(*in.Barcode)
	}
	if p.Cost.IsNegative() || p.Price.IsNegative() || p.ReorderPoint.IsNegative() || p.ReorderQuantity.IsNegative() {
		return nil, domain.Invalid("product", "los valores numéricos no pueden ser negativos")
	}
	p.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	resp := toProductResponse(p)
	return &resp, nil
}

// Delete desactiva el producto; su historial de movimientos se conserva.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Deactivate(ctx, id)
}

// List pagina el catálogo activo.
func (uc *ProductUseCase) List(ctx context.Context, search, category string, page, limit int) (*dto.ProductListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	list, total, err := uc.repo.List(ctx, repository.ProductFilter{
		Search:   strings.TrimSpace(search),
		Category: strings.TrimSpace(category),
		Limit:    limit,
		Offset:   (page - 1) * limit,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, toProductResponse(p))
	}
	return &dto.ProductListResponse{Products: items, Page: dto.NewPage(total, page, limit)}, nil
}

// LowStock productos en o bajo el punto de pedido.
func (uc *ProductUseCase) LowStock(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListLowStock(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, toProductResponse(p))
	}
	return items, nil
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:              p.ID,
		Name:            p.Name,
		SKU:             p.SKU,
		Description:     p.Description,
		Category:        p.Category,
		UnitOfMeasure:   p.UnitOfMeasure,
		Cost:            p.Cost,
		Price:           p.Price,
		Stock:           p.Stock,
		ReorderPoint:    p.ReorderPoint,
		ReorderQuantity: p.ReorderQuantity,
		LeadTimeDays:    p.LeadTimeDays,
		Barcode:         p.Barcode,
		IsActive:        p.IsActive,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
