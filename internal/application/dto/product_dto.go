package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. Stock inicial opcional: si viene,
// location es obligatorio y se registra como una recepción validada.
type CreateProductRequest struct {
	Name            string           `json:"name" validate:"required,min=1,max=200"`
	SKU             string           `json:"sku" validate:"required,min=1,max=100"`
	Description     string           `json:"description" validate:"omitempty,max=1000"`
	Category        string           `json:"category" validate:"required,max=100"`
	UnitOfMeasure   string           `json:"unitOfMeasure" validate:"omitempty,oneof=pcs kg litre meter box carton dozen"`
	Cost            decimal.Decimal  `json:"cost"`
	Price           decimal.Decimal  `json:"price"`
	ReorderPoint    *decimal.Decimal `json:"reorderPoint"`
	ReorderQuantity *decimal.Decimal `json:"reorderQuantity"`
	LeadTimeDays    *int             `json:"leadTimeDays" validate:"omitempty,min=0"`
	Barcode         string           `json:"barcode" validate:"omitempty,max=100"`
	InitialStock    *decimal.Decimal `json:"initialStock"`
	Location        string           `json:"location"`
}

// UpdateProductRequest entrada para actualizar un producto (sin stock: el stock solo cambia con documentos).
type UpdateProductRequest struct {
	Name            *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description     *string          `json:"description" validate:"omitempty,max=1000"`
	Category        *string          `json:"category" validate:"omitempty,max=100"`
	UnitOfMeasure   *string          `json:"unitOfMeasure" validate:"omitempty,oneof=pcs kg litre meter box carton dozen"`
	Cost            *decimal.Decimal `json:"cost"`
	Price           *decimal.Decimal `json:"price"`
	ReorderPoint    *decimal.Decimal `json:"reorderPoint"`
	ReorderQuantity *decimal.Decimal `json:"reorderQuantity"`
	LeadTimeDays    *int             `json:"leadTimeDays" validate:"omitempty,min=0"`
	Barcode         *string          `json:"barcode" validate:"omitempty,max=100"`
}

// ProductResponse salida de un producto con stock derivado.
type ProductResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	SKU             string          `json:"sku"`
	Description     string          `json:"description"`
	Category        string          `json:"category"`
	UnitOfMeasure   string          `json:"unitOfMeasure"`
	Cost            decimal.Decimal `json:"cost"`
	Price           decimal.Decimal `json:"price"`
	Stock           decimal.Decimal `json:"stock"`
	ReorderPoint    decimal.Decimal `json:"reorderPoint"`
	ReorderQuantity decimal.Decimal `json:"reorderQuantity"`
	LeadTimeDays    int             `json:"leadTimeDays"`
	Barcode         string          `json:"barcode,omitempty"`
	IsActive        bool            `json:"isActive"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// StockLevelResponse stock de un producto en una ubicación.
type StockLevelResponse struct {
	Location      string          `json:"location"`
	LocationCode  string          `json:"locationCode"`
	LocationName  string          `json:"locationName"`
	Warehouse     string          `json:"warehouse"`
	WarehouseName string          `json:"warehouseName"`
	Quantity      decimal.Decimal `json:"quantity"`
	Reserved      decimal.Decimal `json:"reserved"`
	Available     decimal.Decimal `json:"available"`
}

// ProductDetailResponse producto con su desglose por ubicación.
type ProductDetailResponse struct {
	ProductResponse
	StockLevels []StockLevelResponse `json:"stockLevels"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Page     PageResponse      `json:"pagination"`
}

// WarehouseResponse bodega.
type WarehouseResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Code     string `json:"code"`
	Address  string `json:"address,omitempty"`
	IsActive bool   `json:"isActive"`
}

// LocationResponse ubicación dentro de una bodega.
type LocationResponse struct {
	ID        string           `json:"id"`
	Warehouse string           `json:"warehouse"`
	Parent    *string          `json:"parent,omitempty"`
	Name      string           `json:"name"`
	Code      string           `json:"code"`
	Type      string           `json:"type"`
	Capacity  *decimal.Decimal `json:"capacity,omitempty"`
	IsActive  bool             `json:"isActive"`
}

// CreateWarehouseRequest alta de bodega.
type CreateWarehouseRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Code    string `json:"code" validate:"required,max=20"`
	Address string `json:"address" validate:"omitempty,max=300"`
}

// CreateLocationRequest alta de ubicación.
type CreateLocationRequest struct {
	Warehouse string           `json:"warehouse" validate:"required,uuid"`
	Parent    *string          `json:"parent" validate:"omitempty,uuid"`
	Name      string           `json:"name" validate:"required,max=200"`
	Code      string           `json:"code" validate:"required,max=30"`
	Type      string           `json:"type" validate:"required,oneof=warehouse zone rack shelf bin"`
	Capacity  *decimal.Decimal `json:"capacity"`
}
