package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

// WarehouseUseCase datos de referencia: bodegas y ubicaciones.
type WarehouseUseCase struct {
	warehouses repository.WarehouseRepository
	locations  repository.LocationRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(warehouses repository.WarehouseRepository, locations repository.LocationRepository) *WarehouseUseCase {
	return &WarehouseUseCase{warehouses: warehouses, locations: locations}
}

// CreateWarehouse crea una bodega con código en mayúsculas.
func (uc *WarehouseUseCase) CreateWarehouse(ctx context.Context, in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	now := time.Now().UTC()
	w := &entity.Warehouse{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(in.Name),
		Code:      NormalizeCode(in.Code),
		Address:   strings.TrimSpace(in.Address),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if w.Name == "" || w.Code == "" {
		return nil, domain.Invalid("code", "nombre y código son obligatorios")
	}
	if err := uc.warehouses.Create(ctx, w); err != nil {
		return nil, err
	}
	resp := toWarehouseResponse(w)
	return &resp, nil
}

// ListWarehouses lista las bodegas.
func (uc *WarehouseUseCase) ListWarehouses(ctx context.Context) ([]dto.WarehouseResponse, error) {
	list, err := uc.warehouses.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		out = append(out, toWarehouseResponse(w))
	}
	return out, nil
}

// CreateLocation crea una ubicación dentro de una bodega existente.
func (uc *WarehouseUseCase) CreateLocation(ctx context.Context, in dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	if _, err := uc.warehouses.GetByID(ctx, in.Warehouse); err != nil {
		return nil, err
	}
	if in.Capacity != nil && in.Capacity.IsNegative() {
		return nil, domain.Invalid("capacity", "no puede ser negativa")
	}
	now := time.Now().UTC()
	l := &entity.Location{
		ID:          uuid.New().String(),
		WarehouseID: in.Warehouse,
		ParentID:    in.Parent,
		Name:        strings.TrimSpace(in.Name),
		Code:        NormalizeCode(in.Code),
		Type:        in.Type,
		Capacity:    in.Capacity,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.locations.Create(ctx, l); err != nil {
		return nil, err
	}
	resp := toLocationResponse(l)
	return &resp, nil
}

// ListLocations lista ubicaciones; warehouseID vacío devuelve todas.
func (uc *WarehouseUseCase) ListLocations(ctx context.Context, warehouseID string) ([]dto.LocationResponse, error) {
	list, err := uc.locations.List(ctx, warehouseID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LocationResponse, 0, len(list))
	for _, l := range list {
		out = append(out, toLocationResponse(l))
	}
	return out, nil
}

func toWarehouseResponse(w *entity.Warehouse) dto.WarehouseResponse {
	return dto.WarehouseResponse{ID: w.ID, Name: w.Name, Code: w.Code, Address: w.Address, IsActive: w.IsActive}
}

func toLocationResponse(l *entity.Location) dto.LocationResponse {
	return dto.LocationResponse{
		ID:        l.ID,
		Warehouse: l.WarehouseID,
		Parent:    l.ParentID,
		Name:      l.Name,
		Code:      l.Code,
		Type:      l.Type,
		Capacity:  l.Capacity,
		IsActive:  l.IsActive,
	}
}
