package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/stockmaster-api/internal/application/auth"
	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/application/usecase"
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/infrastructure/postgres"
)

var (
	seedWarehouseCode string
	seedWarehouseName string
	seedAdminName     string
	seedAdminEmail    string
	seedAdminPassword string
)

// seedLocations ubicaciones que se crean en la bodega inicial.
var seedLocations = []dto.CreateLocationRequest{
	{Name: "Stock", Code: "STOCK", Type: entity.LocationTypeZone},
	{Name: "Entrada", Code: "INPUT", Type: entity.LocationTypeZone},
	{Name: "Salida", Code: "OUTPUT", Type: entity.LocationTypeZone},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Crea la bodega inicial con sus ubicaciones y un usuario administrador",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		pool, err := openPool(ctx)
		if err != nil {
			return err
		}
		defer pool.Close()

		warehouseUC := usecase.NewWarehouseUseCase(postgres.NewWarehouseRepository(pool), postgres.NewLocationRepository(pool))
		wh, err := ensureWarehouse(ctx, warehouseUC)
		if err != nil {
			return err
		}
		if err := ensureLocations(ctx, warehouseUC, wh.ID); err != nil {
			return err
		}

		if seedAdminEmail == "" {
			fmt.Println("Sin --admin-email: no se crea usuario")
			return nil
		}
		if len(seedAdminPassword) < 8 {
			return errors.New("--admin-password debe tener al menos 8 caracteres")
		}
		authUC := auth.NewAuthUseCase(postgres.NewUserRepository(pool), auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		})
		user, err := authUC.Register(ctx, dto.RegisterRequest{
			Name:     seedAdminName,
			Email:    seedAdminEmail,
			Password: seedAdminPassword,
			Role:     entity.RoleAdmin,
		})
		switch {
		case errors.Is(err, domain.ErrEmailAlreadyExists):
			fmt.Printf("Usuario %s ya existe\n", seedAdminEmail)
		case err != nil:
			return fmt.Errorf("crear administrador: %w", err)
		default:
			fmt.Printf("Administrador creado: %s (%s)\n", user.Email, user.ID)
		}
		return nil
	},
}

func ensureWarehouse(ctx context.Context, uc *usecase.WarehouseUseCase) (*dto.WarehouseResponse, error) {
	list, err := uc.ListWarehouses(ctx)
	if err != nil {
		return nil, err
	}
	code := usecase.NormalizeCode(seedWarehouseCode)
	for i := range list {
		if list[i].Code == code {
			fmt.Printf("Bodega %s ya existe\n", code)
			return &list[i], nil
		}
	}
	wh, err := uc.CreateWarehouse(ctx, dto.CreateWarehouseRequest{Name: seedWarehouseName, Code: code})
	if err != nil {
		return nil, fmt.Errorf("crear bodega: %w", err)
	}
	fmt.Printf("Bodega creada: %s (%s)\n", wh.Code, wh.ID)
	return wh, nil
}

func ensureLocations(ctx context.Context, uc *usecase.WarehouseUseCase, warehouseID string) error {
	existing, err := uc.ListLocations(ctx, warehouseID)
	if err != nil {
		return err
	}
	have := make(map[string]bool, len(existing))
	for _, l := range existing {
		have[l.Code] = true
	}
	for _, req := range seedLocations {
		if have[req.Code] {
			continue
		}
		req.Warehouse = warehouseID
		loc, err := uc.CreateLocation(ctx, req)
		if err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				continue
			}
			return fmt.Errorf("crear ubicación %s: %w", req.Code, err)
		}
		fmt.Printf("  ubicación %s (%s)\n", loc.Code, loc.ID)
	}
	return nil
}

func init() {
	seedCmd.Flags().StringVar(&seedWarehouseCode, "warehouse-code", "WH", "Código de la bodega inicial")
	seedCmd.Flags().StringVar(&seedWarehouseName, "warehouse-name", "Bodega principal", "Nombre de la bodega inicial")
	seedCmd.Flags().StringVar(&seedAdminName, "admin-name", "Administrador", "Nombre del administrador")
	seedCmd.Flags().StringVar(&seedAdminEmail, "admin-email", "", "Email del administrador (vacío: no se crea)")
	seedCmd.Flags().StringVar(&seedAdminPassword, "admin-password", "", "Contraseña del administrador (mínimo 8 caracteres)")
	rootCmd.AddCommand(seedCmd)
}
