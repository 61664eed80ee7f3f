package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/jhoicas/stockmaster-api/internal/application/inventory"
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/infrastructure/cache"
	"github.com/jhoicas/stockmaster-api/internal/infrastructure/postgres"
)

var (
	validateActor string
	validateSet   []string
)

var validateCmd = &cobra.Command{
	Use:   "validate <receipt|delivery|transfer|adjustment> <id>",
	Short: "Valida un documento en draft y aplica su efecto de stock",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := entity.DocumentKind(strings.ToLower(args[0]))
		if !kind.Valid() {
			return fmt.Errorf("tipo de documento desconocido %q", args[0])
		}
		overrides, err := parseOverrides(validateSet)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		pool, err := openPool(ctx)
		if err != nil {
			return err
		}
		defer pool.Close()

		var observers []inventory.StockObserver
		if cfg.Redis.Enabled() {
			client, err := cache.NewClient(ctx, cfg.Redis)
			if err != nil {
				log.Warn().Err(err).Msg("Redis no disponible: la caché del dashboard no se invalidará")
			} else {
				defer client.Close()
				observers = append(observers, cache.NewInvalidator(cache.New(client, cfg.Redis.CacheTTL()), nil))
			}
		}

		uc := inventory.NewDocumentUseCase(
			postgres.NewTxRunner(pool),
			postgres.NewDocumentRepository(pool),
			postgres.NewProductRepository(pool),
			postgres.NewLocationRepository(pool),
			postgres.NewStockLevelRepository(pool),
			postgres.NewStockMoveRepository(pool),
			observers...,
		)
		doc, err := uc.Validate(ctx, kind, args[1], validateActor, overrides)
		if err != nil {
			var insufficient *domain.InsufficientStockError
			if errors.As(err, &insufficient) {
				return fmt.Errorf("stock insuficiente para %s en %s: solicitado %s, disponible %s",
					insufficient.ProductID, insufficient.LocationID, insufficient.Requested, insufficient.Available)
			}
			return err
		}
		fmt.Printf("%s validado (%d líneas)\n", doc.Reference, len(doc.Lines))
		return nil
	},
}

// parseOverrides convierte "producto=cantidad" en overrides por producto.
func parseOverrides(raw []string) ([]inventory.LineOverride, error) {
	out := make([]inventory.LineOverride, 0, len(raw))
	for _, item := range raw {
		product, qty, ok := strings.Cut(item, "=")
		if !ok || strings.TrimSpace(product) == "" {
			return nil, fmt.Errorf("--set %q: se espera producto=cantidad", item)
		}
		actual, err := decimal.NewFromString(strings.TrimSpace(qty))
		if err != nil {
			return nil, fmt.Errorf("--set %q: cantidad inválida", item)
		}
		out = append(out, inventory.LineOverride{ProductID: strings.TrimSpace(product), Actual: actual})
	}
	return out, nil
}

func init() {
	validateCmd.Flags().StringVar(&validateActor, "actor", "", "ID del usuario que valida (requerido)")
	validateCmd.MarkFlagRequired("actor")
	validateCmd.Flags().StringSliceVar(&validateSet, "set", nil, "Cantidad real por producto: producto=cantidad (repetible)")
	rootCmd.AddCommand(validateCmd)
}
