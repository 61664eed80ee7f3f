package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/application/inventory"
	"github.com/jhoicas/stockmaster-api/internal/application/usecase"
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/infrastructure/postgres"
)

var (
	importFile     string
	importCharset  string
	importActor    string
	importLocation string
)

// productColumns encabezados reconocidos; sku, name y category son obligatorios.
var productColumns = []string{
	"sku", "name", "category", "description", "unit", "cost", "price",
	"reorder_point", "reorder_quantity", "barcode", "initial_stock", "location",
}

var importCmd = &cobra.Command{
	Use:   "products:import",
	Short: "Importa productos desde un CSV; initial_stock genera una recepción validada",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(importFile)
		if err != nil {
			return fmt.Errorf("abrir CSV: %w", err)
		}
		defer f.Close()

		rows, err := parseProductCSV(f, importCharset)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		pool, err := openPool(ctx)
		if err != nil {
			return err
		}
		defer pool.Close()

		productRepo := postgres.NewProductRepository(pool)
		stockRepo := postgres.NewStockLevelRepository(pool)
		locationRepo := postgres.NewLocationRepository(pool)
		documents := inventory.NewDocumentUseCase(
			postgres.NewTxRunner(pool),
			postgres.NewDocumentRepository(pool),
			productRepo, locationRepo, stockRepo,
			postgres.NewStockMoveRepository(pool),
		)
		products := usecase.NewProductUseCase(productRepo, stockRepo, locationRepo, documents)

		var created, skipped, failed int
		for i, row := range rows {
			if row.Location == "" {
				row.Location = importLocation
			}
			p, err := products.Create(ctx, row, importActor)
			switch {
			case errors.Is(err, domain.ErrDuplicate):
				skipped++
				fmt.Printf("  [omitido] fila %d: %s ya existe\n", i+2, row.SKU)
			case err != nil:
				failed++
				fmt.Printf("  [error] fila %d (%s): %v\n", i+2, row.SKU, err)
			default:
				created++
				log.Debug().Str("sku", p.SKU).Str("id", p.ID).Msg("producto importado")
			}
		}
		fmt.Printf("Filas: %d  Creados: %d  Omitidos: %d  Errores: %d\n", len(rows), created, skipped, failed)
		if failed > 0 {
			return fmt.Errorf("%d filas con error", failed)
		}
		return nil
	},
}

// parseProductCSV lee el CSV con encabezado. charset "latin1" decodifica ISO-8859-1,
// el formato habitual de las hojas exportadas desde Excel en Windows.
func parseProductCSV(r io.Reader, charset string) ([]dto.CreateProductRequest, error) {
	switch strings.ToLower(charset) {
	case "", "utf8", "utf-8":
	case "latin1", "iso-8859-1", "iso8859-1":
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	default:
		return nil, fmt.Errorf("charset no soportado %q", charset)
	}

	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("leer encabezado: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	for _, required := range productColumns[:3] {
		if _, ok := idx[required]; !ok {
			return nil, fmt.Errorf("falta la columna %q", required)
		}
	}

	var out []dto.CreateProductRequest
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("fila %d: %w", line, err)
		}
		get := func(col string) string {
			i, ok := idx[col]
			if !ok || i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}

		req := dto.CreateProductRequest{
			SKU:           get("sku"),
			Name:          get("name"),
			Category:      get("category"),
			Description:   get("description"),
			UnitOfMeasure: get("unit"),
			Barcode:       get("barcode"),
			Location:      get("location"),
		}
		if req.Cost, err = decimalOrZero(get("cost")); err != nil {
			return nil, fmt.Errorf("fila %d: cost: %w", line, err)
		}
		if req.Price, err = decimalOrZero(get("price")); err != nil {
			return nil, fmt.Errorf("fila %d: price: %w", line, err)
		}
		if req.ReorderPoint, err = optionalDecimal(get("reorder_point")); err != nil {
			return nil, fmt.Errorf("fila %d: reorder_point: %w", line, err)
		}
		if req.ReorderQuantity, err = optionalDecimal(get("reorder_quantity")); err != nil {
			return nil, fmt.Errorf("fila %d: reorder_quantity: %w", line, err)
		}
		if req.InitialStock, err = optionalDecimal(get("initial_stock")); err != nil {
			return nil, fmt.Errorf("fila %d: initial_stock: %w", line, err)
		}
		out = append(out, req)
	}
	return out, nil
}

func decimalOrZero(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

func optionalDecimal(s string) (*decimal.Decimal, error) {
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func init() {
	importCmd.Flags().StringVarP(&importFile, "file", "f", "", "Ruta del CSV (requerido)")
	importCmd.MarkFlagRequired("file")
	importCmd.Flags().StringVar(&importCharset, "charset", "utf-8", "Codificación del CSV: utf-8 o latin1")
	importCmd.Flags().StringVar(&importActor, "actor", "", "ID del usuario que registra el stock inicial")
	importCmd.Flags().StringVar(&importLocation, "location", "", "Ubicación por defecto para initial_stock")
	rootCmd.AddCommand(importCmd)
}
