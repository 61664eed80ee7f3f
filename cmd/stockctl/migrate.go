package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/stockmaster-api/internal/infrastructure/postgres"
	"github.com/jhoicas/stockmaster-api/migrations"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Aplica las migraciones SQL pendientes",
	RunE: func(cmd *cobra.Command, args []string) error {
		pool, err := openPool(cmd.Context())
		if err != nil {
			return err
		}
		defer pool.Close()

		res, err := postgres.Migrate(pool, migrations.FS)
		if err != nil {
			return err
		}
		if !res.Applied() {
			fmt.Printf("Esquema al día en la versión %d, sin migraciones pendientes\n", res.To)
			return nil
		}
		fmt.Printf("Esquema migrado de la versión %d a la %d\n", res.From, res.To)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
