package postgres

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog/log"
)

// migrationsTable guarda la versión aplicada. No se usa schema_migrations porque las bases
// creadas con el runner anterior ya tienen una tabla con ese nombre y otro esquema.
const migrationsTable = "schema_version"

// MigrationResult versión antes y después de Migrate. Cero significa esquema vacío.
type MigrationResult struct {
	From uint
	To   uint
}

// Applied indica si se aplicó al menos una migración.
func (r MigrationResult) Applied() bool { return r.To != r.From }

// migrateLogger adapta zerolog a migrate.Logger.
type migrateLogger struct{}

func (migrateLogger) Printf(format string, v ...any) {
	log.Info().Str("component", "migrate").Msgf(format, v...)
}

func (migrateLogger) Verbose() bool { return false }

// Migrate aplica con golang-migrate las migraciones *.up.sql de fsys que estén pendientes.
// Usa una conexión database/sql tomada del pool; cerrar esa conexión no cierra el pool.
func Migrate(pool *pgxpool.Pool, fsys fs.FS) (MigrationResult, error) {
	var res MigrationResult

	src, err := iofs.New(fsys, ".")
	if err != nil {
		return res, fmt.Errorf("leer migraciones: %w", err)
	}
	driver, err := pgxmigrate.WithInstance(stdlib.OpenDBFromPool(pool), &pgxmigrate.Config{
		MigrationsTable: migrationsTable,
	})
	if err != nil {
		return res, fmt.Errorf("driver de migraciones: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "pgx5", driver)
	if err != nil {
		return res, fmt.Errorf("iniciar migraciones: %w", err)
	}
	defer m.Close()
	m.Log = migrateLogger{}

	if res.From, err = version(m); err != nil {
		return res, err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return res, fmt.Errorf("aplicar migraciones: %w", err)
	}
	if res.To, err = version(m); err != nil {
		return res, err
	}
	if res.Applied() {
		log.Info().Uint("from", res.From).Uint("to", res.To).Msg("migraciones aplicadas")
	}
	return res, nil
}

func version(m *migrate.Migrate) (uint, error) {
	v, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("versión del esquema: %w", err)
	}
	if dirty {
		return v, fmt.Errorf("el esquema quedó a medias en la versión %d: revisar y forzar con migrate force", v)
	}
	return v, nil
}
