// Package migrations embebe el esquema SQL que aplica `stockctl migrate`.
package migrations

import "embed"

// FS contiene los pares NNNN_nombre.up.sql / NNNN_nombre.down.sql en el formato de golang-migrate.
//
//go:embed *.sql
var FS embed.FS
