// Package migrations embeds the SQL migration files into the binary, so
// inputctl can create and upgrade its profile database without the files
// being present on disk.
package migrations

import "embed"

// FS holds the migration files at its root.
//
//go:embed *.sql
var FS embed.FS
