package migrations

import "embed"

// FS contains embedded SQLite migrations for catering storage.
//
//go:embed *.sql
var FS embed.FS
