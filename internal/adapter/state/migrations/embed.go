package migrations

import "embed"

// FS contains embedded SQLite migrations for the checkpoint store.
//
//go:embed *.sql
var FS embed.FS
