package migrations

import "embed"

// FS contains the SQLite schema migrations.
//
//go:embed *.sql
var FS embed.FS
