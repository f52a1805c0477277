package migrations

import "embed"

// Files holds the sqlite schema migrations, applied in version order at startup.
//
//go:embed *.sql
var Files embed.FS
