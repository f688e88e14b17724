package migration

import "embed"

// Files holds the sql-migrate scripts for the postgres persistence driver.
//
//go:embed *.sql
var Files embed.FS
