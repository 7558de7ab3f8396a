// Package migrations embeds the goose SQL migrations for every supported
// storage driver.
package migrations

import "embed"

// Subdirectories of FS, one per driver.
const (
	PostgresDir = "postgres"
	SQLiteDir   = "sqlite"
)

//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS
