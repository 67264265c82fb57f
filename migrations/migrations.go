// Package migrations embeds the SQL migration files for both database
// backends. Files are named NNN_description.sql and applied in order by
// internal/migration.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
