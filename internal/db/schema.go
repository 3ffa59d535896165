package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"strings"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// EnsureSchema creates the users and todos tables when they are missing.
// It is idempotent and does not track versions.
func EnsureSchema(ctx context.Context, db *sql.DB, driver string) error {
	var file string
	switch driver {
	case DriverPostgres:
		file = "schema/postgres.sql"
	case DriverSQLite:
		file = "schema/sqlite.sql"
	default:
		return fmt.Errorf("unsupported database driver %q", driver)
	}

	text, err := schemaFS.ReadFile(file)
	if err != nil {
		return fmt.Errorf("failed to read schema: %w", err)
	}

	for _, stmt := range strings.Split(string(text), ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
