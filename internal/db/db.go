package db

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// Connect opens a pool for the given driver and verifies it with a ping.
func Connect(driver, dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("database url is empty")
	}

	switch driver {
	case DriverPostgres:
	case DriverSQLite:
		dsn = withForeignKeys(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// SQLite leaves foreign keys off unless every connection asks for them.
func withForeignKeys(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys=") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&_foreign_keys=on"
	}
	return dsn + "?_foreign_keys=on"
}

var placeholder = regexp.MustCompile(`\$(\d+)`)

// Rebind rewrites Postgres-style $N placeholders for the given driver.
// Queries are written once in Postgres syntax; SQLite gets numbered ?N parameters.
func Rebind(driver, query string) string {
	if driver != DriverSQLite {
		return query
	}
	return placeholder.ReplaceAllString(query, "?$1")
}
