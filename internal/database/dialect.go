package database

import (
	"fmt"
	"strings"

	"github.com/example/engstudy/internal/config"
	"github.com/jmoiron/sqlx"
)

// Dialect hides the differences between the supported databases
type Dialect interface {
	// DriverName returns the driver name for sqlx.Open
	DriverName() string

	// DSN builds the data source name from the database config
	DSN(cfg config.Database) string

	// ConfigureConnection applies pool and session settings
	ConfigureConnection(db *sqlx.DB, cfg config.Database) error

	// Types returns the column types used by the schema
	Types() ColumnTypes

	// UpsertClause returns the conflict clause appended to an INSERT
	UpsertClause(conflict []string, update []string) string

	// SupportsLastInsertID reports whether sql.Result.LastInsertId works
	SupportsLastInsertID() bool
}

// ColumnTypes are substituted into the schema statements
type ColumnTypes struct {
	AutoID    string
	Timestamp string
	Float     string
	Bool      string
}

// NewDialect returns the dialect for a configured database type
func NewDialect(dbType string) (Dialect, error) {
	switch strings.ToLower(dbType) {
	case "sqlite", "sqlite3", "":
		return NewSQLiteDialect(), nil
	case "postgres", "postgresql":
		return NewPostgresDialect(), nil
	case "mysql":
		return NewMySQLDialect(), nil
	default:
		return nil, fmt.Errorf("unsupported database type: %s", dbType)
	}
}

// onConflictUpdate is shared by SQLite and PostgreSQL
func onConflictUpdate(conflict []string, update []string) string {
	sets := make([]string, len(update))
	for i, col := range update {
		sets[i] = fmt.Sprintf("%s = excluded.%s", col, col)
	}
	return fmt.Sprintf(" ON CONFLICT (%s) DO UPDATE SET %s", strings.Join(conflict, ", "), strings.Join(sets, ", "))
}
