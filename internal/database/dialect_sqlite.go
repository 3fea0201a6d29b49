package database

import (
	"github.com/example/engstudy/internal/config"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// SQLiteDialect implements Dialect for SQLite
type SQLiteDialect struct{}

// NewSQLiteDialect creates a new SQLite dialect
func NewSQLiteDialect() *SQLiteDialect {
	return &SQLiteDialect{}
}

func (d *SQLiteDialect) DriverName() string {
	return "sqlite3"
}

func (d *SQLiteDialect) DSN(cfg config.Database) string {
	return cfg.Path + "?_busy_timeout=5000"
}

func (d *SQLiteDialect) ConfigureConnection(db *sqlx.DB, _ config.Database) error {
	// SQLite doesn't support multiple writers
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return err
	}
	return nil
}

func (d *SQLiteDialect) Types() ColumnTypes {
	return ColumnTypes{
		AutoID:    "INTEGER PRIMARY KEY AUTOINCREMENT",
		Timestamp: "DATETIME",
		Float:     "REAL",
		Bool:      "BOOLEAN",
	}
}

func (d *SQLiteDialect) UpsertClause(conflict []string, update []string) string {
	return onConflictUpdate(conflict, update)
}

func (d *SQLiteDialect) SupportsLastInsertID() bool {
	return true
}
