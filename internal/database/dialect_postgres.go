package database

import (
	"github.com/example/engstudy/internal/config"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// PostgresDialect implements Dialect for PostgreSQL
type PostgresDialect struct{}

// NewPostgresDialect creates a new PostgreSQL dialect
func NewPostgresDialect() *PostgresDialect {
	return &PostgresDialect{}
}

func (d *PostgresDialect) DriverName() string {
	return "postgres"
}

func (d *PostgresDialect) DSN(cfg config.Database) string {
	return cfg.URL
}

func (d *PostgresDialect) ConfigureConnection(db *sqlx.DB, cfg config.Database) error {
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	return nil
}

func (d *PostgresDialect) Types() ColumnTypes {
	return ColumnTypes{
		AutoID:    "BIGSERIAL PRIMARY KEY",
		Timestamp: "TIMESTAMPTZ",
		Float:     "DOUBLE PRECISION",
		Bool:      "BOOLEAN",
	}
}

func (d *PostgresDialect) UpsertClause(conflict []string, update []string) string {
	return onConflictUpdate(conflict, update)
}

// PostgreSQL needs RETURNING id instead
func (d *PostgresDialect) SupportsLastInsertID() bool {
	return false
}
