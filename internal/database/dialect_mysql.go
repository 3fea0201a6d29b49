package database

import (
	"fmt"
	"strings"

	"github.com/example/engstudy/internal/config"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

// MySQLDialect implements Dialect for MySQL
type MySQLDialect struct{}

// NewMySQLDialect creates a new MySQL dialect
func NewMySQLDialect() *MySQLDialect {
	return &MySQLDialect{}
}

func (d *MySQLDialect) DriverName() string {
	return "mysql"
}

// DSN accepts a go-sql-driver DSN and turns on parseTime
func (d *MySQLDialect) DSN(cfg config.Database) string {
	mc, err := mysql.ParseDSN(cfg.URL)
	if err != nil {
		// Let sqlx.Open report the malformed DSN
		return cfg.URL
	}
	mc.ParseTime = true
	return mc.FormatDSN()
}

func (d *MySQLDialect) ConfigureConnection(db *sqlx.DB, cfg config.Database) error {
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	return nil
}

func (d *MySQLDialect) Types() ColumnTypes {
	return ColumnTypes{
		AutoID:    "BIGINT AUTO_INCREMENT PRIMARY KEY",
		Timestamp: "DATETIME(6)",
		Float:     "DOUBLE",
		Bool:      "BOOLEAN",
	}
}

func (d *MySQLDialect) UpsertClause(_ []string, update []string) string {
	sets := make([]string, len(update))
	for i, col := range update {
		sets[i] = fmt.Sprintf("%s = VALUES(%s)", col, col)
	}
	return " ON DUPLICATE KEY UPDATE " + strings.Join(sets, ", ")
}

func (d *MySQLDialect) SupportsLastInsertID() bool {
	return true
}
