package database

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/example/engstudy/internal/config"
	"github.com/jmoiron/sqlx"
)

// ErrNotFound is returned when a requested row does not exist
var ErrNotFound = errors.New("database: not found")

// DB wraps the sqlx connection with its dialect
type DB struct {
	*sqlx.DB
	Dialect Dialect
}

// Connect establishes a connection to the database and creates the schema
func Connect(cfg config.Database) (*DB, error) {
	dialect, err := NewDialect(cfg.Type)
	if err != nil {
		return nil, err
	}

	if _, ok := dialect.(*SQLiteDialect); ok {
		// Create data directory if it doesn't exist
		if dir := filepath.Dir(cfg.Path); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create data directory: %w", err)
			}
		}
	}

	conn, err := sqlx.Open(dialect.DriverName(), dialect.DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := dialect.ConfigureConnection(conn, cfg); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to configure connection: %w", err)
	}

	db := &DB{DB: conn, Dialect: dialect}
	if err := db.initializeSchema(ctx); err != nil {
		conn.Close()
		return nil, err
	}

	return db, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	if db == nil || db.DB == nil {
		return nil
	}
	return db.DB.Close()
}

var schema = []struct {
	name string
	stmt string
}{
	{"users", `
		CREATE TABLE IF NOT EXISTS users (
			id {{AUTO_ID}},
			username VARCHAR(64) NOT NULL UNIQUE,
			display_name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL,
			telegram_chat_id BIGINT NOT NULL DEFAULT 0,
			max_new_per_session INTEGER NOT NULL DEFAULT 0,
			max_review_per_session INTEGER NOT NULL DEFAULT 0,
			notification_enabled {{BOOL}} NOT NULL DEFAULT TRUE,
			notification_hour INTEGER NOT NULL DEFAULT 9,
			created_at {{TIMESTAMP}} NOT NULL,
			updated_at {{TIMESTAMP}} NOT NULL
		)`},
	{"words", `
		CREATE TABLE IF NOT EXISTS words (
			id {{AUTO_ID}},
			word VARCHAR(255) NOT NULL UNIQUE,
			translation TEXT NOT NULL,
			part_of_speech VARCHAR(64) NOT NULL,
			pronunciation VARCHAR(255) NOT NULL,
			example TEXT NOT NULL,
			topic VARCHAR(255) NOT NULL,
			position INTEGER NOT NULL,
			created_at {{TIMESTAMP}} NOT NULL,
			updated_at {{TIMESTAMP}} NOT NULL
		)`},
	{"review_records", `
		CREATE TABLE IF NOT EXISTS review_records (
			user_id BIGINT NOT NULL,
			word VARCHAR(255) NOT NULL,
			repetitions INTEGER NOT NULL,
			interval_days INTEGER NOT NULL,
			ease_factor {{FLOAT}} NOT NULL,
			due_at {{TIMESTAMP}} NOT NULL,
			lapses INTEGER NOT NULL,
			srs_level INTEGER NOT NULL,
			updated_at {{TIMESTAMP}} NOT NULL,
			PRIMARY KEY (user_id, word),
			FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
		)`},
	{"review_logs", `
		CREATE TABLE IF NOT EXISTS review_logs (
			id VARCHAR(36) PRIMARY KEY,
			user_id BIGINT NOT NULL,
			word VARCHAR(255) NOT NULL,
			quality VARCHAR(16) NOT NULL,
			interval_days INTEGER NOT NULL,
			ease_factor {{FLOAT}} NOT NULL,
			reviewed_at {{TIMESTAMP}} NOT NULL,
			FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
		)`},
}

// initializeSchema creates necessary tables if they don't exist
func (db *DB) initializeSchema(ctx context.Context) error {
	types := db.Dialect.Types()
	r := strings.NewReplacer(
		"{{AUTO_ID}}", types.AutoID,
		"{{TIMESTAMP}}", types.Timestamp,
		"{{FLOAT}}", types.Float,
		"{{BOOL}}", types.Bool,
	)

	for _, t := range schema {
		if _, err := db.ExecContext(ctx, r.Replace(t.stmt)); err != nil {
			return fmt.Errorf("failed to create %s table: %w", t.name, err)
		}
	}
	return nil
}

// execReturningID runs an INSERT and returns the new row's ID
func (db *DB) execReturningID(ctx context.Context, query string, args ...interface{}) (int64, error) {
	query = db.Rebind(query)

	if db.Dialect.SupportsLastInsertID() {
		result, err := db.ExecContext(ctx, query, args...)
		if err != nil {
			return 0, err
		}
		return result.LastInsertId()
	}

	var id int64
	err := db.QueryRowContext(ctx, strings.TrimSuffix(strings.TrimSpace(query), ";")+" RETURNING id", args...).Scan(&id)
	return id, err
}

// utc normalizes timestamps before they reach the driver
func utc(t time.Time) time.Time {
	return t.UTC()
}
