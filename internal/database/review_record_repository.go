package database

import (
	"context"
	"fmt"
	"time"

	"github.com/example/engstudy/pkg/models"
	"github.com/jmoiron/sqlx"
)

// ReviewRecordRepository stores per-user scheduling state
type ReviewRecordRepository struct {
	db *DB
}

// NewReviewRecordRepository creates a new repository instance
func NewReviewRecordRepository(db *DB) *ReviewRecordRepository {
	return &ReviewRecordRepository{db: db}
}

type reviewRecordRow struct {
	UserID  int64  `db:"user_id"`
	WordKey string `db:"word"`
	models.ReviewRecord
	UpdatedAt time.Time `db:"updated_at"`
}

var recordUpdateColumns = []string{
	"repetitions", "interval_days", "ease_factor", "due_at", "lapses", "srs_level", "updated_at",
}

// LoadRecords returns the user's records keyed by word
func (r *ReviewRecordRepository) LoadRecords(ctx context.Context, userID int64) (map[string]models.ReviewRecord, error) {
	rows := []reviewRecordRow{}
	query := r.db.Rebind(`
		SELECT user_id, word, repetitions, interval_days, ease_factor, due_at, lapses, srs_level, updated_at
		FROM review_records WHERE user_id = ?`)
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("failed to load records for user %d: %w", userID, err)
	}

	records := make(map[string]models.ReviewRecord, len(rows))
	for _, row := range rows {
		rec := row.ReviewRecord
		rec.DueAt = rec.DueAt.UTC()
		records[row.WordKey] = rec
	}
	return records, nil
}

// SaveRecord inserts or replaces a single record
func (r *ReviewRecordRepository) SaveRecord(ctx context.Context, userID int64, word string, rec models.ReviewRecord) error {
	return r.saveRecord(ctx, r.db, userID, word, rec)
}

func (r *ReviewRecordRepository) saveRecord(ctx context.Context, ext sqlx.ExecerContext, userID int64, word string, rec models.ReviewRecord) error {
	query := r.db.Rebind(`
		INSERT INTO review_records (user_id, word, repetitions, interval_days, ease_factor, due_at, lapses, srs_level, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)` +
		r.db.Dialect.UpsertClause([]string{"user_id", "word"}, recordUpdateColumns))

	_, err := ext.ExecContext(ctx, query,
		userID,
		word,
		rec.Repetitions,
		rec.IntervalDays,
		rec.EaseFactor,
		utc(rec.DueAt),
		rec.Lapses,
		rec.SRSLevel,
		utc(time.Now()),
	)
	if err != nil {
		return fmt.Errorf("failed to save record %q for user %d: %w", word, userID, err)
	}
	return nil
}

// ReplaceRecords makes the stored records equal to records in one transaction
func (r *ReviewRecordRepository) ReplaceRecords(ctx context.Context, userID int64, records map[string]models.ReviewRecord) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, r.db.Rebind("DELETE FROM review_records WHERE user_id = ?"), userID); err != nil {
		return fmt.Errorf("failed to clear records for user %d: %w", userID, err)
	}

	for word, rec := range records {
		if err := r.saveRecord(ctx, tx, userID, word, rec); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit records for user %d: %w", userID, err)
	}
	return nil
}

// CountDue counts catalog words whose review is due at or before now
func (r *ReviewRecordRepository) CountDue(ctx context.Context, userID int64, now time.Time) (int, error) {
	var n int
	query := r.db.Rebind(`
		SELECT COUNT(*) FROM review_records rr
		JOIN words w ON w.word = rr.word
		WHERE rr.user_id = ? AND rr.due_at <= ?`)
	if err := r.db.GetContext(ctx, &n, query, userID, utc(now)); err != nil {
		return 0, fmt.Errorf("failed to count due words for user %d: %w", userID, err)
	}
	return n, nil
}
