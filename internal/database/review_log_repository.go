package database

import (
	"context"
	"fmt"
	"time"

	"github.com/example/engstudy/pkg/models"
)

// ReviewLogRepository keeps the append-only review history
type ReviewLogRepository struct {
	db *DB
}

// NewReviewLogRepository creates a new repository instance
func NewReviewLogRepository(db *DB) *ReviewLogRepository {
	return &ReviewLogRepository{db: db}
}

// AppendReviewLog stores one review event
func (r *ReviewLogRepository) AppendReviewLog(ctx context.Context, entry models.ReviewLog) error {
	query := r.db.Rebind(`
		INSERT INTO review_logs (id, user_id, word, quality, interval_days, ease_factor, reviewed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)

	_, err := r.db.ExecContext(ctx, query,
		entry.ID,
		entry.UserID,
		entry.WordKey,
		entry.Quality,
		entry.IntervalDays,
		entry.EaseFactor,
		utc(entry.ReviewedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to append review log: %w", err)
	}
	return nil
}

// CountReviewsSince counts the user's reviews at or after since
func (r *ReviewLogRepository) CountReviewsSince(ctx context.Context, userID int64, since time.Time) (int, error) {
	var n int
	query := r.db.Rebind("SELECT COUNT(*) FROM review_logs WHERE user_id = ? AND reviewed_at >= ?")
	if err := r.db.GetContext(ctx, &n, query, userID, utc(since)); err != nil {
		return 0, fmt.Errorf("failed to count reviews: %w", err)
	}
	return n, nil
}

// ListRecent returns the latest review events, newest first
func (r *ReviewLogRepository) ListRecent(ctx context.Context, userID int64, limit int) ([]models.ReviewLog, error) {
	if limit <= 0 {
		limit = 20
	}

	logs := []models.ReviewLog{}
	query := r.db.Rebind(`
		SELECT id, user_id, word, quality, interval_days, ease_factor, reviewed_at
		FROM review_logs
		WHERE user_id = ?
		ORDER BY reviewed_at DESC, id
		LIMIT ?`)
	if err := r.db.SelectContext(ctx, &logs, query, userID, limit); err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	for i := range logs {
		logs[i].ReviewedAt = logs[i].ReviewedAt.UTC()
	}
	return logs, nil
}
