package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/example/engstudy/pkg/models"
)

// UserRepository handles database operations for learners
type UserRepository struct {
	db *DB
}

// NewUserRepository creates a new repository instance
func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, username, display_name, email, telegram_chat_id, max_new_per_session,
	max_review_per_session, notification_enabled, notification_hour, created_at, updated_at`

// Create stores a new user and fills in its ID
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	now := utc(time.Now())

	id, err := r.db.execReturningID(ctx, `
		INSERT INTO users (username, display_name, email, telegram_chat_id, max_new_per_session,
			max_review_per_session, notification_enabled, notification_hour, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		user.Username,
		user.DisplayName,
		user.Email,
		user.TelegramChatID,
		user.MaxNewPerSession,
		user.MaxReviewPerSession,
		user.NotificationEnabled,
		user.NotificationHour,
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to create user %q: %w", user.Username, err)
	}

	user.ID = id
	user.CreatedAt = now
	user.UpdatedAt = now
	return nil
}

// GetByID returns a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return r.getOne(ctx, "id = ?", id)
}

// GetByUsername returns a user by username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getOne(ctx, "username = ?", username)
}

func (r *UserRepository) getOne(ctx context.Context, where string, arg interface{}) (*models.User, error) {
	var user models.User
	query := r.db.Rebind("SELECT " + userColumns + " FROM users WHERE " + where)
	err := r.db.GetContext(ctx, &user, query, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %v: %w", arg, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// Update saves the user's profile and settings
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	now := utc(time.Now())
	query := r.db.Rebind(`
		UPDATE users SET
			display_name = ?,
			email = ?,
			telegram_chat_id = ?,
			max_new_per_session = ?,
			max_review_per_session = ?,
			notification_enabled = ?,
			notification_hour = ?,
			updated_at = ?
		WHERE id = ?`)

	res, err := r.db.ExecContext(ctx, query,
		user.DisplayName,
		user.Email,
		user.TelegramChatID,
		user.MaxNewPerSession,
		user.MaxReviewPerSession,
		user.NotificationEnabled,
		user.NotificationHour,
		now,
		user.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user %d: %w", user.ID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("user %d: %w", user.ID, ErrNotFound)
	}
	user.UpdatedAt = now
	return nil
}

// List returns all users ordered by ID
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if err := r.db.SelectContext(ctx, &users, "SELECT "+userColumns+" FROM users ORDER BY id"); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// ListForNotification returns users with reminders enabled for the given hour
func (r *UserRepository) ListForNotification(ctx context.Context, hour int) ([]models.User, error) {
	users := []models.User{}
	query := r.db.Rebind("SELECT " + userColumns + " FROM users WHERE notification_enabled = ? AND notification_hour = ? ORDER BY id")
	if err := r.db.SelectContext(ctx, &users, query, true, hour); err != nil {
		return nil, fmt.Errorf("failed to get users for notification: %w", err)
	}
	return users, nil
}
