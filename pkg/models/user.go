package models

import "time"

// User represents a learner
type User struct {
	ID                  int64     `json:"id" db:"id"`
	Username            string    `json:"username" db:"username"`
	DisplayName         string    `json:"display_name" db:"display_name"`
	Email               string    `json:"email" db:"email"`
	TelegramChatID      int64     `json:"telegram_chat_id" db:"telegram_chat_id"`
	MaxNewPerSession    int       `json:"max_new_per_session" db:"max_new_per_session"`       // 0 means the configured default
	MaxReviewPerSession int       `json:"max_review_per_session" db:"max_review_per_session"` // 0 means the configured default
	NotificationEnabled bool      `json:"notification_enabled" db:"notification_enabled"`
	NotificationHour    int       `json:"notification_hour" db:"notification_hour"` // Hour of day for reminders (0-23)
	CreatedAt           time.Time `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time `json:"updated_at" db:"updated_at"`
}
