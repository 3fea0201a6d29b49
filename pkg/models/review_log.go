package models

import "time"

// ReviewLog is one entry of a user's review history
type ReviewLog struct {
	ID           string    `json:"id" db:"id"`
	UserID       int64     `json:"user_id" db:"user_id"`
	WordKey      string    `json:"word" db:"word"`
	Quality      string    `json:"quality" db:"quality"` // again, good or easy
	IntervalDays int       `json:"interval_days" db:"interval_days"`
	EaseFactor   float64   `json:"ease_factor" db:"ease_factor"`
	ReviewedAt   time.Time `json:"reviewed_at" db:"reviewed_at"`
}
