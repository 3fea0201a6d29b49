package models

import "time"

// Word represents an English word from the study catalog.
// Key is the canonical written form and is unique within the catalog.
type Word struct {
	ID            int64     `json:"id" db:"id"`
	Key           string    `json:"word" db:"word"`
	Translation   string    `json:"translation" db:"translation"` // Vietnamese translation
	PartOfSpeech  string    `json:"part_of_speech" db:"part_of_speech"`
	Pronunciation string    `json:"pronunciation" db:"pronunciation"` // IPA transcription
	Example       string    `json:"example" db:"example"`
	Topic         string    `json:"topic" db:"topic"`
	Position      int       `json:"position" db:"position"` // Order inside the catalog
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}
