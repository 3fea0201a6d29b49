package models

import (
	"fmt"
	"time"
)

// SRSLevel is a coarse bucket of a word's learning state used for grouping
// and dashboard stats. Scheduling itself only looks at DueAt.
type SRSLevel int

const (
	LevelNew      SRSLevel = iota // Never reviewed
	LevelLearning                 // Short intervals, or relearning after a lapse
	LevelReview                   // Regular review cycle
	LevelMastered                 // Long intervals
)

var levelNames = [...]string{
	LevelNew:      "new",
	LevelLearning: "learning",
	LevelReview:   "review",
	LevelMastered: "mastered",
}

// Levels lists all levels in ascending order.
var Levels = []SRSLevel{LevelNew, LevelLearning, LevelReview, LevelMastered}

// IsValid reports whether l is one of the known levels.
func (l SRSLevel) IsValid() bool {
	return l >= LevelNew && l <= LevelMastered
}

func (l SRSLevel) String() string {
	if l.IsValid() {
		return levelNames[l]
	}
	return fmt.Sprintf("SRSLevel(%d)", int(l))
}

// MarshalText writes the level name, so JSON map keys read "new", "mastered"
func (l SRSLevel) MarshalText() ([]byte, error) {
	if !l.IsValid() {
		return nil, fmt.Errorf("unknown srs level %d", int(l))
	}
	return []byte(levelNames[l]), nil
}

// UnmarshalText accepts a level name
func (l *SRSLevel) UnmarshalText(text []byte) error {
	for _, level := range Levels {
		if levelNames[level] == string(text) {
			*l = level
			return nil
		}
	}
	return fmt.Errorf("unknown srs level %q", string(text))
}

// StudyStatus projects the level onto the legacy known/review/unset status
// that older screens still display.
func (l SRSLevel) StudyStatus() string {
	switch l {
	case LevelNew:
		return ""
	case LevelMastered:
		return "known"
	default:
		return "review"
	}
}

// ReviewRecord tracks a user's spaced repetition state for one word.
type ReviewRecord struct {
	Repetitions  int       `json:"repetitions" db:"repetitions"`     // Consecutive successful reviews since the last lapse
	IntervalDays int       `json:"interval_days" db:"interval_days"` // Days until the word is due again
	EaseFactor   float64   `json:"ease_factor" db:"ease_factor"`
	DueAt        time.Time `json:"due_at" db:"due_at"`
	Lapses       int       `json:"lapses" db:"lapses"`
	SRSLevel     SRSLevel  `json:"srs_level" db:"srs_level"`
}
