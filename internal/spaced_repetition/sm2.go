package spaced_repetition

import (
	"fmt"
	"math"
	"time"

	"github.com/example/engstudy/pkg/models"
)

// SM2 implements a SuperMemo-2 style scheduler adapted to three recall grades.
// It holds only tunables; every method is pure and never reads the clock.
type SM2 struct {
	// Начальный фактор легкости для новых слов
	DefaultEase float64
	// Фактор легкости не опускается ниже этого значения
	MinEase float64
	// Штраф к фактору легкости за ответ Again
	AgainPenalty float64
	// Прибавка к фактору легкости за Good и Easy
	GoodEaseBonus float64
	EasyEaseBonus float64
	// Интервалы в днях для первого и второго успешного повторения
	FirstInterval  int
	SecondInterval int
	// Интервал после забывания
	RelearnInterval int
	// Дополнительный множитель интервала для Easy
	EasyIntervalBonus float64
	// Максимальный интервал повторения в днях
	MaxInterval int
}

// NewSM2 creates a new SM2 instance with default settings
func NewSM2() *SM2 {
	return &SM2{
		DefaultEase:       2.5,
		MinEase:           1.3, // Не опускаем ниже 1.3
		AgainPenalty:      0.2,
		GoodEaseBonus:     0,
		EasyEaseBonus:     0.15,
		FirstInterval:     1,
		SecondInterval:    6,
		RelearnInterval:   1,
		EasyIntervalBonus: 1.3,
		MaxInterval:       365, // Максимальный интервал - 1 год
	}
}

// Level tiers, in days
const (
	reviewMinInterval   = 7
	masteredMinInterval = 21
	masteredMinReps     = 3
)

// Validate checks that the tunables are consistent with each other
func (sm *SM2) Validate() error {
	switch {
	case !(sm.MinEase > 0):
		return fmt.Errorf("%w: min ease %v must be positive", ErrInvalidInput, sm.MinEase)
	case sm.DefaultEase < sm.MinEase:
		return fmt.Errorf("%w: default ease %v is below min ease %v", ErrInvalidInput, sm.DefaultEase, sm.MinEase)
	case sm.AgainPenalty < 0:
		return fmt.Errorf("%w: again penalty %v must not be negative", ErrInvalidInput, sm.AgainPenalty)
	case sm.GoodEaseBonus < 0 || sm.EasyEaseBonus < sm.GoodEaseBonus:
		return fmt.Errorf("%w: ease bonuses must satisfy 0 <= good (%v) <= easy (%v)", ErrInvalidInput, sm.GoodEaseBonus, sm.EasyEaseBonus)
	case sm.EasyIntervalBonus < 1:
		return fmt.Errorf("%w: easy interval bonus %v must be at least 1", ErrInvalidInput, sm.EasyIntervalBonus)
	case sm.MaxInterval < 1:
		return fmt.Errorf("%w: max interval %d must be positive", ErrInvalidInput, sm.MaxInterval)
	case sm.FirstInterval < 1 || sm.SecondInterval < sm.FirstInterval || sm.SecondInterval > sm.MaxInterval:
		return fmt.Errorf("%w: intervals must satisfy 1 <= first (%d) <= second (%d) <= max (%d)",
			ErrInvalidInput, sm.FirstInterval, sm.SecondInterval, sm.MaxInterval)
	case sm.RelearnInterval < 0 || sm.RelearnInterval > sm.MaxInterval:
		return fmt.Errorf("%w: relearn interval %d out of range [0, %d]", ErrInvalidInput, sm.RelearnInterval, sm.MaxInterval)
	}
	return nil
}

// InitialRecord returns the state of a word on first exposure: nothing
// learned yet and due immediately.
func (sm *SM2) InitialRecord(now time.Time) models.ReviewRecord {
	return models.ReviewRecord{
		Repetitions:  0,
		IntervalDays: 0,
		EaseFactor:   sm.DefaultEase,
		DueAt:        now,
		Lapses:       0,
		SRSLevel:     models.LevelNew,
	}
}

// NextRecord computes the record that follows a review graded with quality
// at the instant now. The current record is not modified.
func (sm *SM2) NextRecord(current models.ReviewRecord, quality RecallQuality, now time.Time) (models.ReviewRecord, error) {
	if !quality.IsValid() {
		return models.ReviewRecord{}, fmt.Errorf("%w: recall quality %d", ErrInvalidInput, int(quality))
	}
	if err := CheckTime(now, "review"); err != nil {
		return models.ReviewRecord{}, err
	}
	if err := sm.checkRecord(current); err != nil {
		return models.ReviewRecord{}, err
	}

	next := current
	if quality == Again {
		// A lapse only counts if the word had been answered correctly
		if current.Repetitions > 0 {
			next.Lapses++
		}
		next.Repetitions = 0
		next.EaseFactor = math.Max(sm.MinEase, current.EaseFactor-sm.AgainPenalty)
		next.IntervalDays = sm.RelearnInterval
	} else {
		bonus := sm.GoodEaseBonus
		if quality == Easy {
			bonus = sm.EasyEaseBonus
		}
		next.EaseFactor = current.EaseFactor + bonus
		next.IntervalDays = sm.successInterval(current, next.EaseFactor, quality)
		next.Repetitions = current.Repetitions + 1
	}

	next.DueAt = now.Add(Days(next.IntervalDays))
	next.SRSLevel = levelFor(next.Repetitions, next.IntervalDays)
	return next, nil
}

// successInterval picks the interval after a Good or Easy answer
func (sm *SM2) successInterval(current models.ReviewRecord, ease float64, quality RecallQuality) int {
	switch current.Repetitions {
	case 0:
		// Stale intervals left after a manual reset are ignored
		return sm.FirstInterval
	case 1:
		return sm.SecondInterval
	}

	f := float64(current.IntervalDays) * ease
	if quality == Easy {
		f *= sm.EasyIntervalBonus
	}
	if f >= float64(sm.MaxInterval) {
		return sm.MaxInterval
	}

	interval := int(math.Round(f))
	if interval <= current.IntervalDays {
		interval = current.IntervalDays + 1
	}
	if interval > sm.MaxInterval {
		interval = sm.MaxInterval
	}
	return interval
}

// checkRecord rejects records that break the model's invariants
func (sm *SM2) checkRecord(r models.ReviewRecord) error {
	switch {
	case r.Repetitions < 0:
		return fmt.Errorf("%w: negative repetitions %d", ErrInvalidInput, r.Repetitions)
	case r.IntervalDays < 0:
		return fmt.Errorf("%w: negative interval %d", ErrInvalidInput, r.IntervalDays)
	case r.Lapses < 0:
		return fmt.Errorf("%w: negative lapses %d", ErrInvalidInput, r.Lapses)
	case math.IsNaN(r.EaseFactor) || math.IsInf(r.EaseFactor, 0):
		return fmt.Errorf("%w: ease factor %v is not finite", ErrInvalidInput, r.EaseFactor)
	case r.EaseFactor < sm.MinEase:
		return fmt.Errorf("%w: ease factor %v is below %v", ErrInvalidInput, r.EaseFactor, sm.MinEase)
	case !r.SRSLevel.IsValid():
		return fmt.Errorf("%w: unknown srs level %d", ErrInvalidInput, int(r.SRSLevel))
	}
	return nil
}

// levelFor derives the coarse level of a reviewed word
func levelFor(repetitions, intervalDays int) models.SRSLevel {
	switch {
	case repetitions >= masteredMinReps && intervalDays >= masteredMinInterval:
		return models.LevelMastered
	case repetitions > 0 && intervalDays >= reviewMinInterval:
		return models.LevelReview
	default:
		return models.LevelLearning
	}
}

// Days converts a number of days to a duration of exactly n*24h
func Days(n int) time.Duration {
	return time.Duration(n) * 24 * time.Hour
}
