package spaced_repetition

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/example/engstudy/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func mustNext(t *testing.T, sm *SM2, r models.ReviewRecord, q RecallQuality, now time.Time) models.ReviewRecord {
	t.Helper()
	next, err := sm.NextRecord(r, q, now)
	require.NoError(t, err)
	return next
}

func TestNewSM2Valid(t *testing.T) {
	require.NoError(t, NewSM2().Validate())
}

func TestSM2Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SM2)
	}{
		{"zero min ease", func(s *SM2) { s.MinEase = 0 }},
		{"default below min", func(s *SM2) { s.DefaultEase = 1.0 }},
		{"negative penalty", func(s *SM2) { s.AgainPenalty = -0.1 }},
		{"easy bonus below good", func(s *SM2) { s.GoodEaseBonus = 0.2; s.EasyEaseBonus = 0.1 }},
		{"easy interval bonus below one", func(s *SM2) { s.EasyIntervalBonus = 0.9 }},
		{"zero max interval", func(s *SM2) { s.MaxInterval = 0 }},
		{"zero first interval", func(s *SM2) { s.FirstInterval = 0 }},
		{"second before first", func(s *SM2) { s.FirstInterval = 4; s.SecondInterval = 3 }},
		{"second above max", func(s *SM2) { s.MaxInterval = 5 }},
		{"negative relearn", func(s *SM2) { s.RelearnInterval = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm := NewSM2()
			tt.mutate(sm)
			assert.ErrorIs(t, sm.Validate(), ErrInvalidInput)
		})
	}
}

func TestInitialRecord(t *testing.T) {
	r := NewSM2().InitialRecord(t0)

	assert.Equal(t, models.ReviewRecord{
		Repetitions:  0,
		IntervalDays: 0,
		EaseFactor:   2.5,
		DueAt:        t0,
		Lapses:       0,
		SRSLevel:     models.LevelNew,
	}, r)
}

func TestNextRecordFirstGood(t *testing.T) {
	sm := NewSM2()
	r := mustNext(t, sm, sm.InitialRecord(t0), Good, t0)

	assert.Equal(t, 1, r.Repetitions)
	assert.Equal(t, 1, r.IntervalDays)
	assert.Equal(t, 2.5, r.EaseFactor)
	assert.Equal(t, t0.Add(24*time.Hour), r.DueAt)
	assert.Equal(t, 0, r.Lapses)
	assert.Equal(t, models.LevelLearning, r.SRSLevel)
}

func TestNextRecordFirstEasyRaisesEase(t *testing.T) {
	sm := NewSM2()
	r := mustNext(t, sm, sm.InitialRecord(t0), Easy, t0)

	assert.Equal(t, 1, r.Repetitions)
	assert.Equal(t, 1, r.IntervalDays)
	assert.InDelta(t, 2.65, r.EaseFactor, 1e-9)
}

func TestNextRecordGoodSequence(t *testing.T) {
	sm := NewSM2()
	r := sm.InitialRecord(t0)

	wantIntervals := []int{1, 6, 15, 38, 95, 238, 365, 365}
	now := t0
	for i, want := range wantIntervals {
		r = mustNext(t, sm, r, Good, now)
		assert.Equalf(t, want, r.IntervalDays, "review %d", i+1)
		assert.Equal(t, i+1, r.Repetitions)
		now = r.DueAt
	}
	assert.Equal(t, models.LevelMastered, r.SRSLevel)
}

func TestNextRecordEasyGrowsFasterThanGood(t *testing.T) {
	sm := NewSM2()
	r := models.ReviewRecord{Repetitions: 3, IntervalDays: 10, EaseFactor: 2.5, DueAt: t0, SRSLevel: models.LevelReview}

	good := mustNext(t, sm, r, Good, t0)
	easy := mustNext(t, sm, r, Easy, t0)

	assert.Equal(t, 25, good.IntervalDays)
	// round(10 * 2.65 * 1.3) = round(34.45)
	assert.Equal(t, 34, easy.IntervalDays)
	assert.Greater(t, easy.EaseFactor, good.EaseFactor)
}

func TestNextRecordIntervalAlwaysGrows(t *testing.T) {
	sm := NewSM2()
	// Stale zero interval after two repetitions still moves forward
	r := models.ReviewRecord{Repetitions: 2, IntervalDays: 0, EaseFactor: 1.3, DueAt: t0, SRSLevel: models.LevelLearning}

	next := mustNext(t, sm, r, Good, t0)
	assert.Equal(t, 1, next.IntervalDays)
}

func TestNextRecordRepetitionsZeroIgnoresStaleInterval(t *testing.T) {
	sm := NewSM2()
	r := models.ReviewRecord{Repetitions: 0, IntervalDays: 120, EaseFactor: 2.5, DueAt: t0, SRSLevel: models.LevelNew}

	for _, q := range []RecallQuality{Good, Easy} {
		next := mustNext(t, sm, r, q, t0)
		assert.Equal(t, sm.FirstInterval, next.IntervalDays, q.String())
		assert.Equal(t, 1, next.Repetitions)
	}
}

func TestNextRecordMaxInterval(t *testing.T) {
	sm := NewSM2()
	sm.MaxInterval = 30
	r := models.ReviewRecord{Repetitions: 5, IntervalDays: 100000, EaseFactor: 3.0, DueAt: t0, SRSLevel: models.LevelMastered}

	next := mustNext(t, sm, r, Easy, t0)
	assert.Equal(t, 30, next.IntervalDays)
	assert.Equal(t, t0.Add(30*24*time.Hour), next.DueAt)
}

func TestNextRecordAgain(t *testing.T) {
	sm := NewSM2()
	r := models.ReviewRecord{Repetitions: 4, IntervalDays: 40, EaseFactor: 2.5, DueAt: t0, Lapses: 2, SRSLevel: models.LevelMastered}

	next := mustNext(t, sm, r, Again, t0)

	assert.Equal(t, 0, next.Repetitions)
	assert.Equal(t, sm.RelearnInterval, next.IntervalDays)
	assert.InDelta(t, 2.3, next.EaseFactor, 1e-9)
	assert.Equal(t, 3, next.Lapses)
	assert.Equal(t, t0.Add(24*time.Hour), next.DueAt)
	assert.Equal(t, models.LevelLearning, next.SRSLevel)
}

func TestNextRecordAgainOnUnlearnedWordIsNotALapse(t *testing.T) {
	sm := NewSM2()
	r := mustNext(t, sm, sm.InitialRecord(t0), Again, t0)
	assert.Equal(t, 0, r.Lapses)

	r = mustNext(t, sm, r, Again, t0)
	assert.Equal(t, 0, r.Lapses)
}

func TestNextRecordDoesNotMutateInput(t *testing.T) {
	sm := NewSM2()
	r := models.ReviewRecord{Repetitions: 2, IntervalDays: 6, EaseFactor: 2.5, DueAt: t0, SRSLevel: models.LevelLearning}
	before := r

	_ = mustNext(t, sm, r, Again, t0.Add(time.Hour))
	assert.Equal(t, before, r)
}

func TestNextRecordInvalidInput(t *testing.T) {
	sm := NewSM2()
	valid := sm.InitialRecord(t0)

	tests := []struct {
		name    string
		record  models.ReviewRecord
		quality RecallQuality
		now     time.Time
	}{
		{"quality zero", valid, RecallQuality(0), t0},
		{"quality out of range", valid, RecallQuality(4), t0},
		{"zero time", valid, Good, time.Time{}},
		{"pre-epoch time", valid, Good, time.Unix(-86400, 0)},
		{"negative repetitions", models.ReviewRecord{Repetitions: -1, EaseFactor: 2.5}, Good, t0},
		{"negative interval", models.ReviewRecord{IntervalDays: -3, EaseFactor: 2.5}, Good, t0},
		{"negative lapses", models.ReviewRecord{Lapses: -1, EaseFactor: 2.5}, Good, t0},
		{"ease below floor", models.ReviewRecord{EaseFactor: 1.0}, Good, t0},
		{"ease NaN", models.ReviewRecord{EaseFactor: math.NaN()}, Good, t0},
		{"ease Inf", models.ReviewRecord{EaseFactor: math.Inf(1)}, Good, t0},
		{"unknown level", models.ReviewRecord{EaseFactor: 2.5, SRSLevel: 9}, Good, t0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sm.NextRecord(tt.record, tt.quality, tt.now)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestScenarioLapseRecovery(t *testing.T) {
	sm := NewSM2()
	r := sm.InitialRecord(t0)

	now := t0
	prev := -1
	peakEase := r.EaseFactor
	for i := 0; i < 3; i++ {
		r = mustNext(t, sm, r, Good, now)
		assert.Greater(t, r.IntervalDays, prev)
		prev = r.IntervalDays
		peakEase = math.Max(peakEase, r.EaseFactor)
		now = r.DueAt
	}

	r = mustNext(t, sm, r, Again, now)
	assert.Equal(t, 0, r.Repetitions)
	assert.Equal(t, sm.RelearnInterval, r.IntervalDays)
	assert.Equal(t, 1, r.Lapses)
	assert.Less(t, r.EaseFactor, peakEase)
}

// randomRecord walks a fresh record through a random review history
func randomRecord(sm *SM2, rng *rand.Rand, steps int) models.ReviewRecord {
	r := sm.InitialRecord(t0)
	now := t0
	for i := 0; i < steps; i++ {
		q := RecallQuality(rng.Intn(3) + 1)
		r, _ = sm.NextRecord(r, q, now)
		now = now.Add(time.Duration(rng.Intn(72)) * time.Hour)
	}
	return r
}

func TestPropertyEaseNonRegressionOnSuccess(t *testing.T) {
	sm := NewSM2()
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		r := randomRecord(sm, rng, rng.Intn(20))
		good := mustNext(t, sm, r, Good, t0)
		easy := mustNext(t, sm, r, Easy, t0)

		assert.GreaterOrEqual(t, good.EaseFactor, r.EaseFactor)
		assert.GreaterOrEqual(t, easy.EaseFactor, good.EaseFactor)
	}
}

func TestPropertyEaseFloor(t *testing.T) {
	sm := NewSM2()
	r := models.ReviewRecord{Repetitions: 8, IntervalDays: 200, EaseFactor: 3.1, DueAt: t0, SRSLevel: models.LevelMastered}

	for i := 0; i < 50; i++ {
		r = mustNext(t, sm, r, Again, t0)
		assert.GreaterOrEqual(t, r.EaseFactor, sm.MinEase)
	}
	assert.Equal(t, sm.MinEase, r.EaseFactor)
}

func TestPropertyIntervalNonNegativeAndDueConsistent(t *testing.T) {
	sm := NewSM2()
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		r := randomRecord(sm, rng, rng.Intn(30))
		now := t0.Add(time.Duration(rng.Int63n(int64(400 * 24 * time.Hour))))
		for _, q := range []RecallQuality{Again, Good, Easy} {
			next := mustNext(t, sm, r, q, now)
			assert.GreaterOrEqual(t, next.IntervalDays, 0)
			assert.Equal(t, now.Add(Days(next.IntervalDays)), next.DueAt)
			assert.True(t, next.SRSLevel.IsValid())
		}
	}
}

func TestNextRecordDeterministic(t *testing.T) {
	sm := NewSM2()
	r := models.ReviewRecord{Repetitions: 3, IntervalDays: 15, EaseFactor: 2.2, DueAt: t0, SRSLevel: models.LevelReview}

	a := mustNext(t, sm, r, Easy, t0)
	b := mustNext(t, sm, r, Easy, t0)
	assert.Equal(t, a, b)
}

func TestLevelFor(t *testing.T) {
	tests := []struct {
		reps, interval int
		want           models.SRSLevel
	}{
		{0, 1, models.LevelLearning},
		{1, 1, models.LevelLearning},
		{2, 6, models.LevelLearning},
		{2, 7, models.LevelReview},
		{2, 30, models.LevelReview},
		{3, 21, models.LevelMastered},
		{0, 30, models.LevelLearning},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, levelFor(tt.reps, tt.interval), "levelFor(%d, %d)", tt.reps, tt.interval)
	}
}
