package study

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/example/engstudy/internal/config"
	"github.com/example/engstudy/internal/database"
	sr "github.com/example/engstudy/internal/spaced_repetition"
	"github.com/example/engstudy/pkg/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service ties the scheduler core to the catalog and progress stores
type Service struct {
	catalog  CatalogProvider
	records  RecordStore
	history  ReviewLogStore
	users    UserStore
	sm2      *sr.SM2
	defaults sr.Limits
	locks    *userLocks
	newID    func() string
	log      *zap.Logger
}

// Deps groups the stores the service works with
type Deps struct {
	Catalog CatalogProvider
	Records RecordStore
	History ReviewLogStore
	Users   UserStore
}

// NewService creates a study service. defaults apply to users without
// their own session limits.
func NewService(deps Deps, sm2 *sr.SM2, defaults sr.Limits, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		catalog:  deps.Catalog,
		records:  deps.Records,
		history:  deps.History,
		users:    deps.Users,
		sm2:      sm2,
		defaults: defaults,
		locks:    newUserLocks(),
		newID:    uuid.NewString,
		log:      log,
	}
}

// SchedulerFromConfig builds the SM-2 tunables from configuration
func SchedulerFromConfig(cfg config.SRS) (*sr.SM2, error) {
	sm2 := sr.NewSM2()
	sm2.DefaultEase = cfg.DefaultEase
	sm2.MinEase = cfg.MinEase
	sm2.AgainPenalty = cfg.AgainPenalty
	sm2.EasyEaseBonus = cfg.EasyEaseBonus
	sm2.EasyIntervalBonus = cfg.EasyIntervalBonus
	sm2.FirstInterval = cfg.FirstInterval
	sm2.SecondInterval = cfg.SecondInterval
	sm2.RelearnInterval = cfg.RelearnInterval
	sm2.MaxInterval = cfg.MaxInterval

	if err := sm2.Validate(); err != nil {
		return nil, err
	}
	return sm2, nil
}

// LimitsFromConfig returns the default session limits
func LimitsFromConfig(cfg config.SRS) sr.Limits {
	return sr.Limits{MaxReview: cfg.MaxReviewPerSession, MaxNew: cfg.MaxNewPerSession}
}

func (s *Service) user(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, database.ErrNotFound) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownUser, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user %d: %w", userID, err)
	}
	return user, nil
}

// LimitsFor returns the user's session limits, falling back to the defaults
func (s *Service) LimitsFor(user *models.User) sr.Limits {
	limits := s.defaults
	if user.MaxNewPerSession > 0 {
		limits.MaxNew = user.MaxNewPerSession
	}
	if user.MaxReviewPerSession > 0 {
		limits.MaxReview = user.MaxReviewPerSession
	}
	return limits
}

func (s *Service) load(ctx context.Context, userID int64) ([]models.Word, map[string]models.ReviewRecord, error) {
	catalog, err := s.catalog.Catalog(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	records, err := s.records.LoadRecords(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load records: %w", err)
	}
	return catalog, records, nil
}

// PlanSession lists the words for the user's next study session
func (s *Service) PlanSession(ctx context.Context, userID int64, now time.Time) (models.SessionPlan, error) {
	user, err := s.user(ctx, userID)
	if err != nil {
		return models.SessionPlan{}, err
	}

	catalog, records, err := s.load(ctx, userID)
	if err != nil {
		return models.SessionPlan{}, err
	}

	plan, err := sr.BuildSession(catalog, records, now, s.LimitsFor(user))
	if err != nil {
		return models.SessionPlan{}, err
	}

	s.log.Debug("session planned",
		zap.Int64("user_id", userID),
		zap.Int("due", len(plan.Due)),
		zap.Int("new", len(plan.New)),
	)
	return plan, nil
}

// SubmitReview grades one recall of word and stores the new schedule
func (s *Service) SubmitReview(ctx context.Context, userID int64, word string, quality sr.RecallQuality, now time.Time) (models.ReviewRecord, error) {
	if !quality.IsValid() {
		return models.ReviewRecord{}, fmt.Errorf("%w: unknown recall quality %d", sr.ErrInvalidInput, int(quality))
	}

	if _, err := s.catalog.GetByKey(ctx, word); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return models.ReviewRecord{}, fmt.Errorf("%w: %q", ErrUnknownWord, word)
		}
		return models.ReviewRecord{}, fmt.Errorf("failed to look up word %q: %w", word, err)
	}

	unlock := s.locks.lock(userID)
	defer unlock()

	records, err := s.records.LoadRecords(ctx, userID)
	if err != nil {
		return models.ReviewRecord{}, fmt.Errorf("failed to load records: %w", err)
	}

	current, ok := records[word]
	if !ok {
		current = s.sm2.InitialRecord(now)
	}

	next, err := s.sm2.NextRecord(current, quality, now)
	if err != nil {
		return models.ReviewRecord{}, err
	}

	if err := s.records.SaveRecord(ctx, userID, word, next); err != nil {
		return models.ReviewRecord{}, fmt.Errorf("failed to save record: %w", err)
	}

	entry := models.ReviewLog{
		ID:           s.newID(),
		UserID:       userID,
		WordKey:      word,
		Quality:      quality.String(),
		IntervalDays: next.IntervalDays,
		EaseFactor:   next.EaseFactor,
		ReviewedAt:   now,
	}
	// Запись уже сохранена, потеря истории не должна откатывать повторение
	if err := s.history.AppendReviewLog(ctx, entry); err != nil {
		s.log.Warn("failed to append review log",
			zap.Int64("user_id", userID),
			zap.String("word", word),
			zap.Error(err),
		)
	}

	s.log.Info("review submitted",
		zap.Int64("user_id", userID),
		zap.String("word", word),
		zap.Stringer("quality", quality),
		zap.Int("interval_days", next.IntervalDays),
		zap.Stringer("level", next.SRSLevel),
	)
	return next, nil
}

// ResetProgress forgets the user's progress on the given words
func (s *Service) ResetProgress(ctx context.Context, userID int64, words []string) error {
	if len(words) == 0 {
		return nil
	}

	unlock := s.locks.lock(userID)
	defer unlock()

	records, err := s.records.LoadRecords(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load records: %w", err)
	}

	if err := s.records.ReplaceRecords(ctx, userID, sr.ResetRecords(records, words)); err != nil {
		return fmt.Errorf("failed to replace records: %w", err)
	}

	s.log.Info("progress reset", zap.Int64("user_id", userID), zap.Strings("words", words))
	return nil
}

// ResetAll forgets all of the user's progress
func (s *Service) ResetAll(ctx context.Context, userID int64) error {
	unlock := s.locks.lock(userID)
	defer unlock()

	if err := s.records.ReplaceRecords(ctx, userID, map[string]models.ReviewRecord{}); err != nil {
		return fmt.Errorf("failed to replace records: %w", err)
	}

	s.log.Info("all progress reset", zap.Int64("user_id", userID))
	return nil
}

// Progress returns dashboard statistics for the user
func (s *Service) Progress(ctx context.Context, userID int64, now time.Time) (models.Progress, error) {
	if _, err := s.user(ctx, userID); err != nil {
		return models.Progress{}, err
	}

	catalog, records, err := s.load(ctx, userID)
	if err != nil {
		return models.Progress{}, err
	}

	plan, err := sr.BuildSession(catalog, records, now, sr.Limits{})
	if err != nil {
		return models.Progress{}, err
	}

	reviews, err := s.history.CountReviewsSince(ctx, userID, startOfDay(now))
	if err != nil {
		return models.Progress{}, fmt.Errorf("failed to count reviews: %w", err)
	}

	return models.Progress{
		CatalogSize:  plan.CatalogSize,
		TotalLearned: plan.TotalLearned,
		DueNow:       plan.DueTotal,
		ReviewsToday: reviews,
		Levels:       sr.LevelCounts(catalog, records),
	}, nil
}

// DueCount returns how many catalog words are due for the user
func (s *Service) DueCount(ctx context.Context, userID int64, now time.Time) (int, error) {
	if err := sr.CheckTime(now, "due"); err != nil {
		return 0, err
	}
	n, err := s.records.CountDue(ctx, userID, now)
	if err != nil {
		return 0, fmt.Errorf("failed to count due records: %w", err)
	}
	return n, nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
