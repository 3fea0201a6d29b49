package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/example/engstudy/internal/config"
	"github.com/example/engstudy/internal/notify"
	sr "github.com/example/engstudy/internal/spaced_repetition"
	"github.com/example/engstudy/pkg/models"
	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

// UserSource lists learners who want reminders
type UserSource interface {
	ListForNotification(ctx context.Context, hour int) ([]models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// DueCounter reports how many words wait for review
type DueCounter interface {
	DueCount(ctx context.Context, userID int64, now time.Time) (int, error)
	LimitsFor(user *models.User) sr.Limits
}

// Scheduler manages scheduled tasks for the application
type Scheduler struct {
	scheduler *gocron.Scheduler
	users     UserSource
	study     DueCounter
	notifier  notify.Notifier
	cfg       config.Notify
	now       func() time.Time
	loc       *time.Location
	log       *zap.Logger

	mu   sync.Mutex
	ctx  context.Context
	sent map[int64]string // последний час отправки по пользователю
}

// Option configures a Scheduler
type Option func(*Scheduler)

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) { s.now = now }
}

// WithLocation sets the time zone notification hours are read in
func WithLocation(loc *time.Location) Option {
	return func(s *Scheduler) { s.loc = loc }
}

// New creates a new scheduler instance
func New(cfg config.Notify, users UserSource, study DueCounter, notifier notify.Notifier, log *zap.Logger, opts ...Option) *Scheduler {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Scheduler{
		users:    users,
		study:    study,
		notifier: notifier,
		cfg:      cfg,
		now:      time.Now,
		loc:      time.Local,
		log:      log,
		ctx:      context.Background(),
		sent:     make(map[int64]string),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.scheduler = gocron.NewScheduler(s.loc)
	return s
}

// Start begins running all scheduled tasks. Jobs stop seeing ctx once it
// is cancelled; Stop still has to be called.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	s.ctx = ctx
	s.mu.Unlock()

	interval := s.cfg.CheckInterval
	if interval <= 0 {
		interval = time.Hour
	}

	_, err := s.scheduler.Every(interval).Do(func() {
		if _, err := s.CheckAndSendReminders(s.jobContext()); err != nil {
			s.log.Error("reminder check failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule reminders: %w", err)
	}

	// Start the scheduler in a non-blocking manner
	s.scheduler.StartAsync()
	s.log.Info("reminder scheduler started",
		zap.Duration("interval", interval),
		zap.Int("start_hour", s.cfg.StartHour),
		zap.Int("end_hour", s.cfg.EndHour),
	)
	return nil
}

// Stop terminates all scheduled tasks
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
	s.log.Info("reminder scheduler stopped")
}

func (s *Scheduler) jobContext() context.Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctx
}

// InWindow reports whether hour falls inside the notification window
func (s *Scheduler) InWindow(hour int) bool {
	return hour >= s.cfg.StartHour && hour <= s.cfg.EndHour
}

// CheckAndSendReminders notifies users whose reminder hour is now and
// returns how many reminders went out. Each user gets at most one
// reminder per hour.
func (s *Scheduler) CheckAndSendReminders(ctx context.Context) (int, error) {
	if !s.cfg.Enabled {
		return 0, nil
	}

	now := s.now().In(s.loc)
	hour := now.Hour()

	// Проверяем, находится ли текущий час в диапазоне времени для отправки уведомлений
	if !s.InWindow(hour) {
		s.log.Debug("outside notification hours, skipping reminders",
			zap.Int("hour", hour),
			zap.Int("start_hour", s.cfg.StartHour),
			zap.Int("end_hour", s.cfg.EndHour),
		)
		return 0, nil
	}

	users, err := s.users.ListForNotification(ctx, hour)
	if err != nil {
		return 0, fmt.Errorf("failed to get users for notification: %w", err)
	}

	slot := now.Format("2006-01-02T15")
	sent := 0
	for i := range users {
		user := users[i]
		if err := ctx.Err(); err != nil {
			return sent, err
		}
		if s.alreadySent(user.ID, slot) {
			continue
		}

		ok, err := s.remind(ctx, &user, now)
		if err != nil {
			s.log.Error("failed to send reminder", zap.Int64("user_id", user.ID), zap.Error(err))
			continue
		}
		if ok {
			s.markSent(user.ID, slot)
			sent++
		}
	}

	s.log.Info("reminders sent", zap.Int("hour", hour), zap.Int("users", len(users)), zap.Int("sent", sent))
	return sent, nil
}

// RunManualCheck forces a check for a specific user, ignoring the
// notification window. It reports whether a reminder was sent.
func (s *Scheduler) RunManualCheck(ctx context.Context, userID int64) (bool, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return false, err
	}
	return s.remind(ctx, user, s.now().In(s.loc))
}

func (s *Scheduler) remind(ctx context.Context, user *models.User, now time.Time) (bool, error) {
	count, err := s.study.DueCount(ctx, user.ID, now)
	if err != nil {
		return false, fmt.Errorf("failed to count due words: %w", err)
	}
	if count == 0 {
		return false, nil
	}

	// Don't announce more than the user's review limit
	if limit := s.study.LimitsFor(user).MaxReview; limit > 0 && count > limit {
		count = limit
	}

	err = s.notifier.Notify(ctx, notify.Reminder{User: *user, DueCount: count, At: now})
	if errors.Is(err, notify.ErrNoAddress) {
		s.log.Debug("user has no reminder channel", zap.Int64("user_id", user.ID))
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *Scheduler) alreadySent(userID int64, slot string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sent[userID] == slot
}

func (s *Scheduler) markSent(userID int64, slot string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent[userID] = slot
}
