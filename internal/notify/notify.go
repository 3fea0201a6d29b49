package notify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/example/engstudy/pkg/models"
	"go.uber.org/zap"
)

// ErrNoAddress means the user has no address for a channel
var ErrNoAddress = errors.New("notify: no address for channel")

// Reminder tells a user that words are waiting for review
type Reminder struct {
	User     models.User
	DueCount int
	At       time.Time
}

// Notifier delivers reminders over one channel
type Notifier interface {
	Notify(ctx context.Context, r Reminder) error
}

// Subject returns the reminder title
func Subject(r Reminder) string {
	return fmt.Sprintf("Đến giờ ôn tập: %d từ", r.DueCount)
}

// Text returns the plain text reminder body
func Text(r Reminder) string {
	name := r.User.DisplayName
	if name == "" {
		name = r.User.Username
	}
	return fmt.Sprintf("Xin chào %s!\n\nBạn có %d từ cần ôn tập hôm nay. Ôn đúng hạn giúp bạn nhớ từ lâu hơn.", name, r.DueCount)
}

// Multi fans a reminder out to several channels. Channels without an
// address for the user are skipped. Audit notifiers see delivered
// reminders only and never count as a delivery.
type Multi struct {
	notifiers []Notifier
	audit     []Notifier
	log       *zap.Logger
}

// NewMulti creates a fan-out notifier. nil entries are ignored.
func NewMulti(log *zap.Logger, notifiers ...Notifier) *Multi {
	if log == nil {
		log = zap.NewNop()
	}
	m := &Multi{log: log}
	for _, n := range notifiers {
		if n != nil {
			m.notifiers = append(m.notifiers, n)
		}
	}
	return m
}

// WithAudit adds notifiers that record delivered reminders
func (m *Multi) WithAudit(notifiers ...Notifier) *Multi {
	for _, n := range notifiers {
		if n != nil {
			m.audit = append(m.audit, n)
		}
	}
	return m
}

// Notify sends through every channel and joins the failures. It returns
// ErrNoAddress when no channel could reach the user.
func (m *Multi) Notify(ctx context.Context, r Reminder) error {
	var (
		errs      []error
		delivered int
	)
	for _, n := range m.notifiers {
		err := n.Notify(ctx, r)
		switch {
		case err == nil:
			delivered++
		case errors.Is(err, ErrNoAddress):
			m.log.Debug("channel skipped", zap.Int64("user_id", r.User.ID), zap.Error(err))
		default:
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	if delivered == 0 {
		return fmt.Errorf("user %d: %w", r.User.ID, ErrNoAddress)
	}

	for _, a := range m.audit {
		if err := a.Notify(ctx, r); err != nil {
			m.log.Warn("audit notifier failed", zap.Int64("user_id", r.User.ID), zap.Error(err))
		}
	}
	return nil
}

// LogNotifier writes reminders to the log
type LogNotifier struct {
	log *zap.Logger
}

// NewLogNotifier creates a notifier backed by the logger
func NewLogNotifier(log *zap.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(_ context.Context, r Reminder) error {
	n.log.Info("review reminder",
		zap.Int64("user_id", r.User.ID),
		zap.String("username", r.User.Username),
		zap.Int("due", r.DueCount),
		zap.Time("at", r.At),
	)
	return nil
}
