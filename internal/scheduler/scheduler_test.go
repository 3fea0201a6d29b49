package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/example/engstudy/internal/config"
	"github.com/example/engstudy/internal/notify"
	sr "github.com/example/engstudy/internal/spaced_repetition"
	"github.com/example/engstudy/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUsers struct {
	byHour map[int][]models.User
	err    error
}

func (f *fakeUsers) ListForNotification(_ context.Context, hour int) ([]models.User, error) {
	return f.byHour[hour], f.err
}

func (f *fakeUsers) GetByID(_ context.Context, id int64) (*models.User, error) {
	for _, users := range f.byHour {
		for _, u := range users {
			if u.ID == id {
				u := u
				return &u, nil
			}
		}
	}
	return nil, errors.New("not found")
}

type fakeStudy struct {
	due map[int64]int
}

func (f *fakeStudy) DueCount(_ context.Context, userID int64, _ time.Time) (int, error) {
	return f.due[userID], nil
}

func (f *fakeStudy) LimitsFor(user *models.User) sr.Limits {
	limits := sr.Limits{MaxReview: 50}
	if user.MaxReviewPerSession > 0 {
		limits.MaxReview = user.MaxReviewPerSession
	}
	return limits
}

type recordingNotifier struct {
	reminders []notify.Reminder
	errFor    map[int64]error
}

func (r *recordingNotifier) Notify(_ context.Context, rem notify.Reminder) error {
	if err := r.errFor[rem.User.ID]; err != nil {
		return err
	}
	r.reminders = append(r.reminders, rem)
	return nil
}

var notifyCfg = config.Notify{
	Enabled:       true,
	StartHour:     8,
	EndHour:       22,
	CheckInterval: time.Hour,
}

func clockAt(hour int) func() time.Time {
	return func() time.Time { return time.Date(2026, 3, 10, hour, 15, 0, 0, time.UTC) }
}

func newTestScheduler(cfg config.Notify, hour int, users *fakeUsers, study *fakeStudy, n *recordingNotifier) *Scheduler {
	return New(cfg, users, study, n, nil, WithClock(clockAt(hour)), WithLocation(time.UTC))
}

func TestCheckAndSendReminders(t *testing.T) {
	users := &fakeUsers{byHour: map[int][]models.User{
		9: {
			{ID: 1, Username: "lan"},
			{ID: 2, Username: "minh", MaxReviewPerSession: 5},
			{ID: 3, Username: "hoa"},
			{ID: 4, Username: "tuan"},
		},
	}}
	study := &fakeStudy{due: map[int64]int{1: 3, 2: 40, 3: 0, 4: 8}}
	n := &recordingNotifier{errFor: map[int64]error{4: errors.New("network")}}

	s := newTestScheduler(notifyCfg, 9, users, study, n)
	sent, err := s.CheckAndSendReminders(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, sent)
	require.Len(t, n.reminders, 2)
	assert.Equal(t, int64(1), n.reminders[0].User.ID)
	assert.Equal(t, 3, n.reminders[0].DueCount)
	assert.Equal(t, 5, n.reminders[1].DueCount, "capped by the user's review limit")

	// same hour, nobody is reminded twice
	sent, err = s.CheckAndSendReminders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, sent)
	assert.Len(t, n.reminders, 2)
}

func TestCheckAndSendRemindersOutsideWindow(t *testing.T) {
	users := &fakeUsers{byHour: map[int][]models.User{23: {{ID: 1}}}}
	n := &recordingNotifier{}

	s := newTestScheduler(notifyCfg, 23, users, &fakeStudy{due: map[int64]int{1: 3}}, n)
	sent, err := s.CheckAndSendReminders(context.Background())
	require.NoError(t, err)
	assert.Zero(t, sent)
	assert.Empty(t, n.reminders)
}

func TestCheckAndSendRemindersDisabled(t *testing.T) {
	cfg := notifyCfg
	cfg.Enabled = false
	users := &fakeUsers{byHour: map[int][]models.User{9: {{ID: 1}}}}
	n := &recordingNotifier{}

	s := newTestScheduler(cfg, 9, users, &fakeStudy{due: map[int64]int{1: 3}}, n)
	sent, err := s.CheckAndSendReminders(context.Background())
	require.NoError(t, err)
	assert.Zero(t, sent)
}

func TestCheckAndSendRemindersSkipsUsersWithoutChannel(t *testing.T) {
	users := &fakeUsers{byHour: map[int][]models.User{9: {{ID: 1}}}}
	n := &recordingNotifier{errFor: map[int64]error{1: notify.ErrNoAddress}}

	s := newTestScheduler(notifyCfg, 9, users, &fakeStudy{due: map[int64]int{1: 3}}, n)
	sent, err := s.CheckAndSendReminders(context.Background())
	require.NoError(t, err)
	assert.Zero(t, sent)
}

func TestCheckAndSendRemindersListError(t *testing.T) {
	users := &fakeUsers{err: errors.New("db down")}
	s := newTestScheduler(notifyCfg, 9, users, &fakeStudy{}, &recordingNotifier{})

	_, err := s.CheckAndSendReminders(context.Background())
	assert.ErrorContains(t, err, "db down")
}

func TestRunManualCheck(t *testing.T) {
	users := &fakeUsers{byHour: map[int][]models.User{20: {{ID: 1}, {ID: 2}}}}
	study := &fakeStudy{due: map[int64]int{1: 12}}
	n := &recordingNotifier{}

	// manual checks ignore the notification window
	s := newTestScheduler(notifyCfg, 3, users, study, n)

	ok, err := s.RunManualCheck(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, ok)
	require.Len(t, n.reminders, 1)
	assert.Equal(t, 12, n.reminders[0].DueCount)

	ok, err = s.RunManualCheck(context.Background(), 2)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = s.RunManualCheck(context.Background(), 99)
	assert.Error(t, err)
}

func TestInWindow(t *testing.T) {
	s := New(notifyCfg, nil, nil, nil, nil)
	assert.False(t, s.InWindow(7))
	assert.True(t, s.InWindow(8))
	assert.True(t, s.InWindow(22))
	assert.False(t, s.InWindow(23))
}

func TestStartStop(t *testing.T) {
	users := &fakeUsers{byHour: map[int][]models.User{9: {{ID: 1}}}}
	n := &recordingNotifier{}
	s := newTestScheduler(notifyCfg, 9, users, &fakeStudy{due: map[int64]int{1: 1}}, n)

	require.NoError(t, s.Start(context.Background()))
	s.Stop()
}
