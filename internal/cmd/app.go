package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/example/engstudy/internal/config"
	"github.com/example/engstudy/internal/database"
	"github.com/example/engstudy/internal/excel"
	"github.com/example/engstudy/internal/notify"
	"github.com/example/engstudy/internal/study"
	"github.com/example/engstudy/pkg/models"
	"go.uber.org/zap"
)

// App holds the wired components the commands work with
type App struct {
	Config   *config.Config
	Words    *database.WordRepository
	Users    *database.UserRepository
	History  *database.ReviewLogRepository
	Study    *study.Service
	Importer *excel.Importer
	Log      *zap.Logger
	Now      func() time.Time

	// NewNotifier builds the reminder channels, replaced in tests
	NewNotifier func(ctx context.Context) (notify.Notifier, error)
}

// NewApp wires repositories and services over an open database
func NewApp(cfg *config.Config, db *database.DB, log *zap.Logger) (*App, error) {
	sm2, err := study.SchedulerFromConfig(cfg.SRS)
	if err != nil {
		return nil, fmt.Errorf("invalid srs config: %w", err)
	}

	words := database.NewWordRepository(db)
	users := database.NewUserRepository(db)
	history := database.NewReviewLogRepository(db)

	svc := study.NewService(study.Deps{
		Catalog: words,
		Records: database.NewReviewRecordRepository(db),
		History: history,
		Users:   users,
	}, sm2, study.LimitsFromConfig(cfg.SRS), log.Named("study"))

	app := &App{
		Config:   cfg,
		Words:    words,
		Users:    users,
		History:  history,
		Study:    svc,
		Importer: excel.NewImporter(words, log.Named("import")),
		Log:      log,
		Now:      time.Now,
	}
	app.NewNotifier = app.buildNotifier
	return app, nil
}

// buildNotifier enables every channel that has credentials configured
func (a *App) buildNotifier(ctx context.Context) (notify.Notifier, error) {
	log := a.Log.Named("notify")
	var channels []notify.Notifier

	if token := a.Config.Notify.TelegramToken; token != "" {
		tg, err := notify.NewTelegramNotifier(token, log)
		if err != nil {
			return nil, err
		}
		channels = append(channels, tg)
	}

	email, err := notify.NewEmailNotifier(ctx, a.Config.Notify.SES, log)
	if err != nil {
		return nil, err
	}
	if email != nil {
		channels = append(channels, email)
	}

	if len(channels) == 0 {
		log.Warn("no reminder channel configured, set TELEGRAM_BOT_TOKEN or SES_FROM_EMAIL")
	}
	return notify.NewMulti(log, channels...).WithAudit(notify.NewLogNotifier(log)), nil
}

// userByName resolves the --user flag
func (a *App) userByName(ctx context.Context, username string) (*models.User, error) {
	if username == "" {
		return nil, errors.New("--user is required")
	}
	user, err := a.Users.GetByUsername(ctx, username)
	if errors.Is(err, database.ErrNotFound) {
		return nil, fmt.Errorf("user %q does not exist, create it with \"user add\"", username)
	}
	return user, err
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
