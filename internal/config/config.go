package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/example/engstudy/pkg/validator"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	Env      string   `mapstructure:"env" validate:"oneof=development production"`
	LogLevel string   `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	Database Database `mapstructure:"db"`
	SRS      SRS      `mapstructure:"srs"`
	Notify   Notify   `mapstructure:"notify"`
}

// Database selects the storage backend
type Database struct {
	Type            string        `mapstructure:"type" validate:"oneof=sqlite postgres mysql"`
	Path            string        `mapstructure:"path" validate:"required_if=Type sqlite"`
	URL             string        `mapstructure:"url" validate:"required_unless=Type sqlite"`
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"min=1,max=1000"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"min=0,max=100"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime" validate:"min=0"`
}

// SRS holds scheduler tunables and default session limits.
// Zero session limits mean no cap.
type SRS struct {
	MaxNewPerSession    int     `mapstructure:"max_new_per_session" validate:"min=0"`
	MaxReviewPerSession int     `mapstructure:"max_review_per_session" validate:"min=0"`
	DefaultEase         float64 `mapstructure:"default_ease" validate:"gt=0"`
	MinEase             float64 `mapstructure:"min_ease" validate:"gt=0"`
	AgainPenalty        float64 `mapstructure:"again_penalty" validate:"min=0"`
	EasyEaseBonus       float64 `mapstructure:"easy_ease_bonus" validate:"min=0"`
	EasyIntervalBonus   float64 `mapstructure:"easy_interval_bonus" validate:"min=1"`
	FirstInterval       int     `mapstructure:"first_interval" validate:"min=1"`
	SecondInterval      int     `mapstructure:"second_interval" validate:"min=1"`
	RelearnInterval     int     `mapstructure:"relearn_interval" validate:"min=0"`
	MaxInterval         int     `mapstructure:"max_interval" validate:"min=1"`
}

// Notify configures review reminders
type Notify struct {
	Enabled       bool          `mapstructure:"enabled"`
	StartHour     int           `mapstructure:"start_hour" validate:"min=0,max=23"`
	EndHour       int           `mapstructure:"end_hour" validate:"min=0,max=23,gtefield=StartHour"`
	CheckInterval time.Duration `mapstructure:"check_interval" validate:"min=1m"`
	TelegramToken string        `mapstructure:"telegram_token"`
	SES           SES           `mapstructure:"ses"`
}

// SES configures email reminders through Amazon SES
type SES struct {
	Region    string `mapstructure:"region"`
	FromEmail string `mapstructure:"from_email" validate:"omitempty,email"`
	FromName  string `mapstructure:"from_name"`
}

// Имена переменных окружения для ключей конфигурации
var envBindings = map[string]string{
	"env":                        "ENV",
	"log_level":                  "LOG_LEVEL",
	"db.type":                    "DB_TYPE",
	"db.path":                    "DB_PATH",
	"db.url":                     "DATABASE_URL",
	"db.max_open_conns":          "DB_MAX_OPEN_CONNS",
	"srs.max_new_per_session":    "SRS_MAX_NEW",
	"srs.max_review_per_session": "SRS_MAX_REVIEW",
	"srs.max_interval":           "SRS_MAX_INTERVAL",
	"notify.enabled":             "NOTIFICATIONS_ENABLED",
	"notify.start_hour":          "NOTIFICATION_START_HOUR",
	"notify.end_hour":            "NOTIFICATION_END_HOUR",
	"notify.telegram_token":      "TELEGRAM_BOT_TOKEN",
	"notify.ses.region":          "AWS_REGION",
	"notify.ses.from_email":      "SES_FROM_EMAIL",
	"notify.ses.from_name":       "SES_FROM_NAME",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "production")
	v.SetDefault("log_level", "info")

	v.SetDefault("db.type", "sqlite")
	v.SetDefault("db.path", "data/engstudy.db")
	v.SetDefault("db.url", "")
	v.SetDefault("db.max_open_conns", 10)
	v.SetDefault("db.max_idle_conns", 2)
	v.SetDefault("db.conn_max_lifetime", "5m")

	v.SetDefault("srs.max_new_per_session", 10)
	v.SetDefault("srs.max_review_per_session", 50)
	v.SetDefault("srs.default_ease", 2.5)
	v.SetDefault("srs.min_ease", 1.3)
	v.SetDefault("srs.again_penalty", 0.2)
	v.SetDefault("srs.easy_ease_bonus", 0.15)
	v.SetDefault("srs.easy_interval_bonus", 1.3)
	v.SetDefault("srs.first_interval", 1)
	v.SetDefault("srs.second_interval", 6)
	v.SetDefault("srs.relearn_interval", 1)
	v.SetDefault("srs.max_interval", 365)

	v.SetDefault("notify.enabled", true)
	v.SetDefault("notify.start_hour", 8)
	v.SetDefault("notify.end_hour", 22)
	v.SetDefault("notify.check_interval", "1h")
	v.SetDefault("notify.telegram_token", "")
	v.SetDefault("notify.ses.region", "us-east-1")
	v.SetDefault("notify.ses.from_email", "")
	v.SetDefault("notify.ses.from_name", "EngStudy")
}

// Load reads configuration from an optional .env file, environment
// variables and an optional config file. configFile falls back to the
// CONFIG_FILE environment variable.
func Load(configFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if configFile == "" {
		configFile = os.Getenv("CONFIG_FILE")
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
