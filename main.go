package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/example/engstudy/internal/cmd"
	"github.com/example/engstudy/internal/config"
	"github.com/example/engstudy/internal/database"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func setupLogger(env, level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if env == "development" {
		cfg = zap.NewDevelopmentConfig()
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

func main() {
	cfg, err := config.Load("")
	if err != nil {
		log.Fatal("failed load config: " + err.Error())
	}

	logger, err := setupLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatal("failed init logger: " + err.Error())
	}
	defer logger.Sync()

	db, err := database.Connect(cfg.Database)
	if err != nil {
		logger.Fatal("failed init db", zap.Error(err))
	}
	defer db.Close()

	app, err := cmd.NewApp(cfg, db, logger)
	if err != nil {
		logger.Fatal("failed init app", zap.Error(err))
	}

	// Отменяем контекст по сигналу
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.NewRootCmd(app).ExecuteContext(ctx); err != nil {
		stop()
		db.Close()
		os.Exit(1)
	}
}
