package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	charmlog "github.com/charmbracelet/log"

	"github.com/Dosada05/esports-registry/config"
	"github.com/Dosada05/esports-registry/db"
	"github.com/Dosada05/esports-registry/storage"
)

// newLogger builds the process logger. "text" output goes through
// charmbracelet/log, anything else is slog JSON.
func newLogger(level, format string, w io.Writer) *slog.Logger {
	var slogLevel slog.Level
	if err := slogLevel.UnmarshalText([]byte(level)); err != nil {
		slogLevel = slog.LevelInfo
	}

	if strings.EqualFold(format, "text") {
		charmLevel, err := charmlog.ParseLevel(level)
		if err != nil {
			charmLevel = charmlog.InfoLevel
		}
		handler := charmlog.NewWithOptions(w, charmlog.Options{
			ReportTimestamp: true,
			TimeFormat:      time.Kitchen,
			Level:           charmLevel,
		})
		return slog.New(handler)
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slogLevel}))
}

func openDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*sql.DB, error) {
	conn, err := db.Connect(db.Options{
		Driver:         cfg.DBDriver,
		DSN:            cfg.DatabaseURL,
		ConnectTimeout: cfg.DBConnectTimeout,
		MaxOpenConns:   cfg.DBMaxOpenConns,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	logger.Info("database connection established", slog.String("driver", cfg.DBDriver))

	if cfg.DBAutoSchema {
		if err := db.CreateSchema(ctx, conn, cfg.DBDriver); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("failed to apply schema: %w", err)
		}
		logger.Info("database schema applied")
	}
	return conn, nil
}

// newUploader returns nil when snapshot storage is not configured.
func newUploader(ctx context.Context, cfg *config.Config, logger *slog.Logger) (storage.FileUploader, error) {
	if !cfg.R2.Enabled() {
		logger.Info("snapshot storage not configured, export disabled")
		return nil, nil
	}
	uploader, err := storage.NewR2Uploader(ctx, storage.R2Config{
		AccountID:       cfg.R2.AccountID,
		AccessKeyID:     cfg.R2.AccessKeyID,
		SecretAccessKey: cfg.R2.SecretAccessKey,
		BucketName:      cfg.R2.BucketName,
		PublicBaseURL:   cfg.R2.PublicBaseURL,
		Endpoint:        cfg.R2.Endpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize R2 uploader: %w", err)
	}
	logger.Info("R2 uploader initialized", slog.String("bucket", cfg.R2.BucketName))
	return uploader, nil
}
