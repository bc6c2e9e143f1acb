package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/Dosada05/esports-registry/metrics"
	"github.com/Dosada05/esports-registry/storage"
	"github.com/google/uuid"
)

const snapshotKeyPrefix = "snapshots/dashboard/"

type SnapshotService interface {
	// Export uploads the current dashboard data as a JSON object.
	Export(ctx context.Context) (*storage.UploadResult, error)
}

type snapshotService struct {
	dashboard DashboardService
	uploader  storage.FileUploader
	metrics   metrics.Metrics
	logger    *slog.Logger
	now       func() time.Time
}

// NewSnapshotService returns a service whose Export fails with
// ErrSnapshotStorageDisabled when uploader is nil.
func NewSnapshotService(dashboard DashboardService, uploader storage.FileUploader, m metrics.Metrics, logger *slog.Logger, now func() time.Time) SnapshotService {
	if m == nil {
		m = metrics.Discard
	}
	if logger == nil {
		logger = slog.Default()
	}
	if now == nil {
		now = time.Now
	}
	return &snapshotService{dashboard: dashboard, uploader: uploader, metrics: m, logger: logger, now: now}
}

func (s *snapshotService) Export(ctx context.Context) (*storage.UploadResult, error) {
	if s.uploader == nil {
		return nil, ErrSnapshotStorageDisabled
	}

	result, err := s.export(ctx)
	s.metrics.IncSnapshotExports(err == nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSnapshotExportFailed, err)
	}
	s.logger.InfoContext(ctx, "dashboard snapshot exported", slog.String("key", result.Key), slog.String("url", result.Location))
	return result, nil
}

func (s *snapshotService) export(ctx context.Context) (*storage.UploadResult, error) {
	data, err := s.dashboard.Dashboard(ctx)
	if err != nil {
		return nil, err
	}
	body, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return s.uploader.Upload(ctx, snapshotKey(s.now()), "application/json", bytes.NewReader(body))
}

func snapshotKey(at time.Time) string {
	return snapshotKeyPrefix + at.UTC().Format("20060102T150405Z") + "-" + uuid.NewString() + ".json"
}
