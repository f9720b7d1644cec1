// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/thoth-ai/thoth/pkg/config"
	"github.com/thoth-ai/thoth/pkg/services"
)

// Service periodically enforces retention policies: run records older than
// the configured window are deleted. Operations are idempotent and safe to
// run from multiple replicas.
type Service struct {
	config *config.RetentionConfig
	logs   *services.ThothLogService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, logs *services.ThothLogService) *Service {
	return &Service{
		config: cfg,
		logs:   logs,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"log_retention_days", s.config.LogRetentionDays,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.purgeOldRuns(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.purgeOldRuns(ctx)
		}
	}
}

func (s *Service) purgeOldRuns(ctx context.Context) {
	count, err := s.logs.PurgeOldRuns(ctx, s.config.LogRetentionDays)
	if err != nil {
		slog.Error("Retention: run record purge failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: purged old run records", "count", count)
	}
}
