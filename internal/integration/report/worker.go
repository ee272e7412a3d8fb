// Package report runs the periodic weekly report generation worker.
package report

import (
	"context"
	"log/slog"
	"time"

	usecase "github.com/lifesync/backend/internal/application/usecase/report"
)

// Worker periodically generates weekly reports for opted-in users.
type Worker struct {
	generateAll   *usecase.GenerateWeeklyReportsUseCase
	checkInterval time.Duration
	logger        *slog.Logger
}

// WorkerConfig holds configuration for the report worker.
type WorkerConfig struct {
	CheckInterval time.Duration
}

// DefaultWorkerConfig returns the default worker configuration.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		CheckInterval: time.Hour,
	}
}

// NewWorker creates a new report worker.
func NewWorker(generateAll *usecase.GenerateWeeklyReportsUseCase, config WorkerConfig, logger *slog.Logger) *Worker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Worker{
		generateAll:   generateAll,
		checkInterval: config.CheckInterval,
		logger:        logger,
	}
}

// Start begins the worker loop. It blocks until the context is cancelled.
// Generation is idempotent per user and week, so ticks after the first
// successful run of a week only produce skips.
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Report worker started", "check_interval", w.checkInterval)

	ticker := time.NewTicker(w.checkInterval)
	defer ticker.Stop()

	w.runOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Report worker shutting down")
			return
		case <-ticker.C:
			w.runOnce(ctx)
		}
	}
}

// runOnce generates reports for all opted-in users for the previous week.
func (w *Worker) runOnce(ctx context.Context) {
	output, err := w.generateAll.Execute(ctx)
	if err != nil {
		w.logger.Error("Weekly report run failed", "error", err)
		return
	}

	if output.Generated > 0 || output.Failed > 0 {
		w.logger.Info("Weekly report run completed",
			"generated", output.Generated,
			"skipped", output.Skipped,
			"failed", output.Failed,
		)
	}
}

// RunNow triggers a single generation pass synchronously. Used in tests.
func (w *Worker) RunNow(ctx context.Context) {
	w.runOnce(ctx)
}
