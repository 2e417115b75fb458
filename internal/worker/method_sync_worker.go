package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/DanielPopoola/mollie-acquirer/internal/application/services"
)

type MethodSyncer interface {
	Sync(ctx context.Context) (services.SyncReport, error)
}

// MethodSyncWorker refreshes the local method catalog on a fixed interval.
// Runs happen on a single goroutine and never overlap.
type MethodSyncWorker struct {
	syncer   MethodSyncer
	interval time.Duration
	logger   *slog.Logger
}

func NewMethodSyncWorker(syncer MethodSyncer, interval time.Duration, logger *slog.Logger) *MethodSyncWorker {
	return &MethodSyncWorker{
		syncer:   syncer,
		interval: interval,
		logger:   logger,
	}
}

func (w *MethodSyncWorker) Start(ctx context.Context) {
	w.logger.Info("method sync worker started", "interval", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.RunOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("method sync worker stopping")
			return
		case <-ticker.C:
			w.RunOnce(ctx)
		}
	}
}

// RunOnce performs one synchronization and logs the outcome.
func (w *MethodSyncWorker) RunOnce(ctx context.Context) {
	start := time.Now()

	report, err := w.syncer.Sync(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		w.logger.Error("method sync failed", "error", err)
		return
	}

	if report.Skipped {
		w.logger.Warn("method sync skipped, catalog left untouched")
		return
	}

	w.logger.Info("method sync completed",
		"created", report.Created,
		"updated", report.Updated,
		"deactivated", report.Deactivated,
		"duration", time.Since(start),
	)
}
