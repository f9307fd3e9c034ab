// Package archiver persists generated reports in the background so archive
// writes never sit on the request path.
package archiver

import (
	"context"
	"log/slog"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/cashflow-service/internal/config"
	"github.com/cashflow-service/internal/domain/cashflow"
)

// ReportArchiver fans archive writes out to a bounded worker pool. A failed
// write is logged and dropped; reports are regenerable so nothing retries.
type ReportArchiver struct {
	repository   cashflow.ArchiveRepository
	pool         *ants.Pool
	logger       *slog.Logger
	writeTimeout time.Duration
}

func NewReportArchiver(
	logger *slog.Logger,
	repository cashflow.ArchiveRepository,
	cfg *config.ArchiverConfig,
) (*ReportArchiver, error) {
	pool, err := ants.NewPool(cfg.PoolSize)
	if err != nil {
		return nil, err
	}

	return &ReportArchiver{
		repository:   repository,
		pool:         pool,
		logger:       logger,
		writeTimeout: cfg.WriteTimeout,
	}, nil
}

// Submit queues the report for persistence and returns immediately. The
// write runs on a pool worker with its own timeout, detached from the
// request context.
func (a *ReportArchiver) Submit(report *cashflow.ArchivedReport) {
	err := a.pool.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), a.writeTimeout)
		defer cancel()

		if err := a.repository.Save(ctx, report); err != nil {
			a.logger.Error("Failed to archive report",
				"report_id", report.ID.String(),
				"kind", string(report.Kind),
				"error", err,
			)
			return
		}

		a.logger.Debug("Archived report",
			"report_id", report.ID.String(),
			"kind", string(report.Kind),
		)
	})

	if err != nil {
		a.logger.Error("Failed to submit report to archive pool",
			"report_id", report.ID.String(),
			"error", err,
		)
	}
}

// Shutdown releases the worker pool. Queued jobs that have not started are
// discarded.
func (a *ReportArchiver) Shutdown() {
	a.logger.Info("Shutting down report archiver", "running_workers", a.pool.Running())
	a.pool.Release()
}

// Running returns the number of in-flight archive writes.
func (a *ReportArchiver) Running() int {
	return a.pool.Running()
}
