package worker

import (
	"context"
	"fmt"
	"time"

	"auditor/internal/contracts"
	"auditor/pkg/logger"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// MonitorRefresher is the slice of the contracts service the refresh worker
// needs.
type MonitorRefresher interface {
	RefreshMonitorings(ctx context.Context, staleBefore time.Time, limit uint) (int, error)
}

// MonitorRefreshWorker refreshes contract monitors whose last check went
// stale.
type MonitorRefreshWorker struct {
	river.WorkerDefaults[contracts.MonitorRefreshJobArgs]

	contracts  MonitorRefresher
	staleAfter time.Duration
	batchSize  uint
}

// NewMonitorRefreshWorker constructs a MonitorRefreshWorker considering a
// monitor stale once its last check is older than staleAfter.
func NewMonitorRefreshWorker(contracts MonitorRefresher,
	staleAfter time.Duration,
	batchSize uint) *MonitorRefreshWorker {
	return &MonitorRefreshWorker{
		contracts:  contracts,
		staleAfter: staleAfter,
		batchSize:  batchSize,
	}
}

// Work refreshes stale monitors. A full batch means more monitors may be
// stale, so the refresh repeats until a partial batch comes back.
func (w *MonitorRefreshWorker) Work(ctx context.Context, job *river.Job[contracts.MonitorRefreshJobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID))

	total := 0
	for {
		refreshed, err := w.contracts.RefreshMonitorings(ctx, time.Now().UTC().Add(-w.staleAfter), w.batchSize)
		if err != nil {
			logger.Error(ctx, "error refreshing monitors", zap.Error(err))

			return fmt.Errorf("could not refresh monitors: %w", err)
		}
		total += refreshed

		if uint(refreshed) < w.batchSize {
			break
		}
	}

	logger.Info(ctx, "monitor refresh finished", zap.Int("refreshed", total))

	return nil
}
