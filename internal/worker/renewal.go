package worker

import (
	"context"
	"fmt"
	"time"

	"auditor/internal/billing"
	"auditor/pkg/logger"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// Renewer is the slice of the billing service the renewal worker needs.
type Renewer interface {
	RenewDue(ctx context.Context, now time.Time, limit uint) (int, error)
}

// RenewalWorker advances due subscriptions in batches until none are left.
type RenewalWorker struct {
	river.WorkerDefaults[billing.RenewalJobArgs]

	billing   Renewer
	batchSize uint
}

// NewRenewalWorker constructs a RenewalWorker sweeping at most batchSize
// subscriptions per storage roundtrip.
func NewRenewalWorker(billing Renewer, batchSize uint) *RenewalWorker {
	return &RenewalWorker{
		billing:   billing,
		batchSize: batchSize,
	}
}

// Work runs one renewal sweep. A full batch means more subscriptions may be
// due, so the sweep repeats until a partial batch comes back.
func (w *RenewalWorker) Work(ctx context.Context, job *river.Job[billing.RenewalJobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID))

	total := 0
	for {
		processed, err := w.billing.RenewDue(ctx, time.Now().UTC(), w.batchSize)
		if err != nil {
			logger.Error(ctx, "error renewing subscriptions", zap.Error(err))

			return fmt.Errorf("could not renew subscriptions: %w", err)
		}
		total += processed

		if uint(processed) < w.batchSize {
			break
		}
	}

	logger.Info(ctx, "subscription renewal sweep finished", zap.Int("processed", total))

	return nil
}
