// Package worker runs the background jobs: the subscription renewal sweep
// and the contract monitor refresh, both scheduled periodically through
// River.
package worker

import (
	"context"
	"fmt"
	"log/slog"

	"auditor/internal/billing"
	"auditor/internal/config"
	"auditor/internal/contracts"
	"auditor/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	cfg *config.Config,
	billingService billing.Billing,
	contractsService contracts.Contracts) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewRenewalWorker(billingService, uint(cfg.Billing.RenewalBatchSize)))
	river.AddWorker(workers, NewMonitorRefreshWorker(
		contractsService,
		cfg.Billing.MonitorStaleAfter,
		uint(cfg.Billing.MonitorBatchSize)))

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: 100}, // TODO: make configurable
		},
		Workers: workers,
		PeriodicJobs: []*river.PeriodicJob{
			river.NewPeriodicJob(
				river.PeriodicInterval(cfg.Billing.RenewalInterval),
				func() (river.JobArgs, *river.InsertOpts) {
					return billing.RenewalJobArgs{}, nil
				},
				&river.PeriodicJobOpts{RunOnStart: true},
			),
			river.NewPeriodicJob(
				river.PeriodicInterval(cfg.Billing.MonitorRefreshInterval),
				func() (river.JobArgs, *river.InsertOpts) {
					return contracts.MonitorRefreshJobArgs{}, nil
				},
				&river.PeriodicJobOpts{RunOnStart: true},
			),
		},
		Logger: slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
