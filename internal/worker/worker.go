// Package worker hosts the River job runtime: per-parcel tracking polls, the
// periodic scheduler that fans them out over open shipments and webhook
// notifications for shipment changes.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"

	"shopapi/internal/config"
	"shopapi/internal/shipments"
	"shopapi/pkg/logger"
	"shopapi/pkg/storage"
)

// Start wires up the River client with all workers and the periodic poll
// scheduler and starts it. The returned client must be stopped by the caller
// on shutdown.
func Start(ctx context.Context,
	cfg *config.Config,
	dbPool *pgxpool.Pool,
	store storage.Storage,
	shipmentsService shipments.Shipments) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewPollShipmentWorker(shipmentsService))
	river.AddWorker(workers, NewSchedulePollsWorker(store, cfg.Shipments.MaxPollAttempts))
	river.AddWorker(workers, NewNotifyShipmentWorker(store,
		&http.Client{Timeout: 10 * time.Second},
		cfg.Shipments.NotifyWebhookURL))

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: cfg.Worker.MaxWorkers},
		},
		Workers: workers,
		PeriodicJobs: []*river.PeriodicJob{
			river.NewPeriodicJob(
				river.PeriodicInterval(cfg.Shipments.PollInterval),
				func() (river.JobArgs, *river.InsertOpts) {
					return SchedulePollsArgs{}, nil
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
