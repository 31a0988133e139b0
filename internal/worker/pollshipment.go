package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"go.uber.org/zap"

	"shopapi/internal/shipments"
	"shopapi/pkg/logger"
	"shopapi/pkg/metrics"
	"shopapi/pkg/serrors"
	"shopapi/pkg/storage"
)

// pollSnooze is how long a rate-limited poll backs off before retrying.
const pollSnooze = time.Minute

// PollShipmentWorker fetches the current tracking state of one parcel from
// the provider and ingests the events. Polls of shipments that were deleted
// or reached a terminal state in the meantime are canceled, not retried.
type PollShipmentWorker struct {
	river.WorkerDefaults[shipments.PollJobArgs]

	shipments shipments.Shipments
}

// NewPollShipmentWorker constructs a PollShipmentWorker on top of the
// shipments service.
func NewPollShipmentWorker(shipmentsService shipments.Shipments) *PollShipmentWorker {
	return &PollShipmentWorker{shipments: shipmentsService}
}

func (w *PollShipmentWorker) Work(ctx context.Context, job *river.Job[shipments.PollJobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.String("carrier", job.Args.Carrier),
		zap.String("trackingNumber", job.Args.TrackingNumber))

	err := w.shipments.Poll(ctx, job.Args.Carrier, job.Args.TrackingNumber)
	if err != nil {
		if errors.Is(err, serrors.ErrNotFound) {
			metrics.ShipmentPolls.WithLabelValues("skipped").Inc()

			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error polling shipment", zap.Error(err))
		metrics.ShipmentPolls.WithLabelValues("error").Inc()

		if errors.Is(err, serrors.ErrRateLimited) {
			return river.JobSnooze(pollSnooze) //nolint: wrapcheck
		}

		return fmt.Errorf("could not poll shipment: %w", err)
	}

	metrics.ShipmentPolls.WithLabelValues("success").Inc()
	logger.Info(ctx, "shipment polled successfully")

	return nil
}

// SchedulePollsArgs is the periodic job that fans out one poll job per open
// shipment.
type SchedulePollsArgs struct{}

// Kind returns the River job kind of the periodic poll scheduler.
func (SchedulePollsArgs) Kind() string { return "SchedulePollShipmentsJob" }

func (SchedulePollsArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: 1,
		// one scheduler run at a time
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}

// SchedulePollsWorker enqueues a poll for every shipment still moving. The
// poll jobs themselves are unique per tracking number, so overlapping
// scheduler runs cannot pile up duplicate polls.
type SchedulePollsWorker struct {
	river.WorkerDefaults[SchedulePollsArgs]

	storage  storage.Storage
	pollOpts *river.InsertOpts
}

// NewSchedulePollsWorker constructs a SchedulePollsWorker backed by the
// provided storage. maxPollAttempts caps the retries of the enqueued poll
// jobs; zero keeps the default.
func NewSchedulePollsWorker(store storage.Storage, maxPollAttempts int) *SchedulePollsWorker {
	return &SchedulePollsWorker{
		storage:  store,
		pollOpts: shipments.PollInsertOpts(maxPollAttempts),
	}
}

func (w *SchedulePollsWorker) Work(ctx context.Context, job *river.Job[SchedulePollsArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID))

	open, err := w.storage.OpenShipments(ctx, 0)
	if err != nil {
		return fmt.Errorf("could not list open shipments: %w", err)
	}

	var enqueued int
	for i := range open {
		added, err := w.storage.AddJob(ctx, shipments.PollJobArgs{
			Carrier:        open[i].Carrier,
			TrackingNumber: open[i].TrackingNumber,
		}, w.pollOpts)
		if err != nil {
			return fmt.Errorf("could not enqueue poll job: %w", err)
		}
		if added {
			enqueued++
		}
	}

	logger.Info(ctx, "scheduled shipment polls",
		zap.Int("open", len(open)),
		zap.Int("enqueued", enqueued))

	return nil
}
