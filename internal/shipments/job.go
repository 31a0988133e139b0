package shipments

import (
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

const (
	pollMaxAttempts   = 3
	notifyMaxAttempts = 3

	// pollUniquePeriod is the lookback window inside which a second poll
	// for the same tracking number is dropped as a duplicate.
	pollUniquePeriod = time.Minute
)

// PollJobArgs asks the worker to fetch tracking events for one parcel from
// the provider and ingest them. The args are the unique key so River keeps at
// most one pending poll per tracking number.
type PollJobArgs struct {
	Carrier        string `json:"carrier" river:"unique"`
	TrackingNumber string `json:"trackingNumber" river:"unique"`
}

// Kind returns the River job kind used to register and dispatch the poll worker.
func (args PollJobArgs) Kind() string { return "PollShipmentJob" }

// InsertOpts limits retries and deduplicates concurrent polls of the same
// parcel. Completed jobs are not part of the unique states so the periodic
// scheduler can poll the same parcel again.
func (args PollJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: pollMaxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs:   true,
			ByPeriod: pollUniquePeriod,
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

// PollInsertOpts returns insert-time options carrying the configured retry
// cap for poll jobs. Insert-time options win over the args-level default, so
// nil is returned when the cap is unset and the default should apply.
func PollInsertOpts(maxAttempts int) *river.InsertOpts {
	if maxAttempts <= 0 {
		return nil
	}

	return &river.InsertOpts{MaxAttempts: maxAttempts}
}

// NotifyJobArgs asks the worker to push a shipment snapshot to the configured
// notify webhook after ingest created events or changed the status.
type NotifyJobArgs struct {
	ShipmentID uuid.UUID `json:"shipmentId"`
	// Type describes what changed: "events" or "status_changed".
	Type string `json:"type"`
}

// Kind returns the River job kind used to register and dispatch the notify worker.
func (args NotifyJobArgs) Kind() string { return "NotifyShipmentJob" }

func (args NotifyJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{MaxAttempts: notifyMaxAttempts}
}
