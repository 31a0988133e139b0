// Package shipments tracks parcels across carriers. Events arrive from three
// directions (carrier webhooks, manager sync, the polling worker), are
// deduplicated per shipment and rolled up into the shipment's status and
// lifecycle timestamps.
package shipments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"shopapi/pkg/domain"
	"shopapi/pkg/logger"
	"shopapi/pkg/metrics"
	"shopapi/pkg/serrors"
	"shopapi/pkg/storage"
	"shopapi/pkg/tracker"
)

// eventTimeLayouts are tried in order when parsing inbound event timestamps.
var eventTimeLayouts = []string{ //nolint: gochecknoglobals
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// statusPriority orders rollup statuses from most to least decisive. The
// first status present in the event table wins.
var statusPriority = []domain.ShipmentStatus{ //nolint: gochecknoglobals
	domain.ShipmentStatusCanceled,
	domain.ShipmentStatusReturned,
	domain.ShipmentStatusDelivered,
	domain.ShipmentStatusOutForDelivery,
	domain.ShipmentStatusInTransit,
	domain.ShipmentStatusPending,
}

type shipments struct {
	storage  storage.Storage
	tracker  tracker.Client
	pollOpts *river.InsertOpts
}

func (s shipments) Register(ctx context.Context,
	userID domain.UserID,
	purchaseID domain.PurchaseID,
	carrier, trackingNumber string) (*domain.Shipment, error) {
	if carrier == "" || trackingNumber == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "carrier and tracking number are required")
	}

	var shipment *domain.Shipment

	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		purchase, err := tx.PurchaseByID(ctx, userID, purchaseID)
		if err != nil {
			return fmt.Errorf("could not fetch purchase: %w", err)
		}
		if purchase == nil {
			return serrors.With(serrors.ErrNotFound, "purchase not found")
		}

		shipment, err = tx.ShipmentByCarrierTracking(ctx, carrier, trackingNumber)
		if err != nil {
			return fmt.Errorf("could not fetch shipment: %w", err)
		}
		if shipment != nil {
			return nil
		}

		shipment, err = tx.StoreShipment(ctx, domain.Shipment{
			Carrier:        carrier,
			TrackingNumber: trackingNumber,
			Status:         domain.ShipmentStatusPending,
			OrderID:        purchaseID,
			UserID:         userID,
		})
		if err != nil {
			if errors.Is(err, storage.ErrDuplicate) {
				shipment, err = tx.ShipmentByCarrierTracking(ctx, carrier, trackingNumber)
				if err != nil {
					return fmt.Errorf("could not fetch shipment: %w", err)
				}

				return nil
			}

			return fmt.Errorf("could not store shipment: %w", err)
		}

		if _, err := tx.AddJob(ctx, PollJobArgs{
			Carrier:        carrier,
			TrackingNumber: trackingNumber,
		}, s.pollOpts); err != nil {
			return fmt.Errorf("could not enqueue poll job: %w", err)
		}

		return nil
	}); err != nil {
		return nil, err
	}

	// the provider treats re-registration of a known parcel as success, so
	// registering after commit is safe to repeat
	fid := uuid.UUID(shipment.ID).String()
	if err := s.tracker.RegisterTracking(ctx, carrier, trackingNumber, fid); err != nil {
		return nil, fmt.Errorf("could not register tracking with provider: %w", err)
	}

	return shipment, nil
}

func (s shipments) UserShipments(ctx context.Context,
	userID domain.UserID,
	page, size uint) (storage.UserShipments, error) {
	if size == 0 {
		return storage.UserShipments{}, serrors.With(serrors.ErrBadRequest, "page size must be positive")
	}
	if page == 0 {
		page = 1
	}

	result, err := s.storage.UserShipments(ctx, userID, (page-1)*size, size)
	if err != nil {
		return storage.UserShipments{}, fmt.Errorf("could not fetch shipments: %w", err)
	}

	return result, nil
}

func (s shipments) Shipment(ctx context.Context,
	userID domain.UserID,
	id domain.ShipmentID) (*domain.Shipment, error) {
	shipment, err := s.storage.ShipmentByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not fetch shipment: %w", err)
	}
	if shipment == nil || shipment.UserID != userID {
		return nil, serrors.With(serrors.ErrNotFound, "shipment not found")
	}

	events, err := s.storage.ShipmentEvents(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not fetch shipment events: %w", err)
	}
	shipment.Events = events

	return shipment, nil
}

// parseInbound validates one inbound event. It returns nil when the event
// must be skipped (unparsable timestamp or a timestamp without a real year).
func parseInbound(ctx context.Context, ev InboundEvent) *tracker.Event {
	var occurredAt time.Time
	for _, layout := range eventTimeLayouts {
		t, err := time.Parse(layout, ev.OccurredAt)
		if err == nil {
			occurredAt = t

			break
		}
	}
	if occurredAt.IsZero() || occurredAt.Year() <= 1 {
		logger.Warn(ctx, "skipping shipment event with bad timestamp",
			zap.String("occurredAt", ev.OccurredAt))

		return nil
	}

	status := domain.ShipmentStatus(ev.Status)
	if !domain.ValidShipmentStatus(status) {
		status = tracker.MapProviderStatus(ev.Status)
	}

	return &tracker.Event{
		OccurredAt:      occurredAt,
		Status:          status,
		Location:        ev.Location,
		Description:     ev.Description,
		ProviderCode:    ev.Status,
		ProviderEventID: ev.ProviderEventID,
		Raw:             ev.Raw,
	}
}

func (s shipments) IngestWebhook(ctx context.Context,
	carrier string,
	events []InboundEvent) (int, error) {
	byTracking := make(map[string][]tracker.Event)
	for _, ev := range events {
		parsed := parseInbound(ctx, ev)
		if parsed == nil {
			continue
		}

		byTracking[ev.TrackingNumber] = append(byTracking[ev.TrackingNumber], *parsed)
	}

	var created int
	for trackingNumber, trackingEvents := range byTracking {
		shipment, err := s.storage.ShipmentByCarrierTracking(ctx, carrier, trackingNumber)
		if err != nil {
			return created, fmt.Errorf("could not fetch shipment: %w", err)
		}
		if shipment == nil {
			// carriers replay webhooks for parcels we never registered
			logger.Info(ctx, "skipping webhook for unknown shipment",
				zap.String("carrier", carrier),
				zap.String("trackingNumber", trackingNumber))

			continue
		}

		n, err := s.ingest(ctx, shipment, domain.EventSourceWebhook, trackingEvents)
		if err != nil {
			return created, err
		}
		created += n
	}

	return created, nil
}

func (s shipments) Sync(ctx context.Context, carrier, trackingNumber string) (int, error) {
	return s.fetchAndIngest(ctx, carrier, trackingNumber, domain.EventSourceSync)
}

func (s shipments) Poll(ctx context.Context, carrier, trackingNumber string) error {
	_, err := s.fetchAndIngest(ctx, carrier, trackingNumber, domain.EventSourceAdapter)

	return err
}

func (s shipments) OpenShipments(ctx context.Context, limit uint) ([]domain.Shipment, error) {
	return s.storage.OpenShipments(ctx, limit)
}

func (s shipments) fetchAndIngest(ctx context.Context,
	carrier, trackingNumber, source string) (int, error) {
	shipment, err := s.storage.ShipmentByCarrierTracking(ctx, carrier, trackingNumber)
	if err != nil {
		return 0, fmt.Errorf("could not fetch shipment: %w", err)
	}
	if shipment == nil {
		return 0, serrors.With(serrors.ErrNotFound, "shipment not found")
	}

	tracking, err := s.tracker.FetchTracking(ctx, carrier, trackingNumber)
	if err != nil {
		return 0, fmt.Errorf("could not fetch tracking from provider: %w", err)
	}

	return s.ingest(ctx, shipment, source, tracking.Events)
}

// ingest upserts events, rolls up the shipment's status and lifecycle
// timestamps from the event table and schedules a notify job when anything
// changed. Replayed events are dropped by the per-shipment dedupe key.
func (s shipments) ingest(ctx context.Context,
	shipment *domain.Shipment,
	source string,
	events []tracker.Event) (int, error) {
	var created int

	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		created = 0

		for _, ev := range events {
			dedupeKey := ev.ProviderEventID
			if dedupeKey == "" {
				dedupeKey = domain.EventDedupeKey(shipment.ID, ev.OccurredAt, ev.Status, ev.Location)
			}

			ok, err := tx.UpsertShipmentEvent(ctx, domain.ShipmentEvent{
				ShipmentID:   shipment.ID,
				OccurredAt:   ev.OccurredAt,
				Status:       ev.Status,
				Location:     ev.Location,
				Description:  ev.Description,
				ProviderCode: ev.ProviderCode,
				RawPayload:   ev.Raw,
				Source:       source,
				DedupeKey:    dedupeKey,
			})
			if err != nil {
				return fmt.Errorf("could not upsert shipment event: %w", err)
			}
			if ok {
				created++
			}
		}

		updated, changed, err := s.rollup(ctx, tx, shipment)
		if err != nil {
			return err
		}

		if created > 0 || changed {
			notifyType := "events"
			if changed {
				notifyType = "status_changed"
			}

			if _, err := tx.AddJob(ctx, NotifyJobArgs{
				ShipmentID: uuid.UUID(updated.ID),
				Type:       notifyType,
			}, nil); err != nil {
				return fmt.Errorf("could not enqueue notify job: %w", err)
			}
		}

		return nil
	}); err != nil {
		return 0, err
	}

	if created > 0 {
		metrics.ShipmentEventsIngested.WithLabelValues(source).Add(float64(created))
	}

	return created, nil
}

// rollup recomputes the shipment's status and lifecycle timestamps from the
// event table. Priority: canceled > returned > delivered > out_for_delivery >
// in_transit > pending.
func (s shipments) rollup(ctx context.Context,
	tx storage.AllStorage,
	shipment *domain.Shipment) (*domain.Shipment, bool, error) {
	agg, err := tx.ShipmentEventAggregates(ctx, shipment.ID)
	if err != nil {
		return nil, false, fmt.Errorf("could not aggregate shipment events: %w", err)
	}

	now := time.Now()
	updates := storage.ShipmentUpdates{LastSyncedAt: &now}

	status := shipment.Status
	present := make(map[domain.ShipmentStatus]bool, len(agg.Statuses))
	for _, st := range agg.Statuses {
		present[st] = true
	}
	for _, candidate := range statusPriority {
		if present[candidate] {
			status = candidate

			break
		}
	}

	changed := status != shipment.Status
	if changed {
		updates.Status = &status
	}

	if t, ok := agg.FirstByStatus[domain.ShipmentStatusInTransit]; ok && shipment.ShippedAt.IsZero() {
		updates.ShippedAt = &t
	}
	if t, ok := agg.LastByStatus[domain.ShipmentStatusDelivered]; ok {
		updates.DeliveredAt = &t
	}
	if t, ok := agg.LastByStatus[domain.ShipmentStatusCanceled]; ok {
		updates.CanceledAt = &t
	}

	if agg.Latest != nil {
		updates.LastEventAt = &agg.Latest.OccurredAt
		updates.LastEventStatus = &agg.Latest.Status
		updates.LastEventLoc = &agg.Latest.Location
		updates.LastEventDesc = &agg.Latest.Description
	}

	updated, err := tx.UpdateShipment(ctx, shipment.ID, updates)
	if err != nil {
		return nil, false, fmt.Errorf("could not update shipment: %w", err)
	}
	if updated == nil {
		return nil, false, serrors.With(serrors.ErrNotFound, "shipment not found")
	}

	return updated, changed, nil
}

// New creates a Shipments service backed by the provided storage and tracking
// provider. maxPollAttempts caps the retries of the poll jobs the service
// enqueues; zero keeps the default.
func New(storage storage.Storage, trackerClient tracker.Client, maxPollAttempts int) Shipments {
	return &shipments{
		storage:  storage,
		tracker:  trackerClient,
		pollOpts: PollInsertOpts(maxPollAttempts),
	}
}
