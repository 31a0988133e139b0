package shipments

import (
	"context"
	"encoding/json"

	"shopapi/pkg/domain"
	"shopapi/pkg/storage"
)

// InboundEvent is one provider event as delivered by a webhook or the manager
// sync endpoint, before validation. OccurredAt is kept as the raw string so
// the service can reject unparsable timestamps instead of silently zeroing them.
type InboundEvent struct {
	TrackingNumber string `json:"trackingNumber"`

	OccurredAt  string `json:"occurredAt"`
	Status      string `json:"status"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`

	ProviderEventID string          `json:"providerEventId,omitempty"`
	Raw             json.RawMessage `json:"-"`
}

//go:generate mockgen -package mockshipments -source=interface.go -destination=mock/mockshipments.go *
type Shipments interface {
	// Register gets or creates the shipment for a purchase, registers the
	// tracking number with the provider and schedules the first poll.
	// Registering the same (carrier, tracking number) again returns the
	// existing shipment.
	Register(ctx context.Context,
		userID domain.UserID,
		purchaseID domain.PurchaseID,
		carrier, trackingNumber string) (*domain.Shipment, error)
	// UserShipments returns one page of the user's shipments, newest
	// first, along with the total count.
	UserShipments(ctx context.Context, userID domain.UserID, page, size uint) (storage.UserShipments, error)
	// Shipment fetches one of the user's shipments with its events ordered
	// by occurrence time.
	Shipment(ctx context.Context, userID domain.UserID, id domain.ShipmentID) (*domain.Shipment, error)
	// IngestWebhook records carrier webhook events. Events for unknown
	// shipments or with unparsable timestamps are skipped. Returns the
	// number of newly created events.
	IngestWebhook(ctx context.Context, carrier string, events []InboundEvent) (int, error)
	// Sync fetches the current tracking state from the provider and
	// ingests it with source "sync". Returns the number of newly created
	// events.
	Sync(ctx context.Context, carrier, trackingNumber string) (int, error)
	// Poll fetches the current tracking state from the provider and
	// ingests it with source "adapter". Used by the background worker.
	Poll(ctx context.Context, carrier, trackingNumber string) error
	// OpenShipments lists shipments still moving, for the periodic poll
	// scheduler.
	OpenShipments(ctx context.Context, limit uint) ([]domain.Shipment, error)
}
