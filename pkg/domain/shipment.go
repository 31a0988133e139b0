package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ShipmentID uniquely identifies a shipment.
type ShipmentID uuid.UUID

// ShipmentEventID uniquely identifies a tracking event.
type ShipmentEventID uuid.UUID

// ShipmentStatus represents the delivery state of a shipment.
type ShipmentStatus string

const (
	ShipmentStatusPending        ShipmentStatus = "pending"
	ShipmentStatusInTransit      ShipmentStatus = "in_transit"
	ShipmentStatusOutForDelivery ShipmentStatus = "out_for_delivery"
	ShipmentStatusDelivered      ShipmentStatus = "delivered"
	ShipmentStatusCanceled       ShipmentStatus = "canceled"
	ShipmentStatusReturned       ShipmentStatus = "returned"
)

// ValidShipmentStatus reports whether s is one of the known statuses.
func ValidShipmentStatus(s ShipmentStatus) bool {
	switch s {
	case ShipmentStatusPending, ShipmentStatusInTransit, ShipmentStatusOutForDelivery,
		ShipmentStatusDelivered, ShipmentStatusCanceled, ShipmentStatusReturned:
		return true
	}

	return false
}

// Event sources, recorded on each ShipmentEvent.
const (
	// EventSourceWebhook marks events delivered by a carrier webhook.
	EventSourceWebhook = "webhook"
	// EventSourceAdapter marks events fetched by the polling worker.
	EventSourceAdapter = "adapter"
	// EventSourceSync marks events pushed through the manager sync endpoint.
	EventSourceSync = "sync"
)

// Shipment is one tracked parcel for a purchase. (Carrier, TrackingNumber)
// is unique; the same tracking number registered twice returns the existing
// shipment.
type Shipment struct {
	ID ShipmentID `json:"id"`

	Carrier        string `json:"carrier"`
	TrackingNumber string `json:"trackingNumber"`

	Status ShipmentStatus `json:"status"`

	// Lifecycle timestamps rolled up from the event table.
	ShippedAt   time.Time `json:"shippedAt,omitempty"`
	DeliveredAt time.Time `json:"deliveredAt,omitempty"`
	CanceledAt  time.Time `json:"canceledAt,omitempty"`

	// Denormalized copy of the newest event for list views.
	LastEventAt     time.Time      `json:"lastEventAt,omitempty"`
	LastEventStatus ShipmentStatus `json:"lastEventStatus,omitempty"`
	LastEventLoc    string         `json:"lastEventLoc,omitempty"`
	LastEventDesc   string         `json:"lastEventDesc,omitempty"`

	LastSyncedAt time.Time `json:"lastSyncedAt,omitempty"`

	OrderID PurchaseID `json:"orderId"`
	UserID  UserID     `json:"userId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Events is populated on detail reads, ordered by occurrence time.
	Events []ShipmentEvent `json:"events,omitempty"`
}

// Open reports whether the shipment is still moving and worth polling.
func (s *Shipment) Open() bool {
	switch s.Status {
	case ShipmentStatusPending, ShipmentStatusInTransit, ShipmentStatusOutForDelivery:
		return true
	}

	return false
}

// ShipmentEvent is one tracking scan/event of a shipment. DedupeKey is unique
// per shipment so that replays of the same webhook or poll are idempotent.
type ShipmentEvent struct {
	ID         ShipmentEventID `json:"id"`
	ShipmentID ShipmentID      `json:"shipmentId"`

	OccurredAt  time.Time      `json:"occurredAt"`
	Status      ShipmentStatus `json:"status"`
	Location    string         `json:"location,omitempty"`
	Description string         `json:"description,omitempty"`

	// ProviderCode is the raw carrier/status code reported by the provider.
	ProviderCode string          `json:"providerCode,omitempty"`
	RawPayload   json.RawMessage `json:"-"`
	Source       string          `json:"source,omitempty"`
	DedupeKey    string          `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
}

// EventDedupeKey builds the fallback dedupe key used when the provider does
// not supply its own event ID: shipment, time, status and location together
// identify a scan.
func EventDedupeKey(id ShipmentID, occurredAt time.Time, status ShipmentStatus, location string) string {
	return fmt.Sprintf("%s|%s|%s|%s", uuid.UUID(id), occurredAt.UTC().Format(time.RFC3339), status, location)
}
