// Package tracker defines interfaces and data types used to register parcels
// with an external delivery-tracking provider and fetch their tracking events.
package tracker

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"shopapi/pkg/domain"
)

// Event is one normalized tracking scan reported by the provider.
type Event struct {
	// OccurredAt is when the scan happened at the carrier.
	OccurredAt time.Time
	// Status is the provider status mapped into the internal vocabulary.
	Status domain.ShipmentStatus
	// Location is the human-readable place of the scan, may be empty.
	Location string
	// Description is the free-text detail of the scan, may be empty.
	Description string
	// ProviderCode is the raw status code as reported by the provider.
	ProviderCode string
	// ProviderEventID is the provider's own event identifier when it
	// supplies one; used as the dedupe key when present.
	ProviderEventID string
	// Raw is the unmodified provider payload for this event.
	Raw json.RawMessage
}

// Tracking is the full tracking state of one parcel as reported by the
// provider.
type Tracking struct {
	Carrier        string
	TrackingNumber string
	Events         []Event
}

// Client is the abstraction for delivery-tracking providers. Implementations
// register parcels for tracking and later fetch their events.
//
//go:generate mockgen -package mocktracker -source=interface.go -destination=mock/mocktracker.go *
type Client interface {
	// RegisterTracking registers the parcel with the provider so that
	// webhook callbacks reference it by fid.
	RegisterTracking(ctx context.Context, carrier, trackingNumber, fid string) error
	// FetchTracking retrieves the current tracking events of a parcel.
	FetchTracking(ctx context.Context, carrier, trackingNumber string) (*Tracking, error)
}

// MapProviderStatus converts a raw provider status string into the internal
// shipment status vocabulary. Unknown values map to in_transit so a new
// provider code never stalls a shipment in pending.
func MapProviderStatus(providerStatus string) domain.ShipmentStatus {
	switch strings.ToLower(providerStatus) {
	case "info_received", "accepted", "ready":
		return domain.ShipmentStatusPending
	case "in_transit", "transit", "arrived", "departed":
		return domain.ShipmentStatusInTransit
	case "out_for_delivery":
		return domain.ShipmentStatusOutForDelivery
	case "delivered":
		return domain.ShipmentStatusDelivered
	case "failed", "exception", "returned":
		return domain.ShipmentStatusReturned
	case "canceled", "cancelled":
		return domain.ShipmentStatusCanceled
	}

	return domain.ShipmentStatusInTransit
}
