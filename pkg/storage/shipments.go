package storage

import (
	"context"
	"time"

	"shopapi/pkg/domain"
)

// ShipmentUpdates holds the mutable subset of a shipment row. Nil fields are
// left untouched.
type ShipmentUpdates struct {
	Status *domain.ShipmentStatus

	ShippedAt   *time.Time
	DeliveredAt *time.Time
	CanceledAt  *time.Time

	LastEventAt     *time.Time
	LastEventStatus *domain.ShipmentStatus
	LastEventLoc    *string
	LastEventDesc   *string

	LastSyncedAt *time.Time
}

// ShipmentEventAggregates summarizes the event table of one shipment; the
// rollup derives the shipment's status and lifecycle timestamps from it.
type ShipmentEventAggregates struct {
	// Statuses is the distinct set of event statuses present.
	Statuses []domain.ShipmentStatus
	// FirstByStatus maps each status to the earliest occurrence time.
	FirstByStatus map[domain.ShipmentStatus]time.Time
	// LastByStatus maps each status to the latest occurrence time.
	LastByStatus map[domain.ShipmentStatus]time.Time
	// Latest is the newest event, nil when the shipment has no events.
	Latest *domain.ShipmentEvent
}

// UserShipments is one page of shipments for a user plus the total count.
type UserShipments struct {
	Shipments []domain.Shipment
	Total     uint
}

// ShipmentStorage defines persistence operations for shipments and their
// tracking events.
type ShipmentStorage interface {
	// StoreShipment inserts a shipment and returns the stored row. Returns
	// ErrDuplicate when (carrier, tracking number) already exists.
	StoreShipment(ctx context.Context, shipment domain.Shipment) (*domain.Shipment, error)
	// ShipmentByID fetches a shipment by ID; nil when not found.
	ShipmentByID(ctx context.Context, id domain.ShipmentID) (*domain.Shipment, error)
	// ShipmentByCarrierTracking fetches a shipment by its unique
	// (carrier, tracking number) pair; nil when not found.
	ShipmentByCarrierTracking(ctx context.Context, carrier, trackingNumber string) (*domain.Shipment, error)
	// UserShipments returns one page of a user's shipments, newest first,
	// along with the total number of shipments the user has.
	UserShipments(ctx context.Context, userID domain.UserID, offset, limit uint) (UserShipments, error)
	// UpdateShipment applies updates to a shipment and returns the updated
	// row; nil when the shipment does not exist.
	UpdateShipment(ctx context.Context, id domain.ShipmentID, updates ShipmentUpdates) (*domain.Shipment, error)
	// UpsertShipmentEvent inserts a tracking event, ignoring it when an
	// event with the same dedupe key already exists for the shipment.
	// Created reports whether a new row was written.
	UpsertShipmentEvent(ctx context.Context, event domain.ShipmentEvent) (created bool, err error)
	// ShipmentEvents returns all events of a shipment ordered by occurrence
	// time ascending.
	ShipmentEvents(ctx context.Context, shipmentID domain.ShipmentID) ([]domain.ShipmentEvent, error)
	// ShipmentEventAggregates computes the per-status aggregates used by
	// the status rollup.
	ShipmentEventAggregates(ctx context.Context, shipmentID domain.ShipmentID) (ShipmentEventAggregates, error)
	// OpenShipments returns shipments still in a non-terminal status, for
	// the polling worker.
	OpenShipments(ctx context.Context, limit uint) ([]domain.Shipment, error)
}
