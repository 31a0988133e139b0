package postgres

import (
	"context"
	"fmt"
	"time"

	"shopapi/pkg/domain"
	"shopapi/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	shipmentsTable      = "shipments"
	shipmentEventsTable = "shipment_events"
)

func (p *PgSQL) StoreShipment(ctx context.Context, shipment domain.Shipment) (*domain.Shipment, error) {
	var pgShipment PgShipment
	pgShipment.FromDomain(shipment)

	var row PgShipment
	found, err := p.Builder.Insert(shipmentsTable).
		Rows(pgShipment).
		Returning(&PgShipment{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrDuplicate
		}

		return nil, fmt.Errorf("could not store shipment into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not store shipment into pg: no row returned")
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) ShipmentByID(ctx context.Context, id domain.ShipmentID) (*domain.Shipment, error) {
	var row PgShipment
	found, err := p.Builder.From(shipmentsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch shipment by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) ShipmentByCarrierTracking(ctx context.Context,
	carrier, trackingNumber string) (*domain.Shipment, error) {
	var row PgShipment
	found, err := p.Builder.From(shipmentsTable).
		Where(
			goqu.I("carrier").Eq(carrier),
			goqu.I("tracking_number").Eq(trackingNumber),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch shipment by tracking: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) UserShipments(ctx context.Context,
	userID domain.UserID,
	offset, limit uint) (storage.UserShipments, error) {
	count, err := p.Builder.From(shipmentsTable).
		Where(goqu.I("user_id").Eq(uuid.UUID(userID))).
		CountContext(ctx)
	if err != nil {
		return storage.UserShipments{}, fmt.Errorf("could not count user shipments: %w", err)
	}

	var rows []PgShipment
	if err := p.Builder.From(shipmentsTable).
		Where(goqu.I("user_id").Eq(uuid.UUID(userID))).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Offset(offset).
		Limit(limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.UserShipments{}, fmt.Errorf("could not fetch user shipments from pg: %w", err)
	}

	return storage.UserShipments{
		Shipments: pgShipmentsToDomain(rows),
		Total:     uint(count), //nolint: gosec
	}, nil
}

// UpdateShipment applies only the non-nil fields of updates.
func (p *PgSQL) UpdateShipment(ctx context.Context,
	id domain.ShipmentID,
	updates storage.ShipmentUpdates) (*domain.Shipment, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Status != nil {
		rec["status"] = string(*updates.Status)
	}
	if updates.ShippedAt != nil {
		rec["shipped_at"] = *updates.ShippedAt
	}
	if updates.DeliveredAt != nil {
		rec["delivered_at"] = *updates.DeliveredAt
	}
	if updates.CanceledAt != nil {
		rec["canceled_at"] = *updates.CanceledAt
	}
	if updates.LastEventAt != nil {
		rec["last_event_at"] = *updates.LastEventAt
	}
	if updates.LastEventStatus != nil {
		rec["last_event_status"] = string(*updates.LastEventStatus)
	}
	if updates.LastEventLoc != nil {
		rec["last_event_loc"] = *updates.LastEventLoc
	}
	if updates.LastEventDesc != nil {
		rec["last_event_desc"] = *updates.LastEventDesc
	}
	if updates.LastSyncedAt != nil {
		rec["last_synced_at"] = *updates.LastSyncedAt
	}

	var row PgShipment
	found, err := p.Builder.Update(shipmentsTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgShipment{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update shipment in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UpsertShipmentEvent inserts an event, relying on the unique
// (shipment_id, dedupe_key) index to make webhook and poll replays idempotent.
func (p *PgSQL) UpsertShipmentEvent(ctx context.Context, event domain.ShipmentEvent) (bool, error) {
	var pgEvent PgShipmentEvent
	pgEvent.FromDomain(event)

	res, err := p.Builder.Insert(shipmentEventsTable).
		Rows(pgEvent).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not upsert shipment event into pg: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}

	return affected > 0, nil
}

func (p *PgSQL) ShipmentEvents(ctx context.Context,
	shipmentID domain.ShipmentID) ([]domain.ShipmentEvent, error) {
	var rows []PgShipmentEvent
	if err := p.Builder.From(shipmentEventsTable).
		Where(goqu.I("shipment_id").Eq(uuid.UUID(shipmentID))).
		Order(goqu.I("occurred_at").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch shipment events from pg: %w", err)
	}

	return pgShipmentEventsToDomain(rows), nil
}

// ShipmentEventAggregates collects the distinct statuses, the earliest and
// latest occurrence per status and the newest event. The rollup derives the
// shipment's status and lifecycle timestamps from these.
func (p *PgSQL) ShipmentEventAggregates(ctx context.Context,
	shipmentID domain.ShipmentID) (storage.ShipmentEventAggregates, error) {
	type statusRow struct {
		Status string    `db:"status"`
		First  time.Time `db:"first_at"`
		Last   time.Time `db:"last_at"`
	}

	var statusRows []statusRow
	if err := p.Builder.From(shipmentEventsTable).
		Select(goqu.I("status"),
			goqu.MIN("occurred_at").As("first_at"),
			goqu.MAX("occurred_at").As("last_at")).
		Where(goqu.I("shipment_id").Eq(uuid.UUID(shipmentID))).
		GroupBy(goqu.I("status")).
		Executor().ScanStructsContext(ctx, &statusRows); err != nil {
		return storage.ShipmentEventAggregates{}, fmt.Errorf("could not aggregate shipment events: %w", err)
	}

	agg := storage.ShipmentEventAggregates{
		FirstByStatus: make(map[domain.ShipmentStatus]time.Time, len(statusRows)),
		LastByStatus:  make(map[domain.ShipmentStatus]time.Time, len(statusRows)),
	}
	for _, r := range statusRows {
		status := domain.ShipmentStatus(r.Status)
		agg.Statuses = append(agg.Statuses, status)
		agg.FirstByStatus[status] = r.First
		agg.LastByStatus[status] = r.Last
	}

	var latest PgShipmentEvent
	found, err := p.Builder.From(shipmentEventsTable).
		Where(goqu.I("shipment_id").Eq(uuid.UUID(shipmentID))).
		Order(goqu.I("occurred_at").Desc(), goqu.I("created_at").Desc()).
		Limit(1).
		Executor().ScanStructContext(ctx, &latest)
	if err != nil {
		return storage.ShipmentEventAggregates{}, fmt.Errorf("could not fetch latest shipment event: %w", err)
	}
	if found {
		agg.Latest = latest.ToDomain()
	}

	return agg, nil
}

// OpenShipments lists shipments still moving, oldest sync first so the poller
// visits the most stale ones before the rest.
func (p *PgSQL) OpenShipments(ctx context.Context, limit uint) ([]domain.Shipment, error) {
	var rows []PgShipment
	q := p.Builder.From(shipmentsTable).
		Where(goqu.I("status").In(
			string(domain.ShipmentStatusPending),
			string(domain.ShipmentStatusInTransit),
			string(domain.ShipmentStatusOutForDelivery),
		)).
		Order(goqu.I("last_synced_at").Asc().NullsFirst())
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch open shipments from pg: %w", err)
	}

	return pgShipmentsToDomain(rows), nil
}
