package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"shopapi/pkg/domain"
	"shopapi/pkg/storage"
	"shopapi/pkg/storage/postgres"
)

func seedShipment(t *testing.T, pg *postgres.PgSQL, trackingNumber string) *domain.Shipment {
	t.Helper()

	ctx := context.Background()
	user := seedUser(t, pg)
	product := seedProduct(t, pg)

	purchases, err := pg.StorePurchases(ctx, domain.Purchase{
		UserID:    user.ID,
		ProductID: product.ID,
		Quantity:  1,
		UnitPrice: decimal.NewFromInt(15000),
		Status:    domain.PurchaseStatusPaid,
	})
	require.NoError(t, err)
	require.Len(t, purchases, 1)

	shipment, err := pg.StoreShipment(ctx, domain.Shipment{
		Carrier:        "kr.cjlogistics",
		TrackingNumber: trackingNumber,
		Status:         domain.ShipmentStatusPending,
		OrderID:        purchases[0].ID,
		UserID:         user.ID,
	})
	require.NoError(t, err)

	return shipment
}

func storeEvent(t *testing.T, pg *postgres.PgSQL, shipment *domain.Shipment,
	status domain.ShipmentStatus, occurredAt time.Time, dedupeKey string) bool {
	t.Helper()

	created, err := pg.UpsertShipmentEvent(context.Background(), domain.ShipmentEvent{
		ShipmentID: shipment.ID,
		OccurredAt: occurredAt,
		Status:     status,
		Location:   "Daejeon Hub",
		Source:     domain.EventSourceWebhook,
		DedupeKey:  dedupeKey,
	})
	require.NoError(t, err)

	return created
}

func TestUpsertShipmentEvent_dedupes(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	shipment := seedShipment(t, pg, "664411223344")
	at := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)

	require.True(t, storeEvent(t, pg, shipment, domain.ShipmentStatusInTransit, at, "evt-1"))
	require.False(t, storeEvent(t, pg, shipment, domain.ShipmentStatusInTransit, at, "evt-1"))

	events, err := pg.ShipmentEvents(context.Background(), shipment.ID)
	require.NoError(t, err)
	require.Len(t, events, 1)
}

func TestShipmentEventAggregates(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	shipment := seedShipment(t, pg, "664411223345")

	first := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	second := time.Date(2026, 2, 1, 13, 0, 0, 0, time.UTC)
	delivered := time.Date(2026, 2, 1, 18, 0, 0, 0, time.UTC)

	storeEvent(t, pg, shipment, domain.ShipmentStatusInTransit, first, "evt-1")
	storeEvent(t, pg, shipment, domain.ShipmentStatusInTransit, second, "evt-2")
	storeEvent(t, pg, shipment, domain.ShipmentStatusDelivered, delivered, "evt-3")

	agg, err := pg.ShipmentEventAggregates(ctx, shipment.ID)
	require.NoError(t, err)

	require.ElementsMatch(t,
		[]domain.ShipmentStatus{domain.ShipmentStatusInTransit, domain.ShipmentStatusDelivered},
		agg.Statuses)
	require.True(t, agg.FirstByStatus[domain.ShipmentStatusInTransit].Equal(first))
	require.True(t, agg.LastByStatus[domain.ShipmentStatusInTransit].Equal(second))
	require.True(t, agg.LastByStatus[domain.ShipmentStatusDelivered].Equal(delivered))
	require.NotNil(t, agg.Latest)
	require.Equal(t, domain.ShipmentStatusDelivered, agg.Latest.Status)
}

func TestShipmentByCarrierTracking(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	shipment := seedShipment(t, pg, "664411223346")

	found, err := pg.ShipmentByCarrierTracking(ctx, shipment.Carrier, shipment.TrackingNumber)
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, shipment.ID, found.ID)

	missing, err := pg.ShipmentByCarrierTracking(ctx, shipment.Carrier, "000000000000")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestOpenShipments_excludesFinished(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	open := seedShipment(t, pg, "664411223347")
	done := seedShipment(t, pg, "664411223348")

	deliveredStatus := domain.ShipmentStatusDelivered
	_, err := pg.UpdateShipment(ctx, done.ID, storage.ShipmentUpdates{Status: &deliveredStatus})
	require.NoError(t, err)

	shipments, err := pg.OpenShipments(ctx, 0)
	require.NoError(t, err)

	ids := make([]domain.ShipmentID, 0, len(shipments))
	for _, s := range shipments {
		ids = append(ids, s.ID)
	}
	require.Contains(t, ids, open.ID)
	require.NotContains(t, ids, done.ID)
}

func TestUserShipments_paging(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	shipment := seedShipment(t, pg, "664411223349")

	page, err := pg.UserShipments(ctx, shipment.UserID, 0, 10)
	require.NoError(t, err)
	require.Equal(t, uint(1), page.Total)
	require.Len(t, page.Shipments, 1)

	empty, err := pg.UserShipments(ctx, shipment.UserID, 10, 10)
	require.NoError(t, err)
	require.Equal(t, uint(1), empty.Total)
	require.Empty(t, empty.Shipments)
}
