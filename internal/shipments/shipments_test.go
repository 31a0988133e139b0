package shipments_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"shopapi/internal/shipments"
	"shopapi/pkg/domain"
	"shopapi/pkg/serrors"
	"shopapi/pkg/storage"
	mockstorage "shopapi/pkg/storage/mock"
	"shopapi/pkg/tracker"
	mocktracker "shopapi/pkg/tracker/mock"
)

// testPollAttempts is the configured poll retry cap used across the tests.
const testPollAttempts = 5

func newTestShipments(t *testing.T) (*gomock.Controller,
	*mockstorage.MockStorage,
	*mocktracker.MockClient,
	shipments.Shipments) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	tr := mocktracker.NewMockClient(ctrl)

	return ctrl, st, tr, shipments.New(st, tr, testPollAttempts)
}

// helper to wire Storage.WithTx to execute callback with a MockAllStorage.
func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func testShipment(userID domain.UserID) *domain.Shipment {
	return &domain.Shipment{
		ID:             domain.ShipmentID(uuid.New()),
		Carrier:        "04",
		TrackingNumber: "123456789012",
		Status:         domain.ShipmentStatusPending,
		OrderID:        domain.PurchaseID(uuid.New()),
		UserID:         userID,
	}
}

func TestShipments_Register_createsAndRegisters(t *testing.T) {
	ctrl, st, tr, s := newTestShipments(t)

	userID := domain.UserID(uuid.New())
	purchaseID := domain.PurchaseID(uuid.New())
	stored := testShipment(userID)
	stored.OrderID = purchaseID

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().PurchaseByID(gomock.Any(), userID, purchaseID).
			Return(&domain.Purchase{ID: purchaseID, UserID: userID}, nil)
		tx.EXPECT().ShipmentByCarrierTracking(gomock.Any(), "04", "123456789012").Return(nil, nil)
		tx.EXPECT().StoreShipment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, sh domain.Shipment) (*domain.Shipment, error) {
				require.Equal(t, domain.ShipmentStatusPending, sh.Status)
				require.Equal(t, purchaseID, sh.OrderID)

				return stored, nil
			})
		// the configured retry cap rides along on the poll insert
		tx.EXPECT().AddJob(gomock.Any(), shipments.PollJobArgs{
			Carrier:        "04",
			TrackingNumber: "123456789012",
		}, &river.InsertOpts{MaxAttempts: testPollAttempts}).Return(true, nil)
	})
	tr.EXPECT().RegisterTracking(gomock.Any(), "04", "123456789012",
		uuid.UUID(stored.ID).String()).Return(nil)

	got, err := s.Register(context.Background(), userID, purchaseID, "04", "123456789012")
	require.NoError(t, err)
	require.Equal(t, stored.ID, got.ID)
}

func TestShipments_Register_existingIsReturned(t *testing.T) {
	ctrl, st, tr, s := newTestShipments(t)

	userID := domain.UserID(uuid.New())
	existing := testShipment(userID)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().PurchaseByID(gomock.Any(), userID, existing.OrderID).
			Return(&domain.Purchase{ID: existing.OrderID, UserID: userID}, nil)
		tx.EXPECT().ShipmentByCarrierTracking(gomock.Any(), existing.Carrier, existing.TrackingNumber).
			Return(existing, nil)
	})
	tr.EXPECT().RegisterTracking(gomock.Any(), existing.Carrier, existing.TrackingNumber,
		uuid.UUID(existing.ID).String()).Return(nil)

	got, err := s.Register(context.Background(), userID, existing.OrderID,
		existing.Carrier, existing.TrackingNumber)
	require.NoError(t, err)
	require.Equal(t, existing.ID, got.ID)
}

func TestShipments_Register_unknownPurchase(t *testing.T) {
	ctrl, st, _, s := newTestShipments(t)

	userID := domain.UserID(uuid.New())
	purchaseID := domain.PurchaseID(uuid.New())

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().PurchaseByID(gomock.Any(), userID, purchaseID).Return(nil, nil)
	})

	_, err := s.Register(context.Background(), userID, purchaseID, "04", "123456789012")
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestShipments_IngestWebhook_dedupesAndRollsUp(t *testing.T) {
	ctrl, st, _, s := newTestShipments(t)

	userID := domain.UserID(uuid.New())
	shipment := testShipment(userID)
	inTransit := domain.ShipmentStatusInTransit

	st.EXPECT().ShipmentByCarrierTracking(gomock.Any(), shipment.Carrier, shipment.TrackingNumber).
		Return(shipment, nil)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		// one new event, one replay
		tx.EXPECT().UpsertShipmentEvent(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, ev domain.ShipmentEvent) (bool, error) {
				require.Equal(t, domain.EventSourceWebhook, ev.Source)
				require.Equal(t, domain.ShipmentStatusInTransit, ev.Status)
				require.NotEmpty(t, ev.DedupeKey)

				return true, nil
			})
		tx.EXPECT().UpsertShipmentEvent(gomock.Any(), gomock.Any()).Return(false, nil)
		firstInTransit := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
		tx.EXPECT().ShipmentEventAggregates(gomock.Any(), shipment.ID).Return(storage.ShipmentEventAggregates{
			Statuses:      []domain.ShipmentStatus{inTransit},
			FirstByStatus: map[domain.ShipmentStatus]time.Time{inTransit: firstInTransit},
			LastByStatus:  map[domain.ShipmentStatus]time.Time{inTransit: firstInTransit},
			Latest: &domain.ShipmentEvent{
				OccurredAt: firstInTransit,
				Status:     inTransit,
				Location:   "Seoul hub",
			},
		}, nil)
		tx.EXPECT().UpdateShipment(gomock.Any(), shipment.ID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.ShipmentID, u storage.ShipmentUpdates) (*domain.Shipment, error) {
				require.NotNil(t, u.Status)
				require.Equal(t, inTransit, *u.Status)
				require.NotNil(t, u.ShippedAt)
				require.Equal(t, firstInTransit, *u.ShippedAt)
				require.NotNil(t, u.LastEventLoc)
				require.Equal(t, "Seoul hub", *u.LastEventLoc)

				updated := *shipment
				updated.Status = inTransit

				return &updated, nil
			})
		tx.EXPECT().AddJob(gomock.Any(), shipments.NotifyJobArgs{
			ShipmentID: uuid.UUID(shipment.ID),
			Type:       "status_changed",
		}, gomock.Nil()).Return(true, nil)
	})

	created, err := s.IngestWebhook(context.Background(), shipment.Carrier, []shipments.InboundEvent{
		{
			TrackingNumber: shipment.TrackingNumber,
			OccurredAt:     "2025-06-01 09:00:00",
			Status:         "in_transit",
			Location:       "Seoul hub",
		},
		{
			TrackingNumber: shipment.TrackingNumber,
			OccurredAt:     "2025-06-01T09:00:00Z",
			Status:         "departed",
			Location:       "Seoul hub",
		},
	})
	require.NoError(t, err)
	require.Equal(t, 1, created)
}

func TestShipments_IngestWebhook_unknownShipmentIsSkipped(t *testing.T) {
	_, st, _, s := newTestShipments(t)

	st.EXPECT().ShipmentByCarrierTracking(gomock.Any(), "04", "000000000000").Return(nil, nil)

	created, err := s.IngestWebhook(context.Background(), "04", []shipments.InboundEvent{
		{
			TrackingNumber: "000000000000",
			OccurredAt:     "2025-06-01T09:00:00Z",
			Status:         "delivered",
		},
	})
	require.NoError(t, err)
	require.Zero(t, created)
}

func TestShipments_IngestWebhook_badTimestampIsSkipped(t *testing.T) {
	_, _, _, s := newTestShipments(t)

	created, err := s.IngestWebhook(context.Background(), "04", []shipments.InboundEvent{
		{TrackingNumber: "123456789012", OccurredAt: "06-01 09:00", Status: "delivered"},
		{TrackingNumber: "123456789012", OccurredAt: "", Status: "delivered"},
	})
	require.NoError(t, err)
	require.Zero(t, created)
}

func TestShipments_Poll_usesAdapterSource(t *testing.T) {
	ctrl, st, tr, s := newTestShipments(t)

	userID := domain.UserID(uuid.New())
	shipment := testShipment(userID)
	delivered := domain.ShipmentStatusDelivered
	deliveredAt := time.Date(2025, 6, 2, 14, 0, 0, 0, time.UTC)

	st.EXPECT().ShipmentByCarrierTracking(gomock.Any(), shipment.Carrier, shipment.TrackingNumber).
		Return(shipment, nil)
	tr.EXPECT().FetchTracking(gomock.Any(), shipment.Carrier, shipment.TrackingNumber).
		Return(&tracker.Tracking{
			Carrier:        shipment.Carrier,
			TrackingNumber: shipment.TrackingNumber,
			Events: []tracker.Event{
				{OccurredAt: deliveredAt, Status: delivered, Location: "door"},
			},
		}, nil)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UpsertShipmentEvent(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, ev domain.ShipmentEvent) (bool, error) {
				require.Equal(t, domain.EventSourceAdapter, ev.Source)

				return true, nil
			})
		tx.EXPECT().ShipmentEventAggregates(gomock.Any(), shipment.ID).Return(storage.ShipmentEventAggregates{
			Statuses:      []domain.ShipmentStatus{delivered},
			FirstByStatus: map[domain.ShipmentStatus]time.Time{delivered: deliveredAt},
			LastByStatus:  map[domain.ShipmentStatus]time.Time{delivered: deliveredAt},
			Latest:        &domain.ShipmentEvent{OccurredAt: deliveredAt, Status: delivered},
		}, nil)
		tx.EXPECT().UpdateShipment(gomock.Any(), shipment.ID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.ShipmentID, u storage.ShipmentUpdates) (*domain.Shipment, error) {
				require.NotNil(t, u.DeliveredAt)
				require.Equal(t, deliveredAt, *u.DeliveredAt)

				updated := *shipment
				updated.Status = delivered

				return &updated, nil
			})
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(true, nil)
	})

	require.NoError(t, s.Poll(context.Background(), shipment.Carrier, shipment.TrackingNumber))
}

func TestShipments_Shipment_foreignReadsAsNotFound(t *testing.T) {
	_, st, _, s := newTestShipments(t)

	shipment := testShipment(domain.UserID(uuid.New()))
	st.EXPECT().ShipmentByID(gomock.Any(), shipment.ID).Return(shipment, nil)

	_, err := s.Shipment(context.Background(), domain.UserID(uuid.New()), shipment.ID)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestShipments_UserShipments_pageOffsets(t *testing.T) {
	_, st, _, s := newTestShipments(t)

	userID := domain.UserID(uuid.New())
	st.EXPECT().UserShipments(gomock.Any(), userID, uint(20), uint(10)).
		Return(storage.UserShipments{Total: 42}, nil)

	result, err := s.UserShipments(context.Background(), userID, 3, 10)
	require.NoError(t, err)
	require.Equal(t, uint(42), result.Total)
}
