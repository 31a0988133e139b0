package worker_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"shopapi/internal/shipments"
	mockshipments "shopapi/internal/shipments/mock"
	"shopapi/internal/worker"
	"shopapi/pkg/domain"
	"shopapi/pkg/logger"
	"shopapi/pkg/serrors"
	mockstorage "shopapi/pkg/storage/mock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func makePollJob(id int64, carrier, trackingNumber string) *river.Job[shipments.PollJobArgs] {
	return &river.Job[shipments.PollJobArgs]{
		JobRow: &rivertype.JobRow{ID: id},
		Args:   shipments.PollJobArgs{Carrier: carrier, TrackingNumber: trackingNumber},
	}
}

func TestPollShipmentWorker_Work_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := mockshipments.NewMockShipments(ctrl)
	w := worker.NewPollShipmentWorker(mock)

	mock.EXPECT().Poll(gomock.Any(), "04", "123456789012").Return(nil)

	require.NoError(t, w.Work(context.Background(), makePollJob(1, "04", "123456789012")))
}

func TestPollShipmentWorker_Work_UnknownShipmentCancels(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := mockshipments.NewMockShipments(ctrl)
	w := worker.NewPollShipmentWorker(mock)

	mock.EXPECT().Poll(gomock.Any(), "04", "000000000000").
		Return(serrors.With(serrors.ErrNotFound, "shipment not found"))

	err := w.Work(context.Background(), makePollJob(2, "04", "000000000000"))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestPollShipmentWorker_Work_RateLimitedSnoozes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := mockshipments.NewMockShipments(ctrl)
	w := worker.NewPollShipmentWorker(mock)

	mock.EXPECT().Poll(gomock.Any(), "04", "123456789012").
		Return(serrors.With(serrors.ErrRateLimited, "provider rl"))

	err := w.Work(context.Background(), makePollJob(3, "04", "123456789012"))
	require.Error(t, err)
	var snoozeErr *river.JobSnoozeError
	require.ErrorAs(t, err, &snoozeErr)
}

func TestSchedulePollsWorker_Work(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mockstorage.NewMockStorage(ctrl)
	w := worker.NewSchedulePollsWorker(st, 5)

	open := []domain.Shipment{
		{Carrier: "04", TrackingNumber: "111111111111"},
		{Carrier: "05", TrackingNumber: "222222222222"},
	}
	pollOpts := &river.InsertOpts{MaxAttempts: 5}
	st.EXPECT().OpenShipments(gomock.Any(), uint(0)).Return(open, nil)
	st.EXPECT().AddJob(gomock.Any(), shipments.PollJobArgs{
		Carrier: "04", TrackingNumber: "111111111111",
	}, pollOpts).Return(true, nil)
	// second poll already pending, duplicate is skipped
	st.EXPECT().AddJob(gomock.Any(), shipments.PollJobArgs{
		Carrier: "05", TrackingNumber: "222222222222",
	}, pollOpts).Return(false, nil)

	job := &river.Job[worker.SchedulePollsArgs]{JobRow: &rivertype.JobRow{ID: 4}}
	require.NoError(t, w.Work(context.Background(), job))
}

type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func makeNotifyJob(id int64, shipmentID uuid.UUID, notifyType string) *river.Job[shipments.NotifyJobArgs] {
	return &river.Job[shipments.NotifyJobArgs]{
		JobRow: &rivertype.JobRow{ID: id},
		Args:   shipments.NotifyJobArgs{ShipmentID: shipmentID, Type: notifyType},
	}
}

func TestNotifyShipmentWorker_Work_Delivers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mockstorage.NewMockStorage(ctrl)
	shipmentID := domain.ShipmentID(uuid.New())
	shipment := &domain.Shipment{
		ID:             shipmentID,
		Carrier:        "04",
		TrackingNumber: "123456789012",
		Status:         domain.ShipmentStatusDelivered,
		DeliveredAt:    time.Now().UTC(),
	}
	st.EXPECT().ShipmentByID(gomock.Any(), shipmentID).Return(shipment, nil)

	var got struct {
		Type     string          `json:"type"`
		Shipment domain.Shipment `json:"shipment"`
	}
	httpClient := &http.Client{Transport: rtFunc(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "https://hooks.example.com/shipments", r.URL.String())
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &got))

		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader("ok")),
		}, nil
	})}

	w := worker.NewNotifyShipmentWorker(st, httpClient, "https://hooks.example.com/shipments")
	require.NoError(t, w.Work(context.Background(),
		makeNotifyJob(5, uuid.UUID(shipmentID), "status_changed")))

	require.Equal(t, "status_changed", got.Type)
	require.Equal(t, domain.ShipmentStatusDelivered, got.Shipment.Status)
}

func TestNotifyShipmentWorker_Work_NoWebhookLogsAndDrops(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mockstorage.NewMockStorage(ctrl)
	shipmentID := domain.ShipmentID(uuid.New())
	st.EXPECT().ShipmentByID(gomock.Any(), shipmentID).
		Return(&domain.Shipment{ID: shipmentID}, nil)

	httpClient := &http.Client{Transport: rtFunc(func(r *http.Request) (*http.Response, error) {
		t.Fatal("no request expected without a webhook URL")

		return nil, nil
	})}

	w := worker.NewNotifyShipmentWorker(st, httpClient, "")
	require.NoError(t, w.Work(context.Background(),
		makeNotifyJob(6, uuid.UUID(shipmentID), "events")))
}

func TestNotifyShipmentWorker_Work_GoneShipmentCancels(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mockstorage.NewMockStorage(ctrl)
	shipmentID := domain.ShipmentID(uuid.New())
	st.EXPECT().ShipmentByID(gomock.Any(), shipmentID).Return(nil, nil)

	w := worker.NewNotifyShipmentWorker(st, http.DefaultClient, "https://hooks.example.com/s")
	err := w.Work(context.Background(), makeNotifyJob(7, uuid.UUID(shipmentID), "events"))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}
