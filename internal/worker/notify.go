package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"shopapi/internal/shipments"
	"shopapi/pkg/domain"
	"shopapi/pkg/logger"
	"shopapi/pkg/storage"
)

// notifyPayload is the body POSTed to the notify webhook when a shipment
// gained events or changed status.
type notifyPayload struct {
	Type     string          `json:"type"`
	Shipment domain.Shipment `json:"shipment"`
	Meta     struct {
		NotifiedAt time.Time `json:"notifiedAt"`
	} `json:"meta"`
}

// NotifyShipmentWorker pushes shipment change notifications to a downstream
// webhook. With no webhook configured the notification is logged and dropped.
type NotifyShipmentWorker struct {
	river.WorkerDefaults[shipments.NotifyJobArgs]

	storage    storage.Storage
	httpClient *http.Client
	webhookURL string
}

// NewNotifyShipmentWorker constructs a NotifyShipmentWorker. webhookURL may
// be empty to disable delivery.
func NewNotifyShipmentWorker(store storage.Storage,
	httpClient *http.Client,
	webhookURL string) *NotifyShipmentWorker {
	return &NotifyShipmentWorker{
		storage:    store,
		httpClient: httpClient,
		webhookURL: webhookURL,
	}
}

func (w *NotifyShipmentWorker) Work(ctx context.Context, job *river.Job[shipments.NotifyJobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.String("shipmentID", job.Args.ShipmentID.String()),
		zap.String("type", job.Args.Type))

	shipment, err := w.storage.ShipmentByID(ctx, domain.ShipmentID(job.Args.ShipmentID))
	if err != nil {
		return fmt.Errorf("could not fetch shipment: %w", err)
	}
	if shipment == nil {
		logger.Warn(ctx, "shipment gone, dropping notification")

		return river.JobCancel(fmt.Errorf("shipment %s not found", job.Args.ShipmentID)) //nolint: wrapcheck
	}

	if w.webhookURL == "" {
		logger.Info(ctx, "no notify webhook configured, dropping notification",
			zap.String("status", string(shipment.Status)))

		return nil
	}

	payload := notifyPayload{
		Type:     job.Args.Type,
		Shipment: *shipment,
	}
	payload.Meta.NotifiedAt = time.Now().UTC()

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("could not marshal notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("could not create notify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("could not deliver notification: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("notify webhook responded with status %d", resp.StatusCode)
	}

	logger.Info(ctx, "shipment notification delivered")

	return nil
}
