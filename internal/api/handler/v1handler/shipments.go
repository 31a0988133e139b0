package v1handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"shopapi/internal/shipments"
	"shopapi/pkg/domain"
	"shopapi/pkg/httputil"
	"shopapi/pkg/serrors"
)

type registerShipmentRequest struct {
	OrderID        uuid.UUID `json:"orderId"`
	Carrier        string    `json:"carrier"`
	TrackingNumber string    `json:"trackingNumber"`
}

func (h *Handler) registerShipment(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		httputil.WriteError(w, r, err)

		return
	}

	var req registerShipmentRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, r, err)

		return
	}

	shipment, err := h.deps.Shipments.Register(r.Context(), userID,
		domain.PurchaseID(req.OrderID), req.Carrier, req.TrackingNumber)
	if err != nil {
		httputil.WriteError(w, r, err)

		return
	}

	httputil.WriteJSON(w, http.StatusCreated, shipment)
}

func (h *Handler) listShipments(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		httputil.WriteError(w, r, err)

		return
	}

	page := uint(1)
	if raw := r.URL.Query().Get("page"); raw != "" {
		if n, err := strconv.ParseUint(raw, 10, 32); err == nil && n > 0 {
			page = uint(n)
		}
	}

	result, err := h.deps.Shipments.UserShipments(r.Context(), userID, page, queryLimit(r))
	if err != nil {
		httputil.WriteError(w, r, err)

		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"shipments": result.Shipments,
		"total":     result.Total,
		"page":      page,
	})
}

func (h *Handler) getShipment(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		httputil.WriteError(w, r, err)

		return
	}

	id, err := pathID(r)
	if err != nil {
		httputil.WriteError(w, r, err)

		return
	}

	shipment, err := h.deps.Shipments.Shipment(r.Context(), userID, domain.ShipmentID(id))
	if err != nil {
		httputil.WriteError(w, r, err)

		return
	}

	httputil.WriteJSON(w, http.StatusOK, shipment)
}

// webhookEvent mirrors the carrier webhook body. Each event carries its raw
// payload into the event log.
type webhookEvent struct {
	TrackingNumber  string `json:"trackingNumber"`
	OccurredAt      string `json:"occurredAt"`
	Status          string `json:"status"`
	Location        string `json:"location"`
	Description     string `json:"description"`
	ProviderEventID string `json:"eventId"`
}

type shipmentWebhookRequest struct {
	Events []json.RawMessage `json:"events"`
}

func (h *Handler) shipmentWebhook(w http.ResponseWriter, r *http.Request) {
	carrier := mux.Vars(r)["carrier"]
	if carrier == "" {
		httputil.WriteError(w, r, serrors.With(serrors.ErrBadRequest, "missing carrier"))

		return
	}

	var req shipmentWebhookRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, r, err)

		return
	}

	events := make([]shipments.InboundEvent, 0, len(req.Events))
	for _, raw := range req.Events {
		var ev webhookEvent
		if err := json.Unmarshal(raw, &ev); err != nil {
			httputil.WriteError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid event"))

			return
		}

		events = append(events, shipments.InboundEvent{
			TrackingNumber:  ev.TrackingNumber,
			OccurredAt:      ev.OccurredAt,
			Status:          ev.Status,
			Location:        ev.Location,
			Description:     ev.Description,
			ProviderEventID: ev.ProviderEventID,
			Raw:             raw,
		})
	}

	created, err := h.deps.Shipments.IngestWebhook(r.Context(), carrier, events)
	if err != nil {
		httputil.WriteError(w, r, err)

		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]any{"created": created})
}

type syncShipmentRequest struct {
	Carrier        string `json:"carrier"`
	TrackingNumber string `json:"trackingNumber"`
}

func (h *Handler) syncShipment(w http.ResponseWriter, r *http.Request) {
	var req syncShipmentRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, r, err)

		return
	}

	created, err := h.deps.Shipments.Sync(r.Context(), req.Carrier, req.TrackingNumber)
	if err != nil {
		httputil.WriteError(w, r, err)

		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]any{"created": created})
}
