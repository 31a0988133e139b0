package v1handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"shopapi/pkg/domain"
	"shopapi/pkg/httputil"
)

type createPaymentRequest struct {
	OrderID uuid.UUID `json:"orderId"`
}

func (h *Handler) createPayment(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		httputil.WriteError(w, r, err)

		return
	}

	var req createPaymentRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, r, err)

		return
	}

	payment, err := h.deps.Payments.Create(r.Context(), userID, domain.PurchaseID(req.OrderID))
	if err != nil {
		httputil.WriteError(w, r, err)

		return
	}

	httputil.WriteJSON(w, http.StatusCreated, payment)
}

type confirmPaymentRequest struct {
	PaymentKey string          `json:"paymentKey"`
	OrderID    string          `json:"orderId"`
	Amount     decimal.Decimal `json:"amount"`
}

func (h *Handler) confirmPayment(w http.ResponseWriter, r *http.Request) {
	var req confirmPaymentRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, r, err)

		return
	}

	payment, err := h.deps.Payments.Confirm(r.Context(), req.PaymentKey, req.OrderID, req.Amount)
	if err != nil {
		httputil.WriteError(w, r, err)

		return
	}

	httputil.WriteJSON(w, http.StatusOK, payment)
}

type cancelPaymentRequest struct {
	Reason        string          `json:"reason"`
	Amount        decimal.Decimal `json:"amount"`
	TaxFreeAmount decimal.Decimal `json:"taxFreeAmount"`
}

func (h *Handler) cancelPayment(w http.ResponseWriter, r *http.Request) {
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

	var req cancelPaymentRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, r, err)

		return
	}

	payment, err := h.deps.Payments.Cancel(r.Context(), userID,
		domain.PaymentID(id), req.Reason, req.Amount, req.TaxFreeAmount)
	if err != nil {
		httputil.WriteError(w, r, err)

		return
	}

	httputil.WriteJSON(w, http.StatusOK, payment)
}

func (h *Handler) getPayment(w http.ResponseWriter, r *http.Request) {
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

	payment, events, err := h.deps.Payments.Payment(r.Context(), userID, domain.PaymentID(id))
	if err != nil {
		httputil.WriteError(w, r, err)

		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"payment": payment,
		"events":  events,
	})
}
