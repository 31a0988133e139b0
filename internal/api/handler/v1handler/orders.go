package v1handler

import (
	"net/http"
	"time"

	"shopapi/pkg/domain"
	"shopapi/pkg/httputil"
)

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		httputil.WriteError(w, r, err)

		return
	}

	purchases, err := h.deps.Orders.Checkout(r.Context(), userID)
	if err != nil {
		httputil.WriteError(w, r, err)

		return
	}

	httputil.WriteJSON(w, http.StatusCreated, map[string]any{"purchases": purchases})
}

func (h *Handler) listPurchases(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		httputil.WriteError(w, r, err)

		return
	}

	page, err := h.deps.Orders.Purchases(r.Context(), userID,
		r.URL.Query().Get("cursor"), queryLimit(r))
	if err != nil {
		httputil.WriteError(w, r, err)

		return
	}

	resp := map[string]any{"purchases": page.Purchases}
	if page.NextCursor != nil {
		resp["nextCursor"] = page.NextCursor.Format(time.RFC3339)
	}

	httputil.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) getPurchase(w http.ResponseWriter, r *http.Request) {
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

	purchase, err := h.deps.Orders.Purchase(r.Context(), userID, domain.PurchaseID(id))
	if err != nil {
		httputil.WriteError(w, r, err)

		return
	}

	httputil.WriteJSON(w, http.StatusOK, purchase)
}

func (h *Handler) cancelPurchase(w http.ResponseWriter, r *http.Request) {
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

	purchase, err := h.deps.Orders.Cancel(r.Context(), userID, domain.PurchaseID(id))
	if err != nil {
		httputil.WriteError(w, r, err)

		return
	}

	httputil.WriteJSON(w, http.StatusOK, purchase)
}

func (h *Handler) refundPurchase(w http.ResponseWriter, r *http.Request) {
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

	purchase, err := h.deps.Orders.Refund(r.Context(), userID, domain.PurchaseID(id))
	if err != nil {
		httputil.WriteError(w, r, err)

		return
	}

	httputil.WriteJSON(w, http.StatusOK, purchase)
}
