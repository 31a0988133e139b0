package v1handler

import (
	"net/http"

	"github.com/google/uuid"

	"shopapi/pkg/domain"
	"shopapi/pkg/httputil"
)

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		httputil.WriteError(w, r, err)

		return
	}

	cart, err := h.deps.Carts.Cart(r.Context(), userID)
	if err != nil {
		httputil.WriteError(w, r, err)

		return
	}

	writeCart(w, cart)
}

// writeCart renders a cart with its derived total and item count.
func writeCart(w http.ResponseWriter, cart *domain.Cart) {
	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"cart":      cart,
		"total":     cart.TotalPrice(),
		"itemCount": cart.ItemCount(),
	})
}

type addCartItemRequest struct {
	ProductID uuid.UUID      `json:"productId"`
	Options   domain.Options `json:"options"`
	Quantity  int            `json:"quantity"`
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		httputil.WriteError(w, r, err)

		return
	}

	var req addCartItemRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, r, err)

		return
	}

	cart, err := h.deps.Carts.AddItem(r.Context(), userID,
		domain.ProductID(req.ProductID), req.Options, req.Quantity)
	if err != nil {
		httputil.WriteError(w, r, err)

		return
	}

	writeCart(w, cart)
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
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

	var req updateCartItemRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, r, err)

		return
	}

	cart, err := h.deps.Carts.UpdateItem(r.Context(), userID,
		domain.CartItemID(id), req.Quantity)
	if err != nil {
		httputil.WriteError(w, r, err)

		return
	}

	writeCart(w, cart)
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
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

	cart, err := h.deps.Carts.RemoveItem(r.Context(), userID, domain.CartItemID(id))
	if err != nil {
		httputil.WriteError(w, r, err)

		return
	}

	writeCart(w, cart)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		httputil.WriteError(w, r, err)

		return
	}

	if err := h.deps.Carts.Clear(r.Context(), userID); err != nil {
		httputil.WriteError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
