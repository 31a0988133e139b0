// Package v1handler implements the /v1 HTTP API on top of the domain
// services. Handlers stay thin: decode, call the service, encode, with the
// uniform error mapping from pkg/httputil.
package v1handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"shopapi/internal/accounts"
	"shopapi/internal/carts"
	"shopapi/internal/catalog"
	"shopapi/internal/orders"
	"shopapi/internal/payments"
	"shopapi/internal/shipments"
	"shopapi/pkg/domain"
)

// DefaultLimit is the page size used when the client does not pass one.
const DefaultLimit = 20

// MaxLimit caps client-provided page sizes.
const MaxLimit = 100

// Deps carries the domain services the v1 API is built on.
type Deps struct {
	Accounts  accounts.Accounts
	Catalog   catalog.Catalog
	Carts     carts.Carts
	Orders    orders.Orders
	Payments  payments.Payments
	Shipments shipments.Shipments
}

type Handler struct {
	deps Deps
	sec  *SecHandler
}

// New constructs the v1 handler set.
func New(deps Deps, sec *SecHandler) *Handler {
	return &Handler{deps: deps, sec: sec}
}

// Register mounts every v1 route on the router. The router is expected to be
// the "/v1" subrouter.
func (h *Handler) Register(r *mux.Router) {
	// public
	r.HandleFunc("/auth/register", h.register).Methods(http.MethodPost)
	r.HandleFunc("/auth/token", h.login).Methods(http.MethodPost)
	r.HandleFunc("/auth/refresh", h.refresh).Methods(http.MethodPost)
	r.HandleFunc("/categories", h.listCategories).Methods(http.MethodGet)
	r.HandleFunc("/products", h.listProducts).Methods(http.MethodGet)
	r.HandleFunc("/products/{id}", h.getProduct).Methods(http.MethodGet)
	r.HandleFunc("/webhooks/shipments/{carrier}", h.shipmentWebhook).Methods(http.MethodPost)

	// authenticated
	user := r.NewRoute().Subrouter()
	user.Use(h.sec.Authenticate)
	user.HandleFunc("/auth/logout", h.logout).Methods(http.MethodPost)
	user.HandleFunc("/users/me", h.me).Methods(http.MethodGet)

	user.HandleFunc("/cart", h.getCart).Methods(http.MethodGet)
	user.HandleFunc("/cart/items", h.addCartItem).Methods(http.MethodPost)
	user.HandleFunc("/cart/items", h.clearCart).Methods(http.MethodDelete)
	user.HandleFunc("/cart/items/{id}", h.updateCartItem).Methods(http.MethodPatch)
	user.HandleFunc("/cart/items/{id}", h.removeCartItem).Methods(http.MethodDelete)

	user.HandleFunc("/orders/checkout", h.checkout).Methods(http.MethodPost)
	user.HandleFunc("/orders", h.listPurchases).Methods(http.MethodGet)
	user.HandleFunc("/orders/{id}", h.getPurchase).Methods(http.MethodGet)
	user.HandleFunc("/orders/{id}/cancel", h.cancelPurchase).Methods(http.MethodPost)
	user.HandleFunc("/orders/{id}/refund", h.refundPurchase).Methods(http.MethodPost)

	user.HandleFunc("/payments", h.createPayment).Methods(http.MethodPost)
	user.HandleFunc("/payments/confirm", h.confirmPayment).Methods(http.MethodPost)
	user.HandleFunc("/payments/{id}", h.getPayment).Methods(http.MethodGet)
	user.HandleFunc("/payments/{id}/cancel", h.cancelPayment).Methods(http.MethodPost)

	user.HandleFunc("/shipments", h.registerShipment).Methods(http.MethodPost)
	user.HandleFunc("/shipments", h.listShipments).Methods(http.MethodGet)
	user.HandleFunc("/shipments/{id}", h.getShipment).Methods(http.MethodGet)

	// back-office
	admin := r.NewRoute().Subrouter()
	admin.Use(h.sec.Authenticate, h.sec.Require(domain.RoleAdmin))
	admin.HandleFunc("/categories", h.createCategory).Methods(http.MethodPost)
	admin.HandleFunc("/products", h.createProduct).Methods(http.MethodPost)
	admin.HandleFunc("/products/{id}", h.updateProduct).Methods(http.MethodPatch)
	admin.HandleFunc("/products/{id}/stock", h.setStock).Methods(http.MethodPut)

	manager := r.NewRoute().Subrouter()
	manager.Use(h.sec.Authenticate, h.sec.Require(domain.RoleAdmin, domain.RoleManager))
	manager.HandleFunc("/shipments/sync", h.syncShipment).Methods(http.MethodPost)
}
