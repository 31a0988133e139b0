package v1handler_test

import (
	"bytes"
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"shopapi/internal/accounts"
	mockaccounts "shopapi/internal/accounts/mock"
	"shopapi/internal/api/handler/v1handler"
	mockcarts "shopapi/internal/carts/mock"
	"shopapi/internal/catalog"
	mockcatalog "shopapi/internal/catalog/mock"
	mockorders "shopapi/internal/orders/mock"
	mockpayments "shopapi/internal/payments/mock"
	"shopapi/internal/shipments"
	mockshipments "shopapi/internal/shipments/mock"
	mockcache "shopapi/pkg/cache/mock"
	"shopapi/pkg/domain"
	"shopapi/pkg/logger"
	"shopapi/pkg/serrors"
	"shopapi/pkg/storage"
)

// decimalEq matches a decimal argument by numeric value.
type decimalEq decimal.Decimal

func (m decimalEq) Matches(x any) bool {
	d, ok := x.(decimal.Decimal)

	return ok && d.Equal(decimal.Decimal(m))
}

func (m decimalEq) String() string {
	return decimal.Decimal(m).String()
}

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	os.Exit(m.Run())
}

type testAPI struct {
	accounts  *mockaccounts.MockAccounts
	catalog   *mockcatalog.MockCatalog
	carts     *mockcarts.MockCarts
	orders    *mockorders.MockOrders
	payments  *mockpayments.MockPayments
	shipments *mockshipments.MockShipments
	blacklist *mockcache.MockTokenBlacklist

	issuer *accounts.TokenIssuer
	router *mux.Router
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	ctrl := gomock.NewController(t)

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	privPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})
	issuer, err := accounts.NewTokenIssuer(string(privPEM), "", 30*time.Minute, 7*24*time.Hour)
	require.NoError(t, err)

	api := &testAPI{
		accounts:  mockaccounts.NewMockAccounts(ctrl),
		catalog:   mockcatalog.NewMockCatalog(ctrl),
		carts:     mockcarts.NewMockCarts(ctrl),
		orders:    mockorders.NewMockOrders(ctrl),
		payments:  mockpayments.NewMockPayments(ctrl),
		shipments: mockshipments.NewMockShipments(ctrl),
		blacklist: mockcache.NewMockTokenBlacklist(ctrl),
		issuer:    issuer,
	}

	router := mux.NewRouter()
	v1handler.New(v1handler.Deps{
		Accounts:  api.accounts,
		Catalog:   api.catalog,
		Carts:     api.carts,
		Orders:    api.orders,
		Payments:  api.payments,
		Shipments: api.shipments,
	}, v1handler.NewSecHandler(issuer, api.blacklist)).Register(router.PathPrefix("/v1").Subrouter())
	api.router = router

	return api
}

// token mints an access token for a user with the given role and arranges for
// the blacklist to report it as live.
func (a *testAPI) token(t *testing.T, userID domain.UserID, role domain.UserRole) string {
	t.Helper()

	pair, err := a.issuer.Issue(&domain.User{ID: userID, Role: role})
	require.NoError(t, err)

	a.blacklist.EXPECT().Contains(gomock.Any(), gomock.Any()).Return(false, nil).AnyTimes()

	return pair.AccessToken
}

func (a *testAPI) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)

	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestRegister(t *testing.T) {
	api := newTestAPI(t)

	api.accounts.EXPECT().
		Register(gomock.Any(), accounts.RegisterReq{
			Email:    "user@example.com",
			Password: "hunter22",
			Nickname: "user",
		}).
		Return(&domain.User{Email: "user@example.com", Role: domain.RoleUser}, nil)

	rec := api.do(t, http.MethodPost, "/v1/auth/register", "", map[string]string{
		"email":    "user@example.com",
		"password": "hunter22",
		"nickname": "user",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "user@example.com", decodeBody(t, rec)["email"])
}

func TestLogin(t *testing.T) {
	api := newTestAPI(t)

	api.accounts.EXPECT().
		Login(gomock.Any(), "user@example.com", "hunter22").
		Return(&domain.User{Email: "user@example.com"},
			&accounts.TokenPair{AccessToken: "at", RefreshToken: "rt"}, nil)

	rec := api.do(t, http.MethodPost, "/v1/auth/token", "", map[string]string{
		"email":    "user@example.com",
		"password": "hunter22",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	require.Equal(t, "at", body["tokens"].(map[string]any)["accessToken"])
}

func TestMe_requiresToken(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/v1/users/me", "", nil)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMe_revokedToken(t *testing.T) {
	api := newTestAPI(t)

	pair, err := api.issuer.Issue(&domain.User{ID: domain.UserID(uuid.New()), Role: domain.RoleUser})
	require.NoError(t, err)
	api.blacklist.EXPECT().Contains(gomock.Any(), gomock.Any()).Return(true, nil)

	rec := api.do(t, http.MethodGet, "/v1/users/me", pair.AccessToken, nil)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMe(t *testing.T) {
	api := newTestAPI(t)
	userID := domain.UserID(uuid.New())

	api.accounts.EXPECT().
		Me(gomock.Any(), userID).
		Return(&domain.User{ID: userID, Email: "user@example.com"}, nil)

	rec := api.do(t, http.MethodGet, "/v1/users/me", api.token(t, userID, domain.RoleUser), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "user@example.com", decodeBody(t, rec)["email"])
}

func TestCreateCategory_roleGuard(t *testing.T) {
	api := newTestAPI(t)
	userID := domain.UserID(uuid.New())

	rec := api.do(t, http.MethodPost, "/v1/categories",
		api.token(t, userID, domain.RoleUser), map[string]string{"name": "tees"})

	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCreateCategory_admin(t *testing.T) {
	api := newTestAPI(t)
	userID := domain.UserID(uuid.New())

	api.catalog.EXPECT().
		CreateCategory(gomock.Any(), "tees").
		Return(&domain.Category{Name: "tees"}, nil)

	rec := api.do(t, http.MethodPost, "/v1/categories",
		api.token(t, userID, domain.RoleAdmin), map[string]string{"name": "tees"})

	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestUpdateProduct_adminOnly(t *testing.T) {
	api := newTestAPI(t)
	userID := domain.UserID(uuid.New())
	productID := domain.ProductID(uuid.New())
	path := "/v1/products/" + uuid.UUID(productID).String()
	body := map[string]any{"name": "runner", "isActive": false}

	rec := api.do(t, http.MethodPatch, path, api.token(t, userID, domain.RoleUser), body)
	require.Equal(t, http.StatusForbidden, rec.Code)

	api.catalog.EXPECT().
		UpdateProduct(gomock.Any(), productID, gomock.Any()).
		DoAndReturn(func(_ context.Context,
			id domain.ProductID,
			req catalog.UpdateProductReq) (*domain.Product, error) {
			require.NotNil(t, req.Name)
			require.Equal(t, "runner", *req.Name)
			require.NotNil(t, req.IsActive)
			require.False(t, *req.IsActive)
			require.Nil(t, req.Price)

			return &domain.Product{ID: id, Name: *req.Name}, nil
		})

	rec = api.do(t, http.MethodPatch, path, api.token(t, userID, domain.RoleAdmin), body)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "runner", decodeBody(t, rec)["name"])
}

func TestListProducts_filters(t *testing.T) {
	api := newTestAPI(t)
	categoryID := domain.CategoryID(uuid.New())

	api.catalog.EXPECT().
		Products(gomock.Any(),
			catalog.ListFilter{ActiveOnly: false, CategoryID: &categoryID},
			"abc", uint(v1handler.MaxLimit)).
		Return([]domain.Product{{Name: "tee"}}, "", nil)

	rec := api.do(t, http.MethodGet,
		"/v1/products?all=1&category="+uuid.UUID(categoryID).String()+"&cursor=abc&limit=500",
		"", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	require.Len(t, body["products"], 1)
	require.NotContains(t, body, "nextCursor")
}

func TestGetProduct_badID(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/v1/products/not-a-uuid", "", nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetCart(t *testing.T) {
	api := newTestAPI(t)
	userID := domain.UserID(uuid.New())

	cart := &domain.Cart{
		UserID: userID,
		Items: []domain.CartItem{{
			Quantity:  2,
			UnitPrice: decimal.NewFromInt(1500),
		}},
	}
	api.carts.EXPECT().Cart(gomock.Any(), userID).Return(cart, nil)

	rec := api.do(t, http.MethodGet, "/v1/cart", api.token(t, userID, domain.RoleUser), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	require.Equal(t, "3000", body["total"])
	require.Equal(t, float64(2), body["itemCount"])
}

func TestAddCartItem_conflictMapsTo409(t *testing.T) {
	api := newTestAPI(t)
	userID := domain.UserID(uuid.New())
	productID := domain.ProductID(uuid.New())

	api.carts.EXPECT().
		AddItem(gomock.Any(), userID, productID, domain.Options{"size": "L"}, 1).
		Return(nil, serrors.With(serrors.ErrConflict, "insufficient stock"))

	rec := api.do(t, http.MethodPost, "/v1/cart/items",
		api.token(t, userID, domain.RoleUser), map[string]any{
			"productId": uuid.UUID(productID).String(),
			"options":   map[string]string{"size": "L"},
			"quantity":  1,
		})

	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestCheckout(t *testing.T) {
	api := newTestAPI(t)
	userID := domain.UserID(uuid.New())

	api.orders.EXPECT().
		Checkout(gomock.Any(), userID).
		Return([]domain.Purchase{{UserID: userID, Status: domain.PurchaseStatusPaid}}, nil)

	rec := api.do(t, http.MethodPost, "/v1/orders/checkout",
		api.token(t, userID, domain.RoleUser), nil)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, decodeBody(t, rec)["purchases"], 1)
}

func TestListPurchases_cursor(t *testing.T) {
	api := newTestAPI(t)
	userID := domain.UserID(uuid.New())
	next := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

	api.orders.EXPECT().
		Purchases(gomock.Any(), userID, "", uint(v1handler.DefaultLimit)).
		Return(storage.UserPurchases{
			Purchases:  []domain.Purchase{{UserID: userID}},
			NextCursor: &next,
		}, nil)

	rec := api.do(t, http.MethodGet, "/v1/orders", api.token(t, userID, domain.RoleUser), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "2026-02-01T12:00:00Z", decodeBody(t, rec)["nextCursor"])
}

func TestConfirmPayment(t *testing.T) {
	api := newTestAPI(t)
	userID := domain.UserID(uuid.New())

	api.payments.EXPECT().
		Confirm(gomock.Any(), "pay_key_1", "SHP-20260201-AB12CD34EF56",
			decimalEq(decimal.NewFromInt(48000))).
		Return(&domain.Payment{Status: domain.PaymentStatusPaid}, nil)

	rec := api.do(t, http.MethodPost, "/v1/payments/confirm",
		api.token(t, userID, domain.RoleUser), map[string]any{
			"paymentKey": "pay_key_1",
			"orderId":    "SHP-20260201-AB12CD34EF56",
			"amount":     48000,
		})

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, string(domain.PaymentStatusPaid), decodeBody(t, rec)["status"])
}

func TestShipmentWebhook(t *testing.T) {
	api := newTestAPI(t)

	api.shipments.EXPECT().
		IngestWebhook(gomock.Any(), "kr.cjlogistics", gomock.Any()).
		DoAndReturn(func(_ any, _ string, events []shipments.InboundEvent) (int, error) {
			require.Len(t, events, 2)
			require.Equal(t, "664411223344", events[0].TrackingNumber)
			require.Equal(t, "in_transit", events[0].Status)
			require.Equal(t, "evt-1", events[0].ProviderEventID)
			require.NotEmpty(t, events[0].Raw)

			return 2, nil
		})

	rec := api.do(t, http.MethodPost, "/v1/webhooks/shipments/kr.cjlogistics", "",
		map[string]any{
			"events": []map[string]any{
				{
					"trackingNumber": "664411223344",
					"occurredAt":     "2026-02-01T09:00:00Z",
					"status":         "in_transit",
					"location":       "Daejeon Hub",
					"eventId":        "evt-1",
				},
				{
					"trackingNumber": "664411223344",
					"occurredAt":     "2026-02-01T15:00:00Z",
					"status":         "delivered",
					"eventId":        "evt-2",
				},
			},
		})

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, float64(2), decodeBody(t, rec)["created"])
}

func TestSyncShipment_managerOnly(t *testing.T) {
	api := newTestAPI(t)
	userID := domain.UserID(uuid.New())

	body := map[string]string{"carrier": "kr.cjlogistics", "trackingNumber": "664411223344"}

	rec := api.do(t, http.MethodPost, "/v1/shipments/sync",
		api.token(t, userID, domain.RoleUser), body)
	require.Equal(t, http.StatusForbidden, rec.Code)

	api.shipments.EXPECT().
		Sync(gomock.Any(), "kr.cjlogistics", "664411223344").
		Return(3, nil)

	rec = api.do(t, http.MethodPost, "/v1/shipments/sync",
		api.token(t, userID, domain.RoleManager), body)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, float64(3), decodeBody(t, rec)["created"])
}

func TestGetShipment_notFoundMapsTo404(t *testing.T) {
	api := newTestAPI(t)
	userID := domain.UserID(uuid.New())
	shipmentID := domain.ShipmentID(uuid.New())

	api.shipments.EXPECT().
		Shipment(gomock.Any(), userID, shipmentID).
		Return(nil, serrors.With(serrors.ErrNotFound, "shipment not found"))

	rec := api.do(t, http.MethodGet, "/v1/shipments/"+uuid.UUID(shipmentID).String(),
		api.token(t, userID, domain.RoleUser), nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	require.Equal(t, "NOT_FOUND", body["error"].(map[string]any)["code"])
}
