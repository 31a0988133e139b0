package toss_test

import (
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"shopapi/pkg/domain"
	"shopapi/pkg/payment/toss"
	"shopapi/pkg/serrors"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(fn rtFunc) *toss.Client {
	return toss.New(&http.Client{Transport: fn}, "live_sk_secret", "", false)
}

func TestClient_Confirm_success(t *testing.T) {
	//nolint: lll
	body := `{"paymentKey":"pay-1","orderId":"ORD-1","status":"DONE","method":"CARD","totalAmount":15000,"approvedAt":"2025-09-16T10:00:00+09:00","receipt":{"url":"https://r.example/1"},"card":{"company":"Hyundai"}}`

	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "api.tosspayments.com", r.URL.Host)
		require.Equal(t, "/v1/payments/confirm", r.URL.Path)

		wantAuth := "Basic " + base64.StdEncoding.EncodeToString([]byte("live_sk_secret:"))
		require.Equal(t, wantAuth, r.Header.Get("Authorization"))

		reqBody, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.JSONEq(t, `{"paymentKey":"pay-1","orderId":"ORD-1","amount":15000}`, string(reqBody))

		return &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(strings.NewReader(body))}, nil
	})

	conf, err := c.Confirm(context.Background(), "pay-1", "ORD-1", decimal.NewFromInt(15000))
	require.NoError(t, err)
	require.Equal(t, "pay-1", conf.PaymentKey)
	require.Equal(t, "ORD-1", conf.OrderNumber)
	require.Equal(t, domain.PaymentStatusPaid, conf.Status)
	require.Equal(t, domain.MethodCard, conf.Method)
	require.True(t, conf.TotalAmount.Equal(decimal.NewFromInt(15000)))
	require.Equal(t, "https://r.example/1", conf.ReceiptURL)
	require.False(t, conf.ApprovedAt.IsZero())
	require.JSONEq(t, `{"company":"Hyundai"}`, string(conf.CardInfo))
}

func TestClient_Confirm_alreadyProcessed(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusBadRequest,
			Body:       io.NopCloser(strings.NewReader(`{"code":"ALREADY_PROCESSED_PAYMENT","message":"done"}`)),
		}, nil
	})

	_, err := c.Confirm(context.Background(), "pay-1", "ORD-1", decimal.NewFromInt(15000))
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestClient_Confirm_amountMismatch(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusBadRequest,
			Body:       io.NopCloser(strings.NewReader(`{"code":"INVALID_AMOUNT","message":"amount mismatch"}`)),
		}, nil
	})

	_, err := c.Confirm(context.Background(), "pay-1", "ORD-1", decimal.NewFromInt(1))
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestClient_Confirm_mockMode(t *testing.T) {
	// test_sk_ keys never hit the network
	c := toss.New(&http.Client{Transport: rtFunc(func(r *http.Request) (*http.Response, error) {
		t.Fatal("unexpected network call in mock mode")

		return nil, nil
	})}, "test_sk_sandbox", "", false)

	conf, err := c.Confirm(context.Background(), "pay-9", "ORD-9", decimal.NewFromInt(500))
	require.NoError(t, err)
	require.Equal(t, domain.PaymentStatusPaid, conf.Status)
	require.Equal(t, "pay-9", conf.PaymentKey)
	require.True(t, conf.TotalAmount.Equal(decimal.NewFromInt(500)))
}

func TestClient_Retrieve_notFound(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusNotFound,
			Body:       io.NopCloser(strings.NewReader(`{"code":"NOT_FOUND_PAYMENT","message":"no such payment"}`)),
		}, nil
	})

	_, err := c.Retrieve(context.Background(), "pay-404")
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestClient_Cancel_partial(t *testing.T) {
	//nolint: lll
	body := `{"paymentKey":"pay-1","status":"PARTIAL_CANCELED","cancels":[{"transactionKey":"cx-1","canceledAt":"2025-09-17T12:00:00+09:00","cancelAmount":5000}]}`

	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "/v1/payments/pay-1/cancel", r.URL.Path)

		reqBody, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.JSONEq(t, `{"cancelReason":"customer request","cancelAmount":5000,"taxFreeAmount":0}`, string(reqBody))

		return &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(strings.NewReader(body))}, nil
	})

	res, err := c.Cancel(context.Background(),
		"pay-1",
		"customer request",
		decimal.NewFromInt(5000),
		decimal.Zero)
	require.NoError(t, err)
	require.Equal(t, domain.PaymentStatusPartialCanceled, res.Status)
	require.Equal(t, "cx-1", res.CancelKey)
	require.True(t, res.CancelAmount.Equal(decimal.NewFromInt(5000)))
	require.False(t, res.CanceledAt.IsZero())
}

func TestMapStatus(t *testing.T) {
	require.Equal(t, domain.PaymentStatusPaid, toss.MapStatus("DONE"))
	require.Equal(t, domain.PaymentStatusWaitingForDeposit, toss.MapStatus("WAITING_FOR_DEPOSIT"))
	require.Equal(t, domain.PaymentStatusFailed, toss.MapStatus("ABORTED"))
	require.Equal(t, domain.PaymentStatusFailed, toss.MapStatus("something-new"))
}
