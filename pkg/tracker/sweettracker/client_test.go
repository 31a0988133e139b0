package sweettracker_test

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"shopapi/pkg/domain"
	"shopapi/pkg/serrors"
	"shopapi/pkg/tracker"
	"shopapi/pkg/tracker/sweettracker"

	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(fn rtFunc) *sweettracker.Client {
	return sweettracker.New(&http.Client{Transport: fn}, "test-key", "")
}

func TestClient_RegisterTracking_success(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "info.sweettracker.co.kr", r.URL.Host)
		require.Equal(t, "/add_invoice", r.URL.Path)
		require.Equal(t, "test-key", r.Header.Get("t_key"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.Contains(t, string(body), "num=1234567890")
		require.Contains(t, string(body), "code=kr.cjlogistics")
		require.Contains(t, string(body), "fid=ship-1")

		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{"success":true}`)),
		}, nil
	})

	err := c.RegisterTracking(context.Background(), "kr.cjlogistics", "1234567890", "ship-1")
	require.NoError(t, err)
}

func TestClient_RegisterTracking_alreadyRegistered(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{"success":false,"code":"104","msg":"already registered"}`)),
		}, nil
	})

	err := c.RegisterTracking(context.Background(), "kr.cjlogistics", "1234567890", "ship-1")
	require.NoError(t, err)
}

func TestClient_RegisterTracking_rejected(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{"success":false,"code":"105","msg":"bad carrier"}`)),
		}, nil
	})

	err := c.RegisterTracking(context.Background(), "nope", "1234567890", "ship-1")
	require.Error(t, err)
	require.Contains(t, err.Error(), "bad carrier")
}

func TestClient_FetchTracking_success(t *testing.T) {
	//nolint: lll
	body := `{"invoiceNo":"1234567890","trackingDetails":[{"timeString":"2025-09-16 10:00:00","where":"Seoul Hub","kind":"picked up","level":2},{"timeString":"2025-09-17 08:30:00","where":"Busan","kind":"out for delivery","level":5,"id":"ev-2"}]}`

	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/v1/trackingInfo", r.URL.Path)
		require.Equal(t, "test-key", r.URL.Query().Get("t_key"))
		require.Equal(t, "kr.cjlogistics", r.URL.Query().Get("t_code"))
		require.Equal(t, "1234567890", r.URL.Query().Get("t_invoice"))

		return &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(strings.NewReader(body))}, nil
	})

	tr, err := c.FetchTracking(context.Background(), "kr.cjlogistics", "1234567890")
	require.NoError(t, err)
	require.NotNil(t, tr)
	require.Equal(t, "1234567890", tr.TrackingNumber)
	require.Len(t, tr.Events, 2)

	require.Equal(t, domain.ShipmentStatusInTransit, tr.Events[0].Status)
	require.Equal(t, "Seoul Hub", tr.Events[0].Location)
	require.Equal(t, time.Date(2025, 9, 16, 10, 0, 0, 0, time.UTC), tr.Events[0].OccurredAt)
	require.Empty(t, tr.Events[0].ProviderEventID)

	require.Equal(t, domain.ShipmentStatusOutForDelivery, tr.Events[1].Status)
	require.Equal(t, "ev-2", tr.Events[1].ProviderEventID)
}

func TestClient_FetchTracking_notFound(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{"status":false,"msg":"unknown invoice","code":"404"}`)),
		}, nil
	})

	tr, err := c.FetchTracking(context.Background(), "kr.cjlogistics", "0000000000")
	require.Error(t, err)
	require.Nil(t, tr)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestClient_FetchTracking_rateLimited(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusTooManyRequests,
			Body:       io.NopCloser(strings.NewReader("slow down")),
		}, nil
	})

	_, err := c.FetchTracking(context.Background(), "kr.cjlogistics", "1234567890")
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrRateLimited)
}

func TestMapProviderStatus(t *testing.T) {
	require.Equal(t, domain.ShipmentStatusPending, tracker.MapProviderStatus("info_received"))
	require.Equal(t, domain.ShipmentStatusPending, tracker.MapProviderStatus("READY"))
	require.Equal(t, domain.ShipmentStatusInTransit, tracker.MapProviderStatus("transit"))
	require.Equal(t, domain.ShipmentStatusOutForDelivery, tracker.MapProviderStatus("out_for_delivery"))
	require.Equal(t, domain.ShipmentStatusDelivered, tracker.MapProviderStatus("delivered"))
	require.Equal(t, domain.ShipmentStatusReturned, tracker.MapProviderStatus("exception"))
	require.Equal(t, domain.ShipmentStatusCanceled, tracker.MapProviderStatus("cancelled"))
	// unknown codes keep the shipment moving instead of stalling it
	require.Equal(t, domain.ShipmentStatusInTransit, tracker.MapProviderStatus("weird-new-code"))
}
