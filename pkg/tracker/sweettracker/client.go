// Package sweettracker provides a tracker.Client implementation backed by the
// SweetTracker (스마트택배) delivery tracking API.
package sweettracker

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"shopapi/pkg/serrors"
	"shopapi/pkg/tracker"
)

// DefaultBaseURL is the production SweetTracker endpoint.
const DefaultBaseURL = "https://info.sweettracker.co.kr"

// Client talks to the SweetTracker REST API and fulfills the tracker.Client
// interface. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient performs HTTP requests to SweetTracker
	apiKey     string       // apiKey is the t_key issued by SweetTracker
	baseURL    string       // baseURL allows overriding the endpoint in tests
}

// RegisterTracking registers the parcel with SweetTracker so push callbacks
// for it carry fid as the correlation ID.
func (c *Client) RegisterTracking(ctx context.Context, carrier, trackingNumber, fid string) error {
	form := url.Values{}
	form.Set("num", trackingNumber)
	form.Set("code", carrier)
	form.Set("fid", fid)
	form.Set("callback_url", "")

	req, err := http.NewRequestWithContext(ctx,
		http.MethodPost,
		c.baseURL+"/add_invoice",
		strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("t_key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return serrors.With(serrors.ErrRateLimited, "rate limited: %s", strings.TrimSpace(string(b)))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("register tracking failed: %s", strings.TrimSpace(string(b)))
	}

	var registerResp struct {
		Success bool   `json:"success"`
		Code    string `json:"code"`
		Message string `json:"msg"`
	}
	if err := json.Unmarshal(b, &registerResp); err != nil {
		return fmt.Errorf("could not decode response: %w", err)
	}
	// ALREADY_REGISTERED is fine: registration is idempotent from our side
	if !registerResp.Success && registerResp.Code != "104" {
		return fmt.Errorf("register tracking rejected: %s", registerResp.Message)
	}

	return nil
}

// FetchTracking fetches and normalizes the tracking events for the given
// parcel. ErrNotFound is returned when the provider does not know the
// tracking number.
func (c *Client) FetchTracking(ctx context.Context, carrier, trackingNumber string) (*tracker.Tracking, error) {
	// https://tracking.sweettracker.co.kr/ tracking info API
	q := url.Values{}
	q.Set("t_key", c.apiKey)
	q.Set("t_code", carrier)
	q.Set("t_invoice", trackingNumber)

	req, err := http.NewRequestWithContext(ctx,
		http.MethodGet,
		c.baseURL+"/api/v1/trackingInfo?"+q.Encode(),
		nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, serrors.With(serrors.ErrNotFound, "tracking number not found")
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, serrors.With(serrors.ErrRateLimited, "rate limited: %s", strings.TrimSpace(string(b)))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch tracking failed: %s", strings.TrimSpace(string(b)))
	}

	var trackResp struct {
		InvoiceNo string `json:"invoiceNo"`
		Details   []struct {
			TimeString string `json:"timeString"`
			Where      string `json:"where"`
			Kind       string `json:"kind"`
			Level      int    `json:"level"`
			Code       string `json:"code"`
			ID         string `json:"id"`
		} `json:"trackingDetails"`
		Status bool   `json:"status"`
		Msg    string `json:"msg"`
		Code   string `json:"code"`
	}
	if err := json.Unmarshal(b, &trackResp); err != nil {
		return nil, fmt.Errorf("could not decode response: %w", err)
	}
	// the API reports unknown invoices with a 200 and status=false
	if len(trackResp.Details) == 0 && !trackResp.Status && trackResp.Msg != "" {
		return nil, serrors.With(serrors.ErrNotFound, "tracking number not found: %s", trackResp.Msg)
	}

	out := &tracker.Tracking{
		Carrier:        carrier,
		TrackingNumber: trackingNumber,
	}
	for _, d := range trackResp.Details {
		occurredAt, err := parseEventTime(d.TimeString)
		if err != nil {
			return nil, fmt.Errorf("could not parse event time %q: %w", d.TimeString, err)
		}

		raw, err := json.Marshal(d)
		if err != nil {
			return nil, fmt.Errorf("could not marshal raw event: %w", err)
		}

		code := d.Code
		if code == "" {
			code = levelToProviderCode(d.Level)
		}

		out.Events = append(out.Events, tracker.Event{
			OccurredAt:      occurredAt,
			Status:          tracker.MapProviderStatus(code),
			Location:        d.Where,
			Description:     d.Kind,
			ProviderCode:    code,
			ProviderEventID: d.ID,
			Raw:             raw,
		})
	}

	return out, nil
}

// event timestamps come back either as RFC3339 or as the provider's local
// "2006-01-02 15:04:05" form
func parseEventTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}

	return time.Parse("2006-01-02 15:04:05", s)
}

// levelToProviderCode maps SweetTracker's numeric delivery level onto a status
// code understood by tracker.MapProviderStatus.
func levelToProviderCode(level int) string {
	switch level {
	case 1:
		return "info_received"
	case 2, 3, 4:
		return "in_transit"
	case 5:
		return "out_for_delivery"
	case 6:
		return "delivered"
	}

	return ""
}

// Ensure Client conforms to the tracker.Client interface at compile time.
var _ tracker.Client = (*Client)(nil)

// New constructs a Client that uses the provided http.Client and API key to
// interact with SweetTracker. An empty baseURL falls back to DefaultBaseURL.
func New(httpClient *http.Client, apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		apiKey:     apiKey,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
	}
}
