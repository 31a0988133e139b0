// Package toss provides a payment.Gateway implementation backed by the Toss
// Payments REST API.
package toss

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"shopapi/pkg/domain"
	"shopapi/pkg/payment"
	"shopapi/pkg/serrors"
)

// DefaultBaseURL is the production Toss Payments endpoint.
const DefaultBaseURL = "https://api.tosspayments.com"

// Client talks to the Toss Payments REST API and fulfills the payment.Gateway
// interface. It is safe for concurrent use.
//
// When mock is enabled the client never touches the network and fabricates
// approved responses; this is how local and CI environments run with test_sk_
// keys and no outbound connectivity.
type Client struct {
	httpClient *http.Client
	secretKey  string
	baseURL    string
	mock       bool
}

// authorization returns the Basic header value Toss expects: the secret key
// with a trailing colon, base64 encoded.
func (c *Client) authorization() string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(c.secretKey+":"))
}

type tossError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// mapError converts a Toss error response into a semantic error kind.
func mapError(statusCode int, body []byte) error {
	var te tossError
	if err := json.Unmarshal(body, &te); err != nil {
		te.Message = strings.TrimSpace(string(body))
	}

	switch {
	case te.Code == "ALREADY_PROCESSED_PAYMENT":
		return serrors.With(serrors.ErrConflict, "payment already processed: %s", te.Message)
	case statusCode == http.StatusNotFound:
		return serrors.With(serrors.ErrNotFound, "payment not found: %s", te.Message)
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		return serrors.With(serrors.ErrUnauthorized, "provider rejected credentials: %s", te.Message)
	case statusCode >= 400 && statusCode < 500:
		return serrors.With(serrors.ErrBadRequest, "provider rejected request (%s): %s", te.Code, te.Message)
	}

	return fmt.Errorf("provider request failed (%s): %s", te.Code, te.Message)
}

// paymentObject is the subset of the Toss payment object we consume.
type paymentObject struct {
	PaymentKey  string `json:"paymentKey"`
	OrderID     string `json:"orderId"`
	Status      string `json:"status"`
	Method      string `json:"method"`
	TotalAmount int64  `json:"totalAmount"`
	RequestedAt string `json:"requestedAt"`
	ApprovedAt  string `json:"approvedAt"`
	Receipt     *struct {
		URL string `json:"url"`
	} `json:"receipt"`
	Card           json.RawMessage `json:"card"`
	VirtualAccount json.RawMessage `json:"virtualAccount"`
	EasyPay        json.RawMessage `json:"easyPay"`
	Cancels        []struct {
		TransactionKey string `json:"transactionKey"`
		CanceledAt     string `json:"canceledAt"`
		CancelAmount   int64  `json:"cancelAmount"`
	} `json:"cancels"`
}

// MapStatus converts a Toss payment status into the internal vocabulary.
func MapStatus(s string) domain.PaymentStatus {
	switch strings.ToUpper(s) {
	case "READY":
		return domain.PaymentStatusReady
	case "IN_PROGRESS":
		return domain.PaymentStatusInProgress
	case "WAITING_FOR_DEPOSIT":
		return domain.PaymentStatusWaitingForDeposit
	case "DONE":
		return domain.PaymentStatusPaid
	case "CANCELED":
		return domain.PaymentStatusCanceled
	case "PARTIAL_CANCELED":
		return domain.PaymentStatusPartialCanceled
	case "ABORTED":
		return domain.PaymentStatusFailed
	case "EXPIRED":
		return domain.PaymentStatusExpired
	}

	return domain.PaymentStatusFailed
}

// MapMethod converts a Toss settlement method (English or Korean form) into
// the internal vocabulary. Unknown methods map to empty.
func MapMethod(s string) domain.PaymentMethod {
	switch strings.ToUpper(s) {
	case "CARD", "카드":
		return domain.MethodCard
	case "VIRTUAL_ACCOUNT", "가상계좌":
		return domain.MethodVirtualAccount
	case "TRANSFER", "계좌이체":
		return domain.MethodAccountTransfer
	case "MOBILE_PHONE", "휴대폰":
		return domain.MethodMobilePhone
	case "EASY_PAY", "간편결제":
		return domain.MethodEasyPay
	case "GIFT_CERTIFICATE", "상품권":
		return domain.MethodGiftCertificate
	}

	return ""
}

func parseTossTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}

	return time.Time{}
}

func (o *paymentObject) toConfirmation(raw json.RawMessage) *payment.Confirmation {
	conf := &payment.Confirmation{
		PaymentKey:     o.PaymentKey,
		OrderNumber:    o.OrderID,
		Status:         MapStatus(o.Status),
		Method:         MapMethod(o.Method),
		TotalAmount:    decimal.NewFromInt(o.TotalAmount),
		RequestedAt:    parseTossTime(o.RequestedAt),
		ApprovedAt:     parseTossTime(o.ApprovedAt),
		CardInfo:       o.Card,
		VirtualAccount: o.VirtualAccount,
		EasyPay:        o.EasyPay,
		Raw:            raw,
	}
	if o.Receipt != nil {
		conf.ReceiptURL = o.Receipt.URL
	}

	return conf
}

func (c *Client) do(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("could not marshal request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Authorization", c.authorization())
	req.Header.Set("Content-Type", "application/json")

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
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, mapError(resp.StatusCode, b)
	}

	return b, nil
}

// Confirm approves the payment the customer authorized in the Toss checkout
// UI. Toss rejects the call when amount differs from the checkout amount.
func (c *Client) Confirm(ctx context.Context,
	paymentKey, orderNumber string,
	amount decimal.Decimal) (*payment.Confirmation, error) {
	if c.mock {
		return c.mockConfirmation(paymentKey, orderNumber, amount), nil
	}

	// https://docs.tosspayments.com/reference#결제-승인
	body := map[string]any{
		"paymentKey": paymentKey,
		"orderId":    orderNumber,
		"amount":     amount.IntPart(),
	}
	raw, err := c.do(ctx, http.MethodPost, "/v1/payments/confirm", body)
	if err != nil {
		return nil, err
	}

	var obj paymentObject
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, fmt.Errorf("could not decode response: %w", err)
	}

	return obj.toConfirmation(raw), nil
}

// Retrieve fetches the current state of a payment by its provider key.
func (c *Client) Retrieve(ctx context.Context, paymentKey string) (*payment.Confirmation, error) {
	if c.mock {
		return c.mockConfirmation(paymentKey, "", decimal.Zero), nil
	}

	raw, err := c.do(ctx, http.MethodGet, "/v1/payments/"+paymentKey, nil)
	if err != nil {
		return nil, err
	}

	var obj paymentObject
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, fmt.Errorf("could not decode response: %w", err)
	}

	return obj.toConfirmation(raw), nil
}

// Cancel cancels a payment fully or partially.
func (c *Client) Cancel(ctx context.Context,
	paymentKey, reason string,
	amount, taxFreeAmount decimal.Decimal) (*payment.CancelResult, error) {
	if c.mock {
		return &payment.CancelResult{
			Status:       domain.PaymentStatusCanceled,
			CancelKey:    "mock-cancel-" + paymentKey,
			CanceledAt:   time.Now().UTC(),
			CancelAmount: amount,
			Raw:          json.RawMessage(`{"status":"CANCELED"}`),
		}, nil
	}

	if reason == "" {
		reason = "cancel"
	}
	body := map[string]any{
		"cancelReason":  reason,
		"cancelAmount":  amount.IntPart(),
		"taxFreeAmount": taxFreeAmount.IntPart(),
	}
	raw, err := c.do(ctx, http.MethodPost, "/v1/payments/"+paymentKey+"/cancel", body)
	if err != nil {
		return nil, err
	}

	var obj paymentObject
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, fmt.Errorf("could not decode response: %w", err)
	}

	result := &payment.CancelResult{
		Status: MapStatus(obj.Status),
		Raw:    raw,
	}
	if len(obj.Cancels) > 0 {
		last := obj.Cancels[len(obj.Cancels)-1]
		result.CancelKey = last.TransactionKey
		result.CanceledAt = parseTossTime(last.CanceledAt)
		result.CancelAmount = decimal.NewFromInt(last.CancelAmount)
	}

	return result, nil
}

func (c *Client) mockConfirmation(paymentKey, orderNumber string, amount decimal.Decimal) *payment.Confirmation {
	return &payment.Confirmation{
		PaymentKey:  paymentKey,
		OrderNumber: orderNumber,
		Status:      domain.PaymentStatusPaid,
		Method:      domain.MethodCard,
		TotalAmount: amount,
		ReceiptURL:  "https://example.local/receipt",
		ApprovedAt:  time.Now().UTC(),
		CardInfo:    json.RawMessage(`{"company":"Mock","number":"****-****-****-1234"}`),
		Raw:         json.RawMessage(`{"status":"DONE","method":"CARD"}`),
	}
}

// Ensure Client conforms to the payment.Gateway interface at compile time.
var _ payment.Gateway = (*Client)(nil)

// New constructs a Client using the provided http.Client and secret key. An
// empty baseURL falls back to DefaultBaseURL. When mock is true, or the secret
// key is a sandbox test_sk_ key, the client fabricates responses locally
// instead of calling the provider.
func New(httpClient *http.Client, secretKey, baseURL string, mock bool) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		secretKey:  secretKey,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		mock:       mock || strings.HasPrefix(secretKey, "test_sk_"),
	}
}
