// Package payment defines the gateway abstraction used to confirm, retrieve
// and cancel payments against an external payment provider.
package payment

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"shopapi/pkg/domain"
)

// Confirmation is the normalized result of a confirmed (or retrieved)
// payment at the provider.
type Confirmation struct {
	// PaymentKey is the provider's identifier for this payment.
	PaymentKey string
	// OrderNumber echoes the merchant order number.
	OrderNumber string
	// Status is the provider status mapped into the internal vocabulary.
	Status domain.PaymentStatus
	// Method is the settlement method, empty when the provider omits it.
	Method domain.PaymentMethod

	TotalAmount decimal.Decimal
	ReceiptURL  string

	RequestedAt time.Time
	ApprovedAt  time.Time

	// Raw method snapshots as returned by the provider.
	CardInfo       json.RawMessage
	VirtualAccount json.RawMessage
	EasyPay        json.RawMessage

	// Raw is the full provider response body.
	Raw json.RawMessage
}

// CancelResult is the normalized result of a cancel request.
type CancelResult struct {
	Status       domain.PaymentStatus
	CancelKey    string
	CanceledAt   time.Time
	CancelAmount decimal.Decimal
	Raw          json.RawMessage
}

// Gateway is the abstraction for payment providers.
//
//go:generate mockgen -package mockpayment -source=interface.go -destination=mock/mockpayment.go *
type Gateway interface {
	// Confirm approves a payment the customer authorized in the provider's
	// checkout UI. Amount must equal the amount the payment was created
	// with; the provider rejects mismatches.
	Confirm(ctx context.Context, paymentKey, orderNumber string, amount decimal.Decimal) (*Confirmation, error)
	// Retrieve fetches the current provider state of a payment by its key.
	Retrieve(ctx context.Context, paymentKey string) (*Confirmation, error)
	// Cancel cancels a payment fully or partially.
	Cancel(ctx context.Context,
		paymentKey, reason string,
		amount, taxFreeAmount decimal.Decimal) (*CancelResult, error)
}
