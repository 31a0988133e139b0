package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentID uniquely identifies a payment.
type PaymentID uuid.UUID

// PaymentEventID uniquely identifies a payment history event.
type PaymentEventID uuid.UUID

// PaymentCancelID uniquely identifies a cancel request against a payment.
type PaymentCancelID uuid.UUID

// PaymentProvider identifies the payment gateway.
type PaymentProvider string

// ProviderToss is the Toss Payments gateway.
const ProviderToss PaymentProvider = "toss"

// PaymentMethod is the settlement method reported by the provider.
type PaymentMethod string

const (
	MethodCard            PaymentMethod = "card"
	MethodVirtualAccount  PaymentMethod = "virtual_account"
	MethodAccountTransfer PaymentMethod = "account_transfer"
	MethodMobilePhone     PaymentMethod = "mobile_phone"
	MethodEasyPay         PaymentMethod = "easy_pay"
	MethodGiftCertificate PaymentMethod = "gift_certificate"
)

// PaymentStatus represents the lifecycle state of a payment.
type PaymentStatus string

const (
	PaymentStatusReady             PaymentStatus = "ready"
	PaymentStatusInProgress        PaymentStatus = "in_progress"
	PaymentStatusWaitingForDeposit PaymentStatus = "waiting_for_deposit"
	PaymentStatusPaid              PaymentStatus = "paid"
	PaymentStatusPartialCanceled   PaymentStatus = "partial_canceled"
	PaymentStatusCanceled          PaymentStatus = "canceled"
	PaymentStatusFailed            PaymentStatus = "failed"
	PaymentStatusExpired           PaymentStatus = "expired"
)

// CancelStatus represents the lifecycle state of a payment cancel request.
type CancelStatus string

const (
	CancelStatusRequested  CancelStatus = "requested"
	CancelStatusProcessing CancelStatus = "processing"
	CancelStatusDone       CancelStatus = "done"
	CancelStatusFailed     CancelStatus = "failed"
)

// Payment is the payment header for a purchase. A purchase may have several
// payments (retries), each with its own provider keys.
type Payment struct {
	ID PaymentID `json:"id"`

	OrderID PurchaseID `json:"orderId"`

	Provider PaymentProvider `json:"provider"`
	// ProviderPaymentKey is the Toss paymentKey, unique when set.
	ProviderPaymentKey string `json:"providerPaymentKey,omitempty"`
	// OrderNumber is the value passed to the provider as orderId; it is how
	// confirm callbacks find the payment stub. Unique when set.
	OrderNumber string `json:"orderNumber,omitempty"`

	Method PaymentMethod `json:"method,omitempty"`
	Status PaymentStatus `json:"status"`

	Currency      string          `json:"currency"`
	AmountTotal   decimal.Decimal `json:"amountTotal"`
	AmountTaxFree decimal.Decimal `json:"amountTaxFree"`
	VAT           decimal.Decimal `json:"vat"`

	RequestedAt time.Time `json:"requestedAt,omitempty"`
	ApprovedAt  time.Time `json:"approvedAt,omitempty"`
	CanceledAt  time.Time `json:"canceledAt,omitempty"`

	FailureCode    string `json:"failureCode,omitempty"`
	FailureMessage string `json:"failureMessage,omitempty"`
	ReceiptURL     string `json:"receiptUrl,omitempty"`

	// Raw provider snapshots per settlement method.
	CardInfo       json.RawMessage `json:"cardInfo,omitempty"`
	VirtualAccount json.RawMessage `json:"virtualAccount,omitempty"`
	EasyPay        json.RawMessage `json:"easyPay,omitempty"`

	LastSyncedAt time.Time `json:"lastSyncedAt,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// PaymentEvent is one row of the payment history log.
type PaymentEvent struct {
	ID        PaymentEventID `json:"id"`
	PaymentID PaymentID      `json:"paymentId"`

	// Source is where the event came from: webhook, sync, manual or api.
	Source string `json:"source"`
	// EventType is the kind of transition: approval, cancel, fail, status_changed.
	EventType      string          `json:"eventType"`
	ProviderStatus PaymentStatus   `json:"providerStatus,omitempty"`
	Payload        json.RawMessage `json:"payload,omitempty"`
	DedupeKey      string          `json:"dedupeKey,omitempty"`

	OccurredAt time.Time `json:"occurredAt,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// PaymentCancel records a full or partial cancel against a payment.
type PaymentCancel struct {
	ID        PaymentCancelID `json:"id"`
	PaymentID PaymentID       `json:"paymentId"`

	Status CancelStatus `json:"status"`
	Reason string       `json:"reason,omitempty"`

	CancelAmount  decimal.Decimal `json:"cancelAmount"`
	TaxFreeAmount decimal.Decimal `json:"taxFreeAmount"`

	RequestedAt time.Time `json:"requestedAt"`
	ApprovedAt  time.Time `json:"approvedAt,omitempty"`

	ProviderCancelKey string `json:"providerCancelKey,omitempty"`
	ErrorCode         string `json:"errorCode,omitempty"`
	ErrorMessage      string `json:"errorMessage,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}
