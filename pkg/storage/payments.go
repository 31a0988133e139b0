package storage

import (
	"context"
	"encoding/json"
	"time"

	"shopapi/pkg/domain"
)

// PaymentUpdates holds the mutable subset of a payment row. Nil fields are
// left untouched.
type PaymentUpdates struct {
	Status             *domain.PaymentStatus
	ProviderPaymentKey *string
	Method             *domain.PaymentMethod

	RequestedAt *time.Time
	ApprovedAt  *time.Time
	CanceledAt  *time.Time

	FailureCode    *string
	FailureMessage *string
	ReceiptURL     *string

	CardInfo       json.RawMessage
	VirtualAccount json.RawMessage
	EasyPay        json.RawMessage

	LastSyncedAt *time.Time
}

// PaymentStorage defines persistence operations for payments, their raw
// provider events and cancel records.
type PaymentStorage interface {
	// StorePayment inserts a payment and returns the stored row. Returns
	// ErrDuplicate when the order number is already taken.
	StorePayment(ctx context.Context, payment domain.Payment) (*domain.Payment, error)
	// PaymentByID fetches a payment by ID; nil when not found.
	PaymentByID(ctx context.Context, id domain.PaymentID) (*domain.Payment, error)
	// PaymentByOrderNumber fetches a payment by its unique merchant order
	// number; nil when not found.
	PaymentByOrderNumber(ctx context.Context, orderNumber string) (*domain.Payment, error)
	// UpdatePayment applies updates to a payment and returns the updated
	// row; nil when the payment does not exist.
	UpdatePayment(ctx context.Context, id domain.PaymentID, updates PaymentUpdates) (*domain.Payment, error)
	// StorePaymentEvent appends a raw provider payload to the payment's
	// event log.
	StorePaymentEvent(ctx context.Context, event domain.PaymentEvent) (*domain.PaymentEvent, error)
	// StorePaymentCancel records a cancellation (full or partial) of a
	// payment.
	StorePaymentCancel(ctx context.Context, cancel domain.PaymentCancel) (*domain.PaymentCancel, error)
	// PaymentEvents returns all recorded events for a payment, oldest
	// first.
	PaymentEvents(ctx context.Context, paymentID domain.PaymentID) ([]domain.PaymentEvent, error)
}
