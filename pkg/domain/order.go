package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseID uniquely identifies a purchase (order line).
type PurchaseID uuid.UUID

// PurchaseStatus represents the lifecycle state of a purchase.
type PurchaseStatus string

const (
	// PurchaseStatusPaid is a completed, paid purchase.
	PurchaseStatusPaid PurchaseStatus = "paid"
	// PurchaseStatusCanceled is a purchase canceled before fulfilment.
	PurchaseStatusCanceled PurchaseStatus = "canceled"
	// PurchaseStatusRefunded is a purchase refunded after payment.
	PurchaseStatusRefunded PurchaseStatus = "refunded"
)

// Purchase is one product bought by a user. Checkout converts each cart item
// into one purchase; price and options are snapshots taken at checkout time.
type Purchase struct {
	ID     PurchaseID `json:"id"`
	UserID UserID     `json:"userId"`

	ProductID ProductID `json:"productId"`
	Quantity  int       `json:"quantity"`
	// UnitPrice is the per-unit price snapshot taken at checkout.
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Options   Options         `json:"options,omitempty"`
	OptionKey string          `json:"optionKey,omitempty"`

	Status      PurchaseStatus `json:"status"`
	PurchasedAt time.Time      `json:"purchasedAt"`

	// PG and PGTransactionID reference the payment provider transaction that
	// settled this purchase. PGTransactionID is unique when set.
	PG              string `json:"pg,omitempty"`
	PGTransactionID string `json:"pgTid,omitempty"`
}

// LineTotal returns quantity x unit price for this purchase.
func (p *Purchase) LineTotal() decimal.Decimal {
	return p.UnitPrice.Mul(decimal.NewFromInt(int64(p.Quantity)))
}
