package payments

import (
	"context"

	"github.com/shopspring/decimal"

	"shopapi/pkg/domain"
)

//go:generate mockgen -package mockpayments -source=interface.go -destination=mock/mockpayments.go *
type Payments interface {
	// Create prepares a payment stub for a purchase: status ready, amount
	// equal to the purchase total, and a fresh order number for the
	// provider checkout. Only one payment stub may exist per order number.
	Create(ctx context.Context, userID domain.UserID, purchaseID domain.PurchaseID) (*domain.Payment, error)
	// Confirm approves a payment the customer authorized at the provider.
	// The amount must match the stub; confirming an already paid payment
	// is a conflict.
	Confirm(ctx context.Context, paymentKey, orderNumber string, amount decimal.Decimal) (*domain.Payment, error)
	// Cancel cancels a payment at the provider, fully when amount is zero,
	// and cancels the underlying purchase.
	Cancel(ctx context.Context,
		userID domain.UserID,
		paymentID domain.PaymentID,
		reason string,
		amount, taxFreeAmount decimal.Decimal) (*domain.Payment, error)
	// Payment fetches one payment with its event history. Users only see
	// payments of their own purchases.
	Payment(ctx context.Context, userID domain.UserID, paymentID domain.PaymentID) (*domain.Payment, []domain.PaymentEvent, error)
}
