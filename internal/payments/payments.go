// Package payments drives the provider payment flow: a ready stub is created
// for a purchase, confirmed after the customer authorizes it in the provider
// checkout, and canceled through the provider when refunding.
package payments

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"shopapi/pkg/domain"
	"shopapi/pkg/payment"
	"shopapi/pkg/serrors"
	"shopapi/pkg/storage"
)

type payments struct {
	storage storage.Storage
	gateway payment.Gateway
}

// newOrderNumber builds the merchant order number handed to the provider as
// orderId. It embeds the date for operator grepping; uniqueness comes from
// the random part.
func newOrderNumber(now time.Time) string {
	random := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:12]

	return fmt.Sprintf("SHP-%s-%s", now.UTC().Format("20060102"), random)
}

func (p payments) Create(ctx context.Context,
	userID domain.UserID,
	purchaseID domain.PurchaseID) (*domain.Payment, error) {
	var created *domain.Payment

	if err := p.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		purchase, err := tx.PurchaseByID(ctx, userID, purchaseID)
		if err != nil {
			return fmt.Errorf("could not fetch purchase: %w", err)
		}
		if purchase == nil {
			return serrors.With(serrors.ErrNotFound, "purchase not found")
		}
		if purchase.Status != domain.PurchaseStatusPaid {
			return serrors.With(serrors.ErrConflict, "purchase is %s", purchase.Status)
		}

		now := time.Now()
		created, err = tx.StorePayment(ctx, domain.Payment{
			OrderID:     purchaseID,
			Provider:    domain.ProviderToss,
			OrderNumber: newOrderNumber(now),
			Status:      domain.PaymentStatusReady,
			Currency:    "KRW",
			AmountTotal: purchase.LineTotal(),
			RequestedAt: now,
		})
		if err != nil {
			return fmt.Errorf("could not store payment: %w", err)
		}

		if _, err := tx.StorePaymentEvent(ctx, domain.PaymentEvent{
			PaymentID:      created.ID,
			Source:         "api",
			EventType:      "created",
			ProviderStatus: domain.PaymentStatusReady,
			OccurredAt:     now,
		}); err != nil {
			return fmt.Errorf("could not store payment event: %w", err)
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return created, nil
}

func (p payments) Confirm(ctx context.Context,
	paymentKey, orderNumber string,
	amount decimal.Decimal) (*domain.Payment, error) {
	stub, err := p.storage.PaymentByOrderNumber(ctx, orderNumber)
	if err != nil {
		return nil, fmt.Errorf("could not fetch payment: %w", err)
	}
	if stub == nil {
		return nil, serrors.With(serrors.ErrNotFound, "payment not found")
	}
	if stub.Status == domain.PaymentStatusPaid {
		return nil, serrors.With(serrors.ErrConflict, "payment already confirmed")
	}
	if !stub.AmountTotal.Equal(amount) {
		return nil, serrors.With(serrors.ErrBadRequest,
			"amount %s does not match payment amount %s", amount, stub.AmountTotal)
	}

	conf, err := p.gateway.Confirm(ctx, paymentKey, orderNumber, amount)
	if err != nil {
		return nil, fmt.Errorf("could not confirm payment at provider: %w", err)
	}

	var updated *domain.Payment
	if err := p.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		now := time.Now()
		updates := storage.PaymentUpdates{
			Status:             &conf.Status,
			ProviderPaymentKey: &conf.PaymentKey,
			CardInfo:           conf.CardInfo,
			VirtualAccount:     conf.VirtualAccount,
			EasyPay:            conf.EasyPay,
			LastSyncedAt:       &now,
		}
		if conf.Method != "" {
			updates.Method = &conf.Method
		}
		if conf.ReceiptURL != "" {
			updates.ReceiptURL = &conf.ReceiptURL
		}
		if !conf.RequestedAt.IsZero() {
			updates.RequestedAt = &conf.RequestedAt
		}
		if !conf.ApprovedAt.IsZero() {
			updates.ApprovedAt = &conf.ApprovedAt
		}

		updated, err = tx.UpdatePayment(ctx, stub.ID, updates)
		if err != nil {
			return fmt.Errorf("could not update payment: %w", err)
		}
		if updated == nil {
			return serrors.With(serrors.ErrNotFound, "payment not found")
		}

		if _, err := tx.StorePaymentEvent(ctx, domain.PaymentEvent{
			PaymentID:      stub.ID,
			Source:         "api",
			EventType:      "approval",
			ProviderStatus: conf.Status,
			Payload:        conf.Raw,
			DedupeKey:      conf.PaymentKey + "|approval",
			OccurredAt:     now,
		}); err != nil {
			return fmt.Errorf("could not store payment event: %w", err)
		}

		if conf.Status == domain.PaymentStatusPaid {
			if _, err := tx.SetPurchasePayment(ctx, stub.OrderID,
				domain.ProviderToss, conf.PaymentKey); err != nil {
				return fmt.Errorf("could not stamp purchase payment: %w", err)
			}
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return updated, nil
}

// owned fetches a payment and verifies the purchase behind it belongs to the
// user. Foreign payments read as not found.
func (p payments) owned(ctx context.Context,
	store storage.AllStorage,
	userID domain.UserID,
	paymentID domain.PaymentID) (*domain.Payment, error) {
	pmt, err := store.PaymentByID(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("could not fetch payment: %w", err)
	}
	if pmt == nil {
		return nil, serrors.With(serrors.ErrNotFound, "payment not found")
	}

	purchase, err := store.PurchaseByID(ctx, userID, pmt.OrderID)
	if err != nil {
		return nil, fmt.Errorf("could not fetch purchase: %w", err)
	}
	if purchase == nil {
		return nil, serrors.With(serrors.ErrNotFound, "payment not found")
	}

	return pmt, nil
}

func (p payments) Cancel(ctx context.Context,
	userID domain.UserID,
	paymentID domain.PaymentID,
	reason string,
	amount, taxFreeAmount decimal.Decimal) (*domain.Payment, error) {
	pmt, err := p.owned(ctx, p.storage, userID, paymentID)
	if err != nil {
		return nil, err
	}

	switch pmt.Status {
	case domain.PaymentStatusPaid, domain.PaymentStatusPartialCanceled:
	default:
		return nil, serrors.With(serrors.ErrConflict, "payment is %s, cannot cancel", pmt.Status)
	}

	if amount.IsZero() {
		amount = pmt.AmountTotal
	}

	res, err := p.gateway.Cancel(ctx, pmt.ProviderPaymentKey, reason, amount, taxFreeAmount)
	if err != nil {
		return nil, fmt.Errorf("could not cancel payment at provider: %w", err)
	}

	var updated *domain.Payment
	if err := p.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		now := time.Now()

		if _, err := tx.StorePaymentCancel(ctx, domain.PaymentCancel{
			PaymentID:         pmt.ID,
			Status:            domain.CancelStatusDone,
			Reason:            reason,
			CancelAmount:      amount,
			TaxFreeAmount:     taxFreeAmount,
			RequestedAt:       now,
			ApprovedAt:        res.CanceledAt,
			ProviderCancelKey: res.CancelKey,
		}); err != nil {
			return fmt.Errorf("could not store payment cancel: %w", err)
		}

		updates := storage.PaymentUpdates{
			Status:       &res.Status,
			LastSyncedAt: &now,
		}
		if !res.CanceledAt.IsZero() {
			updates.CanceledAt = &res.CanceledAt
		}

		updated, err = tx.UpdatePayment(ctx, pmt.ID, updates)
		if err != nil {
			return fmt.Errorf("could not update payment: %w", err)
		}

		if _, err := tx.StorePaymentEvent(ctx, domain.PaymentEvent{
			PaymentID:      pmt.ID,
			Source:         "api",
			EventType:      "cancel",
			ProviderStatus: res.Status,
			Payload:        res.Raw,
			DedupeKey:      res.CancelKey + "|cancel",
			OccurredAt:     now,
		}); err != nil {
			return fmt.Errorf("could not store payment event: %w", err)
		}

		// a full cancel cancels the order and puts the stock back
		if res.Status == domain.PaymentStatusCanceled {
			purchase, err := tx.PurchaseByID(ctx, userID, pmt.OrderID)
			if err != nil {
				return fmt.Errorf("could not fetch purchase: %w", err)
			}
			if purchase != nil && purchase.Status == domain.PurchaseStatusPaid {
				if err := tx.ReleaseStock(ctx,
					purchase.ProductID, purchase.OptionKey, purchase.Quantity); err != nil {
					return fmt.Errorf("could not release stock: %w", err)
				}
				if _, err := tx.UpdatePurchaseStatus(ctx,
					purchase.ID, domain.PurchaseStatusCanceled); err != nil {
					return fmt.Errorf("could not cancel purchase: %w", err)
				}
			}
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return updated, nil
}

func (p payments) Payment(ctx context.Context,
	userID domain.UserID,
	paymentID domain.PaymentID) (*domain.Payment, []domain.PaymentEvent, error) {
	pmt, err := p.owned(ctx, p.storage, userID, paymentID)
	if err != nil {
		return nil, nil, err
	}

	events, err := p.storage.PaymentEvents(ctx, pmt.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("could not fetch payment events: %w", err)
	}

	return pmt, events, nil
}

// New creates a Payments service backed by the provided storage and gateway.
func New(storage storage.Storage, gateway payment.Gateway) Payments {
	return &payments{storage: storage, gateway: gateway}
}
