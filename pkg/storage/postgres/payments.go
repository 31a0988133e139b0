package postgres

import (
	"context"
	"fmt"

	"shopapi/pkg/domain"
	"shopapi/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	paymentsTable       = "payments"
	paymentEventsTable  = "payment_events"
	paymentCancelsTable = "payment_cancels"
)

func (p *PgSQL) StorePayment(ctx context.Context, payment domain.Payment) (*domain.Payment, error) {
	var pgPayment PgPayment
	pgPayment.FromDomain(payment)

	var row PgPayment
	found, err := p.Builder.Insert(paymentsTable).
		Rows(pgPayment).
		Returning(&PgPayment{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrDuplicate
		}

		return nil, fmt.Errorf("could not store payment into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not store payment into pg: no row returned")
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) PaymentByID(ctx context.Context, id domain.PaymentID) (*domain.Payment, error) {
	var row PgPayment
	found, err := p.Builder.From(paymentsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch payment by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) PaymentByOrderNumber(ctx context.Context, orderNumber string) (*domain.Payment, error) {
	var row PgPayment
	found, err := p.Builder.From(paymentsTable).
		Where(goqu.I("order_number").Eq(orderNumber)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch payment by order number: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UpdatePayment applies only the non-nil fields of updates.
func (p *PgSQL) UpdatePayment(ctx context.Context,
	id domain.PaymentID,
	updates storage.PaymentUpdates) (*domain.Payment, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Status != nil {
		rec["status"] = string(*updates.Status)
	}
	if updates.ProviderPaymentKey != nil {
		rec["provider_payment_key"] = *updates.ProviderPaymentKey
	}
	if updates.Method != nil {
		rec["method"] = string(*updates.Method)
	}
	if updates.RequestedAt != nil {
		rec["requested_at"] = *updates.RequestedAt
	}
	if updates.ApprovedAt != nil {
		rec["approved_at"] = *updates.ApprovedAt
	}
	if updates.CanceledAt != nil {
		rec["canceled_at"] = *updates.CanceledAt
	}
	if updates.FailureCode != nil {
		rec["failure_code"] = *updates.FailureCode
	}
	if updates.FailureMessage != nil {
		rec["failure_message"] = *updates.FailureMessage
	}
	if updates.ReceiptURL != nil {
		rec["receipt_url"] = *updates.ReceiptURL
	}
	if updates.CardInfo != nil {
		rec["card_info"] = []byte(updates.CardInfo)
	}
	if updates.VirtualAccount != nil {
		rec["virtual_account"] = []byte(updates.VirtualAccount)
	}
	if updates.EasyPay != nil {
		rec["easy_pay"] = []byte(updates.EasyPay)
	}
	if updates.LastSyncedAt != nil {
		rec["last_synced_at"] = *updates.LastSyncedAt
	}

	var row PgPayment
	found, err := p.Builder.Update(paymentsTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgPayment{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update payment in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) StorePaymentEvent(ctx context.Context, event domain.PaymentEvent) (*domain.PaymentEvent, error) {
	var pgEvent PgPaymentEvent
	pgEvent.FromDomain(event)

	var row PgPaymentEvent
	found, err := p.Builder.Insert(paymentEventsTable).
		Rows(pgEvent).
		Returning(&PgPaymentEvent{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not store payment event into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not store payment event into pg: no row returned")
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) StorePaymentCancel(ctx context.Context, cancel domain.PaymentCancel) (*domain.PaymentCancel, error) {
	var pgCancel PgPaymentCancel
	pgCancel.FromDomain(cancel)

	var row PgPaymentCancel
	found, err := p.Builder.Insert(paymentCancelsTable).
		Rows(pgCancel).
		Returning(&PgPaymentCancel{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not store payment cancel into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not store payment cancel into pg: no row returned")
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) PaymentEvents(ctx context.Context, paymentID domain.PaymentID) ([]domain.PaymentEvent, error) {
	var rows []PgPaymentEvent
	if err := p.Builder.From(paymentEventsTable).
		Where(goqu.I("payment_id").Eq(uuid.UUID(paymentID))).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch payment events from pg: %w", err)
	}

	out := make([]domain.PaymentEvent, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}
