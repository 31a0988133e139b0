package payments_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"shopapi/internal/payments"
	"shopapi/pkg/domain"
	"shopapi/pkg/payment"
	mockpayment "shopapi/pkg/payment/mock"
	"shopapi/pkg/serrors"
	"shopapi/pkg/storage"
	mockstorage "shopapi/pkg/storage/mock"
)

func newTestPayments(t *testing.T) (*gomock.Controller,
	*mockstorage.MockStorage,
	*mockpayment.MockGateway,
	payments.Payments) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	gw := mockpayment.NewMockGateway(ctrl)

	return ctrl, st, gw, payments.New(st, gw)
}

// helper to wire Storage.WithTx to execute callback with a MockAllStorage.
func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func TestPayments_Create(t *testing.T) {
	ctrl, st, _, p := newTestPayments(t)

	userID := domain.UserID(uuid.New())
	purchaseID := domain.PurchaseID(uuid.New())
	purchase := &domain.Purchase{
		ID:        purchaseID,
		UserID:    userID,
		Quantity:  2,
		UnitPrice: decimal.NewFromInt(25000),
		Status:    domain.PurchaseStatusPaid,
	}

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().PurchaseByID(gomock.Any(), userID, purchaseID).Return(purchase, nil)
		tx.EXPECT().StorePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, pmt domain.Payment) (*domain.Payment, error) {
				require.Equal(t, purchaseID, pmt.OrderID)
				require.Equal(t, domain.ProviderToss, pmt.Provider)
				require.Equal(t, domain.PaymentStatusReady, pmt.Status)
				require.Equal(t, "KRW", pmt.Currency)
				require.True(t, pmt.AmountTotal.Equal(decimal.NewFromInt(50000)))
				require.NotEmpty(t, pmt.OrderNumber)

				pmt.ID = domain.PaymentID(uuid.New())

				return &pmt, nil
			})
		tx.EXPECT().StorePaymentEvent(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, ev domain.PaymentEvent) (*domain.PaymentEvent, error) {
				require.Equal(t, "created", ev.EventType)

				return &ev, nil
			})
	})

	created, err := p.Create(context.Background(), userID, purchaseID)
	require.NoError(t, err)
	require.Equal(t, domain.PaymentStatusReady, created.Status)
}

func TestPayments_Create_canceledPurchase(t *testing.T) {
	ctrl, st, _, p := newTestPayments(t)

	userID := domain.UserID(uuid.New())
	purchaseID := domain.PurchaseID(uuid.New())

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().PurchaseByID(gomock.Any(), userID, purchaseID).Return(&domain.Purchase{
			ID:     purchaseID,
			UserID: userID,
			Status: domain.PurchaseStatusCanceled,
		}, nil)
	})

	_, err := p.Create(context.Background(), userID, purchaseID)
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func readyStub(amount int64) *domain.Payment {
	return &domain.Payment{
		ID:          domain.PaymentID(uuid.New()),
		OrderID:     domain.PurchaseID(uuid.New()),
		Provider:    domain.ProviderToss,
		OrderNumber: "SHP-20250601-AB12CD34EF56",
		Status:      domain.PaymentStatusReady,
		Currency:    "KRW",
		AmountTotal: decimal.NewFromInt(amount),
	}
}

func TestPayments_Confirm(t *testing.T) {
	ctrl, st, gw, p := newTestPayments(t)

	stub := readyStub(50000)
	approvedAt := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	conf := &payment.Confirmation{
		PaymentKey:  "pay_key_1",
		OrderNumber: stub.OrderNumber,
		Status:      domain.PaymentStatusPaid,
		Method:      domain.MethodCard,
		TotalAmount: stub.AmountTotal,
		ReceiptURL:  "https://dashboard.tosspayments.com/receipt/1",
		ApprovedAt:  approvedAt,
		CardInfo:    json.RawMessage(`{"company":"shinhan"}`),
		Raw:         json.RawMessage(`{"status":"DONE"}`),
	}

	st.EXPECT().PaymentByOrderNumber(gomock.Any(), stub.OrderNumber).Return(stub, nil)
	gw.EXPECT().Confirm(gomock.Any(), "pay_key_1", stub.OrderNumber, stub.AmountTotal).Return(conf, nil)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UpdatePayment(gomock.Any(), stub.ID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.PaymentID, u storage.PaymentUpdates) (*domain.Payment, error) {
				require.NotNil(t, u.Status)
				require.Equal(t, domain.PaymentStatusPaid, *u.Status)
				require.NotNil(t, u.ProviderPaymentKey)
				require.Equal(t, "pay_key_1", *u.ProviderPaymentKey)
				require.NotNil(t, u.ApprovedAt)
				require.Equal(t, approvedAt, *u.ApprovedAt)

				paid := *stub
				paid.Status = domain.PaymentStatusPaid
				paid.ProviderPaymentKey = "pay_key_1"

				return &paid, nil
			})
		tx.EXPECT().StorePaymentEvent(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, ev domain.PaymentEvent) (*domain.PaymentEvent, error) {
				require.Equal(t, "approval", ev.EventType)
				require.Equal(t, "pay_key_1|approval", ev.DedupeKey)

				return &ev, nil
			})
		tx.EXPECT().SetPurchasePayment(gomock.Any(), stub.OrderID, domain.ProviderToss, "pay_key_1").
			Return(&domain.Purchase{}, nil)
	})

	got, err := p.Confirm(context.Background(), "pay_key_1", stub.OrderNumber, stub.AmountTotal)
	require.NoError(t, err)
	require.Equal(t, domain.PaymentStatusPaid, got.Status)
}

func TestPayments_Confirm_unknownOrderNumber(t *testing.T) {
	_, st, _, p := newTestPayments(t)

	st.EXPECT().PaymentByOrderNumber(gomock.Any(), "SHP-GONE").Return(nil, nil)

	_, err := p.Confirm(context.Background(), "pay_key", "SHP-GONE", decimal.NewFromInt(100))
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestPayments_Confirm_amountMismatch(t *testing.T) {
	_, st, _, p := newTestPayments(t)

	stub := readyStub(50000)
	st.EXPECT().PaymentByOrderNumber(gomock.Any(), stub.OrderNumber).Return(stub, nil)

	_, err := p.Confirm(context.Background(), "pay_key", stub.OrderNumber, decimal.NewFromInt(49999))
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestPayments_Confirm_alreadyPaid(t *testing.T) {
	_, st, _, p := newTestPayments(t)

	stub := readyStub(50000)
	stub.Status = domain.PaymentStatusPaid
	st.EXPECT().PaymentByOrderNumber(gomock.Any(), stub.OrderNumber).Return(stub, nil)

	_, err := p.Confirm(context.Background(), "pay_key", stub.OrderNumber, stub.AmountTotal)
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestPayments_Cancel_fullCancelsPurchase(t *testing.T) {
	ctrl, st, gw, p := newTestPayments(t)

	userID := domain.UserID(uuid.New())
	productID := domain.ProductID(uuid.New())
	pmt := readyStub(30000)
	pmt.Status = domain.PaymentStatusPaid
	pmt.ProviderPaymentKey = "pay_key_9"
	purchase := &domain.Purchase{
		ID:        pmt.OrderID,
		UserID:    userID,
		ProductID: productID,
		Quantity:  1,
		OptionKey: "size=M",
		Status:    domain.PurchaseStatusPaid,
	}

	canceledAt := time.Now().UTC().Truncate(time.Second)
	st.EXPECT().PaymentByID(gomock.Any(), pmt.ID).Return(pmt, nil)
	st.EXPECT().PurchaseByID(gomock.Any(), userID, pmt.OrderID).Return(purchase, nil)
	gw.EXPECT().Cancel(gomock.Any(), "pay_key_9", "customer request",
		pmt.AmountTotal, decimal.Zero).Return(&payment.CancelResult{
		Status:       domain.PaymentStatusCanceled,
		CancelKey:    "cancel_key_1",
		CanceledAt:   canceledAt,
		CancelAmount: pmt.AmountTotal,
	}, nil)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StorePaymentCancel(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c domain.PaymentCancel) (*domain.PaymentCancel, error) {
				require.Equal(t, domain.CancelStatusDone, c.Status)
				require.True(t, c.CancelAmount.Equal(pmt.AmountTotal))
				require.Equal(t, "cancel_key_1", c.ProviderCancelKey)

				return &c, nil
			})
		tx.EXPECT().UpdatePayment(gomock.Any(), pmt.ID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.PaymentID, u storage.PaymentUpdates) (*domain.Payment, error) {
				require.NotNil(t, u.Status)
				require.Equal(t, domain.PaymentStatusCanceled, *u.Status)

				canceled := *pmt
				canceled.Status = domain.PaymentStatusCanceled

				return &canceled, nil
			})
		tx.EXPECT().StorePaymentEvent(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, ev domain.PaymentEvent) (*domain.PaymentEvent, error) {
				require.Equal(t, "cancel", ev.EventType)

				return &ev, nil
			})
		tx.EXPECT().PurchaseByID(gomock.Any(), userID, pmt.OrderID).Return(purchase, nil)
		tx.EXPECT().ReleaseStock(gomock.Any(), productID, "size=M", 1).Return(nil)
		tx.EXPECT().UpdatePurchaseStatus(gomock.Any(), purchase.ID, domain.PurchaseStatusCanceled).
			Return(&domain.Purchase{}, nil)
	})

	got, err := p.Cancel(context.Background(), userID, pmt.ID, "customer request",
		decimal.Zero, decimal.Zero)
	require.NoError(t, err)
	require.Equal(t, domain.PaymentStatusCanceled, got.Status)
}

func TestPayments_Cancel_notPaid(t *testing.T) {
	_, st, _, p := newTestPayments(t)

	userID := domain.UserID(uuid.New())
	pmt := readyStub(30000)
	st.EXPECT().PaymentByID(gomock.Any(), pmt.ID).Return(pmt, nil)
	st.EXPECT().PurchaseByID(gomock.Any(), userID, pmt.OrderID).
		Return(&domain.Purchase{ID: pmt.OrderID, UserID: userID}, nil)

	_, err := p.Cancel(context.Background(), userID, pmt.ID, "oops",
		decimal.Zero, decimal.Zero)
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestPayments_Payment_foreignReadsAsNotFound(t *testing.T) {
	_, st, _, p := newTestPayments(t)

	userID := domain.UserID(uuid.New())
	pmt := readyStub(10000)
	st.EXPECT().PaymentByID(gomock.Any(), pmt.ID).Return(pmt, nil)
	st.EXPECT().PurchaseByID(gomock.Any(), userID, pmt.OrderID).Return(nil, nil)

	_, _, err := p.Payment(context.Background(), userID, pmt.ID)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}
