package orders_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"shopapi/internal/orders"
	"shopapi/pkg/domain"
	"shopapi/pkg/serrors"
	"shopapi/pkg/storage"
	mockstorage "shopapi/pkg/storage/mock"
)

func newTestOrders(t *testing.T) (*gomock.Controller, *mockstorage.MockStorage, orders.Orders) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)

	return ctrl, st, orders.New(st)
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

func testCart(userID domain.UserID, items ...domain.CartItem) *domain.Cart {
	return &domain.Cart{
		ID:        domain.CartID(uuid.New()),
		UserID:    userID,
		Items:     items,
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func TestOrders_Checkout(t *testing.T) {
	ctrl, st, o := newTestOrders(t)

	userID := domain.UserID(uuid.New())
	productID := domain.ProductID(uuid.New())
	cart := testCart(userID, domain.CartItem{
		ID:        domain.CartItemID(uuid.New()),
		ProductID: productID,
		OptionKey: "size=L",
		Options:   domain.Options{"size": "L"},
		Quantity:  2,
		UnitPrice: decimal.NewFromInt(15000),
	})

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().CartByUser(gomock.Any(), userID).Return(cart, nil)
		tx.EXPECT().ReserveStock(gomock.Any(), productID, "size=L", 2).Return(nil)
		tx.EXPECT().StorePurchases(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, rows ...domain.Purchase) ([]domain.Purchase, error) {
				require.Len(t, rows, 1)
				require.Equal(t, userID, rows[0].UserID)
				require.Equal(t, domain.PurchaseStatusPaid, rows[0].Status)
				require.True(t, rows[0].UnitPrice.Equal(decimal.NewFromInt(15000)))
				require.Equal(t, "size=L", rows[0].OptionKey)

				stored := rows[0]
				stored.ID = domain.PurchaseID(uuid.New())
				stored.PurchasedAt = time.Now()

				return []domain.Purchase{stored}, nil
			})
		tx.EXPECT().ClearCart(gomock.Any(), cart.ID).Return(nil)
	})

	purchases, err := o.Checkout(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, purchases, 1)
	require.Equal(t, 2, purchases[0].Quantity)
}

func TestOrders_Checkout_outOfStockRollsBack(t *testing.T) {
	ctrl, st, o := newTestOrders(t)

	userID := domain.UserID(uuid.New())
	productID := domain.ProductID(uuid.New())
	cart := testCart(userID, domain.CartItem{
		ID:        domain.CartItemID(uuid.New()),
		ProductID: productID,
		OptionKey: "",
		Quantity:  5,
		UnitPrice: decimal.NewFromInt(9900),
	})

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().CartByUser(gomock.Any(), userID).Return(cart, nil)
		tx.EXPECT().ReserveStock(gomock.Any(), productID, "", 5).Return(storage.ErrOutOfStock)
	})

	_, err := o.Checkout(context.Background(), userID)
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestOrders_Checkout_emptyCart(t *testing.T) {
	ctrl, st, o := newTestOrders(t)

	userID := domain.UserID(uuid.New())

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().CartByUser(gomock.Any(), userID).Return(testCart(userID), nil)
	})

	_, err := o.Checkout(context.Background(), userID)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestOrders_Checkout_expiredCart(t *testing.T) {
	ctrl, st, o := newTestOrders(t)

	userID := domain.UserID(uuid.New())
	cart := testCart(userID, domain.CartItem{
		ID:        domain.CartItemID(uuid.New()),
		ProductID: domain.ProductID(uuid.New()),
		Quantity:  1,
		UnitPrice: decimal.NewFromInt(100),
	})
	cart.ExpiresAt = time.Now().Add(-time.Minute)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().CartByUser(gomock.Any(), userID).Return(cart, nil)
	})

	_, err := o.Checkout(context.Background(), userID)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestOrders_Purchases_cursor(t *testing.T) {
	_, st, o := newTestOrders(t)

	userID := domain.UserID(uuid.New())
	cursor := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	st.EXPECT().UserPurchases(gomock.Any(), userID, cursor, uint(20)).
		Return(storage.UserPurchases{}, nil)

	_, err := o.Purchases(context.Background(), userID, cursor.Format(time.RFC3339), 20)
	require.NoError(t, err)
}

func TestOrders_Purchases_badCursor(t *testing.T) {
	_, _, o := newTestOrders(t)

	_, err := o.Purchases(context.Background(), domain.UserID(uuid.New()), "yesterday", 20)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestOrders_Cancel_releasesStock(t *testing.T) {
	ctrl, st, o := newTestOrders(t)

	userID := domain.UserID(uuid.New())
	productID := domain.ProductID(uuid.New())
	purchaseID := domain.PurchaseID(uuid.New())
	paid := &domain.Purchase{
		ID:        purchaseID,
		UserID:    userID,
		ProductID: productID,
		Quantity:  3,
		OptionKey: "color=black",
		Status:    domain.PurchaseStatusPaid,
	}
	canceled := *paid
	canceled.Status = domain.PurchaseStatusCanceled

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().PurchaseByID(gomock.Any(), userID, purchaseID).Return(paid, nil)
		tx.EXPECT().ReleaseStock(gomock.Any(), productID, "color=black", 3).Return(nil)
		tx.EXPECT().UpdatePurchaseStatus(gomock.Any(), purchaseID, domain.PurchaseStatusCanceled).
			Return(&canceled, nil)
	})

	got, err := o.Cancel(context.Background(), userID, purchaseID)
	require.NoError(t, err)
	require.Equal(t, domain.PurchaseStatusCanceled, got.Status)
}

func TestOrders_Cancel_alreadyCanceledIsNoop(t *testing.T) {
	ctrl, st, o := newTestOrders(t)

	userID := domain.UserID(uuid.New())
	purchaseID := domain.PurchaseID(uuid.New())
	canceled := &domain.Purchase{
		ID:     purchaseID,
		UserID: userID,
		Status: domain.PurchaseStatusCanceled,
	}

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().PurchaseByID(gomock.Any(), userID, purchaseID).Return(canceled, nil)
	})

	got, err := o.Cancel(context.Background(), userID, purchaseID)
	require.NoError(t, err)
	require.Equal(t, domain.PurchaseStatusCanceled, got.Status)
}

func TestOrders_Cancel_refundedConflicts(t *testing.T) {
	ctrl, st, o := newTestOrders(t)

	userID := domain.UserID(uuid.New())
	purchaseID := domain.PurchaseID(uuid.New())
	refunded := &domain.Purchase{
		ID:     purchaseID,
		UserID: userID,
		Status: domain.PurchaseStatusRefunded,
	}

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().PurchaseByID(gomock.Any(), userID, purchaseID).Return(refunded, nil)
	})

	_, err := o.Cancel(context.Background(), userID, purchaseID)
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestOrders_Refund_canceledSkipsStockRelease(t *testing.T) {
	ctrl, st, o := newTestOrders(t)

	userID := domain.UserID(uuid.New())
	purchaseID := domain.PurchaseID(uuid.New())
	canceled := &domain.Purchase{
		ID:       purchaseID,
		UserID:   userID,
		Quantity: 1,
		Status:   domain.PurchaseStatusCanceled,
	}
	refunded := *canceled
	refunded.Status = domain.PurchaseStatusRefunded

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().PurchaseByID(gomock.Any(), userID, purchaseID).Return(canceled, nil)
		tx.EXPECT().UpdatePurchaseStatus(gomock.Any(), purchaseID, domain.PurchaseStatusRefunded).
			Return(&refunded, nil)
	})

	got, err := o.Refund(context.Background(), userID, purchaseID)
	require.NoError(t, err)
	require.Equal(t, domain.PurchaseStatusRefunded, got.Status)
}

func TestOrders_Purchase_notFound(t *testing.T) {
	_, st, o := newTestOrders(t)

	userID := domain.UserID(uuid.New())
	purchaseID := domain.PurchaseID(uuid.New())

	st.EXPECT().PurchaseByID(gomock.Any(), userID, purchaseID).Return(nil, nil)

	_, err := o.Purchase(context.Background(), userID, purchaseID)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}
