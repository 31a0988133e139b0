package carts_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"shopapi/internal/carts"
	"shopapi/pkg/domain"
	"shopapi/pkg/serrors"
	"shopapi/pkg/storage"
	mockstorage "shopapi/pkg/storage/mock"
)

func newTestCarts(t *testing.T) (*gomock.Controller, *mockstorage.MockStorage, carts.Carts) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)

	return ctrl, st, carts.New(st)
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

func TestCarts_Cart_replacesExpired(t *testing.T) {
	ctrl, st, c := newTestCarts(t)

	userID := domain.UserID(uuid.New())
	oldCart := &domain.Cart{
		ID:        domain.CartID(uuid.New()),
		UserID:    userID,
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	fresh := &domain.Cart{
		ID:        domain.CartID(uuid.New()),
		UserID:    userID,
		ExpiresAt: time.Now().Add(domain.CartTTL),
	}

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().CartByUser(gomock.Any(), userID).Return(oldCart, nil)
		tx.EXPECT().DeleteCart(gomock.Any(), oldCart.ID).Return(nil)
		tx.EXPECT().StoreCart(gomock.Any(), userID).Return(fresh, nil)
	})

	cart, err := c.Cart(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, fresh.ID, cart.ID)
}

func TestCarts_AddItem_newLine(t *testing.T) {
	ctrl, st, c := newTestCarts(t)

	userID := domain.UserID(uuid.New())
	productID := domain.ProductID(uuid.New())
	cart := &domain.Cart{
		ID:        domain.CartID(uuid.New()),
		UserID:    userID,
		ExpiresAt: time.Now().Add(domain.CartTTL),
	}
	product := &domain.Product{
		ID:       productID,
		Price:    decimal.NewFromInt(12000),
		IsActive: true,
	}

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().ProductByID(gomock.Any(), productID).Return(product, nil)
		tx.EXPECT().CartByUser(gomock.Any(), userID).Return(cart, nil)
		tx.EXPECT().CartItem(gomock.Any(), cart.ID, productID, "size=L").Return(nil, nil)
		tx.EXPECT().StoreCartItem(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, item domain.CartItem) (*domain.CartItem, error) {
				require.Equal(t, 2, item.Quantity)
				// snapshot of the current list price
				require.True(t, item.UnitPrice.Equal(product.Price))

				return &item, nil
			},
		)
	})
	// reread after the tx
	st.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			tx.EXPECT().CartByUser(gomock.Any(), userID).Return(cart, nil)

			return cb(tx)
		},
	)

	_, err := c.AddItem(context.Background(), userID, productID, domain.Options{"size": "L"}, 2)
	require.NoError(t, err)
}

func TestCarts_AddItem_sumsExistingLine(t *testing.T) {
	ctrl, st, c := newTestCarts(t)

	userID := domain.UserID(uuid.New())
	productID := domain.ProductID(uuid.New())
	cart := &domain.Cart{
		ID:        domain.CartID(uuid.New()),
		UserID:    userID,
		ExpiresAt: time.Now().Add(domain.CartTTL),
	}
	product := &domain.Product{
		ID:       productID,
		Price:    decimal.NewFromInt(9900), // price changed since first add
		IsActive: true,
	}
	existing := &domain.CartItem{
		ID:        domain.CartItemID(uuid.New()),
		CartID:    cart.ID,
		ProductID: productID,
		Quantity:  1,
		UnitPrice: decimal.NewFromInt(12000),
	}

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().ProductByID(gomock.Any(), productID).Return(product, nil)
		tx.EXPECT().CartByUser(gomock.Any(), userID).Return(cart, nil)
		tx.EXPECT().CartItem(gomock.Any(), cart.ID, productID, "").Return(existing, nil)
		// 1 + 2 and the refreshed snapshot
		tx.EXPECT().UpdateCartItem(gomock.Any(), existing.ID, 3, product.Price).
			Return(existing, nil)
	})
	st.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			tx.EXPECT().CartByUser(gomock.Any(), userID).Return(cart, nil)

			return cb(tx)
		},
	)

	_, err := c.AddItem(context.Background(), userID, productID, nil, 2)
	require.NoError(t, err)
}

func TestCarts_AddItem_inactiveProduct(t *testing.T) {
	ctrl, st, c := newTestCarts(t)

	productID := domain.ProductID(uuid.New())
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().ProductByID(gomock.Any(), productID).
			Return(&domain.Product{ID: productID, IsActive: false}, nil)
	})

	_, err := c.AddItem(context.Background(), domain.UserID(uuid.New()), productID, nil, 1)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestCarts_UpdateItem_zeroDeletes(t *testing.T) {
	ctrl, st, c := newTestCarts(t)

	userID := domain.UserID(uuid.New())
	itemID := domain.CartItemID(uuid.New())
	cart := &domain.Cart{
		ID:        domain.CartID(uuid.New()),
		UserID:    userID,
		ExpiresAt: time.Now().Add(domain.CartTTL),
		Items: []domain.CartItem{{
			ID:       itemID,
			Quantity: 2,
		}},
	}

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().CartByUser(gomock.Any(), userID).Return(cart, nil)
		tx.EXPECT().DeleteCartItem(gomock.Any(), cart.ID, itemID).Return(&cart.Items[0], nil)
	})
	st.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			tx.EXPECT().CartByUser(gomock.Any(), userID).Return(cart, nil)

			return cb(tx)
		},
	)

	_, err := c.UpdateItem(context.Background(), userID, itemID, 0)
	require.NoError(t, err)
}

func TestCarts_UpdateItem_foreignLine(t *testing.T) {
	ctrl, st, c := newTestCarts(t)

	userID := domain.UserID(uuid.New())
	cart := &domain.Cart{
		ID:        domain.CartID(uuid.New()),
		UserID:    userID,
		ExpiresAt: time.Now().Add(domain.CartTTL),
	}

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().CartByUser(gomock.Any(), userID).Return(cart, nil)
	})

	_, err := c.UpdateItem(context.Background(), userID, domain.CartItemID(uuid.New()), 1)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestCarts_Clear_noCartIsNoop(t *testing.T) {
	_, st, c := newTestCarts(t)

	userID := domain.UserID(uuid.New())
	st.EXPECT().CartByUser(gomock.Any(), userID).Return(nil, nil)

	require.NoError(t, c.Clear(context.Background(), userID))
}
