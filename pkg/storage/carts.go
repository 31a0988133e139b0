package storage

import (
	"context"

	"shopapi/pkg/domain"

	"github.com/shopspring/decimal"
)

// CartStorage defines persistence operations for carts and their items.
// A user has at most one cart (unique constraint on user_id).
type CartStorage interface {
	// CartByUser fetches the user's cart including items; nil when the user
	// has no cart.
	CartByUser(ctx context.Context, userID domain.UserID) (*domain.Cart, error)
	// StoreCart inserts a fresh cart for the user and returns it.
	// ErrDuplicate is returned when the user already has one.
	StoreCart(ctx context.Context, userID domain.UserID) (*domain.Cart, error)
	// DeleteCart removes the cart and (via cascade) its items.
	DeleteCart(ctx context.Context, id domain.CartID) error

	// CartItem fetches one line by its (cart, product, option) key; nil when
	// not present.
	CartItem(ctx context.Context,
		cartID domain.CartID,
		productID domain.ProductID,
		optionKey string) (*domain.CartItem, error)
	// StoreCartItem inserts a new line and returns the stored row.
	StoreCartItem(ctx context.Context, item domain.CartItem) (*domain.CartItem, error)
	// UpdateCartItem sets quantity and unit price of a line and returns the
	// updated row; nil when the line does not exist.
	UpdateCartItem(ctx context.Context,
		id domain.CartItemID,
		quantity int,
		unitPrice decimal.Decimal) (*domain.CartItem, error)
	// DeleteCartItem removes one line. Returns the deleted row, nil when absent.
	DeleteCartItem(ctx context.Context, cartID domain.CartID, id domain.CartItemID) (*domain.CartItem, error)
	// ClearCart removes all lines of a cart.
	ClearCart(ctx context.Context, cartID domain.CartID) error
}
