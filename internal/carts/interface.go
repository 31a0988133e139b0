package carts

import (
	"context"

	"shopapi/pkg/domain"
)

//go:generate mockgen -package mockcarts -source=interface.go -destination=mock/mockcarts.go *
type Carts interface {
	// Cart returns the user's cart, creating a fresh one when none exists
	// or the existing one has expired.
	Cart(ctx context.Context, userID domain.UserID) (*domain.Cart, error)
	// AddItem puts quantity units of a product option into the cart.
	// Adding an option already present sums quantities and refreshes the
	// price snapshot.
	AddItem(ctx context.Context,
		userID domain.UserID,
		productID domain.ProductID,
		options domain.Options,
		quantity int) (*domain.Cart, error)
	// UpdateItem sets the quantity of a line; zero removes it.
	UpdateItem(ctx context.Context,
		userID domain.UserID,
		itemID domain.CartItemID,
		quantity int) (*domain.Cart, error)
	// RemoveItem deletes one line from the cart.
	RemoveItem(ctx context.Context, userID domain.UserID, itemID domain.CartItemID) (*domain.Cart, error)
	// Clear removes every line from the cart.
	Clear(ctx context.Context, userID domain.UserID) error
}
