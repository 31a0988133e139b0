package orders

import (
	"context"

	"shopapi/pkg/domain"
	"shopapi/pkg/storage"
)

//go:generate mockgen -package mockorders -source=interface.go -destination=mock/mockorders.go *
type Orders interface {
	// Checkout converts the user's cart into purchases. Every line must
	// reserve stock or the whole checkout fails; the cart is cleared on
	// success.
	Checkout(ctx context.Context, userID domain.UserID) ([]domain.Purchase, error)
	// Purchases returns a page of the user's purchases, newest first.
	// Cursor is an RFC3339 timestamp from a previous page, empty for the
	// first page.
	Purchases(ctx context.Context, userID domain.UserID, cursor string, limit uint) (storage.UserPurchases, error)
	// Purchase fetches one of the user's purchases by ID.
	Purchase(ctx context.Context, userID domain.UserID, id domain.PurchaseID) (*domain.Purchase, error)
	// Cancel cancels a paid purchase and releases its reserved stock.
	// Canceling an already canceled purchase is a no-op.
	Cancel(ctx context.Context, userID domain.UserID, id domain.PurchaseID) (*domain.Purchase, error)
	// Refund marks a paid or canceled purchase refunded, releasing stock
	// when it had not been released yet.
	Refund(ctx context.Context, userID domain.UserID, id domain.PurchaseID) (*domain.Purchase, error)
}
