package storage

import (
	"context"
	"time"

	"shopapi/pkg/domain"
)

// UserPurchases groups a page of purchases returned for a user together with
// an optional NextCursor used for pagination.
type UserPurchases struct {
	// Purchases contains the current page of purchase records.
	Purchases []domain.Purchase
	// NextCursor points to the timestamp to be used as the cursor for
	// fetching the next page. It is nil when there is no next page.
	NextCursor *time.Time
}

// OrderStorage defines persistence operations for purchases.
type OrderStorage interface {
	// StorePurchases inserts one or more purchases and returns the stored
	// rows as they exist in the database (including generated fields).
	StorePurchases(ctx context.Context, purchases ...domain.Purchase) ([]domain.Purchase, error)
	// PurchaseByID fetches a purchase belonging to the given user; nil when
	// not found.
	PurchaseByID(ctx context.Context, userID domain.UserID, id domain.PurchaseID) (*domain.Purchase, error)
	// UpdatePurchaseStatus sets the status of a purchase and returns the
	// updated row; nil when the purchase does not exist.
	UpdatePurchaseStatus(ctx context.Context,
		id domain.PurchaseID,
		status domain.PurchaseStatus) (*domain.Purchase, error)
	// SetPurchasePayment stamps the settling payment provider and its
	// transaction ID on a purchase; nil when the purchase does not exist.
	SetPurchasePayment(ctx context.Context,
		id domain.PurchaseID,
		pg domain.PaymentProvider,
		pgTID string) (*domain.Purchase, error)
	// UserPurchases returns a page of purchases for a user made before the
	// optional cursor time, newest first, limited by limit.
	UserPurchases(ctx context.Context,
		userID domain.UserID,
		cursor time.Time,
		limit uint) (UserPurchases, error)
}
