// Package orders turns carts into purchases and manages their lifecycle.
// Checkout is all-or-nothing: every line must reserve stock inside one
// transaction or nothing is bought.
package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shopapi/pkg/domain"
	"shopapi/pkg/serrors"
	"shopapi/pkg/storage"

	"github.com/google/uuid"
)

type orders struct {
	storage storage.Storage
}

func (o orders) Checkout(ctx context.Context, userID domain.UserID) ([]domain.Purchase, error) {
	var purchases []domain.Purchase

	if err := o.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		cart, err := tx.CartByUser(ctx, userID)
		if err != nil {
			return fmt.Errorf("could not fetch cart: %w", err)
		}
		if cart == nil || len(cart.Items) == 0 {
			return serrors.With(serrors.ErrBadRequest, "cart is empty")
		}
		if cart.Expired(time.Now()) {
			return serrors.With(serrors.ErrBadRequest, "cart has expired")
		}

		rows := make([]domain.Purchase, 0, len(cart.Items))
		for i := range cart.Items {
			item := &cart.Items[i]

			if err := tx.ReserveStock(ctx, item.ProductID, item.OptionKey, item.Quantity); err != nil {
				if errors.Is(err, storage.ErrOutOfStock) || errors.Is(err, storage.ErrStockRowMissing) {
					return serrors.Wrap(serrors.ErrConflict, err,
						"insufficient stock for product %s", uuid.UUID(item.ProductID))
				}

				return fmt.Errorf("could not reserve stock: %w", err)
			}

			rows = append(rows, domain.Purchase{
				UserID:    userID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				UnitPrice: item.UnitPrice,
				Options:   item.Options,
				OptionKey: item.OptionKey,
				Status:    domain.PurchaseStatusPaid,
			})
		}

		purchases, err = tx.StorePurchases(ctx, rows...)
		if err != nil {
			return fmt.Errorf("could not store purchases: %w", err)
		}

		if err := tx.ClearCart(ctx, cart.ID); err != nil {
			return fmt.Errorf("could not clear cart: %w", err)
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return purchases, nil
}

func (o orders) Purchases(ctx context.Context,
	userID domain.UserID,
	cursor string,
	limit uint) (storage.UserPurchases, error) {
	var before time.Time
	if cursor != "" {
		var err error
		before, err = time.Parse(time.RFC3339, cursor)
		if err != nil {
			return storage.UserPurchases{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
	}

	page, err := o.storage.UserPurchases(ctx, userID, before, limit)
	if err != nil {
		return storage.UserPurchases{}, fmt.Errorf("could not fetch purchases: %w", err)
	}

	return page, nil
}

func (o orders) Purchase(ctx context.Context,
	userID domain.UserID,
	id domain.PurchaseID) (*domain.Purchase, error) {
	purchase, err := o.storage.PurchaseByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("could not fetch purchase: %w", err)
	}
	if purchase == nil {
		return nil, serrors.With(serrors.ErrNotFound, "purchase not found")
	}

	return purchase, nil
}

// transition moves a purchase to target, releasing stock when releaseStock
// is set. Purchases already in the target status are returned unchanged.
func (o orders) transition(ctx context.Context,
	userID domain.UserID,
	id domain.PurchaseID,
	target domain.PurchaseStatus,
	allowed map[domain.PurchaseStatus]bool,
	releaseStock map[domain.PurchaseStatus]bool) (*domain.Purchase, error) {
	var updated *domain.Purchase

	if err := o.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		purchase, err := tx.PurchaseByID(ctx, userID, id)
		if err != nil {
			return fmt.Errorf("could not fetch purchase: %w", err)
		}
		if purchase == nil {
			return serrors.With(serrors.ErrNotFound, "purchase not found")
		}

		if purchase.Status == target {
			updated = purchase

			return nil
		}
		if !allowed[purchase.Status] {
			return serrors.With(serrors.ErrConflict,
				"purchase is %s, cannot move to %s", purchase.Status, target)
		}

		if releaseStock[purchase.Status] {
			if err := tx.ReleaseStock(ctx, purchase.ProductID, purchase.OptionKey, purchase.Quantity); err != nil &&
				!errors.Is(err, storage.ErrStockRowMissing) {
				return fmt.Errorf("could not release stock: %w", err)
			}
		}

		updated, err = tx.UpdatePurchaseStatus(ctx, id, target)
		if err != nil {
			return fmt.Errorf("could not update purchase: %w", err)
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return updated, nil
}

func (o orders) Cancel(ctx context.Context,
	userID domain.UserID,
	id domain.PurchaseID) (*domain.Purchase, error) {
	return o.transition(ctx, userID, id, domain.PurchaseStatusCanceled,
		map[domain.PurchaseStatus]bool{domain.PurchaseStatusPaid: true},
		map[domain.PurchaseStatus]bool{domain.PurchaseStatusPaid: true})
}

func (o orders) Refund(ctx context.Context,
	userID domain.UserID,
	id domain.PurchaseID) (*domain.Purchase, error) {
	// canceled purchases released their stock already
	return o.transition(ctx, userID, id, domain.PurchaseStatusRefunded,
		map[domain.PurchaseStatus]bool{
			domain.PurchaseStatusPaid:     true,
			domain.PurchaseStatusCanceled: true,
		},
		map[domain.PurchaseStatus]bool{domain.PurchaseStatusPaid: true})
}

// New creates an Orders service backed by the provided storage.
func New(storage storage.Storage) Orders {
	return &orders{storage: storage}
}
