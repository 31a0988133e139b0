// Package carts implements the single-cart-per-user shopping cart with
// expiring carts and price snapshots on items.
package carts

import (
	"context"
	"fmt"
	"time"

	"shopapi/pkg/domain"
	"shopapi/pkg/serrors"
	"shopapi/pkg/storage"
)

type carts struct {
	storage storage.Storage
}

// ensureCart returns the user's current cart, replacing an expired one.
func (c carts) ensureCart(ctx context.Context, tx storage.AllStorage, userID domain.UserID) (*domain.Cart, error) {
	cart, err := tx.CartByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not fetch cart: %w", err)
	}
	if cart != nil && !cart.Expired(time.Now()) {
		return cart, nil
	}

	if cart != nil {
		// expired: contents are stale, start over
		if err := tx.DeleteCart(ctx, cart.ID); err != nil {
			return nil, fmt.Errorf("could not delete expired cart: %w", err)
		}
	}

	cart, err = tx.StoreCart(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not create cart: %w", err)
	}

	return cart, nil
}

func (c carts) Cart(ctx context.Context, userID domain.UserID) (*domain.Cart, error) {
	var cart *domain.Cart
	if err := c.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		var err error
		cart, err = c.ensureCart(ctx, tx, userID)

		return err
	}); err != nil {
		return nil, err
	}

	return cart, nil
}

func (c carts) AddItem(ctx context.Context,
	userID domain.UserID,
	productID domain.ProductID,
	options domain.Options,
	quantity int) (*domain.Cart, error) {
	if quantity <= 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "quantity must be positive")
	}

	if err := c.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		product, err := tx.ProductByID(ctx, productID)
		if err != nil {
			return fmt.Errorf("could not fetch product: %w", err)
		}
		if product == nil {
			return serrors.With(serrors.ErrNotFound, "product not found")
		}
		if !product.IsActive {
			return serrors.With(serrors.ErrBadRequest, "product is not for sale")
		}

		cart, err := c.ensureCart(ctx, tx, userID)
		if err != nil {
			return err
		}

		optionKey := options.Key()
		existing, err := tx.CartItem(ctx, cart.ID, productID, optionKey)
		if err != nil {
			return fmt.Errorf("could not fetch cart item: %w", err)
		}

		if existing != nil {
			// same option combination: sum quantities, take the current
			// list price as the new snapshot
			_, err = tx.UpdateCartItem(ctx, existing.ID, existing.Quantity+quantity, product.Price)
			if err != nil {
				return fmt.Errorf("could not update cart item: %w", err)
			}

			return nil
		}

		if _, err := tx.StoreCartItem(ctx, domain.CartItem{
			CartID:    cart.ID,
			ProductID: productID,
			OptionKey: optionKey,
			Options:   options,
			Quantity:  quantity,
			UnitPrice: product.Price,
		}); err != nil {
			return fmt.Errorf("could not store cart item: %w", err)
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return c.Cart(ctx, userID)
}

// cartLine looks up the line and verifies it belongs to the user's cart.
func (c carts) cartLine(ctx context.Context,
	tx storage.AllStorage,
	userID domain.UserID,
	itemID domain.CartItemID) (*domain.Cart, *domain.CartItem, error) {
	cart, err := tx.CartByUser(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("could not fetch cart: %w", err)
	}
	if cart == nil {
		return nil, nil, serrors.With(serrors.ErrNotFound, "cart is empty")
	}

	for i := range cart.Items {
		if cart.Items[i].ID == itemID {
			return cart, &cart.Items[i], nil
		}
	}

	return nil, nil, serrors.With(serrors.ErrNotFound, "cart item not found")
}

func (c carts) UpdateItem(ctx context.Context,
	userID domain.UserID,
	itemID domain.CartItemID,
	quantity int) (*domain.Cart, error) {
	if quantity < 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "quantity must not be negative")
	}

	if err := c.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		cart, item, err := c.cartLine(ctx, tx, userID, itemID)
		if err != nil {
			return err
		}

		if quantity == 0 {
			if _, err := tx.DeleteCartItem(ctx, cart.ID, item.ID); err != nil {
				return fmt.Errorf("could not delete cart item: %w", err)
			}

			return nil
		}

		if _, err := tx.UpdateCartItem(ctx, item.ID, quantity, item.UnitPrice); err != nil {
			return fmt.Errorf("could not update cart item: %w", err)
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return c.Cart(ctx, userID)
}

func (c carts) RemoveItem(ctx context.Context,
	userID domain.UserID,
	itemID domain.CartItemID) (*domain.Cart, error) {
	if err := c.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		cart, item, err := c.cartLine(ctx, tx, userID, itemID)
		if err != nil {
			return err
		}

		if _, err := tx.DeleteCartItem(ctx, cart.ID, item.ID); err != nil {
			return fmt.Errorf("could not delete cart item: %w", err)
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return c.Cart(ctx, userID)
}

func (c carts) Clear(ctx context.Context, userID domain.UserID) error {
	cart, err := c.storage.CartByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("could not fetch cart: %w", err)
	}
	if cart == nil {
		return nil
	}

	if err := c.storage.ClearCart(ctx, cart.ID); err != nil {
		return fmt.Errorf("could not clear cart: %w", err)
	}

	return nil
}

// New creates a Carts service backed by the provided storage.
func New(storage storage.Storage) Carts {
	return &carts{storage: storage}
}
