package postgres

import (
	"context"
	"fmt"
	"time"

	"shopapi/pkg/domain"
	"shopapi/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	cartsTable     = "carts"
	cartItemsTable = "cart_items"
)

func (p *PgSQL) CartByUser(ctx context.Context, userID domain.UserID) (*domain.Cart, error) {
	var row PgCart
	found, err := p.Builder.From(cartsTable).
		Where(goqu.I("user_id").Eq(uuid.UUID(userID))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch cart by user: %w", err)
	}
	if !found {
		return nil, nil
	}

	cart := row.ToDomain()

	var itemRows []PgCartItem
	if err := p.Builder.From(cartItemsTable).
		Where(goqu.I("cart_id").Eq(row.ID)).
		Order(goqu.I("added_at").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &itemRows); err != nil {
		return nil, fmt.Errorf("could not fetch cart items: %w", err)
	}

	items, err := pgCartItemsToDomain(itemRows)
	if err != nil {
		return nil, err
	}
	cart.Items = items

	return cart, nil
}

func (p *PgSQL) StoreCart(ctx context.Context, userID domain.UserID) (*domain.Cart, error) {
	var row PgCart
	found, err := p.Builder.Insert(cartsTable).
		Rows(goqu.Record{
			"user_id":    uuid.UUID(userID),
			"expires_at": time.Now().Add(domain.CartTTL),
		}).
		Returning(&PgCart{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrDuplicate
		}

		return nil, fmt.Errorf("could not store cart into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not store cart into pg: no row returned")
	}

	cart := row.ToDomain()
	cart.Items = []domain.CartItem{}

	return cart, nil
}

// DeleteCart removes the cart row; items go with it through the FK cascade.
func (p *PgSQL) DeleteCart(ctx context.Context, id domain.CartID) error {
	if _, err := p.Builder.Delete(cartsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not delete cart in pg: %w", err)
	}

	return nil
}

func (p *PgSQL) CartItem(ctx context.Context,
	cartID domain.CartID,
	productID domain.ProductID,
	optionKey string) (*domain.CartItem, error) {
	var row PgCartItem
	found, err := p.Builder.From(cartItemsTable).
		Where(
			goqu.I("cart_id").Eq(uuid.UUID(cartID)),
			goqu.I("product_id").Eq(uuid.UUID(productID)),
			goqu.I("option_key").Eq(optionKey),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch cart item: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) StoreCartItem(ctx context.Context, item domain.CartItem) (*domain.CartItem, error) {
	var pgItem PgCartItem
	if err := pgItem.FromDomain(item); err != nil {
		return nil, err
	}

	var row PgCartItem
	found, err := p.Builder.Insert(cartItemsTable).
		Rows(pgItem).
		Returning(&PgCartItem{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrDuplicate
		}

		return nil, fmt.Errorf("could not store cart item into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not store cart item into pg: no row returned")
	}

	return row.ToDomain()
}

func (p *PgSQL) UpdateCartItem(ctx context.Context,
	id domain.CartItemID,
	quantity int,
	unitPrice decimal.Decimal) (*domain.CartItem, error) {
	var row PgCartItem
	found, err := p.Builder.Update(cartItemsTable).
		Set(goqu.Record{
			"quantity":   quantity,
			"unit_price": unitPrice,
			"added_at":   goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgCartItem{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update cart item in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) DeleteCartItem(ctx context.Context,
	cartID domain.CartID,
	id domain.CartItemID) (*domain.CartItem, error) {
	var row PgCartItem
	found, err := p.Builder.Delete(cartItemsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("cart_id").Eq(uuid.UUID(cartID)),
		).
		Returning(&PgCartItem{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete cart item in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) ClearCart(ctx context.Context, cartID domain.CartID) error {
	if _, err := p.Builder.Delete(cartItemsTable).
		Where(goqu.I("cart_id").Eq(uuid.UUID(cartID))).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not clear cart in pg: %w", err)
	}

	return nil
}
