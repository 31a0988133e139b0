package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartID uniquely identifies a cart.
type CartID uuid.UUID

// CartItemID uniquely identifies one line of a cart.
type CartItemID uuid.UUID

// CartTTL is how long a cart stays valid after creation. Expired carts are
// replaced with a fresh one on next access.
const CartTTL = 90 * 24 * time.Hour

// Cart is the single shopping cart of a user. A user has at most one cart.
type Cart struct {
	ID     CartID `json:"id"`
	UserID UserID `json:"userId"`

	Items []CartItem `json:"items"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the cart has passed its expiry time.
func (c *Cart) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && c.ExpiresAt.Before(now)
}

// TotalPrice returns the sum of quantity x unit price over all items.
func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for i := range c.Items {
		total = total.Add(c.Items[i].LineTotal())
	}

	return total
}

// ItemCount returns the total quantity across all items.
func (c *Cart) ItemCount() int {
	n := 0
	for i := range c.Items {
		n += c.Items[i].Quantity
	}

	return n
}

// CartItem is one product+option line of a cart. (CartID, ProductID,
// OptionKey) is unique; adding the same option again sums quantities.
type CartItem struct {
	ID     CartItemID `json:"id"`
	CartID CartID     `json:"cartId"`

	ProductID ProductID `json:"productId"`
	OptionKey string    `json:"optionKey,omitempty"`
	Options   Options   `json:"options,omitempty"`

	Quantity int `json:"quantity"`
	// UnitPrice is the price snapshot taken when the item was (last) added.
	UnitPrice decimal.Decimal `json:"unitPrice"`

	AddedAt time.Time `json:"addedAt"`
}

// LineTotal returns quantity x unit price for this line.
func (i *CartItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
