package domain

import (
	"net/url"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryID uniquely identifies a product category.
type CategoryID uuid.UUID

// ProductID uniquely identifies a product.
type ProductID uuid.UUID

// StockID uniquely identifies a per-option stock row.
type StockID uuid.UUID

// Category groups products for browsing. Names are unique.
type Category struct {
	ID   CategoryID `json:"id"`
	Name string     `json:"name"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Options is a free-form option map attached to products, stock rows,
// cart items and purchases, e.g. {"size": "L", "color": "red"}.
type Options map[string]string

// Key returns the canonical urlencoded form of the option map with keys
// sorted, e.g. "color=red&size=L". It is used as the option_key column so
// that the same option combination always maps to the same row.
func (o Options) Key() string {
	if len(o) == 0 {
		return ""
	}
	pairs := make([]string, 0, len(o))
	for k := range o {
		pairs = append(pairs, k)
	}
	sort.Strings(pairs)

	v := url.Values{}
	for _, k := range pairs {
		v.Set(k, o[k])
	}

	return v.Encode()
}

// Product is a sellable item. Price is the current list price; purchases and
// cart items keep their own price snapshots.
type Product struct {
	ID ProductID `json:"id"`

	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`

	// CategoryID is nil for uncategorized products.
	CategoryID *CategoryID `json:"categoryId,omitempty"`

	// Options describes the selectable option axes for display purposes.
	Options  Options `json:"options,omitempty"`
	IsActive bool    `json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ProductStock tracks the available quantity for one option combination of a
// product. (ProductID, OptionKey) is unique.
type ProductStock struct {
	ID        StockID   `json:"id"`
	ProductID ProductID `json:"productId"`

	OptionKey string  `json:"optionKey"`
	Options   Options `json:"options,omitempty"`
	Quantity  int     `json:"quantity"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
