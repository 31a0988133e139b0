package storage

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"shopapi/pkg/domain"
)

// ProductFilter narrows Products listings.
type ProductFilter struct {
	// CategoryID limits results to one category when non-nil.
	CategoryID *domain.CategoryID
	// ActiveOnly excludes deactivated products.
	ActiveOnly bool
}

// ProductUpdates holds the mutable subset of a product row. Nil fields are
// left untouched.
type ProductUpdates struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	CategoryID  *domain.CategoryID
	Options     *domain.Options
	IsActive    *bool
}

// ProductPage groups a page of products with an optional cursor for the next
// page.
type ProductPage struct {
	Products []domain.Product
	// NextCursor is the created_at value to pass as cursor for the next page.
	// Nil when there is no next page.
	NextCursor *time.Time
}

// CatalogStorage defines persistence operations for categories, products and
// per-option stock.
type CatalogStorage interface {
	// StoreCategory inserts a category; ErrDuplicate when the name is taken.
	StoreCategory(ctx context.Context, category domain.Category) (*domain.Category, error)
	// Categories lists all categories ordered by name.
	Categories(ctx context.Context) ([]domain.Category, error)
	// CategoryByID fetches a category; nil when not found.
	CategoryByID(ctx context.Context, id domain.CategoryID) (*domain.Category, error)

	// StoreProduct inserts a product and returns the stored row.
	StoreProduct(ctx context.Context, product domain.Product) (*domain.Product, error)
	// Products returns a page of products created before the optional cursor,
	// newest first.
	Products(ctx context.Context, filter ProductFilter, cursor time.Time, limit uint) (ProductPage, error)
	// ProductByID fetches a product; nil when not found.
	ProductByID(ctx context.Context, id domain.ProductID) (*domain.Product, error)
	// UpdateProduct applies the non-nil fields of updates to a product and
	// returns the updated row; nil when the product does not exist.
	UpdateProduct(ctx context.Context, id domain.ProductID, updates ProductUpdates) (*domain.Product, error)

	// UpsertStock inserts or replaces the stock row for the product+option
	// pair and returns the stored row.
	UpsertStock(ctx context.Context, stock domain.ProductStock) (*domain.ProductStock, error)
	// StockFor fetches the stock row for a product+option pair; nil when missing.
	StockFor(ctx context.Context, productID domain.ProductID, optionKey string) (*domain.ProductStock, error)
	// ReserveStock atomically decrements the stock row by qty. It returns
	// ErrStockRowMissing when no row exists and ErrOutOfStock when fewer
	// than qty units are available.
	ReserveStock(ctx context.Context, productID domain.ProductID, optionKey string, qty int) error
	// ReleaseStock atomically increments the stock row by qty. It returns
	// ErrStockRowMissing when no row exists.
	ReleaseStock(ctx context.Context, productID domain.ProductID, optionKey string, qty int) error
}
