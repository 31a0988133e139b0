package catalog

import (
	"context"

	"github.com/shopspring/decimal"

	"shopapi/pkg/domain"
)

// CreateProductReq carries the fields of a product create request.
type CreateProductReq struct {
	Name        string
	Description string
	Price       decimal.Decimal
	CategoryID  *domain.CategoryID
	Options     domain.Options
	IsActive    bool
}

// UpdateProductReq carries the fields of a product update request. Nil
// fields are left unchanged.
type UpdateProductReq struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	CategoryID  *domain.CategoryID
	Options     *domain.Options
	IsActive    *bool
}

// ListFilter narrows product listings.
type ListFilter struct {
	CategoryID *domain.CategoryID
	ActiveOnly bool
}

//go:generate mockgen -package mockcatalog -source=interface.go -destination=mock/mockcatalog.go *
type Catalog interface {
	// CreateCategory adds a new category.
	CreateCategory(ctx context.Context, name string) (*domain.Category, error)
	// Categories lists all categories.
	Categories(ctx context.Context) ([]domain.Category, error)

	// CreateProduct adds a new product.
	CreateProduct(ctx context.Context, req CreateProductReq) (*domain.Product, error)
	// Products returns one page of products plus the next cursor, empty
	// when there is no further page.
	Products(ctx context.Context, filter ListFilter, cursor string, limit uint) ([]domain.Product, string, error)
	// Product fetches one product by ID.
	Product(ctx context.Context, id domain.ProductID) (*domain.Product, error)
	// UpdateProduct applies a partial update to a product.
	UpdateProduct(ctx context.Context, id domain.ProductID, req UpdateProductReq) (*domain.Product, error)

	// SetStock inserts or replaces the stock row for a product option.
	SetStock(ctx context.Context,
		productID domain.ProductID,
		options domain.Options,
		quantity int) (*domain.ProductStock, error)
	// Stock fetches the stock row for a product option.
	Stock(ctx context.Context, productID domain.ProductID, options domain.Options) (*domain.ProductStock, error)
}
