// Package catalog implements category, product and stock management.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"shopapi/pkg/domain"
	"shopapi/pkg/serrors"
	"shopapi/pkg/storage"
)

type catalog struct {
	storage storage.Storage
}

func (c catalog) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "category name is required")
	}

	category, err := c.storage.StoreCategory(ctx, domain.Category{Name: name})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return nil, serrors.With(serrors.ErrConflict, "category already exists")
		}

		return nil, fmt.Errorf("could not store category: %w", err)
	}

	return category, nil
}

func (c catalog) Categories(ctx context.Context) ([]domain.Category, error) {
	categories, err := c.storage.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list categories: %w", err)
	}

	return categories, nil
}

func (c catalog) CreateProduct(ctx context.Context, req CreateProductReq) (*domain.Product, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "product name is required")
	}
	if req.Price.IsNegative() {
		return nil, serrors.With(serrors.ErrBadRequest, "price must not be negative")
	}
	if req.CategoryID != nil {
		category, err := c.storage.CategoryByID(ctx, *req.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("could not fetch category: %w", err)
		}
		if category == nil {
			return nil, serrors.With(serrors.ErrBadRequest, "category does not exist")
		}
	}

	product, err := c.storage.StoreProduct(ctx, domain.Product{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		Options:     req.Options,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return nil, fmt.Errorf("could not store product: %w", err)
	}

	return product, nil
}

func (c catalog) Products(ctx context.Context,
	filter ListFilter,
	cursor string,
	limit uint) ([]domain.Product, string, error) {
	var cursorTime time.Time
	if cursor != "" {
		t, err := time.Parse(time.RFC3339, cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		cursorTime = t
	}

	page, err := c.storage.Products(ctx, storage.ProductFilter{
		CategoryID: filter.CategoryID,
		ActiveOnly: filter.ActiveOnly,
	}, cursorTime, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not list products: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.Format(time.RFC3339)
	}

	return page.Products, next, nil
}

func (c catalog) Product(ctx context.Context, id domain.ProductID) (*domain.Product, error) {
	product, err := c.storage.ProductByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not fetch product: %w", err)
	}
	if product == nil {
		return nil, serrors.With(serrors.ErrNotFound, "product not found")
	}

	return product, nil
}

func (c catalog) UpdateProduct(ctx context.Context,
	id domain.ProductID,
	req UpdateProductReq) (*domain.Product, error) {
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		if trimmed == "" {
			return nil, serrors.With(serrors.ErrBadRequest, "product name must not be empty")
		}
		req.Name = &trimmed
	}
	if req.Price != nil && req.Price.IsNegative() {
		return nil, serrors.With(serrors.ErrBadRequest, "price must not be negative")
	}
	if req.CategoryID != nil {
		category, err := c.storage.CategoryByID(ctx, *req.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("could not fetch category: %w", err)
		}
		if category == nil {
			return nil, serrors.With(serrors.ErrBadRequest, "category does not exist")
		}
	}

	product, err := c.storage.UpdateProduct(ctx, id, storage.ProductUpdates{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		Options:     req.Options,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return nil, fmt.Errorf("could not update product: %w", err)
	}
	if product == nil {
		return nil, serrors.With(serrors.ErrNotFound, "product not found")
	}

	return product, nil
}

func (c catalog) SetStock(ctx context.Context,
	productID domain.ProductID,
	options domain.Options,
	quantity int) (*domain.ProductStock, error) {
	if quantity < 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "quantity must not be negative")
	}

	product, err := c.storage.ProductByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("could not fetch product: %w", err)
	}
	if product == nil {
		return nil, serrors.With(serrors.ErrNotFound, "product not found")
	}

	stock, err := c.storage.UpsertStock(ctx, domain.ProductStock{
		ProductID: productID,
		OptionKey: options.Key(),
		Options:   options,
		Quantity:  quantity,
	})
	if err != nil {
		return nil, fmt.Errorf("could not upsert stock: %w", err)
	}

	return stock, nil
}

func (c catalog) Stock(ctx context.Context,
	productID domain.ProductID,
	options domain.Options) (*domain.ProductStock, error) {
	stock, err := c.storage.StockFor(ctx, productID, options.Key())
	if err != nil {
		return nil, fmt.Errorf("could not fetch stock: %w", err)
	}
	if stock == nil {
		return nil, serrors.With(serrors.ErrNotFound, "no stock row for option")
	}

	return stock, nil
}

// New creates a Catalog service backed by the provided storage.
func New(storage storage.Storage) Catalog {
	return &catalog{storage: storage}
}
