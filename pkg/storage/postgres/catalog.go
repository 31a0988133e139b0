package postgres

import (
	"context"
	"fmt"
	"time"

	"shopapi/pkg/domain"
	"shopapi/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	categoriesTable = "categories"
	productsTable   = "products"
	stockTable      = "product_stock"
)

func (p *PgSQL) StoreCategory(ctx context.Context, category domain.Category) (*domain.Category, error) {
	var row PgCategory
	found, err := p.Builder.Insert(categoriesTable).
		Rows(PgCategory{Name: category.Name}).
		Returning(&PgCategory{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrDuplicate
		}

		return nil, fmt.Errorf("could not store category into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not store category into pg: no row returned")
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) Categories(ctx context.Context) ([]domain.Category, error) {
	var rows []PgCategory
	if err := p.Builder.From(categoriesTable).
		Order(goqu.I("name").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch categories from pg: %w", err)
	}

	out := make([]domain.Category, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}

func (p *PgSQL) CategoryByID(ctx context.Context, id domain.CategoryID) (*domain.Category, error) {
	var row PgCategory
	found, err := p.Builder.From(categoriesTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch category by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) StoreProduct(ctx context.Context, product domain.Product) (*domain.Product, error) {
	var pgProduct PgProduct
	if err := pgProduct.FromDomain(product); err != nil {
		return nil, err
	}

	var row PgProduct
	found, err := p.Builder.Insert(productsTable).
		Rows(pgProduct).
		Returning(&PgProduct{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not store product into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not store product into pg: no row returned")
	}

	return row.ToDomain()
}

// Products returns one page ordered by created_at DESC, id DESC. A cursor is
// the created_at of the last row of the previous page; one extra row is
// fetched to detect whether a next page exists.
func (p *PgSQL) Products(ctx context.Context,
	filter storage.ProductFilter,
	cursor time.Time,
	limit uint) (storage.ProductPage, error) {
	w := []goqu.Expression{}
	if filter.CategoryID != nil {
		w = append(w, goqu.I("category_id").Eq(uuid.UUID(*filter.CategoryID)))
	}
	if filter.ActiveOnly {
		w = append(w, goqu.I("is_active").IsTrue())
	}
	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	fetch := limit + 1
	var rows []PgProduct
	if err := p.Builder.From(productsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(fetch).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.ProductPage{}, fmt.Errorf("could not fetch products from pg: %w", err)
	}

	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		trimmed := rows[:limit]
		nextCursor = &trimmed[len(trimmed)-1].CreatedAt
		rows = trimmed
	}

	products, err := pgProductsToDomain(rows)
	if err != nil {
		return storage.ProductPage{}, err
	}

	return storage.ProductPage{
		Products:   products,
		NextCursor: nextCursor,
	}, nil
}

func (p *PgSQL) ProductByID(ctx context.Context, id domain.ProductID) (*domain.Product, error) {
	var row PgProduct
	found, err := p.Builder.From(productsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch product by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// UpdateProduct applies only the non-nil fields of updates.
func (p *PgSQL) UpdateProduct(ctx context.Context,
	id domain.ProductID,
	updates storage.ProductUpdates) (*domain.Product, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Name != nil {
		rec["name"] = *updates.Name
	}
	if updates.Description != nil {
		rec["description"] = *updates.Description
	}
	if updates.Price != nil {
		rec["price"] = *updates.Price
	}
	if updates.CategoryID != nil {
		rec["category_id"] = uuid.UUID(*updates.CategoryID)
	}
	if updates.Options != nil {
		opts, err := optionsToJSON(*updates.Options)
		if err != nil {
			return nil, err
		}
		rec["options"] = opts
	}
	if updates.IsActive != nil {
		rec["is_active"] = *updates.IsActive
	}

	var row PgProduct
	found, err := p.Builder.Update(productsTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgProduct{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update product in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) UpsertStock(ctx context.Context, stock domain.ProductStock) (*domain.ProductStock, error) {
	var pgStock PgStock
	if err := pgStock.FromDomain(stock); err != nil {
		return nil, err
	}

	var row PgStock
	found, err := p.Builder.Insert(stockTable).
		Rows(pgStock).
		OnConflict(goqu.DoUpdate("product_id, option_key", goqu.Record{
			"quantity":   pgStock.Quantity,
			"options":    pgStock.Options,
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		})).
		Returning(&PgStock{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not upsert stock into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not upsert stock into pg: no row returned")
	}

	return row.ToDomain()
}

func (p *PgSQL) StockFor(ctx context.Context,
	productID domain.ProductID,
	optionKey string) (*domain.ProductStock, error) {
	var row PgStock
	found, err := p.Builder.From(stockTable).
		Where(
			goqu.I("product_id").Eq(uuid.UUID(productID)),
			goqu.I("option_key").Eq(optionKey),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch stock from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// ReserveStock decrements atomically: the quantity guard lives in the WHERE
// clause, so concurrent reservations can never take the row negative. A second
// lookup distinguishes a missing row from an insufficient one.
func (p *PgSQL) ReserveStock(ctx context.Context,
	productID domain.ProductID,
	optionKey string,
	qty int) error {
	res, err := p.Builder.Update(stockTable).
		Set(goqu.Record{
			"quantity":   goqu.L("quantity - ?", qty),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("product_id").Eq(uuid.UUID(productID)),
		goqu.I("option_key").Eq(optionKey),
		goqu.I("quantity").Gte(qty),
	).Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not reserve stock in pg: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not read affected rows: %w", err)
	}
	if affected > 0 {
		return nil
	}

	row, err := p.StockFor(ctx, productID, optionKey)
	if err != nil {
		return err
	}
	if row == nil {
		return storage.ErrStockRowMissing
	}

	return storage.ErrOutOfStock
}

func (p *PgSQL) ReleaseStock(ctx context.Context,
	productID domain.ProductID,
	optionKey string,
	qty int) error {
	res, err := p.Builder.Update(stockTable).
		Set(goqu.Record{
			"quantity":   goqu.L("quantity + ?", qty),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("product_id").Eq(uuid.UUID(productID)),
		goqu.I("option_key").Eq(optionKey),
	).Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not release stock in pg: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not read affected rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrStockRowMissing
	}

	return nil
}
