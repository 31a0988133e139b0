package catalog_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"shopapi/internal/catalog"
	"shopapi/pkg/domain"
	"shopapi/pkg/serrors"
	"shopapi/pkg/storage"
	mockstorage "shopapi/pkg/storage/mock"
)

func newTestCatalog(t *testing.T) (*mockstorage.MockStorage, catalog.Catalog) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)

	return st, catalog.New(st)
}

func TestCatalog_CreateCategory_duplicate(t *testing.T) {
	st, c := newTestCatalog(t)

	st.EXPECT().StoreCategory(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicate)

	_, err := c.CreateCategory(context.Background(), "shoes")
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestCatalog_CreateCategory_emptyName(t *testing.T) {
	_, c := newTestCatalog(t)

	_, err := c.CreateCategory(context.Background(), "   ")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestCatalog_CreateProduct_unknownCategory(t *testing.T) {
	st, c := newTestCatalog(t)

	categoryID := domain.CategoryID(uuid.New())
	st.EXPECT().CategoryByID(gomock.Any(), categoryID).Return(nil, nil)

	_, err := c.CreateProduct(context.Background(), catalog.CreateProductReq{
		Name:       "sneaker",
		Price:      decimal.NewFromInt(10000),
		CategoryID: &categoryID,
	})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestCatalog_CreateProduct_success(t *testing.T) {
	st, c := newTestCatalog(t)

	st.EXPECT().StoreProduct(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, product domain.Product) (*domain.Product, error) {
			require.Equal(t, "sneaker", product.Name)
			product.ID = domain.ProductID(uuid.New())

			return &product, nil
		},
	)

	product, err := c.CreateProduct(context.Background(), catalog.CreateProductReq{
		Name:     " sneaker ",
		Price:    decimal.NewFromInt(10000),
		IsActive: true,
	})
	require.NoError(t, err)
	require.Equal(t, "sneaker", product.Name)
}

func TestCatalog_Products_cursor(t *testing.T) {
	st, c := newTestCatalog(t)

	next := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	st.EXPECT().Products(gomock.Any(), gomock.Any(), gomock.Any(), uint(20)).DoAndReturn(
		func(_ context.Context, filter storage.ProductFilter, cursor time.Time, _ uint) (storage.ProductPage, error) {
			require.True(t, filter.ActiveOnly)
			require.True(t, cursor.IsZero())

			return storage.ProductPage{
				Products:   []domain.Product{{Name: "a"}},
				NextCursor: &next,
			}, nil
		},
	)

	products, nextCursor, err := c.Products(context.Background(),
		catalog.ListFilter{ActiveOnly: true}, "", 20)
	require.NoError(t, err)
	require.Len(t, products, 1)
	require.Equal(t, next.Format(time.RFC3339), nextCursor)
}

func TestCatalog_Products_badCursor(t *testing.T) {
	_, c := newTestCatalog(t)

	_, _, err := c.Products(context.Background(), catalog.ListFilter{}, "not-a-time", 20)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestCatalog_UpdateProduct_partial(t *testing.T) {
	st, c := newTestCatalog(t)

	productID := domain.ProductID(uuid.New())
	price := decimal.NewFromInt(12000)
	st.EXPECT().UpdateProduct(gomock.Any(), productID, gomock.Any()).DoAndReturn(
		func(_ context.Context, id domain.ProductID, updates storage.ProductUpdates) (*domain.Product, error) {
			require.NotNil(t, updates.Name)
			require.Equal(t, "runner", *updates.Name)
			require.NotNil(t, updates.Price)
			require.True(t, updates.Price.Equal(price))
			require.Nil(t, updates.Description)
			require.Nil(t, updates.IsActive)

			return &domain.Product{ID: id, Name: *updates.Name, Price: *updates.Price}, nil
		},
	)

	name := " runner "
	product, err := c.UpdateProduct(context.Background(), productID, catalog.UpdateProductReq{
		Name:  &name,
		Price: &price,
	})
	require.NoError(t, err)
	require.Equal(t, "runner", product.Name)
}

func TestCatalog_UpdateProduct_emptyName(t *testing.T) {
	_, c := newTestCatalog(t)

	name := "   "
	_, err := c.UpdateProduct(context.Background(), domain.ProductID(uuid.New()),
		catalog.UpdateProductReq{Name: &name})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestCatalog_UpdateProduct_unknownCategory(t *testing.T) {
	st, c := newTestCatalog(t)

	categoryID := domain.CategoryID(uuid.New())
	st.EXPECT().CategoryByID(gomock.Any(), categoryID).Return(nil, nil)

	_, err := c.UpdateProduct(context.Background(), domain.ProductID(uuid.New()),
		catalog.UpdateProductReq{CategoryID: &categoryID})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestCatalog_UpdateProduct_missing(t *testing.T) {
	st, c := newTestCatalog(t)

	productID := domain.ProductID(uuid.New())
	st.EXPECT().UpdateProduct(gomock.Any(), productID, gomock.Any()).Return(nil, nil)

	active := false
	_, err := c.UpdateProduct(context.Background(), productID,
		catalog.UpdateProductReq{IsActive: &active})
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestCatalog_SetStock_canonicalOptionKey(t *testing.T) {
	st, c := newTestCatalog(t)

	productID := domain.ProductID(uuid.New())
	st.EXPECT().ProductByID(gomock.Any(), productID).Return(&domain.Product{ID: productID}, nil)
	st.EXPECT().UpsertStock(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, stock domain.ProductStock) (*domain.ProductStock, error) {
			// key ordering is canonical regardless of map iteration
			require.Equal(t, "color=red&size=L", stock.OptionKey)

			return &stock, nil
		},
	)

	_, err := c.SetStock(context.Background(), productID,
		domain.Options{"size": "L", "color": "red"}, 5)
	require.NoError(t, err)
}

func TestCatalog_Stock_missingRow(t *testing.T) {
	st, c := newTestCatalog(t)

	st.EXPECT().StockFor(gomock.Any(), gomock.Any(), "").Return(nil, nil)

	_, err := c.Stock(context.Background(), domain.ProductID(uuid.New()), nil)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}
