package v1handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"shopapi/internal/catalog"
	"shopapi/pkg/domain"
	"shopapi/pkg/httputil"
	"shopapi/pkg/serrors"
)

// pathID parses the {id} path variable as a UUID.
func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		return uuid.Nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid id")
	}

	return id, nil
}

// queryLimit parses the limit query parameter, clamped to MaxLimit.
func queryLimit(r *http.Request) uint {
	limit := uint(DefaultLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.ParseUint(raw, 10, 32); err == nil && n > 0 {
			limit = uint(n)
		}
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return limit
}

type createCategoryRequest struct {
	Name string `json:"name"`
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, r, err)

		return
	}

	category, err := h.deps.Catalog.CreateCategory(r.Context(), req.Name)
	if err != nil {
		httputil.WriteError(w, r, err)

		return
	}

	httputil.WriteJSON(w, http.StatusCreated, category)
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.deps.Catalog.Categories(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err)

		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]any{"categories": categories})
}

type createProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  *uuid.UUID      `json:"categoryId"`
	Options     domain.Options  `json:"options"`
	IsActive    *bool           `json:"isActive"`
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, r, err)

		return
	}

	svcReq := catalog.CreateProductReq{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Options:     req.Options,
		IsActive:    req.IsActive == nil || *req.IsActive,
	}
	if req.CategoryID != nil {
		categoryID := domain.CategoryID(*req.CategoryID)
		svcReq.CategoryID = &categoryID
	}

	product, err := h.deps.Catalog.CreateProduct(r.Context(), svcReq)
	if err != nil {
		httputil.WriteError(w, r, err)

		return
	}

	httputil.WriteJSON(w, http.StatusCreated, product)
}

type updateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	CategoryID  *uuid.UUID       `json:"categoryId"`
	Options     *domain.Options  `json:"options"`
	IsActive    *bool            `json:"isActive"`
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httputil.WriteError(w, r, err)

		return
	}

	var req updateProductRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, r, err)

		return
	}

	svcReq := catalog.UpdateProductReq{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Options:     req.Options,
		IsActive:    req.IsActive,
	}
	if req.CategoryID != nil {
		categoryID := domain.CategoryID(*req.CategoryID)
		svcReq.CategoryID = &categoryID
	}

	product, err := h.deps.Catalog.UpdateProduct(r.Context(), domain.ProductID(id), svcReq)
	if err != nil {
		httputil.WriteError(w, r, err)

		return
	}

	httputil.WriteJSON(w, http.StatusOK, product)
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	filter := catalog.ListFilter{ActiveOnly: r.URL.Query().Get("all") == ""}
	if raw := r.URL.Query().Get("category"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			httputil.WriteError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid category"))

			return
		}
		categoryID := domain.CategoryID(id)
		filter.CategoryID = &categoryID
	}

	products, nextCursor, err := h.deps.Catalog.Products(r.Context(),
		filter, r.URL.Query().Get("cursor"), queryLimit(r))
	if err != nil {
		httputil.WriteError(w, r, err)

		return
	}

	resp := map[string]any{"products": products}
	if nextCursor != "" {
		resp["nextCursor"] = nextCursor
	}

	httputil.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httputil.WriteError(w, r, err)

		return
	}

	product, err := h.deps.Catalog.Product(r.Context(), domain.ProductID(id))
	if err != nil {
		httputil.WriteError(w, r, err)

		return
	}

	httputil.WriteJSON(w, http.StatusOK, product)
}

type setStockRequest struct {
	Options  domain.Options `json:"options"`
	Quantity int            `json:"quantity"`
}

func (h *Handler) setStock(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httputil.WriteError(w, r, err)

		return
	}

	var req setStockRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, r, err)

		return
	}

	stock, err := h.deps.Catalog.SetStock(r.Context(),
		domain.ProductID(id), req.Options, req.Quantity)
	if err != nil {
		httputil.WriteError(w, r, err)

		return
	}

	httputil.WriteJSON(w, http.StatusOK, stock)
}
