package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/lusotech/storefront/internal/httputil"
	"github.com/lusotech/storefront/internal/logger"
	"github.com/lusotech/storefront/internal/product"
	"github.com/lusotech/storefront/internal/product/dto"
	"go.uber.org/zap"
)

const defaultPageSize = 12

type ProductHandler struct {
	uc     product.UseCase
	logger logger.Logger
}

func NewProductHandler(uc product.UseCase, log logger.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *ProductHandler) Register(mux *http.ServeMux, guard func(http.Handler) http.Handler) {
	mux.HandleFunc("GET /api/products", h.List)
	mux.HandleFunc("GET /api/products/featured", h.Featured)
	mux.HandleFunc("GET /api/products/{id}", h.Get)
	mux.Handle("POST /api/products", guard(http.HandlerFunc(h.Create)))
	mux.Handle("PUT /api/products/{id}", guard(http.HandlerFunc(h.Update)))
	mux.Handle("DELETE /api/products/{id}", guard(http.HandlerFunc(h.Delete)))
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(q.Get("limit"))
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	filters := &dto.ProductFilters{
		SearchQuery:   q.Get("search"),
		CategoryID:    q.Get("category"),
		SubcategoryID: q.Get("subcategory"),
		StockFilter:   q.Get("stock_filter"),
		SortBy:        q.Get("orderBy"),
		SortOrder:     q.Get("orderDirection"),
		Page:          page,
		PageSize:      pageSize,
	}

	products, count, err := h.uc.ListProducts(r.Context(), filters)
	if err != nil {
		h.fail(w, err, "failed to list products")
		return
	}

	httputil.OK(w, "Productos obtenidos", map[string]interface{}{
		"products":   products,
		"pagination": dto.NewPagination(page, pageSize, count),
	})
}

func (h *ProductHandler) Featured(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	products, err := h.uc.FeaturedProducts(r.Context(), limit)
	if err != nil {
		h.fail(w, err, "failed to list featured products")
		return
	}
	httputil.OK(w, "Productos destacados", map[string]interface{}{"products": products})
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.uc.GetProduct(r.Context(), r.PathValue("id"))
	if err != nil {
		h.fail(w, err, "failed to get product")
		return
	}
	if p == nil {
		httputil.Error(w, http.StatusNotFound, product.ErrNotFound.Error())
		return
	}
	httputil.OK(w, "Producto obtenido", p)
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input dto.CreateProductInput
	if err := httputil.Decode(r, &input); err != nil {
		httputil.Error(w, http.StatusBadRequest, "cuerpo de la petición inválido")
		return
	}

	p, err := h.uc.CreateProduct(r.Context(), &input)
	if err != nil {
		h.fail(w, err, "failed to create product")
		return
	}
	httputil.Created(w, "Producto creado", p)
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input dto.UpdateProductInput
	if err := httputil.Decode(r, &input); err != nil {
		httputil.Error(w, http.StatusBadRequest, "cuerpo de la petición inválido")
		return
	}
	input.ID = r.PathValue("id")

	p, err := h.uc.UpdateProduct(r.Context(), &input)
	if err != nil {
		h.fail(w, err, "failed to update product")
		return
	}
	httputil.OK(w, "Producto actualizado", p)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.DeleteProduct(r.Context(), r.PathValue("id")); err != nil {
		h.fail(w, err, "failed to delete product")
		return
	}
	httputil.OK(w, "Producto eliminado", nil)
}

func (h *ProductHandler) fail(w http.ResponseWriter, err error, logMsg string) {
	switch {
	case errors.Is(err, product.ErrNotFound):
		httputil.Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, product.ErrInvalidName),
		errors.Is(err, product.ErrInvalidPrice),
		errors.Is(err, product.ErrInvalidStock),
		errors.Is(err, product.ErrCategoryNotFound),
		errors.Is(err, product.ErrSubcategoryNotFound):
		httputil.Error(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error(logMsg, zap.Error(err))
		httputil.Error(w, http.StatusInternalServerError, "error interno del servidor")
	}
}
