package handler

import (
	"errors"
	"net/http"

	"github.com/lusotech/storefront/internal/category"
	"github.com/lusotech/storefront/internal/category/dto"
	"github.com/lusotech/storefront/internal/httputil"
	"github.com/lusotech/storefront/internal/logger"
	"go.uber.org/zap"
)

type CategoryHandler struct {
	uc     category.UseCase
	logger logger.Logger
}

func NewCategoryHandler(uc category.UseCase, log logger.Logger) *CategoryHandler {
	return &CategoryHandler{
		uc:     uc,
		logger: log,
	}
}

// Register mounts public and admin routes. guard wraps the admin ones with
// token authentication.
func (h *CategoryHandler) Register(mux *http.ServeMux, guard func(http.Handler) http.Handler) {
	mux.HandleFunc("GET /api/categories", h.List)
	mux.HandleFunc("GET /api/categories/{id}", h.Get)
	mux.HandleFunc("GET /api/categories/{id}/subcategories", h.ListSubcategoriesOf)
	mux.Handle("POST /api/categories", guard(http.HandlerFunc(h.Create)))
	mux.Handle("PUT /api/categories/{id}", guard(http.HandlerFunc(h.Update)))
	mux.Handle("DELETE /api/categories/{id}", guard(http.HandlerFunc(h.Delete)))

	mux.HandleFunc("GET /api/subcategories", h.ListSubcategories)
	mux.HandleFunc("GET /api/subcategories/{id}", h.GetSubcategory)
	mux.Handle("POST /api/subcategories", guard(http.HandlerFunc(h.CreateSubcategory)))
	mux.Handle("PUT /api/subcategories/{id}", guard(http.HandlerFunc(h.UpdateSubcategory)))
	mux.Handle("DELETE /api/subcategories/{id}", guard(http.HandlerFunc(h.DeleteSubcategory)))
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.uc.ListCategories(r.Context())
	if err != nil {
		h.fail(w, err, "failed to list categories")
		return
	}
	httputil.OK(w, "Categorías obtenidas", map[string]interface{}{"categories": categories})
}

func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	cat, err := h.uc.GetCategory(r.Context(), r.PathValue("id"))
	if err != nil {
		h.fail(w, err, "failed to get category")
		return
	}
	if cat == nil {
		httputil.Error(w, http.StatusNotFound, category.ErrNotFound.Error())
		return
	}
	httputil.OK(w, "Categoría obtenida", cat)
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input dto.CreateCategoryInput
	if err := httputil.Decode(r, &input); err != nil {
		httputil.Error(w, http.StatusBadRequest, "cuerpo de la petición inválido")
		return
	}

	cat, err := h.uc.CreateCategory(r.Context(), &input)
	if err != nil {
		h.fail(w, err, "failed to create category")
		return
	}
	httputil.Created(w, "Categoría creada", cat)
}

func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input dto.UpdateCategoryInput
	if err := httputil.Decode(r, &input); err != nil {
		httputil.Error(w, http.StatusBadRequest, "cuerpo de la petición inválido")
		return
	}
	input.ID = r.PathValue("id")

	cat, err := h.uc.UpdateCategory(r.Context(), &input)
	if err != nil {
		h.fail(w, err, "failed to update category")
		return
	}
	httputil.OK(w, "Categoría actualizada", cat)
}

func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.DeleteCategory(r.Context(), r.PathValue("id")); err != nil {
		h.fail(w, err, "failed to delete category")
		return
	}
	httputil.OK(w, "Categoría eliminada", nil)
}

func (h *CategoryHandler) ListSubcategoriesOf(w http.ResponseWriter, r *http.Request) {
	h.listSubcategories(w, r, r.PathValue("id"))
}

func (h *CategoryHandler) ListSubcategories(w http.ResponseWriter, r *http.Request) {
	h.listSubcategories(w, r, r.URL.Query().Get("category"))
}

func (h *CategoryHandler) listSubcategories(w http.ResponseWriter, r *http.Request, categoryID string) {
	subs, err := h.uc.ListSubcategories(r.Context(), categoryID)
	if err != nil {
		h.fail(w, err, "failed to list subcategories")
		return
	}
	httputil.OK(w, "Subcategorías obtenidas", map[string]interface{}{"subcategories": subs})
}

func (h *CategoryHandler) GetSubcategory(w http.ResponseWriter, r *http.Request) {
	sub, err := h.uc.GetSubcategory(r.Context(), r.PathValue("id"))
	if err != nil {
		h.fail(w, err, "failed to get subcategory")
		return
	}
	if sub == nil {
		httputil.Error(w, http.StatusNotFound, category.ErrSubNotFound.Error())
		return
	}
	httputil.OK(w, "Subcategoría obtenida", sub)
}

func (h *CategoryHandler) CreateSubcategory(w http.ResponseWriter, r *http.Request) {
	var input dto.CreateSubcategoryInput
	if err := httputil.Decode(r, &input); err != nil {
		httputil.Error(w, http.StatusBadRequest, "cuerpo de la petición inválido")
		return
	}

	sub, err := h.uc.CreateSubcategory(r.Context(), &input)
	if err != nil {
		h.fail(w, err, "failed to create subcategory")
		return
	}
	httputil.Created(w, "Subcategoría creada", sub)
}

func (h *CategoryHandler) UpdateSubcategory(w http.ResponseWriter, r *http.Request) {
	var input dto.UpdateSubcategoryInput
	if err := httputil.Decode(r, &input); err != nil {
		httputil.Error(w, http.StatusBadRequest, "cuerpo de la petición inválido")
		return
	}
	input.ID = r.PathValue("id")

	sub, err := h.uc.UpdateSubcategory(r.Context(), &input)
	if err != nil {
		h.fail(w, err, "failed to update subcategory")
		return
	}
	httputil.OK(w, "Subcategoría actualizada", sub)
}

func (h *CategoryHandler) DeleteSubcategory(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.DeleteSubcategory(r.Context(), r.PathValue("id")); err != nil {
		h.fail(w, err, "failed to delete subcategory")
		return
	}
	httputil.OK(w, "Subcategoría eliminada", nil)
}

func (h *CategoryHandler) fail(w http.ResponseWriter, err error, logMsg string) {
	switch {
	case errors.Is(err, category.ErrNotFound), errors.Is(err, category.ErrSubNotFound):
		httputil.Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, category.ErrNameRequired),
		errors.Is(err, category.ErrNameTaken),
		errors.Is(err, category.ErrHasProducts),
		errors.Is(err, category.ErrHasSubcategories),
		errors.Is(err, category.ErrSubNameRequired),
		errors.Is(err, category.ErrSubParentRequired),
		errors.Is(err, category.ErrSubParentNotFound),
		errors.Is(err, category.ErrSubHasProducts):
		httputil.Error(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error(logMsg, zap.Error(err))
		httputil.Error(w, http.StatusInternalServerError, "error interno del servidor")
	}
}
