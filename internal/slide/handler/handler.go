package handler

import (
	"errors"
	"net/http"

	"github.com/lusotech/storefront/internal/httputil"
	"github.com/lusotech/storefront/internal/logger"
	"github.com/lusotech/storefront/internal/slide"
	"github.com/lusotech/storefront/internal/slide/dto"
	"go.uber.org/zap"
)

type SlideHandler struct {
	uc     slide.UseCase
	logger logger.Logger
}

func NewSlideHandler(uc slide.UseCase, log logger.Logger) *SlideHandler {
	return &SlideHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *SlideHandler) Register(mux *http.ServeMux, guard func(http.Handler) http.Handler) {
	mux.HandleFunc("GET /api/slides", h.List)
	mux.HandleFunc("GET /api/slides/active", h.Active)
	mux.HandleFunc("GET /api/slides/{id}", h.Get)
	mux.Handle("POST /api/slides", guard(http.HandlerFunc(h.Create)))
	mux.Handle("PUT /api/slides/reorder", guard(http.HandlerFunc(h.Reorder)))
	mux.Handle("PUT /api/slides/{id}", guard(http.HandlerFunc(h.Update)))
	mux.Handle("DELETE /api/slides/{id}", guard(http.HandlerFunc(h.Delete)))
}

func (h *SlideHandler) List(w http.ResponseWriter, r *http.Request) {
	slides, err := h.uc.ListSlides(r.Context())
	if err != nil {
		h.fail(w, err, "failed to list slides")
		return
	}
	httputil.OK(w, "Slides obtenidos", map[string]interface{}{"slides": slides})
}

func (h *SlideHandler) Active(w http.ResponseWriter, r *http.Request) {
	slides, err := h.uc.ActiveSlides(r.Context())
	if err != nil {
		h.fail(w, err, "failed to list active slides")
		return
	}
	httputil.OK(w, "Slides activos", map[string]interface{}{"slides": slides})
}

func (h *SlideHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.uc.GetSlide(r.Context(), r.PathValue("id"))
	if err != nil {
		h.fail(w, err, "failed to get slide")
		return
	}
	if s == nil {
		httputil.Error(w, http.StatusNotFound, slide.ErrNotFound.Error())
		return
	}
	httputil.OK(w, "Slide obtenido", s)
}

func (h *SlideHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input dto.CreateSlideInput
	if err := httputil.Decode(r, &input); err != nil {
		httputil.Error(w, http.StatusBadRequest, "cuerpo de la petición inválido")
		return
	}

	s, err := h.uc.CreateSlide(r.Context(), &input)
	if err != nil {
		h.fail(w, err, "failed to create slide")
		return
	}
	httputil.Created(w, "Slide creado", s)
}

func (h *SlideHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input dto.UpdateSlideInput
	if err := httputil.Decode(r, &input); err != nil {
		httputil.Error(w, http.StatusBadRequest, "cuerpo de la petición inválido")
		return
	}
	input.ID = r.PathValue("id")

	s, err := h.uc.UpdateSlide(r.Context(), &input)
	if err != nil {
		h.fail(w, err, "failed to update slide")
		return
	}
	httputil.OK(w, "Slide actualizado", s)
}

func (h *SlideHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.DeleteSlide(r.Context(), r.PathValue("id")); err != nil {
		h.fail(w, err, "failed to delete slide")
		return
	}
	httputil.OK(w, "Slide eliminado", nil)
}

func (h *SlideHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	var input dto.ReorderInput
	if err := httputil.Decode(r, &input); err != nil {
		httputil.Error(w, http.StatusBadRequest, "cuerpo de la petición inválido")
		return
	}

	if err := h.uc.ReorderSlides(r.Context(), input.Slides); err != nil {
		h.fail(w, err, "failed to reorder slides")
		return
	}
	httputil.OK(w, "Slides reordenados", nil)
}

func (h *SlideHandler) fail(w http.ResponseWriter, err error, logMsg string) {
	switch {
	case errors.Is(err, slide.ErrNotFound):
		httputil.Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, slide.ErrImageRequired),
		errors.Is(err, slide.ErrEmptyReorder),
		errors.Is(err, slide.ErrUnknownReorderID):
		httputil.Error(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error(logMsg, zap.Error(err))
		httputil.Error(w, http.StatusInternalServerError, "error interno del servidor")
	}
}
