package handler

import (
	"errors"
	"net/http"

	"github.com/lusotech/storefront/internal/auth"
	"github.com/lusotech/storefront/internal/httputil"
	"github.com/lusotech/storefront/internal/logger"
	"github.com/lusotech/storefront/internal/user"
	"github.com/lusotech/storefront/internal/user/dto"
	"go.uber.org/zap"
)

type UserHandler struct {
	uc     user.UseCase
	logger logger.Logger
}

func NewUserHandler(uc user.UseCase, log logger.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: log,
	}
}

// Register mounts the auth endpoints plus user management. guard protects
// logged-in routes; superGuard additionally requires the superadmin role.
func (h *UserHandler) Register(mux *http.ServeMux, guard, superGuard func(http.Handler) http.Handler) {
	mux.HandleFunc("POST /api/auth/login", h.Login)
	mux.Handle("GET /api/auth/me", guard(http.HandlerFunc(h.Me)))
	mux.Handle("POST /api/auth/logout", guard(http.HandlerFunc(h.Logout)))

	mux.Handle("GET /api/users", superGuard(http.HandlerFunc(h.List)))
	mux.Handle("GET /api/users/{id}", superGuard(http.HandlerFunc(h.Get)))
	mux.Handle("POST /api/users", superGuard(http.HandlerFunc(h.Create)))
	mux.Handle("PUT /api/users/{id}", superGuard(http.HandlerFunc(h.Update)))
	mux.Handle("DELETE /api/users/{id}", superGuard(http.HandlerFunc(h.Delete)))
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input dto.LoginInput
	if err := httputil.Decode(r, &input); err != nil {
		httputil.Error(w, http.StatusBadRequest, "cuerpo de la petición inválido")
		return
	}

	result, err := h.uc.Login(r.Context(), &input)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			httputil.Error(w, http.StatusUnauthorized, err.Error())
			return
		}
		h.fail(w, err, "login failed")
		return
	}
	httputil.OK(w, "Sesión iniciada", result)
}

func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, err := h.uc.GetUser(r.Context(), auth.GetUserID(r.Context()))
	if err != nil {
		h.fail(w, err, "failed to load current user")
		return
	}
	if u == nil {
		httputil.Error(w, http.StatusUnauthorized, "Token inválido")
		return
	}
	httputil.OK(w, "Usuario actual", u)
}

// Logout is a stateless acknowledgement: tokens expire on their own and the
// client discards its copy.
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	httputil.OK(w, "Sesión cerrada", nil)
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.uc.ListUsers(r.Context())
	if err != nil {
		h.fail(w, err, "failed to list users")
		return
	}
	httputil.OK(w, "Usuarios obtenidos", map[string]interface{}{"users": users})
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	u, err := h.uc.GetUser(r.Context(), r.PathValue("id"))
	if err != nil {
		h.fail(w, err, "failed to get user")
		return
	}
	if u == nil {
		httputil.Error(w, http.StatusNotFound, user.ErrNotFound.Error())
		return
	}
	httputil.OK(w, "Usuario obtenido", u)
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input dto.CreateUserInput
	if err := httputil.Decode(r, &input); err != nil {
		httputil.Error(w, http.StatusBadRequest, "cuerpo de la petición inválido")
		return
	}

	u, err := h.uc.CreateUser(r.Context(), &input)
	if err != nil {
		h.fail(w, err, "failed to create user")
		return
	}
	httputil.Created(w, "Usuario creado", u)
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input dto.UpdateUserInput
	if err := httputil.Decode(r, &input); err != nil {
		httputil.Error(w, http.StatusBadRequest, "cuerpo de la petición inválido")
		return
	}
	input.ID = r.PathValue("id")

	u, err := h.uc.UpdateUser(r.Context(), &input)
	if err != nil {
		h.fail(w, err, "failed to update user")
		return
	}
	httputil.OK(w, "Usuario actualizado", u)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.DeleteUser(r.Context(), r.PathValue("id")); err != nil {
		h.fail(w, err, "failed to delete user")
		return
	}
	httputil.OK(w, "Usuario eliminado", nil)
}

func (h *UserHandler) fail(w http.ResponseWriter, err error, logMsg string) {
	switch {
	case errors.Is(err, user.ErrNotFound):
		httputil.Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, user.ErrNameRequired),
		errors.Is(err, user.ErrEmailRequired),
		errors.Is(err, user.ErrEmailTaken),
		errors.Is(err, user.ErrPasswordRequired),
		errors.Is(err, user.ErrInvalidRole),
		errors.Is(err, user.ErrSelfDelete):
		httputil.Error(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error(logMsg, zap.Error(err))
		httputil.Error(w, http.StatusInternalServerError, "error interno del servidor")
	}
}
