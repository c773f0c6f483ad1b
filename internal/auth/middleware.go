package auth

import (
	"net/http"
	"strings"

	"github.com/lusotech/storefront/internal/httputil"
	"github.com/lusotech/storefront/internal/model"
)

// RequireAuth guards a handler with bearer-token authentication. The error
// messages are part of the client contract and must stay stable.
func RequireAuth(secret string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			httputil.Error(w, http.StatusUnauthorized, "Token de acceso requerido")
			return
		}

		claims, err := VerifyToken(strings.TrimPrefix(header, "Bearer "), secret)
		if err != nil {
			httputil.Error(w, http.StatusUnauthorized, "Token inválido")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
	})
}

// RequireSuperadmin stacks a role check on top of RequireAuth.
func RequireSuperadmin(secret string, next http.Handler) http.Handler {
	return RequireAuth(secret, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if GetRole(r.Context()) != model.RoleSuperadmin {
			httputil.Error(w, http.StatusForbidden, "Acceso restringido")
			return
		}
		next.ServeHTTP(w, r)
	}))
}
