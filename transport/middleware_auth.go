package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/rental-shop/application/session"
	"github.com/muhammadheryan/rental-shop/constant"
	utilsContext "github.com/muhammadheryan/rental-shop/utils/context"
	"github.com/muhammadheryan/rental-shop/utils/errors"
)

// AuthMiddleware returns a middleware that validates bearer sessions using SessionApp.
// It allows public endpoints (like /swagger/ and /internal/) without token.
func AuthMiddleware(sessionApp session.SessionApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Public paths
			path := r.URL.Path
			if isPublicPath(path) {
				next.ServeHTTP(w, r)
				return
			}

			// Check Authorization header
			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			token := strings.TrimPrefix(auth, "Bearer ")

			// Validate token via SessionApp
			scope, err := sessionApp.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			// Embed tenant scope into context
			ctx := utilsContext.WithTenantScope(r.Context(), *scope)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// isPublicPath defines which endpoints are public (no auth required)
func isPublicPath(path string) bool {
	if strings.HasPrefix(path, "/swagger/") || strings.HasPrefix(path, "/internal/") {
		return true
	}
	return path == "/healthz"
}
