package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/rental-shop/constant"
	"github.com/muhammadheryan/rental-shop/utils/errors"
	"golang.org/x/time/rate"
)

// RateLimitMiddleware sheds load above the configured rate; internal callbacks are exempt
func RateLimitMiddleware(limiter *rate.Limiter) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter != nil && !isInternalPath(r.URL.Path) && !limiter.Allow() {
				writeError(w, errors.SetCustomError(constant.ErrTooManyRequests))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
