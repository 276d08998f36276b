package middleware

import (
	"fmt"
	"net/http"

	wrap "github.com/Temutjin2k/delivery-pricing/pkg/logger/wrapper"
)

func (app *Middleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if panic := recover(); panic != nil {
				ctx := wrap.WithAction(r.Context(), "panic_recovered")
				app.log.Error(ctx, "handler panicked", fmt.Errorf("%v", panic), "method", r.Method, "path", r.URL.Path)

				w.Header().Set("Connection", "close")
				errorResponse(w, http.StatusInternalServerError, "the server encountered a problem and could not process your request")
			}
		}()

		next.ServeHTTP(w, r)
	})
}
