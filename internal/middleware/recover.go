package middleware

import (
	"net/http"

	"paygate-be/internal/logger"

	"go.uber.org/zap"
)

// RecoverMiddleware converts panics from downstream handlers into a 500.
func RecoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.FromCtx(r.Context()).Error("panic recovered",
					zap.Any("panic", rec),
					zap.String("path", r.URL.Path),
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"status":false,"message":"Server error","data":{}}`))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
